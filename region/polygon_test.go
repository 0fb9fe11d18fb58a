// seehuhn.de/go/raster - a 2D rendering library
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package region

import (
	"image"
	"testing"

	"github.com/google/go-cmp/cmp"
	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"
)

func TestRectPolygon(t *testing.T) {
	want := []image.Rectangle{image.Rect(2, 3, 12, 8)}
	cases := map[string][]image.Point{
		"four":      {{2, 3}, {12, 3}, {12, 8}, {2, 8}},
		"closed":    {{2, 3}, {12, 3}, {12, 8}, {2, 8}, {2, 3}},
		"vertical":  {{2, 3}, {2, 8}, {12, 8}, {12, 3}},
		"reversed":  {{12, 8}, {2, 8}, {2, 3}, {12, 3}},
		"collinear": {{2, 3}, {7, 3}, {12, 3}, {12, 8}, {2, 8}},
		"repeated":  {{2, 3}, {12, 3}, {12, 3}, {12, 8}, {2, 8}, {2, 8}},
		"split":     {{2, 3}, {12, 3}, {12, 5}, {12, 8}, {2, 8}, {2, 4}},
	}
	for name, pts := range cases {
		for _, rule := range []FillRule{EvenOdd, Winding} {
			r := Polygon(pts, rule)
			checkBanded(t, name, r)
			if d := cmp.Diff(want, r.Rects()); d != "" {
				t.Errorf("%s/%s (-want +got):\n%s", name, rule, d)
			}
		}
	}
}

func TestPolygonDegenerate(t *testing.T) {
	cases := map[string][]image.Point{
		"nil":        nil,
		"point":      {{3, 3}},
		"segment":    {{0, 0}, {10, 10}},
		"horizontal": {{0, 5}, {10, 5}, {20, 5}},
		"flat":       {{0, 0}, {10, 0}, {10, 0}, {0, 0}},
	}
	for name, pts := range cases {
		if r := Polygon(pts, EvenOdd); !r.IsEmpty() {
			t.Errorf("%s: got %v", name, r)
		}
	}
}

func TestPolygonTooTall(t *testing.T) {
	pts := []image.Point{{0, 0}, {10, 0}, {5, maxPolygonHeight + 10}}
	if r := Polygon(pts, EvenOdd); !r.IsEmpty() {
		t.Errorf("over-tall polygon gave %v", r.Bounds())
	}
}

func TestTriangle(t *testing.T) {
	r := Polygon([]image.Point{{0, 0}, {20, 0}, {0, 20}}, EvenOdd)
	checkBanded(t, "triangle", r)
	for _, p := range []image.Point{{0, 0}, {1, 1}, {10, 2}, {2, 10}, {18, 0}} {
		if !r.Contains(p) {
			t.Errorf("%v should be inside", p)
		}
	}
	for _, p := range []image.Point{{12, 12}, {19, 19}, {20, 0}, {0, 20}, {-1, 5}} {
		if r.Contains(p) {
			t.Errorf("%v should be outside", p)
		}
	}
	if b := r.Bounds(); !b.In(image.Rect(0, 0, 20, 20)) {
		t.Errorf("bounds %v exceed the triangle", b)
	}
}

// TestFillRules uses a pentagram, where the central pentagon has winding
// number two.
func TestFillRules(t *testing.T) {
	eo := star(50, 50, 40, EvenOdd)
	nz := star(50, 50, 40, Winding)
	checkBanded(t, "evenodd", eo)
	checkBanded(t, "winding", nz)

	if eo.Area() >= nz.Area() {
		t.Errorf("even-odd area %d not smaller than winding area %d", eo.Area(), nz.Area())
	}
	if !eo.Subtract(nz).IsEmpty() {
		t.Error("even-odd fill is not contained in the winding fill")
	}
	if eo.Contains(image.Pt(50, 50)) || !nz.Contains(image.Pt(50, 50)) {
		t.Error("wrong fill at the centre")
	}
	if eo.Bounds() != nz.Bounds() {
		t.Errorf("bounds differ: %v vs %v", eo.Bounds(), nz.Bounds())
	}
}

func TestPolygonsHole(t *testing.T) {
	outer := []image.Point{{0, 0}, {30, 0}, {30, 30}, {0, 30}}
	sameDir := []image.Point{{10, 10}, {20, 10}, {20, 20}, {10, 20}}
	oppDir := []image.Point{{10, 10}, {10, 20}, {20, 20}, {20, 10}}

	square := Rect(image.Rect(0, 0, 30, 30))
	hole := square.Subtract(Rect(image.Rect(10, 10, 20, 20)))

	cases := []struct {
		name  string
		inner []image.Point
		rule  FillRule
		want  Region
	}{
		{"evenodd same", sameDir, EvenOdd, hole},
		{"evenodd opposite", oppDir, EvenOdd, hole},
		{"winding same", sameDir, Winding, square},
		{"winding opposite", oppDir, Winding, hole},
	}
	for _, c := range cases {
		got := Polygons([][]image.Point{outer, c.inner}, c.rule)
		checkBanded(t, c.name, got)
		if !got.Equal(c.want) {
			t.Errorf("%s: got %v, want %v", c.name, got, c.want)
		}
	}
}

func rectPath(x0, y0, x1, y1 float64) path.Path {
	return func(yield func(path.Command, []vec.Vec2) bool) {
		_ = yield(path.CmdMoveTo, []vec.Vec2{{X: x0, Y: y0}}) &&
			yield(path.CmdLineTo, []vec.Vec2{{X: x1, Y: y0}}) &&
			yield(path.CmdLineTo, []vec.Vec2{{X: x1, Y: y1}}) &&
			yield(path.CmdLineTo, []vec.Vec2{{X: x0, Y: y1}}) &&
			yield(path.CmdClose, nil)
	}
}

func TestFromPath(t *testing.T) {
	r := FromPath(rectPath(1, 1, 5, 4), matrix.Identity, Winding)
	if !r.Equal(Rect(image.Rect(1, 1, 5, 4))) {
		t.Errorf("identity: got %v", r)
	}

	scale := matrix.Matrix{2, 0, 0, 2, 3, -1}
	r = FromPath(rectPath(1, 1, 5, 4), scale, Winding)
	if !r.Equal(Rect(image.Rect(5, 1, 13, 7))) {
		t.Errorf("scaled: got %v", r)
	}

	// vertices are rounded to the nearest pixel corner
	r = FromPath(rectPath(0.4, 0.6, 9.6, 10.4), matrix.Identity, EvenOdd)
	if !r.Equal(Rect(image.Rect(0, 1, 10, 10))) {
		t.Errorf("rounded: got %v", r)
	}
}

func TestFromPathCurves(t *testing.T) {
	// a circle of radius 20 made from four cubic segments
	const c = 0.5522847498 * 20
	cubic := path.Path(func(yield func(path.Command, []vec.Vec2) bool) {
		_ = yield(path.CmdMoveTo, []vec.Vec2{{X: 40, Y: 20}}) &&
			yield(path.CmdCubeTo, []vec.Vec2{{X: 40, Y: 20 + c}, {X: 20 + c, Y: 40}, {X: 20, Y: 40}}) &&
			yield(path.CmdCubeTo, []vec.Vec2{{X: 20 - c, Y: 40}, {X: 0, Y: 20 + c}, {X: 0, Y: 20}}) &&
			yield(path.CmdCubeTo, []vec.Vec2{{X: 0, Y: 20 - c}, {X: 20 - c, Y: 0}, {X: 20, Y: 0}}) &&
			yield(path.CmdCubeTo, []vec.Vec2{{X: 20 + c, Y: 0}, {X: 40, Y: 20 - c}, {X: 40, Y: 20}})
	})
	r := FromPath(cubic, matrix.Identity, Winding)
	checkBanded(t, "circle", r)
	if !r.Equal(Ellipse(image.Rect(0, 0, 40, 40))) {
		t.Error("circle path differs from Ellipse")
	}

	quad := path.Path(func(yield func(path.Command, []vec.Vec2) bool) {
		_ = yield(path.CmdMoveTo, []vec.Vec2{{X: 0, Y: 40}}) &&
			yield(path.CmdQuadTo, []vec.Vec2{{X: 20, Y: -40}, {X: 40, Y: 40}})
	})
	q := FromPath(quad, matrix.Identity, EvenOdd)
	checkBanded(t, "parabola", q)
	if !q.Contains(image.Pt(20, 20)) || q.Contains(image.Pt(2, 2)) {
		t.Errorf("parabola: got %v", q)
	}
	if b := q.Bounds(); b.Min.Y < -1 || b.Min.Y > 1 || b.Max.Y != 40 {
		t.Errorf("parabola bounds %v", b)
	}
}

func TestEllipse(t *testing.T) {
	box := image.Rect(10, 20, 50, 40)
	e := Ellipse(box)
	checkBanded(t, "ellipse", e)
	if !e.Bounds().In(box) {
		t.Errorf("bounds %v outside %v", e.Bounds(), box)
	}
	if !e.Contains(image.Pt(30, 30)) {
		t.Error("centre missing")
	}
	for _, p := range []image.Point{{10, 20}, {49, 20}, {10, 39}, {49, 39}} {
		if e.Contains(p) {
			t.Errorf("corner %v included", p)
		}
	}
	if !Ellipse(image.Rect(5, 5, 5, 9)).IsEmpty() {
		t.Error("degenerate ellipse is not empty")
	}
}

func TestPathRoundTrip(t *testing.T) {
	for name, r := range sampleRegions() {
		for _, rule := range []FillRule{EvenOdd, Winding} {
			got := FromPath(r.Path(), matrix.Identity, rule)
			if !got.Equal(r) {
				t.Errorf("%s/%s: got %v, want %v", name, rule, got, r)
			}
		}
	}
}

func BenchmarkEllipse(b *testing.B) {
	for b.Loop() {
		Ellipse(image.Rect(0, 0, 800, 600))
	}
}
