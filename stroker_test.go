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

package raster

import (
	"bytes"
	"image"
	"log/slog"
	"math"
	"math/rand/v2"
	"slices"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"
	"seehuhn.de/go/pdf/graphics"
)

// pixelMap records the output of draw calls.  It checks the ordering
// guarantees of the [Blender] interface for every batch.
type pixelMap struct {
	t     *testing.T
	cov   map[image.Point]int
	count map[image.Point]int
}

func newPixelMap(t *testing.T) *pixelMap {
	return &pixelMap{
		t:     t,
		cov:   make(map[image.Point]int),
		count: make(map[image.Point]int),
	}
}

func (m *pixelMap) Blend(spans []Span) {
	m.t.Helper()
	for i, sp := range spans {
		if sp.Len == 0 {
			m.t.Errorf("empty span at (%d,%d)", sp.X, sp.Y)
		}
		if i > 0 {
			prev := spans[i-1]
			if sp.Y < prev.Y || sp.Y == prev.Y && int(sp.X) < int(prev.X)+int(prev.Len) {
				m.t.Errorf("span %v follows %v", sp, prev)
			}
		}
		for k := range int(sp.Len) {
			p := image.Pt(int(sp.X)+k, sp.Y)
			m.cov[p] += int(sp.Coverage)
			m.count[p]++
		}
	}
}

// points returns the touched pixels in y-x order.
func (m *pixelMap) points() []image.Point {
	var res []image.Point
	for p := range m.count {
		res = append(res, p)
	}
	slices.SortFunc(res, func(a, b image.Point) int {
		if a.Y != b.Y {
			return a.Y - b.Y
		}
		return a.X - b.X
	})
	return res
}

func (m *pixelMap) duplicates() []image.Point {
	var res []image.Point
	for _, p := range m.points() {
		if m.count[p] > 1 {
			res = append(res, p)
		}
	}
	return res
}

// connected reports whether the touched pixels form one 8-connected set.
func (m *pixelMap) connected() bool {
	pts := m.points()
	if len(pts) == 0 {
		return true
	}
	seen := map[image.Point]bool{pts[0]: true}
	todo := []image.Point{pts[0]}
	for len(todo) > 0 {
		p := todo[len(todo)-1]
		todo = todo[:len(todo)-1]
		for dy := -1; dy <= 1; dy++ {
			for dx := -1; dx <= 1; dx++ {
				q := p.Add(image.Pt(dx, dy))
				if m.count[q] > 0 && !seen[q] {
					seen[q] = true
					todo = append(todo, q)
				}
			}
		}
	}
	return len(seen) == len(pts)
}

func pt(x, y float64) vec.Vec2 {
	return vec.Vec2{X: x, Y: y}
}

func polyPath(closed bool, pts ...vec.Vec2) path.Path {
	p := &path.Data{}
	p.MoveTo(pts[0])
	for _, q := range pts[1:] {
		p.LineTo(q)
	}
	if closed {
		p.Close()
	}
	return p.Iter()
}

var testClip = rect.Rect{LLx: 0, LLy: 0, URx: 64, URy: 64}

func TestLineSquareCap(t *testing.T) {
	s := NewStroker(testClip)
	m := newPixelMap(t)
	var spans []Span
	s.DrawLine(pt(0, 0), pt(5, 0), BlendFunc(func(b []Span) {
		m.Blend(b)
		spans = append(spans, b...)
	}))

	want := []Span{{X: 0, Len: 6, Y: 0, Coverage: 255}}
	if d := cmp.Diff(want, spans); d != "" {
		t.Errorf("spans (-want +got):\n%s", d)
	}
}

func TestLineButtCap(t *testing.T) {
	s := NewStroker(testClip)
	s.Cap = graphics.LineCapButt
	m := newPixelMap(t)
	s.DrawLine(pt(0, 0), pt(5, 0), m)

	var want []image.Point
	for x := range 5 {
		want = append(want, image.Pt(x, 0))
	}
	if d := cmp.Diff(want, m.points()); d != "" {
		t.Errorf("pixels (-want +got):\n%s", d)
	}
}

func TestSharedVertex(t *testing.T) {
	s := NewStroker(testClip)
	m := newPixelMap(t)
	s.DrawPath(polyPath(false, pt(0, 0), pt(5, 0), pt(5, 5)), m)

	if m.count[image.Pt(5, 0)] != 1 {
		t.Errorf("pixel (5,0) drawn %d times", m.count[image.Pt(5, 0)])
	}
	var want []image.Point
	for x := range 6 {
		want = append(want, image.Pt(x, 0))
	}
	for y := 1; y <= 5; y++ {
		want = append(want, image.Pt(5, y))
	}
	if d := cmp.Diff(want, m.points()); d != "" {
		t.Errorf("pixels (-want +got):\n%s", d)
	}
}

func TestPolylineMatchesPath(t *testing.T) {
	pts := []vec.Vec2{pt(0, 0), pt(5, 0), pt(5, 5)}

	s := NewStroker(testClip)
	m1 := newPixelMap(t)
	s.DrawPath(polyPath(false, pts...), m1)
	m2 := newPixelMap(t)
	s.DrawPolyline(pts, false, m2)

	if d := cmp.Diff(m1.cov, m2.cov); d != "" {
		t.Errorf("open polyline (-path +polyline):\n%s", d)
	}

	m1 = newPixelMap(t)
	s.DrawPath(polyPath(true, pts...), m1)
	m2 = newPixelMap(t)
	s.DrawPolyline(pts, true, m2)

	if d := cmp.Diff(m1.cov, m2.cov); d != "" {
		t.Errorf("closed polyline (-path +polyline):\n%s", d)
	}
}

func TestClosedSquare(t *testing.T) {
	square := []vec.Vec2{pt(2, 2), pt(12, 2), pt(12, 12), pt(2, 12)}
	paths := map[string]path.Path{
		"close":    polyPath(true, square...),
		"repeated": polyPath(false, append(square, square[0])...),
	}
	for name, p := range paths {
		t.Run(name, func(t *testing.T) {
			s := NewStroker(testClip)
			m := newPixelMap(t)
			s.DrawPath(p, m)

			if dup := m.duplicates(); len(dup) > 0 {
				t.Errorf("pixels drawn twice: %v", dup)
			}
			var want []image.Point
			for y := 2; y <= 12; y++ {
				for x := 2; x <= 12; x++ {
					if x == 2 || x == 12 || y == 2 || y == 12 {
						want = append(want, image.Pt(x, y))
					}
				}
			}
			if d := cmp.Diff(want, m.points()); d != "" {
				t.Errorf("pixels (-want +got):\n%s", d)
			}
		})
	}
}

func TestConnectivity(t *testing.T) {
	cases := map[string][]vec.Vec2{
		"staircase": {pt(2, 2), pt(12, 2), pt(12, 12), pt(22, 12), pt(22, 22)},
		"zigzag":    {pt(0, 0), pt(10, 3), pt(20, 0), pt(30, 8), pt(25, 20)},
		"fraction":  {pt(1.3, 4.7), pt(17.2, 5.1), pt(17.9, 30.4), pt(3.1, 29.8)},
		"steep":     {pt(10, 1), pt(11, 40), pt(40, 41), pt(12, 2)},
	}
	for name, pts := range cases {
		for _, lc := range []graphics.LineCapStyle{graphics.LineCapButt, graphics.LineCapSquare} {
			t.Run(name+"_"+lc.String(), func(t *testing.T) {
				s := NewStroker(testClip)
				s.Cap = lc
				m := newPixelMap(t)
				s.DrawPath(polyPath(false, pts...), m)

				if !m.connected() {
					t.Errorf("pixels are not connected: %v", m.points())
				}
				if dup := m.duplicates(); len(dup) > 0 {
					t.Errorf("pixels drawn twice: %v", dup)
				}
			})
		}
	}
}

func TestCurveConnectivity(t *testing.T) {
	p := &path.Data{}
	p.MoveTo(pt(5, 30))
	p.CubeTo(pt(5, 5), pt(55, 5), pt(55, 30))
	p.QuadTo(pt(30, 60), pt(5, 30))
	p.Close()

	s := NewStroker(testClip)
	m := newPixelMap(t)
	s.DrawPath(p.Iter(), m)

	if len(m.count) < 100 {
		t.Fatalf("only %d pixels drawn", len(m.count))
	}
	if !m.connected() {
		t.Error("curve pixels are not connected")
	}
	for _, q := range m.points() {
		if q.X < 4 || q.X > 56 || q.Y < 10 || q.Y > 46 {
			t.Errorf("pixel %v outside the control polygon", q)
		}
	}
}

func TestSharpTurn(t *testing.T) {
	// The second segment starts two pixels below the end of the first.
	pts := []vec.Vec2{pt(102.55, 129.79), pt(106.60, 135.45), pt(105.12, 136.95)}
	clip := rect.Rect{URx: 256, URy: 256}
	for _, lc := range []graphics.LineCapStyle{graphics.LineCapButt, graphics.LineCapSquare} {
		t.Run(lc.String(), func(t *testing.T) {
			s := NewStroker(clip)
			s.Cap = lc
			m := newPixelMap(t)
			s.DrawPolyline(pts, false, m)

			if !m.connected() {
				t.Errorf("pixels are not connected: %v", m.points())
			}
			if dup := m.duplicates(); len(dup) > 0 {
				t.Errorf("pixels drawn twice: %v", dup)
			}
			if m.cov[image.Pt(105, 134)] == 0 {
				t.Errorf("end of first segment missing: %v", m.points())
			}
		})
	}
}

func TestRandomConnectivity(t *testing.T) {
	rng := rand.New(rand.NewPCG(3, 4))
	clip := rect.Rect{URx: 256, URy: 256}
	uniform := func(a, b float64) float64 {
		return a + (b-a)*rng.Float64()
	}
	caps := []graphics.LineCapStyle{graphics.LineCapButt, graphics.LineCapSquare}

	// Polylines which turn by less than 90 degrees in total never reverse
	// their sweep direction, and must not draw any pixel twice.
	t.Run("polyline", func(t *testing.T) {
		for i := range 2000 {
			p := pt(uniform(60, 200), uniform(60, 200))
			heading := uniform(0, 2*math.Pi)
			turn := 1.0
			if rng.IntN(2) == 0 {
				turn = -1
			}
			pts := []vec.Vec2{p}
			for range 4 {
				l := uniform(1.5, 30)
				p = p.Add(pt(l*math.Cos(heading), l*math.Sin(heading)))
				pts = append(pts, p)
				heading += turn * uniform(0, 0.5)
			}

			s := NewStroker(clip)
			s.Cap = caps[i%2]
			m := newPixelMap(t)
			s.DrawPolyline(pts, false, m)
			if !m.connected() {
				t.Fatalf("%v: pixels are not connected", pts)
			}
			if dup := m.duplicates(); len(dup) > 0 {
				t.Fatalf("%v: pixels drawn twice: %v", pts, dup)
			}
		}
	})

	t.Run("convex", func(t *testing.T) {
		for range 2000 {
			centre := pt(uniform(80, 180), uniform(80, 180))
			r := uniform(3, 60)
			angles := make([]float64, 3+rng.IntN(7))
			for k := range angles {
				angles[k] = uniform(0, 2*math.Pi)
			}
			slices.Sort(angles)
			var pts []vec.Vec2
			for _, a := range angles {
				pts = append(pts, centre.Add(pt(r*math.Cos(a), r*math.Sin(a))))
			}

			s := NewStroker(clip)
			m := newPixelMap(t)
			s.DrawPolyline(pts, true, m)
			if !m.connected() {
				t.Fatalf("%v: pixels are not connected", pts)
			}
		}
	})

	t.Run("cubic", func(t *testing.T) {
		for i := range 2000 {
			var c [4]vec.Vec2
			for k := range c {
				c[k] = pt(uniform(20, 236), uniform(20, 236))
			}
			p := &path.Data{}
			p.MoveTo(c[0])
			p.CubeTo(c[1], c[2], c[3])

			s := NewStroker(clip)
			s.Cap = caps[i%2]
			m := newPixelMap(t)
			s.DrawPath(p.Iter(), m)
			if !m.connected() {
				t.Fatalf("%v: pixels are not connected", c)
			}
		}
	})
}

func TestClipSoundness(t *testing.T) {
	clip := rect.Rect{LLx: 10, LLy: 12, URx: 50, URy: 40}
	want := image.Rect(10, 12, 50, 40)
	rng := rand.New(rand.NewPCG(1, 2))
	coord := func() float64 {
		switch rng.IntN(4) {
		case 0:
			return rng.Float64()*2e6 - 1e6
		default:
			return rng.Float64()*80 - 10
		}
	}

	for _, aa := range []bool{false, true} {
		s := NewStroker(clip)
		s.Antialias = aa
		m := newPixelMap(t)
		for range 500 {
			s.DrawLine(pt(coord(), coord()), pt(coord(), coord()), m)
		}
		for _, p := range m.points() {
			if !p.In(want) {
				t.Errorf("antialias=%t: pixel %v outside clip", aa, p)
				break
			}
		}
	}
}

func TestClipLimit(t *testing.T) {
	s := NewStroker(rect.Rect{LLx: -100, LLy: -100, URx: 1e9, URy: 1e9})
	m := newPixelMap(t)
	s.DrawLine(pt(-50, 3), pt(40000, 3), m)

	pts := m.points()
	if len(pts) != maxDevice {
		t.Errorf("got %d pixels, want %d", len(pts), maxDevice)
	}
	if len(pts) > 0 && (pts[0] != image.Pt(0, 3) || pts[len(pts)-1] != image.Pt(maxDevice-1, 3)) {
		t.Errorf("pixels run from %v to %v", pts[0], pts[len(pts)-1])
	}
}

func TestDegenerateInput(t *testing.T) {
	nan := math.NaN()
	inf := math.Inf(1)

	s := NewStroker(testClip)
	m := newPixelMap(t)
	s.DrawLine(pt(nan, 0), pt(5, 5), m)
	s.DrawLine(pt(0, 0), pt(inf, 5), m)
	s.DrawPolyline(nil, true, m)
	s.DrawPoints([]vec.Vec2{pt(nan, 1)}, m)
	s.DrawPath(polyPath(false, pt(nan, nan), pt(3, 3), pt(4, 4)), m)
	if n := len(m.count); n != 0 {
		t.Errorf("%d pixels drawn for invalid input", n)
	}

	// non-finite points inside a subpath are skipped
	s.Cap = graphics.LineCapButt
	s.DrawPath(polyPath(false, pt(1, 1), pt(inf, 1), pt(6, 1)), m)
	if d := cmp.Diff([]image.Point{{1, 1}, {2, 1}, {3, 1}, {4, 1}, {5, 1}}, m.points()); d != "" {
		t.Errorf("pixels (-want +got):\n%s", d)
	}
}

func TestDashContinuity(t *testing.T) {
	pts := []vec.Vec2{pt(2, 2), pt(12, 2), pt(12, 12), pt(22, 12), pt(22, 22)}

	s := NewStroker(testClip)
	s.Cap = graphics.LineCapButt
	s.Dash = []float64{3, 2}
	whole := newPixelMap(t)
	s.DrawPath(polyPath(false, pts...), whole)

	pieces := newPixelMap(t)
	s.DashPhase = 0
	for i := 1; i < len(pts); i++ {
		s.DrawLine(pts[i-1], pts[i], pieces)
		s.DashPhase = s.EndDashPhase()
	}

	if d := cmp.Diff(whole.cov, pieces.cov); d != "" {
		t.Errorf("dash pattern differs (-path +lines):\n%s", d)
	}
	if n := len(whole.count); n != 24 {
		t.Errorf("got %d pixels, want 24", n)
	}
	if got := s.EndDashPhase(); got != 0 {
		t.Errorf("end phase %g, want 0", got)
	}
}

func TestDashPattern(t *testing.T) {
	cases := []struct {
		name  string
		dash  []float64
		phase float64
		want  string
	}{
		{"simple", []float64{2, 1}, 0, "##.##.##.##.##.#"},
		{"phase", []float64{2, 1}, 1, "#.##.##.##.##.##"},
		{"odd", []float64{3}, 0, "###...###...###."},
		{"long", []float64{4, 2, 1, 2}, 0, "####..#..####..#"},
		{"negative phase", []float64{2, 1}, -1, ".##.##.##.##.##."},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			s := NewStroker(testClip)
			s.Cap = graphics.LineCapButt
			s.Dash = c.dash
			s.DashPhase = c.phase
			m := newPixelMap(t)
			s.DrawLine(pt(0, 3), pt(16, 3), m)

			var got strings.Builder
			for x := range 16 {
				if m.count[image.Pt(x, 3)] > 0 {
					got.WriteByte('#')
				} else {
					got.WriteByte('.')
				}
			}
			if got.String() != c.want {
				t.Errorf("got %q, want %q", got.String(), c.want)
			}
		})
	}
}

func TestDashReverse(t *testing.T) {
	// A line drawn backwards is dashed from its own start point.
	s := NewStroker(testClip)
	s.Cap = graphics.LineCapButt
	s.Dash = []float64{2, 1}
	m := newPixelMap(t)
	s.DrawLine(pt(16, 3), pt(0, 3), m)

	var got strings.Builder
	for x := range 16 {
		if m.count[image.Pt(x, 3)] > 0 {
			got.WriteByte('#')
		} else {
			got.WriteByte('.')
		}
	}
	if want := "#.##.##.##.##.##"; got.String() != want {
		t.Errorf("got %q, want %q", got.String(), want)
	}
}

func TestAntialiasSplit(t *testing.T) {
	s := NewStroker(testClip)
	s.Cap = graphics.LineCapButt
	s.Antialias = true
	m := newPixelMap(t)
	s.DrawLine(pt(0, 5), pt(10, 5), m)

	for x := range 10 {
		if c := m.cov[image.Pt(x, 4)]; c != 127 {
			t.Errorf("pixel (%d,4): coverage %d, want 127", x, c)
		}
		if c := m.cov[image.Pt(x, 5)]; c != 128 {
			t.Errorf("pixel (%d,5): coverage %d, want 128", x, c)
		}
	}
	if n := len(m.count); n != 20 {
		t.Errorf("%d pixels touched, want 20", n)
	}
}

func TestAntialiasEnds(t *testing.T) {
	s := NewStroker(testClip)
	s.Cap = graphics.LineCapButt
	s.Antialias = true
	m := newPixelMap(t)
	s.DrawLine(pt(2.5, 6.5), pt(8.25, 6.5), m)

	// The line runs along the centres of row 6.
	want := map[image.Point]int{
		{2, 6}: 255 * 32 >> 6,
		{3, 6}: 255, {4, 6}: 255, {5, 6}: 255, {6, 6}: 255, {7, 6}: 255,
		{8, 6}: 255 * 16 >> 6,
	}
	if d := cmp.Diff(want, m.cov); d != "" {
		t.Errorf("coverage (-want +got):\n%s", d)
	}
}

// TestAntialiasCaps checks that caps only extend the ends of a line,
// without moving it sideways.
func TestAntialiasCaps(t *testing.T) {
	stroke := func(lc graphics.LineCapStyle) *pixelMap {
		s := NewStroker(testClip)
		s.Cap = lc
		s.Antialias = true
		m := newPixelMap(t)
		s.DrawLine(pt(2, 2.5), pt(22, 12.5), m)
		return m
	}
	butt := stroke(graphics.LineCapButt)
	square := stroke(graphics.LineCapSquare)

	want := map[image.Point]int{
		{10, 6}: 191, {10, 7}: 64,
		{11, 6}: 63, {11, 7}: 192,
	}
	for p, c := range want {
		if got := butt.cov[p]; got != c {
			t.Errorf("butt: pixel %v: coverage %d, want %d", p, got, c)
		}
	}
	for x := 3; x <= 20; x++ {
		for y := range 16 {
			p := image.Pt(x, y)
			if butt.cov[p] != square.cov[p] {
				t.Errorf("pixel %v: butt %d, square %d", p, butt.cov[p], square.cov[p])
			}
		}
	}
}

func TestWidthOpacity(t *testing.T) {
	cases := []struct {
		width float64
		want  int
	}{
		{0, 255},
		{1, 255},
		{3, 255},
		{0.5, 127},
		{0.25, 63},
		{-1, 0},
	}
	for _, c := range cases {
		s := NewStroker(testClip)
		s.Width = c.width
		m := newPixelMap(t)
		s.DrawLine(pt(1, 1), pt(4, 1), m)
		got := m.cov[image.Pt(2, 1)]
		if got != c.want {
			t.Errorf("width %g: coverage %d, want %d", c.width, got, c.want)
		}
	}
}

func TestDrawPoints(t *testing.T) {
	s := NewStroker(testClip)
	m := newPixelMap(t)
	s.DrawPoints([]vec.Vec2{pt(1.7, 2.2), pt(10, 10), pt(-3, 5), pt(70, 3), pt(10.9, 10.9)}, m)

	want := map[image.Point]int{{1, 2}: 1, {10, 10}: 2}
	if d := cmp.Diff(want, m.count); d != "" {
		t.Errorf("points (-want +got):\n%s", d)
	}

	m = newPixelMap(t)
	s.DrawLine(pt(7.5, 7.5), pt(7.5, 7.5), m)
	if d := cmp.Diff(map[image.Point]int{{7, 7}: 1}, m.count); d != "" {
		t.Errorf("zero length line (-want +got):\n%s", d)
	}
}

func TestCTM(t *testing.T) {
	s := NewStroker(testClip)
	s.CTM[0], s.CTM[3] = 2, 2
	s.CTM[4], s.CTM[5] = 10, 20
	m1 := newPixelMap(t)
	s.DrawLine(pt(0, 0), pt(5, 0), m1)

	s.Reset(testClip)
	m2 := newPixelMap(t)
	s.DrawLine(pt(10, 20), pt(20, 20), m2)

	if d := cmp.Diff(m2.cov, m1.cov); d != "" {
		t.Errorf("transformed line (-want +got):\n%s", d)
	}
}

func TestSpanBuffer(t *testing.T) {
	// A long diagonal needs more than one buffer of spans.
	s := NewStroker(rect.Rect{URx: 1000, URy: 1000})
	calls := 0
	m := newPixelMap(t)
	s.DrawLine(pt(0, 0), pt(600, 600), BlendFunc(func(spans []Span) {
		calls++
		if len(spans) > maxSpans {
			t.Errorf("batch of %d spans", len(spans))
		}
		m.Blend(spans)
	}))
	if calls < 3 {
		t.Errorf("%d blend calls, want at least 3", calls)
	}
	if n := len(m.count); n != 601 {
		t.Errorf("%d pixels, want 601", n)
	}
}

func TestSetLogger(t *testing.T) {
	buf := &bytes.Buffer{}
	SetLogger(slog.New(slog.NewTextHandler(buf, &slog.HandlerOptions{Level: slog.LevelDebug})))
	defer SetLogger(nil)

	s := NewStroker(rect.Rect{URx: 1e6, URy: 10})
	s.DrawLine(pt(0, 0), pt(3, 3), newPixelMap(t))

	if !strings.Contains(buf.String(), "device range") {
		t.Errorf("missing log message, got %q", buf.String())
	}
	if Logger().Enabled(t.Context(), slog.LevelDebug) != true {
		t.Error("logger not installed")
	}
}

func BenchmarkDrawPath(b *testing.B) {
	p := &path.Data{}
	p.MoveTo(pt(10, 500))
	for i := range 200 {
		x := 10 + float64(i)*4.9
		p.LineTo(pt(x, 500+400*math.Sin(float64(i)/7)))
	}
	for _, aa := range []bool{false, true} {
		name := "aliased"
		if aa {
			name = "antialiased"
		}
		b.Run(name, func(b *testing.B) {
			s := NewStroker(rect.Rect{URx: 1000, URy: 1000})
			s.Antialias = aa
			out := BlendFunc(func([]Span) {})
			for b.Loop() {
				s.DrawPath(p.Iter(), out)
			}
		})
	}
}
