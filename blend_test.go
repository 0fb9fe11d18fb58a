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
	"fmt"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	ftraster "github.com/golang/freetype/raster"
	"github.com/google/go-cmp/cmp"
	"golang.org/x/image/draw"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"
	"seehuhn.de/go/pdf/graphics"

	"seehuhn.de/go/raster/region"
)

// drawScene draws a few overlapping strokes, using every code path of the
// stroker.
func drawScene(s *Stroker, out Blender) {
	s.Antialias = false
	s.Dash = nil
	s.DrawPolyline([]vec.Vec2{pt(3, 3), pt(60, 10), pt(20, 60), pt(3, 3)}, false, out)

	s.Antialias = true
	s.DrawLine(pt(0.5, 40.25), pt(63.5, 20.75), out)
	s.DrawLine(pt(30.2, 1), pt(33.8, 62), out)

	s.Dash = []float64{4, 1.5}
	s.DrawPolyline([]vec.Vec2{pt(8, 50), pt(55, 52), pt(50, 5)}, false, out)

	s.Antialias = false
	s.Width = 0.6
	s.DrawLine(pt(-10, 25), pt(80, 33), out)
	s.Width = 0
	s.DrawPoints([]vec.Vec2{pt(5, 5), pt(6, 5), pt(40.5, 40.5)}, out)
}

func newCanvas() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, 64, 64))
	bg := image.NewUniform(color.RGBA{R: 250, G: 248, B: 230, A: 255})
	draw.Draw(img, img.Bounds(), bg, image.Point{}, draw.Src)
	return img
}

func TestFastPathMatchesBlend(t *testing.T) {
	ink := image.NewUniform(color.NRGBA{R: 200, G: 40, B: 10, A: 180})

	fast := newCanvas()
	s := NewStroker(testClip)
	drawScene(s, &ImageBlender{Dst: fast, Src: ink, Op: draw.Over})

	slow := newCanvas()
	ib := &ImageBlender{Dst: slow, Src: ink, Op: draw.Over}
	s.Reset(testClip)
	drawScene(s, BlendFunc(ib.Blend))

	if err := compareRGBA("fast_path", slow, fast, 1); err != nil {
		t.Error(err)
	}
	if fast.RGBAAt(5, 5) == newCanvas().RGBAAt(5, 5) {
		t.Error("nothing drawn at (5,5)")
	}
}

func TestImageBlenderGray(t *testing.T) {
	dst := image.NewGray(image.Rect(0, 0, 16, 16))
	s := NewStroker(rect.Rect{URx: 16, URy: 16})
	s.DrawLine(pt(2, 4), pt(12, 4), &ImageBlender{Dst: dst, Src: image.White, Op: draw.Over})

	for x := range 16 {
		want := uint8(0)
		if x >= 2 && x <= 12 {
			want = 255
		}
		if got := dst.GrayAt(x, 4).Y; got != want {
			t.Errorf("pixel (%d,4) = %d, want %d", x, got, want)
		}
	}
}

func TestRegionClipper(t *testing.T) {
	ring := region.Rect(image.Rect(10, 10, 50, 50)).Subtract(region.Rect(image.Rect(20, 20, 40, 40)))
	lines := [][2]vec.Vec2{
		{pt(12, 15), pt(47, 44)},
		{pt(10.5, 30), pt(49.5, 30)},
		{pt(30, 11), pt(30, 49)},
		{pt(45, 12), pt(14, 47)},
	}

	for _, aa := range []bool{false, true} {
		s := NewStroker(testClip)
		s.Antialias = aa
		all := newPixelMap(t)
		clipped := newPixelMap(t)
		rc := &RegionClipper{Region: ring, Next: clipped}
		for _, l := range lines {
			s.DrawLine(l[0], l[1], all)
			s.DrawLine(l[0], l[1], rc)
		}

		want := make(map[image.Point]int)
		for p, c := range all.cov {
			if ring.Contains(p) {
				want[p] = c
			}
		}
		if len(want) == 0 {
			t.Fatal("test lines miss the region")
		}
		if d := cmp.Diff(want, clipped.cov); d != "" {
			t.Errorf("antialias=%t: clipped output (-want +got):\n%s", aa, d)
		}
	}
}

func TestRegionClipperEmpty(t *testing.T) {
	called := false
	rc := &RegionClipper{Next: BlendFunc(func([]Span) { called = true })}
	s := NewStroker(testClip)
	s.DrawLine(pt(0, 0), pt(30, 20), rc)
	if called {
		t.Error("empty region passed spans on")
	}
}

func TestPainterBlender(t *testing.T) {
	dst := image.NewAlpha(image.Rect(0, 0, 16, 16))
	s := NewStroker(rect.Rect{URx: 16, URy: 16})
	s.Cap = graphics.LineCapButt
	pb := &PainterBlender{Painter: ftraster.NewAlphaOverPainter(dst)}
	s.DrawLine(pt(1, 3), pt(10, 3), pb)
	s.Width = 0.5
	s.DrawLine(pt(1, 7), pt(10, 7), pb)

	for x := range 16 {
		var want3, want7 uint8
		if x >= 1 && x < 10 {
			want3, want7 = 255, 127
		}
		if got := dst.AlphaAt(x, 3).A; got != want3 {
			t.Errorf("pixel (%d,3) = %d, want %d", x, got, want3)
		}
		if got := dst.AlphaAt(x, 7).A; got != want7 {
			t.Errorf("pixel (%d,7) = %d, want %d", x, got, want7)
		}
	}
}

// compareRGBA checks that two images agree within tol in every channel.
// On failure, a debug image is written.
func compareRGBA(name string, expected, actual *image.RGBA, tol int) error {
	bad := 0
	var first image.Point
	for i := range expected.Pix {
		d := int(expected.Pix[i]) - int(actual.Pix[i])
		if d > tol || d < -tol {
			if bad == 0 {
				first = image.Pt((i%expected.Stride)/4, i/expected.Stride)
			}
			bad++
		}
	}
	if bad == 0 {
		return nil
	}
	_ = writeDiffImage(name, expected, actual)
	return fmt.Errorf("%s: %d channel values differ, first at %v", name, bad, first)
}

// writeDiffImage writes a 3-panel image (actual, difference, expected),
// enlarged by a factor of 4, into the debug directory.
func writeDiffImage(name string, expected, actual *image.RGBA) (err error) {
	if err := os.MkdirAll("debug", 0755); err != nil {
		return err
	}

	b := expected.Bounds()
	w, h := b.Dx(), b.Dy()
	panel := image.NewRGBA(image.Rect(0, 0, 3*w, h))
	draw.Draw(panel, image.Rect(0, 0, w, h), actual, b.Min, draw.Src)
	draw.Draw(panel, image.Rect(2*w, 0, 3*w, h), expected, b.Min, draw.Src)
	for y := range h {
		for x := range w {
			e := expected.RGBAAt(b.Min.X+x, b.Min.Y+y)
			a := actual.RGBAAt(b.Min.X+x, b.Min.Y+y)
			panel.SetRGBA(w+x, y, color.RGBA{
				R: absDiff(e.R, a.R) * 32,
				G: absDiff(e.G, a.G) * 32,
				B: absDiff(e.B, a.B) * 32,
				A: 255,
			})
		}
	}

	big := image.NewRGBA(image.Rect(0, 0, 12*w, 4*h))
	draw.NearestNeighbor.Scale(big, big.Bounds(), panel, panel.Bounds(), draw.Src, nil)

	f, err := os.Create(filepath.Join("debug", name+".png"))
	if err != nil {
		return err
	}
	err = png.Encode(f, big)
	if cerr := f.Close(); err == nil {
		err = cerr
	}
	return err
}

func absDiff(a, b uint8) uint8 {
	if a > b {
		return a - b
	}
	return b - a
}
