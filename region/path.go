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
	"math"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"
)

// FromPath returns the pixels inside the path p after transforming it by
// m.  Curves are flattened, all subpaths are closed, and vertices are
// rounded to the nearest device pixel before scan conversion.
func FromPath(p path.Path, m matrix.Matrix, rule FillRule) Region {
	f := flattener{ctm: m}
	for cmd, pts := range p {
		switch cmd {
		case path.CmdMoveTo:
			f.moveTo(f.transform(pts[0]))
		case path.CmdLineTo:
			f.lineTo(f.transform(pts[0]))
		case path.CmdQuadTo:
			f.quadTo(f.transform(pts[0]), f.transform(pts[1]))
		case path.CmdCubeTo:
			f.cubeTo(f.transform(pts[0]), f.transform(pts[1]), f.transform(pts[2]))
		case path.CmdClose:
			f.close()
		}
	}
	f.close()
	return Polygons(f.contours, rule)
}

// Ellipse returns the pixels inside the ellipse inscribed in r.
func Ellipse(r image.Rectangle) Region {
	r = r.Canon()
	if r.Empty() {
		return Region{}
	}

	cx := float64(r.Min.X+r.Max.X) / 2
	cy := float64(r.Min.Y+r.Max.Y) / 2
	rx := float64(r.Dx()) / 2
	ry := float64(r.Dy()) / 2
	kx, ky := kappa*rx, kappa*ry

	f := flattener{ctm: matrix.Identity}
	f.moveTo(vec.Vec2{X: cx + rx, Y: cy})
	f.cubeTo(vec.Vec2{X: cx + rx, Y: cy + ky}, vec.Vec2{X: cx + kx, Y: cy + ry}, vec.Vec2{X: cx, Y: cy + ry})
	f.cubeTo(vec.Vec2{X: cx - kx, Y: cy + ry}, vec.Vec2{X: cx - rx, Y: cy + ky}, vec.Vec2{X: cx - rx, Y: cy})
	f.cubeTo(vec.Vec2{X: cx - rx, Y: cy - ky}, vec.Vec2{X: cx - kx, Y: cy - ry}, vec.Vec2{X: cx, Y: cy - ry})
	f.cubeTo(vec.Vec2{X: cx + kx, Y: cy - ry}, vec.Vec2{X: cx + rx, Y: cy - ky}, vec.Vec2{X: cx + rx, Y: cy})
	f.close()
	return Polygons(f.contours, EvenOdd)
}

// Path returns the outline of the region as one closed rectangular subpath
// per rectangle.
func (r Region) Path() path.Path {
	return func(yield func(path.Command, []vec.Vec2) bool) {
		var buf [1]vec.Vec2
		for _, rect := range r.list() {
			x0, y0 := float64(rect.Min.X), float64(rect.Min.Y)
			x1, y1 := float64(rect.Max.X), float64(rect.Max.Y)

			buf[0] = vec.Vec2{X: x0, Y: y0}
			if !yield(path.CmdMoveTo, buf[:]) {
				return
			}
			buf[0] = vec.Vec2{X: x1, Y: y0}
			if !yield(path.CmdLineTo, buf[:]) {
				return
			}
			buf[0] = vec.Vec2{X: x1, Y: y1}
			if !yield(path.CmdLineTo, buf[:]) {
				return
			}
			buf[0] = vec.Vec2{X: x0, Y: y1}
			if !yield(path.CmdLineTo, buf[:]) {
				return
			}
			if !yield(path.CmdClose, nil) {
				return
			}
		}
	}
}

// flattener turns paths into integer polygons.  All points passed to its
// methods are in device space.
type flattener struct {
	ctm      matrix.Matrix
	contours [][]image.Point
	cur      []image.Point
	current  vec.Vec2
	start    vec.Vec2
}

func (f *flattener) transform(p vec.Vec2) vec.Vec2 {
	return vec.Vec2{
		X: f.ctm[0]*p.X + f.ctm[2]*p.Y + f.ctm[4],
		Y: f.ctm[1]*p.X + f.ctm[3]*p.Y + f.ctm[5],
	}
}

func (f *flattener) moveTo(p vec.Vec2) {
	f.close()
	f.start = p
	f.current = p
	f.addPoint(p)
}

func (f *flattener) lineTo(p vec.Vec2) {
	if f.cur == nil {
		f.addPoint(f.current)
	}
	f.addPoint(p)
	f.current = p
}

// quadTo flattens a quadratic Bézier curve from the current point.  The
// number of segments is chosen so that the error stays below flatness.
func (f *flattener) quadTo(p1, p2 vec.Vec2) {
	p0 := f.current

	// e = (P0 - 2*P1 + P2) / 4
	e := p0.Sub(p1.Mul(2)).Add(p2).Mul(0.25)
	n := 1
	if errDev := e.Length(); errDev > flatness {
		n = int(math.Ceil(math.Sqrt(errDev / flatness)))
	}
	n = min(n, maxCurveSegments)

	for i := 1; i < n; i++ {
		t := float64(i) / float64(n)
		omt := 1 - t
		f.lineTo(p0.Mul(omt * omt).Add(p1.Mul(2 * omt * t)).Add(p2.Mul(t * t)))
	}
	f.lineTo(p2)
}

// cubeTo flattens a cubic Bézier curve from the current point, using
// Wang's formula for the number of segments.
func (f *flattener) cubeTo(p1, p2, p3 vec.Vec2) {
	p0 := f.current

	d1 := p0.Sub(p1.Mul(2)).Add(p2)
	d2 := p1.Sub(p2.Mul(2)).Add(p3)
	n := 1
	if m := max(d1.Length(), d2.Length()); m > 0 {
		if nf := math.Sqrt(3 * m / (4 * flatness)); nf > 1 {
			n = int(math.Ceil(nf))
		}
	}
	n = min(n, maxCurveSegments)

	for i := 1; i < n; i++ {
		t := float64(i) / float64(n)
		omt := 1 - t
		omt2 := omt * omt
		t2 := t * t
		f.lineTo(p0.Mul(omt2 * omt).Add(p1.Mul(3 * omt2 * t)).Add(p2.Mul(3 * omt * t2)).Add(p3.Mul(t2 * t)))
	}
	f.lineTo(p3)
}

// close finishes the current contour.  The scan converter closes contours
// implicitly.
func (f *flattener) close() {
	if len(f.cur) > 0 {
		f.contours = append(f.contours, f.cur)
		f.cur = nil
	}
	f.current = f.start
}

// addPoint rounds p to the pixel grid and appends it to the current
// contour.  Non-finite points are dropped.
func (f *flattener) addPoint(p vec.Vec2) {
	if math.IsNaN(p.X) || math.IsNaN(p.Y) || math.IsInf(p.X, 0) || math.IsInf(p.Y, 0) {
		return
	}
	q := image.Point{X: roundCoord(p.X), Y: roundCoord(p.Y)}
	if n := len(f.cur); n > 0 && f.cur[n-1] == q {
		return
	}
	f.cur = append(f.cur, q)
}

func roundCoord(v float64) int {
	return int(math.Round(max(-maxCoord, min(maxCoord, v))))
}

const (
	// flatness is the maximal distance, in device pixels, between a curve
	// and its polygonal approximation.
	flatness = 0.25

	// maxCurveSegments limits the number of line segments per curve.
	maxCurveSegments = 1000

	// maxCoord bounds rounded device coordinates.
	maxCoord = 1 << 30

	// kappa places the control points of a cubic Bézier quarter circle.
	kappa = 0.5522847498
)
