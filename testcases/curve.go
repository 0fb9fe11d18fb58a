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

package testcases

import (
	"math"

	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/pdf/graphics"
)

var curveCases = []TestCase{
	{
		Name:   "quadratic",
		Path:   quadratic(8, 52, 32, 4, 56, 52),
		Width:  64,
		Height: 64,
		Op:     Stroke{},
	},
	{
		Name:   "quadratic_aa",
		Path:   quadratic(8, 52, 32, 4, 56, 52),
		Width:  64,
		Height: 64,
		Op:     Stroke{Antialias: true},
	},
	{
		Name:   "cubic_s",
		Path:   cubic(6, 50, 20, -10, 44, 74, 58, 14),
		Width:  64,
		Height: 64,
		Op:     Stroke{},
	},
	{
		Name:   "cubic_loop",
		Path:   cubic(10, 40, 70, 0, -6, 0, 54, 40),
		Width:  64,
		Height: 64,
		Op:     Stroke{Cap: graphics.LineCapButt},
	},
	{
		Name:   "cubic_cusp",
		Path:   cubic(10, 50, 54, 10, 10, 10, 54, 50),
		Width:  64,
		Height: 64,
		Op:     Stroke{},
	},
	{
		Name:   "cubic_straight",
		Path:   cubic(4, 30, 20, 31, 44, 33, 60, 34),
		Width:  64,
		Height: 64,
		Op:     Stroke{},
	},
	{
		Name:   "circle",
		Path:   circle(32, 32, 24),
		Width:  64,
		Height: 64,
		Op:     Stroke{},
	},
	{
		Name:   "circle_aa",
		Path:   circle(32, 32, 24),
		Width:  64,
		Height: 64,
		Op:     Stroke{Antialias: true},
	},
	{
		Name:   "circle_small",
		Path:   circle(32, 32, 3),
		Width:  64,
		Height: 64,
		Op:     Stroke{},
	},
	{
		Name:   "circle_large",
		Path:   circle(256, 256, 240),
		Width:  512,
		Height: 512,
		Op:     Stroke{},
	},
	{
		Name:   "arc",
		Path:   arc(32, 32, 26, 0.1, 0.65),
		Width:  64,
		Height: 64,
		Op:     Stroke{},
	},
	{
		Name:   "degenerate",
		Path:   cubic(20, 20, 20, 20, 40, 40, 40, 40),
		Width:  64,
		Height: 64,
		Op:     Stroke{},
	},
}

func quadratic(x1, y1, cx, cy, x2, y2 float64) path.Path {
	p := &path.Data{}
	p.MoveTo(pt(x1, y1))
	p.QuadTo(pt(cx, cy), pt(x2, y2))
	return p.Iter()
}

func cubic(x1, y1, c1x, c1y, c2x, c2y, x2, y2 float64) path.Path {
	p := &path.Data{}
	p.MoveTo(pt(x1, y1))
	p.CubeTo(pt(c1x, c1y), pt(c2x, c2y), pt(x2, y2))
	return p.Iter()
}

// circle builds a closed circle from four cubic arcs.
func circle(cx, cy, r float64) path.Path {
	return ellipse(cx, cy, r, r)
}

func ellipse(cx, cy, rx, ry float64) path.Path {
	const k = 0.5522847498307936 // 4/3 (√2 - 1)
	kx, ky := k*rx, k*ry
	p := &path.Data{}
	p.MoveTo(pt(cx+rx, cy))
	p.CubeTo(pt(cx+rx, cy+ky), pt(cx+kx, cy+ry), pt(cx, cy+ry))
	p.CubeTo(pt(cx-kx, cy+ry), pt(cx-rx, cy+ky), pt(cx-rx, cy))
	p.CubeTo(pt(cx-rx, cy-ky), pt(cx-kx, cy-ry), pt(cx, cy-ry))
	p.CubeTo(pt(cx+kx, cy-ry), pt(cx+rx, cy-ky), pt(cx+rx, cy))
	p.Close()
	return p.Iter()
}

// arc builds an open circular arc between two fractions of a full turn,
// using one cubic per quarter turn or less.
func arc(cx, cy, r float64, from, to float64) path.Path {
	a0 := 2 * math.Pi * from
	a1 := 2 * math.Pi * to
	n := int(math.Ceil((a1 - a0) / (math.Pi / 2)))
	step := (a1 - a0) / float64(n)
	h := 4.0 / 3.0 * math.Tan(step/4) * r

	p := &path.Data{}
	p.MoveTo(pt(cx+r*math.Cos(a0), cy+r*math.Sin(a0)))
	for i := range n {
		t0 := a0 + float64(i)*step
		t1 := t0 + step
		c0, s0 := math.Cos(t0), math.Sin(t0)
		c1, s1 := math.Cos(t1), math.Sin(t1)
		p.CubeTo(
			pt(cx+r*c0-h*s0, cy+r*s0+h*c0),
			pt(cx+r*c1+h*s1, cy+r*s1-h*c1),
			pt(cx+r*c1, cy+r*s1),
		)
	}
	return p.Iter()
}
