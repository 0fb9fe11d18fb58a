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
	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/raster/region"
)

// fillCases are converted to regions.  A pixel belongs to the region if
// its top-left corner lies inside the path.
var fillCases = []TestCase{
	{
		Name:   "rectangle",
		Path:   rectangle(10, 10, 44, 44),
		Width:  64,
		Height: 64,
		Op:     Fill{Rule: region.Winding},
	},
	{
		Name:   "triangle",
		Path:   polygon(pt(10, 50), pt(32, 10), pt(54, 50)),
		Width:  64,
		Height: 64,
		Op:     Fill{Rule: region.Winding},
	},
	{
		Name:   "star_winding",
		Path:   pentagram(32, 32, 25),
		Width:  64,
		Height: 64,
		Op:     Fill{Rule: region.Winding},
	},
	{
		Name:   "star_evenodd",
		Path:   pentagram(32, 32, 25),
		Width:  64,
		Height: 64,
		Op:     Fill{Rule: region.EvenOdd},
	},
	{
		Name:   "frame_winding",
		Path:   frame(32, 32, 28, 14),
		Width:  64,
		Height: 64,
		Op:     Fill{Rule: region.Winding},
	},
	{
		Name:   "frame_evenodd",
		Path:   frame(32, 32, 28, 14),
		Width:  64,
		Height: 64,
		Op:     Fill{Rule: region.EvenOdd},
	},
	{
		Name:   "circle",
		Path:   circle(32, 32, 24),
		Width:  64,
		Height: 64,
		Op:     Fill{Rule: region.EvenOdd},
	},
	{
		Name:   "mixed_curves",
		Path:   mixedCurves(),
		Width:  64,
		Height: 64,
		Op:     Fill{Rule: region.Winding},
	},
	{
		Name:   "large_diamond",
		Path:   polygon(pt(256, 40), pt(472, 256), pt(256, 472), pt(40, 256)),
		Width:  512,
		Height: 512,
		Op:     Fill{Rule: region.Winding},
	},
}

// pentagram builds a self-intersecting five-pointed star.
func pentagram(cx, cy, r float64) path.Path {
	var pts []vec.Vec2
	for i := range 5 {
		phi := float64(2*i)*2*math.Pi/5 - math.Pi/2
		pts = append(pts, pt(cx+r*math.Cos(phi), cy+r*math.Sin(phi)))
	}
	return polygon(pts...)
}

// frame builds two concentric squares with the same orientation.
func frame(cx, cy, outer, inner float64) path.Path {
	p := &path.Data{}
	for _, r := range []float64{outer, inner} {
		p.MoveTo(pt(cx-r, cy-r)).
			LineTo(pt(cx+r, cy-r)).
			LineTo(pt(cx+r, cy+r)).
			LineTo(pt(cx-r, cy+r)).
			Close()
	}
	return p.Iter()
}

// mixedCurves builds a closed shape from lines, a quadratic and a cubic.
func mixedCurves() path.Path {
	p := &path.Data{}
	p.MoveTo(pt(10, 50)).
		LineTo(pt(20, 30)).
		QuadTo(pt(32, 10), pt(44, 30)).
		LineTo(pt(54, 50)).
		CubeTo(pt(48, 60), pt(16, 60), pt(10, 50)).
		Close()
	return p.Iter()
}
