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
	"seehuhn.de/go/geom/path"
)

var subpathCases = []TestCase{
	{
		Name:   "two_open",
		Path:   twoLines(),
		Width:  64,
		Height: 64,
		Op:     Stroke{},
	},
	{
		Name:   "closed_triangle",
		Path:   polygon(pt(32, 6), pt(58, 54), pt(6, 54)),
		Width:  64,
		Height: 64,
		Op:     Stroke{},
	},
	{
		Name:   "implicitly_closed",
		Path:   polyline(pt(32, 6), pt(58, 54), pt(6, 54), pt(32, 6)),
		Width:  64,
		Height: 64,
		Op:     Stroke{},
	},
	{
		Name:   "nested_squares",
		Path:   nestedSquares(32, 32, 4, 6),
		Width:  64,
		Height: 64,
		Op:     Stroke{Dash: []float64{4, 2}},
	},
}

func twoLines() path.Path {
	p := &path.Data{}
	p.MoveTo(pt(8, 16)).LineTo(pt(56, 20))
	p.MoveTo(pt(8, 48)).LineTo(pt(56, 40))
	return p.Iter()
}

// nestedSquares builds n concentric squares with the given spacing.
func nestedSquares(cx, cy, d float64, n int) path.Path {
	p := &path.Data{}
	for i := 1; i <= n; i++ {
		r := d * float64(i)
		p.MoveTo(pt(cx-r, cy-r)).
			LineTo(pt(cx+r, cy-r)).
			LineTo(pt(cx+r, cy+r)).
			LineTo(pt(cx-r, cy+r)).
			Close()
	}
	return p.Iter()
}
