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
	"seehuhn.de/go/pdf/graphics"

	"seehuhn.de/go/raster/region"
)

// clipCases contain geometry which extends far beyond the canvas.
var clipCases = []TestCase{
	{
		Name:   "crossing",
		Path:   polyline(pt(-100, -40), pt(164, 104)),
		Width:  64,
		Height: 64,
		Op:     Stroke{},
	},
	{
		Name:   "crossing_aa",
		Path:   polyline(pt(-100, -40), pt(164, 104)),
		Width:  64,
		Height: 64,
		Op:     Stroke{Antialias: true},
	},
	{
		Name:   "huge_coordinates",
		Path:   polyline(pt(-1e7, 20), pt(1e7, 44)),
		Width:  64,
		Height: 64,
		Op:     Stroke{},
	},
	{
		Name:   "leave_and_return",
		Path:   polyline(pt(10, 10), pt(200, 30), pt(54, 54), pt(20, -80), pt(10, 40)),
		Width:  64,
		Height: 64,
		Op:     Stroke{Cap: graphics.LineCapButt},
	},
	{
		Name:   "dashed_outside_start",
		Path:   polyline(pt(-37, 32), pt(60, 32)),
		Width:  64,
		Height: 64,
		Op:     Stroke{Cap: graphics.LineCapButt, Dash: []float64{5, 3}},
	},
	{
		Name:   "edges",
		Path:   rectangle(0, 0, 63, 63),
		Width:  64,
		Height: 64,
		Op:     Stroke{},
	},
	{
		Name:   "fill_clipped",
		Path:   rectangle(-100, 10, 612, 40),
		Width:  64,
		Height: 64,
		Op:     Fill{Rule: region.Winding},
	},
}
