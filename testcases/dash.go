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
)

var dashCases = []TestCase{
	{
		Name:   "simple",
		Path:   polyline(pt(4, 32), pt(60, 32)),
		Width:  64,
		Height: 64,
		Op:     Stroke{Cap: graphics.LineCapButt, Dash: []float64{6, 3}},
	},
	{
		Name:   "single_element",
		Path:   polyline(pt(4, 32), pt(60, 32)),
		Width:  64,
		Height: 64,
		Op:     Stroke{Cap: graphics.LineCapButt, Dash: []float64{5}},
	},
	{
		Name:   "three_element",
		Path:   polyline(pt(4, 32), pt(60, 32)),
		Width:  64,
		Height: 64,
		Op:     Stroke{Cap: graphics.LineCapButt, Dash: []float64{5, 3, 8}},
	},
	{
		Name:   "phase",
		Path:   polyline(pt(4, 32), pt(60, 32)),
		Width:  64,
		Height: 64,
		Op:     Stroke{Cap: graphics.LineCapButt, Dash: []float64{6, 3}, DashPhase: 4},
	},
	{
		Name:   "phase_negative",
		Path:   polyline(pt(4, 32), pt(60, 32)),
		Width:  64,
		Height: 64,
		Op:     Stroke{Cap: graphics.LineCapButt, Dash: []float64{6, 3}, DashPhase: -22},
	},
	{
		Name:   "short",
		Path:   polyline(pt(4, 32), pt(60, 32)),
		Width:  64,
		Height: 64,
		Op:     Stroke{Cap: graphics.LineCapButt, Dash: []float64{0.5, 2}},
	},
	{
		Name:   "reverse",
		Path:   polyline(pt(60, 32), pt(4, 32)),
		Width:  64,
		Height: 64,
		Op:     Stroke{Cap: graphics.LineCapButt, Dash: []float64{6, 3}},
	},
	{
		Name:   "corner",
		Path:   polyline(pt(8, 56), pt(8, 8), pt(56, 8)),
		Width:  64,
		Height: 64,
		Op:     Stroke{Dash: []float64{7, 3}},
	},
	{
		Name:   "diagonal",
		Path:   polyline(pt(4, 60), pt(60, 4)),
		Width:  64,
		Height: 64,
		Op:     Stroke{Dash: []float64{4, 4}},
	},
	{
		Name:   "closed_square",
		Path:   rectangle(10, 10, 54, 54),
		Width:  64,
		Height: 64,
		Op:     Stroke{Dash: []float64{5, 2}},
	},
	{
		Name:   "circle",
		Path:   circle(32, 32, 24),
		Width:  64,
		Height: 64,
		Op:     Stroke{Dash: []float64{3, 3}},
	},
	{
		Name:   "circle_aa",
		Path:   circle(32, 32, 24),
		Width:  64,
		Height: 64,
		Op:     Stroke{Dash: []float64{3, 3}, Antialias: true},
	},
	{
		Name:   "zigzag_aa",
		Path:   polyline(pt(4, 50), pt(14, 10), pt(24, 50), pt(34, 10), pt(44, 50), pt(54, 10)),
		Width:  64,
		Height: 64,
		Op:     Stroke{Dash: []float64{8, 2, 2, 2}, Antialias: true},
	},
}
