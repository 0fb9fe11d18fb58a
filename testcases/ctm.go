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
	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/pdf/graphics"

	"seehuhn.de/go/raster/region"
)

// ctmCases check that the transformation applies to the geometry only.
// Cosmetic lines stay one pixel wide, and dash lengths are in device
// pixels.
var ctmCases = []TestCase{
	{
		Name:   "scale_2x",
		Path:   rectangle(0, 0, 20, 20),
		Width:  64,
		Height: 64,
		Op:     Stroke{},
		CTM:    matrix.Scale(2, 2).Translate(12, 12),
	},
	{
		Name:   "scale_half",
		Path:   circle(0, 0, 50),
		Width:  64,
		Height: 64,
		Op:     Stroke{Antialias: true},
		CTM:    matrix.Scale(0.5, 0.5).Translate(32, 32),
	},
	{
		Name:   "rotate_30deg",
		Path:   rectangle(-20, -10, 20, 10),
		Width:  64,
		Height: 64,
		Op:     Stroke{},
		CTM:    matrix.RotateDeg(30).Translate(32, 32),
	},
	{
		Name:   "rotate_30deg_aa",
		Path:   rectangle(-20, -10, 20, 10),
		Width:  64,
		Height: 64,
		Op:     Stroke{Antialias: true},
		CTM:    matrix.RotateDeg(30).Translate(32, 32),
	},
	{
		Name:   "circle_to_ellipse",
		Path:   circle(0, 0, 15),
		Width:  128,
		Height: 64,
		Op:     Stroke{},
		CTM:    matrix.Scale(3, 1.5).Translate(64, 32),
	},
	{
		Name:   "shear",
		Path:   rectangle(-15, -15, 15, 15),
		Width:  64,
		Height: 64,
		Op:     Stroke{},
		CTM:    matrix.Matrix{1, 0, 0.5, 1, 0, 0}.Translate(32, 32),
	},
	{
		Name:   "dash_scaled",
		Path:   polyline(pt(-12, 0), pt(12, 0)),
		Width:  64,
		Height: 64,
		Op:     Stroke{Cap: graphics.LineCapButt, Dash: []float64{4, 2}},
		CTM:    matrix.Scale(2, 2).Translate(32, 32),
	},
	{
		Name:   "fill_rotated",
		Path:   rectangle(-16, -8, 16, 8),
		Width:  64,
		Height: 64,
		Op:     Fill{Rule: region.Winding},
		CTM:    matrix.RotateDeg(20).Translate(32, 32),
	},
}
