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
	"seehuhn.de/go/pdf/graphics"
)

var lineCases = []TestCase{
	{
		Name:   "horizontal",
		Path:   polyline(pt(10, 32), pt(54, 32)),
		Width:  64,
		Height: 64,
		Op:     Stroke{},
	},
	{
		Name:   "horizontal_butt",
		Path:   polyline(pt(10, 32), pt(54, 32)),
		Width:  64,
		Height: 64,
		Op:     Stroke{Cap: graphics.LineCapButt},
	},
	{
		Name:   "vertical",
		Path:   polyline(pt(32, 54), pt(32, 10)),
		Width:  64,
		Height: 64,
		Op:     Stroke{},
	},
	{
		Name:   "diagonal",
		Path:   polyline(pt(4, 4), pt(60, 60)),
		Width:  64,
		Height: 64,
		Op:     Stroke{},
	},
	{
		Name:   "shallow",
		Path:   polyline(pt(2, 20), pt(62, 27)),
		Width:  64,
		Height: 64,
		Op:     Stroke{},
	},
	{
		Name:   "steep",
		Path:   polyline(pt(40, 2), pt(33, 62)),
		Width:  64,
		Height: 64,
		Op:     Stroke{},
	},
	{
		Name:   "star_burst",
		Path:   starBurst(32, 32, 28, 24),
		Width:  64,
		Height: 64,
		Op:     Stroke{Cap: graphics.LineCapButt},
	},
	{
		Name:   "star_burst_aa",
		Path:   starBurst(32, 32, 28, 24),
		Width:  64,
		Height: 64,
		Op:     Stroke{Cap: graphics.LineCapButt, Antialias: true},
	},
	{
		Name:   "staircase",
		Path:   polyline(pt(4, 4), pt(20, 4), pt(20, 20), pt(36, 20), pt(36, 36), pt(52, 36), pt(52, 52)),
		Width:  64,
		Height: 64,
		Op:     Stroke{},
	},
	{
		Name:   "zigzag",
		Path:   polyline(pt(4, 50), pt(14, 10), pt(24, 50), pt(34, 10), pt(44, 50), pt(54, 10), pt(60, 30)),
		Width:  64,
		Height: 64,
		Op:     Stroke{},
	},
	{
		Name:   "zigzag_aa",
		Path:   polyline(pt(4, 50), pt(14, 10), pt(24, 50), pt(34, 10), pt(44, 50), pt(54, 10), pt(60, 30)),
		Width:  64,
		Height: 64,
		Op:     Stroke{Antialias: true},
	},
	{
		Name:   "reversal",
		Path:   polyline(pt(8, 32), pt(56, 32), pt(20, 32)),
		Width:  64,
		Height: 64,
		Op:     Stroke{},
	},
	{
		Name:   "half_width",
		Path:   polyline(pt(8, 16), pt(56, 48)),
		Width:  64,
		Height: 64,
		Op:     Stroke{Width: 0.5},
	},
	{
		Name:   "half_width_aa",
		Path:   polyline(pt(8, 16), pt(56, 48)),
		Width:  64,
		Height: 64,
		Op:     Stroke{Width: 0.5, Antialias: true},
	},
	{
		Name:   "subpixel",
		Path:   polyline(pt(8.25, 16.75), pt(55.5, 17.3), pt(40.1, 50.9)),
		Width:  64,
		Height: 64,
		Op:     Stroke{Antialias: true},
	},
}

// starBurst builds n lines from the centre outwards, at equal angles.
func starBurst(cx, cy, r float64, n int) path.Path {
	p := &path.Data{}
	for i := range n {
		phi := 2 * math.Pi * float64(i) / float64(n)
		p.MoveTo(pt(cx, cy))
		p.LineTo(vec.Vec2{X: cx + r*math.Cos(phi), Y: cy + r*math.Sin(phi)})
	}
	return p.Iter()
}
