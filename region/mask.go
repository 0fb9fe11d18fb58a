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
	"image/color"
)

// A Region can be used as an image mask, for example with draw.DrawMask.
var _ image.Image = Region{}

// ColorModel implements the [image.Image] interface.
func (r Region) ColorModel() color.Model {
	return color.AlphaModel
}

// At implements the [image.Image] interface.  Pixels in the region are
// opaque, all others are transparent.
func (r Region) At(x, y int) color.Color {
	if r.Contains(image.Point{X: x, Y: y}) {
		return color.Alpha{A: 0xff}
	}
	return color.Alpha{}
}

// FromAlpha returns the pixels of img whose alpha value is at least
// threshold.  A threshold of 0 is treated as 1.
func FromAlpha(img image.Image, threshold uint8) Region {
	threshold = max(threshold, 1)
	bounds := img.Bounds()

	var alphaAt func(x, y int) uint8
	if a, ok := img.(*image.Alpha); ok {
		alphaAt = func(x, y int) uint8 {
			return a.Pix[a.PixOffset(x, y)]
		}
	} else {
		alphaAt = func(x, y int) uint8 {
			_, _, _, a := img.At(x, y).RGBA()
			return uint8(a >> 8)
		}
	}

	var b builder
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		start := bounds.Min.X
		inside := false
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			in := alphaAt(x, y) >= threshold
			switch {
			case in && !inside:
				start = x
			case !in && inside:
				b.add(start, y, x, y+1)
			}
			inside = in
		}
		if inside {
			b.add(start, y, bounds.Max.X, y+1)
		}
	}
	return b.finish()
}
