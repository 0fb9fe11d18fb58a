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

import "golang.org/x/image/math/fixed"

// toFixed converts a device coordinate to 26.6 fixed point, truncating
// towards zero.
func toFixed(v float64) fixed.Int26_6 {
	return fixed.Int26_6(v * 64)
}

// fdot16Div returns x/y in 16.16 fixed point.  Numerators which would
// overflow when shifted are divided in 64 bits.
func fdot16Div(x, y int32) int32 {
	if x > 0x7fff || x < -0x7fff {
		return int32((int64(x) << 16) / int64(y))
	}
	return (x << 16) / y
}

func abs26(v fixed.Int26_6) fixed.Int26_6 {
	if v < 0 {
		return -v
	}
	return v
}

// capStyle selects which ends of a segment are extended by half a pixel.
type capStyle uint8

const (
	capBegin capStyle = 1 << iota
	capEnd

	capNone capStyle = 0
)

// swap exchanges the begin and end flags, for segments which are drawn
// in reverse.
func (c capStyle) swap() capStyle {
	return (c&capBegin)<<1 | (c&capEnd)>>1
}

// capAdjust moves the start of the major range a1 back and the end a2
// forward by half a pixel, as requested by caps.  The minor coordinate b
// at the start is moved back by half a step.
func capAdjust(caps capStyle, a1, a2 fixed.Int26_6, b, inc int32) (fixed.Int26_6, fixed.Int26_6, int32) {
	if caps&capBegin != 0 {
		a1 -= 32
		b -= inc >> 1
	}
	if caps&capEnd != 0 {
		a2 += 32
	}
	return a1, a2, b
}

// direction is the direction in which a segment sweeps along its major
// axis.
type direction uint8

const (
	topToBottom direction = 1 << iota
	bottomToTop
	leftToRight
	rightToLeft

	verticalMask   = topToBottom | bottomToTop
	horizontalMask = leftToRight | rightToLeft
)

// reversedBy reports whether d runs opposite to the previous direction
// prev, along the same axis.
func (d direction) reversedBy(prev direction) bool {
	if d&verticalMask != 0 {
		return prev^verticalMask == d
	}
	return prev^horizontalMask == d
}
