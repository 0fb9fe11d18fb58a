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

// drawLineAA draws an antialiased segment.  Every step along the major
// axis covers two pixels across the line, weighted by the fractional part
// of the minor coordinate.  The first and last step are further weighted
// by how much of the pixel the segment covers along the major axis.
//
// Antialiased lines do not use dropout control; overlapping pixels at
// joins are blended twice.
func drawLineAA[D dasher[D]](s *Stroker, c *cursor, seg segment, caps capStyle) bool {
	seg, _, ok := s.clipLine(seg)
	if !ok {
		return false
	}
	x1, y1 := toFixed(seg.x1), toFixed(seg.y1)
	x2, y2 := toFixed(seg.x2), toFixed(seg.y2)
	if x1 == x2 && y1 == y2 {
		return false
	}

	a1, b1, a2, b2 := x1, y1, x2, y2
	vertical := abs26(x2-x1) < abs26(y2-y1)
	if vertical {
		a1, b1, a2, b2 = y1, x1, y2, x2
	}
	inc := fdot16Div(int32(b2-b1), int32(a2-a1))

	swapped := false
	if a1 > a2 {
		swapped = true
		a1, a2 = a2, a1
		b1, b2 = b2, b1
		caps = caps.swap()
	}

	// b follows the upper (or left) pixel edge of the line, and is moved
	// to the centre of the first step once the caps are applied.
	b := int32(b1-32) << 10
	a1, a2, b = capAdjust(caps, a1, a2, b, inc)
	b -= int32((a1&63)-32) * inc >> 6

	var d D
	d = d.begin(s, c, swapped, int(a1), int(a2))

	a := int(a1 >> 6)
	as := int(a2 >> 6)

	var alphaStart, alphaEnd int
	if a == as {
		alphaStart = int(a2 - a1)
	} else {
		alphaStart = 64 - int(a1&63)
		alphaEnd = int(a2 & 63)
	}

	if vertical {
		if d.on() {
			s.plotPairH(int(b>>16), a, uint8(b>>8), alphaStart)
		}
		d = d.adjust()
		b += inc
		for a++; a < as; a++ {
			if d.on() {
				s.plotPairH(int(b>>16), a, uint8(b>>8), 64)
			}
			d = d.adjust()
			b += inc
		}
		if alphaEnd != 0 && d.on() {
			s.plotPairH(int(b>>16), a, uint8(b>>8), alphaEnd)
		}
	} else {
		if d.on() {
			s.plotPairV(a, int(b>>16), uint8(b>>8), alphaStart)
		}
		d = d.adjust()
		b += inc
		for a++; a < as; a++ {
			if d.on() {
				s.plotPairV(a, int(b>>16), uint8(b>>8), 64)
			}
			d = d.adjust()
			b += inc
		}
		if alphaEnd != 0 && d.on() {
			s.plotPairV(a, int(b>>16), uint8(b>>8), alphaEnd)
		}
	}
	return true
}

// plotPairH draws the horizontally adjacent pixels (x, y) and (x+1, y).
// frac is the weight of the right pixel, and w scales both weights in
// units of 1/64.
func (s *Stroker) plotPairH(x, y int, frac uint8, w int) {
	alpha := int(frac)
	s.plot(x, y, (255-alpha)*w>>6)
	s.plot(x+1, y, alpha*w>>6)
}

// plotPairV draws the vertically adjacent pixels (x, y) and (x, y+1).
func (s *Stroker) plotPairV(x, y int, frac uint8, w int) {
	alpha := int(frac)
	s.plot(x, y, (255-alpha)*w>>6)
	s.plot(x, y+1, alpha*w>>6)
}
