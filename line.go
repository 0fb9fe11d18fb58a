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

import (
	"image"

	"golang.org/x/image/math/fixed"
)

// cursor carries the state of one path traversal from segment to segment.
type cursor struct {
	last    image.Point // last pixel of the previous segment
	hasLast bool

	dir         direction // sweep direction of the previous segment
	axisAligned bool      // previous segment was close to horizontal or vertical

	phase int // dash phase in 1/64 pixel
}

// dda describes the pixels of an aliased segment.  The segment is walked
// along its major axis a, one pixel at a time, over the range [a, as).
// The minor coordinate b is kept in 16.16 fixed point.
type dda struct {
	vertical bool
	swapped  bool // walked from the logical end to the logical start
	dir      direction

	a, as  int
	b, inc int32
}

// newDDA sets up the walk for the segment from (x1, y1) to (x2, y2).  The
// segment must have positive length.  If the segment reverses the
// direction prev, a begin cap is added.
func newDDA(x1, y1, x2, y2 fixed.Int26_6, caps capStyle, prev direction) dda {
	var l dda
	a1, b1, a2, b2 := x1, y1, x2, y2
	l.dir = leftToRight
	if abs26(x2-x1) < abs26(y2-y1) {
		l.vertical = true
		a1, b1, a2, b2 = y1, x1, y2, x2
		l.dir = topToBottom
	}
	if a1 > a2 {
		l.swapped = true
		a1, a2 = a2, a1
		b1, b2 = b2, b1
		caps = caps.swap()
		l.dir <<= 1
	}

	l.inc = fdot16Div(int32(b2-b1), int32(a2-a1))
	l.b = int32(b1) << 10

	if l.dir.reversedBy(prev) {
		if l.swapped {
			caps |= capEnd
		} else {
			caps |= capBegin
		}
	}
	a1, a2, l.b = capAdjust(caps, a1, a2, l.b, l.inc)

	l.a = int((a1 + 32) >> 6)
	l.as = int((a2 + 32) >> 6)
	var round int32
	if l.inc > 0 {
		round = 32
	}
	l.b += (int32(l.a)<<6 + round - int32(a1)) * l.inc >> 6
	return l
}

// pixel returns the pixel drawn at major coordinate a.
func (l *dda) pixel(a int) image.Point {
	b := int((l.b + int32(a-l.a)*l.inc) >> 16)
	if l.vertical {
		return image.Point{X: b, Y: a}
	}
	return image.Point{X: a, Y: b}
}

// ends returns the first and last pixel in the logical direction of the
// segment.
func (l *dda) ends() (first, last image.Point) {
	first, last = l.pixel(l.a), l.pixel(l.as-1)
	if l.swapped {
		first, last = last, first
	}
	return first, last
}

// isAxisAligned reports whether the minor coordinate moves by less than a
// quarter pixel per step.
func (l *dda) isAxisAligned() bool {
	return l.inc > -(1<<14) && l.inc < 1<<14
}

// shrink removes the pixel at the logical start of the segment.
func (l *dda) shrink() {
	if l.swapped {
		l.as--
	} else {
		l.a++
		l.b += l.inc
	}
}

// grow adds one pixel before the logical start of the segment.
func (l *dda) grow() {
	if l.swapped {
		l.as++
	} else {
		l.a--
		l.b -= l.inc
	}
}

// beforeStart returns the pixel which grow would add.
func (l *dda) beforeStart() image.Point {
	if l.swapped {
		return l.pixel(l.as)
	}
	return l.pixel(l.a - 1)
}

// second returns the pixel after the logical start of the segment.
func (l *dda) second() (image.Point, bool) {
	if l.as-l.a < 2 {
		return image.Point{}, false
	}
	if l.swapped {
		return l.pixel(l.as - 2), true
	}
	return l.pixel(l.a + 1), true
}

// dropout adjusts the start of the segment so that it joins the previous
// segment of the path.  A pixel shared with the previous segment is
// removed.  A missing pixel is added when the two segments do not touch,
// or when both are nearly axis-aligned and meet diagonally at a change of
// direction.
//
// After a sharp turn, or after pieces of the path too short to cover a
// pixel, the pixel before the start may not touch the previous segment
// either.  In this case the segment is left unchanged and dropout reports
// that a bridge must be drawn.
func (l *dda) dropout(c *cursor, first image.Point) (needBridge bool) {
	if !c.hasLast {
		return false
	}
	if first == c.last {
		l.shrink()
		return false
	}

	if !touches(first, c.last) {
		if !touches(l.beforeStart(), c.last) {
			return true
		}
		l.grow()
		return false
	}

	dx := first.X - c.last.X
	dy := first.Y - c.last.Y
	corner := c.dir != l.dir && c.axisAligned && l.isAxisAligned() && dx != 0 && dy != 0
	if corner && l.beforeStart() != c.last {
		l.grow()
	}
	return false
}

// bridge draws the pixels between from and the first pixel of l, to.
// The path first steps diagonally and then straight; neither end is
// drawn.
func (s *Stroker) bridge(l *dda, from, to image.Point) {
	next, hasNext := l.second()
	p := from
	for !touches(p, to) {
		p = p.Add(image.Pt(sign(to.X-p.X), sign(to.Y-p.Y)))
		if hasNext && p == next {
			continue
		}
		s.plot(p.X, p.Y, 255)
	}
}

// touches reports whether p and q are equal or 8-adjacent.
func touches(p, q image.Point) bool {
	dx, dy := p.X-q.X, p.Y-q.Y
	return dx >= -1 && dx <= 1 && dy >= -1 && dy <= 1
}

func sign(v int) int {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	}
	return 0
}

// drawLine draws an aliased segment and returns whether any part of it
// was inside the clip area.
func drawLine[D dasher[D]](s *Stroker, c *cursor, seg segment, caps capStyle) bool {
	seg, farClipped, ok := s.clipLine(seg)
	if !ok {
		c.hasLast = false
		return false
	}
	x1, y1 := toFixed(seg.x1), toFixed(seg.y1)
	x2, y2 := toFixed(seg.x2), toFixed(seg.y2)
	if x1 == x2 && y1 == y2 {
		c.hasLast = c.hasLast && !farClipped
		return false
	}

	l := newDDA(x1, y1, x2, y2, caps, c.dir)
	if l.a == l.as {
		c.hasLast = c.hasLast && !farClipped
		return false
	}

	first, last := l.ends()
	prev := c.last
	bridged := l.dropout(c, first)
	c.dir = l.dir
	c.axisAligned = l.isAxisAligned()
	c.last = last
	c.hasLast = !farClipped

	var d D
	d = d.begin(s, c, l.swapped, l.a<<6, l.as<<6)
	if bridged && d.on() {
		s.bridge(&l, prev, first)
	}
	a, b := l.a, l.b
	if l.vertical {
		for ; a < l.as; a++ {
			if d.on() {
				s.plot(int(b>>16), a, 255)
			}
			d = d.adjust()
			b += l.inc
		}
	} else {
		for ; a < l.as; a++ {
			if d.on() {
				s.plot(a, int(b>>16), 255)
			}
			d = d.adjust()
			b += l.inc
		}
	}
	return true
}

// primeCursor sets the cursor to the state after drawing the segment,
// without drawing anything.  This is used before the first segment of a
// closed subpath, so that the join with the last segment is handled like
// every other join.
func (s *Stroker) primeCursor(c *cursor, seg segment) {
	c.hasLast = false
	seg, farClipped, ok := s.clipLine(seg)
	if !ok || farClipped {
		return
	}
	x1, y1 := toFixed(seg.x1), toFixed(seg.y1)
	x2, y2 := toFixed(seg.x2), toFixed(seg.y2)
	if x1 == x2 && y1 == y2 {
		return
	}

	l := newDDA(x1, y1, x2, y2, capNone, 0)
	if l.a == l.as {
		return
	}
	_, c.last = l.ends()
	c.hasLast = true
	c.dir = l.dir
	c.axisAligned = l.isAxisAligned()
}
