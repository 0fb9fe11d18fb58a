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

import "image"

// builder collects rectangles in y-x order and keeps them in banded form.
// Touching rectangles within a band are merged as they arrive, and each
// finished band is coalesced with the band above it when both have the
// same horizontal layout.
type builder struct {
	rects    []image.Rectangle
	prevBand int // start of the band above curBand
	curBand  int // start of the band being filled
}

// box returns the rectangle [x0,x1)×[y0,y1) without canonicalising it.
func box(x0, y0, x1, y1 int) image.Rectangle {
	return image.Rectangle{
		Min: image.Point{X: x0, Y: y0},
		Max: image.Point{X: x1, Y: y1},
	}
}

// add appends the rectangle [x0,x1)×[y0,y1).  It must either extend the
// current band (same y-range, x0 not left of the previous rectangle's
// left edge) or start at or below the bottom of the current band.
// Empty rectangles are ignored.
func (b *builder) add(x0, y0, x1, y1 int) {
	if x0 >= x1 || y0 >= y1 {
		return
	}
	if n := len(b.rects); n > b.curBand {
		last := &b.rects[n-1]
		if last.Min.Y == y0 && last.Max.Y == y1 {
			if x0 <= last.Max.X {
				last.Max.X = max(last.Max.X, x1)
				return
			}
			b.rects = append(b.rects, box(x0, y0, x1, y1))
			return
		}
		b.endBand()
	}
	b.rects = append(b.rects, box(x0, y0, x1, y1))
}

// canAdd reports whether r can be passed to add without breaking the
// y-x order.
func (b *builder) canAdd(r image.Rectangle) bool {
	n := len(b.rects)
	if n == 0 {
		return true
	}
	return follows(b.rects[n-1], r)
}

// follows reports whether next can be placed after last in a banded list.
func follows(last, next image.Rectangle) bool {
	if next.Min.Y >= last.Max.Y {
		return true
	}
	return next.Min.Y == last.Min.Y && next.Max.Y == last.Max.Y &&
		next.Min.X >= last.Max.X
}

// endBand closes the current band.
func (b *builder) endBand() {
	if len(b.rects) == b.curBand {
		return
	}
	if b.coalesce() {
		b.curBand = len(b.rects)
		return
	}
	b.prevBand = b.curBand
	b.curBand = len(b.rects)
}

// coalesce merges the current band into the previous one if both bands
// touch vertically and have identical x-intervals.
func (b *builder) coalesce() bool {
	prev, cur := b.prevBand, b.curBand
	n := len(b.rects) - cur
	if cur-prev != n || b.rects[prev].Max.Y != b.rects[cur].Min.Y {
		return false
	}
	for i := range n {
		p, c := b.rects[prev+i], b.rects[cur+i]
		if p.Min.X != c.Min.X || p.Max.X != c.Max.X {
			return false
		}
	}
	y := b.rects[cur].Max.Y
	for i := prev; i < cur; i++ {
		b.rects[i].Max.Y = y
	}
	b.rects = b.rects[:cur]
	return true
}

// finish closes the last band and returns the region.
func (b *builder) finish() Region {
	b.endBand()
	res := fromList(b.rects)
	*b = builder{}
	return res
}

// canAppend reports whether all of o can be placed after all of r in
// y-x order, so that r ∪ o is obtained by concatenation.
func canAppend(r, o Region) bool {
	last := r.extents
	if r.rects != nil {
		last = r.rects[len(r.rects)-1]
	}
	first := o.extents
	if o.rects != nil {
		first = o.rects[0]
	}
	return follows(last, first)
}

// appendRegions returns the union of r and o, where o must follow r in
// y-x order.  The first band of o may merge with the last band of r.
func appendRegions(r, o Region) Region {
	b := builder{rects: make([]image.Rectangle, 0, r.Len()+o.Len())}
	for _, rect := range r.list() {
		b.add(rect.Min.X, rect.Min.Y, rect.Max.X, rect.Max.Y)
	}
	for _, rect := range o.list() {
		b.add(rect.Min.X, rect.Min.Y, rect.Max.X, rect.Max.Y)
	}
	return b.finish()
}
