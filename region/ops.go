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

// Union returns the set of pixels in r or o.
func (r Region) Union(o Region) Region {
	switch {
	case o.IsEmpty():
		return r
	case r.IsEmpty():
		return o
	case o.extents.In(r.inner):
		return r
	case r.extents.In(o.inner):
		return o
	case canAppend(r, o):
		return appendRegions(r, o)
	case canAppend(o, r):
		return appendRegions(o, r)
	case r.Equal(o):
		return r
	}
	return regionOp(r.list(), o.list(), unionOverlap, copyBand, copyBand)
}

// Intersect returns the set of pixels in both r and o.
func (r Region) Intersect(o Region) Region {
	switch {
	case r.IsEmpty() || o.IsEmpty() || !r.extents.Overlaps(o.extents):
		return Region{}
	case r.extents.In(o.inner):
		return r
	case o.extents.In(r.inner):
		return o
	case r.isSingle() && o.isSingle():
		return Rect(r.extents.Intersect(o.extents))
	case o.isSingle():
		return r.clip(o.extents)
	case r.isSingle():
		return o.clip(r.extents)
	}
	return regionOp(r.list(), o.list(), intersectOverlap, nil, nil)
}

// Subtract returns the set of pixels in r but not in o.
func (r Region) Subtract(o Region) Region {
	switch {
	case r.IsEmpty() || o.IsEmpty():
		return r
	case r.extents.In(o.inner):
		return Region{}
	case !r.extents.Overlaps(o.extents):
		return r
	case r.Equal(o):
		return Region{}
	}
	return regionOp(r.list(), o.list(), subtractOverlap, copyBand, nil)
}

// Xor returns the set of pixels in exactly one of r and o.
func (r Region) Xor(o Region) Region {
	switch {
	case r.IsEmpty():
		return o
	case o.IsEmpty():
		return r
	case !r.extents.Overlaps(o.extents):
		return r.Union(o)
	case r.Equal(o):
		return Region{}
	}
	return r.Subtract(o).Union(o.Subtract(r))
}

// clip intersects every rectangle of r with c.
func (r Region) clip(c image.Rectangle) Region {
	var b builder
	for _, rect := range r.list() {
		if q := rect.Intersect(c); !q.Empty() {
			b.add(q.Min.X, q.Min.Y, q.Max.X, q.Max.Y)
		}
	}
	return b.finish()
}

// overlapFunc emits the rectangles for the y-range [y0,y1), where both
// r1 and r2 are bands of the two operands.
type overlapFunc func(out *builder, r1, r2 []image.Rectangle, y0, y1 int)

// nonOverlapFunc emits the rectangles for the y-range [y0,y1), where only
// one operand has the band r.
type nonOverlapFunc func(out *builder, r []image.Rectangle, y0, y1 int)

// regionOp sweeps over the bands of a and b from top to bottom.  Each
// y-range covered by just one operand is handed to the corresponding
// non-overlap function (a nil function drops the range), each range
// covered by both operands to the overlap function.  Both a and b must be
// non-empty and in banded form.
func regionOp(a, b []image.Rectangle, overlap overlapFunc, nonOverlapA, nonOverlapB nonOverlapFunc) Region {
	out := builder{rects: make([]image.Rectangle, 0, 2*max(len(a), len(b)))}

	// ybot is the bottom of the most recently handled y-range.
	ybot := min(a[0].Min.Y, b[0].Min.Y)

	i, j := 0, 0
	for i < len(a) && j < len(b) {
		iEnd := bandEnd(a, i)
		jEnd := bandEnd(b, j)
		ra, rb := a[i], b[j]

		var ytop int
		switch {
		case ra.Min.Y < rb.Min.Y:
			if nonOverlapA != nil {
				top := max(ra.Min.Y, ybot)
				bot := min(ra.Max.Y, rb.Min.Y)
				if top < bot {
					nonOverlapA(&out, a[i:iEnd], top, bot)
				}
			}
			ytop = rb.Min.Y
		case rb.Min.Y < ra.Min.Y:
			if nonOverlapB != nil {
				top := max(rb.Min.Y, ybot)
				bot := min(rb.Max.Y, ra.Min.Y)
				if top < bot {
					nonOverlapB(&out, b[j:jEnd], top, bot)
				}
			}
			ytop = ra.Min.Y
		default:
			ytop = ra.Min.Y
		}

		ybot = min(ra.Max.Y, rb.Max.Y)
		if ybot > ytop {
			overlap(&out, a[i:iEnd], b[j:jEnd], ytop, ybot)
		}

		if ra.Max.Y == ybot {
			i = iEnd
		}
		if rb.Max.Y == ybot {
			j = jEnd
		}
	}

	switch {
	case i < len(a) && nonOverlapA != nil:
		for i < len(a) {
			iEnd := bandEnd(a, i)
			nonOverlapA(&out, a[i:iEnd], max(a[i].Min.Y, ybot), a[i].Max.Y)
			i = iEnd
		}
	case j < len(b) && nonOverlapB != nil:
		for j < len(b) {
			jEnd := bandEnd(b, j)
			nonOverlapB(&out, b[j:jEnd], max(b[j].Min.Y, ybot), b[j].Max.Y)
			j = jEnd
		}
	}

	return out.finish()
}

// bandEnd returns the index just past the band starting at rects[i].
func bandEnd(rects []image.Rectangle, i int) int {
	y := rects[i].Min.Y
	j := i + 1
	for j < len(rects) && rects[j].Min.Y == y {
		j++
	}
	return j
}

func copyBand(out *builder, r []image.Rectangle, y0, y1 int) {
	for _, rect := range r {
		out.add(rect.Min.X, y0, rect.Max.X, y1)
	}
}

// unionOverlap merges the x-intervals of both bands in order of their left
// edges.  The builder joins intervals which overlap or touch.
func unionOverlap(out *builder, r1, r2 []image.Rectangle, y0, y1 int) {
	i, j := 0, 0
	for i < len(r1) || j < len(r2) {
		var rect image.Rectangle
		if j == len(r2) || i < len(r1) && r1[i].Min.X < r2[j].Min.X {
			rect = r1[i]
			i++
		} else {
			rect = r2[j]
			j++
		}
		out.add(rect.Min.X, y0, rect.Max.X, y1)
	}
}

func intersectOverlap(out *builder, r1, r2 []image.Rectangle, y0, y1 int) {
	i, j := 0, 0
	for i < len(r1) && j < len(r2) {
		x0 := max(r1[i].Min.X, r2[j].Min.X)
		x1 := min(r1[i].Max.X, r2[j].Max.X)
		out.add(x0, y0, x1, y1)

		// advance whichever interval ends first
		switch {
		case r1[i].Max.X < r2[j].Max.X:
			i++
		case r2[j].Max.X < r1[i].Max.X:
			j++
		default:
			i++
			j++
		}
	}
}

// subtractOverlap walks the minuend intervals r1 from left to right and
// cuts away every subtrahend interval of r2.
func subtractOverlap(out *builder, r1, r2 []image.Rectangle, y0, y1 int) {
	i, j := 0, 0
	x := r1[0].Min.X // left edge of the part of r1[i] not yet handled

	nextMinuend := func() {
		i++
		if i < len(r1) {
			x = r1[i].Min.X
		}
	}

	for i < len(r1) && j < len(r2) {
		m, s := r1[i], r2[j]
		switch {
		case s.Max.X <= x:
			// subtrahend lies to the left
			j++
		case s.Min.X <= x:
			// subtrahend covers the left end of the minuend
			x = s.Max.X
			if x >= m.Max.X {
				nextMinuend()
			} else {
				j++
			}
		case s.Min.X < m.Max.X:
			// subtrahend splits the minuend
			out.add(x, y0, s.Min.X, y1)
			x = s.Max.X
			if x >= m.Max.X {
				nextMinuend()
			} else {
				j++
			}
		default:
			// minuend ends before the subtrahend starts
			out.add(x, y0, m.Max.X, y1)
			nextMinuend()
		}
	}
	for i < len(r1) {
		out.add(x, y0, r1[i].Max.X, y1)
		nextMinuend()
	}
}
