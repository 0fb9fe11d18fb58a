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

// Package region implements pixel regions as sets of non-overlapping
// rectangles.
//
// A [Region] is stored in "y-x banded" form: the rectangles are sorted by
// their top edge and then by their left edge, rectangles with the same top
// edge also share the same bottom edge (they form a band), rectangles in a
// band never touch, and two vertically touching bands never have the same
// horizontal layout.  This form is canonical, so two regions cover the same
// pixels exactly when their rectangle lists are equal.
//
// All rectangles use the half-open convention of [image.Rectangle].
// Region values are immutable; all operations return new values.
package region

import (
	"errors"
	"fmt"
	"image"
	"iter"
	"slices"
	"sort"

	"seehuhn.de/go/raster/internal/rlog"
)

// ErrNotBanded is returned by [FromBands] when the rectangle list violates
// the banding rules.
var ErrNotBanded = errors.New("rectangles are not in y-x banded form")

// Region is a set of pixels, represented as a list of rectangles in y-x
// banded form.  The zero value is the empty region.
type Region struct {
	// rects holds the rectangles when there are two or more of them.
	// For empty and single-rectangle regions rects is nil and the
	// region is described by extents alone.
	rects []image.Rectangle

	extents   image.Rectangle
	inner     image.Rectangle // largest member rectangle
	innerArea int
}

// Rect returns the region covering the rectangle r.
func Rect(r image.Rectangle) Region {
	r = r.Canon()
	if r.Empty() {
		return Region{}
	}
	return Region{
		extents:   r,
		inner:     r,
		innerArea: r.Dx() * r.Dy(),
	}
}

// FromRects returns the union of the given rectangles.  Empty rectangles
// are ignored.  If the rectangles are already in y-x order, the region is
// built in a single pass.
func FromRects(rects []image.Rectangle) Region {
	var b builder
	i := 0
	for ; i < len(rects); i++ {
		r := rects[i].Canon()
		if r.Empty() {
			continue
		}
		if !b.canAdd(r) {
			break
		}
		b.add(r.Min.X, r.Min.Y, r.Max.X, r.Max.Y)
	}
	res := b.finish()
	for _, r := range rects[i:] {
		res = res.Union(Rect(r))
	}
	return res
}

// FromBands returns the region described by a rectangle list which is
// already in y-x banded form.  Vertically touching bands with identical
// layout are merged.  If the list violates the banding rules, an error
// wrapping [ErrNotBanded] is returned.
func FromBands(rects []image.Rectangle) (Region, error) {
	for i, r := range rects {
		if r.Empty() {
			return Region{}, notBanded(i, "empty rectangle")
		}
		if i == 0 {
			continue
		}
		prev := rects[i-1]
		switch {
		case r.Min.Y == prev.Min.Y:
			if r.Max.Y != prev.Max.Y {
				return Region{}, notBanded(i, "band height differs")
			}
			if r.Min.X <= prev.Max.X {
				return Region{}, notBanded(i, "touches or overlaps its left neighbour")
			}
		case r.Min.Y < prev.Max.Y:
			return Region{}, notBanded(i, "overlaps the previous band")
		}
	}

	b := builder{rects: make([]image.Rectangle, 0, len(rects))}
	for _, r := range rects {
		b.add(r.Min.X, r.Min.Y, r.Max.X, r.Max.Y)
	}
	return b.finish(), nil
}

func notBanded(i int, reason string) error {
	rlog.L().Debug("region: rejected band list", "index", i, "reason", reason)
	return fmt.Errorf("rectangle %d: %s: %w", i, reason, ErrNotBanded)
}

// fromList wraps a banded rectangle list.  The list must satisfy all
// banding rules.
func fromList(rects []image.Rectangle) Region {
	switch len(rects) {
	case 0:
		return Region{}
	case 1:
		return Rect(rects[0])
	}

	res := Region{rects: rects}
	res.extents = image.Rectangle{
		Min: image.Point{X: rects[0].Min.X, Y: rects[0].Min.Y},
		Max: image.Point{X: rects[0].Max.X, Y: rects[len(rects)-1].Max.Y},
	}
	for _, r := range rects {
		res.extents.Min.X = min(res.extents.Min.X, r.Min.X)
		res.extents.Max.X = max(res.extents.Max.X, r.Max.X)
		if area := r.Dx() * r.Dy(); area > res.innerArea {
			res.inner = r
			res.innerArea = area
		}
	}
	return res
}

// IsEmpty reports whether the region contains no pixels.
func (r Region) IsEmpty() bool {
	return r.extents.Empty()
}

// Len returns the number of rectangles in the banded representation.
func (r Region) Len() int {
	if r.rects != nil {
		return len(r.rects)
	}
	if r.IsEmpty() {
		return 0
	}
	return 1
}

func (r Region) isSingle() bool {
	return r.rects == nil && !r.IsEmpty()
}

// Bounds returns the smallest rectangle containing the region.
func (r Region) Bounds() image.Rectangle {
	return r.extents
}

// list returns the rectangles as a slice.  The caller must not modify it.
func (r Region) list() []image.Rectangle {
	if r.rects != nil {
		return r.rects
	}
	if r.IsEmpty() {
		return nil
	}
	return []image.Rectangle{r.extents}
}

// Rects returns a copy of the rectangles in y-x banded order.
func (r Region) Rects() []image.Rectangle {
	return slices.Clone(r.list())
}

// All iterates over the rectangles in y-x banded order.
func (r Region) All() iter.Seq[image.Rectangle] {
	return func(yield func(image.Rectangle) bool) {
		for _, rect := range r.list() {
			if !yield(rect) {
				return
			}
		}
	}
}

// Area returns the number of pixels in the region.
func (r Region) Area() int {
	area := 0
	for _, rect := range r.list() {
		area += rect.Dx() * rect.Dy()
	}
	return area
}

// Equal reports whether both regions contain the same pixels.
func (r Region) Equal(o Region) bool {
	if r.extents != o.extents || r.Len() != o.Len() {
		return false
	}
	return slices.Equal(r.rects, o.rects)
}

// band returns the index of the first rectangle in the band which contains
// scanline y, or a value such that the rectangle at that index lies below y.
func (r Region) band(y int) int {
	return sort.Search(len(r.rects), func(i int) bool {
		return r.rects[i].Max.Y > y
	})
}

// Contains reports whether the pixel p belongs to the region.
func (r Region) Contains(p image.Point) bool {
	if !p.In(r.extents) {
		return false
	}
	if r.rects == nil {
		return true
	}
	for i := r.band(p.Y); i < len(r.rects) && r.rects[i].Min.Y <= p.Y; i++ {
		rect := r.rects[i]
		if p.X < rect.Min.X {
			return false
		}
		if p.X < rect.Max.X {
			return true
		}
	}
	return false
}

// Row iterates over the half-open x-intervals of the region on scanline y,
// from left to right.
func (r Region) Row(y int) iter.Seq2[int, int] {
	return func(yield func(int, int) bool) {
		if y < r.extents.Min.Y || y >= r.extents.Max.Y {
			return
		}
		if r.rects == nil {
			yield(r.extents.Min.X, r.extents.Max.X)
			return
		}
		for i := r.band(y); i < len(r.rects) && r.rects[i].Min.Y <= y; i++ {
			if !yield(r.rects[i].Min.X, r.rects[i].Max.X) {
				return
			}
		}
	}
}

// Overlap describes how a rectangle relates to a region.
type Overlap int

// These are the possible results of [Region.RectIn].
const (
	Outside Overlap = iota // no pixel of the rectangle is in the region
	Inside                 // every pixel of the rectangle is in the region
	Partial                // some, but not all pixels are in the region
)

func (o Overlap) String() string {
	switch o {
	case Outside:
		return "outside"
	case Inside:
		return "inside"
	case Partial:
		return "partial"
	default:
		return fmt.Sprintf("Overlap(%d)", int(o))
	}
}

// RectIn determines whether the rectangle rect lies inside, outside, or
// partially inside the region.  An empty rectangle is always outside.
func (r Region) RectIn(rect image.Rectangle) Overlap {
	rect = rect.Canon()
	if rect.Empty() || !r.extents.Overlaps(rect) {
		return Outside
	}
	if rect.In(r.inner) {
		return Inside
	}

	partIn, partOut := false, false
	x, y := rect.Min.X, rect.Min.Y
	for _, b := range r.list() {
		if b.Max.Y <= y {
			continue // not yet reached, or rest of a finished band
		}
		if b.Min.Y > y {
			partOut = true // a strip above this band is missing
			if partIn || b.Min.Y >= rect.Max.Y {
				break
			}
			y = b.Min.Y
		}
		if b.Max.X <= x {
			continue
		}
		if b.Min.X > x {
			partOut = true // a piece to the left is missing
			if partIn {
				break
			}
		}
		if b.Min.X < rect.Max.X {
			partIn = true
			if partOut {
				break
			}
		}
		if b.Max.X >= rect.Max.X {
			y = b.Max.Y // this band is done
			if y >= rect.Max.Y {
				break
			}
			x = rect.Min.X
		} else {
			// Rectangles in a band are maximal, so the remainder of the
			// row is not covered.
			partOut = true
			break
		}
	}

	switch {
	case !partIn:
		return Outside
	case partOut || y < rect.Max.Y:
		return Partial
	default:
		return Inside
	}
}

// ContainsRect reports whether every pixel of rect belongs to the region.
func (r Region) ContainsRect(rect image.Rectangle) bool {
	return r.RectIn(rect) == Inside
}

// ProbablyContains is a fast, conservative version of [Region.ContainsRect].
// It only checks the largest rectangle of the region: a true result
// guarantees containment, but a false result may be wrong.
func (r Region) ProbablyContains(rect image.Rectangle) bool {
	rect = rect.Canon()
	return !rect.Empty() && rect.In(r.inner)
}

// Intersects reports whether the region and rect have a pixel in common.
func (r Region) Intersects(rect image.Rectangle) bool {
	return r.RectIn(rect) != Outside
}

// Overlaps reports whether the two regions have a pixel in common.
func (r Region) Overlaps(o Region) bool {
	if r.IsEmpty() || o.IsEmpty() || !r.extents.Overlaps(o.extents) {
		return false
	}
	if r.isSingle() && o.isSingle() {
		return true
	}
	if r.Len() > o.Len() {
		r, o = o, r
	}
	for _, rect := range r.list() {
		if o.Intersects(rect) {
			return true
		}
	}
	return false
}

// Translate returns the region shifted by d.
func (r Region) Translate(d image.Point) Region {
	if r.IsEmpty() || d == (image.Point{}) {
		return r
	}
	res := Region{
		extents:   r.extents.Add(d),
		inner:     r.inner.Add(d),
		innerArea: r.innerArea,
	}
	if r.rects != nil {
		res.rects = make([]image.Rectangle, len(r.rects))
		for i, rect := range r.rects {
			res.rects[i] = rect.Add(d)
		}
	}
	return res
}

func (r Region) String() string {
	return fmt.Sprint(r.list())
}
