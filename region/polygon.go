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
	"cmp"
	"image"
	"math"
	"slices"

	"seehuhn.de/go/raster/internal/rlog"
)

// FillRule specifies which points are inside a self-intersecting polygon.
type FillRule int

const (
	// EvenOdd includes points with an odd number of edge crossings.
	EvenOdd FillRule = iota

	// Winding includes points with a non-zero winding number.
	Winding
)

func (r FillRule) String() string {
	if r == Winding {
		return "winding"
	}
	return "evenodd"
}

// Polygon returns the pixels inside the closed polygon with the given
// vertices.  Pixel (x, y) is inside if its top-left corner is inside the
// polygon, so an axis-aligned rectangle with corners (x0, y0) and (x1, y1)
// covers exactly image.Rect(x0, y0, x1, y1).
func Polygon(pts []image.Point, rule FillRule) Region {
	if r, ok := rectPolygon(pts); ok {
		return r
	}
	return Polygons([][]image.Point{pts}, rule)
}

// Polygons returns the pixels inside a shape made of several closed
// contours.  The fill rule is applied to all contours together.
func Polygons(contours [][]image.Point, rule FillRule) Region {
	var sc scanConverter
	return sc.convert(contours, rule)
}

// rectPolygon recognizes axis-aligned quadrilaterals, given as four points
// or as five points where the last repeats the first.
func rectPolygon(p []image.Point) (Region, bool) {
	n := len(p)
	if n == 5 && p[4] == p[0] {
		n = 4
	}
	if n != 4 {
		return Region{}, false
	}
	horizontalFirst := p[0].Y == p[1].Y && p[1].X == p[2].X && p[2].Y == p[3].Y && p[3].X == p[0].X
	verticalFirst := p[0].X == p[1].X && p[1].Y == p[2].Y && p[2].X == p[3].X && p[3].Y == p[0].Y
	if !horizontalFirst && !verticalFirst {
		return Region{}, false
	}
	return Rect(image.Rect(p[0].X, p[0].Y, p[2].X, p[2].Y)), true
}

// edge is a non-horizontal polygon edge during scan conversion.  The
// x-coordinate is advanced from one scanline to the next with an integer
// Bresenham scheme.
type edge struct {
	ymin, ymax int // first and last scanline covered by the edge

	x            int // x-coordinate on the current scanline
	d            int // decision variable
	m, m1        int // slope and slope±1
	incr1, incr2 int

	clockwise bool // edge points downwards
	winding   bool // edge is on the winding active edge list
}

// init sets up the edge from top to bottom.  Scanlines top.Y up to
// bottom.Y-1 are covered.
func (e *edge) init(top, bottom image.Point) {
	dy := bottom.Y - top.Y
	dx := bottom.X - top.X

	e.ymin = top.Y
	e.ymax = bottom.Y - 1
	e.x = top.X
	e.m = dx / dy
	if dx < 0 {
		e.m1 = e.m - 1
		e.incr1 = -2*dx + 2*dy*e.m1
		e.incr2 = -2*dx + 2*dy*e.m
		e.d = 2*e.m*dy - 2*dx - 2*dy
	} else {
		e.m1 = e.m + 1
		e.incr1 = 2*dx - 2*dy*e.m1
		e.incr2 = 2*dx - 2*dy*e.m
		e.d = -2*e.m*dy + 2*dx
	}
}

// step advances the edge to the next scanline.
func (e *edge) step() {
	if e.m1 > 0 {
		if e.d > 0 {
			e.x += e.m1
			e.d += e.incr1
		} else {
			e.x += e.m
			e.d += e.incr2
		}
	} else {
		if e.d >= 0 {
			e.x += e.m1
			e.d += e.incr1
		} else {
			e.x += e.m
			e.d += e.incr2
		}
	}
}

// scanConverter holds the working state for converting polygons to
// regions.
type scanConverter struct {
	edges  []edge  // edge table, sorted by first scanline and x
	active []*edge // active edge list, sorted by x

	pts  [numPtsToBuffer]image.Point // span end points awaiting output
	nPts int

	out builder
}

func (sc *scanConverter) convert(contours [][]image.Point, rule FillRule) Region {
	ymin, ymax := math.MaxInt, math.MinInt
	for _, c := range contours {
		if len(c) < 2 {
			continue
		}
		prev := c[len(c)-1]
		for _, cur := range c {
			if prev.Y != cur.Y {
				var e edge
				if prev.Y > cur.Y {
					e.init(cur, prev)
				} else {
					e.init(prev, cur)
					e.clockwise = true
				}
				sc.edges = append(sc.edges, e)
				ymin = min(ymin, prev.Y, cur.Y)
				ymax = max(ymax, prev.Y, cur.Y)
			}
			prev = cur
		}
	}
	if len(sc.edges) == 0 {
		return Region{}
	}
	if ymax-ymin > maxPolygonHeight {
		rlog.L().Warn("region: polygon too tall, ignored",
			"ymin", ymin, "ymax", ymax, "limit", maxPolygonHeight)
		return Region{}
	}

	slices.SortFunc(sc.edges, func(a, b edge) int {
		if c := cmp.Compare(a.ymin, b.ymin); c != 0 {
			return c
		}
		return cmp.Compare(a.x, b.x)
	})

	next := 0
	fixWinding := false
	for y := ymin; y < ymax; y++ {
		if next < len(sc.edges) && sc.edges[next].ymin == y {
			for next < len(sc.edges) && sc.edges[next].ymin == y {
				sc.insertActive(&sc.edges[next])
				next++
			}
			if rule == Winding {
				sc.computeWinding()
			}
		}

		keep := 0
		for _, e := range sc.active {
			if rule == EvenOdd || e.winding {
				sc.addPoint(e.x, y)
			}
			if e.ymax == y {
				fixWinding = true
				continue
			}
			e.step()
			sc.active[keep] = e
			keep++
		}
		clear(sc.active[keep:])
		sc.active = sc.active[:keep]

		if sc.sortActive() || fixWinding {
			if rule == Winding {
				sc.computeWinding()
			}
			fixWinding = false
		}
	}
	sc.flush()

	return sc.out.finish()
}

// insertActive adds e to the active edge list, before any edge with the
// same or a larger x-coordinate.
func (sc *scanConverter) insertActive(e *edge) {
	i := 0
	for i < len(sc.active) && sc.active[i].x < e.x {
		i++
	}
	sc.active = slices.Insert(sc.active, i, e)
}

// sortActive restores the x-order of the active edge list after the edges
// have been advanced.  Edges move little between scanlines, so insertion
// sort is used.  The return value reports whether the order changed.
func (sc *scanConverter) sortActive() bool {
	changed := false
	a := sc.active
	for i := 1; i < len(a); i++ {
		e := a[i]
		j := i
		for j > 0 && a[j-1].x > e.x {
			a[j] = a[j-1]
			j--
		}
		if j != i {
			a[j] = e
			changed = true
		}
	}
	return changed
}

// computeWinding marks the active edges where the winding number changes
// between zero and non-zero.
func (sc *scanConverter) computeWinding() {
	outside := true
	count := 0
	for _, e := range sc.active {
		if e.clockwise {
			count++
		} else {
			count--
		}
		e.winding = outside == (count != 0)
		if e.winding {
			outside = !outside
		}
	}
}

// addPoint records one end of a span.  Consecutive pairs of points form
// the half-open spans [x0, x1) on their scanline.
func (sc *scanConverter) addPoint(x, y int) {
	sc.pts[sc.nPts] = image.Point{X: x, Y: y}
	sc.nPts++
	if sc.nPts == len(sc.pts) {
		sc.flush()
	}
}

// flush moves the buffered spans into the output region.
func (sc *scanConverter) flush() {
	for k := 0; k+1 < sc.nPts; k += 2 {
		p, q := sc.pts[k], sc.pts[k+1]
		sc.out.add(p.X, p.Y, q.X, p.Y+1)
	}
	sc.nPts = 0
}

const (
	// numPtsToBuffer is the capacity of the span point buffer.  It must be
	// even, so that the two ends of a span are always flushed together.
	numPtsToBuffer = 200

	// maxPolygonHeight bounds the number of scanlines of a polygon.
	// Taller polygons are rejected.
	maxPolygonHeight = 100000
)
