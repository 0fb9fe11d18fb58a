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

// Package raster draws cosmetic lines: thin strokes whose width does not
// depend on the transformation.  Lines are drawn with a fixed point DDA,
// either aliased with dropout control or antialiased, and are delivered
// as coverage spans to a [Blender].
//
// The sub-package region implements pixel regions, which can be used to
// clip the output via a [RegionClipper].
package raster

import (
	"image"
	"math"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"
	"seehuhn.de/go/pdf/graphics"

	"seehuhn.de/go/raster/internal/rlog"
)

// Stroker draws cosmetic lines.  Create one instance and reuse it for many
// draw calls; internal buffers are kept between calls.
//
// A Stroker is not safe for concurrent use.
type Stroker struct {
	// Clip bounds the output, in device coordinates.  The rectangle is
	// rounded outwards to whole pixels, and limited to the range 0 to
	// 32766 on both axes.
	Clip rect.Rect

	// CTM transforms from user space to device space.
	CTM matrix.Matrix

	// Width is the line width in device pixels.  Lines are always one
	// pixel wide.  Widths between 0 and 1 reduce the coverage, a width of
	// 0 means full coverage.
	Width float64

	// Cap sets the style for the ends of open paths.  Any style other
	// than butt extends the line by half a pixel.
	Cap graphics.LineCapStyle

	// Antialias selects antialiased drawing.
	Antialias bool

	// Dash specifies alternating on/off lengths in device pixels.  Nil
	// means solid lines.
	Dash []float64

	// DashPhase offsets the start of the dash pattern, in device pixels.
	DashPhase float64

	// state for the current draw call
	clip                   image.Rectangle
	xmin, xmax, ymin, ymax float64
	opacity                int
	drawCaps               bool
	line                   func(s *Stroker, c *cursor, seg segment, caps capStyle) bool
	plot                   func(x, y, coverage int)
	out                    Blender

	// dash tables
	pattern        []int
	reversePattern []int
	patternLength  int
	endPhase       int

	// direct drawing to an RGBA image
	dst *image.RGBA
	src [4]uint32

	spans []Span

	// the subpath being collected by DrawPath
	elems    []element
	start    vec.Vec2
	current  vec.Vec2
	inPath   bool
	isClosed bool
}

// element is a straight line or a cubic Bézier curve in device space,
// starting at the end point of the previous element.
type element struct {
	cubic bool
	pts   [3]vec.Vec2 // end point, or two control points and end point
}

func (e *element) end() vec.Vec2 {
	if e.cubic {
		return e.pts[2]
	}
	return e.pts[0]
}

const (
	// maxSpans is the capacity of the span buffer.
	maxSpans = 255

	// maxCubicDepth limits the recursive subdivision of cubic curves.
	maxCubicDepth = 6
)

// NewStroker returns a Stroker with the given clip rectangle and default
// values for the other parameters.
func NewStroker(clip rect.Rect) *Stroker {
	s := &Stroker{}
	s.Reset(clip)
	return s
}

// Reset restores the default parameters and sets the clip rectangle,
// preserving internal buffer capacity for reuse.
func (s *Stroker) Reset(clip rect.Rect) {
	s.Clip = clip
	s.CTM = matrix.Identity
	s.Width = 0
	s.Cap = graphics.LineCapSquare
	s.Antialias = false
	s.Dash = nil
	s.DashPhase = 0

	s.endPhase = 0
	s.out = nil
	s.dst = nil
	s.spans = s.spans[:0]
	s.elems = s.elems[:0]
	s.inPath = false
}

// setup prepares the state for a draw call with output to out.  All
// configuration dependent decisions are taken here, so that the drawing
// loops do not need to check them.
func (s *Stroker) setup(out Blender) {
	s.out = out
	s.spans = s.spans[:0]

	clip := deviceClip(s.Clip)
	if s.Clip.LLx < 0 || s.Clip.LLy < 0 || s.Clip.URx > maxDevice || s.Clip.URy > maxDevice {
		rlog.L().Debug("raster: clip rectangle limited to device range",
			"clip", s.Clip, "device", clip)
	}
	if rc, ok := out.(*RegionClipper); ok {
		clip = clip.Intersect(rc.Region.Bounds())
	}

	s.plot = s.plotSpan
	s.dst = nil
	if ib, ok := out.(*ImageBlender); ok {
		if dst, src, ok := ib.fastRGBA(); ok {
			s.dst = dst
			s.src = src
			clip = clip.Intersect(dst.Rect)
			s.plot = s.plotRGBA
		}
	}

	s.clip = clip
	s.xmin = float64(clip.Min.X - 1)
	s.xmax = float64(clip.Max.X + 1)
	s.ymin = float64(clip.Min.Y - 1)
	s.ymax = float64(clip.Max.Y + 1)

	s.setDash(s.Dash)

	switch {
	case s.Width == 0:
		s.opacity = 256
	case s.Width >= 1:
		s.opacity = 256
	case s.Width > 0:
		s.opacity = int(256 * s.Width)
	default:
		s.opacity = 0
	}

	s.drawCaps = s.Cap != graphics.LineCapButt

	dashed := s.patternLength > 0
	switch {
	case s.Antialias && dashed:
		s.line = drawLineAA[dashCursor]
	case s.Antialias:
		s.line = drawLineAA[solid]
	case dashed:
		s.line = drawLine[dashCursor]
	default:
		s.line = drawLine[solid]
	}
}

// newCursor returns the cursor for a new path traversal.
func (s *Stroker) newCursor() cursor {
	c := cursor{}
	if s.patternLength > 0 {
		phase := s.DashPhase * 64
		if math.IsNaN(phase) || math.IsInf(phase, 0) {
			phase = 0
		}
		c.phase = int(math.Mod(phase, float64(s.patternLength)))
		if c.phase < 0 {
			c.phase += s.patternLength
		}
	}
	return c
}

// EndDashPhase returns the dash phase at the end of the most recent line
// or subpath, in device pixels.  Setting DashPhase to this value
// continues the dash pattern in the next call.
func (s *Stroker) EndDashPhase() float64 {
	return float64(s.endPhase) / 64
}

func (s *Stroker) transform(p vec.Vec2) vec.Vec2 {
	return vec.Vec2{
		X: s.CTM[0]*p.X + s.CTM[2]*p.Y + s.CTM[4],
		Y: s.CTM[1]*p.X + s.CTM[3]*p.Y + s.CTM[5],
	}
}

// DrawLine draws a line from p1 to p2.  If both points are equal, a
// single pixel is drawn.
func (s *Stroker) DrawLine(p1, p2 vec.Vec2, out Blender) {
	if p1 == p2 {
		s.DrawPoints([]vec.Vec2{p1}, out)
		return
	}

	s.setup(out)
	c := s.newCursor()
	caps := capNone
	if s.drawCaps {
		caps = capBegin | capEnd
	}
	a, b := s.transform(p1), s.transform(p2)
	s.line(s, &c, segment{a.X, a.Y, b.X, b.Y}, caps)
	s.endPhase = c.phase
	s.flush()
}

// DrawPoints draws the pixel containing each point with full coverage.
func (s *Stroker) DrawPoints(pts []vec.Vec2, out Blender) {
	s.setup(out)
	for _, p := range pts {
		q := s.transform(p)
		x, y := math.Floor(q.X), math.Floor(q.Y)
		if !(x >= s.xmin && x <= s.xmax && y >= s.ymin && y <= s.ymax) {
			continue // also skips NaN
		}
		s.plot(int(x), int(y), 255)
	}
	s.flush()
}

// DrawPolyline draws straight lines through the given points.  If closed
// is set, a line from the last point back to the first is added.
func (s *Stroker) DrawPolyline(pts []vec.Vec2, closed bool, out Blender) {
	if len(pts) == 0 {
		return
	}
	s.setup(out)
	s.elems = s.elems[:0]
	s.moveTo(s.transform(pts[0]))
	for _, p := range pts[1:] {
		s.lineTo(s.transform(p))
	}
	if closed {
		s.closePath()
	} else {
		s.strokeSubpath()
	}
	s.flush()
}

// DrawPath draws the outline of a path.
//
// A subpath is drawn as closed, without caps, if it ends with a close
// command or if its last point equals its first point.  Every subpath
// starts at the beginning of the dash pattern.
func (s *Stroker) DrawPath(p path.Path, out Blender) {
	s.setup(out)
	s.elems = s.elems[:0]
	s.inPath = false

	for cmd, pts := range p {
		switch cmd {
		case path.CmdMoveTo:
			s.strokeSubpath()
			s.moveTo(s.transform(pts[0]))
		case path.CmdLineTo:
			if s.inPath {
				s.lineTo(s.transform(pts[0]))
			}
		case path.CmdQuadTo:
			if s.inPath {
				// degree elevation
				p0 := s.current
				q := s.transform(pts[0])
				p2 := s.transform(pts[1])
				c1 := p0.Add(q.Sub(p0).Mul(2.0 / 3.0))
				c2 := p2.Add(q.Sub(p2).Mul(2.0 / 3.0))
				s.cubeTo(c1, c2, p2)
			}
		case path.CmdCubeTo:
			if s.inPath {
				s.cubeTo(s.transform(pts[0]), s.transform(pts[1]), s.transform(pts[2]))
			}
		case path.CmdClose:
			if s.inPath {
				s.closePath()
			}
		}
	}
	s.strokeSubpath()
	s.flush()
}

func finite(p vec.Vec2) bool {
	return !math.IsNaN(p.X) && !math.IsNaN(p.Y) && !math.IsInf(p.X, 0) && !math.IsInf(p.Y, 0)
}

func (s *Stroker) moveTo(p vec.Vec2) {
	s.elems = s.elems[:0]
	s.isClosed = false
	s.inPath = finite(p)
	s.start = p
	s.current = p
}

func (s *Stroker) lineTo(p vec.Vec2) {
	if !finite(p) || p == s.current {
		return
	}
	s.elems = append(s.elems, element{pts: [3]vec.Vec2{p}})
	s.current = p
}

func (s *Stroker) cubeTo(c1, c2, p vec.Vec2) {
	if !finite(c1) || !finite(c2) || !finite(p) {
		return
	}
	if c1 == s.current && c2 == p {
		s.lineTo(p)
		return
	}
	s.elems = append(s.elems, element{cubic: true, pts: [3]vec.Vec2{c1, c2, p}})
	s.current = p
}

// closePath draws the current subpath as a closed subpath.  A new subpath
// starts at the same point.
func (s *Stroker) closePath() {
	s.lineTo(s.start)
	s.isClosed = true
	s.strokeSubpath()
	s.moveTo(s.start)
}

// strokeSubpath draws the collected subpath and clears it.
func (s *Stroker) strokeSubpath() {
	elems := s.elems
	s.elems = s.elems[:0]
	if !s.inPath || len(elems) == 0 {
		return
	}

	closed := s.isClosed || elems[len(elems)-1].end() == s.start
	c := s.newCursor()
	if closed {
		s.primeCursor(&c, lastSegment(s.start, elems))
	}

	caps := capNone
	if !closed && s.drawCaps {
		caps = capBegin
	}
	p := s.start
	for i := range elems {
		e := &elems[i]
		if !closed && s.drawCaps && i == len(elems)-1 {
			caps |= capEnd
		}
		if e.cubic {
			s.drawCubic(&c, p, e.pts[0], e.pts[1], e.pts[2], caps, maxCubicDepth)
		} else {
			s.line(s, &c, segment{p.X, p.Y, e.pts[0].X, e.pts[0].Y}, caps)
		}
		p = e.end()
		caps = capNone
	}
	s.endPhase = c.phase
}

// lastSegment returns the final straight piece of a subpath.  For a curve,
// this is the last non-degenerate leg of its control polygon.
func lastSegment(start vec.Vec2, elems []element) segment {
	n := len(elems)
	e := &elems[n-1]
	prev := start
	if n > 1 {
		prev = elems[n-2].end()
	}
	end := e.end()
	from := prev
	if e.cubic {
		switch {
		case e.pts[1] != end:
			from = e.pts[1]
		case e.pts[0] != end:
			from = e.pts[0]
		}
	}
	return segment{from.X, from.Y, end.X, end.Y}
}

// drawCubic draws a cubic Bézier curve by recursive subdivision.  A curve
// is drawn as a straight line when both control points are close to the
// chord, or when the maximal depth is reached.  Caps are only applied to
// the outer ends of the curve.
func (s *Stroker) drawCubic(c *cursor, p0, p1, p2, p3 vec.Vec2, caps capStyle, level int) {
	if level > 0 {
		d := p3.Sub(p0)
		tol := 0.25 * (math.Abs(d.X) + math.Abs(d.Y))
		e1 := p3.Sub(p1)
		e2 := p3.Sub(p2)
		if math.Abs(d.X*e1.Y-d.Y*e1.X) >= tol || math.Abs(d.X*e2.Y-d.Y*e2.X) >= tol {
			// de Casteljau split at t = 1/2
			q0 := p0.Add(p1).Mul(0.5)
			q1 := p1.Add(p2).Mul(0.5)
			q2 := p2.Add(p3).Mul(0.5)
			r0 := q0.Add(q1).Mul(0.5)
			r1 := q1.Add(q2).Mul(0.5)
			m := r0.Add(r1).Mul(0.5)

			s.drawCubic(c, p0, q0, r0, m, caps&capBegin, level-1)
			s.drawCubic(c, m, r1, q2, p3, caps&capEnd, level-1)
			return
		}
	}
	s.line(s, c, segment{p0.X, p0.Y, p3.X, p3.Y}, caps)
}

// plotSpan adds a pixel to the span buffer.
func (s *Stroker) plotSpan(x, y, coverage int) {
	if x < s.clip.Min.X || x >= s.clip.Max.X || y < s.clip.Min.Y || y >= s.clip.Max.Y {
		return
	}
	coverage = coverage * s.opacity >> 8
	if coverage <= 0 {
		return
	}
	cov := uint8(min(coverage, 255))

	if n := len(s.spans); n > 0 {
		last := &s.spans[n-1]
		end := int(last.X) + int(last.Len)
		if y == last.Y && x == end && cov == last.Coverage {
			last.Len++
			return
		}
		if n == maxSpans || y < last.Y || y == last.Y && x < end {
			s.flush()
		}
	}
	s.spans = append(s.spans, Span{X: uint16(x), Len: 1, Y: y, Coverage: cov})
}

// plotRGBA composites a pixel directly onto the destination image, using
// the same arithmetic as draw.DrawMask with a uniform mask.
func (s *Stroker) plotRGBA(x, y, coverage int) {
	if x < s.clip.Min.X || x >= s.clip.Max.X || y < s.clip.Min.Y || y >= s.clip.Max.Y {
		return
	}
	coverage = coverage * s.opacity >> 8
	if coverage <= 0 {
		return
	}

	const m = 1<<16 - 1
	ma := uint32(min(coverage, 255)) * 0x101
	a := (m - s.src[3]*ma/m) * 0x101

	i := s.dst.PixOffset(x, y)
	d := s.dst.Pix[i : i+4 : i+4]
	d[0] = uint8((uint32(d[0])*a + s.src[0]*ma) / m >> 8)
	d[1] = uint8((uint32(d[1])*a + s.src[1]*ma) / m >> 8)
	d[2] = uint8((uint32(d[2])*a + s.src[2]*ma) / m >> 8)
	d[3] = uint8((uint32(d[3])*a + s.src[3]*ma) / m >> 8)
}

// flush hands the buffered spans to the blender.
func (s *Stroker) flush() {
	if len(s.spans) > 0 && s.out != nil {
		s.out.Blend(s.spans)
	}
	s.spans = s.spans[:0]
}
