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
	"image/color"

	ftraster "github.com/golang/freetype/raster"
	"golang.org/x/image/draw"

	"seehuhn.de/go/raster/region"
)

// Span is a horizontal run of pixels with equal coverage.
type Span struct {
	X        uint16
	Len      uint16 // at least 1
	Y        int
	Coverage uint8
}

// A Blender receives the output of a [Stroker].
//
// Within one call, spans are sorted by y and then by x, and no two spans
// overlap.  A draw call may call Blend several times.  The slice is reused
// after Blend returns, so implementations must not keep it.
type Blender interface {
	Blend(spans []Span)
}

// BlendFunc adapts an ordinary function to the [Blender] interface.
type BlendFunc func(spans []Span)

// Blend calls f(spans).
func (f BlendFunc) Blend(spans []Span) {
	f(spans)
}

// ImageBlender composites spans onto an image.  Each span is drawn with
// the span coverage as a uniform mask.
//
// If Dst is an *image.RGBA, Src is an *image.Uniform and Op is draw.Over,
// the stroker writes pixels directly instead of calling Blend.
type ImageBlender struct {
	Dst draw.Image
	Src image.Image
	Op  draw.Op
}

// Blend implements the [Blender] interface.
func (b *ImageBlender) Blend(spans []Span) {
	mask := &image.Uniform{}
	for _, sp := range spans {
		x := int(sp.X)
		r := image.Rect(x, sp.Y, x+int(sp.Len), sp.Y+1)
		mask.C = color.Alpha{A: sp.Coverage}
		draw.DrawMask(b.Dst, r, b.Src, r.Min, mask, image.Point{}, b.Op)
	}
}

// fastRGBA returns the destination image and the source colour if the
// blender allows direct pixel writes.
func (b *ImageBlender) fastRGBA() (*image.RGBA, [4]uint32, bool) {
	dst, ok := b.Dst.(*image.RGBA)
	if !ok || b.Op != draw.Over {
		return nil, [4]uint32{}, false
	}
	src, ok := b.Src.(*image.Uniform)
	if !ok {
		return nil, [4]uint32{}, false
	}
	r, g, bl, a := src.RGBA()
	return dst, [4]uint32{r, g, bl, a}, true
}

// RegionClipper restricts spans to a region before passing them on.
//
// When a [Stroker] draws into a RegionClipper, its clip rectangle is
// additionally limited to the bounds of the region.
type RegionClipper struct {
	Region region.Region
	Next   Blender

	buf []Span
}

// Blend implements the [Blender] interface.
func (c *RegionClipper) Blend(spans []Span) {
	c.buf = c.buf[:0]
	for _, sp := range spans {
		x0 := int(sp.X)
		x1 := x0 + int(sp.Len)
		for r0, r1 := range c.Region.Row(sp.Y) {
			if r1 <= x0 {
				continue
			}
			if r0 >= x1 {
				break
			}
			a, b := max(x0, r0), min(x1, r1)
			c.buf = append(c.buf, Span{
				X:        uint16(a),
				Len:      uint16(b - a),
				Y:        sp.Y,
				Coverage: sp.Coverage,
			})
		}
	}
	if len(c.buf) > 0 {
		c.Next.Blend(c.buf)
	}
}

// PainterBlender passes spans on to a freetype painter.  Coverage values
// are scaled to the 16-bit alpha range used by freetype.
type PainterBlender struct {
	Painter ftraster.Painter

	buf []ftraster.Span
}

// Blend implements the [Blender] interface.
func (p *PainterBlender) Blend(spans []Span) {
	p.buf = p.buf[:0]
	for _, sp := range spans {
		x := int(sp.X)
		p.buf = append(p.buf, ftraster.Span{
			Y:     sp.Y,
			X0:    x,
			X1:    x + int(sp.Len),
			Alpha: uint32(sp.Coverage) * 0x101,
		})
	}
	p.Painter.Paint(p.buf, false)
}
