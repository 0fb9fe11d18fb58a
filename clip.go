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
	"math"

	"seehuhn.de/go/geom/rect"
)

// maxDevice is the largest device coordinate the stroker draws to.
// Larger values would overflow the 16.16 accumulators.
const maxDevice = 32766

// deviceClip converts the clip rectangle to integer pixel bounds within
// the supported device range.
func deviceClip(r rect.Rect) image.Rectangle {
	x0, y0 := math.Floor(r.LLx), math.Floor(r.LLy)
	x1, y1 := math.Ceil(r.URx), math.Ceil(r.URy)
	if !(x0 < x1 && y0 < y1) {
		return image.Rectangle{}
	}
	x0 = max(x0, 0)
	y0 = max(y0, 0)
	x1 = min(x1, maxDevice)
	y1 = min(y1, maxDevice)
	if !(x0 < x1 && y0 < y1) {
		return image.Rectangle{}
	}
	return image.Rect(int(x0), int(y0), int(x1), int(y1))
}

// segment is a line segment in device coordinates.
type segment struct {
	x1, y1, x2, y2 float64
}

func (s segment) finite() bool {
	for _, v := range [4]float64{s.x1, s.y1, s.x2, s.y2} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}

// clipLine clips the segment against the clip rectangle enlarged by one
// pixel on each side.  Pixels outside the clip rectangle are removed later,
// so this only needs to keep the fixed point arithmetic in range.
//
// The result is false if nothing of the segment remains.  farClipped
// reports whether the end point was moved.
func (s *Stroker) clipLine(seg segment) (res segment, farClipped, ok bool) {
	if !seg.finite() {
		return seg, true, false
	}
	x1, y1, x2, y2 := seg.x1, seg.y1, seg.x2, seg.y2

	if x1 < s.xmin {
		if x2 <= s.xmin {
			return seg, true, false
		}
		y1 += (y2 - y1) / (x2 - x1) * (s.xmin - x1)
		x1 = s.xmin
	} else if x1 > s.xmax {
		if x2 >= s.xmax {
			return seg, true, false
		}
		y1 += (y2 - y1) / (x2 - x1) * (s.xmax - x1)
		x1 = s.xmax
	}
	if x2 < s.xmin {
		farClipped = true
		y2 += (y2 - y1) / (x2 - x1) * (s.xmin - x2)
		x2 = s.xmin
	} else if x2 > s.xmax {
		farClipped = true
		y2 += (y2 - y1) / (x2 - x1) * (s.xmax - x2)
		x2 = s.xmax
	}

	if y1 < s.ymin {
		if y2 <= s.ymin {
			return seg, true, false
		}
		x1 += (x2 - x1) / (y2 - y1) * (s.ymin - y1)
		y1 = s.ymin
	} else if y1 > s.ymax {
		if y2 >= s.ymax {
			return seg, true, false
		}
		x1 += (x2 - x1) / (y2 - y1) * (s.ymax - y1)
		y1 = s.ymax
	}
	if y2 < s.ymin {
		farClipped = true
		x2 += (x2 - x1) / (y2 - y1) * (s.ymin - y2)
		y2 = s.ymin
	} else if y2 > s.ymax {
		farClipped = true
		x2 += (x2 - x1) / (y2 - y1) * (s.ymax - y2)
		y2 = s.ymax
	}

	return segment{x1, y1, x2, y2}, farClipped, true
}
