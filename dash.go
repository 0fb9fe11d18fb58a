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

import "math"

// dasher decides, pixel by pixel, whether a segment is drawn.  The line
// functions are instantiated once per dasher type, so that solid lines
// pay nothing for dashing.
//
// Methods use value receivers and return the updated state.
type dasher[D any] interface {
	// begin returns the dasher for a segment covering the major-axis
	// range [start, stop) in 26.6 units, and advances the dash phase of
	// the cursor past the segment.  If reverse is set, the segment is
	// swept from its logical end towards its start.
	begin(s *Stroker, c *cursor, reverse bool, start, stop int) D

	// on reports whether the current pixel is drawn.
	on() bool

	// adjust moves on by one pixel.
	adjust() D
}

// solid is the dasher for undashed lines.
type solid struct{}

func (solid) begin(*Stroker, *cursor, bool, int, int) solid { return solid{} }
func (solid) on() bool                                       { return true }
func (d solid) adjust() solid                                { return d }

// dashCursor walks through a cumulative dash table.  Offsets are in
// 1/64 pixel.
type dashCursor struct {
	pattern []int // cumulative end offset of each dash entry
	length  int   // total pattern length
	offset  int   // current position within the pattern
	idx     int   // entry containing offset
	onBit   int   // parity of the "on" entries
}

func (dashCursor) begin(s *Stroker, c *cursor, reverse bool, start, stop int) dashCursor {
	delta := stop - start
	d := dashCursor{length: s.patternLength}

	// The pattern is sampled at pixel centres.
	centre := (start & 63) - 32
	if reverse {
		d.pattern = s.reversePattern
		d.offset = s.patternLength - c.phase - delta - centre
	} else {
		d.pattern = s.pattern
		d.offset = c.phase - centre
		d.onBit = 1
	}
	d.offset %= d.length
	if d.offset < 0 {
		d.offset += d.length
	}
	for d.offset >= d.pattern[d.idx] {
		d.idx++
	}

	c.phase = (c.phase + delta) % d.length
	if c.phase < 0 {
		c.phase += d.length
	}
	return d
}

func (d dashCursor) on() bool {
	return (d.idx+d.onBit)&1 != 0
}

func (d dashCursor) adjust() dashCursor {
	d.offset += 64
	if d.offset >= d.length {
		d.offset %= d.length
		d.idx = 0
	}
	for d.offset >= d.pattern[d.idx] {
		d.idx++
	}
	return d
}

// setDash builds the forward and reverse cumulative dash tables.  Patterns
// of odd length are repeated once, so that "on" and "off" entries
// alternate.  Every entry is at least 1/64 pixel long.
func (s *Stroker) setDash(dash []float64) {
	s.pattern = s.pattern[:0]
	s.reversePattern = s.reversePattern[:0]
	s.patternLength = 0
	if len(dash) == 0 {
		return
	}

	n := len(dash)
	if n%2 == 1 {
		n *= 2
	}
	limit := math.MaxInt32 / float64(2*n)
	entry := func(i int) int {
		v := dash[i%len(dash)] * 64
		switch {
		case v > limit:
			return int(limit)
		case v >= 1:
			return int(v)
		default: // also catches NaN
			return 1
		}
	}

	total := 0
	for i := range n {
		total += entry(i)
		s.pattern = append(s.pattern, total)
	}
	s.patternLength = total
	total = 0
	for i := range n {
		total += entry(n - 1 - i)
		s.reversePattern = append(s.reversePattern, total)
	}
}
