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

// Package testcases holds geometry shared by the tests, the benchmarks and
// the tools of the raster module.
package testcases

import (
	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"
	"seehuhn.de/go/pdf/graphics"

	"seehuhn.de/go/raster/region"
)

// TestCase defines a single rendering test.
type TestCase struct {
	Name   string        // lowercase a-z, 0-9 and _ only
	Path   path.Path     // the geometry to render
	Width  int           // canvas width in pixels
	Height int           // canvas height in pixels
	Op     Operation     // cosmetic stroke or region fill
	CTM    matrix.Matrix // user space to device space (zero-value means identity)
}

// Operation is the rendering operation to apply to the path.
type Operation interface {
	isOperation()
}

// Stroke draws the path outline with a cosmetic pen.
type Stroke struct {
	Width     float64               // 0 for full coverage, below 1 for reduced coverage
	Cap       graphics.LineCapStyle // any style other than butt extends open ends
	Antialias bool
	Dash      []float64 // nil for solid lines
	DashPhase float64
}

func (Stroke) isOperation() {}

// Fill converts the path to a region.
type Fill struct {
	Rule region.FillRule
}

func (Fill) isOperation() {}

// Matrix returns the transformation of the test case.
func (tc *TestCase) Matrix() matrix.Matrix {
	if tc.CTM == (matrix.Matrix{}) {
		return matrix.Identity
	}
	return tc.CTM
}

func pt(x, y float64) vec.Vec2 {
	return vec.Vec2{X: x, Y: y}
}

// polyline builds an open path through the given points.
func polyline(pts ...vec.Vec2) path.Path {
	p := &path.Data{}
	p.MoveTo(pts[0])
	for _, q := range pts[1:] {
		p.LineTo(q)
	}
	return p.Iter()
}

// polygon builds a closed path through the given points.
func polygon(pts ...vec.Vec2) path.Path {
	p := &path.Data{}
	p.MoveTo(pts[0])
	for _, q := range pts[1:] {
		p.LineTo(q)
	}
	p.Close()
	return p.Iter()
}

func rectangle(x1, y1, x2, y2 float64) path.Path {
	return polygon(pt(x1, y1), pt(x2, y1), pt(x2, y2), pt(x1, y2))
}
