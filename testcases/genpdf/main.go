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

// Command genpdf renders the test cases for visual inspection.  For every
// case it writes a PDF with the same geometry drawn as a hairline, a PNG
// of the PDF rendered by Ghostscript, and a PNG produced by the raster
// package.
// Run from the module root directory.
package main

import (
	"fmt"
	"image"
	"image/png"
	"maps"
	"os"
	"os/exec"
	"path/filepath"
	"slices"

	"golang.org/x/image/draw"
	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"
	"seehuhn.de/go/pdf"
	"seehuhn.de/go/pdf/document"
	"seehuhn.de/go/pdf/graphics/color"

	"seehuhn.de/go/raster"
	"seehuhn.de/go/raster/region"
	"seehuhn.de/go/raster/testcases"
)

const outDir = "testdata/compare"

func main() {
	if err := os.MkdirAll(outDir, 0755); err != nil {
		panic(err)
	}

	s := raster.NewStroker(rect.Rect{})
	for _, category := range slices.Sorted(maps.Keys(testcases.All)) {
		for _, tc := range testcases.All[category] {
			name := category + "_" + tc.Name
			pdfPath := filepath.Join(outDir, name+".pdf")
			gsPath := filepath.Join(outDir, name+"_gs.png")
			ownPath := filepath.Join(outDir, name+".png")

			if err := generatePDF(tc, pdfPath); err != nil {
				panic(fmt.Errorf("%s: %w", name, err))
			}
			if err := renderPNG(pdfPath, gsPath, antialias(tc)); err != nil {
				panic(fmt.Errorf("%s: %w", name, err))
			}
			if err := writeOwn(s, tc, ownPath); err != nil {
				panic(fmt.Errorf("%s: %w", name, err))
			}
		}
	}
}

func antialias(tc testcases.TestCase) bool {
	op, ok := tc.Op.(testcases.Stroke)
	return ok && op.Antialias
}

func generatePDF(tc testcases.TestCase, pdfPath string) error {
	// 1 point = 1 pixel at 72 DPI
	paper := &pdf.Rectangle{
		URx: float64(tc.Width),
		URy: float64(tc.Height),
	}

	page, err := document.CreateSinglePage(pdfPath, paper, pdf.V1_7, nil)
	if err != nil {
		return err
	}

	// black background, so that gray values equal coverage
	page.SetFillColor(color.DeviceGray(0))
	page.Rectangle(0, 0, float64(tc.Width), float64(tc.Height))
	page.Fill()

	// The test cases use a top-left origin.
	page.Transform(matrix.Matrix{1, 0, 0, -1, 0, float64(tc.Height)})

	page.SetFillColor(color.DeviceGray(1))
	page.SetStrokeColor(color.DeviceGray(1))

	if op, ok := tc.Op.(testcases.Stroke); ok {
		// A width of 0 selects the thinnest line the device can draw.
		// Dash lengths of cosmetic lines are in device units, so the
		// transformation is applied to the path coordinates below.
		page.SetLineWidth(0)
		page.SetLineCap(op.Cap)
		if len(op.Dash) > 0 {
			page.SetLineDash(op.Dash, op.DashPhase)
		}
		if op.Width > 0 && op.Width < 1 {
			page.SetStrokeColor(color.DeviceGray(op.Width))
		}
	}

	m := tc.Matrix()
	apply := func(p vec.Vec2) (float64, float64) {
		return m[0]*p.X + m[2]*p.Y + m[4], m[1]*p.X + m[3]*p.Y + m[5]
	}
	for cmd, pts := range tc.Path.ToCubic() {
		switch cmd {
		case path.CmdMoveTo:
			page.MoveTo(apply(pts[0]))
		case path.CmdLineTo:
			page.LineTo(apply(pts[0]))
		case path.CmdCubeTo:
			x1, y1 := apply(pts[0])
			x2, y2 := apply(pts[1])
			x3, y3 := apply(pts[2])
			page.CurveTo(x1, y1, x2, y2, x3, y3)
		case path.CmdClose:
			page.ClosePath()
		}
	}

	switch op := tc.Op.(type) {
	case testcases.Fill:
		if op.Rule == region.EvenOdd {
			page.FillEvenOdd()
		} else {
			page.Fill()
		}
	case testcases.Stroke:
		page.Stroke()
	}

	return page.Close()
}

func renderPNG(pdfPath, pngPath string, antialias bool) error {
	alphaBits := "-dGraphicsAlphaBits=1"
	if antialias {
		alphaBits = "-dGraphicsAlphaBits=4"
	}
	cmd := exec.Command(
		"gs", "-q",
		"-sDEVICE=pnggray",
		"-r72",
		alphaBits,
		"-o", pngPath,
		pdfPath,
	)
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	return cmd.Run()
}

// writeOwn renders a test case with the raster package, white on black.
func writeOwn(s *raster.Stroker, tc testcases.TestCase, pngPath string) (err error) {
	bounds := image.Rect(0, 0, tc.Width, tc.Height)
	img := image.NewGray(bounds)

	switch op := tc.Op.(type) {
	case testcases.Stroke:
		s.Reset(rect.Rect{URx: float64(tc.Width), URy: float64(tc.Height)})
		s.CTM = tc.Matrix()
		s.Width = op.Width
		s.Cap = op.Cap
		s.Antialias = op.Antialias
		s.Dash = op.Dash
		s.DashPhase = op.DashPhase
		s.DrawPath(tc.Path, &raster.ImageBlender{Dst: img, Src: image.White, Op: draw.Over})
	case testcases.Fill:
		r := region.FromPath(tc.Path, tc.Matrix(), op.Rule)
		draw.DrawMask(img, bounds, image.White, image.Point{}, r, image.Point{}, draw.Over)
	}

	f, err := os.Create(pngPath)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()
	return png.Encode(f, img)
}
