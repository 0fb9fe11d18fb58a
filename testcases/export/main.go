// Command export writes the test case definitions to JSON, for use by
// external reference renderers.
// Run from the module root directory.
package main

import (
	"encoding/json"
	"fmt"
	"maps"
	"os"
	"path/filepath"
	"slices"

	"seehuhn.de/go/geom/path"

	"seehuhn.de/go/raster/testcases"
)

func main() {
	var out struct {
		TestCases []jsonTestCase `json:"testcases"`
	}

	for _, category := range slices.Sorted(maps.Keys(testcases.All)) {
		for _, tc := range testcases.All[category] {
			out.TestCases = append(out.TestCases, toJSON(category, tc))
		}
	}

	if err := os.MkdirAll("testdata", 0755); err != nil {
		panic(err)
	}
	if err := writeJSON(filepath.Join("testdata", "testcases.json"), out); err != nil {
		panic(err)
	}
}

func writeJSON(fname string, v any) (err error) {
	f, err := os.Create(fname)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()

	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("%s: %w", fname, err)
	}
	return nil
}

type jsonTestCase struct {
	Name      string        `json:"name"`
	Width     int           `json:"width"`
	Height    int           `json:"height"`
	CTM       []float64     `json:"ctm"`
	Path      []jsonSegment `json:"path"`
	Op        string        `json:"op"`
	FillRule  string        `json:"fill_rule,omitempty"`
	Opacity   float64       `json:"opacity,omitempty"`
	LineCap   string        `json:"line_cap,omitempty"`
	Antialias bool          `json:"antialias,omitempty"`
	Dash      []float64     `json:"dash,omitempty"`
	DashPhase float64       `json:"dash_phase,omitempty"`
}

type jsonSegment struct {
	Cmd string      `json:"cmd"`
	Pts [][]float64 `json:"pts"`
}

func toJSON(category string, tc testcases.TestCase) jsonTestCase {
	m := tc.Matrix()
	jtc := jsonTestCase{
		Name:   category + "_" + tc.Name,
		Width:  tc.Width,
		Height: tc.Height,
		CTM:    m[:],
		Path:   pathToJSON(tc.Path),
	}

	switch op := tc.Op.(type) {
	case testcases.Fill:
		jtc.Op = "fill"
		jtc.FillRule = op.Rule.String()
	case testcases.Stroke:
		jtc.Op = "stroke"
		jtc.Opacity = 1
		if op.Width > 0 && op.Width < 1 {
			jtc.Opacity = op.Width
		}
		jtc.LineCap = op.Cap.String()
		jtc.Antialias = op.Antialias
		jtc.Dash = op.Dash
		jtc.DashPhase = op.DashPhase
	}
	return jtc
}

func pathToJSON(p path.Path) []jsonSegment {
	var segs []jsonSegment
	for cmd, pts := range p {
		seg := jsonSegment{Pts: make([][]float64, len(pts))}
		switch cmd {
		case path.CmdMoveTo:
			seg.Cmd = "M"
		case path.CmdLineTo:
			seg.Cmd = "L"
		case path.CmdQuadTo:
			seg.Cmd = "Q"
		case path.CmdCubeTo:
			seg.Cmd = "C"
		case path.CmdClose:
			seg.Cmd = "Z"
		}
		for i, pt := range pts {
			seg.Pts[i] = []float64{pt.X, pt.Y}
		}
		segs = append(segs, seg)
	}
	return segs
}
