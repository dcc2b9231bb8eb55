// Copyright 2024 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package main

import (
	"fmt"
	"os"

	"github.com/fogleman/gg"
	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
)

const (
	plotWidth  = 800
	plotHeight = 300
	plotMargin = 10
)

// renderPlot draws the three axis traces over time into a PNG.
func renderPlot(path, fontPath string, history [][3]int32) error {
	if len(history) < 2 {
		return fmt.Errorf("need at least 2 samples, have %d", len(history))
	}
	face, err := loadFace(fontPath)
	if err != nil {
		return err
	}

	// Symmetric vertical scale around zero.
	maxAbs := int32(1)
	for _, s := range history {
		for _, v := range s {
			if a := abs32(v); a > maxAbs {
				maxAbs = a
			}
		}
	}

	dc := gg.NewContext(plotWidth, plotHeight)
	dc.SetRGB(1, 1, 1)
	dc.Clear()
	dc.SetFontFace(face)

	// Zero line.
	mid := float64(plotHeight) / 2
	dc.SetRGB(0.85, 0.85, 0.85)
	dc.SetLineWidth(1)
	dc.DrawLine(0, mid, plotWidth, mid)
	dc.Stroke()

	traces := [3]struct {
		name    string
		r, g, b float64
	}{
		{"X", 0.88, 0.25, 0.25},
		{"Y", 0.25, 0.75, 0.25},
		{"Z", 0.25, 0.50, 0.88},
	}
	span := float64(plotWidth) / float64(len(history)-1)
	scale := (mid - plotMargin) / float64(maxAbs)
	for axis, tr := range traces {
		dc.SetRGB(tr.r, tr.g, tr.b)
		for i := 1; i < len(history); i++ {
			x0 := float64(i-1) * span
			y0 := mid - float64(history[i-1][axis])*scale
			x1 := float64(i) * span
			y1 := mid - float64(history[i][axis])*scale
			dc.DrawLine(x0, y0, x1, y1)
		}
		dc.Stroke()
		dc.DrawString(tr.name, float64(plotMargin+axis*20), float64(plotMargin+10))
	}
	dc.SetRGB(0.3, 0.3, 0.3)
	dc.DrawString(fmt.Sprintf("±%.1f m/s²", float64(maxAbs)/1000), plotWidth-100, plotMargin+10)

	return dc.SavePNG(path)
}

// loadFace parses a TTF when one is supplied, falling back to the
// built-in bitmap face.
func loadFace(path string) (font.Face, error) {
	if path == "" {
		return basicfont.Face7x13, nil
	}
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	f, err := truetype.Parse(b)
	if err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	return truetype.NewFace(f, &truetype.Options{Size: 13}), nil
}
