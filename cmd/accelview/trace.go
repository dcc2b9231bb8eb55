// Copyright 2024 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package main

import (
	"bytes"
	"image/color"
	"io"

	"github.com/maruel/ansi256"
	"github.com/mattn/go-colorable"
)

// barWidth is the number of character cells per axis bar. Full scale is
// barScale milli-m/s² (~4g) across the bar.
const (
	barWidth = 12
	barScale = 40000
)

var axisColors = [3]color.NRGBA{
	{R: 0xE0, G: 0x40, B: 0x40, A: 0xFF}, // X
	{R: 0x40, G: 0xC0, B: 0x40, A: 0xFF}, // Y
	{R: 0x40, G: 0x80, B: 0xE0, A: 0xFF}, // Z
}

// colorTrace renders one in-place line of three colored magnitude bars.
type colorTrace struct {
	w       io.Writer
	palette ansi256.Palette
	buf     bytes.Buffer
}

func newColorTrace() *colorTrace {
	return &colorTrace{
		w:       colorable.NewColorableStdout(),
		palette: *ansi256.Default,
	}
}

func (t *colorTrace) update(x, y, z int32) {
	// This code is designed to minimize the amount of memory allocated
	// per call.
	t.buf.Reset()
	t.buf.WriteString("\r\033[0m")
	for i, v := range [3]int32{x, y, z} {
		n := int(abs32(v)) * barWidth / barScale
		if n > barWidth {
			n = barWidth
		}
		for b := 0; b < n; b++ {
			t.buf.WriteString(t.palette.Block(axisColors[i]))
		}
		for b := n; b < barWidth; b++ {
			t.buf.WriteByte(' ')
		}
		t.buf.WriteString("\033[0m|")
	}
	_, _ = t.buf.WriteTo(t.w)
}

// close resets the terminal attributes so the shell is not corrupted.
func (t *colorTrace) close() {
	_, _ = t.w.Write([]byte("\n\033[0m"))
}

func abs32(v int32) int32 {
	if v < 0 {
		return -v
	}
	return v
}
