// Copyright 2024 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

// accelview consumes the accelstream frame stream from a serial port,
// file or stdin and renders it as text lines, a live ANSI color trace,
// or a waveform PNG.
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"github.com/tarm/serial"

	"github.com/telemetrak/accelstream/telemetry"
)

func main() {
	in := flag.String("in", "-", `frame source: serial device, file, or "-" for stdin`)
	baud := flag.Int("baud", 115200, "baud rate when the source is a serial device")
	live := flag.Bool("color", false, "live ANSI color trace instead of text lines")
	plotPath := flag.String("plot", "", "write a waveform PNG to this path at end of stream")
	fontPath := flag.String("font", "", "TTF font for plot labels (optional)")
	count := flag.Int("n", 0, "stop after this many frames (0 = until end of stream)")
	flag.Parse()

	src, err := openInput(*in, *baud)
	if err != nil {
		log.Fatalf("frame source: %v", err)
	}
	defer src.Close()

	var trace *colorTrace
	if *live {
		trace = newColorTrace()
	}

	r := telemetry.NewReader(src)
	var history [][3]int32
	frames := 0
	for {
		x, y, z, err := r.Next()
		if err != nil {
			if err != io.EOF {
				log.Printf("stream ended: %v", err)
			}
			break
		}
		if *plotPath != "" {
			history = append(history, [3]int32{x, y, z})
		}
		switch {
		case trace != nil:
			trace.update(x, y, z)
		default:
			// Values are milli-m/s² on the wire.
			fmt.Printf("X %+9.3f  Y %+9.3f  Z %+9.3f m/s²\n",
				float64(x)/1000, float64(y)/1000, float64(z)/1000)
		}
		frames++
		if *count > 0 && frames >= *count {
			break
		}
	}
	if trace != nil {
		trace.close()
	}
	if *plotPath != "" {
		if err := renderPlot(*plotPath, *fontPath, history); err != nil {
			log.Fatalf("plot: %v", err)
		}
		log.Printf("wrote %d samples to %s", len(history), *plotPath)
	}
}

// openInput treats anything under /dev/ as a serial port and everything
// else as a file path, with "-" meaning stdin.
func openInput(path string, baud int) (io.ReadCloser, error) {
	if path == "-" {
		return io.NopCloser(os.Stdin), nil
	}
	if strings.HasPrefix(path, "/dev/") {
		return serial.OpenPort(&serial.Config{Name: path, Baud: baud})
	}
	return os.Open(path)
}
