// Copyright 2024 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package telemetry

import (
	"encoding/binary"
	"fmt"
	"io"
)

// Wire format constants. A frame is always exactly FrameSize bytes:
// one header byte, three little-endian signed 32-bit axis values in
// X, Y, Z order, one footer byte.
const (
	Header byte = 0xA0
	Footer byte = 0xC0

	FrameSize = 14
)

// Frame is one telemetry packet. The header and footer bytes are
// written at construction and never recomputed; only the 12 payload
// bytes change between cycles.
type Frame struct {
	buf [FrameSize]byte
}

// NewFrame returns a frame with the delimiters in place and all three
// axes zero.
func NewFrame() *Frame {
	f := &Frame{}
	f.buf[0] = Header
	f.buf[FrameSize-1] = Footer
	return f
}

// SetAxis stores v into payload slot i (0=X, 1=Y, 2=Z), touching only
// that axis's 4 bytes.
func (f *Frame) SetAxis(i int, v int32) {
	binary.LittleEndian.PutUint32(f.buf[1+4*i:], uint32(v))
}

// Axis returns payload slot i.
func (f *Frame) Axis(i int) int32 {
	return int32(binary.LittleEndian.Uint32(f.buf[1+4*i:]))
}

// Bytes returns the encoded frame. The slice aliases the frame's
// internal buffer and stays valid until the next SetAxis.
func (f *Frame) Bytes() []byte {
	return f.buf[:]
}

// Emit writes the full frame to w exactly once. A short write is
// reported as an error; a frame is never partially emitted on a healthy
// transport.
func (f *Frame) Emit(w io.Writer) error {
	n, err := w.Write(f.buf[:])
	if err != nil {
		return err
	}
	if n != FrameSize {
		return io.ErrShortWrite
	}
	return nil
}

// Unpack is the exact inverse of the frame layout. It requires a
// well-delimited frame of exactly FrameSize bytes.
func Unpack(b []byte) (x, y, z int32, err error) {
	if len(b) != FrameSize {
		return 0, 0, 0, fmt.Errorf("telemetry: frame is %d bytes, want %d", len(b), FrameSize)
	}
	if b[0] != Header || b[FrameSize-1] != Footer {
		return 0, 0, 0, fmt.Errorf("telemetry: bad delimiters 0x%02X/0x%02X", b[0], b[FrameSize-1])
	}
	x = int32(binary.LittleEndian.Uint32(b[1:]))
	y = int32(binary.LittleEndian.Uint32(b[5:]))
	z = int32(binary.LittleEndian.Uint32(b[9:]))
	return x, y, z, nil
}
