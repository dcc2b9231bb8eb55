// Copyright 2024 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package telemetry

import "io"

// Reader extracts frames from a byte stream. The wire format carries no
// length or checksum, so the reader re-synchronizes by discarding bytes
// until a header byte has a footer byte exactly FrameSize-1 positions
// later. A partial trailing frame is reported as io.ErrUnexpectedEOF.
type Reader struct {
	r   io.Reader
	buf []byte
}

// NewReader returns a Reader decoding frames from r.
func NewReader(r io.Reader) *Reader {
	return &Reader{r: r}
}

// Next returns the axis values of the next well-delimited frame.
func (fr *Reader) Next() (x, y, z int32, err error) {
	for {
		if fr.sync() {
			x, y, z, err = Unpack(fr.buf[:FrameSize])
			fr.buf = fr.buf[FrameSize:]
			return x, y, z, err
		}
		var chunk [64]byte
		n, rerr := fr.r.Read(chunk[:])
		fr.buf = append(fr.buf, chunk[:n]...)
		if rerr != nil {
			if fr.sync() {
				continue
			}
			if rerr == io.EOF && len(fr.buf) > 0 {
				return 0, 0, 0, io.ErrUnexpectedEOF
			}
			return 0, 0, 0, rerr
		}
	}
}

// sync discards leading bytes until buf starts with a well-delimited
// frame, reporting whether one is available.
func (fr *Reader) sync() bool {
	for len(fr.buf) >= FrameSize {
		if fr.buf[0] == Header && fr.buf[FrameSize-1] == Footer {
			return true
		}
		fr.buf = fr.buf[1:]
	}
	return false
}
