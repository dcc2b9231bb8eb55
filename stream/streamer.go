// Copyright 2024 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package stream

import (
	"context"
	"io"
	"time"

	"github.com/telemetrak/accelstream/lis3dh"
	"github.com/telemetrak/accelstream/telemetry"
)

// Sampler is the device surface the acquisition loop needs.
type Sampler interface {
	DataReady() (bool, error)
	ReadAxis(lis3dh.Axis) (int32, error)
}

// Opts configures a Streamer.
type Opts struct {
	// Interval is the sample cadence, matching the device output rate.
	Interval time.Duration
	// PollInterval is how often the loop re-checks the status register.
	// It must be shorter than Interval so ticks are not missed.
	// Defaults to Interval/5.
	PollInterval time.Duration
	// Logf receives one line per failed transaction. nil discards.
	Logf func(string, ...interface{})
}

// Streamer runs the acquisition loop: a ticker goroutine that only sets
// the gate's tick flag, and the loop goroutine that does all bus I/O,
// packs the frame and emits it. One transaction is in flight at a time.
type Streamer struct {
	dev   Sampler
	out   io.Writer
	gate  Gate
	frame *telemetry.Frame
	opts  Opts
}

// New returns a Streamer emitting frames for dev to out.
func New(dev Sampler, out io.Writer, opts Opts) *Streamer {
	if opts.Interval <= 0 {
		opts.Interval = 10 * time.Millisecond
	}
	if opts.PollInterval <= 0 {
		opts.PollInterval = opts.Interval / 5
	}
	if opts.Logf == nil {
		opts.Logf = func(string, ...interface{}) {}
	}
	return &Streamer{
		dev:   dev,
		out:   out,
		frame: telemetry.NewFrame(),
		opts:  opts,
	}
}

// Run blocks until ctx is cancelled. The loop never aborts on a failed
// transaction: a persistent bus fault degrades to frames carrying the
// last good axis values rather than halting output.
func (s *Streamer) Run(ctx context.Context) error {
	tick := time.NewTicker(s.opts.Interval)
	defer tick.Stop()
	done := make(chan struct{})
	defer close(done)
	go func() {
		for {
			select {
			case <-tick.C:
				s.gate.Tick()
			case <-done:
				return
			}
		}
	}()

	poll := time.NewTicker(s.opts.PollInterval)
	defer poll.Stop()
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-poll.C:
			s.cycle()
		}
	}
}

// cycle is one iteration of the acquisition loop: derive the data-ready
// flag from one status read, evaluate the gate, and on fire read the
// three axes in order and emit the frame once.
func (s *Streamer) cycle() {
	ready, err := s.dev.DataReady()
	if err != nil {
		s.opts.Logf("status read failed: %v", err)
	} else {
		s.gate.SetReady(ready)
	}
	if !s.gate.Evaluate() {
		return
	}
	for _, a := range []lis3dh.Axis{lis3dh.AxisX, lis3dh.AxisY, lis3dh.AxisZ} {
		v, err := s.dev.ReadAxis(a)
		if err != nil {
			// Best effort: the axis keeps its previous frame bytes.
			s.opts.Logf("%s axis read failed: %v", a, err)
			continue
		}
		s.frame.SetAxis(int(a), v)
	}
	if err := s.frame.Emit(s.out); err != nil {
		s.opts.Logf("frame emit failed: %v", err)
	}
}
