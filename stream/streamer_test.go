// Copyright 2024 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package stream

import (
	"bytes"
	"context"
	"errors"
	"testing"
	"time"

	"periph.io/x/conn/v3/i2c/i2ctest"

	"github.com/telemetrak/accelstream/lis3dh"
	"github.com/telemetrak/accelstream/telemetry"
)

// fakeDev is a scripted Sampler.
type fakeDev struct {
	ready    bool
	readyErr error
	axes     map[lis3dh.Axis]int32
	fail     map[lis3dh.Axis]error
	reads    int
}

func (f *fakeDev) DataReady() (bool, error) {
	return f.ready, f.readyErr
}

func (f *fakeDev) ReadAxis(a lis3dh.Axis) (int32, error) {
	f.reads++
	if err := f.fail[a]; err != nil {
		return 0, err
	}
	return f.axes[a], nil
}

func TestCycleEmitsOnlyWhenGateFires(t *testing.T) {
	dev := &fakeDev{ready: false, axes: map[lis3dh.Axis]int32{}}
	var out bytes.Buffer
	s := New(dev, &out, Opts{Interval: time.Millisecond})

	// Data ready but no tick yet: suppressed.
	dev.ready = true
	s.cycle()
	if out.Len() != 0 {
		t.Fatal("emitted without a timer tick")
	}

	// Tick but the device reports stale data: suppressed, and the tick
	// was consumed by the unconditional clear.
	dev.ready = false
	s.gate.Tick()
	s.cycle()
	if out.Len() != 0 {
		t.Fatal("emitted without fresh data")
	}
	dev.ready = true
	s.cycle()
	if out.Len() != 0 {
		t.Fatal("stale tick flag carried into the next cycle")
	}

	// Both conditions in the same cycle: one frame, one read per axis.
	s.gate.Tick()
	s.cycle()
	if out.Len() != telemetry.FrameSize {
		t.Fatalf("emitted %d bytes, want one frame", out.Len())
	}
	if dev.reads != 3 {
		t.Errorf("%d axis reads, want 3", dev.reads)
	}
}

func TestCycleBestEffortAxisUpdate(t *testing.T) {
	dev := &fakeDev{
		ready: true,
		axes:  map[lis3dh.Axis]int32{lis3dh.AxisX: 1000, lis3dh.AxisY: 2000, lis3dh.AxisZ: 3000},
		fail:  map[lis3dh.Axis]error{},
	}
	var out bytes.Buffer
	s := New(dev, &out, Opts{Interval: time.Millisecond})

	s.gate.Tick()
	s.cycle()

	// Second cycle: Y fails, X and Z move.
	dev.axes[lis3dh.AxisX] = 1111
	dev.axes[lis3dh.AxisY] = 9999
	dev.axes[lis3dh.AxisZ] = 3333
	dev.fail[lis3dh.AxisY] = errors.New("bus fault")
	s.gate.Tick()
	s.cycle()

	if out.Len() != 2*telemetry.FrameSize {
		t.Fatalf("emitted %d bytes, want two frames", out.Len())
	}
	x, y, z, err := telemetry.Unpack(out.Bytes()[telemetry.FrameSize:])
	if err != nil {
		t.Fatal(err)
	}
	if x != 1111 || z != 3333 {
		t.Errorf("fresh axes %d/%d, want 1111/3333", x, z)
	}
	if y != 2000 {
		t.Errorf("failed axis moved to %d, want previous value 2000", y)
	}
}

func TestCycleStatusFailure(t *testing.T) {
	dev := &fakeDev{readyErr: errors.New("no ack"), axes: map[lis3dh.Axis]int32{}}
	var out bytes.Buffer
	var logged bool
	s := New(dev, &out, Opts{
		Interval: time.Millisecond,
		Logf:     func(string, ...interface{}) { logged = true },
	})
	s.gate.Tick()
	s.cycle()
	if out.Len() != 0 {
		t.Error("emitted despite unreadable status register")
	}
	if dev.reads != 0 {
		t.Error("axis reads attempted without the data-ready flag")
	}
	if !logged {
		t.Error("status failure not logged")
	}
}

func TestRunStopsOnCancel(t *testing.T) {
	dev := &fakeDev{ready: true, axes: map[lis3dh.Axis]int32{lis3dh.AxisX: 1}}
	var out bytes.Buffer
	s := New(dev, &out, Opts{Interval: 5 * time.Millisecond, PollInterval: time.Millisecond})

	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Millisecond)
	defer cancel()
	err := s.Run(ctx)
	if !errors.Is(err, context.DeadlineExceeded) {
		t.Fatalf("Run returned %v", err)
	}
	if out.Len() == 0 || out.Len()%telemetry.FrameSize != 0 {
		t.Fatalf("emitted %d bytes, want a whole number of frames", out.Len())
	}
	// Throughput is bounded by the timer, not by the poll rate.
	if frames := out.Len() / telemetry.FrameSize; frames > 14 {
		t.Errorf("%d frames in ~60ms at 5ms cadence", frames)
	}
}

// TestEndToEnd drives a real driver over a playback bus through one full
// cycle: status says all axes fresh, X reads (0x00,0x40), Y (0x00,0x00),
// Z (0xF0,0xBF), and the emitted frame carries 40168, 0, -40207.
func TestEndToEnd(t *testing.T) {
	bus := i2ctest.Playback{
		Ops: []i2ctest.IO{
			{Addr: 0x18, W: []byte{lis3dh.RegWhoAmI}, R: []byte{0x33}},
			{Addr: 0x18, W: []byte{lis3dh.RegCtrl1}, R: []byte{lis3dh.Ctrl1ODR100Hz}},
			{Addr: 0x18, W: []byte{lis3dh.RegTempCfg}, R: []byte{lis3dh.TempCfgDisabled}},
			{Addr: 0x18, W: []byte{lis3dh.RegCtrl4}, R: []byte{byte(lis3dh.Range4G)}},
			{Addr: 0x18, W: []byte{lis3dh.RegStatus}, R: []byte{0x07}},
			{Addr: 0x18, W: []byte{lis3dh.RegOutXL | 0x80}, R: []byte{0x00, 0x40}},
			{Addr: 0x18, W: []byte{lis3dh.RegOutYL | 0x80}, R: []byte{0x00, 0x00}},
			{Addr: 0x18, W: []byte{lis3dh.RegOutZL | 0x80}, R: []byte{0xF0, 0xBF}},
		},
	}
	dev, err := lis3dh.New(&bus, nil)
	if err != nil {
		t.Fatal(err)
	}
	var out bytes.Buffer
	s := New(dev, &out, Opts{Interval: time.Millisecond})
	s.gate.Tick()
	s.cycle()

	want := []byte{
		0xA0,
		0xE8, 0x9C, 0x00, 0x00,
		0x00, 0x00, 0x00, 0x00,
		0xF1, 0x62, 0xFF, 0xFF,
		0xC0,
	}
	if !bytes.Equal(out.Bytes(), want) {
		t.Errorf("frame % x\nwant  % x", out.Bytes(), want)
	}
	if err := bus.Close(); err != nil {
		t.Fatal(err)
	}
}
