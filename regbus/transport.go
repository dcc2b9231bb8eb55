// Copyright 2024 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package regbus

import (
	"errors"
	"syscall"

	"periph.io/x/conn/v3/i2c"
)

// DebugF is the debug logging function type.
type DebugF func(string, ...interface{})

// Transport issues single-register and multi-register transactions
// against one 7-bit slave address. Every operation is atomic from the
// caller's perspective: a transaction either completes with a valid
// payload or collapses into a NoAckError or BusError. Partial register
// values are never exposed.
type Transport struct {
	d     *i2c.Dev
	debug DebugF
}

// New returns a Transport bound to the slave at addr on bus b.
func New(b i2c.Bus, addr uint16) *Transport {
	return &Transport{d: &i2c.Dev{Bus: b, Addr: addr}, debug: noop}
}

// EnableDebug sets the debugging output using the provided print function.
func (t *Transport) EnableDebug(f DebugF) {
	t.debug = f
}

// Addr returns the 7-bit slave address the transport is bound to.
func (t *Transport) Addr() uint16 {
	return t.d.Addr
}

// ReadRegister addresses the slave, sends the register pointer, then
// re-addresses for a read of exactly one byte.
func (t *Transport) ReadRegister(reg byte) (byte, error) {
	var r [1]byte
	if err := t.d.Tx([]byte{reg}, r[:]); err != nil {
		return 0, classify(t.d.Addr, reg, err)
	}
	t.debug("regbus: read %#02x: %#02x", reg, r[0])
	return r[0], nil
}

// ReadBurst reads len(buf) consecutive registers starting at reg in a
// single transaction, relying on the device's auto-increment addressing.
// Registers land in buf in ascending address order. Any device-specific
// auto-increment bit in the register pointer is the caller's concern.
func (t *Transport) ReadBurst(reg byte, buf []byte) error {
	if err := t.d.Tx([]byte{reg}, buf); err != nil {
		return classify(t.d.Addr, reg, err)
	}
	t.debug("regbus: burst %#02x: % x", reg, buf)
	return nil
}

// WriteRegister addresses the slave for a write, sends the register
// pointer and one data byte.
func (t *Transport) WriteRegister(reg, value byte) error {
	if err := t.d.Tx([]byte{reg, value}, nil); err != nil {
		return classify(t.d.Addr, reg, err)
	}
	t.debug("regbus: write %#02x: %#02x", reg, value)
	return nil
}

func noop(string, ...interface{}) {}

// classify maps a bus-level failure to the two-value error taxonomy.
// ENXIO and ENODEV are how a missing acknowledge surfaces from the
// kernel i2c layer; everything else is a low-level bus fault.
func classify(addr uint16, reg byte, err error) error {
	var errno syscall.Errno
	if errors.As(err, &errno) {
		switch errno {
		case syscall.ENXIO, syscall.ENODEV:
			return &NoAckError{Addr: addr, Reg: reg, cause: err}
		}
	}
	return &BusError{Addr: addr, Reg: reg, cause: err}
}
