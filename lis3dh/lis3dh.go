// Copyright 2024 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package lis3dh

import (
	"fmt"
	"io"

	"periph.io/x/conn/v3"
	"periph.io/x/conn/v3/i2c"

	"github.com/telemetrak/accelstream/regbus"
)

// Opts holds the configuration options for the device.
type Opts struct {
	// Addr is the 7-bit slave address. Defaults to DefaultAddress.
	Addr uint16
	// Range is the full-scale range written to CTRL_REG4.
	Range Range
	// ODR is the CTRL_REG1 value selecting the output data rate.
	// Defaults to Ctrl1ODR100Hz.
	ODR byte
	// TempSensor leaves the temperature sensor enabled. The telemetry
	// pipeline does not read it, so the default disables it.
	TempSensor bool
}

// DefaultOpts is the commissioned configuration: 100 Hz output rate,
// ±4g high-resolution range, temperature sensor off.
var DefaultOpts = Opts{
	Addr:  DefaultAddress,
	Range: Range4G,
	ODR:   Ctrl1ODR100Hz,
}

// Dev is a driver for the LIS3DH accelerometer over I2C.
type Dev struct {
	t   *regbus.Transport
	rng Range
}

// New verifies the device identity and applies the configuration.
// Control registers are written with a read-back check first: a write
// is skipped when the register already holds the desired value.
func New(b i2c.Bus, opts *Opts) (*Dev, error) {
	if opts == nil {
		o := DefaultOpts
		opts = &o
	}
	if opts.Addr == 0 {
		opts.Addr = DefaultAddress
	}
	if opts.ODR == 0 {
		opts.ODR = Ctrl1ODR100Hz
	}
	d := &Dev{t: regbus.New(b, opts.Addr), rng: opts.Range}

	id, err := d.t.ReadRegister(RegWhoAmI)
	if err != nil {
		return nil, fmt.Errorf("lis3dh: %w", err)
	}
	if id != WhoAmI {
		return nil, fmt.Errorf("lis3dh: unexpected identity %#02x, want %#02x", id, WhoAmI)
	}

	tempCfg := TempCfgDisabled
	if opts.TempSensor {
		tempCfg = TempCfgEnabled
	}
	for _, c := range []struct{ reg, value byte }{
		{RegCtrl1, opts.ODR},
		{RegTempCfg, tempCfg},
		{RegCtrl4, byte(opts.Range)},
	} {
		if _, err := d.writeIfChanged(c.reg, c.value); err != nil {
			return nil, fmt.Errorf("lis3dh: %w", err)
		}
	}
	return d, nil
}

func (d *Dev) String() string {
	return fmt.Sprintf("LIS3DH{%s}", d.rng)
}

// Range returns the configured full-scale range.
func (d *Dev) Range() Range {
	return d.rng
}

// EnableDebug logs every bus transaction through f.
func (d *Dev) EnableDebug(f regbus.DebugF) {
	d.t.EnableDebug(f)
}

// writeIfChanged reads the register back first and suppresses the write
// when the current value already matches. Reports whether a bus write
// was actually issued.
func (d *Dev) writeIfChanged(reg, value byte) (bool, error) {
	current, err := d.t.ReadRegister(reg)
	if err != nil {
		return false, err
	}
	if current == value {
		return false, nil
	}
	return true, d.t.WriteRegister(reg, value)
}

// DataReady reads the status register once and reports whether all
// three axes hold a fresh reading.
func (d *Dev) DataReady() (bool, error) {
	status, err := d.t.ReadRegister(RegStatus)
	if err != nil {
		return false, fmt.Errorf("lis3dh: %w", err)
	}
	return dataReady(status), nil
}

// ReadAxis burst-reads one axis's output register pair and returns the
// acceleration in milli-m/s² for the configured range.
func (d *Dev) ReadAxis(a Axis) (int32, error) {
	var buf [2]byte
	if err := d.t.ReadBurst(a.lowRegister()|autoIncrement, buf[:]); err != nil {
		return 0, fmt.Errorf("lis3dh: %s axis: %w", a, err)
	}
	return d.rng.convert(decodeRaw(buf[0], buf[1])), nil
}

// Acceleration holds one reading per axis in milli-m/s².
type Acceleration struct {
	X, Y, Z int32
}

func (a Acceleration) String() string {
	return fmt.Sprintf("X:%d Y:%d Z:%d mm/s²", a.X, a.Y, a.Z)
}

// Sample reads the three axes in X, Y, Z order. The first failed read
// aborts the sample; callers that want per-axis best-effort semantics
// use ReadAxis directly.
func (d *Dev) Sample() (Acceleration, error) {
	var acc Acceleration
	for _, p := range []struct {
		axis Axis
		dst  *int32
	}{{AxisX, &acc.X}, {AxisY, &acc.Y}, {AxisZ, &acc.Z}} {
		v, err := d.ReadAxis(p.axis)
		if err != nil {
			return acc, err
		}
		*p.dst = v
	}
	return acc, nil
}

// configRegisters are the registers reported by DumpRegisters, in the
// order the start-up sequence touches them.
var configRegisters = []struct {
	name string
	reg  byte
}{
	{"WHO AM I REG", RegWhoAmI},
	{"STATUS REGISTER", RegStatus},
	{"CONTROL REGISTER 1", RegCtrl1},
	{"TEMPERATURE CONFIG REGISTER", RegTempCfg},
	{"CONTROL REGISTER 4", RegCtrl4},
}

// DumpRegisters writes one diagnostic line per configuration register to
// w, "<REGISTER NAME>: 0xHH", or an error line when the read fails.
func (d *Dev) DumpRegisters(w io.Writer) {
	for _, r := range configRegisters {
		v, err := d.t.ReadRegister(r.reg)
		if err != nil {
			fmt.Fprintf(w, "error reading %s: %v\n", r.name, err)
			continue
		}
		fmt.Fprintf(w, "%s: 0x%02X\n", r.name, v)
	}
}

// Halt powers the device down. Implements conn.Resource.
func (d *Dev) Halt() error {
	if _, err := d.writeIfChanged(RegCtrl1, ctrl1PowerOff); err != nil {
		return fmt.Errorf("lis3dh: %w", err)
	}
	return nil
}

var _ conn.Resource = &Dev{}
