// Copyright 2024 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package regbus

import "fmt"

// NoAckError reports that the addressed slave did not acknowledge its
// address or the register pointer. The device is absent, misconfigured,
// or the bus is stuck.
type NoAckError struct {
	Addr  uint16
	Reg   byte
	cause error
}

func (e *NoAckError) Error() string {
	return fmt.Sprintf("regbus: no ack from %#02x register %#02x: %v", e.Addr, e.Reg, e.cause)
}

func (e *NoAckError) Unwrap() error {
	return e.cause
}

// BusError reports arbitration loss, a clock-stretch timeout or any
// other low-level bus fault.
type BusError struct {
	Addr  uint16
	Reg   byte
	cause error
}

func (e *BusError) Error() string {
	return fmt.Sprintf("regbus: bus fault on %#02x register %#02x: %v", e.Addr, e.Reg, e.cause)
}

func (e *BusError) Unwrap() error {
	return e.cause
}
