// Copyright 2024 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

// Package regbus provides register-access transactions against a single
// 7-bit slave on an I2C bus: one-byte reads and writes, multi-register
// burst reads via the device's auto-increment addressing, and address
// probing for bus enumeration.
//
// Failures collapse into two results: NoAckError when the slave does not
// acknowledge, BusError for every other low-level fault.
package regbus
