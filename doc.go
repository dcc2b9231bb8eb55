// Copyright 2021 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

// Package accelstream streams calibrated three-axis acceleration samples
// from a LIS3DH accelerometer over a serial link.
//
// The regbus package issues register transactions on the I2C bus, lis3dh
// models the device's register map and converts raw readings to physical
// units, telemetry packs samples into the fixed 14-byte wire frame, and
// stream runs the timer-gated acquisition loop tying them together.
//
// cmd/accelstreamd is the acquisition daemon; cmd/accelview consumes the
// frame stream for display.
package accelstream
