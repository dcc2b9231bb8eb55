// Copyright 2024 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

// Package lis3dh controls an ST LIS3DH 3-axis accelerometer over I2C.
//
// The driver configures the output data rate, full-scale range and
// temperature sensor, polls the status register for the all-axes
// data-ready condition, and reads one axis per burst transaction,
// returning acceleration in milli-m/s².
//
// # Datasheet
//
// https://www.st.com/resource/en/datasheet/lis3dh.pdf
package lis3dh
