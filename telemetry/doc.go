// Copyright 2024 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

// Package telemetry implements the 14-byte acceleration wire format:
// a 0xA0 header, three signed 32-bit little-endian axis values in X, Y,
// Z order, and a 0xC0 footer. Frame packs and emits on the device side;
// Reader and Unpack decode the stream on the receiving side.
package telemetry
