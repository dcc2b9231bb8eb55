// Copyright 2024 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

// Package stream runs the timer-gated acquisition loop: a sample is
// taken only when a timer period has elapsed AND the device reports
// fresh data on all three axes, bounding throughput to the configured
// rate. Axis reads are best effort; a failed read leaves that axis's
// previous value in the emitted frame.
package stream
