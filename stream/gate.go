// Copyright 2024 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package stream

import "sync/atomic"

// Gate combines the periodic timer tick with the device's data-ready
// condition. The ticker goroutine only ever sets the tick flag and the
// acquisition loop is the only writer that clears it, so neither side
// performs a read-modify-write on the other's flag.
type Gate struct {
	tick  atomic.Bool
	ready atomic.Bool
}

// Tick marks that one timer period elapsed. Safe to call from the
// ticker goroutine while the loop evaluates.
func (g *Gate) Tick() {
	g.tick.Store(true)
}

// SetReady latches the data-ready condition derived from the status
// register. A false reading does not un-latch; only Evaluate clears.
func (g *Gate) SetReady(ready bool) {
	if ready {
		g.ready.Store(true)
	}
}

// Evaluate reports whether both flags were set, then unconditionally
// clears both whether or not the gate fired. Stale flags never carry
// into the next cycle, and sampling faster than the timer period stays
// suppressed even when the device reports fresh data.
func (g *Gate) Evaluate() bool {
	fired := g.tick.Load() && g.ready.Load()
	g.tick.Store(false)
	g.ready.Store(false)
	return fired
}
