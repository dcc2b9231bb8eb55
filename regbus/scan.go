// Copyright 2024 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package regbus

import "periph.io/x/conn/v3/i2c"

// Probe checks whether a device acknowledges addr. It is an address-only
// probe with no data phase and never returns an error; any failure means
// the address is not in use.
func Probe(b i2c.Bus, addr uint16) bool {
	return b.Tx(addr, nil, nil) == nil
}

// Scan probes all 128 possible 7-bit addresses in ascending order and
// returns the ones that acknowledged.
func Scan(b i2c.Bus) []uint16 {
	var found []uint16
	for addr := uint16(0); addr < 0x80; addr++ {
		if Probe(b, addr) {
			found = append(found, addr)
		}
	}
	return found
}
