//    \\ SPIKE: Secure your secrets with SPIFFE.
//  \\\\\ Copyright 2024-present SPIKE contributors.
// \\\\\\\ SPDX-License-Identifier: Apache-2.0

// Package mem provides utilities for secure mem operations.
package mem

import (
	"runtime"
)

// ClearBytes securely erases a byte slice by overwriting all bytes with zeros.
//
// This is especially important for slices: a byte slice is a header
// (pointer, length, capacity) rather than the data itself, so clearing a
// slice by zeroing the header alone would leave the underlying array —
// the actual sensitive bytes — untouched.
//
// Parameters:
//   - b: A byte slice that should be securely erased
//
// Usage:
//
//	key := []byte{...} // Sensitive cryptographic key
//	defer mem.ClearBytes(key)
//	// Use key...
func ClearBytes(b []byte) {
	if len(b) == 0 {
		return
	}

	for i := range b {
		b[i] = 0
	}

	// Make sure the data is actually wiped before gc has time to interfere
	runtime.KeepAlive(b)
}
