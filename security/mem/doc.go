//    \\ SPIKE: Secure your secrets with SPIFFE. — https://spike.ist/
//  \\\\\ Copyright 2024-present SPIKE contributors.
// \\\\\\\ SPDX-License-Identifier: Apache-2.0

// Package mem provides utilities for secure memory operations to protect
// sensitive data such as cryptographic keys and secrets.
//
// ClearBytes overwrites a byte slice's underlying array with zeros and
// calls runtime.KeepAlive so the wipe cannot be optimized away before the
// garbage collector has a chance to reclaim the memory:
//
//	key := []byte{...} // Sensitive cryptographic key
//	defer mem.ClearBytes(key)
//	// Use key...
package mem
