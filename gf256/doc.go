//    \\ SPIKE: Secure your secrets with SPIFFE. — https://spike.ist/
//  \\\\\ Copyright 2024-present SPIKE contributors.
// \\\\\\\ SPDX-License-Identifier: Apache-2.0

// Package gf256 implements arithmetic over GF(2^8), the Rijndael finite
// field used by AES (reduction polynomial x^8 + x^4 + x^3 + x + 1, 0x11b).
//
// There is exactly one field in play, so the exp/log tables are
// package-level state computed once at init rather than fields of a
// constructed type. The field is not internally constant-time: none of
// its inputs are secret-dependent in a way that would leak information
// about a caller's master secret (see SPEC_FULL.md §4.1), so the subtle-package
// ceremony some implementations apply here is unnecessary.
package gf256
