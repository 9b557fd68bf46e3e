//    \\ SPIKE: Secure your secrets with SPIFFE. — https://spike.ist/
//  \\\\\ Copyright 2024-present SPIKE contributors.
// \\\\\\\ SPDX-License-Identifier: Apache-2.0

// Package shamir implements byte-wise (k,n)-threshold secret sharing on
// top of gf256.
//
// A Secret is constructed either from a known secret (New), which splits
// it into per-byte random polynomials over GF(2^8), or awaiting recovery
// (NewAwaitingRecovery), which starts with no coefficients until enough
// shares are combined via RecoverSecretData.
//
// Security note: every secret byte gets its own freshly drawn
// threshold-1-byte coefficient buffer. Reusing one buffer across all
// secret bytes would correlate the polynomials across byte positions and
// weaken the scheme; this package never does that.
package shamir
