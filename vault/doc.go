//    \\ SPIKE: Secure your secrets with SPIFFE. — https://spike.ist/
//  \\\\\ Copyright 2024-present SPIKE contributors.
// \\\\\\\ SPDX-License-Identifier: Apache-2.0

// Package vault implements the PolyPasswordHasher credential store: a
// password database whose stored hashes are individually useless unless a
// threshold of them are combined.
//
// A Vault owns one shamir.Secret. Creating an account consumes one share
// per requested share count and XORs it into the account's salted password
// hash. Verifying a login inverts that XOR, re-derives the candidate share,
// and asks the Secret to validate it. Unlocking a vault loaded from disk
// collects shares recovered from successful logins and hands them to the
// Secret for interpolation.
//
// A fresh vault (New) already knows its secret and accepts writes
// immediately. A vault loaded from a persisted file (Load) starts locked:
// it can only answer partial, probabilistic logins until Unlock recovers
// the secret from a quorum of exact logins, after which it behaves exactly
// like a fresh vault.
package vault
