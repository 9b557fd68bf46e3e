//    \\ SPIKE: Secure your secrets with SPIFFE. — https://spike.ist/
//  \\\\\ Copyright 2024-present SPIKE contributors.
// \\\\\\\ SPDX-License-Identifier: Apache-2.0

// Package fs provides filesystem helpers for the vault core's file-backed
// persistence convenience wrappers.
//
// It validates candidate data directories against a restricted-path list,
// resolves a default vault data directory under the user's home directory
// (falling back to an isolated /tmp location), and performs atomic,
// gzip-compressed writes and reads of a single vault file.
//
// The abstract Vault.Commit/Load entry points operate on plain io.Writer/
// io.Reader and never assume compression; only the concrete file-path
// wrappers in this package apply gzip and atomic-rename semantics.
package fs
