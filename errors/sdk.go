//    \\ SPIKE: Secure your secrets with SPIFFE. — https://spike.ist/
//  \\\\\ Copyright 2024-present SPIKE contributors.
// \\\\\\\ SPDX-License-Identifier: Apache-2.0

// Package errors provides the structured error type shared by gf256,
// shamir, and vault.
package errors

import (
	"errors"
	"fmt"
)

// Kind groups VaultErrors into four broad categories.
type Kind string

const (
	// ShardError reports violations of the secret-sharing invariants:
	// insufficient shares, duplicate x-coordinates, ragged shares, or an
	// attempted commit below threshold.
	ShardError Kind = "shard"

	// AuthError reports vault-state violations: locked when unlocked is
	// required, unknown user, duplicate user, or partial verification
	// disabled while locked.
	AuthError Kind = "auth"

	// FileError reports failures of the underlying storage medium.
	FileError Kind = "file"

	// SerError reports JSON or encoding failures.
	SerError Kind = "ser"
)

// VaultError is the structured error type used across this module. It
// carries a Kind for coarse-grained handling, a stable Code for
// programmatic matching, a human-readable Msg, and an optional wrapped
// error that preserves the original cause.
//
// Usage patterns:
//  1. Comparisons should go through errors.Is().
//  2. Context belongs in Msg, not in a new Code.
//  3. Prefer a predefined sentinel (sentinel.go) plus .Wrap()/.WithMsg()
//     over constructing a VaultError from scratch.
//
// Example:
//
//	return vaultErrors.ErrAuthLocked
//	return vaultErrors.ErrFileWrite.Wrap(ioErr)
//	if errors.Is(err, vaultErrors.ErrAuthLocked) { ... }
type VaultError struct {
	Kind    Kind
	Code    string
	Msg     string
	Wrapped error
}

// New creates a VaultError from scratch. Prefer the predefined sentinels
// in sentinel.go and Wrap()/WithMsg() them with context instead.
func New(kind Kind, code string, msg string, wrapped error) *VaultError {
	return &VaultError{Kind: kind, Code: code, Msg: msg, Wrapped: wrapped}
}

// Error implements the error interface.
func (e *VaultError) Error() string {
	if e.Wrapped != nil {
		return fmt.Sprintf("[%s/%s] %s: %v", e.Kind, e.Code, e.Msg, e.Wrapped)
	}
	return fmt.Sprintf("[%s/%s] %s", e.Kind, e.Code, e.Msg)
}

// Unwrap enables errors.Is()/errors.As() traversal of the wrapped error.
func (e *VaultError) Unwrap() error {
	return e.Wrapped
}

// Wrap returns a new VaultError with the same Kind/Code/Msg as e but with
// err attached as the wrapped cause.
func (e *VaultError) Wrap(err error) *VaultError {
	return &VaultError{Kind: e.Kind, Code: e.Code, Msg: e.Msg, Wrapped: err}
}

// WithMsg returns a copy of e with Msg replaced, leaving the shared
// sentinel value untouched.
func (e *VaultError) WithMsg(msg string) *VaultError {
	c := e.Clone()
	c.Msg = msg
	return c
}

// Is implements error-code equality for errors.Is().
func (e *VaultError) Is(target error) bool {
	var t *VaultError
	if errors.As(target, &t) {
		return e.Code == t.Code
	}
	return false
}

// Clone returns a shallow copy of e, safe to mutate without affecting the
// shared sentinel value.
func (e *VaultError) Clone() *VaultError {
	return &VaultError{Kind: e.Kind, Code: e.Code, Msg: e.Msg, Wrapped: e.Wrapped}
}
