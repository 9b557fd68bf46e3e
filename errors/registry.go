//    \\ SPIKE: Secure your secrets with SPIFFE. — https://spike.ist/
//  \\\\\ Copyright 2024-present SPIKE contributors.
// \\\\\\\ SPDX-License-Identifier: Apache-2.0

package errors

import "sync"

// errorRegistry maps Codes to their corresponding VaultError instances.
// It is populated automatically as register() runs at package init via the
// sentinel var declarations in sentinel.go, so FromCode() is always
// up to date without a manual registration step. Access is protected by
// errorRegistryMu for thread safety.
var (
	errorRegistry   = make(map[string]*VaultError)
	errorRegistryMu sync.RWMutex
)

// register creates a new VaultError, adds it to the global registry, and
// returns it. This function is thread-safe.
func register(kind Kind, code string, msg string) *VaultError {
	err := New(kind, code, msg, nil)
	errorRegistryMu.Lock()
	errorRegistry[err.Code] = err
	errorRegistryMu.Unlock()
	return err
}

// FromCode maps a Code to its corresponding VaultError using the
// automatically populated error registry. If the code is not recognized, it
// returns ErrGeneralFailure.
func FromCode(code string) *VaultError {
	errorRegistryMu.RLock()
	err, ok := errorRegistry[code]
	errorRegistryMu.RUnlock()

	if ok {
		return err
	}
	return ErrGeneralFailure
}
