//    \\ SPIKE: Secure your secrets with SPIFFE. — https://spike.ist/
//  \\\\\ Copyright 2024-present SPIKE contributors.
// \\\\\\\ SPDX-License-Identifier: Apache-2.0

// Package validation provides input validation utilities for the vault
// core.
//
// Name Validation:
//
// Usernames must be 1-250 characters and contain only alphanumeric
// characters, hyphens, underscores, and spaces:
//
//	if err := validation.ValidateName("alice"); err != nil {
//	    // reject account creation
//	}
package validation
