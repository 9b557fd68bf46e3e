//    \\ SPIKE: Secure your secrets with SPIFFE. — https://spike.ist/
//  \\\\\ Copyright 2024-present SPIKE contributors.
// \\\\\\\ SPDX-License-Identifier: Apache-2.0

package validation

import (
	"regexp"

	vaultErrors "github.com/polypasswordhasher/pph/errors"
)

const validNamePattern = `^[a-zA-Z0-9-_ ]+$`
const maxNameLength = 250

// ValidateName checks if the provided username meets length and format
// constraints.
//
// The name must be between 1 and 250 characters and contain only
// alphanumeric characters, hyphens, underscores, and spaces.
//
// Returns nil if valid, or ErrDataInvalidInput if name is empty, exceeds
// 250 characters, or contains invalid characters.
func ValidateName(name string) *vaultErrors.VaultError {
	if len(name) == 0 || len(name) > maxNameLength {
		return vaultErrors.ErrDataInvalidInput.Clone()
	}

	if match, _ := regexp.MatchString(validNamePattern, name); !match {
		return vaultErrors.ErrDataInvalidInput.Clone()
	}

	return nil
}
