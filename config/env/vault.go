//    \\ SPIKE: Secure your secrets with SPIFFE. — https://spike.ist/
//  \\\\\ Copyright 2024-present SPIKE contributors.
// \\\\\\\ SPDX-License-Identifier: Apache-2.0

package env

import (
	"os"
	"strconv"
)

// SaltSizeVal returns the number of random bytes drawn per account salt.
// It reads PPH_SALT_SIZE, falls back to a YAML override file's "saltsize"
// key, and finally to a default of 16.
func SaltSizeVal() int {
	if p := os.Getenv(SaltSize); p != "" {
		if mv, err := strconv.Atoi(p); err == nil && mv > 0 {
			return mv
		}
	}

	if fd := loadFileDefaults(); fd != nil && fd.SaltSize != nil && *fd.SaltSize > 0 {
		return *fd.SaltSize
	}

	return 16
}

// PartialBytesVal returns the number of trailing cleartext hash bytes
// kept available for partial verification while a vault is locked. It
// reads PPH_PARTIAL_BYTES, falls back to a YAML override file's
// "partialbytes" key, and finally to a default of 1.
//
// A value of 0 disables partial verification entirely.
func PartialBytesVal() int {
	if p := os.Getenv(PartialBytes); p != "" {
		if mv, err := strconv.Atoi(p); err == nil && mv >= 0 {
			return mv
		}
	}

	if fd := loadFileDefaults(); fd != nil && fd.PartialBytes != nil && *fd.PartialBytes >= 0 {
		return *fd.PartialBytes
	}

	return 1
}
