//    \\ SPIKE: Secure your secrets with SPIFFE. — https://spike.ist/
//  \\\\\ Copyright 2024-present SPIKE contributors.
// \\\\\\\ SPDX-License-Identifier: Apache-2.0

package env

import (
	"os"
	"strconv"
)

// ShamirThresholdVal returns the default threshold for newly created vaults.
// It reads PPH_SHAMIR_THRESHOLD, falls back to a YAML override file's
// "threshold" key, and finally to a default of 2.
func ShamirThresholdVal() int {
	if p := os.Getenv(ShamirThreshold); p != "" {
		if mv, err := strconv.Atoi(p); err == nil && mv > 0 {
			return mv
		}
	}

	if fd := loadFileDefaults(); fd != nil && fd.Threshold != nil && *fd.Threshold > 0 {
		return *fd.Threshold
	}

	return 2
}

// ShamirSharesVal returns the default number of shares issued for a newly
// created vault. It reads PPH_SHAMIR_SHARES, falls back to a YAML override
// file's "shares" key, and finally to a default of 3.
func ShamirSharesVal() int {
	if p := os.Getenv(ShamirShares); p != "" {
		if mv, err := strconv.Atoi(p); err == nil && mv > 0 {
			return mv
		}
	}

	if fd := loadFileDefaults(); fd != nil && fd.Shares != nil && *fd.Shares > 0 {
		return *fd.Shares
	}

	return 3
}
