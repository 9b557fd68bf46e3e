//    \\ SPIKE: Secure your secrets with SPIFFE. — https://spike.ist/
//  \\\\\ Copyright 2024-present SPIKE contributors.
// \\\\\\\ SPDX-License-Identifier: Apache-2.0

package env

// Recognized environment variable names.
const (
	ShamirThreshold = "PPH_SHAMIR_THRESHOLD"
	ShamirShares    = "PPH_SHAMIR_SHARES"
	SaltSize        = "PPH_SALT_SIZE"
	PartialBytes    = "PPH_PARTIAL_BYTES"
	ConfigFile      = "PPH_CONFIG_FILE"
	VaultDataDir    = "PPH_VAULT_DATA_DIR"
)
