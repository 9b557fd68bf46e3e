//    \\ SPIKE: Secure your secrets with SPIFFE. — https://spike.ist/
//  \\\\\ Copyright 2024-present SPIKE contributors.
// \\\\\\\ SPDX-License-Identifier: Apache-2.0

package fs

import "sync"

// restrictedPaths contains system directories that should not be used
// for vault data storage for security and operational reasons.
var restrictedPaths = []string{
	"/", "/etc", "/sys", "/proc", "/dev", "/bin", "/sbin",
	"/usr", "/lib", "/lib64", "/boot", "/root",
}

const vaultHiddenFolderName = ".pph"
const vaultDataFolderName = "data"
const vaultFileName = "vault.json.gz"

var (
	vaultDataPath string
	vaultDataOnce sync.Once
)
