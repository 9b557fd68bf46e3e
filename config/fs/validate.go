//    \\ SPIKE: Secure your secrets with SPIFFE. — https://spike.ist/
//  \\\\\ Copyright 2024-present SPIKE contributors.
// \\\\\\\ SPDX-License-Identifier: Apache-2.0

package fs

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	vaultErrors "github.com/polypasswordhasher/pph/errors"
)

// validateDataDirectory checks if a directory path is valid and safe to use
// for storing vault data. It ensures the directory exists or can be
// created, and is not in a restricted location.
func validateDataDirectory(dir string) *vaultErrors.VaultError {
	if dir == "" {
		return vaultErrors.ErrFilePathInvalid.WithMsg("directory path cannot be empty")
	}

	absPath, absErr := filepath.Abs(dir)
	if absErr != nil {
		return vaultErrors.ErrFilePathInvalid.WithMsg(
			fmt.Sprintf("failed to resolve directory path: %s", absErr))
	}

	for _, restricted := range restrictedPaths {
		if restricted == "/" {
			if absPath == "/" {
				return vaultErrors.ErrFilePathRestricted.WithMsg(
					"path is restricted for security reasons")
			}
			continue
		}
		if absPath == restricted || strings.HasPrefix(absPath, restricted+"/") {
			return vaultErrors.ErrFilePathRestricted.WithMsg(
				"path is restricted for security reasons")
		}
	}

	info, statErr := os.Stat(absPath)
	if statErr != nil {
		if !os.IsNotExist(statErr) {
			return vaultErrors.ErrFilePathInvalid.WithMsg(
				fmt.Sprintf("failed to check directory: %s", statErr))
		}
		parentDir := filepath.Dir(absPath)
		if _, parentErr := os.Stat(parentDir); parentErr != nil {
			return vaultErrors.ErrFilePathInvalid.WithMsg(
				fmt.Sprintf("parent directory does not exist: %s", parentErr))
		}
		return nil
	}

	if !info.IsDir() {
		return vaultErrors.ErrFilePathInvalid.WithMsg(
			fmt.Sprintf("path is not a directory: %s", absPath))
	}

	return nil
}
