//    \\ SPIKE: Secure your secrets with SPIFFE. — https://spike.ist/
//  \\\\\ Copyright 2024-present SPIKE contributors.
// \\\\\\\ SPDX-License-Identifier: Apache-2.0

package fs

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/polypasswordhasher/pph/config/env"
	"github.com/polypasswordhasher/pph/log"
)

// VaultDataDir returns the directory where the file-backed persistence
// wrappers (CommitToFile/LoadFromFile) keep the vault file.
//
// Resolution order:
//  1. PPH_VAULT_DATA_DIR environment variable (if set and valid).
//  2. ~/.pph/data (if the home directory is available).
//  3. /tmp/.pph-$USER/data (fallback).
//
// The directory is created once on first call and cached for later calls.
func VaultDataDir() string {
	vaultDataOnce.Do(func() {
		vaultDataPath = initVaultDataDir()
	})
	return vaultDataPath
}

func initVaultDataDir() string {
	if path := tryCustomVaultDataDir(); path != "" {
		return path
	}
	if path := tryHomeVaultDataDir(); path != "" {
		return path
	}
	return createTempVaultDataDir()
}

func tryCustomVaultDataDir() string {
	customDir := os.Getenv(env.VaultDataDir)
	if customDir == "" {
		return ""
	}

	if validateErr := validateDataDirectory(customDir); validateErr != nil {
		log.Log().Warn("invalid custom vault data directory, using default",
			"path", customDir, "error", validateErr.Error())
		return ""
	}

	dataPath := filepath.Join(customDir, vaultDataFolderName)
	if mkdirErr := os.MkdirAll(dataPath, 0700); mkdirErr != nil {
		log.Log().Warn("failed to create custom vault data directory",
			"path", dataPath, "error", mkdirErr.Error())
		return ""
	}

	return dataPath
}

func tryHomeVaultDataDir() string {
	homeDir, homeErr := os.UserHomeDir()
	if homeErr != nil {
		return ""
	}

	dataPath := filepath.Join(homeDir, vaultHiddenFolderName, vaultDataFolderName)

	if mkdirErr := os.MkdirAll(dataPath, 0700); mkdirErr != nil {
		log.Log().Warn("failed to create vault data directory under home",
			"path", dataPath, "error", mkdirErr.Error())
		return ""
	}

	return dataPath
}

func createTempVaultDataDir() string {
	user := os.Getenv("USER")
	if user == "" {
		user = "pph"
	}

	dataPath := filepath.Join(fmt.Sprintf("/tmp/.pph-%s", user), vaultDataFolderName)

	if mkdirErr := os.MkdirAll(dataPath, 0700); mkdirErr != nil {
		log.FatalF("failed to create fallback vault data directory %s: %v",
			dataPath, mkdirErr)
	}

	return dataPath
}
