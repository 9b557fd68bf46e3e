//    \\ SPIKE: Secure your secrets with SPIFFE. — https://spike.ist/
//  \\\\\ Copyright 2024-present SPIKE contributors.
// \\\\\\\ SPDX-License-Identifier: Apache-2.0

package env

import (
	"os"
	"sync"

	"gopkg.in/yaml.v3"
)

// fileDefaults mirrors the subset of Shamir/vault defaults an operator may
// override via a YAML file, without forcing every field to be present.
type fileDefaults struct {
	Threshold    *int `yaml:"threshold"`
	Shares       *int `yaml:"shares"`
	SaltSize     *int `yaml:"saltsize"`
	PartialBytes *int `yaml:"partialbytes"`
}

var (
	fileDefaultsOnce   sync.Once
	fileDefaultsLoaded *fileDefaults
)

// loadFileDefaults reads the YAML file named by the ConfigFile environment
// variable, if set, and caches the result. A missing or unreadable file is
// treated as "no overrides" rather than an error: this layer is optional by
// design.
func loadFileDefaults() *fileDefaults {
	fileDefaultsOnce.Do(func() {
		path := os.Getenv(ConfigFile)
		if path == "" {
			return
		}

		data, err := os.ReadFile(path)
		if err != nil {
			return
		}

		var fd fileDefaults
		if err := yaml.Unmarshal(data, &fd); err != nil {
			return
		}

		fileDefaultsLoaded = &fd
	})
	return fileDefaultsLoaded
}
