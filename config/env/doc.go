//    \\ SPIKE: Secure your secrets with SPIFFE. — https://spike.ist/
//  \\\\\ Copyright 2024-present SPIKE contributors.
// \\\\\\\ SPDX-License-Identifier: Apache-2.0

// Package env provides environment-variable configuration for the vault
// core. It defines constants for the recognized environment variables and
// exposes accessors that read them with documented defaults.
//
// Lookup order for every accessor is:
//  1. The environment variable.
//  2. An optional YAML override file, read once and cached, pointed to by
//     PPH_CONFIG_FILE.
//  3. The hardcoded default.
package env
