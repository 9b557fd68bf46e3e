//    \\ SPIKE: Secure your secrets with SPIFFE. — https://spike.ist/
//  \\\\\ Copyright 2024-present SPIKE contributors.
// \\\\\\\ SPDX-License-Identifier: Apache-2.0

package errors

//
// General
//

var ErrGeneralFailure = register(ShardError, "gen_general_failure", "general failure")

//
// gf256 field arithmetic
//

var ErrFieldDivisionByZero = register(ShardError, "field_division_by_zero", "division by zero")
var ErrFieldEvalAtZero = register(ShardError, "field_eval_at_zero", "cannot evaluate polynomial at x=0")
var ErrFieldDuplicateX = register(ShardError, "field_duplicate_x", "duplicate x coordinate")

//
// shamir secret sharing
//

var ErrShamirThresholdTooSmall = register(ShardError, "shamir_threshold_too_small", "threshold must be at least 2")
var ErrShamirSecretEmpty = register(ShardError, "shamir_secret_empty", "secret must not be empty")
var ErrShamirCoefficientsMissing = register(ShardError, "shamir_coefficients_missing", "shamir secret does not know its coefficients yet")
var ErrShamirShareXZero = register(ShardError, "shamir_share_x_zero", "share x-coordinate must not be zero")
var ErrShamirInsufficientShares = register(ShardError, "shamir_insufficient_shares", "insufficient shares")
var ErrShamirRaggedShares = register(ShardError, "shamir_ragged_shares", "ragged shares")
var ErrShamirDuplicateX = register(ShardError, "shamir_duplicate_x", "duplicate x")
var ErrShamirReconstructionFailed = register(ShardError, "shamir_reconstruction_failed", "reconstructed secret failed verification")

//
// vault state machine
//

var ErrVaultLocked = register(AuthError, "vault_locked", "vault is locked")
var ErrVaultUnknownUser = register(AuthError, "vault_unknown_user", "unknown user")
var ErrVaultDuplicateUser = register(AuthError, "vault_duplicate_user", "user already exists")
var ErrVaultPartialVerificationDisabled = register(AuthError, "vault_partial_verification_disabled", "partial verification disabled")
var ErrVaultShareSpaceExhausted = register(AuthError, "vault_share_space_exhausted", "share space exhausted")
var ErrVaultInvalidShareCount = register(AuthError, "vault_invalid_share_count", "shares requested must be at least 1")

var ErrVaultAlreadyUnlocked = register(ShardError, "vault_already_unlocked", "already unlocked")
var ErrVaultUndecodable = register(ShardError, "vault_undecodable", "threshold is not smaller than the next available share; file would be undecodable")
var ErrVaultUnlockUnknownUser = register(ShardError, "vault_unlock_unknown_user", "unknown user")

//
// persistence
//

var ErrFileOpen = register(FileError, "file_open_failed", "failed to open persistence stream")
var ErrFileRead = register(FileError, "file_read_failed", "failed to read persistence stream")
var ErrFileWrite = register(FileError, "file_write_failed", "failed to write persistence stream")
var ErrFileRename = register(FileError, "file_rename_failed", "failed to finalize atomic write")
var ErrFileDirectoryCreationFailed = register(FileError, "file_directory_creation_failed", "failed to create directory")
var ErrFilePathRestricted = register(FileError, "file_path_restricted", "filesystem path is restricted for security reasons")
var ErrFilePathInvalid = register(FileError, "file_path_invalid", "invalid filesystem path")

var ErrSerMarshal = register(SerError, "ser_marshal_failed", "failed to marshal vault data")
var ErrSerUnmarshal = register(SerError, "ser_unmarshal_failed", "failed to unmarshal vault data")
var ErrSerEncoding = register(SerError, "ser_encoding_failed", "failed to base64-decode a persisted field")

//
// input validation
//

var ErrDataInvalidInput = register(AuthError, "data_invalid_input", "invalid input")
