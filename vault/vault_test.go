//    \\ SPIKE: Secure your secrets with SPIFFE. — https://spike.ist/
//  \\\\\ Copyright 2024-present SPIKE contributors.
// \\\\\\\ SPDX-License-Identifier: Apache-2.0

package vault

import (
	"bytes"
	"crypto/rand"
	"crypto/sha256"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/polypasswordhasher/pph/config/env"
	vaultErrors "github.com/polypasswordhasher/pph/errors"
)

func testHash(b []byte) [32]byte {
	return sha256.Sum256(b)
}

func TestFreshCreateLogin(t *testing.T) {
	v, err := New(2, rand.Reader, testHash)
	require.Nil(t, err)

	require.Nil(t, v.CreateAccount("admin", "correct horse", 5))
	require.Nil(t, v.CreateAccount("root", "battery staple", 5))

	ok, loginErr := v.IsValidLogin("admin", "correct horse")
	require.Nil(t, loginErr)
	assert.True(t, ok)

	ok, loginErr = v.IsValidLogin("admin", "wrong")
	require.Nil(t, loginErr)
	assert.False(t, ok)

	_, loginErr = v.IsValidLogin("unknown", "x")
	require.NotNil(t, loginErr)
	assert.True(t, loginErr.Is(vaultErrors.ErrVaultUnknownUser))
}

func TestCommitBelowThresholdRejected(t *testing.T) {
	v, err := New(3, rand.Reader, testHash)
	require.Nil(t, err)

	require.Nil(t, v.CreateAccount("admin", "correct horse", 2))

	var buf bytes.Buffer
	commitErr := v.Commit(&buf)
	require.NotNil(t, commitErr)
	assert.True(t, commitErr.Is(vaultErrors.ErrVaultUndecodable))
}

func TestPersistAndLock(t *testing.T) {
	v, err := New(2, rand.Reader, testHash)
	require.Nil(t, err)

	require.Nil(t, v.CreateAccount("admin", "correct horse", 1))
	require.Nil(t, v.CreateAccount("root", "battery staple", 1))

	var buf bytes.Buffer
	require.Nil(t, v.Commit(&buf))

	locked, loadErr := Load(2, bytes.NewReader(buf.Bytes()), rand.Reader, testHash)
	require.Nil(t, loadErr)

	ok, loginErr := locked.IsValidLogin("admin", "correct horse")
	require.Nil(t, loginErr)
	assert.True(t, ok)

	createErr := locked.CreateAccount("bob", "hunter2", 1)
	require.NotNil(t, createErr)
	assert.True(t, createErr.Is(vaultErrors.ErrVaultLocked))
}

func freshTwoAccountVault(t *testing.T) *Vault {
	t.Helper()
	v, err := New(2, rand.Reader, testHash)
	require.Nil(t, err)
	require.Nil(t, v.CreateAccount("admin", "correct horse", 1))
	require.Nil(t, v.CreateAccount("root", "battery staple", 1))
	return v
}

func commitThenLoad(t *testing.T, v *Vault) *Vault {
	t.Helper()
	var buf bytes.Buffer
	require.Nil(t, v.Commit(&buf))
	locked, err := Load(v.threshold, bytes.NewReader(buf.Bytes()), rand.Reader, testHash)
	require.Nil(t, err)
	return locked
}

func TestUnlockThenCreate(t *testing.T) {
	locked := commitThenLoad(t, freshTwoAccountVault(t))

	unlockErr := locked.Unlock([]LoginAttempt{
		{Username: "admin", Password: "correct horse"},
		{Username: "root", Password: "battery staple"},
	})
	require.Nil(t, unlockErr)

	require.Nil(t, locked.CreateAccount("bob", "hunter2", 1))

	ok, loginErr := locked.IsValidLogin("bob", "hunter2")
	require.Nil(t, loginErr)
	assert.True(t, ok)
}

func TestUnlockFailsOnTooFewShares(t *testing.T) {
	locked := commitThenLoad(t, freshTwoAccountVault(t))

	unlockErr := locked.Unlock([]LoginAttempt{
		{Username: "admin", Password: "correct horse"},
	})
	require.NotNil(t, unlockErr)
	assert.True(t, unlockErr.Is(vaultErrors.ErrShamirInsufficientShares))
}

func TestWrongPasswordUnlockSilentlyCorruptsSecret(t *testing.T) {
	// With exactly `threshold` login pairs there is no independent check
	// available: any two distinct-x, equal-length shares determine a
	// degree-1 polynomial, whether or not the passwords behind them were
	// correct. Unlock succeeds, but the recovered secret is garbage and
	// every subsequent login silently fails instead of erroring.
	locked := commitThenLoad(t, freshTwoAccountVault(t))

	unlockErr := locked.Unlock([]LoginAttempt{
		{Username: "admin", Password: "correct horse"},
		{Username: "root", Password: "definitely not battery staple"},
	})
	require.Nil(t, unlockErr)

	ok, loginErr := locked.IsValidLogin("admin", "correct horse")
	require.Nil(t, loginErr)
	assert.False(t, ok)
}

func TestUnlockDetectsCorruptionWithSurplusShares(t *testing.T) {
	// The same corruption as above, but with a third, correct login pair
	// supplied beyond the threshold: the surplus share lets Unlock detect
	// the inconsistency and refuse to transition to UNLOCKED.
	v, err := New(2, rand.Reader, testHash)
	require.Nil(t, err)
	require.Nil(t, v.CreateAccount("admin", "correct horse", 1))
	require.Nil(t, v.CreateAccount("root", "battery staple", 1))
	require.Nil(t, v.CreateAccount("carol", "xyzzy", 1))

	locked := commitThenLoad(t, v)

	unlockErr := locked.Unlock([]LoginAttempt{
		{Username: "admin", Password: "correct horse"},
		{Username: "root", Password: "definitely not battery staple"},
		{Username: "carol", Password: "xyzzy"},
	})
	require.NotNil(t, unlockErr)
	assert.True(t, unlockErr.Is(vaultErrors.ErrShamirReconstructionFailed))
}

func TestMultiAccountPerUsername(t *testing.T) {
	v, err := New(2, rand.Reader, testHash)
	require.Nil(t, err)
	require.Nil(t, v.CreateAccount("admin", "correct horse", 3))

	accounts := v.AccountsForUsername("admin")
	require.Len(t, accounts, 3)

	shareNumbers := map[byte]bool{}
	for _, a := range accounts {
		shareNumbers[a.ShareNumber] = true
	}
	assert.Len(t, shareNumbers, 3)

	ok, loginErr := v.IsValidLogin("admin", "correct horse")
	require.Nil(t, loginErr)
	assert.True(t, ok)
}

func TestCreateAccountRejectsDuplicateUsername(t *testing.T) {
	v, err := New(2, rand.Reader, testHash)
	require.Nil(t, err)
	require.Nil(t, v.CreateAccount("admin", "correct horse", 1))

	dupErr := v.CreateAccount("admin", "something else", 1)
	require.NotNil(t, dupErr)
	assert.True(t, dupErr.Is(vaultErrors.ErrVaultDuplicateUser))
}

func TestCreateAccountRejectsShareSpaceExhaustion(t *testing.T) {
	v, err := New(2, rand.Reader, testHash)
	require.Nil(t, err)

	exhaustErr := v.CreateAccount("admin", "correct horse", 256)
	require.NotNil(t, exhaustErr)
	assert.True(t, exhaustErr.Is(vaultErrors.ErrVaultShareSpaceExhausted))

	// The failed call must not have consumed any share numbers or left a
	// partial account behind.
	assert.Equal(t, 1, v.nextAvailableShare)
	assert.Len(t, v.AccountsForUsername("admin"), 0)
}

func TestCreateAccountRejectsInvalidShareCount(t *testing.T) {
	v, err := New(2, rand.Reader, testHash)
	require.Nil(t, err)

	invalidErr := v.CreateAccount("admin", "correct horse", 0)
	require.NotNil(t, invalidErr)
	assert.True(t, invalidErr.Is(vaultErrors.ErrVaultInvalidShareCount))
}

func TestCommitToFileThenLoadFromFileRoundTrip(t *testing.T) {
	v, err := New(2, rand.Reader, testHash)
	require.Nil(t, err)
	require.Nil(t, v.CreateAccount("admin", "correct horse", 2))

	path := filepath.Join(t.TempDir(), "vault.json.gz")
	require.Nil(t, v.CommitToFile(path))

	firstFormatID := v.FormatID()
	assert.NotEqual(t, "00000000-0000-0000-0000-000000000000", firstFormatID.String())

	locked, loadErr := LoadFromFile(path, 2, rand.Reader, testHash)
	require.Nil(t, loadErr)
	assert.Equal(t, firstFormatID, locked.FormatID())

	ok, loginErr := locked.IsValidLogin("admin", "correct horse")
	require.Nil(t, loginErr)
	assert.True(t, ok)

	// Re-commit preserves the same FormatID.
	require.Nil(t, locked.Unlock([]LoginAttempt{{Username: "admin", Password: "correct horse"}}))
	require.Nil(t, locked.CommitToFile(path))
	assert.Equal(t, firstFormatID, locked.FormatID())
}

func TestCommitToFileDefaultsToVaultDataDir(t *testing.T) {
	t.Setenv(env.VaultDataDir, t.TempDir())

	v, err := New(2, rand.Reader, testHash)
	require.Nil(t, err)
	require.Nil(t, v.CreateAccount("admin", "correct horse", 2))

	require.Nil(t, v.CommitToFile(""))

	locked, loadErr := LoadFromFile("", 2, rand.Reader, testHash)
	require.Nil(t, loadErr)

	ok, loginErr := locked.IsValidLogin("admin", "correct horse")
	require.Nil(t, loginErr)
	assert.True(t, ok)
}
