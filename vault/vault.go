//    \\ SPIKE: Secure your secrets with SPIFFE. — https://spike.ist/
//  \\\\\ Copyright 2024-present SPIKE contributors.
// \\\\\\\ SPDX-License-Identifier: Apache-2.0

package vault

import (
	"io"

	"github.com/google/uuid"

	"github.com/polypasswordhasher/pph/config/env"
	"github.com/polypasswordhasher/pph/gf256"
	"github.com/polypasswordhasher/pph/security/mem"
	"github.com/polypasswordhasher/pph/shamir"
	"github.com/polypasswordhasher/pph/validation"

	vaultErrors "github.com/polypasswordhasher/pph/errors"
)

// masterSecretSize is the length, in bytes, of the random secret a fresh
// Vault splits into per-account shares.
const masterSecretSize = 256

// HashFunc computes the 32-byte digest a Vault salts and masks with a
// share. Production callers pass a SHA-256 implementation; tests may
// substitute a deterministic stand-in.
type HashFunc func([]byte) [32]byte

// Vault is a PolyPasswordHasher credential store. The zero value is not
// usable; construct one with New or Load.
type Vault struct {
	threshold     byte
	accounts      map[int]*Account
	nextAccountID int

	shamir *shamir.Secret
	locked bool

	saltSize     int
	partialBytes int

	nextAvailableShare int

	hash HashFunc
	salt *saltPool

	formatID uuid.UUID
}

// Option customizes a Vault at construction time. Unset options fall back
// to config/env's resolution order (environment variable, YAML override
// file, hardcoded default).
type Option func(*Vault)

// WithSaltSize overrides the number of random bytes drawn per account
// salt.
func WithSaltSize(n int) Option {
	return func(v *Vault) { v.saltSize = n }
}

// WithPartialBytes overrides the number of trailing cleartext hash bytes
// kept for partial verification while locked. 0 disables partial
// verification.
func WithPartialBytes(n int) Option {
	return func(v *Vault) { v.partialBytes = n }
}

func newVault(threshold byte, hash HashFunc, opts []Option) *Vault {
	v := &Vault{
		threshold:          threshold,
		accounts:           make(map[int]*Account),
		nextAccountID:      1,
		nextAvailableShare: 1,
		saltSize:           env.SaltSizeVal(),
		partialBytes:       env.PartialBytesVal(),
		hash:               hash,
	}
	for _, opt := range opts {
		opt(v)
	}
	return v
}

// New creates a FRESH vault: it draws a 256-byte master secret from r,
// splits it into a threshold-of-n Shamir secret, and returns a vault ready
// to create accounts immediately. r is also retained as the vault's
// account-salt source.
func New(
	threshold byte, r io.Reader, hash HashFunc, opts ...Option,
) (*Vault, *vaultErrors.VaultError) {
	secret := make([]byte, masterSecretSize)
	if _, err := io.ReadFull(r, secret); err != nil {
		return nil, vaultErrors.ErrGeneralFailure.Wrap(err)
	}
	defer mem.ClearBytes(secret)

	s, shamirErr := shamir.New(threshold, secret, r)
	if shamirErr != nil {
		return nil, shamirErr
	}

	v := newVault(threshold, hash, opts)
	v.shamir = s
	v.locked = false
	v.salt = newSaltPool(r)

	return v, nil
}

// Load reads a persisted vault from data (see persist.go for the on-disk
// format) and returns it LOCKED: it knows every account but not the
// secret they were split from. rng is retained as the vault's account-salt
// source, used only after a successful Unlock.
func Load(
	threshold byte, data io.Reader, rng io.Reader, hash HashFunc, opts ...Option,
) (*Vault, *vaultErrors.VaultError) {
	v := newVault(threshold, hash, opts)
	v.shamir = shamir.NewAwaitingRecovery(threshold)
	v.locked = true
	v.salt = newSaltPool(rng)

	if err := v.decode(data); err != nil {
		return nil, err
	}

	v.nextAvailableShare = 1
	for _, a := range v.accounts {
		if int(a.ShareNumber)+1 > v.nextAvailableShare {
			v.nextAvailableShare = int(a.ShareNumber) + 1
		}
	}
	v.nextAccountID = 1
	for id := range v.accounts {
		if id+1 > v.nextAccountID {
			v.nextAccountID = id + 1
		}
	}

	return v, nil
}

// CreateAccount issues shares new share-body-masked password hashes for
// username, one per requested share, advancing the vault's share cursor.
// It either inserts all new accounts or none: a failure partway through
// leaves the vault exactly as it was before the call.
func (v *Vault) CreateAccount(username, password string, shares int) *vaultErrors.VaultError {
	if v.locked {
		return vaultErrors.ErrVaultLocked
	}
	if nameErr := validation.ValidateName(username); nameErr != nil {
		return nameErr
	}
	if shares < 1 {
		return vaultErrors.ErrVaultInvalidShareCount
	}
	if v.nextAvailableShare+shares > 256 {
		return vaultErrors.ErrVaultShareSpaceExhausted
	}
	if len(v.AccountsForUsername(username)) > 0 {
		return vaultErrors.ErrVaultDuplicateUser
	}

	newAccounts := make([]*Account, 0, shares)
	for x := v.nextAvailableShare; x < v.nextAvailableShare+shares; x++ {
		account, err := v.buildAccount(username, password, byte(x))
		if err != nil {
			return err
		}
		newAccounts = append(newAccounts, account)
	}

	for _, account := range newAccounts {
		account.ID = v.nextAccountID
		v.accounts[account.ID] = account
		v.nextAccountID++
	}
	v.nextAvailableShare += shares

	return nil
}

func (v *Vault) buildAccount(username, password string, x byte) (*Account, *vaultErrors.VaultError) {
	share, shareErr := v.shamir.ComputeShare(x)
	if shareErr != nil {
		return nil, shareErr
	}
	shareBody := share[1:]

	salt, saltErr := v.salt.next(v.saltSize)
	if saltErr != nil {
		return nil, saltErr
	}

	raw := v.hash(append(append([]byte(nil), salt...), password...))
	defer mem.ClearBytes(raw[:])

	passHash := make([]byte, 32+v.partialBytes)
	for i := 0; i < 32; i++ {
		passHash[i] = gf256.Add(raw[i], shareBody[i])
	}
	copy(passHash[32:], raw[32-v.partialBytes:32])

	return &Account{
		Username:    username,
		Salt:        salt,
		ShareNumber: x,
		PassHash:    passHash,
	}, nil
}

// IsValidLogin reports whether password authenticates username against
// any of its issued-share accounts. If the vault is locked, verification
// is partial: it only checks a small cleartext tag and accepts wrong
// passwords with probability 256^(-partialBytes). If the vault is
// unlocked, verification reconstructs the candidate share and checks it
// exactly against the Shamir secret.
func (v *Vault) IsValidLogin(username, password string) (bool, *vaultErrors.VaultError) {
	accounts := v.AccountsForUsername(username)
	if len(accounts) == 0 {
		return false, vaultErrors.ErrVaultUnknownUser
	}

	if v.locked && v.partialBytes == 0 {
		return false, vaultErrors.ErrVaultPartialVerificationDisabled
	}

	for _, account := range accounts {
		raw := v.hash(append(append([]byte(nil), account.Salt...), password...))

		if v.locked {
			tag := raw[32-v.partialBytes:]
			match := bytesEqual(tag, account.PassHash[32:32+v.partialBytes])
			mem.ClearBytes(raw[:])
			if match {
				return true, nil
			}
			continue
		}

		candidateShare := make(shamir.Share, 33)
		candidateShare[0] = account.ShareNumber
		for i := 0; i < 32; i++ {
			candidateShare[1+i] = gf256.Add(raw[i], account.PassHash[i])
		}
		mem.ClearBytes(raw[:])

		valid, validErr := v.shamir.IsValidShare(candidateShare)
		if validErr != nil {
			return false, validErr
		}
		if valid {
			return true, nil
		}
	}

	return false, nil
}

// Unlock attempts to recover the vault's secret from a quorum of exact
// logins, transitioning a LOCKED vault to UNLOCKED on success. Accounts
// whose share number is the reserved tombstone value 0 are skipped.
//
// When more candidate shares are supplied than the threshold requires, the
// surplus is used as an independent consistency check on the recovered
// secret: if any surplus share fails to validate against the recovered
// polynomials, the vault stays LOCKED and ErrShamirReconstructionFailed is
// returned. With exactly threshold shares there is no way to distinguish a
// correct reconstruction from one fit to consistent-but-wrong passwords,
// since any threshold points determine a polynomial by construction.
func (v *Vault) Unlock(logins []LoginAttempt) *vaultErrors.VaultError {
	if !v.locked {
		return vaultErrors.ErrVaultAlreadyUnlocked
	}

	var shares []shamir.Share
	for _, login := range logins {
		accounts := v.AccountsForUsername(login.Username)
		if len(accounts) == 0 {
			return vaultErrors.ErrVaultUnlockUnknownUser
		}

		for _, account := range accounts {
			if account.ShareNumber == 0 {
				continue
			}

			raw := v.hash(append(append([]byte(nil), account.Salt...), login.Password...))
			share := make(shamir.Share, 33)
			share[0] = account.ShareNumber
			for i := 0; i < 32; i++ {
				share[1+i] = gf256.Add(raw[i], account.PassHash[i])
			}
			mem.ClearBytes(raw[:])
			shares = append(shares, share)
		}
	}

	verifier := shamir.NewAwaitingRecovery(v.threshold)
	if _, err := verifier.RecoverSecretData(shares); err != nil {
		return err
	}

	if len(shares) > int(v.threshold) {
		for _, share := range shares {
			valid, err := verifier.IsValidShare(share)
			if err != nil {
				verifier.Zero()
				return err
			}
			if !valid {
				verifier.Zero()
				return vaultErrors.ErrShamirReconstructionFailed
			}
		}
	}

	v.shamir.Zero()
	v.shamir = verifier
	v.locked = false

	return nil
}

func bytesEqual(a, b []byte) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
