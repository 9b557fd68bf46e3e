//    \\ SPIKE: Secure your secrets with SPIFFE. — https://spike.ist/
//  \\\\\ Copyright 2024-present SPIKE contributors.
// \\\\\\\ SPDX-License-Identifier: Apache-2.0

package shamir

import (
	"io"

	"github.com/polypasswordhasher/pph/gf256"
	"github.com/polypasswordhasher/pph/security/mem"

	vaultErrors "github.com/polypasswordhasher/pph/errors"
)

const minThreshold = 2
const minSecretLength = 1

// Secret is one byte-wise (k,n)-threshold Shamir split of an arbitrary
// length secret. Each secret byte has its own degree-(threshold-1)
// polynomial over GF(2^8); the constant term of polynomial i is the i-th
// byte of the secret.
type Secret struct {
	threshold    uint8
	secretdata   []byte
	coefficients [][]byte
}

// New splits secret into per-byte random polynomials of degree
// threshold-1, drawing a fresh threshold-1-byte coefficient buffer per
// secret byte from r. It verifies the split by recombining threshold
// freshly computed shares and comparing against secret before returning.
func New(threshold uint8, secret []byte, r io.Reader) (*Secret, *vaultErrors.VaultError) {
	if threshold < minThreshold {
		return nil, vaultErrors.ErrShamirThresholdTooSmall
	}
	if len(secret) < minSecretLength {
		return nil, vaultErrors.ErrShamirSecretEmpty
	}

	coefficients := make([][]byte, len(secret))
	for i, b := range secret {
		poly := make([]byte, threshold)
		poly[0] = b
		if _, err := io.ReadFull(r, poly[1:]); err != nil {
			return nil, vaultErrors.ErrGeneralFailure.Wrap(err)
		}
		coefficients[i] = poly
	}

	s := &Secret{
		threshold:    threshold,
		secretdata:   append([]byte(nil), secret...),
		coefficients: coefficients,
	}

	if verifyErr := s.verifyReconstruction(); verifyErr != nil {
		return nil, verifyErr
	}

	return s, nil
}

// NewAwaitingRecovery returns a Secret with no coefficients, waiting for
// RecoverSecretData to be given enough shares to reconstruct them.
func NewAwaitingRecovery(threshold uint8) *Secret {
	return &Secret{threshold: threshold}
}

// Threshold returns the minimum number of shares required to reconstruct
// the secret.
func (s *Secret) Threshold() uint8 {
	return s.threshold
}

// HasCoefficients reports whether s can currently produce or validate
// shares, i.e. whether it was constructed with a known secret or has
// already recovered one via RecoverSecretData.
func (s *Secret) HasCoefficients() bool {
	return len(s.coefficients) > 0
}

// ComputeShare evaluates every per-byte polynomial at x and returns the
// resulting share [x, eval(x, poly_0), eval(x, poly_1), ...]. Fails if
// x == 0 or coefficients are absent.
func (s *Secret) ComputeShare(x byte) (Share, *vaultErrors.VaultError) {
	if x == 0 {
		return nil, vaultErrors.ErrShamirShareXZero
	}
	if !s.HasCoefficients() {
		return nil, vaultErrors.ErrShamirCoefficientsMissing
	}

	share := make(Share, len(s.coefficients)+1)
	share[0] = x
	for i, poly := range s.coefficients {
		v, evalErr := gf256.Eval(x, poly)
		if evalErr != nil {
			return nil, evalErr
		}
		share[1+i] = v
	}
	return share, nil
}

// IsValidShare reports whether share was produced by this Secret's
// polynomials: it reads x = share[0], recomputes ComputeShare(x), and
// compares byte-for-byte. Fails if coefficients are absent.
//
// share may be shorter than a full computed share, in which case it is
// treated as a claim about only that many leading data bytes — the
// remaining, undisclosed bytes of the real share are not consulted. This
// lets a caller holding only a truncated share body (e.g. a masked
// password hash that stores just the first 32 of a 256-byte share body)
// still validate it exactly.
func (s *Secret) IsValidShare(share Share) (bool, *vaultErrors.VaultError) {
	if !s.HasCoefficients() {
		return false, vaultErrors.ErrShamirCoefficientsMissing
	}
	if len(share) == 0 {
		return false, nil
	}

	recomputed, err := s.ComputeShare(share.X())
	if err != nil {
		return false, err
	}
	if len(share) > len(recomputed) {
		return false, nil
	}

	for i := 1; i < len(share); i++ {
		if share[i] != recomputed[i] {
			return false, nil
		}
	}
	return true, nil
}

// RecoverSecretData reconstructs the secret from shares, storing the
// recovered per-byte polynomials as s's new coefficients so the instance
// becomes indistinguishable from one constructed from the true secret.
//
//  1. Shares are deduplicated by full-byte-sequence equality.
//  2. len(shares) must be >= threshold, else ErrShamirInsufficientShares.
//  3. All shares must share a length, else ErrShamirRaggedShares.
//  4. No two shares may share an x-coordinate, else ErrShamirDuplicateX.
//
// Only the first threshold (deduplicated) shares are used to reconstruct
// each byte; this matches the source algorithm and is sufficient once the
// threshold invariants above hold.
func (s *Secret) RecoverSecretData(shares []Share) ([]byte, *vaultErrors.VaultError) {
	deduped := dedupeShares(shares)

	if len(deduped) < int(s.threshold) {
		return nil, vaultErrors.ErrShamirInsufficientShares
	}

	shareLen := len(deduped[0])
	for _, sh := range deduped {
		if len(sh) != shareLen {
			return nil, vaultErrors.ErrShamirRaggedShares
		}
	}

	xs := make([]byte, len(deduped))
	seen := make(map[byte]bool, len(deduped))
	for i, sh := range deduped {
		x := sh.X()
		if seen[x] {
			return nil, vaultErrors.ErrShamirDuplicateX
		}
		seen[x] = true
		xs[i] = x
	}

	used := deduped[:s.threshold]
	usedXs := xs[:s.threshold]

	secretLen := shareLen - 1
	secret := make([]byte, secretLen)
	coefficients := make([][]byte, secretLen)

	for t := 0; t < secretLen; t++ {
		ys := make([]byte, len(used))
		for i, sh := range used {
			ys[i] = sh[1+t]
		}

		poly, lagrangeErr := gf256.FullLagrange(usedXs, ys)
		if lagrangeErr != nil {
			return nil, lagrangeErr
		}

		coefficients[t] = poly
		secret[t] = poly[0]
	}

	s.secretdata = secret
	s.coefficients = coefficients

	return append([]byte(nil), secret...), nil
}

// Zero wipes the secret bytes and every polynomial's non-constant
// (random) coefficients. Each polynomial's constant term is left in
// place, and HasCoefficients still reports true afterwards: ComputeShare
// keeps returning values, but they are evaluations of the constant
// polynomials only, not shares of the original split.
func (s *Secret) Zero() {
	mem.ClearBytes(s.secretdata)
	for _, poly := range s.coefficients {
		if len(poly) > 1 {
			mem.ClearBytes(poly[1:])
		}
	}
}

// verifyReconstruction is New's fail-fast sanity check: it computes
// threshold fresh shares from s's own polynomials and confirms they
// recombine to the secret s was just built from.
func (s *Secret) verifyReconstruction() *vaultErrors.VaultError {
	shares := make([]Share, s.threshold)
	for i := 0; i < int(s.threshold); i++ {
		share, err := s.ComputeShare(byte(i + 1))
		if err != nil {
			return err
		}
		shares[i] = share
	}

	verifier := NewAwaitingRecovery(s.threshold)
	recovered, err := verifier.RecoverSecretData(shares)
	if err != nil {
		return err
	}

	if !bytesEqual(recovered, s.secretdata) {
		return vaultErrors.ErrShamirReconstructionFailed
	}

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

func dedupeShares(shares []Share) []Share {
	out := make([]Share, 0, len(shares))
	for _, candidate := range shares {
		dup := false
		for _, kept := range out {
			if kept.equal(candidate) {
				dup = true
				break
			}
		}
		if !dup {
			out = append(out, candidate)
		}
	}
	return out
}
