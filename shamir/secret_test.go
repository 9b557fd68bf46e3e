//    \\ SPIKE: Secure your secrets with SPIFFE. — https://spike.ist/
//  \\\\\ Copyright 2024-present SPIKE contributors.
// \\\\\\\ SPDX-License-Identifier: Apache-2.0

package shamir

import (
	"bytes"
	"crypto/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	vaultErrors "github.com/polypasswordhasher/pph/errors"
)

func TestNewRejectsThresholdBelowTwo(t *testing.T) {
	_, err := New(1, []byte("secret"), rand.Reader)
	require.NotNil(t, err)
	assert.True(t, err.Is(vaultErrors.ErrShamirThresholdTooSmall))
}

func TestNewRejectsEmptySecret(t *testing.T) {
	_, err := New(2, nil, rand.Reader)
	require.NotNil(t, err)
	assert.True(t, err.Is(vaultErrors.ErrShamirSecretEmpty))
}

func TestComputeShareRejectsXZero(t *testing.T) {
	s, err := New(2, []byte("secret"), rand.Reader)
	require.Nil(t, err)

	_, shareErr := s.ComputeShare(0)
	require.NotNil(t, shareErr)
	assert.True(t, shareErr.Is(vaultErrors.ErrShamirShareXZero))
}

func TestComputeShareFailsWithoutCoefficients(t *testing.T) {
	s := NewAwaitingRecovery(2)
	_, err := s.ComputeShare(1)
	require.NotNil(t, err)
	assert.True(t, err.Is(vaultErrors.ErrShamirCoefficientsMissing))
}

func TestIsValidShareAcceptsOwnShare(t *testing.T) {
	s, err := New(3, []byte("hunter2"), rand.Reader)
	require.Nil(t, err)

	share, shareErr := s.ComputeShare(5)
	require.Nil(t, shareErr)

	valid, validErr := s.IsValidShare(share)
	require.Nil(t, validErr)
	assert.True(t, valid)
}

func TestIsValidShareRejectsTamperedShare(t *testing.T) {
	s, err := New(3, []byte("hunter2"), rand.Reader)
	require.Nil(t, err)

	share, shareErr := s.ComputeShare(5)
	require.Nil(t, shareErr)

	tampered := append(Share(nil), share...)
	tampered[1] ^= 0xFF

	valid, validErr := s.IsValidShare(tampered)
	require.Nil(t, validErr)
	assert.False(t, valid)
}

func TestIsValidShareAcceptsTruncatedPrefix(t *testing.T) {
	s, err := New(3, []byte("hunter2!"), rand.Reader)
	require.Nil(t, err)

	full, shareErr := s.ComputeShare(5)
	require.Nil(t, shareErr)

	prefix := append(Share(nil), full[:4]...)
	valid, validErr := s.IsValidShare(prefix)
	require.Nil(t, validErr)
	assert.True(t, valid)

	prefix[2] ^= 0xFF
	valid, validErr = s.IsValidShare(prefix)
	require.Nil(t, validErr)
	assert.False(t, valid)
}

func TestRecoverSecretDataRoundTrip(t *testing.T) {
	secret := []byte("the quick brown fox jumps over the lazy dog")
	s, err := New(4, secret, rand.Reader)
	require.Nil(t, err)

	var shares []Share
	for x := byte(1); x <= 6; x++ {
		share, shareErr := s.ComputeShare(x)
		require.Nil(t, shareErr)
		shares = append(shares, share)
	}

	recoverer := NewAwaitingRecovery(4)
	recovered, recoverErr := recoverer.RecoverSecretData(shares)
	require.Nil(t, recoverErr)
	assert.Equal(t, secret, recovered)

	// The recoverer can now issue shares indistinguishable from the
	// original secret's own shares.
	for x := byte(1); x <= 6; x++ {
		original, origErr := s.ComputeShare(x)
		require.Nil(t, origErr)
		fromRecovered, recErr := recoverer.ComputeShare(x)
		require.Nil(t, recErr)
		assert.Equal(t, original, fromRecovered)
	}
}

func TestRecoverSecretDataDeduplicatesShares(t *testing.T) {
	secret := []byte("abc")
	s, err := New(2, secret, rand.Reader)
	require.Nil(t, err)

	share1, _ := s.ComputeShare(1)
	share2, _ := s.ComputeShare(2)

	recoverer := NewAwaitingRecovery(2)
	recovered, recoverErr := recoverer.RecoverSecretData(
		[]Share{share1, share1, share2},
	)
	require.Nil(t, recoverErr)
	assert.Equal(t, secret, recovered)
}

func TestRecoverSecretDataInsufficientShares(t *testing.T) {
	secret := []byte("abc")
	s, err := New(3, secret, rand.Reader)
	require.Nil(t, err)

	share1, _ := s.ComputeShare(1)
	share2, _ := s.ComputeShare(2)

	recoverer := NewAwaitingRecovery(3)
	_, recoverErr := recoverer.RecoverSecretData([]Share{share1, share2})
	require.NotNil(t, recoverErr)
	assert.True(t, recoverErr.Is(vaultErrors.ErrShamirInsufficientShares))
}

func TestRecoverSecretDataRaggedShares(t *testing.T) {
	recoverer := NewAwaitingRecovery(2)
	_, err := recoverer.RecoverSecretData(
		[]Share{{1, 10, 20}, {2, 30}},
	)
	require.NotNil(t, err)
	assert.True(t, err.Is(vaultErrors.ErrShamirRaggedShares))
}

func TestRecoverSecretDataDuplicateX(t *testing.T) {
	recoverer := NewAwaitingRecovery(2)
	_, err := recoverer.RecoverSecretData(
		[]Share{{1, 10, 20}, {1, 99, 98}},
	)
	require.NotNil(t, err)
	assert.True(t, err.Is(vaultErrors.ErrShamirDuplicateX))
}

func TestZeroClearsSecretAndRandomCoefficients(t *testing.T) {
	s, err := New(3, []byte("sensitive"), rand.Reader)
	require.Nil(t, err)

	s.Zero()

	for _, b := range s.secretdata {
		assert.Equal(t, byte(0), b)
	}
	for _, poly := range s.coefficients {
		for _, c := range poly[1:] {
			assert.Equal(t, byte(0), c)
		}
	}
}

// stubReader records a copy of the bytes it fills each requested slice
// with, so tests can assert that New draws a fresh buffer per secret byte
// rather than reusing one buffer across the whole secret.
type stubReader struct {
	reads [][]byte
}

func (r *stubReader) Read(p []byte) (int, error) {
	n := len(r.reads) + 1
	for i := range p {
		p[i] = byte(n*31 + i)
	}
	r.reads = append(r.reads, append([]byte(nil), p...))
	return len(p), nil
}

func TestNewDrawsFreshBufferPerSecretByte(t *testing.T) {
	secret := []byte("abcdef")
	stub := &stubReader{}

	_, err := New(3, secret, stub)
	require.Nil(t, err)

	// One Read call per secret byte: a single shared buffer reused across
	// the whole secret would instead show up as a single call of length
	// len(secret)*(threshold-1).
	require.Len(t, stub.reads, len(secret))
	for _, read := range stub.reads {
		assert.Len(t, read, 2)
	}

	for i := 1; i < len(stub.reads); i++ {
		assert.False(t, bytes.Equal(stub.reads[i], stub.reads[i-1]),
			"expected independently drawn coefficients per secret byte")
	}
}
