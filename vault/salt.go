//    \\ SPIKE: Secure your secrets with SPIFFE. — https://spike.ist/
//  \\\\\ Copyright 2024-present SPIKE contributors.
// \\\\\\\ SPDX-License-Identifier: Apache-2.0

package vault

import (
	"crypto/sha256"
	"io"

	"golang.org/x/crypto/hkdf"

	vaultErrors "github.com/polypasswordhasher/pph/errors"
)

// saltPool hands out independent, unpredictable account salts without
// reading from the injected CSPRNG once per account. It draws a single
// 32-byte seed from the CSPRNG the first time a salt is requested, then
// expands salts from that seed with HKDF-SHA256. One HKDF expansion yields
// at most 255*32 = 8160 bytes, so a pool hands out at most 8160/size salts
// (510 of the default 16 bytes); a request past that fails with
// ErrGeneralFailure. Each account still gets a fresh salt; only the number
// of reads against the (possibly slow or rate-limited) CSPRNG source is
// reduced.
type saltPool struct {
	rng    io.Reader
	stream io.Reader
}

func newSaltPool(rng io.Reader) *saltPool {
	return &saltPool{rng: rng}
}

func (p *saltPool) next(size int) ([]byte, *vaultErrors.VaultError) {
	if p.stream == nil {
		seed := make([]byte, 32)
		if _, err := io.ReadFull(p.rng, seed); err != nil {
			return nil, vaultErrors.ErrGeneralFailure.Wrap(err)
		}
		p.stream = hkdf.New(sha256.New, seed, nil, []byte("pph-account-salt"))
	}

	salt := make([]byte, size)
	if _, err := io.ReadFull(p.stream, salt); err != nil {
		return nil, vaultErrors.ErrGeneralFailure.Wrap(err)
	}
	return salt, nil
}
