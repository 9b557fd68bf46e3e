//    \\ SPIKE: Secure your secrets with SPIFFE. — https://spike.ist/
//  \\\\\ Copyright 2024-present SPIKE contributors.
// \\\\\\\ SPDX-License-Identifier: Apache-2.0

package vault

import (
	"bytes"
	"encoding/base64"
	"encoding/json"
	"io"
	"strconv"

	"github.com/google/uuid"

	"github.com/polypasswordhasher/pph/config/fs"

	vaultErrors "github.com/polypasswordhasher/pph/errors"
)

// persistedAccount is the on-disk representation of an Account. salt and
// passhash are base64-encoded: the raw bytes are not valid UTF-8 in
// general, so storing them as JSON strings directly (as one revision of
// the source this module descends from did) is lossy and wrong.
type persistedAccount struct {
	ID          int    `json:"id"`
	Username    string `json:"username"`
	Salt        string `json:"salt"`
	ShareNumber int    `json:"sharenumber"`
	PassHash    string `json:"passhash"`
}

type persistedVault struct {
	FormatID string                      `json:"format_id"`
	Accounts map[string]persistedAccount `json:"accounts"`
}

// FormatID identifies this vault's on-disk file instance. It is assigned
// the first time Commit is called and preserved across subsequent commits
// and Load/Commit round trips, so a caller can tell whether a file it is
// looking at is the same one it last wrote.
func (v *Vault) FormatID() uuid.UUID {
	return v.formatID
}

// Commit serializes every account to w as JSON, in the format documented
// on persistedVault. It requires threshold < nextAvailableShare: otherwise
// the written file would not contain enough distinct shares for any future
// Unlock to ever reconstruct the secret.
func (v *Vault) Commit(w io.Writer) *vaultErrors.VaultError {
	if v.locked {
		return vaultErrors.ErrVaultLocked
	}
	if int(v.threshold) >= v.nextAvailableShare {
		return vaultErrors.ErrVaultUndecodable
	}

	if v.formatID == uuid.Nil {
		v.formatID = uuid.New()
	}

	pv := persistedVault{
		FormatID: v.formatID.String(),
		Accounts: make(map[string]persistedAccount, len(v.accounts)),
	}
	for id, a := range v.accounts {
		pv.Accounts[strconv.Itoa(id)] = persistedAccount{
			ID:          a.ID,
			Username:    a.Username,
			Salt:        base64.StdEncoding.EncodeToString(a.Salt),
			ShareNumber: int(a.ShareNumber),
			PassHash:    base64.StdEncoding.EncodeToString(a.PassHash),
		}
	}

	encoded, marshalErr := json.Marshal(pv)
	if marshalErr != nil {
		return vaultErrors.ErrSerMarshal.Wrap(marshalErr)
	}

	if _, writeErr := w.Write(encoded); writeErr != nil {
		return vaultErrors.ErrFileWrite.Wrap(writeErr)
	}
	return nil
}

// CommitToFile is Commit's convenience wrapper for the common case of a
// single on-disk file: it serializes in memory, then writes atomically
// (gzip-compressed, temp-file-then-rename) via config/fs.WriteAtomic. An
// empty path resolves to config/fs.VaultFilePath(), the default location
// under PPH_VAULT_DATA_DIR (or the user's home directory, or /tmp as a
// last resort).
func (v *Vault) CommitToFile(path string) *vaultErrors.VaultError {
	if path == "" {
		path = fs.VaultFilePath()
	}

	var buf bytes.Buffer
	if err := v.Commit(&buf); err != nil {
		return err
	}
	return fs.WriteAtomic(path, buf.Bytes())
}

// decode populates v.accounts and v.formatID from a persistedVault JSON
// stream. It does not touch v.nextAvailableShare/v.nextAccountID; the
// caller recomputes those after decode returns.
func (v *Vault) decode(r io.Reader) *vaultErrors.VaultError {
	raw, readErr := io.ReadAll(r)
	if readErr != nil {
		return vaultErrors.ErrFileRead.Wrap(readErr)
	}

	var pv persistedVault
	if err := json.Unmarshal(raw, &pv); err != nil {
		return vaultErrors.ErrSerUnmarshal.Wrap(err)
	}

	if pv.FormatID != "" {
		id, parseErr := uuid.Parse(pv.FormatID)
		if parseErr != nil {
			return vaultErrors.ErrSerEncoding.Wrap(parseErr)
		}
		v.formatID = id
	}

	for _, pa := range pv.Accounts {
		salt, saltErr := base64.StdEncoding.DecodeString(pa.Salt)
		if saltErr != nil {
			return vaultErrors.ErrSerEncoding.Wrap(saltErr)
		}
		passHash, passErr := base64.StdEncoding.DecodeString(pa.PassHash)
		if passErr != nil {
			return vaultErrors.ErrSerEncoding.Wrap(passErr)
		}

		v.accounts[pa.ID] = &Account{
			ID:          pa.ID,
			Username:    pa.Username,
			Salt:        salt,
			ShareNumber: byte(pa.ShareNumber),
			PassHash:    passHash,
		}
	}

	return nil
}

// LoadFromFile is Load's convenience wrapper for the common case of a
// single on-disk file: it reads and gunzips path via config/fs.ReadAtomic,
// then decodes the result exactly as Load would. An empty path resolves
// to config/fs.VaultFilePath(), matching CommitToFile's default.
func LoadFromFile(
	path string, threshold byte, rng io.Reader, hash HashFunc, opts ...Option,
) (*Vault, *vaultErrors.VaultError) {
	if path == "" {
		path = fs.VaultFilePath()
	}

	data, err := fs.ReadAtomic(path)
	if err != nil {
		return nil, err
	}
	return Load(threshold, bytes.NewReader(data), rng, hash, opts...)
}
