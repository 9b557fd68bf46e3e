//    \\ SPIKE: Secure your secrets with SPIFFE. — https://spike.ist/
//  \\\\\ Copyright 2024-present SPIKE contributors.
// \\\\\\\ SPDX-License-Identifier: Apache-2.0

package fs

import (
	"bytes"
	"io"
	"os"
	"path/filepath"

	"github.com/klauspost/compress/gzip"

	vaultErrors "github.com/polypasswordhasher/pph/errors"
)

// VaultFilePath returns the path of the default vault file, under
// VaultDataDir().
func VaultFilePath() string {
	return filepath.Join(VaultDataDir(), vaultFileName)
}

// WriteAtomic gzip-compresses data and writes it to path using a
// temp-file-then-rename sequence, so a crash mid-write never leaves a
// half-written vault file in place.
func WriteAtomic(path string, data []byte) *vaultErrors.VaultError {
	dir := filepath.Dir(path)
	if mkdirErr := os.MkdirAll(dir, 0700); mkdirErr != nil {
		return vaultErrors.ErrFileDirectoryCreationFailed.Wrap(mkdirErr)
	}

	var buf bytes.Buffer
	gw := gzip.NewWriter(&buf)
	if _, err := gw.Write(data); err != nil {
		return vaultErrors.ErrFileWrite.Wrap(err)
	}
	if err := gw.Close(); err != nil {
		return vaultErrors.ErrFileWrite.Wrap(err)
	}

	tmp, tmpErr := os.CreateTemp(dir, filepath.Base(path)+".tmp-*")
	if tmpErr != nil {
		return vaultErrors.ErrFileOpen.Wrap(tmpErr)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(buf.Bytes()); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmpName)
		return vaultErrors.ErrFileWrite.Wrap(err)
	}
	if err := tmp.Sync(); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmpName)
		return vaultErrors.ErrFileWrite.Wrap(err)
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmpName)
		return vaultErrors.ErrFileWrite.Wrap(err)
	}

	if err := os.Chmod(tmpName, 0600); err != nil {
		_ = os.Remove(tmpName)
		return vaultErrors.ErrFileWrite.Wrap(err)
	}

	if err := os.Rename(tmpName, path); err != nil {
		_ = os.Remove(tmpName)
		return vaultErrors.ErrFileRename.Wrap(err)
	}

	return nil
}

// ReadAtomic reads and gunzips the file at path.
func ReadAtomic(path string) ([]byte, *vaultErrors.VaultError) {
	f, err := os.Open(path)
	if err != nil {
		return nil, vaultErrors.ErrFileOpen.Wrap(err)
	}
	defer func() { _ = f.Close() }()

	gr, err := gzip.NewReader(f)
	if err != nil {
		return nil, vaultErrors.ErrFileRead.Wrap(err)
	}
	defer func() { _ = gr.Close() }()

	data, err := io.ReadAll(gr)
	if err != nil {
		return nil, vaultErrors.ErrFileRead.Wrap(err)
	}

	return data, nil
}
