// Package keyfile reads, writes and generates the raw 96-byte key files.
//
// A key file holds exactly kcrypt.KeySize bytes: the 32-byte round key
// followed by the 64-byte permutation key. No encoding is applied.
package keyfile

import (
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"golang.org/x/crypto/blake2b"

	"github.com/idelchi/kcrypt/internal/kcrypt"
	"github.com/idelchi/kcrypt/internal/secrand"
	"github.com/idelchi/kcrypt/internal/secure"
)

// ErrExists is returned by Save when the target exists and overwriting was not requested.
var ErrExists = errors.New("key file already exists")

const ownerReadWrite = 0o600

// Load reads the key file at path. Any size other than kcrypt.KeySize is rejected.
func Load(path string) (kcrypt.BlockKey, error) {
	f, err := os.Open(filepath.Clean(path))
	if err != nil {
		return kcrypt.BlockKey{}, fmt.Errorf("opening key file: %w", err)
	}
	defer f.Close()

	// One byte more than needed so that oversized files are noticed.
	buf := make([]byte, kcrypt.KeySize+1)
	defer secure.Zero(buf)

	n, err := io.ReadFull(f, buf)
	if err != nil && !errors.Is(err, io.ErrUnexpectedEOF) && !errors.Is(err, io.EOF) {
		return kcrypt.BlockKey{}, fmt.Errorf("reading key file: %w", err)
	}

	key, err := kcrypt.ParseBlockKey(buf[:n])
	if err != nil {
		return kcrypt.BlockKey{}, fmt.Errorf("key file %q: %w", path, err)
	}

	return key, nil
}

// Generate draws a fresh key from src.
func Generate(src secrand.Source) (kcrypt.BlockKey, error) {
	buf := make([]byte, kcrypt.KeySize)
	defer secure.Zero(buf)

	if err := src.Fill(buf); err != nil {
		return kcrypt.BlockKey{}, fmt.Errorf("generating key: %w", err)
	}

	key, err := kcrypt.ParseBlockKey(buf)
	if err != nil {
		return kcrypt.BlockKey{}, err //nolint:wrapcheck // cannot happen for a buffer of KeySize
	}

	return key, nil
}

// Save writes key to path with owner-only permissions. An existing file is
// only replaced when force is set.
func Save(path string, key *kcrypt.BlockKey, force bool) (err error) {
	flags := os.O_WRONLY | os.O_CREATE | os.O_EXCL
	if force {
		flags = os.O_WRONLY | os.O_CREATE | os.O_TRUNC
	}

	f, err := os.OpenFile(filepath.Clean(path), flags, ownerReadWrite)
	if err != nil {
		if errors.Is(err, os.ErrExist) {
			return fmt.Errorf("%w: %q", ErrExists, path)
		}

		return fmt.Errorf("creating key file: %w", err)
	}

	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("closing key file: %w", cerr)
		}
	}()

	raw := key.Bytes()
	defer secure.Zero(raw)

	if _, err := f.Write(raw); err != nil {
		return fmt.Errorf("writing key file: %w", err)
	}

	return nil
}

// Fingerprint returns a short hex identifier of key, safe to print.
func Fingerprint(key *kcrypt.BlockKey) string {
	const size = 8

	raw := key.Bytes()
	defer secure.Zero(raw)

	hash, _ := blake2b.New(size, nil) // only fails for invalid sizes or keys
	hash.Write(raw)

	return hex.EncodeToString(hash.Sum(nil))
}
