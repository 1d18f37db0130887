package keyfile_test

import (
	"bytes"
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/idelchi/kcrypt/internal/kcrypt"
	"github.com/idelchi/kcrypt/internal/keyfile"
	"github.com/idelchi/kcrypt/internal/secrand"
)

func sequential() secrand.Source {
	raw := make([]byte, kcrypt.KeySize)
	for i := range raw {
		raw[i] = byte(i)
	}

	return secrand.Reader{R: bytes.NewReader(raw)}
}

func TestSaveLoad(t *testing.T) {
	t.Parallel()

	key, err := keyfile.Generate(sequential())
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "key.bin")
	require.NoError(t, keyfile.Save(path, &key, false))

	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Len(t, raw, kcrypt.KeySize)
	assert.Equal(t, byte(0), raw[0])
	assert.Equal(t, byte(95), raw[95])

	if runtime.GOOS != "windows" {
		info, err := os.Stat(path)
		require.NoError(t, err)
		assert.Equal(t, os.FileMode(0o600), info.Mode().Perm())
	}

	loaded, err := keyfile.Load(path)
	require.NoError(t, err)
	assert.Equal(t, key, loaded)
}

func TestSaveRefusesOverwrite(t *testing.T) {
	t.Parallel()

	key, err := keyfile.Generate(sequential())
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "key.bin")
	require.NoError(t, os.WriteFile(path, []byte("keep"), 0o600))

	require.ErrorIs(t, keyfile.Save(path, &key, false), keyfile.ErrExists)

	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "keep", string(raw))

	require.NoError(t, keyfile.Save(path, &key, true))

	loaded, err := keyfile.Load(path)
	require.NoError(t, err)
	assert.Equal(t, key, loaded)
}

func TestLoadWrongSize(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()

	for _, size := range []int{0, 1, kcrypt.KeySize - 1, kcrypt.KeySize + 1, 1024} {
		path := filepath.Join(dir, "key")
		require.NoError(t, os.WriteFile(path, make([]byte, size), 0o600))

		_, err := keyfile.Load(path)
		require.ErrorIs(t, err, kcrypt.ErrKeySize, "size %d", size)
	}
}

func TestLoadMissing(t *testing.T) {
	t.Parallel()

	_, err := keyfile.Load(filepath.Join(t.TempDir(), "missing"))
	require.ErrorIs(t, err, os.ErrNotExist)
}

func TestGenerateFailure(t *testing.T) {
	t.Parallel()

	_, err := keyfile.Generate(secrand.Reader{R: bytes.NewReader(nil)})
	require.ErrorIs(t, err, secrand.ErrUnavailable)
}

func TestFingerprint(t *testing.T) {
	t.Parallel()

	a, err := keyfile.Generate(sequential())
	require.NoError(t, err)

	b := a
	b.K2[63] ^= 1

	assert.Len(t, keyfile.Fingerprint(&a), 16)
	assert.Equal(t, keyfile.Fingerprint(&a), keyfile.Fingerprint(&a))
	assert.NotEqual(t, keyfile.Fingerprint(&a), keyfile.Fingerprint(&b))
}
