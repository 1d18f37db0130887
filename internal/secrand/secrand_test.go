package secrand_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/idelchi/kcrypt/internal/secrand"
)

func TestTinkFill(t *testing.T) {
	t.Parallel()

	a := make([]byte, 32)
	b := make([]byte, 32)

	require.NoError(t, secrand.Tink{}.Fill(a))
	require.NoError(t, secrand.Tink{}.Fill(b))

	assert.NotEqual(t, a, b)
	assert.NotEqual(t, make([]byte, 32), a)
}

func TestReaderFill(t *testing.T) {
	t.Parallel()

	src := secrand.Reader{R: bytes.NewReader([]byte{0x44, 0x33, 0x22, 0x11, 0x01})}

	v, err := secrand.Uint32(src)
	require.NoError(t, err)
	assert.Equal(t, uint32(0x11223344), v)

	_, err = secrand.Uint32(src)
	require.ErrorIs(t, err, secrand.ErrUnavailable)
}
