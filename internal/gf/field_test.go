package gf_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/idelchi/kcrypt/internal/gf"
)

func TestInverse(t *testing.T) {
	t.Parallel()

	f := gf.New(gf.DefaultPoly)

	for a := 1; a < 256; a++ {
		inv := f.Div(1, byte(a))
		require.NotZero(t, inv, "a=%d", a)
		assert.Equal(t, byte(1), f.Mul(byte(a), inv), "a=%d", a)
		assert.Equal(t, inv, f.Inv(byte(a)))
	}
}

func TestMulByZero(t *testing.T) {
	t.Parallel()

	f := gf.New(gf.DefaultPoly)

	for a := range 256 {
		assert.Zero(t, f.Mul(byte(a), 0))
		assert.Zero(t, f.Mul(0, byte(a)))
		assert.Zero(t, f.Div(byte(a), 0))
		assert.Zero(t, f.Div(0, byte(a)))
	}
}

func TestFieldLaws(t *testing.T) {
	t.Parallel()

	f := gf.New(gf.DefaultPoly)

	for a := range 256 {
		for b := range 256 {
			x, y := byte(a), byte(b)
			require.Equal(t, f.Mul(x, y), f.Mul(y, x), "commutativity a=%d b=%d", a, b)

			for _, c := range []byte{0, 1, 2, 0x1d, 0x80, 0xff} {
				require.Equal(t, f.Mul(x, gf.Add(y, c)), gf.Add(f.Mul(x, y), f.Mul(x, c)),
					"distributivity a=%d b=%d c=%d", a, b, c)
			}
		}
	}
}

func TestMulMatchesCarryless(t *testing.T) {
	t.Parallel()

	f := gf.New(gf.DefaultPoly)

	slow := func(a, b byte) byte {
		var p byte

		for b != 0 {
			if b&1 != 0 {
				p ^= a
			}

			carry := a&0x80 != 0
			a <<= 1

			if carry {
				a ^= gf.DefaultPoly
			}

			b >>= 1
		}

		return p
	}

	for a := range 256 {
		for b := range 256 {
			require.Equal(t, slow(byte(a), byte(b)), f.Mul(byte(a), byte(b)), "a=%d b=%d", a, b)
		}
	}
}

func TestInverseIsPermutation(t *testing.T) {
	t.Parallel()

	f := gf.New(gf.DefaultPoly)
	seen := make(map[byte]bool)

	for a := 1; a < 256; a++ {
		seen[f.Inv(byte(a))] = true
	}

	assert.Len(t, seen, 255)
	assert.False(t, seen[0])
	assert.Equal(t, byte(0), f.Inv(0))
}
