package gf_test

import (
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/idelchi/kcrypt/internal/gf"
)

func TestInterpolateThroughNodes(t *testing.T) {
	t.Parallel()

	f := gf.New(gf.DefaultPoly)
	rng := rand.New(rand.NewPCG(1, 2)) //nolint:gosec // deterministic test data

	for _, n := range []int{1, 2, 3, 7, 31, 32, 33, 63, 64} {
		xs := make([]byte, n)
		ys := make([]byte, n)

		for i, p := range rng.Perm(256)[:n] {
			xs[i] = byte(p)
			ys[i] = byte(rng.IntN(256))
		}

		coeffs := make([]byte, n)
		f.Interpolate(xs, ys, coeffs)

		for i := range n {
			require.Equal(t, ys[i], f.Evaluate(coeffs, xs[i]), "n=%d node=%d", n, i)
		}
	}
}

func TestInterpolateRecoversPolynomial(t *testing.T) {
	t.Parallel()

	f := gf.New(gf.DefaultPoly)
	want := []byte{7, 0, 3, 0xaa, 1}

	xs := []byte{0, 1, 2, 3, 4}
	ys := make([]byte, len(xs))

	for i, x := range xs {
		ys[i] = f.Evaluate(want, x)
	}

	got := make([]byte, len(want))
	f.Interpolate(xs, ys, got)

	assert.Equal(t, want, got)
}

func TestInterpolateClearsCoefficients(t *testing.T) {
	t.Parallel()

	f := gf.New(gf.DefaultPoly)
	xs := []byte{5, 9}
	ys := []byte{1, 1}

	coeffs := []byte{0xff, 0xff}
	f.Interpolate(xs, ys, coeffs)

	assert.Equal(t, []byte{1, 0}, coeffs)
}

func TestInterpolateLengthMismatch(t *testing.T) {
	t.Parallel()

	f := gf.New(gf.DefaultPoly)

	assert.Panics(t, func() { f.Interpolate([]byte{1, 2}, []byte{1}, make([]byte, 2)) })
	assert.Panics(t, func() { f.Interpolate(nil, nil, nil) })
}

func TestEvaluate(t *testing.T) {
	t.Parallel()

	f := gf.New(gf.DefaultPoly)

	assert.Zero(t, f.Evaluate(nil, 3))
	assert.Equal(t, byte(9), f.Evaluate([]byte{9}, 200))
	// 1 + x at x = 1 is 0 in characteristic 2.
	assert.Zero(t, f.Evaluate([]byte{1, 1}, 1))
}
