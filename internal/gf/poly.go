package gf

import "fmt"

// MaxNodes is the largest number of distinct interpolation nodes the field can hold.
const MaxNodes = 256

// Interpolate writes into coeffs the coefficients, lowest power first, of the unique
// polynomial of degree below n that passes through (xs[i], ys[i]) for every i.
//
// The xs must be pairwise distinct; duplicates make the system singular and the
// result meaningless. All three slices must have the same length n, 1 <= n <= MaxNodes.
func (f *Field) Interpolate(xs, ys, coeffs []byte) {
	n := len(xs)
	if n == 0 || n > MaxNodes || len(ys) != n || len(coeffs) != n {
		panic(fmt.Sprintf("gf: interpolate with %d nodes, %d values, %d coefficients", n, len(ys), len(coeffs)))
	}

	clear(coeffs)

	// master holds the monic polynomial whose roots are all of xs.
	var master [MaxNodes + 1]byte

	master[0] = 1

	for i, x := range xs {
		for j := i; j > 0; j-- {
			master[j] = master[j-1] ^ f.Mul(master[j], x)
		}

		master[0] = f.Mul(master[0], x)
		master[i+1] = 1
	}

	var basis [MaxNodes]byte

	for i, xi := range xs {
		denom := byte(1)

		for j, xj := range xs {
			if i != j {
				denom = f.Mul(denom, xi^xj)
			}
		}

		scale := f.Div(ys[i], denom)

		// basis = master / (X + xi), by synthetic division from the top.
		basis[n-1] = 1
		coeffs[n-1] ^= scale

		for j := n - 2; j >= 0; j-- {
			basis[j] = master[j+1] ^ f.Mul(xi, basis[j+1])
			coeffs[j] ^= f.Mul(scale, basis[j])
		}
	}
}

// Evaluate returns the value at x of the polynomial with the given coefficients,
// lowest power first, using Horner's method.
func (f *Field) Evaluate(coeffs []byte, x byte) byte {
	if len(coeffs) == 0 {
		return 0
	}

	result := coeffs[len(coeffs)-1]
	for i := len(coeffs) - 2; i >= 0; i-- {
		result = f.Mul(x, result) ^ coeffs[i]
	}

	return result
}
