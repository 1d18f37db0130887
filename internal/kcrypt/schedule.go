package kcrypt

// Offsets of the three evaluation windows of the key schedule. Each window is
// disjoint from the interpolation nodes 0..31 and from the other windows.
const (
	roundKeyWindow = 64
	nextKeyWindow  = 128
	permKeyWindow  = 192
)

// Schedule derives one round key and the next key state from in, and rewrites
// the first half of k2 in place.
func (c *Cipher) Schedule(in *[HalfSize]byte, k2 *[PermKeySize]byte) (out, next [HalfSize]byte) {
	var xs, ys, coeffs [HalfSize]byte

	for i := range xs {
		xs[i] = byte(i)
		ys[i] = in[i] + byte(i)
	}

	c.field.Interpolate(xs[:], ys[:], coeffs[:])
	shuffle(k2[:HalfSize], xs[:])

	for i, x := range xs {
		out[i] = c.field.Evaluate(coeffs[:], roundKeyWindow+x)
		next[i] = c.field.Evaluate(coeffs[:], nextKeyWindow+x)
		k2[i] = c.field.Evaluate(coeffs[:], permKeyWindow+x)
	}

	return out, next
}
