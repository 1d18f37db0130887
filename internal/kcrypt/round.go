package kcrypt

const roundNodes = HalfSize + HalfSize

// round replaces half with the values at 255, 254, ..., 224 of the polynomial
// interpolated through the data bytes, the round key bytes and a k2-permuted
// ordering of the nodes.
func (c *Cipher) round(half *[HalfSize]byte, k1 *[HalfSize]byte, k2 *[PermKeySize]byte) {
	var xs, ys, coeffs [roundNodes]byte

	for i := range xs {
		xs[i] = byte(i)
	}

	// Both halves of the node values are offset by the position within their half.
	for i := range HalfSize {
		ys[i] = half[i] + byte(i)
		ys[i+HalfSize] = k1[i] + byte(i)
	}

	shuffle(k2[:], xs[:])
	c.field.Interpolate(xs[:], ys[:], coeffs[:])

	for i := range half {
		half[i] = c.field.Evaluate(coeffs[:], byte(255-i))
	}
}
