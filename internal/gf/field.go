package gf

// DefaultPoly is the reduction polynomial x^8 + x^4 + x^3 + x^2 + 1 with the x^8 term dropped.
const DefaultPoly = 0x1d

const order = 255

// Field holds the log, exp and product tables of GF(2^8) for one generator polynomial.
type Field struct {
	log [256]byte
	// exp is doubled so that exp[log[a]+log[b]] never wraps.
	exp  [2 * order]byte
	prod [256][256]byte
}

// New builds the tables for the given generator polynomial.
func New(poly byte) *Field {
	f := &Field{}

	b := 1
	for l := range order {
		f.log[b] = byte(l)
		f.exp[l] = byte(b)
		f.exp[l+order] = byte(b)

		if b <<= 1; b >= 256 {
			b = (b - 256) ^ int(poly)
		}
	}

	for i := 1; i < 256; i++ {
		for j := 1; j < 256; j++ {
			f.prod[i][j] = f.exp[int(f.log[i])+int(f.log[j])]
		}
	}

	return f
}

// Add returns a + b, which in characteristic 2 is also a - b.
func Add(a, b byte) byte {
	return a ^ b
}

// Mul returns a * b.
func (f *Field) Mul(a, b byte) byte {
	return f.prod[a][b]
}

// Div returns a / b. Division of or by zero yields zero.
func (f *Field) Div(a, b byte) byte {
	if a == 0 || b == 0 {
		return 0
	}

	d := int(f.log[a]) - int(f.log[b])
	if d < 0 {
		d += order
	}

	return f.exp[d]
}

// Inv returns the multiplicative inverse of a, or zero for a == 0.
func (f *Field) Inv(a byte) byte {
	return f.Div(1, a)
}
