package kcrypt

import "github.com/idelchi/kcrypt/internal/gf"

const (
	// BlockSize is the cipher block size in bytes.
	BlockSize = 2 * HalfSize
	// Rounds is the number of Feistel rounds.
	Rounds = 3
)

// Cipher is the KC3 block transform. It holds no key state and is safe for
// concurrent use; all mutable state lives in the BlockKey passed to each call.
type Cipher struct {
	field *gf.Field
}

// New returns a Cipher computing over the given field.
func New(field *gf.Field) *Cipher {
	return &Cipher{field: field}
}

// roundKeys mixes the block counter into K1 and runs the key schedule once per
// round, leaving K1 and K2 evolved for the next block.
func (c *Cipher) roundKeys(iv uint32, key *BlockKey) [Rounds][HalfSize]byte {
	for i := range 4 {
		key.K1[i] += byte(iv >> (8 * i))
	}

	var keys [Rounds][HalfSize]byte

	for r := range keys {
		keys[r], key.K1 = c.Schedule(&key.K1, &key.K2)
	}

	return keys
}

// EncryptBlock encrypts src into dst under the block counter iv, advancing key.
// dst and src may overlap entirely.
func (c *Cipher) EncryptBlock(dst, src *[BlockSize]byte, iv uint32, key *BlockKey) {
	keys := c.roundKeys(iv, key)

	var left, right [HalfSize]byte

	copy(left[:], src[:HalfSize])
	copy(right[:], src[HalfSize:])

	for r := range Rounds {
		prev := right

		c.round(&right, &keys[r], &key.K2)
		xorHalf(&right, &left)

		left = prev
	}

	copy(dst[:HalfSize], left[:])
	copy(dst[HalfSize:], right[:])
}

// DecryptBlock inverts EncryptBlock, given the same iv and the same starting key state.
func (c *Cipher) DecryptBlock(dst, src *[BlockSize]byte, iv uint32, key *BlockKey) {
	keys := c.roundKeys(iv, key)

	var left, right [HalfSize]byte

	copy(left[:], src[:HalfSize])
	copy(right[:], src[HalfSize:])

	for r := Rounds - 1; r >= 0; r-- {
		prev := left

		c.round(&left, &keys[r], &key.K2)
		xorHalf(&left, &right)

		right = prev
	}

	copy(dst[:HalfSize], left[:])
	copy(dst[HalfSize:], right[:])
}

func xorHalf(dst, src *[HalfSize]byte) {
	for i := range dst {
		dst[i] ^= src[i]
	}
}
