package encryption

import (
	"fmt"

	"github.com/idelchi/kcrypt/internal/kcrypt"
)

// PayloadSize is the number of plaintext bytes a block can carry.
const PayloadSize = kcrypt.BlockSize - 1

// pad fills the unused payload bytes of a block holding n bytes with the pad
// count 63-n and stores n in the final byte.
func pad(block *[kcrypt.BlockSize]byte, n int) {
	for i := n; i < PayloadSize; i++ {
		block[i] = byte(PayloadSize - n)
	}

	block[PayloadSize] = byte(n)
}

// unpad returns the payload length recorded in a decoded block.
func unpad(block *[kcrypt.BlockSize]byte) (int, error) {
	n := int(block[PayloadSize])
	if n > PayloadSize {
		return 0, fmt.Errorf("%w: %d", ErrCorrupt, n)
	}

	return n, nil
}
