package kcrypt

import (
	"errors"
	"fmt"

	"github.com/idelchi/kcrypt/internal/secure"
)

const (
	// HalfSize is the size of one Feistel half and of the evolving key state K1.
	HalfSize = 32
	// PermKeySize is the size of the permutation key K2.
	PermKeySize = 64
	// KeySize is the serialized size of a BlockKey.
	KeySize = HalfSize + PermKeySize
)

// ErrKeySize is returned when key material does not have exactly KeySize bytes.
var ErrKeySize = errors.New("invalid key size")

// BlockKey is the working key of one stream.
type BlockKey struct {
	// K1 is the key state evolved by the key schedule.
	K1 [HalfSize]byte
	// K2 drives the node permutations; its first half is rewritten on every schedule step.
	K2 [PermKeySize]byte
}

// ParseBlockKey splits raw key material into K1 (first 32 bytes) and K2 (next 64 bytes).
func ParseBlockKey(raw []byte) (BlockKey, error) {
	var key BlockKey

	if len(raw) != KeySize {
		return key, fmt.Errorf("%w: got %d bytes, want %d", ErrKeySize, len(raw), KeySize)
	}

	copy(key.K1[:], raw[:HalfSize])
	copy(key.K2[:], raw[HalfSize:])

	return key, nil
}

// Bytes returns the serialized form K1 || K2.
func (k *BlockKey) Bytes() []byte {
	raw := make([]byte, 0, KeySize)
	raw = append(raw, k.K1[:]...)

	return append(raw, k.K2[:]...)
}

// Wipe zeroes the key material.
func (k *BlockKey) Wipe() {
	secure.Zero(k.K1[:])
	secure.Zero(k.K2[:])
}
