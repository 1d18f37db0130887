// Package secrand supplies the secure random bytes used for keys and stream IVs.
package secrand

import (
	"encoding/binary"
	"errors"
	"fmt"
	"io"

	"github.com/tink-crypto/tink-go/v2/subtle/random"
)

// ErrUnavailable is returned when the platform random source cannot be read.
var ErrUnavailable = errors.New("secure random source unavailable")

// Source fills buffers with random bytes.
type Source interface {
	Fill(buf []byte) error
}

// Tink reads from the operating system generator through tink's subtle/random package.
type Tink struct{}

// Fill fills buf. tink panics when the system generator fails; the panic is
// turned into ErrUnavailable.
func (Tink) Fill(buf []byte) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("%w: %v", ErrUnavailable, r)
		}
	}()

	copy(buf, random.GetRandomBytes(uint32(len(buf)))) //nolint:gosec // buffers are a few bytes long

	return nil
}

// Reader adapts any io.Reader, such as a seeded generator in tests.
type Reader struct {
	R io.Reader
}

// Fill reads exactly len(buf) bytes from the underlying reader.
func (r Reader) Fill(buf []byte) error {
	if _, err := io.ReadFull(r.R, buf); err != nil {
		return fmt.Errorf("%w: %w", ErrUnavailable, err)
	}

	return nil
}

// Uint32 draws a random 32-bit value, decoding the bytes little-endian.
func Uint32(src Source) (uint32, error) {
	var buf [4]byte

	if err := src.Fill(buf[:]); err != nil {
		return 0, err
	}

	return binary.LittleEndian.Uint32(buf[:]), nil
}
