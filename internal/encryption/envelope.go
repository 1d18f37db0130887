package encryption

import (
	"encoding/binary"
	"fmt"

	"github.com/idelchi/kcrypt/internal/cipherio"
	"github.com/idelchi/kcrypt/internal/kcrypt"
)

const (
	ivSize = 4
	// HeaderSize is the size of the stream header: mode magic and counter.
	HeaderSize = magicSize + ivSize
)

// EncodedSize returns the exact size of the stream produced for n bytes of input.
func EncodedSize(n int64) int64 {
	return HeaderSize + kcrypt.BlockSize*(n/PayloadSize+1)
}

func writeHeader(w cipherio.Stream, mode Mode, iv uint32) error {
	header := make([]byte, HeaderSize)
	copy(header, mode.Magic())
	binary.LittleEndian.PutUint32(header[magicSize:], iv)

	if err := cipherio.WriteFull(w, header); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}

	return nil
}

// readHeader reads and validates the magic, then the counter.
func readHeader(r cipherio.Stream) (Mode, uint32, error) {
	header := make([]byte, HeaderSize)

	n, err := cipherio.ReadFull(r, header[:magicSize])
	if err != nil {
		return 0, 0, fmt.Errorf("reading header: %w", err)
	}

	if n != magicSize {
		return 0, 0, fmt.Errorf("%w: header has %d of %d bytes", ErrTruncated, n, magicSize)
	}

	mode, ok := modeFromMagic(header[:magicSize])
	if !ok {
		return 0, 0, fmt.Errorf("%w: magic %q", ErrUnknownMode, header[:magicSize])
	}

	n, err = cipherio.ReadFull(r, header[magicSize:])
	if err != nil {
		return 0, 0, fmt.Errorf("reading header: %w", err)
	}

	if n != ivSize {
		return 0, 0, fmt.Errorf("%w: counter has %d of %d bytes", ErrTruncated, n, ivSize)
	}

	return mode, binary.LittleEndian.Uint32(header[magicSize:]), nil
}
