package encryption

import (
	"fmt"

	"github.com/idelchi/kcrypt/internal/cipherio"
	"github.com/idelchi/kcrypt/internal/kcrypt"
	"github.com/idelchi/kcrypt/internal/secrand"
)

// ProgressFunc receives the number of input bytes consumed so far and the
// expected input size, or 0 when the size is unknown.
type ProgressFunc func(processed, total int64)

// Params describes one encode or decode run.
type Params struct {
	// Key is the working key. It is advanced block by block and must not be
	// shared with another run.
	Key kcrypt.BlockKey

	Input  cipherio.Stream
	Output cipherio.Stream

	// Total is the input size passed to Progress; 0 if unknown.
	Total int64
	// Progress, if set, is called after every block.
	Progress ProgressFunc
}

func (p *Params) report() {
	if p.Progress != nil {
		p.Progress(p.Input.Tell(), p.Total)
	}
}

// Codec encodes and decodes KC3 streams.
type Codec struct {
	cipher *kcrypt.Cipher
	random secrand.Source
}

// NewCodec returns a Codec using c for the block transform and random for stream counters.
func NewCodec(c *kcrypt.Cipher, random secrand.Source) *Codec {
	return &Codec{cipher: c, random: random}
}

// Encode writes a header with a fresh random counter followed by the encrypted input.
func (c *Codec) Encode(mode Mode, p *Params) error {
	if _, ok := magics[mode]; !ok {
		return fmt.Errorf("%w: %v", ErrInvalidMode, mode)
	}

	iv, err := secrand.Uint32(c.random)
	if err != nil {
		return fmt.Errorf("generating counter: %w", err)
	}

	if err := writeHeader(p.Output, mode, iv); err != nil {
		return err
	}

	if mode == ModeOFB {
		return c.encodeOFB(p, iv)
	}

	return c.encodeCTR(p, iv)
}

// Decode reads the header, selects the mode it names and writes the decrypted payload.
// It returns the detected mode.
func (c *Codec) Decode(p *Params) (Mode, error) {
	mode, iv, err := readHeader(p.Input)
	if err != nil {
		return 0, err
	}

	if mode == ModeOFB {
		return mode, c.decodeOFB(p, iv)
	}

	return mode, c.decodeCTR(p, iv)
}

// readChunk reads up to one payload worth of plaintext into block and pads it.
func readChunk(p *Params, block *[kcrypt.BlockSize]byte) (int, error) {
	n, err := cipherio.ReadFull(p.Input, block[:PayloadSize])
	if err != nil {
		return 0, fmt.Errorf("reading input: %w", err)
	}

	pad(block, n)

	return n, nil
}

// readBlock reads one full ciphertext block.
func readBlock(p *Params, block *[kcrypt.BlockSize]byte) error {
	n, err := cipherio.ReadFull(p.Input, block[:])
	if err != nil {
		return fmt.Errorf("reading input: %w", err)
	}

	if n != kcrypt.BlockSize {
		return fmt.Errorf("%w: block has %d of %d bytes", ErrTruncated, n, kcrypt.BlockSize)
	}

	return nil
}

func writeOutput(p *Params, data []byte) error {
	if err := cipherio.WriteFull(p.Output, data); err != nil {
		return fmt.Errorf("writing output: %w", err)
	}

	return nil
}

func xorBlock(dst, src *[kcrypt.BlockSize]byte) {
	for i := range dst {
		dst[i] ^= src[i]
	}
}
