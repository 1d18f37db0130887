package encryption

import (
	"github.com/idelchi/kcrypt/internal/kcrypt"
)

// encodeCTR encrypts every chunk on its own, bumping the counter once per block.
// The loop ends with the first chunk shorter than a full payload, which is
// always written, so an empty or block-aligned input gains an empty final block.
func (c *Codec) encodeCTR(p *Params, iv uint32) error {
	var in, out [kcrypt.BlockSize]byte

	for {
		n, err := readChunk(p, &in)
		if err != nil {
			return err
		}

		c.cipher.EncryptBlock(&out, &in, iv, &p.Key)
		p.report()

		if err := writeOutput(p, out[:]); err != nil {
			return err
		}

		iv++

		if n < PayloadSize {
			return nil
		}
	}
}

func (c *Codec) decodeCTR(p *Params, iv uint32) error {
	var in, out [kcrypt.BlockSize]byte

	for {
		if err := readBlock(p, &in); err != nil {
			return err
		}

		c.cipher.DecryptBlock(&out, &in, iv, &p.Key)
		p.report()

		n, err := unpad(&out)
		if err != nil {
			return err
		}

		if err := writeOutput(p, out[:n]); err != nil {
			return err
		}

		iv++

		if n < PayloadSize {
			return nil
		}
	}
}
