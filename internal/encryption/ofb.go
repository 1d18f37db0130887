package encryption

import (
	"github.com/idelchi/kcrypt/internal/kcrypt"
)

// encodeOFB chains blocks by folding the previous ciphertext block into the
// next plaintext block before encryption. The first block is folded with zeros.
func (c *Codec) encodeOFB(p *Params, iv uint32) error {
	var in, out, prev [kcrypt.BlockSize]byte

	for {
		n, err := readChunk(p, &in)
		if err != nil {
			return err
		}

		xorBlock(&in, &prev)
		c.cipher.EncryptBlock(&out, &in, iv, &p.Key)
		p.report()

		if err := writeOutput(p, out[:]); err != nil {
			return err
		}

		iv++
		prev = out

		if n < PayloadSize {
			return nil
		}
	}
}

// decodeOFB undoes encodeOFB: each decrypted block is folded with the previous
// raw ciphertext block. Decoding continues while blocks are full.
func (c *Codec) decodeOFB(p *Params, iv uint32) error {
	var in, out, prev [kcrypt.BlockSize]byte

	for {
		if err := readBlock(p, &in); err != nil {
			return err
		}

		c.cipher.DecryptBlock(&out, &in, iv, &p.Key)
		p.report()
		xorBlock(&out, &prev)

		n, err := unpad(&out)
		if err != nil {
			return err
		}

		if err := writeOutput(p, out[:n]); err != nil {
			return err
		}

		iv++
		prev = in

		if n < PayloadSize {
			return nil
		}
	}
}
