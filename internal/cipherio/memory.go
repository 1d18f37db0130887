package cipherio

import (
	"fmt"
	"io"
)

// Memory is a Stream over a fixed buffer. Reads consume the buffer from the
// start; writes fill it from the start. The buffer never grows: writing past its
// end is a programming error and panics.
type Memory struct {
	buf []byte
	off int
}

// NewMemory returns a stream over buf.
func NewMemory(buf []byte) *Memory {
	return &Memory{buf: buf}
}

func (m *Memory) Read(p []byte) (int, error) {
	if m.off >= len(m.buf) {
		if len(p) == 0 {
			return 0, nil
		}

		return 0, io.EOF
	}

	n := copy(p, m.buf[m.off:])
	m.off += n

	return n, nil
}

func (m *Memory) Write(p []byte) (int, error) {
	if len(p) > len(m.buf)-m.off {
		panic(fmt.Sprintf("cipherio: write of %d bytes overruns memory stream (%d of %d used)",
			len(p), m.off, len(m.buf)))
	}

	n := copy(m.buf[m.off:], p)
	m.off += n

	return n, nil
}

// Tell returns the number of bytes consumed or produced.
func (m *Memory) Tell() int64 {
	return int64(m.off)
}

// Bytes returns the part of the buffer consumed or produced so far.
func (m *Memory) Bytes() []byte {
	return m.buf[:m.off]
}
