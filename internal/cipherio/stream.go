package cipherio

import (
	"errors"
	"io"
)

// Stream is a byte source and sink that can report its position.
type Stream interface {
	io.Reader
	io.Writer
	// Tell returns the number of bytes read or written so far.
	Tell() int64
}

// ReadFull reads into buf until it is full or the stream ends.
// A short count is returned without error when the stream ends early;
// any other failure is returned as is.
func ReadFull(s Stream, buf []byte) (int, error) {
	n, err := io.ReadFull(s, buf)
	if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
		return n, nil
	}

	return n, err
}

// WriteFull writes all of buf, turning a short write without error into io.ErrShortWrite.
func WriteFull(s Stream, buf []byte) error {
	n, err := s.Write(buf)
	if err != nil {
		return err
	}

	if n != len(buf) {
		return io.ErrShortWrite
	}

	return nil
}
