package cipherio

import (
	"errors"
	"io"
)

// ErrNotSupported is returned by a Func stream for an operation it has no callback for.
var ErrNotSupported = errors.New("operation not supported by stream")

// Func is a Stream whose operations are delegated to callbacks.
// A nil ReadFunc or WriteFunc makes the operation fail; a nil TellFunc reports 0.
type Func struct {
	ReadFunc  func(p []byte) (int, error)
	WriteFunc func(p []byte) (int, error)
	TellFunc  func() int64
}

func (s *Func) Read(p []byte) (int, error) {
	if s.ReadFunc == nil {
		return 0, ErrNotSupported
	}

	return s.ReadFunc(p)
}

func (s *Func) Write(p []byte) (int, error) {
	if s.WriteFunc == nil {
		return 0, ErrNotSupported
	}

	return s.WriteFunc(p)
}

// Tell returns the callback's position, or 0 without a callback.
func (s *Func) Tell() int64 {
	if s.TellFunc == nil {
		return 0
	}

	return s.TellFunc()
}

// NewZero returns a source of zero bytes that ends after limit bytes.
// A limit of zero or less never ends. Writes are discarded.
func NewZero(limit int64) *Func {
	var produced int64

	return &Func{
		ReadFunc: func(p []byte) (int, error) {
			n := len(p)

			if limit > 0 {
				remaining := limit - produced
				if remaining <= 0 {
					return 0, io.EOF
				}

				n = int(min(int64(n), remaining))
			}

			clear(p[:n])
			produced += int64(n)

			return n, nil
		},
		WriteFunc: func(p []byte) (int, error) {
			return len(p), nil
		},
		TellFunc: func() int64 {
			return produced
		},
	}
}
