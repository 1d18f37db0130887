package cipherio

import (
	"io"
	"os"
)

// File is a Stream over an open file. It counts the bytes it moves, so it also
// works for pipes and terminals that cannot seek.
type File struct {
	f   *os.File
	pos int64
}

// NewFile wraps f. The caller keeps ownership and closes f.
func NewFile(f *os.File) *File {
	return &File{f: f}
}

func (s *File) Read(p []byte) (int, error) {
	n, err := s.f.Read(p)
	s.pos += int64(n)

	return n, err //nolint:wrapcheck // io.Reader contract
}

func (s *File) Write(p []byte) (int, error) {
	n, err := s.f.Write(p)
	s.pos += int64(n)

	return n, err //nolint:wrapcheck // io.Writer contract
}

// Tell returns the number of bytes moved through the stream.
func (s *File) Tell() int64 {
	return s.pos
}

// IO is a Stream over a separate reader and writer, such as buffered views of
// files. A nil side fails with ErrNotSupported.
type IO struct {
	r   io.Reader
	w   io.Writer
	pos int64
}

// NewIO returns a stream reading from r and writing to w.
func NewIO(r io.Reader, w io.Writer) *IO {
	return &IO{r: r, w: w}
}

func (s *IO) Read(p []byte) (int, error) {
	if s.r == nil {
		return 0, ErrNotSupported
	}

	n, err := s.r.Read(p)
	s.pos += int64(n)

	return n, err //nolint:wrapcheck // io.Reader contract
}

func (s *IO) Write(p []byte) (int, error) {
	if s.w == nil {
		return 0, ErrNotSupported
	}

	n, err := s.w.Write(p)
	s.pos += int64(n)

	return n, err //nolint:wrapcheck // io.Writer contract
}

// Tell returns the number of bytes moved through the stream.
func (s *IO) Tell() int64 {
	return s.pos
}
