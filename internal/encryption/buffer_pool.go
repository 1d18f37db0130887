package encryption

import (
	"bufio"
	"io"
	"sync"
)

const defaultBufferSize = 32 * 1024 // 32KB default buffer size

// readerPool and writerPool hold bufio wrappers reused across files, so that
// blocks of 64 bytes do not each cost a system call.
//
//nolint:gochecknoglobals
var (
	readerPool = sync.Pool{
		New: func() any {
			return bufio.NewReaderSize(nil, defaultBufferSize)
		},
	}
	writerPool = sync.Pool{
		New: func() any {
			return bufio.NewWriterSize(nil, defaultBufferSize)
		},
	}
)

func acquireReader(r io.Reader) *bufio.Reader {
	br, _ := readerPool.Get().(*bufio.Reader) //nolint:errcheck // type is guaranteed by New

	br.Reset(r)

	return br
}

func releaseReader(br *bufio.Reader) {
	br.Reset(nil)
	readerPool.Put(br)
}

func acquireWriter(w io.Writer) *bufio.Writer {
	bw, _ := writerPool.Get().(*bufio.Writer) //nolint:errcheck // type is guaranteed by New

	bw.Reset(w)

	return bw
}

func releaseWriter(bw *bufio.Writer) {
	bw.Reset(nil)
	writerPool.Put(bw)
}
