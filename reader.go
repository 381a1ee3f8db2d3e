package msgbuf

import (
	"errors"
	"io"
)

// Reader exposes the chunks of a Source as a continuous stream of bytes.
// Bytes are copied out of the current chunk, a new chunk is pulled from the Source
// once the current one is drained. The Reader owns the Source, closing the Reader
// closes the Source.
type Reader struct {
	src Source

	// unread part of the current chunk
	chunk []byte

	// sticky error of the source, once it reported io.EOF or ErrClosed
	err error
}

var _ io.Reader = (*Reader)(nil)
var _ io.ByteReader = (*Reader)(nil)
var _ io.WriterTo = (*Reader)(nil)
var _ io.Closer = (*Reader)(nil)

func NewReader(src Source) *Reader {
	return &Reader{src: src}
}

// fill pulls the next chunk if the current one is drained.
func (r *Reader) fill() error {
	if len(r.chunk) > 0 {
		return nil
	}

	if r.err != nil {
		return r.err
	}

	chunk, err := r.src.Next()
	if err != nil {
		if errors.Is(err, io.EOF) || errors.Is(err, ErrClosed) {
			r.err = err
		}

		return err
	}

	r.chunk = chunk.Bytes()
	return nil
}

func (r *Reader) Read(p []byte) (int, error) {
	if len(p) == 0 {
		return 0, nil
	}

	if err := r.fill(); err != nil {
		return 0, err
	}

	n := copy(p, r.chunk)
	r.chunk = r.chunk[n:]

	return n, nil
}

func (r *Reader) ReadByte() (byte, error) {
	if err := r.fill(); err != nil {
		return 0, err
	}

	b := r.chunk[0]
	r.chunk = r.chunk[1:]

	return b, nil
}

// WriteTo writes all remaining bytes to w. Chunks are passed to w without an
// intermediate copy.
func (r *Reader) WriteTo(w io.Writer) (int64, error) {
	var written int64

	for {
		err := r.fill()
		switch {
		case errors.Is(err, io.EOF):
			return written, nil

		case err != nil:
			return written, err
		}

		n, err := w.Write(r.chunk)
		written += int64(n)
		r.chunk = r.chunk[n:]

		if err != nil {
			return written, err
		}

		if len(r.chunk) > 0 {
			return written, io.ErrShortWrite
		}
	}
}

// Close closes the underlying Source.
func (r *Reader) Close() error {
	r.chunk = nil
	r.err = ErrClosed

	return r.src.Close()
}
