package msgbuf

import (
	"errors"
	"fmt"
	"golang.org/x/exp/constraints"
	"io"
	"iter"
)

var ErrInvalidArgument = errors.New("invalid argument")

// ErrClosed is returned by Next after the source was closed.
var ErrClosed = errors.New("source is closed")

// Source provides the input of a decoder as a sequence of chunks. A decoder pulls
// chunks by calling [Source.Next] until it returns [io.EOF].
//
// Implementations never return an empty chunk: a chunk of length zero is reported as
// [io.EOF] instead. Errors of the underlying medium are returned as is, without being
// wrapped, so that callers can inspect them directly. A Source does not retry. If a
// call to Next fails, the caller decides whether to call Next again.
//
// The bytes of a chunk must not be modified by the caller. Depending on the
// implementation, a chunk may only be valid until the next call to Next or Close:
// [ChannelSource] reuses its buffer, while the single chunk of an [ArraySource]
// stays valid for as long as the caller keeps the underlying array alive.
//
// A Source is not safe for concurrent use. Next may block, e.g. while waiting for
// a network peer. There is no builtin timeout, use a reader that supports deadlines
// if bounded latency is required.
type Source interface {
	// Next returns the next chunk of bytes. It returns io.EOF once the input is
	// exhausted and ErrClosed if the source was closed.
	Next() (Buffer, error)

	// Close releases the resources held by the source. Calling Close more than once
	// is a no-op.
	Close() error
}

// Chunks returns an iterator over the remaining chunks of src. Iteration stops at the
// end of the input. Any other error is yielded once with a nil chunk, after which
// the iteration ends.
func Chunks(src Source) iter.Seq2[[]byte, error] {
	return func(yield func([]byte, error) bool) {
		for {
			chunk, err := src.Next()
			switch {
			case errors.Is(err, io.EOF):
				return

			case err != nil:
				yield(nil, err)
				return
			}

			if !yield(chunk.Bytes(), nil) {
				return
			}
		}
	}
}

// ReadAll reads all remaining chunks of src into a newly allocated slice.
func ReadAll(src Source) ([]byte, error) {
	var result []byte

	for chunk, err := range Chunks(src) {
		if err != nil {
			return result, err
		}

		result = append(result, chunk...)
	}

	return result, nil
}

// inBounds reports whether [offset, offset+length) lies within [0, size).
// The check does not overflow for any offset and length.
func inBounds[I constraints.Integer](offset, length, size I) bool {
	return offset >= 0 && length >= 0 && length <= size && offset <= size-length
}

func invalidArgument(format string, args ...any) error {
	return fmt.Errorf("%s: %w", fmt.Sprintf(format, args...), ErrInvalidArgument)
}
