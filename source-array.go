package msgbuf

import "io"

// ArraySource is a Source over a byte region that is fully available in memory.
// The region is returned as a single chunk, exactly once. The chunk aliases the
// caller's array, no bytes are copied.
//
// Use one of the Reset methods to decode another input with the same ArraySource.
type ArraySource struct {
	buffer   Buffer
	consumed bool
	closed   bool
}

var _ Source = (*ArraySource)(nil)

// NewArraySource returns a source yielding all of b.
// Returns ErrInvalidArgument if b is nil.
func NewArraySource(b []byte) (*ArraySource, error) {
	var source ArraySource
	if err := source.Reset(b); err != nil {
		return nil, err
	}

	return &source, nil
}

// NewArraySourceRange returns a source yielding b[offset:offset+length].
// Returns ErrInvalidArgument if b is nil or the range does not fit into b.
func NewArraySourceRange(b []byte, offset, length int) (*ArraySource, error) {
	var source ArraySource
	if err := source.ResetRange(b, offset, length); err != nil {
		return nil, err
	}

	return &source, nil
}

// NewArraySourceBuffer returns a source yielding the given Buffer.
// Returns ErrInvalidArgument if buf is the absent Buffer.
func NewArraySourceBuffer(buf Buffer) (*ArraySource, error) {
	var source ArraySource
	if err := source.ResetBuffer(buf); err != nil {
		return nil, err
	}

	return &source, nil
}

func (s *ArraySource) Reset(b []byte) error {
	if b == nil {
		return invalidArgument("input array is nil")
	}

	return s.ResetBuffer(Wrap(b))
}

func (s *ArraySource) ResetRange(b []byte, offset, length int) error {
	if b == nil {
		return invalidArgument("input array is nil")
	}

	if !inBounds(offset, length, len(b)) {
		return invalidArgument("range [%d:+%d] exceeds input array of length %d", offset, length, len(b))
	}

	return s.ResetBuffer(Wrap(b).Slice(offset, length))
}

// ResetBuffer replaces the region of the source and makes it readable again,
// even if the source was closed before. On error the source is left unchanged.
func (s *ArraySource) ResetBuffer(buf Buffer) error {
	if buf.IsNil() {
		return invalidArgument("input buffer is nil")
	}

	s.buffer = buf
	s.consumed = false
	s.closed = false

	return nil
}

func (s *ArraySource) Next() (Buffer, error) {
	if s.closed {
		return Buffer{}, ErrClosed
	}

	if s.consumed {
		return Buffer{}, io.EOF
	}

	s.consumed = true

	if s.buffer.Len() == 0 {
		return Buffer{}, io.EOF
	}

	return s.buffer, nil
}

// Close drops the reference to the region. It always returns nil.
func (s *ArraySource) Close() error {
	s.buffer = Buffer{}
	s.consumed = false
	s.closed = true

	return nil
}
