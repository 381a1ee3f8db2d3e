package msgbuf

import "fmt"

// Buffer is a region of bytes handed out by a [Source]. It never copies: wrapping,
// slicing and [Buffer.Bytes] all share the same underlying storage.
//
// The zero Buffer is the absent region. It is distinct from a present region
// of length zero, see [Buffer.IsNil].
type Buffer struct {
	b []byte
}

// Wrap returns a Buffer backed by b. Passing a nil slice returns the absent Buffer.
func Wrap(b []byte) Buffer {
	return Buffer{b: b}
}

// NewBuffer allocates a Buffer of the given size.
func NewBuffer(size int) Buffer {
	return Buffer{b: make([]byte, size)}
}

// Slice returns the sub-region [offset, offset+length) of the buffer without copying.
// The capacity of the result is clipped to length, appending to the bytes of the
// returned buffer never writes into the parent region.
//
// Slice panics if the range is out of bounds, just like slicing a []byte does.
func (b Buffer) Slice(offset, length int) Buffer {
	if !inBounds(offset, length, len(b.b)) {
		panic(fmt.Sprintf("msgbuf: slice [%d:+%d] out of range for buffer of length %d", offset, length, len(b.b)))
	}

	return Buffer{b: b.b[offset : offset+length : offset+length]}
}

// Bytes returns the bytes of the region. The slice aliases the buffer.
func (b Buffer) Bytes() []byte {
	return b.b
}

func (b Buffer) Len() int {
	return len(b.b)
}

// IsNil reports whether the buffer is the absent region.
func (b Buffer) IsNil() bool {
	return b.b == nil
}

func (b Buffer) String() string {
	if b.b == nil {
		return "msgbuf.Buffer[nil]"
	}

	return fmt.Sprintf("msgbuf.Buffer[len=%d]", len(b.b))
}
