package msgbuf

import (
	"github.com/stretchr/testify/require"
	"testing"
)

func TestBufferSliceSharesStorage(t *testing.T) {
	data := []byte("hello world")

	buf := Wrap(data).Slice(6, 5)
	require.Equal(t, buf.Bytes(), []byte("world"))
	require.Equal(t, buf.Len(), 5)

	data[6] = 'W'
	require.Equal(t, buf.Bytes(), []byte("World"))
}

func TestBufferSliceClipsCapacity(t *testing.T) {
	data := []byte("abcdef")

	buf := Wrap(data).Slice(0, 3)
	require.Equal(t, cap(buf.Bytes()), 3)

	// appending must reallocate and leave the parent untouched
	_ = append(buf.Bytes(), 'X')
	require.Equal(t, data, []byte("abcdef"))
}

func TestBufferSliceOutOfRange(t *testing.T) {
	buf := NewBuffer(4)

	require.Panics(t, func() { buf.Slice(2, 3) })
	require.Panics(t, func() { buf.Slice(-1, 1) })
	require.Panics(t, func() { buf.Slice(0, -1) })
	require.NotPanics(t, func() { buf.Slice(4, 0) })
}

func TestBufferNil(t *testing.T) {
	require.True(t, Buffer{}.IsNil())
	require.True(t, Wrap(nil).IsNil())
	require.False(t, Wrap([]byte{}).IsNil())
	require.False(t, NewBuffer(0).IsNil())

	require.Equal(t, Buffer{}.String(), "msgbuf.Buffer[nil]")
	require.Equal(t, NewBuffer(12).String(), "msgbuf.Buffer[len=12]")
}

func TestInBounds(t *testing.T) {
	type testCase struct {
		Offset, Length, Size int
		Expected             bool
	}

	cases := []testCase{
		{0, 0, 0, true},
		{0, 4, 4, true},
		{4, 0, 4, true},
		{1, 3, 4, true},
		{1, 4, 4, false},
		{5, 0, 4, false},
		{-1, 2, 4, false},
		{2, -1, 4, false},
		{maxInt, maxInt, 4, false},
		{2, maxInt, 4, false},
	}

	for _, tc := range cases {
		require.Equal(t, inBounds(tc.Offset, tc.Length, tc.Size), tc.Expected, "%+v", tc)
	}

	require.True(t, inBounds[uint8](10, 245, 255))
	require.False(t, inBounds[uint8](11, 245, 255))
}

const maxInt = int(^uint(0) >> 1)
