package msgbuf

import (
	"errors"
	"go.uber.org/zap"
	"io"
)

// DefaultChunkSize is the chunk size of a ChannelSource unless configured otherwise.
const DefaultChunkSize = 8192

// same limit as bufio.Reader
const maxConsecutiveEmptyReads = 100

var errInvalidRead = errors.New("msgbuf: reader returned invalid count")

// ChannelOption configures a ChannelSource.
type ChannelOption func(*ChannelSource)

// WithChunkSize sets the maximum number of bytes per chunk. Must be greater than zero.
func WithChunkSize(size int) ChannelOption {
	return func(s *ChannelSource) {
		s.chunkSize = size
	}
}

// WithLogger sets the logger used to trace the lifecycle of the source at debug level.
func WithLogger(logger *zap.Logger) ChannelOption {
	return func(s *ChannelSource) {
		s.logger = logger
	}
}

// ChannelSource is a Source reading from a stream, e.g. a file or a network connection.
// Each chunk is filled completely before it is returned, reading from the stream as
// often as needed. Only the last chunk before the end of the stream may be shorter.
//
// A ChannelSource reuses a single buffer for all chunks. A chunk is only valid until
// the next call to Next, Reset or Close.
//
// The source owns the stream and closes it in Close and Reset.
type ChannelSource struct {
	reader    io.ReadCloser
	chunkSize int
	logger    *zap.Logger

	// chunk buffer, allocated on first use
	arena Buffer

	// bytes in arena that were read but not yet returned
	filled int

	reachedEnd bool
	closed     bool

	// bytes returned since the last reset
	total int64
}

var _ Source = (*ChannelSource)(nil)

// NewChannelSource returns a source reading chunks from r.
// Returns ErrInvalidArgument if r is nil or an option is invalid.
func NewChannelSource(r io.ReadCloser, opts ...ChannelOption) (*ChannelSource, error) {
	if r == nil {
		return nil, invalidArgument("input reader is nil")
	}

	source := &ChannelSource{
		reader:    r,
		chunkSize: DefaultChunkSize,
		logger:    zap.NewNop(),
	}

	for _, opt := range opts {
		opt(source)
	}

	if source.chunkSize <= 0 {
		return nil, invalidArgument("chunk size must be > 0: %d", source.chunkSize)
	}

	if source.logger == nil {
		return nil, invalidArgument("logger is nil")
	}

	return source, nil
}

// ChunkSize returns the configured chunk size.
func (s *ChannelSource) ChunkSize() int {
	return s.chunkSize
}

// Next fills the next chunk from the stream. It blocks until the chunk is full or
// the stream has ended.
//
// If reading fails, the error is returned and the bytes read so far are kept. They
// are returned as part of the chunk produced by the next successful call to Next.
func (s *ChannelSource) Next() (Buffer, error) {
	if s.closed {
		return Buffer{}, ErrClosed
	}

	if s.reachedEnd {
		return Buffer{}, io.EOF
	}

	if s.arena.IsNil() {
		s.arena = NewBuffer(s.chunkSize)
	}

	buf := s.arena.Bytes()

	var emptyReads int
	for !s.reachedEnd && s.filled < len(buf) {
		n, err := s.reader.Read(buf[s.filled:])
		if n < 0 || n > len(buf)-s.filled {
			return Buffer{}, errInvalidRead
		}

		s.filled += n

		switch {
		case err == io.EOF:
			s.reachedEnd = true

		case err != nil:
			return Buffer{}, err

		case n == 0:
			emptyReads++
			if emptyReads >= maxConsecutiveEmptyReads {
				return Buffer{}, io.ErrNoProgress
			}

		default:
			emptyReads = 0
		}
	}

	filled := s.filled
	s.filled = 0
	s.total += int64(filled)

	if s.reachedEnd {
		s.logger.Debug("end of stream reached", zap.Int64("bytes", s.total))
	}

	if filled == 0 {
		return Buffer{}, io.EOF
	}

	return s.arena.Slice(0, filled), nil
}

// Reset closes the current stream and continues with r. If closing the current stream
// fails, the error is returned and r is not installed. The caller stays responsible
// for closing r in that case.
//
// Reset also reopens a closed source, the stream closed before is not closed again.
func (s *ChannelSource) Reset(r io.ReadCloser) error {
	if r == nil {
		return invalidArgument("input reader is nil")
	}

	if !s.closed {
		if err := s.reader.Close(); err != nil {
			return err
		}
	}

	s.logger.Debug("source reset", zap.Int64("bytes", s.total), zap.Bool("reopened", s.closed))

	s.reader = r
	s.filled = 0
	s.reachedEnd = false
	s.closed = false
	s.total = 0

	return nil
}

// Close closes the stream and releases the chunk buffer. Any chunk previously
// returned must not be used anymore.
func (s *ChannelSource) Close() error {
	if s.closed {
		return nil
	}

	s.closed = true
	s.filled = 0
	s.arena = Buffer{}

	err := s.reader.Close()
	s.logger.Debug("source closed", zap.Int64("bytes", s.total), zap.Error(err))

	return err
}
