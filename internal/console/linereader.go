package console

import (
	"errors"
	"fmt"
	"io"
)

// Terminator ends a command line. It is never stored.
const Terminator byte = '\r'

// DefaultCapacity is the number of bytes a line may hold.
const DefaultCapacity = 32

// ErrBufferFull is returned when a line outgrows the buffer. The whole line,
// up to and including its terminator, is discarded.
var ErrBufferFull = errors.New("buffer full")

// LineReader accumulates bytes from a blocking source into a bounded buffer.
type LineReader struct {
	src      io.ByteReader
	buf      []byte
	capacity int
}

// NewLineReader reads from src with room for capacity bytes per line.
func NewLineReader(src io.ByteReader, capacity int) *LineReader {
	if capacity <= 0 {
		capacity = DefaultCapacity
	}
	return &LineReader{
		src:      src,
		buf:      make([]byte, 0, capacity),
		capacity: capacity,
	}
}

// Reset empties the buffer.
func (lr *LineReader) Reset() {
	lr.buf = lr.buf[:0]
}

// ReadLine blocks until the terminator arrives and returns the bytes before
// it. An overlong line is consumed through its terminator and reported as
// ErrBufferFull. The returned slice aliases the internal buffer and is only
// valid until the next Reset or ReadLine.
func (lr *LineReader) ReadLine() ([]byte, error) {
	for {
		b, err := lr.src.ReadByte()
		if err != nil {
			return nil, fmt.Errorf("serial read: %w", err)
		}

		if b == Terminator {
			return lr.buf, nil
		}

		if len(lr.buf) == lr.capacity {
			lr.Reset()
			if err := lr.discardLine(); err != nil {
				return nil, err
			}
			return nil, ErrBufferFull
		}
		lr.buf = append(lr.buf, b)
	}
}

// discardLine consumes bytes through the next terminator.
func (lr *LineReader) discardLine() error {
	for {
		b, err := lr.src.ReadByte()
		if err != nil {
			return fmt.Errorf("serial read: %w", err)
		}
		if b == Terminator {
			return nil
		}
	}
}
