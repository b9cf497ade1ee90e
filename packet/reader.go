package packet

import (
	"bufio"
	"io"
)

// Reader is the byte source fields are decoded from.
// Read returns exactly n bytes or fails with io.ErrUnexpectedEOF. The slice
// is only valid until the next call.
// ReadRemaining returns the rest of the current frame; a source without
// frame boundaries fails with ErrUnbounded.
type Reader interface {
	io.ByteReader
	Read(n int) ([]byte, error)
	ReadRemaining() ([]byte, error)
}

// FrameReader reads fields out of one in-memory frame.
// Slices returned by Read alias the frame buffer.
type FrameReader struct {
	buf []byte
	off int
}

func NewFrameReader(buf []byte) FrameReader {
	return FrameReader{
		buf: buf,
		off: 0,
	}
}

func (r FrameReader) Remaining() int {
	return len(r.buf) - r.off
}

func (r *FrameReader) ReadByte() (byte, error) {
	if r.off >= len(r.buf) {
		return 0, io.ErrUnexpectedEOF
	}
	b := r.buf[r.off]
	r.off++
	return b, nil
}

func (r *FrameReader) Read(n int) ([]byte, error) {
	if n < 0 || n > len(r.buf)-r.off {
		return nil, io.ErrUnexpectedEOF
	}
	b := r.buf[r.off : r.off+n]
	r.off += n
	return b, nil
}

func (r *FrameReader) ReadRemaining() ([]byte, error) {
	b := r.buf[r.off:]
	r.off = len(r.buf)
	return b, nil
}

// StreamReader adapts a blocking io.Reader to Reader. A failed read leaves
// the stream at an unknown offset; the source must be discarded.
// It has no notion of a frame, so packets ending in a RemainingBytes field
// cannot be decoded from it.
type StreamReader struct {
	r *bufio.Reader
}

func NewStreamReader(r io.Reader) *StreamReader {
	if br, ok := r.(*bufio.Reader); ok {
		return &StreamReader{br}
	}
	return &StreamReader{bufio.NewReader(r)}
}

func (s *StreamReader) ReadByte() (byte, error) {
	b, err := s.r.ReadByte()
	if err == io.EOF {
		err = io.ErrUnexpectedEOF
	}
	return b, err
}

// Read grows its buffer as bytes arrive, so a forged length cannot force a
// large allocation up front.
func (s *StreamReader) Read(n int) ([]byte, error) {
	if n < 0 {
		return nil, io.ErrUnexpectedEOF
	}
	b, err := io.ReadAll(io.LimitReader(s.r, int64(n)))
	if err != nil {
		return nil, err
	}
	if len(b) < n {
		return nil, io.ErrUnexpectedEOF
	}
	return b, nil
}

func (s *StreamReader) ReadRemaining() ([]byte, error) {
	return nil, ErrUnbounded
}
