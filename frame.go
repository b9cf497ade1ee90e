package mcwire

import (
	"errors"
	"fmt"
	"io"

	"github.com/gstoney/mcwire/packet"
)

var (
	ErrNotExhausted        = errors.New("not exhausted")
	ErrInvalidFrameLength  = errors.New("invalid frame length")
	ErrZlibPayloadOverrun  = errors.New("zlib stream exceeds declared payload length")
	ErrZlibPayloadUnderrun = errors.New("zlib stream shorter than declared payload length")
	ErrZlibTrailingData    = errors.New("trailing data in frame after zlib stream ends")
)

// frame limits reads from the connection to the body of the current frame.
type frame struct {
	src  byteReader
	left int32
}

// begin consumes the length prefix of the next frame. A stream that ends
// cleanly between frames yields io.EOF.
func (f *frame) begin() (int32, error) {
	if f.left > 0 {
		return f.left, ErrNotExhausted
	}

	n, err := packet.ReadVarInt(f.src)
	if err != nil {
		return 0, err
	}
	if n <= 0 {
		return 0, ErrInvalidFrameLength
	}
	f.left = n
	return n, nil
}

func (f *frame) Read(p []byte) (int, error) {
	if f.left <= 0 {
		return 0, io.EOF
	}
	if int32(len(p)) > f.left {
		p = p[:f.left]
	}

	n, err := f.src.Read(p)
	f.left -= int32(n)
	if err == io.EOF && f.left > 0 {
		err = io.ErrUnexpectedEOF
	}
	return n, err
}

func (f *frame) ReadByte() (byte, error) {
	if f.left <= 0 {
		return 0, io.EOF
	}

	b, err := f.src.ReadByte()
	switch err {
	case nil:
		f.left--
	case io.EOF:
		err = io.ErrUnexpectedEOF
	}
	return b, err
}

// skip drops the rest of the frame.
func (f *frame) skip() error {
	_, err := io.CopyN(io.Discard, f, int64(f.left))
	return err
}

// Payload is the body of one received packet, after the frame header and,
// for compressed frames, the data length. It implements packet.Reader, so
// fields decode straight off the connection.
//
// Close checks that the payload was consumed exactly; it does not realign
// on error. Discard drops whatever is left and leaves the transport at the
// next frame boundary.
type Payload struct {
	f    *frame
	body io.Reader // f, or the inflater reading from it
	zr   io.ReadCloser
	left int32
	buf  []byte
}

// Remaining reports the payload bytes not read yet. For a compressed frame
// these are inflated bytes.
func (p *Payload) Remaining() int32 {
	return p.left
}

func (p *Payload) Compressed() bool {
	return p.zr != nil
}

func (p *Payload) ReadByte() (byte, error) {
	if p.left <= 0 {
		return 0, io.ErrUnexpectedEOF
	}
	if p.zr != nil {
		b, err := p.Read(1)
		if err != nil {
			return 0, err
		}
		return b[0], nil
	}

	b, err := p.f.ReadByte()
	if err != nil {
		return 0, err
	}
	p.left--
	return b, nil
}

// Read returns the next n bytes. The slice is reused by the following call.
func (p *Payload) Read(n int) ([]byte, error) {
	if n < 0 || int64(n) > int64(p.left) {
		return nil, io.ErrUnexpectedEOF
	}
	if cap(p.buf) < n {
		p.buf = make([]byte, n)
	}
	b := p.buf[:n]

	got, err := io.ReadFull(p.body, b)
	p.left -= int32(got)
	if err != nil {
		if p.zr != nil && (err == io.EOF || err == io.ErrUnexpectedEOF) {
			err = ErrZlibPayloadUnderrun
		}
		return nil, err
	}
	return b, nil
}

func (p *Payload) ReadRemaining() ([]byte, error) {
	return p.Read(int(p.left))
}

func (p *Payload) Close() error {
	if p.left > 0 {
		return fmt.Errorf("%w: %d bytes left", ErrNotExhausted, p.left)
	}
	if p.zr == nil {
		return nil
	}

	var one [1]byte
	n, err := p.zr.Read(one[:])
	if n > 0 || err == nil {
		return ErrZlibPayloadOverrun
	}
	if err != io.EOF {
		return err
	}
	if p.f.left > 0 {
		return ErrZlibTrailingData
	}
	return p.zr.Close()
}

func (p *Payload) Discard() error {
	p.left = 0
	return p.f.skip()
}
