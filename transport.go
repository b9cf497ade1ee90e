package mcwire

import (
	"bufio"
	"bytes"
	"compress/zlib"
	"crypto/cipher"
	"errors"
	"fmt"
	"io"

	"github.com/gstoney/mcwire/packet"
)

var (
	ErrPacketTooBig        = errors.New("packet too big")
	ErrInvalidDataLength   = errors.New("invalid data length")
	ErrEncryptionEnabled   = errors.New("encryption already enabled")
	ErrCompressionDisabled = errors.New("negative compression threshold")
)

// TransportConfig bounds what a peer may make the transport buffer.
type TransportConfig struct {
	// MaxPacketLen caps the length prefix of a frame.
	MaxPacketLen int32 `toml:"max_packet_len"`
	// MaxDecompressedLen caps the declared inflated size of a compressed frame.
	MaxDecompressedLen int32 `toml:"max_decompressed_len"`
}

// DefaultTransportConfig uses the limits of the vanilla server: the largest
// three-byte VarInt for frames and 8 MiB for inflated payloads.
func DefaultTransportConfig() TransportConfig {
	return TransportConfig{
		MaxPacketLen:       1<<21 - 1,
		MaxDecompressedLen: 1 << 23,
	}
}

type byteReader interface {
	io.Reader
	io.ByteReader
}

type byteWriter interface {
	io.Writer
	io.ByteWriter
}

// cipherReader decrypts bytes as they leave the buffer, so ciphertext read
// ahead before encryption was enabled is still decrypted.
type cipherReader struct {
	src    byteReader
	stream cipher.Stream
}

func (c *cipherReader) Read(p []byte) (n int, err error) {
	n, err = c.src.Read(p)
	if c.stream != nil && n > 0 {
		c.stream.XORKeyStream(p[:n], p[:n])
	}
	return
}

func (c *cipherReader) ReadByte() (byte, error) {
	b, err := c.src.ReadByte()
	if err != nil || c.stream == nil {
		return b, err
	}

	buf := [1]byte{b}
	c.stream.XORKeyStream(buf[:], buf[:])
	return buf[0], nil
}

type cipherWriter struct {
	dst    byteWriter
	stream cipher.Stream
	buf    []byte
}

func (c *cipherWriter) Write(p []byte) (int, error) {
	if c.stream == nil {
		return c.dst.Write(p)
	}

	if cap(c.buf) < len(p) {
		c.buf = make([]byte, len(p))
	}
	out := c.buf[:len(p)]
	c.stream.XORKeyStream(out, p)
	return c.dst.Write(out)
}

func (c *cipherWriter) WriteByte(b byte) error {
	if c.stream != nil {
		buf := [1]byte{b}
		c.stream.XORKeyStream(buf[:], buf[:])
		b = buf[0]
	}
	return c.dst.WriteByte(b)
}

// Transport provides read and write access to a framed stream,
// with compression and encryption handled internally.
// Transport does not deserialize packets.
//
// Recv and Send may run on separate goroutines; neither is safe for
// concurrent use with itself.
type Transport struct {
	reader *cipherReader
	writer *cipherWriter
	flush  func() error

	frame   frame
	payload Payload
	zReader io.ReadCloser

	zBuffer bytes.Buffer
	zWriter *zlib.Writer

	// CompressionThreshold is the payload size from which Send compresses.
	// A negative value disables the compressed frame format.
	CompressionThreshold int
	encrypted            bool

	cfg TransportConfig
}

// NewTransport creates a Transport.
//
// For readers/writers that perform syscalls (e.g. net.Conn), buffering is
// required. Indicate buffered I/O by implementing io.ByteReader/io.ByteWriter.
// If these interfaces are not implemented, the reader/writer will be wrapped
// with bufio. A writer with a Flush method is flushed after every Send.
func NewTransport(r io.Reader, w io.Writer, cfg TransportConfig) *Transport {
	var br byteReader
	var bw byteWriter

	if b, ok := r.(byteReader); ok {
		br = b
	} else if r != nil {
		br = bufio.NewReader(r)
	}

	if b, ok := w.(byteWriter); ok {
		bw = b
	} else if w != nil {
		bw = bufio.NewWriter(w)
	}

	t := &Transport{
		reader:               &cipherReader{src: br},
		writer:               &cipherWriter{dst: bw},
		CompressionThreshold: -1,
		cfg:                  cfg,
	}
	t.frame.src = t.reader

	if f, ok := bw.(interface{ Flush() error }); ok {
		t.flush = f.Flush
	}
	return t
}

// Recv reads the next frame header and returns its payload. The previous
// payload must be exhausted or discarded first. The returned Payload is
// reused by the next call.
func (t *Transport) Recv() (*Payload, error) {
	frameLength, err := t.frame.begin()
	if err != nil {
		return nil, err
	}
	if frameLength > t.cfg.MaxPacketLen {
		return nil, fmt.Errorf("%w: frame of %d bytes", ErrPacketTooBig, frameLength)
	}

	p := &t.payload
	*p = Payload{f: &t.frame, body: &t.frame, buf: p.buf}

	if t.CompressionThreshold < 0 {
		p.left = t.frame.left
		return p, nil
	}

	dataLen, err := packet.ReadVarInt(&t.frame)
	switch {
	case err != nil:
	case dataLen < 0:
		err = ErrInvalidDataLength
	case dataLen == 0:
		// sent below the threshold, stored as is
		p.left = t.frame.left
		return p, nil
	case dataLen > t.cfg.MaxDecompressedLen:
		err = fmt.Errorf("%w: inflates to %d bytes", ErrPacketTooBig, dataLen)
	case t.zReader == nil:
		t.zReader, err = zlib.NewReader(&t.frame)
	default:
		err = t.zReader.(zlib.Resetter).Reset(&t.frame, nil)
	}
	if err != nil {
		// the frame length is trusted, so the next frame is still reachable
		t.frame.skip()
		return nil, err
	}

	p.body = t.zReader
	p.zr = t.zReader
	p.left = dataLen
	return p, nil
}

// Send frames b, compressing it when it reaches CompressionThreshold, and
// flushes the writer.
func (t *Transport) Send(b []byte) (err error) {
	length := len(b)

	switch {
	case t.CompressionThreshold >= 0 && length >= t.CompressionThreshold:
		t.zBuffer.Reset()
		if t.zWriter == nil {
			t.zWriter = zlib.NewWriter(&t.zBuffer)
		} else {
			t.zWriter.Reset(&t.zBuffer)
		}

		// the data length goes ahead of the zlib header, which is only
		// written on the first Write
		if err = packet.WriteVarInt(&t.zBuffer, int32(length)); err != nil {
			return
		}
		if _, err = t.zWriter.Write(b); err != nil {
			return
		}
		if err = t.zWriter.Close(); err != nil {
			return
		}

		if err = packet.WriteVarInt(t.writer, int32(t.zBuffer.Len())); err != nil {
			return
		}
		if _, err = t.zBuffer.WriteTo(t.writer); err != nil {
			return
		}

	case t.CompressionThreshold >= 0:
		// a zero data length marks an uncompressed payload
		if err = packet.WriteVarInt(t.writer, int32(length+1)); err != nil {
			return
		}
		if err = t.writer.WriteByte(0); err != nil {
			return
		}
		if _, err = t.writer.Write(b); err != nil {
			return
		}

	default:
		if err = packet.WriteVarInt(t.writer, int32(length)); err != nil {
			return
		}
		if _, err = t.writer.Write(b); err != nil {
			return
		}
	}

	if t.flush != nil {
		err = t.flush()
	}
	return
}

// SetCompression switches both directions to the compressed frame format.
// Payloads of at least threshold bytes are deflated on Send.
func (t *Transport) SetCompression(threshold int) error {
	if threshold < 0 {
		return ErrCompressionDisabled
	}
	t.CompressionThreshold = threshold
	return nil
}

// EnableEncryption installs AES/CFB8 on both directions, keyed by the
// shared secret. Bytes already sent stay in the clear; bytes not yet
// consumed by Recv are decrypted.
func (t *Transport) EnableEncryption(secret []byte) error {
	if t.encrypted {
		return ErrEncryptionEnabled
	}

	enc, dec, err := newCFB8Pair(secret)
	if err != nil {
		return fmt.Errorf("encryption: %w", err)
	}

	t.writer.stream = enc
	t.reader.stream = dec
	t.encrypted = true
	return nil
}

// Encrypted reports whether EnableEncryption has succeeded.
func (t *Transport) Encrypted() bool {
	return t.encrypted
}
