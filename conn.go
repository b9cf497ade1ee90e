package mcwire

import (
	"bytes"
	"errors"
	"fmt"
	"io"

	"github.com/gstoney/mcwire/packet"
)

var ErrWrongPhase = errors.New("packet does not belong to the connection phase")

// Conn reads and writes packets over a Transport for one side of a
// connection. It tracks the phase used to resolve packet ids; phase changes
// are left to the caller.
//
// One goroutine may read while another writes. Conn does no other locking.
type Conn struct {
	t       *Transport
	closer  io.Closer
	phase   packet.Phase
	inbound packet.Direction

	out bytes.Buffer
}

// NewConn returns a Conn in the Handshake phase. inbound is the direction of
// packets this side receives: Serverbound for a server, Clientbound for a
// client.
func NewConn(rw io.ReadWriter, inbound packet.Direction, cfg TransportConfig) *Conn {
	c := &Conn{
		t:       NewTransport(rw, rw, cfg),
		phase:   packet.Handshake,
		inbound: inbound,
	}
	if closer, ok := rw.(io.Closer); ok {
		c.closer = closer
	}
	return c
}

func (c *Conn) Phase() packet.Phase {
	return c.phase
}

func (c *Conn) SetPhase(p packet.Phase) error {
	if !p.Valid() {
		return packet.ErrInvalidPhase
	}
	c.phase = p
	return nil
}

// Inbound is the direction of packets returned by ReadPacket.
func (c *Conn) Inbound() packet.Direction {
	return c.inbound
}

func (c *Conn) Transport() *Transport {
	return c.t
}

func (c *Conn) SetCompression(threshold int) error {
	return c.t.SetCompression(threshold)
}

func (c *Conn) EnableEncryption(secret []byte) error {
	return c.t.EnableEncryption(secret)
}

// ReadPacket receives one frame and decodes it in the current phase. The
// whole frame is consumed even when decoding fails, so after an
// ErrUnknownPacket the caller may simply read the next packet.
func (c *Conn) ReadPacket() (packet.Packet, error) {
	pr, err := c.t.Recv()
	if err != nil {
		return nil, err
	}

	p, err := packet.ReadPacket(c.phase, c.inbound, pr)
	if err != nil {
		pr.Discard()
		return nil, err
	}
	if err := pr.Close(); err != nil {
		pr.Discard()
		return nil, fmt.Errorf("%T: %w", p, err)
	}
	return p, nil
}

// WritePacket encodes p and sends it as one frame. p must belong to the
// current phase and travel away from this side.
func (c *Conn) WritePacket(p packet.Packet) error {
	if p.Phase() != c.phase || p.Direction() == c.inbound {
		return fmt.Errorf("%w: %T is %s %s, connection is in %s",
			ErrWrongPhase, p, p.Phase(), p.Direction(), c.phase)
	}

	c.out.Reset()
	if err := packet.Encode(&c.out, p); err != nil {
		return err
	}
	return c.t.Send(c.out.Bytes())
}

func (c *Conn) Close() error {
	if c.closer == nil {
		return nil
	}
	return c.closer.Close()
}
