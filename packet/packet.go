//go:generate go run ../codegen/gen_packet_codec.go -- .

// Package packet holds the wire codec of the protocol: primitive field
// encoders, the packet structs of every phase and the id tables that map a
// (phase, direction, id) triple to a packet type.
//
// Packet structs marked with @gen get their Encode/Decode methods, phase
// markers and registry entries from codegen/gen_packet_codec.go. Field
// order in the struct is the wire order.
package packet

import (
	"io"
)

// ProtocolVersion is the protocol number the id tables are assigned for.
const ProtocolVersion = 758

type Packet interface {
	ID() int32
	Phase() Phase
	Direction() Direction

	// Encode writes the packet id as a VarInt followed by every field.
	Encode(w io.Writer) error
	// Decode reads the fields that follow the packet id.
	Decode(r Reader) error
}

// The phase interfaces below close the set of packets per phase. Only
// types declared in this package can satisfy them.

type HandshakePacket interface {
	Packet
	handshakePacket()
}

type StatusPacket interface {
	Packet
	statusPacket()
}

type LoginPacket interface {
	Packet
	loginPacket()
}

type GamePacket interface {
	Packet
	gamePacket()
}
