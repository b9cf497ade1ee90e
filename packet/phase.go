package packet

import (
	"errors"
	"fmt"
	"io"
)

var ErrInvalidPhase = errors.New("invalid connection phase")

// Phase is the connection state that selects which packet id tables apply.
// Its values are the tags sent in the handshake.
type Phase int32

const (
	Handshake Phase = -1
	Game      Phase = 0
	Status    Phase = 1
	Login     Phase = 2
)

// Phases lists every phase in connection order.
var Phases = []Phase{Handshake, Status, Login, Game}

func (p Phase) Valid() bool {
	return p >= Handshake && p <= Login
}

func (p Phase) String() string {
	switch p {
	case Handshake:
		return "Handshake"
	case Game:
		return "Game"
	case Status:
		return "Status"
	case Login:
		return "Login"
	}
	return fmt.Sprintf("Phase(%d)", int32(p))
}

func WritePhase(w io.Writer, v Phase) error {
	if !v.Valid() {
		return ErrInvalidPhase
	}
	return WriteVarInt(w, int32(v))
}

func ReadPhase(r Reader) (v Phase, err error) {
	tag, err := ReadVarInt(r)
	if err != nil {
		return
	}

	v = Phase(tag)
	if !v.Valid() {
		return 0, ErrInvalidPhase
	}
	return
}

// Direction is the way a packet travels.
type Direction uint8

const (
	Clientbound Direction = iota // server to client
	Serverbound                  // client to server
)

func (d Direction) Opposite() Direction {
	return d ^ 1
}

func (d Direction) String() string {
	switch d {
	case Clientbound:
		return "Clientbound"
	case Serverbound:
		return "Serverbound"
	}
	return "UnknownBound"
}
