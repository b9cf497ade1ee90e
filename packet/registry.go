package packet

import (
	"errors"
	"fmt"
	"io"
	"reflect"
	"sort"
)

var (
	ErrUnknownPacket      = errors.New("unknown packet id")
	ErrUnregisteredPacket = errors.New("packet type not registered for its phase")
	ErrInvalidDirection   = errors.New("invalid packet direction")
)

// UnknownPacketError reports an id with no packet type in its table. It
// matches ErrUnknownPacket so callers can skip such frames instead of
// treating them as malformed.
type UnknownPacketError struct {
	Phase     Phase
	Direction Direction
	ID        int32
}

func (e *UnknownPacketError) Error() string {
	return fmt.Sprintf("unknown packet id 0x%02X (%s, %s)", e.ID, e.Phase, e.Direction)
}

func (e *UnknownPacketError) Is(target error) bool {
	return target == ErrUnknownPacket
}

type table map[int32]func() Packet

// registry holds one table per phase and direction, indexed by
// phaseIndex and Direction.
var registry [4][2]table

func phaseIndex(p Phase) (int, bool) {
	if !p.Valid() {
		return 0, false
	}
	return int(p) + 1, true
}

func init() {
	tables := map[Phase][2]table{
		Handshake: {HandshakeClientboundRegistry, HandshakeServerboundRegistry},
		Status:    {StatusClientboundRegistry, StatusServerboundRegistry},
		Login:     {LoginClientboundRegistry, LoginServerboundRegistry},
		Game:      {GameClientboundRegistry, GameServerboundRegistry},
	}

	var err error
	if registry, err = buildRegistry(tables); err != nil {
		panic(err)
	}
}

// buildRegistry assembles tables after checking that every entry constructs
// a packet whose id, phase and direction agree with its slot.
func buildRegistry(tables map[Phase][2]table) (reg [4][2]table, err error) {
	for phase, dirs := range tables {
		i, ok := phaseIndex(phase)
		if !ok {
			return reg, fmt.Errorf("registry: %w: %d", ErrInvalidPhase, phase)
		}

		for d, t := range dirs {
			dir := Direction(d)
			for id, newPacket := range t {
				p := newPacket()
				slot := fmt.Sprintf("%s/%s/0x%02X", phase, dir, id)

				if p.ID() != id {
					return reg, fmt.Errorf("registry: %s holds %T with id 0x%02X", slot, p, p.ID())
				}
				if p.Phase() != phase || p.Direction() != dir {
					return reg, fmt.Errorf("registry: %s holds %T of %s/%s", slot, p, p.Phase(), p.Direction())
				}
				if !inPhase(p, phase) {
					return reg, fmt.Errorf("registry: %T does not implement the %s packet interface", p, phase)
				}
			}
			reg[i][d] = t
		}
	}
	return reg, nil
}

func inPhase(p Packet, phase Phase) bool {
	switch phase {
	case Handshake:
		_, ok := p.(HandshakePacket)
		return ok
	case Status:
		_, ok := p.(StatusPacket)
		return ok
	case Login:
		_, ok := p.(LoginPacket)
		return ok
	case Game:
		_, ok := p.(GamePacket)
		return ok
	}
	return false
}

// Lookup returns a new zero packet registered at (phase, dir, id).
func Lookup(phase Phase, dir Direction, id int32) (Packet, error) {
	i, ok := phaseIndex(phase)
	if !ok {
		return nil, ErrInvalidPhase
	}
	if dir > Serverbound {
		return nil, ErrInvalidDirection
	}

	newPacket, ok := registry[i][dir][id]
	if !ok {
		return nil, &UnknownPacketError{phase, dir, id}
	}
	return newPacket(), nil
}

// IDs returns the ids registered for phase and dir in ascending order.
func IDs(phase Phase, dir Direction) []int32 {
	i, ok := phaseIndex(phase)
	if !ok || dir > Serverbound {
		return nil
	}

	ids := make([]int32, 0, len(registry[i][dir]))
	for id := range registry[i][dir] {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(a, b int) bool { return ids[a] < ids[b] })
	return ids
}

// Decode reads the fields of the packet registered at (phase, dir, id).
// No packet is returned when any field fails.
func Decode(phase Phase, dir Direction, id int32, r Reader) (Packet, error) {
	p, err := Lookup(phase, dir, id)
	if err != nil {
		return nil, err
	}

	if err := p.Decode(r); err != nil {
		return nil, err
	}
	return p, nil
}

// ReadPacket reads a VarInt packet id and then the packet it names.
func ReadPacket(phase Phase, dir Direction, r Reader) (Packet, error) {
	id, err := ReadVarInt(r)
	if err == io.EOF {
		err = io.ErrUnexpectedEOF
	}
	if err != nil {
		return nil, err
	}
	return Decode(phase, dir, id, r)
}

// Encode writes p after checking that its id resolves back to its own type.
func Encode(w io.Writer, p Packet) error {
	registered, err := Lookup(p.Phase(), p.Direction(), p.ID())
	if err != nil || reflect.TypeOf(registered) != reflect.TypeOf(p) {
		return fmt.Errorf("%w: %T", ErrUnregisteredPacket, p)
	}
	return p.Encode(w)
}
