package packet

import (
	"bytes"
	"errors"
	"io"
	"testing"
)

// stray claims the StatusRequest slot without being a status packet.
type stray struct{}

func (stray) ID() int32 { return 0x00 }
func (stray) Phase() Phase { return Status }
func (stray) Direction() Direction { return Serverbound }
func (stray) Encode(w io.Writer) error { return WriteVarInt(w, 0x00) }
func (*stray) Decode(r Reader) error { return nil }

func TestBuildRegistry(t *testing.T) {
	tcs := []struct {
		desc    string
		tables  map[Phase][2]table
		wantErr bool
	}{
		{
			desc: "Generated tables",
			tables: map[Phase][2]table{
				Handshake: {HandshakeClientboundRegistry, HandshakeServerboundRegistry},
				Status:    {StatusClientboundRegistry, StatusServerboundRegistry},
				Login:     {LoginClientboundRegistry, LoginServerboundRegistry},
				Game:      {GameClientboundRegistry, GameServerboundRegistry},
			},
		},
		{
			desc: "Id disagrees with slot",
			tables: map[Phase][2]table{
				Status: {nil, table{0x05: func() Packet { return &PingRequest{} }}},
			},
			wantErr: true,
		},
		{
			desc: "Packet of another phase",
			tables: map[Phase][2]table{
				Login: {nil, table{0x01: func() Packet { return &PingRequest{} }}},
			},
			wantErr: true,
		},
		{
			desc: "Packet of the opposite direction",
			tables: map[Phase][2]table{
				Status: {table{0x01: func() Packet { return &PingRequest{} }}, nil},
			},
			wantErr: true,
		},
		{
			desc: "Packet outside the phase interface",
			tables: map[Phase][2]table{
				Status: {nil, table{0x00: func() Packet { return &stray{} }}},
			},
			wantErr: true,
		},
		{
			desc: "Invalid phase key",
			tables: map[Phase][2]table{
				Phase(7): {nil, nil},
			},
			wantErr: true,
		},
	}

	for _, tc := range tcs {
		t.Run(tc.desc, func(t *testing.T) {
			_, err := buildRegistry(tc.tables)
			if tc.wantErr && err == nil {
				t.Fatal("expected an error")
			}
			if !tc.wantErr && err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
		})
	}
}

func TestLookup(t *testing.T) {
	p, err := Lookup(Game, Serverbound, 0x0E)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, ok := p.(*JigsawGenerate); !ok {
		t.Fatalf("expected *JigsawGenerate, got %T", p)
	}

	// every lookup constructs a fresh value
	q, _ := Lookup(Game, Serverbound, 0x0E)
	if p == q {
		t.Error("lookup returned a shared instance")
	}
}

func TestLookupUnknown(t *testing.T) {
	_, err := Lookup(Game, Serverbound, 0x7F)
	if !errors.Is(err, ErrUnknownPacket) {
		t.Fatalf("expected ErrUnknownPacket, got %v", err)
	}

	var unknown *UnknownPacketError
	if !errors.As(err, &unknown) {
		t.Fatalf("expected *UnknownPacketError, got %T", err)
	}
	if unknown.Phase != Game || unknown.Direction != Serverbound || unknown.ID != 0x7F {
		t.Errorf("unexpected error fields: %+v", unknown)
	}
}

func TestLookupInvalid(t *testing.T) {
	if _, err := Lookup(Phase(3), Serverbound, 0x00); !errors.Is(err, ErrInvalidPhase) {
		t.Errorf("expected ErrInvalidPhase, got %v", err)
	}
	if _, err := Lookup(Status, Direction(2), 0x00); !errors.Is(err, ErrInvalidDirection) {
		t.Errorf("expected ErrInvalidDirection, got %v", err)
	}
}

func TestIDs(t *testing.T) {
	got := IDs(Login, Clientbound)
	want := []int32{0x00, 0x01, 0x02, 0x03, 0x04}
	if len(got) != len(want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("expected %v, got %v", want, got)
		}
	}

	if ids := IDs(Handshake, Clientbound); len(ids) != 0 {
		t.Errorf("expected no handshake clientbound ids, got %v", ids)
	}
	if ids := IDs(Phase(9), Clientbound); ids != nil {
		t.Errorf("expected nil for an invalid phase, got %v", ids)
	}
}

func TestEncodeUnregistered(t *testing.T) {
	var buf bytes.Buffer
	err := Encode(&buf, &stray{})
	if !errors.Is(err, ErrUnregisteredPacket) {
		t.Fatalf("expected ErrUnregisteredPacket, got %v", err)
	}
	if buf.Len() != 0 {
		t.Errorf("expected nothing written, got %x", buf.Bytes())
	}
}

func TestReadPacketEmpty(t *testing.T) {
	r := NewFrameReader(nil)
	if _, err := ReadPacket(Status, Serverbound, &r); !errors.Is(err, io.ErrUnexpectedEOF) {
		t.Errorf("expected io.ErrUnexpectedEOF, got %v", err)
	}
}
