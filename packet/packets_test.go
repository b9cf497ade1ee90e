package packet

import (
	"bytes"
	"errors"
	"io"
	"reflect"
	"strings"
	"testing"

	"github.com/google/uuid"
)

var steve = uuid.MustParse("069a79f4-44e9-4726-a5be-fca90e38aaf5")

// samples holds one populated value of every registered packet type.
var samples = []Packet{
	&ClientIntention{ProtocolVersion: ProtocolVersion, HostName: "mc.example.net", Port: 25565, Intention: Status},

	&StatusRequest{},
	&PingRequest{Time: 1700000000123},
	&StatusResponse{JSON: `{"version":{"name":"1.18.2","protocol":758}}`},
	&PongResponse{Time: -42},

	&Hello{Name: "Notch"},
	&Key{SharedSecret: []byte{1, 2, 3, 4}, Nonce: []byte{9, 8, 7}},
	&CustomQueryAnswer{TransactionID: 12, Data: Some([]byte("pong"))},
	&LoginDisconnect{Reason: `{"text":"bye"}`},
	&EncryptionRequest{ServerID: "", PublicKey: []byte{0x30, 0x81}, Nonce: []byte{0xde, 0xad, 0xbe, 0xef}},
	&LoginGameProfile{Profile: GameProfile{UUID: steve, Name: "Steve"}},
	&LoginCompression{Threshold: 256},
	&CustomQuery{TransactionID: 12, Identifier: "velocity:player_info", Data: []byte{0x01}},

	&AcceptTeleportation{TeleportID: 3},
	&Chat{Message: "/help"},
	&ClientCommand{Action: ActionPerformRespawn},
	&ContainerClose{ContainerID: 255},
	&JigsawGenerate{Pos: Position{X: 10, Y: 64, Z: -20}, Levels: 7, KeepJigsaws: true},
	&ServerboundKeepAlive{KeepAliveID: 98765},
	&LockDifficulty{Locked: true},
	&MovePlayerPos{X: 0.5, Y: -60, Z: 1024.25, OnGround: true},
	&MovePlayerStatus{OnGround: false},
	&SetCarriedItem{Slot: 8},

	&BlockDestruction{EntityID: 77, Pos: Position{X: -1, Y: -64, Z: 1}, Progress: 9},
	&BlockUpdate{Pos: Position{X: 100, Y: 319, Z: -100}, BlockState: 1},
	&ChangeDifficulty{Difficulty: 3, Locked: false},
	&ChatMessage{Message: `{"text":"hi"}`, Position: ChatPositionSystem, Sender: steve},
	&Disconnect{Reason: `{"text":"Server closed"}`},
	&ForgetLevelChunk{X: -3, Z: 17},
	&ClientboundKeepAlive{KeepAliveID: -1},
}

func TestSamplesCoverRegistry(t *testing.T) {
	covered := make(map[reflect.Type]bool)
	for _, p := range samples {
		covered[reflect.TypeOf(p)] = true
	}

	for _, phase := range Phases {
		for _, dir := range []Direction{Clientbound, Serverbound} {
			for _, id := range IDs(phase, dir) {
				p, _ := Lookup(phase, dir, id)
				if !covered[reflect.TypeOf(p)] {
					t.Errorf("no sample for %T (%s, %s, 0x%02X)", p, phase, dir, id)
				}
			}
		}
	}
}

func TestRoundTrip(t *testing.T) {
	for _, p := range samples {
		t.Run(reflect.TypeOf(p).Elem().Name(), func(t *testing.T) {
			var buf bytes.Buffer
			if err := Encode(&buf, p); err != nil {
				t.Fatalf("unexpected encode error: %v", err)
			}

			r := NewFrameReader(buf.Bytes())
			got, err := ReadPacket(p.Phase(), p.Direction(), &r)
			if err != nil {
				t.Fatalf("unexpected decode error: %v", err)
			}
			if !reflect.DeepEqual(got, p) {
				t.Errorf("expected %+v, got %+v", p, got)
			}
			if r.Remaining() != 0 {
				t.Errorf("%d bytes left after decode", r.Remaining())
			}
		})
	}
}

func TestEnvelope(t *testing.T) {
	for _, p := range samples {
		var ok bool
		switch p.Phase() {
		case Handshake:
			_, ok = p.(HandshakePacket)
		case Status:
			_, ok = p.(StatusPacket)
		case Login:
			_, ok = p.(LoginPacket)
		case Game:
			_, ok = p.(GamePacket)
		}
		if !ok {
			t.Errorf("%T does not implement the %s packet interface", p, p.Phase())
		}
	}
}

func TestClientIntentionEncoding(t *testing.T) {
	p := &ClientIntention{
		ProtocolVersion: 758,
		HostName:        "localhost",
		Port:            25565,
		Intention:       Login,
	}
	want := append([]byte{0x00, 0xf6, 0x05, 0x09}, "localhost"...)
	want = append(want, 0x63, 0xdd, 0x02)

	var buf bytes.Buffer
	if err := Encode(&buf, p); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !bytes.Equal(buf.Bytes(), want) {
		t.Errorf("expected %x, got %x", want, buf.Bytes())
	}
}

func TestClientIntentionInvalidPhase(t *testing.T) {
	body := append([]byte{0xf6, 0x05, 0x09}, "localhost"...)
	body = append(body, 0x63, 0xdd, 0x05)

	r := NewFrameReader(body)
	p, err := Decode(Handshake, Serverbound, 0x00, &r)
	if !errors.Is(err, ErrInvalidPhase) {
		t.Fatalf("expected ErrInvalidPhase, got %v", err)
	}
	if p != nil {
		t.Errorf("expected no packet, got %+v", p)
	}
}

func TestDecodeTruncated(t *testing.T) {
	// the port is cut after its first byte
	body := append([]byte{0xf6, 0x05, 0x09}, "localhost"...)
	body = append(body, 0x63)

	r := NewFrameReader(body)
	p, err := Decode(Handshake, Serverbound, 0x00, &r)
	if !errors.Is(err, io.ErrUnexpectedEOF) {
		t.Fatalf("expected io.ErrUnexpectedEOF, got %v", err)
	}
	if p != nil {
		t.Errorf("expected no packet, got %+v", p)
	}
}

func TestJigsawDispatch(t *testing.T) {
	body := []byte{0x00, 0x00, 0x02, 0xBF, 0xFF, 0xFE, 0xC0, 0x40, 0x07, 0x01}

	r := NewFrameReader(body)
	p, err := Decode(Game, Serverbound, 0x0E, &r)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := &JigsawGenerate{Pos: Position{X: 10, Y: 64, Z: -20}, Levels: 7, KeepJigsaws: true}
	if !reflect.DeepEqual(p, want) {
		t.Errorf("expected %+v, got %+v", want, p)
	}

	var buf bytes.Buffer
	if err := p.Encode(&buf); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !bytes.Equal(buf.Bytes(), append([]byte{0x0E}, body...)) {
		t.Errorf("re-encoding differs: %x", buf.Bytes())
	}

	r = NewFrameReader(body)
	if _, err := Decode(Game, Serverbound, 0x01, &r); !errors.Is(err, ErrUnknownPacket) {
		t.Errorf("expected ErrUnknownPacket, got %v", err)
	}
}

func TestGameProfile(t *testing.T) {
	tcs := []struct {
		desc      string
		profile   GameProfile
		expectErr error
	}{
		{
			desc:    "Empty name",
			profile: GameProfile{UUID: steve},
		},
		{
			desc:    "Longest name",
			profile: GameProfile{UUID: steve, Name: strings.Repeat("a", MaxPlayerNameLen)},
		},
		{
			desc:      "Name too long",
			profile:   GameProfile{UUID: steve, Name: strings.Repeat("a", MaxPlayerNameLen+1)},
			expectErr: ErrStringTooLong,
		},
	}

	for _, tc := range tcs {
		t.Run(tc.desc, func(t *testing.T) {
			var buf bytes.Buffer
			err := WriteGameProfile(&buf, tc.profile)
			if tc.expectErr != nil {
				if !errors.Is(err, tc.expectErr) {
					t.Fatalf("expected %v, got %v", tc.expectErr, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}

			ser := buf.Bytes()
			if len(ser) != 16+1+len(tc.profile.Name) {
				t.Fatalf("unexpected length %d", len(ser))
			}
			if !bytes.Equal(ser[:16], steve[:]) {
				t.Errorf("expected uuid %x, got %x", steve[:], ser[:16])
			}

			r := NewFrameReader(ser)
			got, err := ReadGameProfile(&r)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tc.profile {
				t.Errorf("expected %+v, got %+v", tc.profile, got)
			}

			var again bytes.Buffer
			if err := WriteGameProfile(&again, got); err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if !bytes.Equal(again.Bytes(), ser) {
				t.Errorf("re-encoding differs: %x != %x", again.Bytes(), ser)
			}
		})
	}
}

func TestCustomQueryAnswerAbsent(t *testing.T) {
	p := &CustomQueryAnswer{TransactionID: 4}

	var buf bytes.Buffer
	if err := Encode(&buf, p); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if want := []byte{0x02, 0x04, 0x00}; !bytes.Equal(buf.Bytes(), want) {
		t.Fatalf("expected %x, got %x", want, buf.Bytes())
	}

	r := NewFrameReader(buf.Bytes()[1:])
	got, err := Decode(Login, Serverbound, 0x02, &r)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !reflect.DeepEqual(got, p) {
		t.Errorf("expected %+v, got %+v", p, got)
	}
}

func TestEmptyDataRoundTrip(t *testing.T) {
	for _, p := range []Packet{
		&CustomQuery{TransactionID: 1, Identifier: "minecraft:empty", Data: []byte{}},
		&CustomQueryAnswer{TransactionID: 1, Data: Some([]byte{})},
		&Key{SharedSecret: []byte{}, Nonce: []byte{}},
	} {
		var buf bytes.Buffer
		if err := Encode(&buf, p); err != nil {
			t.Fatalf("unexpected encode error: %v", err)
		}

		r := NewFrameReader(buf.Bytes())
		got, err := ReadPacket(p.Phase(), p.Direction(), &r)
		if err != nil {
			t.Fatalf("unexpected decode error: %v", err)
		}
		if !reflect.DeepEqual(got, p) {
			t.Errorf("expected %#v, got %#v", p, got)
		}
	}
}

func TestEncodeInvalidName(t *testing.T) {
	var buf bytes.Buffer
	if err := Encode(&buf, &Hello{Name: "\xff\xfe"}); !errors.Is(err, ErrInvalidUTF8) {
		t.Errorf("expected ErrInvalidUTF8, got %v", err)
	}
}

func TestPositionOutOfRangeEncode(t *testing.T) {
	p := &BlockUpdate{Pos: Position{X: 1 << 25, Y: 0, Z: 0}}

	var buf bytes.Buffer
	if err := Encode(&buf, p); !errors.Is(err, ErrPositionOutOfRange) {
		t.Errorf("expected ErrPositionOutOfRange, got %v", err)
	}
}
