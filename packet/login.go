package packet

import (
	"io"

	"github.com/google/uuid"
)

// MaxPlayerNameLen bounds player names in login packets.
const MaxPlayerNameLen = 16

// @gen:r,w,regserver
type Hello struct {
	Name string `field:"String" max:"16"`
}

func (p Hello) ID() int32 {
	return 0x00
}

// @gen:r,w,regserver
type Key struct {
	SharedSecret []byte `field:"ByteArray"`
	Nonce        []byte `field:"ByteArray"`
}

func (p Key) ID() int32 {
	return 0x01
}

// CustomQueryAnswer answers a CustomQuery with the same TransactionID. Data
// is absent when the client did not understand the query.
//
// @gen:r,w,regserver
type CustomQueryAnswer struct {
	TransactionID int32            `field:"Int,var"`
	Data          Optional[[]byte] `field:"Optional" inner:"RemainingBytes"`
}

func (p CustomQueryAnswer) ID() int32 {
	return 0x02
}

// @gen:r,w,regclient
type LoginDisconnect struct {
	Reason string `field:"String" max:"262144"` // JSON Text Component
}

func (p LoginDisconnect) ID() int32 {
	return 0x00
}

// @gen:r,w,regclient
type EncryptionRequest struct {
	ServerID  string `field:"String" max:"20"`
	PublicKey []byte `field:"ByteArray"`
	Nonce     []byte `field:"ByteArray"`
}

func (p EncryptionRequest) ID() int32 {
	return 0x01
}

// GameProfile identifies the player the server accepted.
type GameProfile struct {
	UUID uuid.UUID
	Name string
}

// WriteGameProfile writes the profile id as four ints followed by the name.
func WriteGameProfile(w io.Writer, v GameProfile) (err error) {
	if err = WriteUUID(w, v.UUID); err != nil {
		return
	}
	return WriteStringMax(w, v.Name, MaxPlayerNameLen)
}

func ReadGameProfile(r Reader) (v GameProfile, err error) {
	if v.UUID, err = ReadUUID(r); err != nil {
		return
	}
	v.Name, err = ReadStringMax(r, MaxPlayerNameLen)
	return
}

// LoginGameProfile ends the login phase; the connection moves to Game after it.
//
// @gen:r,w,regclient
type LoginGameProfile struct {
	Profile GameProfile `field:"GameProfile"`
}

func (p LoginGameProfile) ID() int32 {
	return 0x02
}

// @gen:r,w,regclient
type LoginCompression struct {
	Threshold int32 `field:"Int,var"`
}

func (p LoginCompression) ID() int32 {
	return 0x03
}

// @gen:r,w,regclient
type CustomQuery struct {
	TransactionID int32  `field:"Int,var"`
	Identifier    string `field:"String" max:"32767"`
	Data          []byte `field:"RemainingBytes"`
}

func (p CustomQuery) ID() int32 {
	return 0x04
}
