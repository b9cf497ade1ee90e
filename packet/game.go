package packet

import "github.com/google/uuid"

// Serverbound

// @gen:r,w,regserver
type AcceptTeleportation struct {
	TeleportID int32 `field:"Int,var"`
}

func (p AcceptTeleportation) ID() int32 {
	return 0x00
}

// @gen:r,w,regserver
type Chat struct {
	Message string `field:"String" max:"256"`
}

func (p Chat) ID() int32 {
	return 0x03
}

// ClientCommand actions.
const (
	ActionPerformRespawn int32 = 0
	ActionRequestStats   int32 = 1
)

// @gen:r,w,regserver
type ClientCommand struct {
	Action int32 `field:"Int,var"`
}

func (p ClientCommand) ID() int32 {
	return 0x04
}

// @gen:r,w,regserver
type ContainerClose struct {
	ContainerID uint8 `field:"UnsignedByte"`
}

func (p ContainerClose) ID() int32 {
	return 0x09
}

// JigsawGenerate asks the server to run structure generation from the
// jigsaw block at Pos.
//
// @gen:r,w,regserver
type JigsawGenerate struct {
	Pos         Position `field:"Position"`
	Levels      uint32   `field:"UnsignedInt,var"`
	KeepJigsaws bool     `field:"Boolean"`
}

func (p JigsawGenerate) ID() int32 {
	return 0x0E
}

// @gen:r,w,regserver
type ServerboundKeepAlive struct {
	KeepAliveID int64 `field:"Long"`
}

func (p ServerboundKeepAlive) ID() int32 {
	return 0x0F
}

// @gen:r,w,regserver
type LockDifficulty struct {
	Locked bool `field:"Boolean"`
}

func (p LockDifficulty) ID() int32 {
	return 0x10
}

// @gen:r,w,regserver
type MovePlayerPos struct {
	X        float64 `field:"Double"`
	Y        float64 `field:"Double"` // feet
	Z        float64 `field:"Double"`
	OnGround bool    `field:"Boolean"`
}

func (p MovePlayerPos) ID() int32 {
	return 0x11
}

// @gen:r,w,regserver
type MovePlayerStatus struct {
	OnGround bool `field:"Boolean"`
}

func (p MovePlayerStatus) ID() int32 {
	return 0x14
}

// @gen:r,w,regserver
type SetCarriedItem struct {
	Slot int16 `field:"Short"`
}

func (p SetCarriedItem) ID() int32 {
	return 0x25
}

// Clientbound

// BlockDestruction shows crack progress 0-9 on a block; other values
// remove it.
//
// @gen:r,w,regclient
type BlockDestruction struct {
	EntityID int32    `field:"Int,var"`
	Pos      Position `field:"Position"`
	Progress int8     `field:"Byte"`
}

func (p BlockDestruction) ID() int32 {
	return 0x09
}

// @gen:r,w,regclient
type BlockUpdate struct {
	Pos        Position `field:"Position"`
	BlockState int32    `field:"Int,var"`
}

func (p BlockUpdate) ID() int32 {
	return 0x0C
}

// @gen:r,w,regclient
type ChangeDifficulty struct {
	Difficulty uint8 `field:"UnsignedByte"`
	Locked     bool  `field:"Boolean"`
}

func (p ChangeDifficulty) ID() int32 {
	return 0x0E
}

// Chat positions.
const (
	ChatPositionChat     int8 = 0
	ChatPositionSystem   int8 = 1
	ChatPositionGameInfo int8 = 2
)

// @gen:r,w,regclient
type ChatMessage struct {
	Message  string    `field:"String" max:"262144"` // JSON Text Component
	Position int8      `field:"Byte"`
	Sender   uuid.UUID `field:"UUID"`
}

func (p ChatMessage) ID() int32 {
	return 0x0F
}

// @gen:r,w,regclient
type Disconnect struct {
	Reason string `field:"String" max:"262144"` // JSON Text Component
}

func (p Disconnect) ID() int32 {
	return 0x1A
}

// @gen:r,w,regclient
type ForgetLevelChunk struct {
	X int32 `field:"Int"`
	Z int32 `field:"Int"`
}

func (p ForgetLevelChunk) ID() int32 {
	return 0x1D
}

// @gen:r,w,regclient
type ClientboundKeepAlive struct {
	KeepAliveID int64 `field:"Long"`
}

func (p ClientboundKeepAlive) ID() int32 {
	return 0x21
}
