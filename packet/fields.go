package packet

import (
	"encoding/binary"
	"errors"
	"io"
	"math"
	"unicode/utf16"
	"unicode/utf8"

	"github.com/google/uuid"
)

type WriteFn[T any] func(io.Writer, T) error
type ReadFn[T any] func(Reader) (T, error)

var (
	ErrVarIntTooLong      = errors.New("malformed variable-length integer")
	ErrNegativeLength     = errors.New("negative length")
	ErrStringTooLong      = errors.New("string too long")
	ErrInvalidUTF8        = errors.New("invalid UTF-8")
	ErrPositionOutOfRange = errors.New("position component out of range")
	ErrUnbounded          = errors.New("remaining bytes read from an unframed source")
)

// DefaultStringMax is the bound applied to String fields without an explicit max tag.
const DefaultStringMax = 32767

func WriteBoolean(w io.Writer, v bool) (err error) {
	b := byte(0)
	if v {
		b = 1
	}

	_, err = w.Write([]byte{b})
	return
}

// ReadBoolean accepts any non-zero byte as true.
func ReadBoolean(r Reader) (v bool, err error) {
	b, err := r.ReadByte()
	if err != nil {
		return
	}

	v = b != 0
	return
}

func WriteByte(w io.Writer, v int8) (err error) {
	_, err = w.Write([]byte{byte(v)})
	return
}

func ReadByte(r Reader) (v int8, err error) {
	b, err := r.ReadByte()
	return int8(b), err
}

func WriteUnsignedByte(w io.Writer, v uint8) (err error) {
	_, err = w.Write([]byte{v})
	return
}

func ReadUnsignedByte(r Reader) (v uint8, err error) {
	return r.ReadByte()
}

func WriteShort(w io.Writer, v int16) error {
	return WriteUnsignedShort(w, uint16(v))
}

func ReadShort(r Reader) (v int16, err error) {
	u, err := ReadUnsignedShort(r)
	return int16(u), err
}

func WriteUnsignedShort(w io.Writer, v uint16) (err error) {
	var b [2]byte
	binary.BigEndian.PutUint16(b[:], v)
	_, err = w.Write(b[:])
	return
}

func ReadUnsignedShort(r Reader) (v uint16, err error) {
	b, err := r.Read(2)
	if err != nil {
		return
	}

	v = binary.BigEndian.Uint16(b)
	return
}

func WriteInt(w io.Writer, v int32) error {
	return WriteUnsignedInt(w, uint32(v))
}

func ReadInt(r Reader) (v int32, err error) {
	u, err := ReadUnsignedInt(r)
	return int32(u), err
}

func WriteUnsignedInt(w io.Writer, v uint32) (err error) {
	var b [4]byte
	binary.BigEndian.PutUint32(b[:], v)
	_, err = w.Write(b[:])
	return
}

func ReadUnsignedInt(r Reader) (v uint32, err error) {
	b, err := r.Read(4)
	if err != nil {
		return
	}

	v = binary.BigEndian.Uint32(b)
	return
}

func WriteLong(w io.Writer, v int64) error {
	return WriteUnsignedLong(w, uint64(v))
}

func ReadLong(r Reader) (v int64, err error) {
	u, err := ReadUnsignedLong(r)
	return int64(u), err
}

func WriteUnsignedLong(w io.Writer, v uint64) (err error) {
	var b [8]byte
	binary.BigEndian.PutUint64(b[:], v)
	_, err = w.Write(b[:])
	return
}

func ReadUnsignedLong(r Reader) (v uint64, err error) {
	b, err := r.Read(8)
	if err != nil {
		return
	}

	v = binary.BigEndian.Uint64(b)
	return
}

func WriteFloat(w io.Writer, v float32) error {
	return WriteUnsignedInt(w, math.Float32bits(v))
}

func ReadFloat(r Reader) (v float32, err error) {
	u, err := ReadUnsignedInt(r)
	return math.Float32frombits(u), err
}

func WriteDouble(w io.Writer, v float64) error {
	return WriteUnsignedLong(w, math.Float64bits(v))
}

func ReadDouble(r Reader) (v float64, err error) {
	u, err := ReadUnsignedLong(r)
	return math.Float64frombits(u), err
}

// putUVarLong appends the 7-bit group encoding of v to b.
func putUVarLong(b []byte, v uint64) []byte {
	for v >= 0x80 {
		b = append(b, byte(v&0x7F)|0x80)
		v >>= 7
	}
	return append(b, byte(v))
}

// readUVarLong decodes at most maxBytes groups.
func readUVarLong(r io.ByteReader, maxBytes int) (uint64, error) {
	var v uint64
	var shift uint

	for n := 0; n < maxBytes; n++ {
		b, err := r.ReadByte()
		if err != nil {
			if err == io.EOF && n > 0 {
				err = io.ErrUnexpectedEOF
			}
			return 0, err
		}

		v |= uint64(b&0x7F) << shift
		shift += 7

		if (b & 0x80) == 0 {
			return v, nil
		}
	}
	return 0, ErrVarIntTooLong
}

func WriteVarInt(w io.Writer, v int32) error {
	return WriteVarUInt(w, uint32(v))
}

// ReadVarInt reads a VarInt of at most 5 bytes. Negative values travel as
// their 32-bit two's-complement pattern.
func ReadVarInt(r io.ByteReader) (int32, error) {
	v, err := ReadVarUInt(r)
	return int32(v), err
}

func WriteVarUInt(w io.Writer, v uint32) error {
	var buf [5]byte
	_, err := w.Write(putUVarLong(buf[:0], uint64(v)))
	return err
}

func ReadVarUInt(r io.ByteReader) (uint32, error) {
	v, err := readUVarLong(r, 5)
	// the fifth group may carry bits above 32; they are dropped.
	return uint32(v), err
}

func WriteVarLong(w io.Writer, v int64) error {
	return WriteVarULong(w, uint64(v))
}

func ReadVarLong(r io.ByteReader) (int64, error) {
	v, err := ReadVarULong(r)
	return int64(v), err
}

func WriteVarULong(w io.Writer, v uint64) error {
	var buf [10]byte
	_, err := w.Write(putUVarLong(buf[:0], v))
	return err
}

func ReadVarULong(r io.ByteReader) (uint64, error) {
	return readUVarLong(r, 10)
}

// VarIntSize returns the number of bytes WriteVarInt emits for v.
func VarIntSize(v int32) int {
	uv := uint32(v)
	n := 1
	for uv >= 0x80 {
		uv >>= 7
		n++
	}
	return n
}

// utf16Len counts UTF-16 code units, the unit string bounds are expressed in.
func utf16Len(s string) int {
	n := 0
	for _, c := range s {
		if l := utf16.RuneLen(c); l > 0 {
			n += l
		} else {
			n++
		}
	}
	return n
}

func WriteString(w io.Writer, v string) error {
	return WriteStringMax(w, v, DefaultStringMax)
}

func ReadString(r Reader) (string, error) {
	return ReadStringMax(r, DefaultStringMax)
}

func WriteStringMax(w io.Writer, v string, max int) (err error) {
	if len(v) > max*4 || utf16Len(v) > max {
		return ErrStringTooLong
	}
	if !utf8.ValidString(v) {
		return ErrInvalidUTF8
	}

	err = WriteVarInt(w, int32(len(v)))
	if err != nil {
		return
	}
	_, err = io.WriteString(w, v)
	return
}

// ReadStringMax reads a string of at most max characters. The byte length
// is checked against 4*max before the payload is touched.
func ReadStringMax(r Reader, max int) (v string, err error) {
	length, err := ReadVarInt(r)
	if err != nil {
		return
	}

	if length < 0 {
		err = ErrNegativeLength
		return
	}
	if int64(length) > int64(max)*4 {
		err = ErrStringTooLong
		return
	}

	buf, err := r.Read(int(length))
	if err != nil {
		return
	}
	if !utf8.Valid(buf) {
		err = ErrInvalidUTF8
		return
	}

	v = string(buf)
	if utf16Len(v) > max {
		return "", ErrStringTooLong
	}
	return
}

func WriteByteArray(w io.Writer, v []byte) (err error) {
	err = WriteVarInt(w, int32(len(v)))
	if err != nil {
		return
	}
	_, err = w.Write(v)
	return
}

func ReadByteArray(r Reader) (v []byte, err error) {
	length, err := ReadVarInt(r)
	if err != nil {
		return
	}

	if length < 0 {
		err = ErrNegativeLength
		return
	}

	b, err := r.Read(int(length))
	if err != nil {
		return
	}

	// the reader may hand out a view of its own buffer; an empty array
	// decodes to an empty, non-nil slice
	v = append([]byte{}, b...)
	return
}

// WriteRemainingBytes writes v without a length prefix. It can only be the
// last field of a packet.
func WriteRemainingBytes(w io.Writer, v []byte) (err error) {
	_, err = w.Write(v)
	return
}

func ReadRemainingBytes(r Reader) (v []byte, err error) {
	b, err := r.ReadRemaining()
	if err != nil {
		return
	}
	v = append([]byte{}, b...)
	return
}

// Position's serialized form is composed of X, Z which are 26 bits each, and 12 bits of Y.
type Position struct {
	X int32
	Y int16
	Z int32
}

const (
	minXZ = -1 << 25
	maxXZ = 1<<25 - 1
	minY  = -1 << 11
	maxY  = 1<<11 - 1
)

// Valid reports whether every component fits its bit field.
func (p Position) Valid() bool {
	return p.X >= minXZ && p.X <= maxXZ &&
		p.Z >= minXZ && p.Z <= maxXZ &&
		p.Y >= minY && p.Y <= maxY
}

// Pack returns the 64-bit wire form of p. Out-of-range components are
// rejected rather than truncated.
func (p Position) Pack() (uint64, error) {
	if !p.Valid() {
		return 0, ErrPositionOutOfRange
	}

	return (uint64(uint32(p.X)&0x3FFFFFF) << 38) |
		(uint64(uint32(p.Z)&0x3FFFFFF) << 12) |
		uint64(uint16(p.Y)&0xFFF), nil
}

// UnpackPosition sign-extends each bit field of packed.
func UnpackPosition(packed uint64) Position {
	v := int64(packed)
	return Position{
		X: int32(v >> 38),
		Z: int32(v << 26 >> 38),
		Y: int16(v << 52 >> 52),
	}
}

func WritePosition(w io.Writer, v Position) error {
	packed, err := v.Pack()
	if err != nil {
		return err
	}
	return WriteUnsignedLong(w, packed)
}

func ReadPosition(r Reader) (v Position, err error) {
	packed, err := ReadUnsignedLong(r)
	if err != nil {
		return
	}

	v = UnpackPosition(packed)
	return
}

// UUIDWords splits v into four 32-bit words, most significant first.
func UUIDWords(v uuid.UUID) (words [4]uint32) {
	for i := range words {
		words[i] = binary.BigEndian.Uint32(v[i*4:])
	}
	return
}

func UUIDFromWords(words [4]uint32) (v uuid.UUID) {
	for i, word := range words {
		binary.BigEndian.PutUint32(v[i*4:], word)
	}
	return
}

// WriteUUID sends v as four consecutive unsigned ints.
func WriteUUID(w io.Writer, v uuid.UUID) error {
	for _, word := range UUIDWords(v) {
		if err := WriteUnsignedInt(w, word); err != nil {
			return err
		}
	}
	return nil
}

func ReadUUID(r Reader) (v uuid.UUID, err error) {
	var words [4]uint32
	for i := range words {
		if words[i], err = ReadUnsignedInt(r); err != nil {
			return
		}
	}

	v = UUIDFromWords(words)
	return
}

func WritePrefixedArray[T any](w io.Writer, v []T, write WriteFn[T]) (err error) {
	err = WriteVarInt(w, int32(len(v)))
	if err != nil {
		return
	}

	for _, item := range v {
		err = write(w, item)
		if err != nil {
			return
		}
	}
	return
}

// preallocation cap for arrays; a hostile length must not reserve memory
// the frame cannot back.
const maxArrayPrealloc = 256

func ReadPrefixedArray[T any](r Reader, read ReadFn[T]) (v []T, err error) {
	length := int32(0)
	if length, err = ReadVarInt(r); err != nil {
		return
	}
	if length < 0 {
		err = ErrNegativeLength
		return
	}

	v = make([]T, 0, min(int(length), maxArrayPrealloc))
	for i := 0; i < int(length); i++ {
		var item T
		if item, err = read(r); err != nil {
			return nil, err
		}
		v = append(v, item)
	}

	return
}

// Optional[T] represents Optional field in a packet
//
// Serialized Optional[T] is prefixed with Boolean of whether the value exists.
// If so, the value T is followed.
type Optional[T any] struct {
	Exists bool
	Item   T
}

// Some wraps v in a present Optional.
func Some[T any](v T) Optional[T] {
	return Optional[T]{Exists: true, Item: v}
}

func WriteOptional[T any](w io.Writer, v Optional[T], write WriteFn[T]) (err error) {
	err = WriteBoolean(w, v.Exists)
	if err != nil {
		return
	}

	if v.Exists {
		err = write(w, v.Item)
	}
	return
}

func ReadOptional[T any](r Reader, read ReadFn[T]) (v Optional[T], err error) {
	if v.Exists, err = ReadBoolean(r); err != nil {
		return
	}

	if v.Exists {
		v.Item, err = read(r)
	}
	return
}
