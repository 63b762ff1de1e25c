package codec

import (
	"github.com/bitwire-go/bitwire/bitio"
	"github.com/bitwire-go/bitwire/errs"
)

// widthOf returns the natural bit width for n bytes, used when tag is not a
// Bits value.
func widthOf(byteWidth int) int { return byteWidth * 8 }

// bitsFromTag returns the bit width to use for a numeric read/write: the
// width carried by a Bits tag, or the type's natural byteWidth*8 otherwise.
func bitsFromTag(tag any, byteWidth int) int {
	if b, ok := tag.(Bits); ok {
		return int(b)
	}

	return widthOf(byteWidth)
}

// DecodeUint8 reads a uint8, honoring a Bits(N) tag for sub-byte widths.
func DecodeUint8(r *bitio.Reader, tag any) (uint8, error) {
	n := bitsFromTag(tag, 1)
	v, err := r.ReadUnsignedBits(n)

	return uint8(v), err
}

// EncodeUint8 writes v, honoring a Bits(N) tag for sub-byte widths.
func EncodeUint8(w *bitio.Writer, v uint8, tag any) error {
	n := bitsFromTag(tag, 1)

	return w.WriteUnsignedBits(uint64(v), n)
}

// DecodeUint16 reads a uint16 under order, or an N-bit integer under a
// Bits(N) tag (bit-level reads are always MSB-first regardless of order).
func DecodeUint16(r *bitio.Reader, order bitio.ByteOrder, tag any) (uint16, error) {
	if b, ok := tag.(Bits); ok {
		v, err := r.ReadUnsignedBits(int(b))

		return uint16(v), err
	}
	v, err := r.ReadUint(2, order)

	return uint16(v), err
}

// EncodeUint16 writes v under order, or as an N-bit integer under a Bits(N)
// tag.
func EncodeUint16(w *bitio.Writer, v uint16, order bitio.ByteOrder, tag any) error {
	if b, ok := tag.(Bits); ok {
		return w.WriteUnsignedBits(uint64(v), int(b))
	}

	return w.WriteUint(uint64(v), 2, order)
}

// DecodeUint32 reads a uint32 under order, or an N-bit integer under a
// Bits(N) tag.
func DecodeUint32(r *bitio.Reader, order bitio.ByteOrder, tag any) (uint32, error) {
	if b, ok := tag.(Bits); ok {
		v, err := r.ReadUnsignedBits(int(b))

		return uint32(v), err
	}
	v, err := r.ReadUint(4, order)

	return uint32(v), err
}

// EncodeUint32 writes v under order, or as an N-bit integer under a Bits(N)
// tag.
func EncodeUint32(w *bitio.Writer, v uint32, order bitio.ByteOrder, tag any) error {
	if b, ok := tag.(Bits); ok {
		return w.WriteUnsignedBits(uint64(v), int(b))
	}

	return w.WriteUint(uint64(v), 4, order)
}

// DecodeUint64 reads a uint64 under order, or an N-bit integer under a
// Bits(N) tag.
func DecodeUint64(r *bitio.Reader, order bitio.ByteOrder, tag any) (uint64, error) {
	if b, ok := tag.(Bits); ok {
		return r.ReadUnsignedBits(int(b))
	}

	return r.ReadUint(8, order)
}

// EncodeUint64 writes v under order, or as an N-bit integer under a Bits(N)
// tag.
func EncodeUint64(w *bitio.Writer, v uint64, order bitio.ByteOrder, tag any) error {
	if b, ok := tag.(Bits); ok {
		return w.WriteUnsignedBits(v, int(b))
	}

	return w.WriteUint(v, 8, order)
}

// DecodeInt8 reads an int8, honoring a Bits(N) tag.
func DecodeInt8(r *bitio.Reader, tag any) (int8, error) {
	n := bitsFromTag(tag, 1)
	v, err := r.ReadSignedBits(n)

	return int8(v), err
}

// EncodeInt8 writes v, honoring a Bits(N) tag.
func EncodeInt8(w *bitio.Writer, v int8, tag any) error {
	n := bitsFromTag(tag, 1)

	return w.WriteSignedBits(int64(v), n)
}

// DecodeInt16 reads an int16 under order, or an N-bit signed integer under
// a Bits(N) tag.
func DecodeInt16(r *bitio.Reader, order bitio.ByteOrder, tag any) (int16, error) {
	if b, ok := tag.(Bits); ok {
		v, err := r.ReadSignedBits(int(b))

		return int16(v), err
	}
	v, err := r.ReadUint(2, order)

	return int16(v), err
}

// EncodeInt16 writes v under order, or as an N-bit signed integer under a
// Bits(N) tag.
func EncodeInt16(w *bitio.Writer, v int16, order bitio.ByteOrder, tag any) error {
	if b, ok := tag.(Bits); ok {
		return w.WriteSignedBits(int64(v), int(b))
	}

	return w.WriteUint(uint64(uint16(v)), 2, order)
}

// DecodeInt32 reads an int32 under order, or an N-bit signed integer under
// a Bits(N) tag.
func DecodeInt32(r *bitio.Reader, order bitio.ByteOrder, tag any) (int32, error) {
	if b, ok := tag.(Bits); ok {
		v, err := r.ReadSignedBits(int(b))

		return int32(v), err
	}
	v, err := r.ReadUint(4, order)

	return int32(v), err
}

// EncodeInt32 writes v under order, or as an N-bit signed integer under a
// Bits(N) tag.
func EncodeInt32(w *bitio.Writer, v int32, order bitio.ByteOrder, tag any) error {
	if b, ok := tag.(Bits); ok {
		return w.WriteSignedBits(int64(v), int(b))
	}

	return w.WriteUint(uint64(uint32(v)), 4, order)
}

// DecodeInt64 reads an int64 under order, or an N-bit signed integer under
// a Bits(N) tag.
func DecodeInt64(r *bitio.Reader, order bitio.ByteOrder, tag any) (int64, error) {
	if b, ok := tag.(Bits); ok {
		return r.ReadSignedBits(int(b))
	}
	v, err := r.ReadUint(8, order)

	return int64(v), err
}

// EncodeInt64 writes v under order, or as an N-bit signed integer under a
// Bits(N) tag.
func EncodeInt64(w *bitio.Writer, v int64, order bitio.ByteOrder, tag any) error {
	if b, ok := tag.(Bits); ok {
		return w.WriteSignedBits(v, int(b))
	}

	return w.WriteUint(uint64(v), 8, order)
}

// DecodeBool reads a bool as an N-bit integer, defaulting to a whole byte
// (8 bits) when no Bits tag is present, per spec.md §4.1/§6's "bool without
// bits occupies one whole byte" rule: zero is false, any nonzero value is
// true.
func DecodeBool(r *bitio.Reader, tag any) (bool, error) {
	n := bitsFromTag(tag, 1)
	v, err := r.ReadUnsignedBits(n)
	if err != nil {
		return false, err
	}

	return v != 0, nil
}

// EncodeBool writes v as an N-bit integer, defaulting to a whole byte
// (8 bits) when no Bits tag is present: 1 for true, 0 for false.
func EncodeBool(w *bitio.Writer, v bool, tag any) error {
	n := bitsFromTag(tag, 1)
	val := uint64(0)
	if v {
		val = 1
	}

	return w.WriteUnsignedBits(val, n)
}

// NonzeroUint32 is a field-level type annotation selecting the "nonzero
// numeric" row of spec.md §4.1: same bytes as uint32, but decode fails with
// TryFromInt when the read value is zero.
type NonzeroUint32 uint32

// DecodeNonzeroUint32 reads a uint32 the same way DecodeUint32 does, but
// fails with TryFromInt if the decoded value is zero, per spec.md §4.1's
// nonzero numeric row.
func DecodeNonzeroUint32(r *bitio.Reader, order bitio.ByteOrder, tag any) (NonzeroUint32, error) {
	v, err := DecodeUint32(r, order, tag)
	if err != nil {
		return 0, err
	}
	if v == 0 {
		return 0, errs.TryFromInt("uint32", "NonzeroUint32", v)
	}

	return NonzeroUint32(v), nil
}

// EncodeNonzeroUint32 writes v the same way EncodeUint32 does.
func EncodeNonzeroUint32(w *bitio.Writer, v NonzeroUint32, order bitio.ByteOrder, tag any) error {
	return EncodeUint32(w, uint32(v), order, tag)
}
