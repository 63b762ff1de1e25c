// Package bitio provides the bit-addressable stream primitives that every
// bitwire codec is built on: a monotonic bit cursor over a byte buffer,
// MSB-first bitfield reads/writes, and byte-order-aware multi-byte integer
// reads/writes. It plays the same role in this module that the teacher's
// endian package plays in mebo, generalized from whole-byte integers down to
// arbitrary 1..64 bit runs.
package bitio

import "encoding/binary"

// ByteOrder combines encoding/binary's ByteOrder and AppendByteOrder, the
// same combination the teacher's endian.EndianEngine exposes. It governs
// multi-byte primitive reads/writes only — single-bit and Bits(N) reads are
// always most-significant-bit-first, independent of ByteOrder.
type ByteOrder interface {
	binary.ByteOrder
	binary.AppendByteOrder
}

// BigEndian and LittleEndian are the two byte orders bitwire supports,
// backed directly by the standard library's implementations.
var (
	BigEndian    ByteOrder = binary.BigEndian
	LittleEndian ByteOrder = binary.LittleEndian
)
