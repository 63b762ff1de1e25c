package bitio

import (
	"io"

	"github.com/bitwire-go/bitwire/errs"
)

// Reader is a read-only cursor over a byte slice that tracks a bit offset
// rather than a byte offset. The cursor never seeks: every read advances
// BitPosition monotonically, matching the "no seeks" invariant in the
// codec's bit-stream contract.
type Reader struct {
	data []byte
	pos  uint64 // absolute bit offset from the start of data
}

// NewReader wraps data for bit-level reading. data is not copied; the
// caller must not mutate it while the Reader is in use.
func NewReader(data []byte) *Reader {
	return &Reader{data: data}
}

// BitPosition returns the number of bits consumed so far.
func (r *Reader) BitPosition() uint64 { return r.pos }

// BitsRemaining returns the number of unread bits left in the stream.
func (r *Reader) BitsRemaining() uint64 {
	total := uint64(len(r.data)) * 8
	if r.pos >= total {
		return 0
	}

	return total - r.pos
}

// ReadBit reads a single bit, most-significant-bit first within its byte.
func (r *Reader) ReadBit() (bool, error) {
	if r.BitsRemaining() < 1 {
		return false, errs.IO(io.ErrUnexpectedEOF, "read bit at offset %d: end of stream", r.pos)
	}

	byteIdx := r.pos / 8
	bitIdx := 7 - (r.pos % 8)
	bit := (r.data[byteIdx]>>bitIdx)&1 == 1
	r.pos++

	return bit, nil
}

// ReadUnsignedBits reads n (1..=64) bits as an unsigned integer,
// most-significant-bit first, independent of ByteOrder.
func (r *Reader) ReadUnsignedBits(n int) (uint64, error) {
	if n < 1 || n > 64 {
		panic("bitio: ReadUnsignedBits: n must be in [1, 64]")
	}
	if r.BitsRemaining() < uint64(n) {
		return 0, errs.IO(io.ErrUnexpectedEOF, "read %d bits at offset %d: end of stream", n, r.pos)
	}

	var v uint64
	for range n {
		bit, _ := r.ReadBit() // bounds already checked above
		v <<= 1
		if bit {
			v |= 1
		}
	}

	return v, nil
}

// ReadSignedBits reads n (1..=64) bits as a two's-complement signed
// integer, sign-extended to int64.
func (r *Reader) ReadSignedBits(n int) (int64, error) {
	v, err := r.ReadUnsignedBits(n)
	if err != nil {
		return 0, err
	}

	if n < 64 && v&(1<<(n-1)) != 0 {
		v |= ^uint64(0) << n
	}

	return int64(v), nil
}

// ReadByte reads a single byte, regardless of the current bit alignment.
func (r *Reader) ReadByte() (byte, error) {
	v, err := r.ReadUnsignedBits(8)

	return byte(v), err
}

// ReadBytes reads n bytes, regardless of the current bit alignment.
func (r *Reader) ReadBytes(n int) ([]byte, error) {
	out := make([]byte, n)
	for i := range out {
		b, err := r.ReadByte()
		if err != nil {
			return nil, err
		}
		out[i] = b
	}

	return out, nil
}

// ReadUint reads a width-byte (1, 2, 4, or 8) unsigned integer under the
// given ByteOrder. Byte order governs only how the width bytes combine into
// a value, not the bit-level read direction, so this works whether or not
// the cursor is currently byte-aligned.
func (r *Reader) ReadUint(width int, order ByteOrder) (uint64, error) {
	if width == 1 {
		b, err := r.ReadByte()

		return uint64(b), err
	}

	bytes, err := r.ReadBytes(width)
	if err != nil {
		return 0, err
	}

	switch width {
	case 2:
		return uint64(order.Uint16(bytes)), nil
	case 4:
		return uint64(order.Uint32(bytes)), nil
	case 8:
		return order.Uint64(bytes), nil
	default:
		panic("bitio: ReadUint: width must be 1, 2, 4, or 8")
	}
}

// Align skips forward to the next byte boundary, discarding any padding
// bits. It is a no-op if the cursor is already byte-aligned.
func (r *Reader) Align() {
	if rem := r.pos % 8; rem != 0 {
		r.pos += 8 - rem
	}
}
