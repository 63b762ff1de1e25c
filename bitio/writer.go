package bitio

import "github.com/bitwire-go/bitwire/internal/pool"

// Writer is a bit-addressable sink that accumulates bits into a pooled byte
// buffer, growing it the same amortized way internal/pool.Buffer does for
// the teacher's byte-oriented encoders. Every write advances BitPosition
// monotonically; there is no way to rewind.
type Writer struct {
	buf *pool.Buffer
	pos uint64 // total bits written
}

// NewWriter creates a Writer backed by a buffer from the package pool.
func NewWriter() *Writer {
	return &Writer{buf: pool.Get()}
}

// BitPosition returns the number of bits written so far.
func (w *Writer) BitPosition() uint64 { return w.pos }

// ensureByte grows the buffer until it holds at least idx+1 bytes, zeroing
// any newly added bytes. Buffers recycled from the pool may still contain
// bytes from a prior use, so this is not optional.
func (w *Writer) ensureByte(idx int) {
	for w.buf.Len() <= idx {
		w.buf.ExtendOrGrow(1)
		w.buf.Bytes()[w.buf.Len()-1] = 0
	}
}

// WriteBit writes a single bit, most-significant-bit first within its byte.
func (w *Writer) WriteBit(bit bool) error {
	byteIdx := int(w.pos / 8)
	bitIdx := 7 - (w.pos % 8)
	w.ensureByte(byteIdx)

	if bit {
		w.buf.Bytes()[byteIdx] |= 1 << bitIdx
	}
	w.pos++

	return nil
}

// WriteUnsignedBits writes the low n (1..=64) bits of v, most-significant
// bit first, independent of ByteOrder.
func (w *Writer) WriteUnsignedBits(v uint64, n int) error {
	if n < 1 || n > 64 {
		panic("bitio: WriteUnsignedBits: n must be in [1, 64]")
	}

	for i := n - 1; i >= 0; i-- {
		if err := w.WriteBit((v>>i)&1 == 1); err != nil {
			return err
		}
	}

	return nil
}

// WriteSignedBits writes the low n (1..=64) bits of v's two's-complement
// representation.
func (w *Writer) WriteSignedBits(v int64, n int) error {
	return w.WriteUnsignedBits(uint64(v)&bitsMask(n), n)
}

func bitsMask(n int) uint64 {
	if n >= 64 {
		return ^uint64(0)
	}

	return (uint64(1) << n) - 1
}

// WriteByte writes a single byte, regardless of the current bit alignment.
func (w *Writer) WriteByte(b byte) error {
	return w.WriteUnsignedBits(uint64(b), 8)
}

// WriteBytes writes each byte of data in order.
func (w *Writer) WriteBytes(data []byte) error {
	for _, b := range data {
		if err := w.WriteByte(b); err != nil {
			return err
		}
	}

	return nil
}

// WriteUint writes v as a width-byte (1, 2, 4, or 8) unsigned integer under
// the given ByteOrder.
func (w *Writer) WriteUint(v uint64, width int, order ByteOrder) error {
	if width == 1 {
		return w.WriteByte(byte(v))
	}

	tmp := make([]byte, width)
	switch width {
	case 2:
		order.PutUint16(tmp, uint16(v))
	case 4:
		order.PutUint32(tmp, uint32(v))
	case 8:
		order.PutUint64(tmp, v)
	default:
		panic("bitio: WriteUint: width must be 1, 2, 4, or 8")
	}

	return w.WriteBytes(tmp)
}

// Align pads the stream with zero bits up to the next byte boundary.
func (w *Writer) Align() error {
	for w.pos%8 != 0 {
		if err := w.WriteBit(false); err != nil {
			return err
		}
	}

	return nil
}

// Bytes returns the bytes accumulated so far. Any trailing partial byte is
// already zero-padded in its unwritten low bits, since ensureByte zeroes
// every byte before individual bits are set. The returned slice aliases the
// writer's internal buffer and is invalidated by the next write.
func (w *Writer) Bytes() []byte {
	return w.buf.Bytes()
}

// Release returns the writer's buffer to the pool. The Writer must not be
// used again afterward.
func (w *Writer) Release() {
	pool.Put(w.buf)
	w.buf = nil
}
