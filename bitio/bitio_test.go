package bitio_test

import (
	"testing"

	"github.com/bitwire-go/bitwire/bitio"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBitRoundTrip(t *testing.T) {
	w := bitio.NewWriter()
	defer w.Release()

	require.NoError(t, w.WriteBit(true))
	require.NoError(t, w.WriteBit(false))
	require.NoError(t, w.WriteUnsignedBits(0b101, 3))
	require.NoError(t, w.Align())

	assert.Equal(t, uint64(8), w.BitPosition())
	assert.Equal(t, []byte{0b10101000}, w.Bytes())

	r := bitio.NewReader(w.Bytes())
	bit1, err := r.ReadBit()
	require.NoError(t, err)
	assert.True(t, bit1)

	bit2, err := r.ReadBit()
	require.NoError(t, err)
	assert.False(t, bit2)

	v, err := r.ReadUnsignedBits(3)
	require.NoError(t, err)
	assert.Equal(t, uint64(0b101), v)
}

func TestSignedBitsRoundTrip(t *testing.T) {
	tests := []int64{-4, -1, 0, 1, 3}
	for _, want := range tests {
		w := bitio.NewWriter()
		require.NoError(t, w.WriteSignedBits(want, 4))
		r := bitio.NewReader(w.Bytes())
		got, err := r.ReadSignedBits(4)
		require.NoError(t, err)
		assert.Equal(t, want, got)
		w.Release()
	}
}

func TestReadWriteUintByteOrder(t *testing.T) {
	tests := []struct {
		name  string
		order bitio.ByteOrder
		want  []byte
	}{
		{"big endian u32", bitio.BigEndian, []byte{0x01, 0x02, 0x03, 0x04}},
		{"little endian u32", bitio.LittleEndian, []byte{0x04, 0x03, 0x02, 0x01}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := bitio.NewWriter()
			require.NoError(t, w.WriteUint(0x01020304, 4, tt.order))
			assert.Equal(t, tt.want, w.Bytes())

			r := bitio.NewReader(w.Bytes())
			v, err := r.ReadUint(4, tt.order)
			require.NoError(t, err)
			assert.Equal(t, uint64(0x01020304), v)
			w.Release()
		})
	}
}

func TestUnalignedMultiByteRead(t *testing.T) {
	// A 3-bit prefix followed by a big-endian u16 that is not byte-aligned.
	w := bitio.NewWriter()
	require.NoError(t, w.WriteUnsignedBits(0b101, 3))
	require.NoError(t, w.WriteUint(0xABCD, 2, bitio.BigEndian))
	require.NoError(t, w.Align())

	r := bitio.NewReader(w.Bytes())
	prefix, err := r.ReadUnsignedBits(3)
	require.NoError(t, err)
	assert.Equal(t, uint64(0b101), prefix)

	v, err := r.ReadUint(2, bitio.BigEndian)
	require.NoError(t, err)
	assert.Equal(t, uint64(0xABCD), v)
	w.Release()
}

func TestReadPastEndReturnsIOError(t *testing.T) {
	r := bitio.NewReader([]byte{0xFF})
	_, err := r.ReadUnsignedBits(9)
	require.Error(t, err)
}

func TestAlignIsNoOpWhenAligned(t *testing.T) {
	w := bitio.NewWriter()
	require.NoError(t, w.WriteByte(0x42))
	before := w.BitPosition()
	require.NoError(t, w.Align())
	assert.Equal(t, before, w.BitPosition())
	w.Release()
}

func TestBitsRemaining(t *testing.T) {
	r := bitio.NewReader([]byte{0x00, 0x00})
	assert.Equal(t, uint64(16), r.BitsRemaining())
	_, _ = r.ReadUnsignedBits(5)
	assert.Equal(t, uint64(11), r.BitsRemaining())
}
