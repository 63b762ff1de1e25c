package codec

import (
	"math"

	"github.com/bitwire-go/bitwire/bitio"
)

// DecodeFloat32 reads the IEEE-754 bits of a float32 under order.
func DecodeFloat32(r *bitio.Reader, order bitio.ByteOrder) (float32, error) {
	bits, err := r.ReadUint(4, order)
	if err != nil {
		return 0, err
	}

	return math.Float32frombits(uint32(bits)), nil
}

// EncodeFloat32 writes v's IEEE-754 bits under order.
func EncodeFloat32(w *bitio.Writer, v float32, order bitio.ByteOrder) error {
	return w.WriteUint(uint64(math.Float32bits(v)), 4, order)
}

// DecodeFloat64 reads the IEEE-754 bits of a float64 under order.
func DecodeFloat64(r *bitio.Reader, order bitio.ByteOrder) (float64, error) {
	bits, err := r.ReadUint(8, order)
	if err != nil {
		return 0, err
	}

	return math.Float64frombits(bits), nil
}

// EncodeFloat64 writes v's IEEE-754 bits under order.
func EncodeFloat64(w *bitio.Writer, v float64, order bitio.ByteOrder) error {
	return w.WriteUint(math.Float64bits(v), 8, order)
}
