package codec

import (
	"net"

	"github.com/bitwire-go/bitwire/bitio"
)

// IPv6 distinguishes a field that should encode as 8 big/little-endian
// uint16s (spec.md §4.1's "IPv6 address" row) from a plain net.IP field,
// which always means the 4-byte IPv4 form. Go's net.IP is a single type
// for both address families, so this wrapper is the field-level type
// annotation the derive engine switches on.
type IPv6 net.IP

// DecodeIPv4 reads 4 bytes into a net.IP, per spec.md §4.1's "IPv4 address"
// row.
func DecodeIPv4(r *bitio.Reader) (net.IP, error) {
	b, err := r.ReadBytes(4)
	if err != nil {
		return nil, err
	}

	return net.IPv4(b[0], b[1], b[2], b[3]).To4(), nil
}

// EncodeIPv4 writes v's 4-byte form.
func EncodeIPv4(w *bitio.Writer, v net.IP) error {
	v4 := v.To4()
	if v4 == nil {
		v4 = net.IPv4zero.To4()
	}

	return w.WriteBytes(v4)
}

// DecodeIPv6 reads 8 consecutive uint16s under order into an IPv6, per
// spec.md §4.1's "IPv6 address" row.
func DecodeIPv6(r *bitio.Reader, order bitio.ByteOrder) (IPv6, error) {
	out := make(net.IP, 16)
	for i := 0; i < 8; i++ {
		v, err := r.ReadUint(2, order)
		if err != nil {
			return nil, err
		}
		out[i*2] = byte(v >> 8)
		out[i*2+1] = byte(v)
	}

	return IPv6(out), nil
}

// EncodeIPv6 writes v as 8 consecutive uint16s under order.
func EncodeIPv6(w *bitio.Writer, order bitio.ByteOrder, v IPv6) error {
	v16 := net.IP(v).To16()
	for i := 0; i < 8; i++ {
		hi, lo := v16[i*2], v16[i*2+1]
		if err := w.WriteUint(uint64(hi)<<8|uint64(lo), 2, order); err != nil {
			return err
		}
	}

	return nil
}
