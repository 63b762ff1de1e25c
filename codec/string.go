package codec

import (
	"unicode/utf8"

	"github.com/bitwire-go/bitwire/bitio"
	"github.com/bitwire-go/bitwire/errs"
)

// DecodeStringTagged reads exactly n bytes and validates them as UTF-8, per
// spec.md §4.1's `String` / `Tag(n)` row.
func DecodeStringTagged(r *bitio.Reader, n int) (string, error) {
	b, err := r.ReadBytes(n)
	if err != nil {
		return "", err
	}
	if !utf8.Valid(b) {
		return "", errs.New(errs.KindUTF8, "string field is not valid utf-8")
	}

	return string(b), nil
}

// EncodeStringTagged writes v's bytes verbatim (the tag/length was already
// written by the caller's prepended-tag field, per spec.md's composition
// rule).
func EncodeStringTagged(w *bitio.Writer, v string) error {
	return w.WriteBytes([]byte(v))
}

// DecodeStringUntagged reads every remaining byte in the stream and
// validates it as UTF-8, per spec.md §4.1's `String` / `Untagged` row.
func DecodeStringUntagged(r *bitio.Reader) (string, error) {
	n := int(r.BitsRemaining() / 8)
	return DecodeStringTagged(r, n)
}

// EncodeStringUntagged is identical to EncodeStringTagged: an untagged
// string's encoding is just its bytes, with no length prefix.
func EncodeStringUntagged(w *bitio.Writer, v string) error {
	return EncodeStringTagged(w, v)
}

// CString is a nul-terminated byte string, encoded as its bytes followed by
// a single zero byte, per spec.md §4.1's "C-string" row.
type CString string

// DecodeCString reads bytes until and including a zero byte.
func DecodeCString(r *bitio.Reader) (CString, error) {
	var buf []byte
	for {
		b, err := r.ReadByte()
		if err != nil {
			return "", err
		}
		if b == 0 {
			return CString(buf), nil
		}
		buf = append(buf, b)
	}
}

// EncodeCString writes v's bytes followed by a terminating zero byte. v
// must not contain an embedded zero byte.
func EncodeCString(w *bitio.Writer, v CString) error {
	for i := 0; i < len(v); i++ {
		if v[i] == 0 {
			return errs.New(errs.KindNulInString, "c-string contains embedded nul at byte %d", i)
		}
	}
	if err := w.WriteBytes([]byte(v)); err != nil {
		return err
	}

	return w.WriteByte(0)
}
