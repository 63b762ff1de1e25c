// Package codec implements the Decoder/Encoder contracts for every
// primitive type spec.md §4.1 lists, plus the Go realizations of Rust's
// shared-ownership wrappers (Option, Tuple2..Tuple4, Mutex/RWMutex). The
// derive engine (internal/derive) falls back to these whenever a field's
// type does not implement Decoder/Encoder itself.
package codec

import "github.com/bitwire-go/bitwire/bitio"

// Decoder is implemented by a type that knows how to read itself from a bit
// stream. ctx and tag carry call-scoped parameters (see bitwire.Unit for the
// default "no parameter" value); a pointer receiver mutates the value in
// place, the same convention encoding/json.Unmarshaler uses.
type Decoder interface {
	DecodeBitwire(r *bitio.Reader, order bitio.ByteOrder, ctx any, tag any) error
}

// Encoder is implemented by a type that knows how to write itself to a bit
// stream.
type Encoder interface {
	EncodeBitwire(w *bitio.Writer, order bitio.ByteOrder, ctx any, tag any) error
}

// Discriminable describes a value that can report its runtime discriminant
// without decoding or encoding it, per spec.md §4.1's "Discriminable"
// contract specialization. The derive engine does not call it: enum encode
// takes the discriminant from the variant registered for the value's type.
type Discriminable interface {
	Discriminant() int64
}

// Bits is a Tag value requesting an N-bit integer read/write instead of a
// type's full natural width.
type Bits int

// Count is a Tag value requesting exactly n elements be read (for a
// slice/map field whose strategy is tag=count rather than flexible_array).
type Count int

// Untagged is the marker Tag indicating the absence of a tag: used for
// prepended-tag writes (the field itself is written untagged once its tag
// has already been written by the caller) and flexible-array reads.
type Untagged struct{}
