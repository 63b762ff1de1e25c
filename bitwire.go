// Package bitwire is a declarative, bit-addressable binary codec: tag a
// struct's fields with `bitwire:"..."` directives and Decode/Encode derive
// their wire layout through runtime reflection, the same way the teacher's
// metric codecs are driven by a small closed set of format constants rather
// than hand-written marshal code per type.
package bitwire

import (
	"reflect"

	"github.com/bitwire-go/bitwire/bitio"
	"github.com/bitwire-go/bitwire/internal/derive"
	"github.com/bitwire-go/bitwire/internal/plan"
)

// Unit is the default Ctx/Tag value for callers that need neither: a
// zero-sized struct, the Go analogue of spec.md §3's "unit value" default.
type Unit struct{}

// Variant describes one sum-type arm when registering with RegisterEnum: a
// zero value of the concrete payload type plus its wire discriminant.
type Variant struct {
	Sample       any
	Discriminant int64
}

// EnumOptions configures RegisterEnum: the wire width/type of the
// discriminant and the ordered list of variants that implement the sum
// type's sealed interface.
type EnumOptions struct {
	// DiscriminantType is the Go type the discriminant decodes/encodes as
	// when Bits is zero (e.g. reflect.TypeOf(uint8(0))).
	DiscriminantType reflect.Type

	// Bits, when non-zero, packs the discriminant into that many bits
	// instead of encoding DiscriminantType at its natural width.
	Bits int

	Variants []Variant
}

// RegisterEnum declares T (a sealed interface) as a sum type with the given
// variants, so Decode[T]/Encode[T] can dispatch through internal/plan's
// EnumPlan. Go cannot discover an interface's implementers by reflection, so
// every variant must be listed explicitly; call this once at package init
// time, typically as a package-level var assigned from its return value.
func RegisterEnum[T any](opts EnumOptions) struct{} {
	var zero T
	interfaceType := reflect.TypeOf(&zero).Elem()

	spec := plan.EnumSpec{
		InterfaceType:    interfaceType,
		DiscriminantType: opts.DiscriminantType,
		Bits:             opts.Bits,
		HasBits:          opts.Bits > 0,
	}

	for _, variant := range opts.Variants {
		spec.Variants = append(spec.Variants, plan.VariantSpec{
			Name:            reflect.TypeOf(variant.Sample).Name(),
			Type:            reflect.TypeOf(variant.Sample),
			Discriminant:    variant.Discriminant,
			HasDiscriminant: true,
		})
	}

	plan.RegisterEnumSpec(spec)

	return struct{}{}
}

// Decode reads one value of T from r under order. ctx is passed through to
// every nested codec; tag is applied to T itself only (a record or enum
// ignores it, and each of its fields gets the tag its own strategy selects).
func Decode[T any](r *bitio.Reader, order bitio.ByteOrder, ctx any, tag any) (T, error) {
	var zero T
	t := reflect.TypeOf(&zero).Elem()

	v, err := derive.DecodeValue(r, order, ctx, tag, t)
	if err != nil {
		return zero, err
	}

	return v.Interface().(T), nil
}

// Encode writes v to w under order, passing ctx and tag the same way Decode
// does.
func Encode[T any](v T, w *bitio.Writer, order bitio.ByteOrder, ctx any, tag any) error {
	return derive.EncodeValue(w, order, ctx, tag, reflect.ValueOf(v))
}

// DecodeBytes decodes T from a standalone byte slice with Unit{} ctx/tag,
// the no-frills entry point spec.md §6 calls out for "decode a whole
// message from a []byte".
func DecodeBytes[T any](data []byte, order bitio.ByteOrder) (T, error) {
	return DecodeBytesCtx[T](data, order, Unit{}, Unit{})
}

// DecodeBytesCtx is DecodeBytes with an explicit ctx and tag.
func DecodeBytesCtx[T any](data []byte, order bitio.ByteOrder, ctx any, tag any) (T, error) {
	r := bitio.NewReader(data)

	return Decode[T](r, order, ctx, tag)
}

// EncodeBytes encodes v into a freshly allocated byte slice with Unit{}
// ctx/tag, padding the final byte with zero bits per spec.md §6.
func EncodeBytes[T any](v T, order bitio.ByteOrder) ([]byte, error) {
	return EncodeBytesCtx[T](v, order, Unit{}, Unit{})
}

// EncodeBytesCtx is EncodeBytes with an explicit ctx and tag.
func EncodeBytesCtx[T any](v T, order bitio.ByteOrder, ctx any, tag any) ([]byte, error) {
	w := bitio.NewWriter()
	defer w.Release()

	if err := Encode(v, w, order, ctx, tag); err != nil {
		return nil, err
	}
	if err := w.Align(); err != nil {
		return nil, err
	}

	out := make([]byte, len(w.Bytes()))
	copy(out, w.Bytes())

	return out, nil
}

// Warnings returns any non-fatal diagnostics (currently only duplicate enum
// discriminants) collected while building T's plan, warming it first if
// necessary.
func Warnings[T any]() ([]string, error) {
	var zero T

	return derive.Warnings(reflect.TypeOf(&zero).Elem())
}
