package derive

import (
	"reflect"

	"github.com/bitwire-go/bitwire/bitio"
	"github.com/bitwire-go/bitwire/errs"
	"github.com/bitwire-go/bitwire/internal/plan"
)

// decodeEnum reads a discriminant from r, dispatches to the matching
// variant's RecordPlan, and wraps the decoded payload back into t (the
// registered interface type), per spec.md §4.5.
func decodeEnum(r *bitio.Reader, order bitio.ByteOrder, ctx any, ep *plan.EnumPlan, t reflect.Type) (reflect.Value, error) {
	discVal, err := decodeDiscriminant(r, order, ep)
	if err != nil {
		return reflect.Value{}, err
	}

	variant, ok := ep.VariantForValue(discVal)
	if !ok {
		return reflect.Value{}, errs.UnknownDiscriminant(discVal)
	}

	payload, err := decodeRecordFields(r, order, ctx, variant.Fields, variant.Type)
	if err != nil {
		return reflect.Value{}, err
	}

	out := reflect.New(t).Elem()
	out.Set(payload)

	return out, nil
}

// encodeEnumVariant looks up v's owning enum plan by its concrete variant
// type and writes the discriminant followed by the variant's payload.
func encodeEnumVariant(w *bitio.Writer, order bitio.ByteOrder, ctx any, ep *plan.EnumPlan, v reflect.Value) error {
	variant, ok := variantForType(ep, v.Type())
	if !ok {
		return errs.New(errs.KindOther, "type %s is not a registered variant", v.Type())
	}

	if err := encodeDiscriminant(w, order, ep, variant.Discriminant); err != nil {
		return err
	}

	return encodeRecordFields(w, order, ctx, variant.Fields, v)
}

func variantForType(ep *plan.EnumPlan, t reflect.Type) (plan.Variant, bool) {
	for _, variant := range ep.Variants {
		if variant.Type == t {
			return variant, true
		}
	}

	return plan.Variant{}, false
}

// decodeDiscriminant reads ep's discriminant, either as a packed bitfield
// (HasBits) or as a full value of DiscriminantType.
func decodeDiscriminant(r *bitio.Reader, order bitio.ByteOrder, ep *plan.EnumPlan) (int64, error) {
	if ep.HasBits {
		u, err := r.ReadUnsignedBits(ep.Bits)

		return int64(u), err
	}

	v, err := DecodeValue(r, order, nil, nil, ep.DiscriminantType)
	if err != nil {
		return 0, err
	}

	return reflectToInt64(v)
}

func encodeDiscriminant(w *bitio.Writer, order bitio.ByteOrder, ep *plan.EnumPlan, disc int64) error {
	if ep.HasBits {
		return w.WriteUnsignedBits(uint64(disc), ep.Bits)
	}

	discVal := reflect.ValueOf(disc).Convert(ep.DiscriminantType)

	return EncodeValue(w, order, nil, nil, discVal)
}
