package derive

import (
	"reflect"

	"github.com/bitwire-go/bitwire/bitio"
	"github.com/bitwire-go/bitwire/internal/plan"
)

// decodeStructOrEnum routes a reflect.Struct or reflect.Interface decode to
// the record or enum path, depending on whether t was registered via
// RegisterEnum (spec.md §4.5) or is a plain struct (spec.md §4.1).
func decodeStructOrEnum(r *bitio.Reader, order bitio.ByteOrder, ctx, tag any, t reflect.Type) (reflect.Value, error) {
	exec, err := Warm(t)
	if err != nil {
		return reflect.Value{}, err
	}

	if exec.Plan.Enum != nil {
		return decodeEnum(r, order, ctx, exec.Plan.Enum, t)
	}

	return decodeRecordFields(r, order, ctx, exec.Plan.Record, t)
}

// encodeStructOrEnum routes a reflect.Struct encode. v's concrete type is
// checked against the variant registry first: a registered variant always
// encodes with its discriminant, whether it was reached through its owning
// interface field or (less commonly) a field declared with the concrete
// variant type directly. Anything else is a plain record.
func encodeStructOrEnum(w *bitio.Writer, order bitio.ByteOrder, ctx, tag any, v reflect.Value) error {
	t := v.Type()

	if ownerType, ok := plan.LookupVariantOwner(t); ok {
		exec, err := Warm(ownerType)
		if err != nil {
			return err
		}

		return encodeEnumVariant(w, order, ctx, exec.Plan.Enum, v)
	}

	exec, err := Warm(t)
	if err != nil {
		return err
	}

	return encodeRecordFields(w, order, ctx, exec.Plan.Record, v)
}
