package plan

import "github.com/bitwire-go/bitwire/errs"

func errFlexibleArrayNotLast(fieldName string) error {
	return errs.Wrap(errs.KindOther, errs.ErrFlexibleArrayNotLast, "field %q: flexible array member must be the last field", fieldName)
}

func errMissingDiscriminantType(typeName string) error {
	return errs.Wrap(errs.KindOther, errs.ErrMissingDiscriminantType, "enum %q: missing discriminant_type", typeName)
}

func errDiscriminantOverflow(variant string, value int64, bits int) error {
	return errs.Wrap(errs.KindOther, errs.ErrDiscriminantOverflow, "variant %q: discriminant %d does not fit in %d bits", variant, value, bits)
}
