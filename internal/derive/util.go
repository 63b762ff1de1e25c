package derive

import (
	"reflect"

	"github.com/bitwire-go/bitwire/errs"
)

// reflectToInt64 extracts a plain int64 from a decoded discriminant or
// prepended-tag value, whatever integer Kind it happens to be.
func reflectToInt64(v reflect.Value) (int64, error) {
	switch v.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return v.Int(), nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return int64(v.Uint()), nil
	default:
		return 0, errs.New(errs.KindTagConvert, "value of kind %s is not an integer", v.Kind())
	}
}
