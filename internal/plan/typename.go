package plan

import (
	"reflect"

	"github.com/bitwire-go/bitwire/errs"
)

// primitiveByName maps the Rust-flavored scalar type names used in tag
// directives (ptag(type:u32,...), discriminant_type=uint8) to their Go
// reflect.Type, accepting both the short Rust spelling and Go's own spelling
// so annotations read naturally either way.
var primitiveByName = map[string]reflect.Type{
	"u8":     reflect.TypeOf(uint8(0)),
	"uint8":  reflect.TypeOf(uint8(0)),
	"u16":    reflect.TypeOf(uint16(0)),
	"uint16": reflect.TypeOf(uint16(0)),
	"u32":    reflect.TypeOf(uint32(0)),
	"uint32": reflect.TypeOf(uint32(0)),
	"u64":    reflect.TypeOf(uint64(0)),
	"uint64": reflect.TypeOf(uint64(0)),
	"i8":     reflect.TypeOf(int8(0)),
	"int8":   reflect.TypeOf(int8(0)),
	"i16":    reflect.TypeOf(int16(0)),
	"int16":  reflect.TypeOf(int16(0)),
	"i32":    reflect.TypeOf(int32(0)),
	"int32":  reflect.TypeOf(int32(0)),
	"i64":    reflect.TypeOf(int64(0)),
	"int64":  reflect.TypeOf(int64(0)),
	"bool":   reflect.TypeOf(false),
}

// typeByName resolves a tag-language type name to its reflect.Type.
func typeByName(name string) (reflect.Type, error) {
	t, ok := primitiveByName[name]
	if !ok {
		return nil, errs.Wrap(errs.KindOther, errs.ErrInvalidTag, "unknown scalar type name %q", name)
	}

	return t, nil
}
