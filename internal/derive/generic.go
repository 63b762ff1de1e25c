package derive

import (
	"reflect"

	"github.com/bitwire-go/bitwire/bitio"
	"github.com/bitwire-go/bitwire/codec"
)

// decodeGeneric handles the codec package's generic shared-ownership and
// composite wrappers (Option, Tuple2..Tuple4, Mutex, RWMutex), which are
// plain exported-field structs rather than types implementing Decoder, so
// they are matched by generic-instantiation name rather than by interface.
func decodeGeneric(r *bitio.Reader, order bitio.ByteOrder, ctx, tag any, t reflect.Type) (reflect.Value, bool, error) {
	switch {
	case isGenericInstance(t, "Option"):
		v, err := decodeOption(r, order, ctx, tag, t)

		return v, true, err
	case isGenericInstance(t, "Tuple2"), isGenericInstance(t, "Tuple3"), isGenericInstance(t, "Tuple4"):
		v, err := decodeTuple(r, order, ctx, t)

		return v, true, err
	case isGenericInstance(t, "Mutex"), isGenericInstance(t, "RWMutex"):
		v, err := decodeMutexLike(r, order, ctx, tag, t)

		return v, true, err
	default:
		return reflect.Value{}, false, nil
	}
}

// encodeGeneric mirrors decodeGeneric for Encode.
func encodeGeneric(w *bitio.Writer, order bitio.ByteOrder, ctx, tag any, v reflect.Value) (bool, error) {
	t := v.Type()

	switch {
	case isGenericInstance(t, "Option"):
		return true, encodeOption(w, order, ctx, v)
	case isGenericInstance(t, "Tuple2"), isGenericInstance(t, "Tuple3"), isGenericInstance(t, "Tuple4"):
		return true, encodeTuple(w, order, ctx, v)
	case isGenericInstance(t, "Mutex"), isGenericInstance(t, "RWMutex"):
		// The wrapped Value is encoded directly: this path takes neither the
		// lock nor the read lock and does not consult the poison flag. Only
		// WithLock/WithRLock lock the value and report poisoning.
		return true, EncodeValue(w, order, ctx, tag, v.FieldByName("Value"))
	default:
		return false, nil
	}
}

// coerceTagBool interprets tag as the "bool-ish" presence indicator an
// Option field's strategy supplies, per spec.md §4.1's Option<T> row.
func coerceTagBool(tag any) bool {
	switch v := tag.(type) {
	case bool:
		return v
	case codec.Bits:
		return v != 0
	case codec.Count:
		return v != 0
	case int:
		return v != 0
	case int64:
		return v != 0
	default:
		return false
	}
}

func decodeOption(r *bitio.Reader, order bitio.ByteOrder, ctx, tag any, t reflect.Type) (reflect.Value, error) {
	out := reflect.New(t).Elem()
	present := coerceTagBool(tag)
	out.FieldByName("Present").SetBool(present)

	if present {
		valueField := out.FieldByName("Value")
		inner, err := DecodeValue(r, order, ctx, nil, valueField.Type())
		if err != nil {
			return reflect.Value{}, err
		}
		valueField.Set(inner)
	}

	return out, nil
}

func encodeOption(w *bitio.Writer, order bitio.ByteOrder, ctx any, v reflect.Value) error {
	if !v.FieldByName("Present").Bool() {
		return nil
	}

	return EncodeValue(w, order, ctx, nil, v.FieldByName("Value"))
}

func decodeTuple(r *bitio.Reader, order bitio.ByteOrder, ctx any, t reflect.Type) (reflect.Value, error) {
	out := reflect.New(t).Elem()
	for i := 0; i < t.NumField(); i++ {
		inner, err := DecodeValue(r, order, ctx, nil, t.Field(i).Type)
		if err != nil {
			return reflect.Value{}, err
		}
		out.Field(i).Set(inner)
	}

	return out, nil
}

func encodeTuple(w *bitio.Writer, order bitio.ByteOrder, ctx any, v reflect.Value) error {
	for i := 0; i < v.NumField(); i++ {
		if err := EncodeValue(w, order, ctx, nil, v.Field(i)); err != nil {
			return err
		}
	}

	return nil
}

func decodeMutexLike(r *bitio.Reader, order bitio.ByteOrder, ctx, tag any, t reflect.Type) (reflect.Value, error) {
	out := reflect.New(t).Elem()
	valueField := out.FieldByName("Value")
	inner, err := DecodeValue(r, order, ctx, tag, valueField.Type())
	if err != nil {
		return reflect.Value{}, err
	}
	valueField.Set(inner)

	return out, nil
}
