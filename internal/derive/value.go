package derive

import (
	"net"
	"reflect"
	"strings"

	"github.com/bitwire-go/bitwire/bitio"
	"github.com/bitwire-go/bitwire/codec"
	"github.com/bitwire-go/bitwire/errs"
)

var (
	decoderType = reflect.TypeOf((*codec.Decoder)(nil)).Elem()
	encoderType = reflect.TypeOf((*codec.Encoder)(nil)).Elem()

	cstringType    = reflect.TypeOf(codec.CString(""))
	netIPType      = reflect.TypeOf(net.IP(nil))
	ipv6Type       = reflect.TypeOf(codec.IPv6(nil))
	nonzeroU32Type = reflect.TypeOf(codec.NonzeroUint32(0))
)

// DecodeValue decodes one value of type t from r, dispatching in order to:
// a user Decoder implementation, a codec special-cased type, or the
// type's Kind-based primitive/aggregate handling. ctx and tag are threaded
// through unchanged, per spec.md §3's call signature.
func DecodeValue(r *bitio.Reader, order bitio.ByteOrder, ctx, tag any, t reflect.Type) (reflect.Value, error) {
	if reflect.PointerTo(t).Implements(decoderType) {
		ptr := reflect.New(t)
		if err := ptr.Interface().(codec.Decoder).DecodeBitwire(r, order, ctx, tag); err != nil {
			return reflect.Value{}, err
		}

		return ptr.Elem(), nil
	}

	switch t {
	case cstringType:
		v, err := codec.DecodeCString(r)

		return reflect.ValueOf(v), err
	case netIPType:
		v, err := codec.DecodeIPv4(r)

		return reflect.ValueOf(v), err
	case ipv6Type:
		v, err := codec.DecodeIPv6(r, order)

		return reflect.ValueOf(v), err
	case nonzeroU32Type:
		v, err := codec.DecodeNonzeroUint32(r, order, tag)

		return reflect.ValueOf(v), err
	}

	if out, ok, err := decodeGeneric(r, order, ctx, tag, t); ok {
		return out, err
	}

	switch t.Kind() {
	case reflect.Bool:
		v, err := codec.DecodeBool(r, tag)

		return reflect.ValueOf(v).Convert(t), err
	case reflect.Uint8:
		v, err := codec.DecodeUint8(r, tag)

		return reflect.ValueOf(v).Convert(t), err
	case reflect.Uint16:
		v, err := codec.DecodeUint16(r, order, tag)

		return reflect.ValueOf(v).Convert(t), err
	case reflect.Uint32:
		v, err := codec.DecodeUint32(r, order, tag)

		return reflect.ValueOf(v).Convert(t), err
	case reflect.Uint64, reflect.Uint:
		v, err := codec.DecodeUint64(r, order, tag)

		return reflect.ValueOf(v).Convert(t), err
	case reflect.Int8:
		v, err := codec.DecodeInt8(r, tag)

		return reflect.ValueOf(v).Convert(t), err
	case reflect.Int16:
		v, err := codec.DecodeInt16(r, order, tag)

		return reflect.ValueOf(v).Convert(t), err
	case reflect.Int32:
		v, err := codec.DecodeInt32(r, order, tag)

		return reflect.ValueOf(v).Convert(t), err
	case reflect.Int64, reflect.Int:
		v, err := codec.DecodeInt64(r, order, tag)

		return reflect.ValueOf(v).Convert(t), err
	case reflect.Float32:
		v, err := codec.DecodeFloat32(r, order)

		return reflect.ValueOf(v).Convert(t), err
	case reflect.Float64:
		v, err := codec.DecodeFloat64(r, order)

		return reflect.ValueOf(v).Convert(t), err
	case reflect.String:
		return decodeString(r, tag, t)
	case reflect.Array:
		return decodeArray(r, order, ctx, tag, t)
	case reflect.Slice:
		return decodeSlice(r, order, ctx, tag, t)
	case reflect.Map:
		return decodeMap(r, order, ctx, tag, t)
	case reflect.Pointer:
		inner, err := DecodeValue(r, order, ctx, tag, t.Elem())
		if err != nil {
			return reflect.Value{}, err
		}
		out := reflect.New(t.Elem())
		out.Elem().Set(inner)

		return out, nil
	case reflect.Struct:
		return decodeStructOrEnum(r, order, ctx, tag, t)
	case reflect.Interface:
		return decodeStructOrEnum(r, order, ctx, tag, t)
	default:
		return reflect.Value{}, errs.Wrap(errs.KindOther, errs.ErrOther, "no decoder for kind %s (type %s)", t.Kind(), t)
	}
}

// EncodeValue encodes v, dispatching the same way DecodeValue does.
func EncodeValue(w *bitio.Writer, order bitio.ByteOrder, ctx, tag any, v reflect.Value) error {
	t := v.Type()

	if reflect.PointerTo(t).Implements(encoderType) {
		ptr := reflect.New(t)
		ptr.Elem().Set(v)

		return ptr.Interface().(codec.Encoder).EncodeBitwire(w, order, ctx, tag)
	}
	if t.Implements(encoderType) {
		return v.Interface().(codec.Encoder).EncodeBitwire(w, order, ctx, tag)
	}

	switch t {
	case cstringType:
		return codec.EncodeCString(w, v.Interface().(codec.CString))
	case netIPType:
		return codec.EncodeIPv4(w, v.Interface().(net.IP))
	case ipv6Type:
		return codec.EncodeIPv6(w, order, v.Interface().(codec.IPv6))
	case nonzeroU32Type:
		return codec.EncodeNonzeroUint32(w, v.Interface().(codec.NonzeroUint32), order, tag)
	}

	if ok, err := encodeGeneric(w, order, ctx, tag, v); ok {
		return err
	}

	switch t.Kind() {
	case reflect.Bool:
		return codec.EncodeBool(w, v.Bool(), tag)
	case reflect.Uint8:
		return codec.EncodeUint8(w, uint8(v.Uint()), tag)
	case reflect.Uint16:
		return codec.EncodeUint16(w, uint16(v.Uint()), order, tag)
	case reflect.Uint32:
		return codec.EncodeUint32(w, uint32(v.Uint()), order, tag)
	case reflect.Uint64, reflect.Uint:
		return codec.EncodeUint64(w, v.Uint(), order, tag)
	case reflect.Int8:
		return codec.EncodeInt8(w, int8(v.Int()), tag)
	case reflect.Int16:
		return codec.EncodeInt16(w, int16(v.Int()), order, tag)
	case reflect.Int32:
		return codec.EncodeInt32(w, int32(v.Int()), order, tag)
	case reflect.Int64, reflect.Int:
		return codec.EncodeInt64(w, v.Int(), order, tag)
	case reflect.Float32:
		return codec.EncodeFloat32(w, float32(v.Float()), order)
	case reflect.Float64:
		return codec.EncodeFloat64(w, v.Float(), order)
	case reflect.String:
		return encodeString(w, tag, v.String())
	case reflect.Array:
		return encodeArray(w, order, ctx, tag, v)
	case reflect.Slice:
		return encodeSlice(w, order, ctx, tag, v)
	case reflect.Map:
		return encodeMap(w, order, ctx, tag, v)
	case reflect.Pointer:
		return EncodeValue(w, order, ctx, tag, v.Elem())
	case reflect.Struct:
		return encodeStructOrEnum(w, order, ctx, tag, v)
	case reflect.Interface:
		return encodeStructOrEnum(w, order, ctx, tag, v.Elem())
	default:
		return errs.Wrap(errs.KindOther, errs.ErrOther, "no encoder for kind %s (type %s)", t.Kind(), t)
	}
}

// isGenericInstance reports whether t is an instantiation of the named
// generic type from the codec package (e.g. "Option[uint32]" for the
// generic "Option").
func isGenericInstance(t reflect.Type, pkgBase string) bool {
	return t.PkgPath() == "github.com/bitwire-go/bitwire/codec" && strings.HasPrefix(t.Name(), pkgBase+"[")
}
