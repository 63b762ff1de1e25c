package derive

import (
	"reflect"

	"github.com/bitwire-go/bitwire/bitio"
	"github.com/bitwire-go/bitwire/codec"
)

func decodeString(r *bitio.Reader, tag any, t reflect.Type) (reflect.Value, error) {
	if n, ok := tag.(codec.Count); ok {
		v, err := codec.DecodeStringTagged(r, int(n))

		return reflect.ValueOf(v).Convert(t), err
	}

	v, err := codec.DecodeStringUntagged(r)

	return reflect.ValueOf(v).Convert(t), err
}

func encodeString(w *bitio.Writer, tag any, v string) error {
	if _, ok := tag.(codec.Count); ok {
		return codec.EncodeStringTagged(w, v)
	}

	return codec.EncodeStringUntagged(w, v)
}

// decodeArray decodes t.Len() consecutive elements, per spec.md §4.1's
// fixed array row. The field's own tag (e.g. Bits(N) for a packed-integer
// array) is propagated unchanged into every element's decode.
func decodeArray(r *bitio.Reader, order bitio.ByteOrder, ctx, tag any, t reflect.Type) (reflect.Value, error) {
	out := reflect.New(t).Elem()
	n := t.Len()

	for i := 0; i < n; i++ {
		ev, err := DecodeValue(r, order, ctx, tag, t.Elem())
		if err != nil {
			return reflect.Value{}, err
		}
		out.Index(i).Set(ev)
	}

	return out, nil
}

func encodeArray(w *bitio.Writer, order bitio.ByteOrder, ctx, tag any, v reflect.Value) error {
	n := v.Len()
	for i := 0; i < n; i++ {
		if err := EncodeValue(w, order, ctx, tag, v.Index(i)); err != nil {
			return err
		}
	}

	return nil
}

// decodeSlice implements both rows of spec.md §4.1's list strategies:
// codec.Count(n) reads exactly n elements (fixed-tag list); anything else
// (nil or codec.Untagged{}) reads elements until the stream is exhausted
// (flexible list).
func decodeSlice(r *bitio.Reader, order bitio.ByteOrder, ctx, tag any, t reflect.Type) (reflect.Value, error) {
	if n, ok := tag.(codec.Count); ok {
		out := reflect.MakeSlice(t, int(n), int(n))
		for i := 0; i < int(n); i++ {
			ev, err := DecodeValue(r, order, ctx, nil, t.Elem())
			if err != nil {
				return reflect.Value{}, err
			}
			out.Index(i).Set(ev)
		}

		return out, nil
	}

	out := reflect.MakeSlice(t, 0, 0)
	for r.BitsRemaining() > 0 {
		ev, err := DecodeValue(r, order, ctx, nil, t.Elem())
		if err != nil {
			return reflect.Value{}, err
		}
		out = reflect.Append(out, ev)
	}

	return out, nil
}

func encodeSlice(w *bitio.Writer, order bitio.ByteOrder, ctx, tag any, v reflect.Value) error {
	n := v.Len()
	for i := 0; i < n; i++ {
		if err := EncodeValue(w, order, ctx, nil, v.Index(i)); err != nil {
			return err
		}
	}

	return nil
}

// decodeMap implements spec.md §4.1's key-value map row: codec.Count(n)
// reads exactly n (K,V) pairs; anything else reads pairs until the stream
// is exhausted.
func decodeMap(r *bitio.Reader, order bitio.ByteOrder, ctx, tag any, t reflect.Type) (reflect.Value, error) {
	out := reflect.MakeMap(t)

	readPair := func() error {
		k, err := DecodeValue(r, order, ctx, nil, t.Key())
		if err != nil {
			return err
		}
		v, err := DecodeValue(r, order, ctx, nil, t.Elem())
		if err != nil {
			return err
		}
		out.SetMapIndex(k, v)

		return nil
	}

	if n, ok := tag.(codec.Count); ok {
		for i := 0; i < int(n); i++ {
			if err := readPair(); err != nil {
				return reflect.Value{}, err
			}
		}

		return out, nil
	}

	for r.BitsRemaining() > 0 {
		if err := readPair(); err != nil {
			return reflect.Value{}, err
		}
	}

	return out, nil
}

func encodeMap(w *bitio.Writer, order bitio.ByteOrder, ctx, tag any, v reflect.Value) error {
	iter := v.MapRange()
	for iter.Next() {
		if err := EncodeValue(w, order, ctx, nil, iter.Key()); err != nil {
			return err
		}
		if err := EncodeValue(w, order, ctx, nil, iter.Value()); err != nil {
			return err
		}
	}

	return nil
}
