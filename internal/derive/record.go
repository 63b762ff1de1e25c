package derive

import (
	"reflect"

	"github.com/bitwire-go/bitwire/bitio"
	"github.com/bitwire-go/bitwire/codec"
	"github.com/bitwire-go/bitwire/internal/plan"
)

// decodeRecord decodes t (a plain struct type) field by field according to
// its RecordPlan, building the plan on first use via Warm.
func decodeRecord(r *bitio.Reader, order bitio.ByteOrder, ctx any, t reflect.Type) (reflect.Value, error) {
	exec, err := Warm(t)
	if err != nil {
		return reflect.Value{}, err
	}

	return decodeRecordFields(r, order, ctx, exec.Plan.Record, t)
}

// decodeRecordFields runs rp against a freshly allocated value of t. It is
// shared between plain-record decoding and enum-variant payload decoding,
// since a variant's fields are themselves just a RecordPlan.
func decodeRecordFields(r *bitio.Reader, order bitio.ByteOrder, ctx any, rp *plan.RecordPlan, t reflect.Type) (reflect.Value, error) {
	out := reflect.New(t).Elem()

	for _, f := range rp.Fields {
		if f.SkipDecode {
			continue
		}

		var tag any

		switch f.Strategy {
		case plan.StrategyBits:
			tag = codec.Bits(f.Bits)
		case plan.StrategyFlexibleArray:
			tag = codec.Untagged{}
		case plan.StrategyExternalTag:
			n, err := f.TagExpr.Eval(out)
			if err != nil {
				return reflect.Value{}, err
			}
			tag = codec.Count(n)
		case plan.StrategyPrependedTag:
			tagVal, err := DecodeValue(r, order, ctx, nil, f.PTagType)
			if err != nil {
				return reflect.Value{}, err
			}
			n, err := reflectToInt64(tagVal)
			if err != nil {
				return reflect.Value{}, err
			}
			tag = codec.Count(n)
		}

		fv := out.Field(f.Index)
		ev, err := DecodeValue(r, order, ctx, tag, fv.Type())
		if err != nil {
			return reflect.Value{}, err
		}
		fv.Set(ev)
	}

	return out, nil
}

// encodeRecord encodes v (a plain struct value) field by field according to
// its RecordPlan.
func encodeRecord(w *bitio.Writer, order bitio.ByteOrder, ctx any, v reflect.Value) error {
	exec, err := Warm(v.Type())
	if err != nil {
		return err
	}

	return encodeRecordFields(w, order, ctx, exec.Plan.Record, v)
}

// encodeRecordFields mirrors decodeRecordFields for Encode, shared between
// plain records and enum variant payloads.
func encodeRecordFields(w *bitio.Writer, order bitio.ByteOrder, ctx any, rp *plan.RecordPlan, v reflect.Value) error {
	for _, f := range rp.Fields {
		if f.SkipEncode {
			continue
		}

		fv := v.Field(f.Index)
		toWrite := fv

		// A prepended-tag field's write expression is its ptag value=, written
		// as the tag below; the field itself is always written as stored.
		if f.HasWriteValue && f.Strategy != plan.StrategyPrependedTag {
			n, err := f.WriteValue.Eval(v)
			if err != nil {
				return err
			}
			toWrite = reflect.ValueOf(n).Convert(fv.Type())
		}

		switch f.Strategy {
		case plan.StrategyBits:
			if err := EncodeValue(w, order, ctx, codec.Bits(f.Bits), toWrite); err != nil {
				return err
			}
		case plan.StrategyFlexibleArray:
			if err := EncodeValue(w, order, ctx, codec.Untagged{}, toWrite); err != nil {
				return err
			}
		case plan.StrategyExternalTag:
			// The tag's value already lives in a sibling field, which
			// encodes itself in its own declaration-order turn; this
			// field just writes its natural contents untagged.
			if err := EncodeValue(w, order, ctx, nil, toWrite); err != nil {
				return err
			}
		case plan.StrategyPrependedTag:
			n, err := f.PTagExpr.Eval(v)
			if err != nil {
				return err
			}
			tagVal := reflect.ValueOf(n).Convert(f.PTagType)
			if err := EncodeValue(w, order, ctx, nil, tagVal); err != nil {
				return err
			}
			if err := EncodeValue(w, order, ctx, nil, toWrite); err != nil {
				return err
			}
		default:
			if err := EncodeValue(w, order, ctx, nil, toWrite); err != nil {
				return err
			}
		}
	}

	return nil
}
