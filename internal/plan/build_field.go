package plan

import (
	"reflect"

	"github.com/bitwire-go/bitwire/internal/attr"
)

// buildField resolves one struct field's bitwire tag into a plan.Field.
func buildField(index int, sf reflect.StructField) (Field, error) {
	parsed, err := attr.ParseField(sf.Tag.Get("bitwire"))
	if err != nil {
		return Field{}, err
	}

	f := Field{
		Index:         index,
		Name:          sf.Name,
		Type:          sf.Type,
		Strategy:      StrategyPlain,
		WriteValue:    parsed.WriteValue,
		HasWriteValue: parsed.HasWriteValue,
		SkipEncode:    parsed.SkipEncode,
		SkipDecode:    parsed.SkipDecode,
	}

	switch {
	case parsed.HasBits:
		f.Strategy = StrategyBits
		f.Bits = parsed.Bits
	case parsed.Flex:
		f.Strategy = StrategyFlexibleArray
	case parsed.HasTag:
		f.Strategy = StrategyExternalTag
		f.TagExpr = parsed.Tag
	case parsed.HasPTag:
		f.Strategy = StrategyPrependedTag
		ptagType, err := typeByName(parsed.PTagType)
		if err != nil {
			return Field{}, err
		}
		f.PTagType = ptagType
		f.PTagExpr = parsed.PTagValue
	}

	return f, nil
}
