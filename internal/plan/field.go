package plan

import (
	"reflect"

	"github.com/bitwire-go/bitwire/internal/attr"
)

// Field is one normalized record field: its struct index, its resolved
// strategy, and whatever extra data that strategy needs.
type Field struct {
	Index    int
	Name     string
	Type     reflect.Type
	Strategy Strategy

	Bits int // StrategyBits width; 0 for every other strategy

	TagExpr  attr.Expr // StrategyExternalTag
	PTagType reflect.Type
	PTagExpr attr.Expr // StrategyPrependedTag write expression

	WriteValue    attr.Expr
	HasWriteValue bool

	SkipEncode bool
	SkipDecode bool
}
