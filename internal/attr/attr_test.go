package attr_test

import (
	"errors"
	"reflect"
	"testing"

	"github.com/bitwire-go/bitwire/errs"
	"github.com/bitwire-go/bitwire/internal/attr"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFieldEmptyTagIsPlainStrategy(t *testing.T) {
	f, err := attr.ParseField("")
	require.NoError(t, err)
	assert.False(t, f.HasBits)
	assert.False(t, f.Flex)
	assert.False(t, f.HasTag)
	assert.False(t, f.HasPTag)
}

func TestParseFieldBits(t *testing.T) {
	f, err := attr.ParseField("bits=4")
	require.NoError(t, err)
	assert.True(t, f.HasBits)
	assert.Equal(t, 4, f.Bits)
}

func TestParseFieldBitsOutOfRange(t *testing.T) {
	_, err := attr.ParseField("bits=0")
	require.Error(t, err)
	assert.True(t, errors.Is(err, errs.ErrInvalidTag))

	_, err = attr.ParseField("bits=65")
	require.Error(t, err)
	assert.True(t, errors.Is(err, errs.ErrInvalidTag))
}

func TestParseFieldFlex(t *testing.T) {
	f, err := attr.ParseField("flex")
	require.NoError(t, err)
	assert.True(t, f.Flex)
}

func TestParseFieldTagFieldRef(t *testing.T) {
	f, err := attr.ParseField("tag=Len")
	require.NoError(t, err)
	require.True(t, f.HasTag)
	assert.Equal(t, attr.ExprFieldRef, f.Tag.Kind)
	assert.Equal(t, "Len", f.Tag.Field)
}

func TestParseFieldTagLenExpr(t *testing.T) {
	f, err := attr.ParseField("tag=Data.Len()")
	require.NoError(t, err)
	require.True(t, f.HasTag)
	assert.Equal(t, attr.ExprFieldLen, f.Tag.Kind)
	assert.Equal(t, "Data", f.Tag.Field)
}

func TestParseFieldPTagRequiresWriteValue(t *testing.T) {
	_, err := attr.ParseField("ptag(type:u32,value=Data.Len())")
	require.Error(t, err)
	assert.True(t, errors.Is(err, errs.ErrMissingWriteValue))
}

func TestParseFieldPTagWithWriteValue(t *testing.T) {
	f, err := attr.ParseField("ptag(type:u32,value=Data.Len()),wvalue=Data.Len()")
	require.NoError(t, err)
	require.True(t, f.HasPTag)
	assert.Equal(t, "u32", f.PTagType)
	require.True(t, f.HasWriteValue)
}

func TestParseFieldMutualExclusion(t *testing.T) {
	_, err := attr.ParseField("bits=4,flex")
	require.Error(t, err)
	assert.True(t, errors.Is(err, errs.ErrStrategyConflict))
}

func TestParseFieldSkipDirectives(t *testing.T) {
	f, err := attr.ParseField("skip")
	require.NoError(t, err)
	assert.True(t, f.SkipEncode)
	assert.True(t, f.SkipDecode)

	f, err = attr.ParseField("skipenc")
	require.NoError(t, err)
	assert.True(t, f.SkipEncode)
	assert.False(t, f.SkipDecode)
}

func TestParseFieldDiscriminant(t *testing.T) {
	f, err := attr.ParseField("disc=42")
	require.NoError(t, err)
	require.True(t, f.HasDiscriminant)
	assert.Equal(t, int64(42), f.Discriminant)
}

func TestParseFieldUnknownDirective(t *testing.T) {
	_, err := attr.ParseField("bogus=1")
	require.Error(t, err)
	assert.True(t, errors.Is(err, errs.ErrInvalidTag))
}

func TestParseTypeDiscriminantType(t *testing.T) {
	ty, err := attr.ParseType("discriminant_type=uint8,bits=4")
	require.NoError(t, err)
	assert.Equal(t, "uint8", ty.DiscriminantType)
	assert.Equal(t, 4, ty.Bits)
}

func TestParseTypeCtxBounds(t *testing.T) {
	ty, err := attr.ParseType("ctx_bounds(Reader|Writer)")
	require.NoError(t, err)
	assert.Equal(t, []string{"Reader", "Writer"}, ty.CtxBounds)
}

func TestParseExprLiteral(t *testing.T) {
	e, err := attr.ParseExpr("7")
	require.NoError(t, err)
	assert.Equal(t, attr.ExprLiteral, e.Kind)
	assert.Equal(t, int64(7), e.Literal)
}

func TestParseExprInvalid(t *testing.T) {
	_, err := attr.ParseExpr("self.data + 1")
	require.Error(t, err)
	assert.True(t, errors.Is(err, errs.ErrInvalidTag))
}

type evalScope struct {
	Count int32
	Data  []int
}

func TestExprEvalFieldRefAndLen(t *testing.T) {
	scope := evalScope{Count: 3, Data: []int{1, 2, 3}}

	countExpr, err := attr.ParseExpr("Count")
	require.NoError(t, err)
	v, err := countExpr.Eval(reflect.ValueOf(scope))
	require.NoError(t, err)
	assert.Equal(t, int64(3), v)

	lenExpr, err := attr.ParseExpr("Data.Len()")
	require.NoError(t, err)
	v, err = lenExpr.Eval(reflect.ValueOf(scope))
	require.NoError(t, err)
	assert.Equal(t, int64(3), v)
}
