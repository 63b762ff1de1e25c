package plan_test

import (
	"reflect"
	"testing"

	"github.com/bitwire-go/bitwire/errs"
	"github.com/bitwire-go/bitwire/internal/plan"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type ipv4Header struct {
	Version  uint8  `bitwire:"bits=4"`
	IHL      uint8  `bitwire:"bits=4"`
	TotalLen uint16
	TTL      uint8
	Protocol uint8
	Data     []byte `bitwire:"flex"`
}

func TestBuildRecordResolvesStrategies(t *testing.T) {
	p, err := plan.Build(reflect.TypeOf(ipv4Header{}))
	require.NoError(t, err)
	require.NotNil(t, p.Record)

	fields := p.Record.Fields
	require.Len(t, fields, 6)
	assert.Equal(t, plan.StrategyBits, fields[0].Strategy)
	assert.Equal(t, 4, fields[0].Bits)
	assert.Equal(t, plan.StrategyPlain, fields[2].Strategy)
	assert.Equal(t, plan.StrategyFlexibleArray, fields[5].Strategy)
}

type badFlexNotLast struct {
	Data []byte `bitwire:"flex"`
	Tail uint8
}

func TestBuildRecordFlexibleArrayMustBeLast(t *testing.T) {
	_, err := plan.Build(reflect.TypeOf(badFlexNotLast{}))
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrFlexibleArrayNotLast)
}

type prependedTagRecord struct {
	Data []uint32 `bitwire:"ptag(type:u32,value=Data.Len()),wvalue=Data.Len()"`
}

func TestBuildRecordPrependedTag(t *testing.T) {
	p, err := plan.Build(reflect.TypeOf(prependedTagRecord{}))
	require.NoError(t, err)
	require.Len(t, p.Record.Fields, 1)

	f := p.Record.Fields[0]
	assert.Equal(t, plan.StrategyPrependedTag, f.Strategy)
	assert.Equal(t, reflect.TypeOf(uint32(0)), f.PTagType)
	assert.True(t, f.HasWriteValue)
}

type v1Variant struct {
	A   uint8
	Len uint8
	Arr []uint8 `bitwire:"tag=Len"`
}

type v2Variant struct {
	F0 uint32
	F1 bool
}

func TestBuildEnumSequentialDiscriminants(t *testing.T) {
	type message interface{ isMessage() }

	iface := reflect.TypeOf((*message)(nil)).Elem()
	plan.RegisterEnumSpec(plan.EnumSpec{
		InterfaceType:    iface,
		DiscriminantType: reflect.TypeOf(uint8(0)),
		Variants: []plan.VariantSpec{
			{Name: "V1", Type: reflect.TypeOf(v1Variant{}), Discriminant: 1, HasDiscriminant: true},
			{Name: "V2", Type: reflect.TypeOf(v2Variant{})},
		},
	})

	p, err := plan.Build(iface)
	require.NoError(t, err)
	require.NotNil(t, p.Enum)
	assert.Equal(t, int64(1), p.Enum.Variants[0].Discriminant)
	assert.Equal(t, int64(2), p.Enum.Variants[1].Discriminant)

	v, ok := p.Enum.VariantForValue(2)
	require.True(t, ok)
	assert.Equal(t, "V2", v.Name)
}

func TestBuildEnumDuplicateDiscriminantWarns(t *testing.T) {
	type dupMessage interface{ isDupMessage() }

	iface := reflect.TypeOf((*dupMessage)(nil)).Elem()
	plan.RegisterEnumSpec(plan.EnumSpec{
		InterfaceType:    iface,
		DiscriminantType: reflect.TypeOf(uint8(0)),
		Variants: []plan.VariantSpec{
			{Name: "A", Type: reflect.TypeOf(v1Variant{}), Discriminant: 1, HasDiscriminant: true},
			{Name: "B", Type: reflect.TypeOf(v2Variant{}), Discriminant: 1, HasDiscriminant: true},
		},
	})

	p, err := plan.Build(iface)
	require.NoError(t, err)
	assert.NotEmpty(t, p.Warnings())

	v, ok := p.Enum.VariantForValue(1)
	require.True(t, ok)
	assert.Equal(t, "A", v.Name, "first source-order variant must win dispatch")
}

func TestBuildEnumBitsOverflowFailsBuild(t *testing.T) {
	type narrowMessage interface{ isNarrowMessage() }

	iface := reflect.TypeOf((*narrowMessage)(nil)).Elem()
	plan.RegisterEnumSpec(plan.EnumSpec{
		InterfaceType:    iface,
		DiscriminantType: reflect.TypeOf(uint8(0)),
		Bits:             2,
		HasBits:          true,
		Variants: []plan.VariantSpec{
			{Name: "Overflow", Type: reflect.TypeOf(v1Variant{}), Discriminant: 7, HasDiscriminant: true},
		},
	})

	_, err := plan.Build(iface)
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrDiscriminantOverflow)
}

func TestBuildEnumMissingDiscriminantTypeFails(t *testing.T) {
	type noDiscMessage interface{ isNoDiscMessage() }

	iface := reflect.TypeOf((*noDiscMessage)(nil)).Elem()
	plan.RegisterEnumSpec(plan.EnumSpec{
		InterfaceType: iface,
		Variants: []plan.VariantSpec{
			{Name: "V1", Type: reflect.TypeOf(v1Variant{})},
		},
	})

	_, err := plan.Build(iface)
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrMissingDiscriminantType)
}
