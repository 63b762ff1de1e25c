package bitwire_test

import (
	"reflect"
	"testing"

	"github.com/bitwire-go/bitwire"
	"github.com/bitwire-go/bitwire/bitio"
	"github.com/bitwire-go/bitwire/errs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type packed struct {
	A uint8 `bitwire:"bits=3"`
	B uint8 `bitwire:"bits=5"`
}

// TestBitsRoundTripPreservesValuesInRange covers spec.md §8's
// "Bits(N) round-trip preserves values in [0, 2^N)" universal property.
func TestBitsRoundTripPreservesValuesInRange(t *testing.T) {
	v := packed{A: 5, B: 27}

	data, err := bitwire.EncodeBytes[packed](v, bitio.BigEndian)
	require.NoError(t, err)
	assert.Len(t, data, 1)

	got, err := bitwire.DecodeBytes[packed](data, bitio.BigEndian)
	require.NoError(t, err)
	assert.Equal(t, v, got)
}

// TestDecodeEncodeIsIdentityUnderSameByteOrder covers the
// decode(encode(x)) == x universal property for a plain record.
func TestDecodeEncodeIsIdentityUnderSameByteOrder(t *testing.T) {
	type pair struct {
		X uint32
		Y int16
	}

	v := pair{X: 123456, Y: -17}

	data, err := bitwire.EncodeBytes[pair](v, bitio.LittleEndian)
	require.NoError(t, err)

	got, err := bitwire.DecodeBytes[pair](data, bitio.LittleEndian)
	require.NoError(t, err)
	assert.Equal(t, v, got)
}

// TestTruncatedStreamFailsWithIO checks that decoding an encoding with its
// last byte cut off fails with ErrIO.
func TestTruncatedStreamFailsWithIO(t *testing.T) {
	type pair struct {
		X uint32
		Y uint32
	}

	full, err := bitwire.EncodeBytes[pair](pair{X: 1, Y: 2}, bitio.BigEndian)
	require.NoError(t, err)

	_, err = bitwire.DecodeBytes[pair](full[:len(full)-1], bitio.BigEndian)
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrIO)
}

type badDiscriminantBits struct {
	Tag bitMarker
}

type bitMarker interface{ isBitMarker() }

type bitMarkerTooLarge struct{}

func (bitMarkerTooLarge) isBitMarker() {}

// TestDiscriminantOverflowFailsToBuild covers "bitfield discriminant whose
// literal equals or exceeds 2^N fails to build".
func TestDiscriminantOverflowFailsToBuild(t *testing.T) {
	bitwire.RegisterEnum[bitMarker](bitwire.EnumOptions{
		DiscriminantType: reflect.TypeOf(uint8(0)),
		Bits:             2,
		Variants: []bitwire.Variant{
			{Sample: bitMarkerTooLarge{}, Discriminant: 4},
		},
	})

	_, err := bitwire.DecodeBytes[badDiscriminantBits]([]byte{0x00}, bitio.BigEndian)
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrDiscriminantOverflow)
}

type flexNotLast struct {
	Arr []uint8 `bitwire:"flex"`
	X   uint8
}

// TestFlexibleArrayNotLastFailsToBuild covers "field with
// flexible_array_member that is not last fails to build".
func TestFlexibleArrayNotLastFailsToBuild(t *testing.T) {
	_, err := bitwire.DecodeBytes[flexNotLast]([]byte{1, 2, 3}, bitio.BigEndian)
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrFlexibleArrayNotLast)
}

type strategyConflict struct {
	Data uint8 `bitwire:"bits=4,flex"`
}

// TestStrategyConflictFailsToBuild covers "bits/flexible_array_member/tag
// combined on one field fails to build".
func TestStrategyConflictFailsToBuild(t *testing.T) {
	_, err := bitwire.DecodeBytes[strategyConflict]([]byte{0x0F}, bitio.BigEndian)
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrStrategyConflict)
}

type noDiscType interface{ isNoDiscType() }

type noDiscTypeVariant struct{}

func (noDiscTypeVariant) isNoDiscType() {}

// TestEnumMissingDiscriminantTypeFailsToBuild covers "enum with no
// discriminant_type fails to build".
func TestEnumMissingDiscriminantTypeFailsToBuild(t *testing.T) {
	bitwire.RegisterEnum[noDiscType](bitwire.EnumOptions{
		Variants: []bitwire.Variant{
			{Sample: noDiscTypeVariant{}, Discriminant: 1},
		},
	})

	_, err := bitwire.DecodeBytes[noDiscType]([]byte{0x01}, bitio.BigEndian)
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrMissingDiscriminantType)
}
