package derive_test

import (
	"reflect"
	"testing"

	"github.com/bitwire-go/bitwire/bitio"
	"github.com/bitwire-go/bitwire/internal/derive"
	"github.com/bitwire-go/bitwire/internal/plan"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type point struct {
	X uint16
	Y uint16
}

func TestDecodeEncodeRecordRoundTrip(t *testing.T) {
	w := bitio.NewWriter()
	defer w.Release()

	require.NoError(t, derive.EncodeValue(w, bitio.BigEndian, nil, nil, reflect.ValueOf(point{X: 7, Y: 9})))
	require.NoError(t, w.Align())

	r := bitio.NewReader(w.Bytes())
	v, err := derive.DecodeValue(r, bitio.BigEndian, nil, nil, reflect.TypeOf(point{}))
	require.NoError(t, err)
	assert.Equal(t, point{X: 7, Y: 9}, v.Interface())
}

type shape interface{ isShape() }

type circle struct{ Radius uint8 }

func (circle) isShape() {}

type square struct{ Side uint8 }

func (square) isShape() {}

func init() {
	plan.RegisterEnumSpec(plan.EnumSpec{
		InterfaceType:    reflect.TypeOf((*shape)(nil)).Elem(),
		DiscriminantType: reflect.TypeOf(uint8(0)),
		Variants: []plan.VariantSpec{
			{Name: "circle", Type: reflect.TypeOf(circle{}), Discriminant: 1, HasDiscriminant: true},
			{Name: "square", Type: reflect.TypeOf(square{}), Discriminant: 2, HasDiscriminant: true},
		},
	})
}

func TestDecodeEncodeEnumRoundTrip(t *testing.T) {
	shapeType := reflect.TypeOf((*shape)(nil)).Elem()

	r := bitio.NewReader([]byte{2, 9})
	v, err := derive.DecodeValue(r, bitio.BigEndian, nil, nil, shapeType)
	require.NoError(t, err)
	assert.Equal(t, square{Side: 9}, v.Interface())

	w := bitio.NewWriter()
	defer w.Release()
	require.NoError(t, derive.EncodeValue(w, bitio.BigEndian, nil, nil, reflect.ValueOf(v.Interface())))
	require.NoError(t, w.Align())
	assert.Equal(t, []byte{2, 9}, w.Bytes())
}

func TestDecodeEnumUnknownDiscriminantFails(t *testing.T) {
	shapeType := reflect.TypeOf((*shape)(nil)).Elem()

	r := bitio.NewReader([]byte{99})
	_, err := derive.DecodeValue(r, bitio.BigEndian, nil, nil, shapeType)
	assert.Error(t, err)
}

type withExternalTag struct {
	N    uint8
	Data []uint8 `bitwire:"tag=N"`
}

func TestExternalTagFieldReadsSiblingCount(t *testing.T) {
	r := bitio.NewReader([]byte{3, 10, 20, 30})
	v, err := derive.DecodeValue(r, bitio.BigEndian, nil, nil, reflect.TypeOf(withExternalTag{}))
	require.NoError(t, err)
	assert.Equal(t, withExternalTag{N: 3, Data: []uint8{10, 20, 30}}, v.Interface())
}
