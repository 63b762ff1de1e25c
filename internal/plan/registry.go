package plan

import (
	"reflect"
	"sync"
)

// VariantSpec is the registration-time description of one enum variant,
// supplied by the root package's RegisterEnum before any plan is built.
type VariantSpec struct {
	Name            string
	Type            reflect.Type
	Discriminant    int64
	HasDiscriminant bool
}

// EnumSpec is the registration-time description of a sum type, supplied by
// the root package's RegisterEnum. Go cannot discover an interface's
// implementers by reflection, so the caller lists them explicitly, the same
// way the teacher's format package enumerates its closed EncodingType set
// rather than discovering codecs dynamically.
type EnumSpec struct {
	InterfaceType    reflect.Type
	DiscriminantType reflect.Type
	Bits             int
	HasBits          bool
	Variants         []VariantSpec
}

var (
	registry     sync.Map // reflect.Type (interface) -> EnumSpec
	variantOwner sync.Map // reflect.Type (concrete variant) -> reflect.Type (owning interface)
)

// RegisterEnumSpec records spec under its interface type, overwriting any
// prior registration for the same interface. Called once per process by the
// root package's generic RegisterEnum wrapper. It also indexes each
// variant's concrete type back to the interface, since Go's reflect package
// cannot recover "what interface does this concrete type satisfy, among
// the ones bitwire knows about" any other way once a value has been
// unwrapped from its interface during Encode.
func RegisterEnumSpec(spec EnumSpec) {
	registry.Store(spec.InterfaceType, spec)
	for _, variant := range spec.Variants {
		variantOwner.Store(variant.Type, spec.InterfaceType)
	}
}

// LookupEnumSpec returns the EnumSpec registered for t, if any.
func LookupEnumSpec(t reflect.Type) (EnumSpec, bool) {
	v, ok := registry.Load(t)
	if !ok {
		return EnumSpec{}, false
	}

	return v.(EnumSpec), true
}

// LookupVariantOwner returns the interface type that concreteType was
// registered as a variant of, if any.
func LookupVariantOwner(concreteType reflect.Type) (reflect.Type, bool) {
	v, ok := variantOwner.Load(concreteType)
	if !ok {
		return nil, false
	}

	return v.(reflect.Type), true
}
