package plan

import (
	"reflect"

	"github.com/bitwire-go/bitwire/internal/collision"
)

// Variant is one normalized enum variant: its concrete payload type, its
// resolved discriminant value, and that payload's own RecordPlan (a
// positional variant such as `V2(u32, bool)` is modeled as a struct with one
// field per position, e.g. F0 and F1, and planned the same way a
// named-field variant is).
type Variant struct {
	Name         string
	Type         reflect.Type
	Discriminant int64
	Fields       *RecordPlan
}

// EnumPlan is the normalized shape of a sum type: its discriminant's Go
// type, an optional packed bit-width, and its variants in source order.
type EnumPlan struct {
	InterfaceType    reflect.Type
	DiscriminantType reflect.Type
	Bits             int
	HasBits          bool
	Variants         []Variant

	// Warnings holds one line per duplicate discriminant value observed
	// while building the plan. Per spec.md §9, a duplicate discriminant is
	// not a build error; decode dispatch keeps whichever variant claimed
	// the value first in source order.
	Warnings []string
}

// VariantForValue returns the first (source-order) variant whose
// discriminant equals value, implementing the "first match wins" dispatch
// tie-break spec.md §4.5 requires even when discriminants collide.
func (e *EnumPlan) VariantForValue(value int64) (Variant, bool) {
	for _, v := range e.Variants {
		if v.Discriminant == value {
			return v, true
		}
	}

	return Variant{}, false
}

// buildEnum normalizes a registered EnumSpec (see RegisterEnumSpec)
// into an EnumPlan, assigning sequential discriminants (starting at 0, per
// the Open Question resolved in SPEC_FULL.md §9) to variants that did not
// specify one explicitly, and recording any duplicate-discriminant warning
// via internal/collision.Tracker.
func buildEnum(spec EnumSpec) (*EnumPlan, error) {
	if spec.DiscriminantType == nil {
		return nil, errMissingDiscriminantType(spec.InterfaceType.String())
	}

	ep := &EnumPlan{
		InterfaceType:    spec.InterfaceType,
		DiscriminantType: spec.DiscriminantType,
		Bits:             spec.Bits,
		HasBits:          spec.HasBits,
	}

	tracker := collision.NewTracker()
	next := int64(0)

	for _, vs := range spec.Variants {
		disc := next
		if vs.HasDiscriminant {
			disc = vs.Discriminant
		}
		next = disc + 1

		if ep.HasBits && (disc < 0 || disc >= int64(1)<<uint(ep.Bits)) {
			return nil, errDiscriminantOverflow(vs.Name, disc, ep.Bits)
		}

		fields, err := buildRecord(vs.Type)
		if err != nil {
			return nil, err
		}

		tracker.Track(disc, vs.Name)
		ep.Variants = append(ep.Variants, Variant{
			Name:         vs.Name,
			Type:         vs.Type,
			Discriminant: disc,
			Fields:       fields,
		})
	}

	ep.Warnings = tracker.Warnings()

	return ep, nil
}
