// Package derive is bitwire's runtime realization of spec.md §4.4's code
// emitter: since Go has no build-time attribute-macro facility a library
// can hook into, derive builds one *Executor per (package path, type name)
// on first use and caches it in a sync.Map keyed by an xxHash64
// fingerprint (internal/hash), the same way internal/derive's teacher
// ancestor (mebo's metric-ID hashing) avoids repeated string comparisons on
// a hot path. Steady-state decode/encode after warm-up pays only
// reflect.Value Field/Set calls, not repeated struct-tag parsing.
package derive

import (
	"fmt"
	"reflect"
	"sync"

	"github.com/bitwire-go/bitwire/internal/hash"
	"github.com/bitwire-go/bitwire/internal/plan"
)

var executors sync.Map // uint64 fingerprint -> *Executor

// Executor holds the normalized Plan for one type plus whatever precomputed
// metadata its record/enum execution needs.
type Executor struct {
	Type reflect.Type
	Plan *plan.Plan
}

func fingerprintOf(t reflect.Type) uint64 {
	return hash.Fingerprint(fmt.Sprintf("%s.%s", t.PkgPath(), t.Name()))
}

// Warm builds (or returns the cached) Executor for t, running the
// build-time validation in internal/plan.Build. Calling this ahead of time
// turns a mis-annotated type's failure into an explicit, early error rather
// than one surfacing from the first Decode/Encode call.
func Warm(t reflect.Type) (*Executor, error) {
	key := fingerprintOf(t)

	if v, ok := executors.Load(key); ok {
		return v.(*Executor), nil
	}

	p, err := plan.Build(t)
	if err != nil {
		return nil, err
	}

	exec := &Executor{Type: t, Plan: p}
	actual, _ := executors.LoadOrStore(key, exec)

	return actual.(*Executor), nil
}

// Warnings returns the non-fatal diagnostics (currently only duplicate enum
// discriminants) collected the last time t's Executor was built.
func Warnings(t reflect.Type) ([]string, error) {
	exec, err := Warm(t)
	if err != nil {
		return nil, err
	}

	return exec.Plan.Warnings(), nil
}
