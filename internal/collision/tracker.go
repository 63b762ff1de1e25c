// Package collision detects duplicate discriminant values across an enum's
// variants, adapted from the teacher's internal/collision/tracker.go (which
// tracked hash-to-metric-name collisions for mebo's metric IDs) to track
// discriminant-value-to-variant-name collisions for a derived enum plan.
package collision

import "strconv"

// Tracker records which variant first claimed each discriminant value and
// flags any later variant that reuses one. Per spec, a duplicate
// discriminant is not a build error — dispatch keeps the first
// source-order match — so Tracker only ever reports a warning, never fails.
type Tracker struct {
	owners  map[int64]string // discriminant value -> first variant name that claimed it
	order   []string         // variant names in the order they were tracked
	dupes   []string         // warning lines, one per collision observed
}

// NewTracker creates an empty discriminant collision tracker.
func NewTracker() *Tracker {
	return &Tracker{owners: make(map[int64]string)}
}

// Track records variantName's discriminant value. If another variant
// already claimed the same value, a warning is recorded and the first
// owner is preserved — matching the "decoder bias toward source order"
// rule in the dispatch spec.
func (t *Tracker) Track(value int64, variantName string) {
	t.order = append(t.order, variantName)

	owner, exists := t.owners[value]
	if !exists {
		t.owners[value] = variantName

		return
	}
	if owner == variantName {
		return
	}

	t.dupes = append(t.dupes, variantName+" shares discriminant "+strconv.FormatInt(value, 10)+" with "+owner)
}

// HasCollision reports whether any duplicate discriminant was observed.
func (t *Tracker) HasCollision() bool {
	return len(t.dupes) > 0
}

// Warnings returns one human-readable line per duplicate discriminant,
// in the order the collisions were discovered.
func (t *Tracker) Warnings() []string {
	return t.dupes
}

// Count returns the number of variants tracked so far.
func (t *Tracker) Count() int {
	return len(t.order)
}
