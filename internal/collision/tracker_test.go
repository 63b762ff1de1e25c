package collision_test

import (
	"testing"

	"github.com/bitwire-go/bitwire/internal/collision"
	"github.com/stretchr/testify/assert"
)

func TestTrackerNoCollision(t *testing.T) {
	tr := collision.NewTracker()
	tr.Track(1, "V1")
	tr.Track(2, "V2")

	assert.False(t, tr.HasCollision())
	assert.Empty(t, tr.Warnings())
	assert.Equal(t, 2, tr.Count())
}

func TestTrackerDetectsDuplicateDiscriminant(t *testing.T) {
	tr := collision.NewTracker()
	tr.Track(1, "V1")
	tr.Track(1, "V2")

	assert.True(t, tr.HasCollision())
	assert.Len(t, tr.Warnings(), 1)
	assert.Contains(t, tr.Warnings()[0], "V2")
	assert.Contains(t, tr.Warnings()[0], "V1")
}

func TestTrackerSameVariantRetrackedIsNotACollision(t *testing.T) {
	tr := collision.NewTracker()
	tr.Track(1, "V1")
	tr.Track(1, "V1")

	assert.False(t, tr.HasCollision())
	assert.Equal(t, 2, tr.Count())
}

func TestTrackerFirstOwnerWinsAcrossMultipleDuplicates(t *testing.T) {
	tr := collision.NewTracker()
	tr.Track(5, "First")
	tr.Track(5, "Second")
	tr.Track(5, "Third")

	warnings := tr.Warnings()
	assert.Len(t, warnings, 2)
	assert.Contains(t, warnings[0], "Second shares discriminant 5 with First")
	assert.Contains(t, warnings[1], "Third shares discriminant 5 with First")
}
