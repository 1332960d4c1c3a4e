package collision

import (
	"testing"

	"github.com/nyxworks/tmf/errs"
	"github.com/stretchr/testify/require"
)

func TestTracker_TrackKind_RejectsSecondOccurrence(t *testing.T) {
	tr := NewTracker()

	require.NoError(t, tr.TrackKind(errs.SegmentKindVertex))

	err := tr.TrackKind(errs.SegmentKindVertex)
	require.True(t, errs.IsDuplicateSegment(err))
}

func TestTracker_TrackKind_DistinctKindsAllowed(t *testing.T) {
	tr := NewTracker()

	require.NoError(t, tr.TrackKind(errs.SegmentKindVertex))
	require.NoError(t, tr.TrackKind(errs.SegmentKindNormal))
}

func TestTracker_TrackName_RejectsSecondOccurrence(t *testing.T) {
	tr := NewTracker()

	require.NoError(t, tr.TrackName("weights", 42))

	err := tr.TrackName("weights", 42)
	require.True(t, errs.IsDuplicateSegment(err))
}

func TestTracker_TrackName_HashCollisionOfDistinctNamesAllowed(t *testing.T) {
	tr := NewTracker()

	require.NoError(t, tr.TrackName("a", 1))
	require.NoError(t, tr.TrackName("b", 1))

	require.Equal(t, []string{"a", "b"}, tr.Names())
}

// TestTracker_TrackName_DuplicateSurvivesHashCollision guards against the
// single-name-per-hash-bucket bug: once two distinct names share a hash,
// a later repeat of the first name must still be caught, not masked by
// the second name occupying that hash slot.
func TestTracker_TrackName_DuplicateSurvivesHashCollision(t *testing.T) {
	tr := NewTracker()

	require.NoError(t, tr.TrackName("a", 1))
	require.NoError(t, tr.TrackName("b", 1))

	err := tr.TrackName("a", 1)
	require.True(t, errs.IsDuplicateSegment(err))
}

func TestTracker_Reset(t *testing.T) {
	tr := NewTracker()

	require.NoError(t, tr.TrackKind(errs.SegmentKindVertex))
	require.NoError(t, tr.TrackName("a", 1))

	tr.Reset()
	require.Empty(t, tr.Names())

	require.NoError(t, tr.TrackKind(errs.SegmentKindVertex))
	require.NoError(t, tr.TrackName("a", 1))
}
