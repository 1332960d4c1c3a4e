// Package collision tracks which segment kinds and custom-data names have
// been seen while decoding a mesh frame, so duplicates can be rejected
// without buffering the whole frame first.
package collision

import (
	"github.com/nyxworks/tmf/errs"
)

// Tracker detects duplicate built-in segment kinds and duplicate
// custom-data names within a single mesh frame.
type Tracker struct {
	seenKinds  map[errs.SegmentKind]bool
	nameHashes map[uint64][]string // hash -> bucket of distinct names sharing it
	names      []string            // ordered list, mirrors custom segment arrival order
}

// NewTracker creates a new duplicate tracker for one mesh frame.
func NewTracker() *Tracker {
	return &Tracker{
		seenKinds:  make(map[errs.SegmentKind]bool),
		nameHashes: make(map[uint64][]string),
		names:      make([]string, 0),
	}
}

// TrackKind records a built-in segment kind, returning a DuplicateSegmentError
// if the kind was already seen in this frame.
func (t *Tracker) TrackKind(kind errs.SegmentKind) error {
	if t.seenKinds[kind] {
		return &errs.DuplicateSegmentError{Kind: kind}
	}

	t.seenKinds[kind] = true

	return nil
}

// TrackName records a custom-data segment name keyed by its xxhash, returning
// a DuplicateSegmentError if a segment with the same name already arrived.
//
// A hash collision between two distinct names is not itself an error: each
// hash bucket holds every distinct name seen under it, so a later true
// duplicate is still caught by a linear scan of its own bucket rather than
// being masked by an unrelated name that happens to share the hash.
func (t *Tracker) TrackName(name string, hash uint64) error {
	bucket := t.nameHashes[hash]

	for _, existing := range bucket {
		if existing == name {
			return &errs.DuplicateSegmentError{Kind: errs.SegmentKindCustom, Name: name}
		}
	}

	t.nameHashes[hash] = append(bucket, name)
	t.names = append(t.names, name)

	return nil
}

// Names returns the custom-data names tracked so far, in arrival order.
func (t *Tracker) Names() []string {
	return t.names
}

// Reset clears all tracked state so the Tracker can be reused for the next
// mesh frame.
func (t *Tracker) Reset() {
	for k := range t.seenKinds {
		delete(t.seenKinds, k)
	}

	for k := range t.nameHashes {
		delete(t.nameHashes, k)
	}

	t.names = t.names[:0]
}
