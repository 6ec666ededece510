// Package disjointset defines the DisjointSet type and sentinel errors
// for the disjointset subpackage of github.com/pgmkit/pgm.
package disjointset

import (
	"errors"
)

// Sentinel errors for disjointset operations.
var (
	// ErrNonPositiveElements indicates New was called with n <= 0.
	ErrNonPositiveElements = errors.New("disjointset: number of elements must be positive")
	// ErrElementOutOfRange indicates an element id outside [0, n).
	ErrElementOutOfRange = errors.New("disjointset: element out of range")
	// ErrNotRoot indicates LinkSet received an element that is not a set root.
	ErrNotRoot = errors.New("disjointset: argument is not a root")
	// ErrSameRoot indicates LinkSet received two identical roots.
	ErrSameRoot = errors.New("disjointset: roots must be distinct")
)

// DisjointSet tracks a partition of the elements 0..n-1 into disjoint sets.
//
// parent[i] == i marks a root; rank is meaningful only for roots and is used
// solely to decide merge direction. connected records whether a union-find
// pass over some edge set has completed — it is set by callers, never derived.
type DisjointSet struct {
	numElements int
	parent      []int
	rank        []int
	connected   bool
}

// New returns a DisjointSet over n singleton elements 0..n-1.
// Returns ErrNonPositiveElements if n <= 0.
// Complexity: O(n).
func New(n int) (*DisjointSet, error) {
	if n <= 0 {
		return nil, ErrNonPositiveElements
	}
	ds := &DisjointSet{
		numElements: n,
		parent:      make([]int, n),
		rank:        make([]int, n),
	}
	ds.MakeSets()

	return ds, nil
}

// Len returns the number of elements in the universe.
func (ds *DisjointSet) Len() int {
	return ds.numElements
}

// Connected reports whether a union-find pass has been recorded as complete.
// It distinguishes "not yet analyzed" from "analyzed"; it does not say the
// partition has a single set.
func (ds *DisjointSet) Connected() bool {
	return ds.connected
}

// SetConnected records whether a union-find pass has completed. Callers run
// their edge-union loop and then set the flag; MakeSets clears it.
func (ds *DisjointSet) SetConnected(connected bool) {
	ds.connected = connected
}
