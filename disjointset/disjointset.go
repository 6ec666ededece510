package disjointset

// MakeSets resets every element to a singleton set: parent[i] = i, rank[i] = 0,
// and clears the connected flag. Idempotent; always succeeds.
// Complexity: O(n).
func (ds *DisjointSet) MakeSets() {
	for i := 0; i < ds.numElements; i++ {
		ds.parent[i] = i
		ds.rank[i] = 0
	}
	ds.connected = false
}

// FindSet returns the representative (root) of the set containing x.
//
// Every node visited on the walk to the root is relinked directly to that
// root (full path compression), so subsequent finds on the path are O(1).
// Returns ErrElementOutOfRange if x is outside [0, n).
// Complexity: amortized O(α(n)).
func (ds *DisjointSet) FindSet(x int) (int, error) {
	if x < 0 || x >= ds.numElements {
		return -1, ErrElementOutOfRange
	}

	// Walk to the root first, then compress the whole path onto it.
	root := x
	for ds.parent[root] != root {
		root = ds.parent[root]
	}
	for x != root {
		next := ds.parent[x]
		ds.parent[x] = root
		x = next
	}

	return root, nil
}

// LinkSet merges the sets rooted at xroot and yroot using union by rank:
// the root with the strictly greater rank becomes the new root; on a tie,
// yroot wins and its rank grows by one. This is the only place ranks change.
//
// Both arguments must be distinct, current roots. Violations return ErrNotRoot
// or ErrSameRoot without touching the forest.
// Returns the new root.
// Complexity: O(1).
func (ds *DisjointSet) LinkSet(xroot, yroot int) (int, error) {
	if xroot < 0 || xroot >= ds.numElements || yroot < 0 || yroot >= ds.numElements {
		return -1, ErrElementOutOfRange
	}
	if ds.parent[xroot] != xroot || ds.parent[yroot] != yroot {
		return -1, ErrNotRoot
	}
	if xroot == yroot {
		return -1, ErrSameRoot
	}

	if ds.rank[xroot] > ds.rank[yroot] {
		ds.parent[yroot] = xroot

		return xroot, nil
	}

	ds.parent[xroot] = yroot
	if ds.rank[xroot] == ds.rank[yroot] {
		ds.rank[yroot]++
	}

	return yroot, nil
}

// UnionSet merges the sets containing x and y.
//
// Returns false when x and y were already in the same set (no merge happened) —
// a caller unioning graph edges reads false as "this edge closes a cycle".
// Returns true when a merge happened.
// Complexity: amortized O(α(n)).
func (ds *DisjointSet) UnionSet(x, y int) (bool, error) {
	xroot, err := ds.FindSet(x)
	if err != nil {
		return false, err
	}
	yroot, err := ds.FindSet(y)
	if err != nil {
		return false, err
	}

	if xroot == yroot {
		return false, nil
	}

	if _, err = ds.LinkSet(xroot, yroot); err != nil {
		return false, err
	}

	return true, nil
}

// SameSet reports whether x and y belong to the same set. Read-only in effect,
// though the underlying finds still compress paths.
// Complexity: amortized O(α(n)).
func (ds *DisjointSet) SameSet(x, y int) (bool, error) {
	xroot, err := ds.FindSet(x)
	if err != nil {
		return false, err
	}
	yroot, err := ds.FindSet(y)
	if err != nil {
		return false, err
	}

	return xroot == yroot, nil
}

// UniqueLabeling assigns each element a dense label in [0, k) such that two
// elements share a label iff they share a root. Labels are handed out in
// first-seen order scanning elements 0..n-1, so the labeling is deterministic
// for a given partition. Returns the labels and k, the number of sets.
// Complexity: O(n·α(n)).
func (ds *DisjointSet) UniqueLabeling() ([]int, int, error) {
	labels := make([]int, ds.numElements)
	rootLabel := make([]int, ds.numElements)
	for i := range rootLabel {
		rootLabel[i] = -1
	}

	next := 0
	for i := 0; i < ds.numElements; i++ {
		root, err := ds.FindSet(i)
		if err != nil {
			return nil, 0, err
		}
		if rootLabel[root] < 0 {
			rootLabel[root] = next
			next++
		}
		labels[i] = rootLabel[root]
	}

	return labels, next, nil
}

// NumSets returns the number of distinct sets in the current partition.
// Complexity: O(n·α(n)).
func (ds *DisjointSet) NumSets() (int, error) {
	_, k, err := ds.UniqueLabeling()

	return k, err
}
