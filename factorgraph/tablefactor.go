package factorgraph

import (
	"errors"
)

// Sentinel errors for table-factor operations.
var (
	// ErrScopeCardsMismatch indicates scope and cardinality lengths differ.
	ErrScopeCardsMismatch = errors.New("factorgraph: scope and cardinalities must have equal length")
	// ErrWeightsLength indicates a weight vector whose length is not the
	// product of the scope cardinalities.
	ErrWeightsLength = errors.New("factorgraph: weights length must equal product of cardinalities")
	// ErrAssignmentLength indicates an assignment whose length differs from
	// the factor's scope size.
	ErrAssignmentLength = errors.New("factorgraph: assignment length must equal scope size")
	// ErrValueOutOfRange indicates an assignment value outside a variable's
	// cardinality.
	ErrValueOutOfRange = errors.New("factorgraph: assignment value out of cardinality range")
	// ErrTableNotComputed indicates EvaluateEnergy was called before
	// ComputeEnergyTable.
	ErrTableNotComputed = errors.New("factorgraph: energy table not computed")
)

// TableFactor is a dense table-driven Factor: one energy entry per joint
// assignment of its scope, addressed by a mixed-radix index with the first
// scope variable varying fastest.
//
// The factor keeps a parameter vector (weights) separate from the served
// table; ComputeEnergyTable publishes the current weights as the table, so
// a SetWeights followed by a recompute updates the served energies.
type TableFactor struct {
	vars    []int
	cards   []int
	strides []int
	weights []float64
	table   []float64
}

// NewTableFactor creates a table factor over the scope vars, where cards[i]
// is the cardinality of vars[i] and weights holds one energy per joint
// assignment (len(weights) == product of cards).
//
// Error Conditions:
//   - ErrScopeCardsMismatch : len(vars) != len(cards).
//   - ErrDuplicateVariable  : vars lists the same variable twice.
//   - ErrBadCardinality     : any cards[i] < 1.
//   - ErrWeightsLength      : len(weights) != product(cards).
//
// Complexity: O(len(vars) + len(weights)).
func NewTableFactor(vars, cards []int, weights []float64) (*TableFactor, error) {
	if len(vars) != len(cards) {
		return nil, ErrScopeCardsMismatch
	}
	seen := make(map[int]struct{}, len(vars))
	for _, v := range vars {
		if _, dup := seen[v]; dup {
			return nil, ErrDuplicateVariable
		}
		seen[v] = struct{}{}
	}

	strides := make([]int, len(cards))
	size := 1
	for i, c := range cards {
		if c < 1 {
			return nil, ErrBadCardinality
		}
		strides[i] = size
		size *= c
	}
	if len(weights) != size {
		return nil, ErrWeightsLength
	}

	return &TableFactor{
		vars:    append([]int(nil), vars...),
		cards:   append([]int(nil), cards...),
		strides: strides,
		weights: append([]float64(nil), weights...),
	}, nil
}

// Variables returns the factor's scope in declaration order.
func (f *TableFactor) Variables() []int {
	return append([]int(nil), f.vars...)
}

// Cardinalities returns the per-scope-variable cardinalities.
func (f *TableFactor) Cardinalities() []int {
	return append([]int(nil), f.cards...)
}

// ConsistentWith reports whether the factor's declared cardinalities agree
// with a graph cardinality vector at every scope index.
func (f *TableFactor) ConsistentWith(graphCards []int) bool {
	for i, v := range f.vars {
		if v < 0 || v >= len(graphCards) || graphCards[v] != f.cards[i] {
			return false
		}
	}

	return true
}

// SetWeights replaces the parameter vector. The served energy table is
// unchanged until the next ComputeEnergyTable call.
//
// Error Conditions: ErrWeightsLength.
func (f *TableFactor) SetWeights(weights []float64) error {
	if len(weights) != sizeOf(f.cards) {
		return ErrWeightsLength
	}
	f.weights = append([]float64(nil), weights...)

	return nil
}

// sizeOf returns the product of a cardinality vector.
func sizeOf(cards []int) int {
	size := 1
	for _, c := range cards {
		size *= c
	}

	return size
}

// ComputeEnergyTable publishes the current weights as the served energy
// table. Idempotent per parameter state; call again after SetWeights.
// Complexity: O(table size).
func (f *TableFactor) ComputeEnergyTable() error {
	f.table = append([]float64(nil), f.weights...)

	return nil
}

// EvaluateEnergy returns the table entry for an assignment of the factor's
// scope, given in scope order.
//
// Error Conditions:
//   - ErrTableNotComputed : ComputeEnergyTable has not run.
//   - ErrAssignmentLength : len(assignment) != scope size.
//   - ErrValueOutOfRange  : assignment[i] outside [0, cards[i]).
//
// Complexity: O(scope size).
func (f *TableFactor) EvaluateEnergy(assignment []int) (float64, error) {
	if f.table == nil {
		return 0, ErrTableNotComputed
	}
	if len(assignment) != len(f.vars) {
		return 0, ErrAssignmentLength
	}

	idx := 0
	for i, val := range assignment {
		if val < 0 || val >= f.cards[i] {
			return 0, ErrValueOutOfRange
		}
		idx += val * f.strides[i]
	}

	return f.table[idx], nil
}
