// Package factorgraph defines the Graph type, the Factor contract, and
// sentinel errors for the factorgraph subpackage of github.com/pgmkit/pgm.
package factorgraph

import (
	"errors"

	"github.com/pgmkit/pgm/disjointset"
)

// Sentinel errors for factor-graph operations.
var (
	// ErrEmptyCardinalities indicates a graph was given no variables.
	ErrEmptyCardinalities = errors.New("factorgraph: cardinalities must be non-empty")
	// ErrBadCardinality indicates a variable cardinality < 1.
	ErrBadCardinality = errors.New("factorgraph: cardinality must be positive")
	// ErrNilFactor indicates AddFactor received a nil Factor.
	ErrNilFactor = errors.New("factorgraph: factor must be non-nil")
	// ErrVariableOutOfRange indicates a factor scope references a variable
	// outside [0, NumVariables()).
	ErrVariableOutOfRange = errors.New("factorgraph: scope variable out of range")
	// ErrDuplicateVariable indicates a factor scope lists a variable twice.
	ErrDuplicateVariable = errors.New("factorgraph: duplicate variable in factor scope")
	// ErrStateLength indicates an assignment whose length differs from the
	// number of variables.
	ErrStateLength = errors.New("factorgraph: state length must equal number of variables")
	// ErrNilObservation indicates EvaluateObservationEnergy received nil.
	ErrNilObservation = errors.New("factorgraph: observation must be non-nil")
)

// Factor is a local potential over a subset (scope) of the graph's variables.
//
// Implementations are shared by reference: the same Factor may be held by
// several graphs at once. Only ComputeEnergyTable mutates a factor; the
// remaining methods are read-only.
type Factor interface {
	// Variables returns the factor's scope: an ordered sequence of variable
	// indices into the graph's cardinality vector. Duplicates are forbidden.
	Variables() []int

	// ComputeEnergyTable performs the one-time preprocessing that lets
	// EvaluateEnergy answer queries efficiently. It must be safe to call
	// repeatedly: factor parameters may change between calls.
	ComputeEnergyTable() error

	// EvaluateEnergy returns the factor's energy for an assignment restricted
	// to the factor's scope, in scope order. Values outside a variable's
	// cardinality are the factor's own contract violation to report.
	EvaluateEnergy(assignment []int) (float64, error)
}

// DataSource is an opaque handle to factor data shared across factors
// (for example an external feature matrix). The graph stores and returns
// data sources verbatim; it never interprets them.
type DataSource interface {
	// FactorDataSource is a marker method; it carries no behavior.
	FactorDataSource()
}

// Observation supplies a fully observed assignment of every graph variable.
type Observation interface {
	// Assignment returns one value per variable, indexed like the
	// cardinality vector.
	Assignment() []int
}

// VectorObservation adapts a plain assignment vector to the Observation
// interface.
type VectorObservation []int

// Assignment returns the underlying vector.
func (o VectorObservation) Assignment() []int { return o }

// Graph is a factor graph: a joint model over discrete variables described
// by local factors.
//
// cards holds one positive cardinality per variable. factors and sources are
// insertion-ordered and shared by reference, never deep-cloned. dset,
// hasCycle, numEdges and numSets are derived topology state, valid only
// while dset is marked connected; adding a factor invalidates them.
type Graph struct {
	cards   []int
	factors []Factor
	sources []DataSource

	dset     *disjointset.DisjointSet
	hasCycle bool
	numEdges int
	numSets  int
}
