package factorgraph

// New creates a factor graph over len(cards) variables, where cards[i] is the
// number of discrete values variable i may take.
//
// Error Conditions:
//   - ErrEmptyCardinalities : cards is empty.
//   - ErrBadCardinality     : any cards[i] < 1.
//
// Complexity: O(V).
func New(cards []int) (*Graph, error) {
	if err := validateCardinalities(cards); err != nil {
		return nil, err
	}

	g := &Graph{}
	g.resetCardinalities(cards)

	return g, nil
}

// validateCardinalities checks shape only: non-empty, every entry positive.
func validateCardinalities(cards []int) error {
	if len(cards) == 0 {
		return ErrEmptyCardinalities
	}
	for _, c := range cards {
		if c < 1 {
			return ErrBadCardinality
		}
	}

	return nil
}

// resetCardinalities installs a copied cardinality vector and discards any
// derived topology state.
func (g *Graph) resetCardinalities(cards []int) {
	g.cards = append([]int(nil), cards...)
	g.dset = nil
	g.hasCycle = false
	g.numEdges = 0
	g.numSets = len(g.cards)
}

// NumVariables returns the number of variables in the graph.
func (g *Graph) NumVariables() int {
	return len(g.cards)
}

// Cardinalities returns a copy of the per-variable cardinality vector.
func (g *Graph) Cardinalities() []int {
	return append([]int(nil), g.cards...)
}

// SetCardinalities replaces the cardinality vector wholesale and discards any
// derived topology state. Factors added earlier are NOT revalidated against
// the new vector; replacing cardinalities after factors reference them is the
// caller's responsibility.
//
// Error Conditions: ErrEmptyCardinalities, ErrBadCardinality.
func (g *Graph) SetCardinalities(cards []int) error {
	if err := validateCardinalities(cards); err != nil {
		return err
	}
	g.resetCardinalities(cards)

	return nil
}

// AddFactor appends a factor to the graph. The factor is held by reference
// and may be shared with other graphs. Its scope is not validated here —
// validation happens when topology or energies are computed.
//
// Adding a factor invalidates a previous ConnectComponents analysis; the
// caller must re-run it before trusting topology queries again.
//
// Error Conditions: ErrNilFactor.
func (g *Graph) AddFactor(f Factor) error {
	if f == nil {
		return ErrNilFactor
	}
	g.factors = append(g.factors, f)

	// Structure changed: force the next ConnectComponents to rebuild.
	if g.dset != nil {
		g.dset.SetConnected(false)
	}

	return nil
}

// AddDataSource appends an opaque shared data source. The graph stores it
// verbatim and never interprets it.
func (g *Graph) AddDataSource(ds DataSource) {
	g.sources = append(g.sources, ds)
}

// Factors returns the factors in insertion order. The slice is fresh but the
// factors themselves are the shared references.
func (g *Graph) Factors() []Factor {
	return append([]Factor(nil), g.factors...)
}

// DataSources returns the stored data sources in insertion order.
func (g *Graph) DataSources() []DataSource {
	return append([]DataSource(nil), g.sources...)
}

// NumVectors returns the number of factors. The graph doubles as a feature
// collection for learning code, one "vector" per factor.
func (g *Graph) NumVectors() int {
	return len(g.factors)
}

// Duplicate returns a structural copy of the graph: cardinalities copied by
// value, factor and data-source references shared with the original.
//
// Derived topology state is NOT copied — the duplicate starts unanalyzed and
// the caller runs ConnectComponents on it when needed. Duplication reuses
// graph structure across evaluation calls; it does not isolate factor
// parameters.
//
// Complexity: O(V + F + D).
func (g *Graph) Duplicate() *Graph {
	dup := &Graph{
		factors: append([]Factor(nil), g.factors...),
		sources: append([]DataSource(nil), g.sources...),
	}
	dup.resetCardinalities(g.cards)

	return dup
}
