package factorgraph

import (
	"fmt"

	"github.com/pgmkit/pgm/disjointset"
)

// ConnectComponents derives the graph topology from the factor scopes using
// union-find.
//
// One disjoint-set element is created per variable. For each factor, the
// scope variables are unioned pairwise along the scope (each variable against
// the running root), counting one edge per union attempt. A pair that is
// already connected means a second path exists between the endpoints, so the
// graph has a cycle. A lone higher-order factor therefore stays acyclic: its
// scope forms a star, not a clique.
//
// Skips the work when a previous analysis is still valid (no factor added,
// no cardinality change since). On error the graph is left unanalyzed.
//
// Error Conditions:
//   - ErrVariableOutOfRange : a scope references a variable id outside
//     [0, NumVariables()), wrapped with the factor index.
//   - ErrDuplicateVariable  : a scope lists the same variable twice, wrapped
//     with the factor index.
//
// Complexity: O(S·α(V)) where S is the total scope size over all factors.
func (g *Graph) ConnectComponents() error {
	if g.Analyzed() {
		return nil
	}

	ds, err := disjointset.New(len(g.cards))
	if err != nil {
		return err
	}
	g.dset = ds
	g.hasCycle = false
	g.numEdges = 0
	g.numSets = len(g.cards)

	cycle := false
	edges := 0
	for fi, f := range g.factors {
		vars := f.Variables()
		if err = g.validateScope(vars); err != nil {
			return fmt.Errorf("factorgraph: factor %d: %w", fi, err)
		}
		if len(vars) == 0 {
			continue // constant factor, no incidences
		}

		root, findErr := ds.FindSet(vars[0])
		if findErr != nil {
			return fmt.Errorf("factorgraph: factor %d: %w", fi, findErr)
		}
		for _, v := range vars[1:] {
			r, vErr := ds.FindSet(v)
			if vErr != nil {
				return fmt.Errorf("factorgraph: factor %d: %w", fi, vErr)
			}
			edges++
			if root == r {
				// Endpoints already share a path: this edge closes a cycle.
				cycle = true

				continue
			}
			if root, vErr = ds.LinkSet(root, r); vErr != nil {
				return fmt.Errorf("factorgraph: factor %d: %w", fi, vErr)
			}
		}
	}

	g.hasCycle = cycle
	g.numEdges = edges
	if g.numSets, err = ds.NumSets(); err != nil {
		return err
	}
	ds.SetConnected(true)

	return nil
}

// validateScope checks a factor scope against the cardinality vector:
// every index in range, no duplicates.
func (g *Graph) validateScope(vars []int) error {
	seen := make(map[int]struct{}, len(vars))
	for _, v := range vars {
		if v < 0 || v >= len(g.cards) {
			return ErrVariableOutOfRange
		}
		if _, dup := seen[v]; dup {
			return ErrDuplicateVariable
		}
		seen[v] = struct{}{}
	}

	return nil
}

// Analyzed reports whether a ConnectComponents analysis is current: one has
// run, no factor has been added since, and the variable universe has not
// changed. Topology queries made while Analyzed() is false return the
// permissive pre-analysis defaults.
func (g *Graph) Analyzed() bool {
	return g.dset != nil && g.dset.Connected() && g.dset.Len() == len(g.cards)
}

// DisjointSet returns the underlying union-find structure from the latest
// analysis, or nil when none has run. Shared, not copied.
func (g *Graph) DisjointSet() *disjointset.DisjointSet {
	return g.dset
}

// NumEdges returns the number of factor-variable adjacencies counted by the
// latest analysis; zero before any analysis has run.
func (g *Graph) NumEdges() int {
	return g.numEdges
}

// IsAcyclic reports whether the latest analysis found no cycle.
// Before any analysis it returns the permissive default true.
func (g *Graph) IsAcyclic() bool {
	return !g.hasCycle
}

// IsConnected reports whether all variables fall in a single component.
// Before any analysis every variable is its own component, so only a
// one-variable graph reports true.
func (g *Graph) IsConnected() bool {
	return g.numSets == 1
}

// IsTree reports whether the graph is both acyclic and connected.
func (g *Graph) IsTree() bool {
	return !g.hasCycle && g.numSets == 1
}

// ComponentLabels returns a dense component label per variable and the
// component count, per the latest analysis. Before any analysis each
// variable labels its own singleton component.
//
// Complexity: O(V·α(V)).
func (g *Graph) ComponentLabels() ([]int, int, error) {
	if g.dset == nil {
		labels := make([]int, len(g.cards))
		for i := range labels {
			labels[i] = i
		}

		return labels, len(g.cards), nil
	}

	return g.dset.UniqueLabeling()
}
