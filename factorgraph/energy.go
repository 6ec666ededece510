package factorgraph

import (
	"fmt"
)

// ComputeEnergies triggers every factor's energy-table computation.
//
// Call it before EvaluateEnergy when factors precompute tables. Safe to call
// repeatedly: each call re-derives the tables, picking up any parameter
// changes made since the previous call.
//
// Errors from a factor abort the pass, wrapped with the factor index.
// Complexity: sum of the factors' own table-build costs.
func (g *Graph) ComputeEnergies() error {
	for fi, f := range g.factors {
		if err := f.ComputeEnergyTable(); err != nil {
			return fmt.Errorf("factorgraph: factor %d: %w", fi, err)
		}
	}

	return nil
}

// EvaluateEnergy scores a complete assignment: for each factor the state is
// restricted to the factor's scope, in scope order, and the factor energies
// are summed into a single scalar. No normalization is applied; lower energy
// means more probable under the usual graphical-model convention.
//
// Values outside a variable's cardinality are each factor's own contract to
// reject — the graph checks only shape and scope indices.
//
// Error Conditions:
//   - ErrStateLength        : len(state) != NumVariables().
//   - ErrVariableOutOfRange : a factor scope escapes the variable universe,
//     wrapped with the factor index.
//   - factor evaluation errors, wrapped with the factor index.
//
// A failed evaluation leaves the graph untouched: factors, data sources and
// any topology analysis are unaffected.
//
// Complexity: O(S) scope gathering plus the factors' own lookup costs.
func (g *Graph) EvaluateEnergy(state []int) (float64, error) {
	if len(state) != len(g.cards) {
		return 0, ErrStateLength
	}

	var energy float64
	var sub []int
	for fi, f := range g.factors {
		vars := f.Variables()
		sub = sub[:0]
		for _, v := range vars {
			if v < 0 || v >= len(state) {
				return 0, fmt.Errorf("factorgraph: factor %d: %w", fi, ErrVariableOutOfRange)
			}
			sub = append(sub, state[v])
		}

		e, err := f.EvaluateEnergy(sub)
		if err != nil {
			return 0, fmt.Errorf("factorgraph: factor %d: %w", fi, err)
		}
		energy += e
	}

	return energy, nil
}

// EvaluateObservationEnergy scores a fully observed assignment supplied by an
// Observation, delegating to EvaluateEnergy.
//
// Error Conditions: ErrNilObservation, plus everything EvaluateEnergy returns.
func (g *Graph) EvaluateObservationEnergy(obs Observation) (float64, error) {
	if obs == nil {
		return 0, ErrNilObservation
	}

	return g.EvaluateEnergy(obs.Assignment())
}
