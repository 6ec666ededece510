package factorgraph_test

import (
	"errors"
	"testing"

	"github.com/pgmkit/pgm/factorgraph"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// scopedFactor records the sub-assignments it was asked to score, so tests
// can verify scope restriction order.
type scopedFactor struct {
	vars   []int
	energy float64
	seen   [][]int
}

func (f *scopedFactor) Variables() []int { return f.vars }

func (f *scopedFactor) ComputeEnergyTable() error { return nil }

func (f *scopedFactor) EvaluateEnergy(assignment []int) (float64, error) {
	f.seen = append(f.seen, append([]int(nil), assignment...))

	return f.energy, nil
}

// failingFactor errors from both contract methods.
type failingFactor struct {
	vars []int
	err  error
}

func (f *failingFactor) Variables() []int { return f.vars }

func (f *failingFactor) ComputeEnergyTable() error { return f.err }

func (f *failingFactor) EvaluateEnergy(_ []int) (float64, error) {
	return 0, f.err
}

// TestEvaluateEnergy_Additive verifies the central additivity property:
// the total equals the sum of the per-factor energies.
func TestEvaluateEnergy_Additive(t *testing.T) {
	g, err := factorgraph.New([]int{2, 2, 2})
	require.NoError(t, err)

	energies := []float64{1.25, -0.5, 4.0}
	scopes := [][]int{{0, 1}, {1, 2}, {2}}
	for i, e := range energies {
		require.NoError(t, g.AddFactor(&constantFactor{vars: scopes[i], energy: e}))
	}

	for _, state := range [][]int{{0, 0, 0}, {1, 0, 1}, {1, 1, 1}} {
		got, evalErr := g.EvaluateEnergy(state)
		require.NoError(t, evalErr)
		assert.InDelta(t, 4.75, got, 1e-12, "energy must be the sum of factor energies for %v", state)
	}
}

// TestEvaluateEnergy_ScopeRestriction verifies each factor sees the state
// restricted to its scope, in scope order.
func TestEvaluateEnergy_ScopeRestriction(t *testing.T) {
	g, err := factorgraph.New([]int{2, 3, 4})
	require.NoError(t, err)

	f1 := &scopedFactor{vars: []int{2, 0}}
	f2 := &scopedFactor{vars: []int{1}}
	require.NoError(t, g.AddFactor(f1))
	require.NoError(t, g.AddFactor(f2))

	_, err = g.EvaluateEnergy([]int{1, 2, 3})
	require.NoError(t, err)

	require.Len(t, f1.seen, 1)
	assert.Equal(t, []int{3, 1}, f1.seen[0], "restriction must follow scope order, not variable order")
	require.Len(t, f2.seen, 1)
	assert.Equal(t, []int{2}, f2.seen[0])
}

// TestEvaluateEnergy_ShapeMismatch verifies short and long states fail
// clearly, with no factor consulted.
func TestEvaluateEnergy_ShapeMismatch(t *testing.T) {
	g, err := factorgraph.New([]int{2, 2})
	require.NoError(t, err)
	f := &scopedFactor{vars: []int{0, 1}}
	require.NoError(t, g.AddFactor(f))

	_, err = g.EvaluateEnergy([]int{1})
	assert.ErrorIs(t, err, factorgraph.ErrStateLength, "short state must error")

	_, err = g.EvaluateEnergy([]int{1, 0, 1})
	assert.ErrorIs(t, err, factorgraph.ErrStateLength, "long state must error")

	assert.Empty(t, f.seen, "no factor must be consulted on shape mismatch")
}

// TestEvaluateEnergy_ScopeOutOfRange verifies a factor scope escaping the
// variable universe surfaces at evaluation time.
func TestEvaluateEnergy_ScopeOutOfRange(t *testing.T) {
	g, err := factorgraph.New([]int{2, 2})
	require.NoError(t, err)
	require.NoError(t, g.AddFactor(&scopedFactor{vars: []int{0, 9}}))

	_, err = g.EvaluateEnergy([]int{0, 1})
	assert.ErrorIs(t, err, factorgraph.ErrVariableOutOfRange)
}

// TestEvaluateEnergy_FactorFailurePropagates verifies factor errors abort the
// evaluation, wrapped but errors.Is-reachable, without disturbing topology.
func TestEvaluateEnergy_FactorFailurePropagates(t *testing.T) {
	g, err := factorgraph.New([]int{2, 2})
	require.NoError(t, err)

	sentinel := errors.New("bad parameters")
	require.NoError(t, g.AddFactor(&constantFactor{vars: []int{0}, energy: 1}))
	require.NoError(t, g.AddFactor(&failingFactor{vars: []int{0, 1}, err: sentinel}))
	require.NoError(t, g.ConnectComponents())

	_, err = g.EvaluateEnergy([]int{0, 0})
	assert.ErrorIs(t, err, sentinel, "factor failure must propagate")

	assert.True(t, g.Analyzed(), "a failed evaluation must not disturb the analysis")
	assert.Equal(t, 1, g.NumEdges())
}

// TestComputeEnergies_TriggersEveryFactor verifies the table-build pass hits
// each factor and is repeatable.
func TestComputeEnergies_TriggersEveryFactor(t *testing.T) {
	g, err := factorgraph.New([]int{2, 2})
	require.NoError(t, err)

	f1 := &constantFactor{vars: []int{0}}
	f2 := &constantFactor{vars: []int{0, 1}}
	require.NoError(t, g.AddFactor(f1))
	require.NoError(t, g.AddFactor(f2))

	require.NoError(t, g.ComputeEnergies())
	assert.Equal(t, 1, f1.computed)
	assert.Equal(t, 1, f2.computed)

	// Repeatable: parameters may change between calls.
	require.NoError(t, g.ComputeEnergies())
	assert.Equal(t, 2, f1.computed)
	assert.Equal(t, 2, f2.computed)
}

// TestComputeEnergies_FailurePropagates verifies a failing table build aborts
// the pass with the factor identified.
func TestComputeEnergies_FailurePropagates(t *testing.T) {
	g, err := factorgraph.New([]int{2})
	require.NoError(t, err)

	sentinel := errors.New("no parameters bound")
	require.NoError(t, g.AddFactor(&failingFactor{vars: []int{0}, err: sentinel}))

	err = g.ComputeEnergies()
	assert.ErrorIs(t, err, sentinel)
	assert.Contains(t, err.Error(), "factor 0", "error must name the failing factor")
}

// TestEvaluateObservationEnergy verifies the observation form delegates to
// the vector form.
func TestEvaluateObservationEnergy(t *testing.T) {
	g, err := factorgraph.New([]int{2, 2})
	require.NoError(t, err)
	require.NoError(t, g.AddFactor(&constantFactor{vars: []int{0, 1}, energy: 2.5}))

	_, err = g.EvaluateObservationEnergy(nil)
	assert.ErrorIs(t, err, factorgraph.ErrNilObservation)

	e, err := g.EvaluateObservationEnergy(factorgraph.VectorObservation{1, 0})
	require.NoError(t, err)
	assert.Equal(t, 2.5, e)

	_, err = g.EvaluateObservationEnergy(factorgraph.VectorObservation{1})
	assert.ErrorIs(t, err, factorgraph.ErrStateLength, "observation shape mismatch must surface")
}
