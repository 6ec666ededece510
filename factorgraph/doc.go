// Package factorgraph models joint distributions over discrete variables as
// a factor graph: local energy factors over variable subsets, plus the
// topology analysis and energy scoring that inference and learning code
// build on.
//
// What:
//
//   - Graph owns a per-variable cardinality vector, shared Factor references,
//     and opaque shared DataSource references.
//   - ConnectComponents derives topology (edge count, cycles, components)
//     from the factor scopes via union-find (package disjointset).
//   - IsAcyclic / IsConnected / IsTree answer the usual structure queries —
//     a tree-structured model admits exact inference.
//   - ComputeEnergies + EvaluateEnergy score complete assignments: each
//     factor sees the state restricted to its scope, energies are summed.
//   - Duplicate reuses graph structure across evaluation calls while sharing
//     the underlying factors.
//   - TableFactor is a dense table-driven Factor implementation.
//
// Why:
//
//   - Structured prediction: the graph is the structured input scored by
//     energy-based models.
//   - Inference planning: tree detection selects exact vs. approximate
//     message passing.
//
// Topology lifecycle:
//
//	Adding a factor invalidates a prior analysis; re-run ConnectComponents
//	before trusting IsAcyclic / IsConnected / IsTree / NumEdges again.
//	Queries made before any analysis return permissive defaults; Analyzed()
//	tells the two states apart.
//
// Complexity:
//
//   - ConnectComponents: O(S·α(V)), S = total scope size over all factors.
//   - EvaluateEnergy:    O(S) plus factor lookup costs.
//
// Errors:
//
//   - ErrEmptyCardinalities, ErrBadCardinality: bad variable universe.
//   - ErrVariableOutOfRange, ErrDuplicateVariable: bad factor scope.
//   - ErrStateLength: assignment shape mismatch.
//   - Factor-level failures propagate wrapped with the factor index.
package factorgraph
