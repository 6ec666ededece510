// Package pgm is the structured-prediction graph core of a machine-learning
// toolbox: factor graphs over discrete variables, the union-find substrate
// for analyzing their topology, and deterministic energy scoring of full
// assignments.
//
// What is pgmkit/pgm?
//
//	A pure-Go library that brings together:
//		• disjointset/  — union-find with path compression + union by rank:
//		  amortized near-constant find/union, component labeling and counts
//		• factorgraph/  — the Graph type: per-variable cardinalities, shared
//		  Factor and DataSource references, topology analysis (edges, cycles,
//		  connectivity, tree-ness) and additive energy evaluation
//
// Why choose it?
//
//   - Minimal API with explicit contracts — Factor is a three-method
//     interface, everything else is plain data
//   - Deterministic analysis — stable component labelings, reproducible
//     energy sums
//   - Pure Go — no cgo, no hidden deps
//
// Quick ASCII example (a chain model, which is a tree):
//
//	x0 ──[f01]── x1 ──[f12]── x2
//
//	g, _ := factorgraph.New([]int{2, 2, 2})
//	g.AddFactor(f01) // scope {0,1}
//	g.AddFactor(f12) // scope {1,2}
//	g.ConnectComponents()
//	g.IsTree() // true — exact inference applies
//
// Inference and learning algorithms are deliberately out of scope: this
// module is the data structure and scoring layer they consume.
package pgm
