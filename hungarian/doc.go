// Package hungarian solves the bipartite minimum-cost assignment problem:
// given an n₁×n₂ matrix of non-negative pairing costs, find a one-to-one
// row→column pairing of minimum total cost.
//
// 🚀 What is the Hungarian method?
//
//	The classical zero-cover augmentation algorithm:
//	  1. Pad the matrix to a square and subtract row/column minima, so every
//	     row and column holds at least one zero.
//	  2. Treat zero-cost cells as edges of a bipartite "zero graph" and grow
//	     a maximum matching with Kuhn's augmenting-path search.
//	  3. While the matching is too small, derive a minimum vertex cover via
//	     König's theorem, find the smallest uncovered value δ, subtract δ
//	     from uncovered cells and add δ to doubly-covered ones.
//	  4. Read the final zero-matching back as the assignment.
//
// ✨ Key properties:
//   - Deterministic: rows and columns are always scanned in ascending order,
//     so identical inputs yield identical assignments.
//   - Pure: one Solve call owns all intermediate state; the caller's cost
//     matrix is never mutated and concurrent solves never interfere.
//   - Tolerance-driven: a single epsilon governs the zero test everywhere
//     (mask construction, cover derivation, δ adjustment).
//   - Rectangular-safe: padding cells carry +Inf and can never be chosen,
//     so no result ever references a non-existent row or column.
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/pairkit/hungarian"
//
//	cost := [][]float64{
//	  {4, 1, 3},
//	  {2, 0, 5},
//	  {3, 2, 2},
//	}
//	assignment, err := hungarian.Solve(cost, nil) // nil ⇒ DefaultOptions
//	// assignment[i] = column paired with row i, or hungarian.Unassigned
//
// Performance:
//
//   - Time:   O(n³) worst case (n augmenting searches of O(n²) each,
//     at most n adjustment rounds)
//   - Memory: O(n²) for the padded working matrix and zero mask
//
// Callers needing bounded latency on large n should set
// Options.MaxIterations and treat ErrIterationLimit as a timeout-like
// failure distinct from infeasibility.
package hungarian
