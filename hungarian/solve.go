package hungarian

import "math"

// Solve computes a minimum-cost one-to-one assignment for the given
// rectangular cost matrix.
//
// The result has one entry per row: the paired column index, or Unassigned
// when the row stayed unpaired (possible only for rectangular inputs or a
// TargetPairs below the row count). The caller's matrix is read-only; all
// working state is local to the call, so concurrent solves on distinct
// matrices are safe.
//
// Algorithm outline:
//  1. Validate shape and values (non-empty, rectangular, finite, ≥0).
//  2. Pad to a square n×n matrix, n = max(rows, cols), with +Inf sentinels
//     that can never become zeros.
//  3. Subtract row and column minima (Reduce).
//  4. Loop: build the zero mask, compute a maximum matching; stop once its
//     size reaches the target. Otherwise derive a König cover, find the
//     minimum uncovered value δ, subtract δ from uncovered cells and add δ
//     to doubly-covered ones.
//  5. Project the final zero-matching onto the original row/column ranges.
//
// Each non-terminating pass strictly enlarges the maximum matching, so the
// loop finishes in at most n passes for finite inputs. A pass that finds no
// finite uncovered δ means the target is unreachable: ErrInfeasibleTarget.
//
// Errors: ErrEmptyMatrix, ErrRaggedMatrix, ErrNegativeCost,
// ErrNonFiniteCost, ErrBadOption, ErrInfeasibleTarget, ErrIterationLimit.
//
// Complexity: O(n³) time, O(n²) memory.
func Solve(cost [][]float64, opts *Options) ([]int, error) {
	// Stage 1: shape and value validation, before any allocation-heavy work.
	n1, n2, err := validateMatrix(cost)
	if err != nil {
		return nil, err
	}

	// Stage 2: resolve options against defaults.
	eps := DefaultEpsilon
	target := n1
	maxIter := 0
	if opts != nil {
		if opts.Epsilon < 0 || opts.TargetPairs < 0 || opts.MaxIterations < 0 {
			return nil, ErrBadOption
		}
		if opts.Epsilon > 0 {
			eps = opts.Epsilon
		}
		if opts.TargetPairs > 0 {
			target = opts.TargetPairs
		}
		maxIter = opts.MaxIterations
	}
	if limit := minInt(n1, n2); target > limit {
		// More pairings demanded than the smaller side can supply.
		return nil, ErrInfeasibleTarget
	}

	// Stage 3: pad to square and reduce.
	m := Reduce(pad(cost, n1, n2))

	// Stage 4: zero-cover augmentation loop.
	var mask [][]bool
	iterations := 0
	for {
		iterations++
		if maxIter > 0 && iterations > maxIter {
			return nil, ErrIterationLimit
		}

		mask = zeroMask(m, eps)
		rowMatch, colMatch, size := MaxMatching(mask)
		if size >= target {
			break
		}

		coveredRows, coveredCols := MinVertexCover(mask, rowMatch, colMatch)

		// Smallest finite value escaping the cover.
		delta := math.Inf(1)
		for i := range m {
			if coveredRows[i] {
				continue
			}
			for j, v := range m[i] {
				if !coveredCols[j] && v < delta {
					delta = v
				}
			}
		}
		if math.IsInf(delta, 1) {
			// Every reachable cell is covered: the target cannot be met.
			return nil, ErrInfeasibleTarget
		}

		// Shift mass: uncovered cells drop by δ, doubly-covered cells rise.
		// Singly-covered cells and +Inf padding are untouched (Inf±δ = Inf).
		for i := range m {
			for j, v := range m[i] {
				switch {
				case !coveredRows[i] && !coveredCols[j]:
					m[i][j] = v - delta
				case coveredRows[i] && coveredCols[j] && !math.IsInf(v, 1):
					m[i][j] = v + delta
				}
			}
		}
	}

	// Stage 5: read the pairing off the final zero mask.
	return extract(mask, n1, n2), nil
}

// validateMatrix checks shape and values, returning the logical dimensions.
func validateMatrix(cost [][]float64) (rows, cols int, err error) {
	rows = len(cost)
	if rows == 0 {
		return 0, 0, ErrEmptyMatrix
	}
	cols = len(cost[0])
	if cols == 0 {
		return 0, 0, ErrEmptyMatrix
	}
	for _, row := range cost {
		if len(row) != cols {
			return 0, 0, ErrRaggedMatrix
		}
		for _, v := range row {
			if math.IsNaN(v) || math.IsInf(v, 0) {
				return 0, 0, ErrNonFiniteCost
			}
			if v < 0 {
				return 0, 0, ErrNegativeCost
			}
		}
	}

	return rows, cols, nil
}

// pad embeds the n1×n2 matrix into an n×n square, n = max(n1, n2), filling
// padding cells with +Inf so they can never join the zero graph.
func pad(cost [][]float64, n1, n2 int) [][]float64 {
	n := n1
	if n2 > n {
		n = n2
	}
	out := make([][]float64, n)
	for i := range out {
		out[i] = make([]float64, n)
		for j := range out[i] {
			if i < n1 && j < n2 {
				out[i][j] = cost[i][j]
			} else {
				out[i][j] = math.Inf(1)
			}
		}
	}

	return out
}

func minInt(a, b int) int {
	if a < b {
		return a
	}

	return b
}
