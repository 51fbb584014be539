package hungarian

import "math"

// Reduce returns a copy of m with each row's minimum finite value subtracted
// from every finite entry of that row, then the same per column. Non-finite
// entries (the +Inf padding of rectangular instances) are skipped on both
// sides: they neither contribute a minimum nor get decreased, so forbidden
// cells stay forbidden.
//
// Post-condition: every row and column holding at least one finite entry
// contains a zero, and no finite entry goes negative. Reducing an
// already-reduced matrix is a no-op (all minima are zero).
//
// The input is treated as read-only; Reduce is a pure function.
//
// Complexity: O(n·m) time, O(n·m) space for the copy.
func Reduce(m [][]float64) [][]float64 {
	out := cloneMatrix(m)
	reduceRows(out)
	reduceCols(out)

	return out
}

// cloneMatrix deep-copies a rectangular float64 matrix.
func cloneMatrix(m [][]float64) [][]float64 {
	out := make([][]float64, len(m))
	for i := range m {
		out[i] = append([]float64(nil), m[i]...)
	}

	return out
}

// reduceRows subtracts each row's minimum finite value in place.
func reduceRows(m [][]float64) {
	for i := range m {
		min := math.Inf(1)
		for _, v := range m[i] {
			if v < min && !math.IsInf(v, 1) {
				min = v
			}
		}
		// A row of pure padding has no finite minimum; leave it alone.
		if math.IsInf(min, 1) {
			continue
		}
		for j, v := range m[i] {
			if !math.IsInf(v, 1) {
				m[i][j] = v - min
			}
		}
	}
}

// reduceCols subtracts each column's minimum finite value in place.
func reduceCols(m [][]float64) {
	if len(m) == 0 {
		return
	}
	for j := range m[0] {
		min := math.Inf(1)
		for i := range m {
			if v := m[i][j]; v < min && !math.IsInf(v, 1) {
				min = v
			}
		}
		if math.IsInf(min, 1) {
			continue
		}
		for i := range m {
			if v := m[i][j]; !math.IsInf(v, 1) {
				m[i][j] = v - min
			}
		}
	}
}

// zeroMask derives the bipartite zero graph of m: mask[i][j] is true when
// cell (i,j) is within eps of zero. Padding cells are +Inf and never pass.
func zeroMask(m [][]float64, eps float64) [][]bool {
	mask := make([][]bool, len(m))
	for i := range m {
		mask[i] = make([]bool, len(m[i]))
		for j, v := range m[i] {
			mask[i][j] = math.Abs(v) <= eps
		}
	}

	return mask
}
