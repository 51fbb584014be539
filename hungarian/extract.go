package hungarian

// extract recomputes the maximum matching on the final zero mask and
// projects it onto the original, unpadded dimensions: one entry per real
// row, holding either a real column index or Unassigned. A padded row or
// column (index ≥ the original dimension) is never reported — padding cells
// carry +Inf and cannot appear in the mask, but the range check stays as a
// guard for the projection contract.
//
// The returned slice is freshly allocated and immutable from the engine's
// point of view: nothing retains a reference after Solve returns.
func extract(zero [][]bool, rows, cols int) []int {
	_, colMatch, _ := MaxMatching(zero)

	assignment := make([]int, rows)
	for i := range assignment {
		assignment[i] = Unassigned
	}
	for c, r := range colMatch {
		if r != Unassigned && r < rows && c < cols {
			assignment[r] = c
		}
	}

	return assignment
}
