package hungarian

// MinVertexCover derives a minimum vertex cover of the zero graph from a
// maximum matching, using the constructive form of König's theorem:
//
//  1. Seed a breadth-first alternating search with every unmatched row.
//  2. From a visited row, cross zero edges to unvisited columns; from a
//     newly visited column, follow its matched row (if any) back into the
//     row side. Repeat until no new vertex is reached.
//  3. Cover = (rows NOT visited) ∪ (columns visited).
//
// The returned boolean sets touch every zero-graph edge, and the cover size
// equals the matching size — that equality is what the augmentation loop
// uses as its termination test.
//
// rowMatch and colMatch must be the inverse arrays of a maximum matching on
// zero, as produced by MaxMatching; a non-maximum matching yields a cover
// that may miss edges.
//
// Complexity: O(n²) time, O(n) space beyond the output.
func MinVertexCover(zero [][]bool, rowMatch, colMatch []int) (coveredRows, coveredCols []bool) {
	rows := len(zero)
	cols := len(colMatch)

	visitedRow := make([]bool, rows)
	visitedCol := make([]bool, cols)

	// Roots: rows left unmatched by the maximum matching.
	queue := make([]int, 0, rows)
	for r := 0; r < rows; r++ {
		if rowMatch[r] == Unassigned {
			visitedRow[r] = true
			queue = append(queue, r)
		}
	}

	// Alternating BFS: zero edge to a column, matched edge back to a row.
	for len(queue) > 0 {
		r := queue[0]
		queue = queue[1:]
		for c := 0; c < cols; c++ {
			if !zero[r][c] || visitedCol[c] {
				continue
			}
			visitedCol[c] = true
			if m := colMatch[c]; m != Unassigned && !visitedRow[m] {
				visitedRow[m] = true
				queue = append(queue, m)
			}
		}
	}

	coveredRows = make([]bool, rows)
	coveredCols = make([]bool, cols)
	for r := 0; r < rows; r++ {
		coveredRows[r] = !visitedRow[r]
	}
	copy(coveredCols, visitedCol)

	return coveredRows, coveredCols
}
