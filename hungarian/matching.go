package hungarian

// MaxMatching computes a maximum matching over the bipartite zero graph
// using Kuhn's augmenting-path algorithm: for each row in ascending order,
// a depth-first search looks for an alternating path ending in an unmatched
// column and flips the matches along it.
//
// It returns the matching as two inverse arrays — rowMatch[i] is the column
// matched to row i and colMatch[j] the row matched to column j, either side
// Unassigned when free — plus the matching size. The mapping is injective in
// both directions by construction.
//
// Deterministic: rows and columns are scanned in ascending index order, so
// equal inputs always produce the same matching.
//
// Complexity: O(n³) worst case — n augmenting searches, each visiting every
// edge at most once thanks to the per-attempt visited-column set (which also
// bounds recursion depth by the number of columns).
func MaxMatching(zero [][]bool) (rowMatch, colMatch []int, size int) {
	rows := len(zero)
	cols := 0
	if rows > 0 {
		cols = len(zero[0])
	}

	rowMatch = make([]int, rows)
	colMatch = make([]int, cols)
	for i := range rowMatch {
		rowMatch[i] = Unassigned
	}
	for j := range colMatch {
		colMatch[j] = Unassigned
	}

	seen := make([]bool, cols)
	for r := 0; r < rows; r++ {
		// Fresh visited set per augmentation attempt.
		for j := range seen {
			seen[j] = false
		}
		if augment(r, zero, seen, rowMatch, colMatch) {
			size++
		}
	}

	return rowMatch, colMatch, size
}

// augment tries to match row r, displacing already-matched rows along an
// alternating path when necessary. Returns true when the matching grew.
func augment(r int, zero [][]bool, seen []bool, rowMatch, colMatch []int) bool {
	for c := range zero[r] {
		if !zero[r][c] || seen[c] {
			continue
		}
		seen[c] = true
		if colMatch[c] == Unassigned || augment(colMatch[c], zero, seen, rowMatch, colMatch) {
			rowMatch[r] = c
			colMatch[c] = r

			return true
		}
	}

	return false
}
