package hungarian_test

import (
	"testing"

	"github.com/katalvlaran/pairkit/hungarian"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// assertInjective verifies that rowMatch and colMatch are mutually inverse
// and that no column (or row) is claimed twice.
func assertInjective(t *testing.T, rowMatch, colMatch []int) {
	t.Helper()
	for r, c := range rowMatch {
		if c == hungarian.Unassigned {
			continue
		}
		assert.Equal(t, r, colMatch[c], "row %d and column %d must point at each other", r, c)
	}
	for c, r := range colMatch {
		if r == hungarian.Unassigned {
			continue
		}
		assert.Equal(t, c, rowMatch[r], "column %d and row %d must point at each other", c, r)
	}
}

// TestMaxMatching_PerfectOnIdentity verifies that a diagonal zero mask
// yields a perfect matching along the diagonal.
func TestMaxMatching_PerfectOnIdentity(t *testing.T) {
	mask := [][]bool{
		{true, false, false},
		{false, true, false},
		{false, false, true},
	}

	rowMatch, colMatch, size := hungarian.MaxMatching(mask)
	assert.Equal(t, 3, size)
	assert.Equal(t, []int{0, 1, 2}, rowMatch)
	assert.Equal(t, []int{0, 1, 2}, colMatch)
}

// TestMaxMatching_AugmentingPath forces a displacement: row 0 and row 1
// both prefer column 0, and only an alternating path matches everyone.
func TestMaxMatching_AugmentingPath(t *testing.T) {
	mask := [][]bool{
		{true, true},
		{true, false},
	}

	rowMatch, colMatch, size := hungarian.MaxMatching(mask)
	assert.Equal(t, 2, size, "augmentation must rewire row 0 to column 1")
	assert.Equal(t, []int{1, 0}, rowMatch)
	assert.Equal(t, []int{1, 0}, colMatch)
	assertInjective(t, rowMatch, colMatch)
}

// TestMaxMatching_PartialOnly verifies the size on a mask where one row has
// no edges at all.
func TestMaxMatching_PartialOnly(t *testing.T) {
	mask := [][]bool{
		{false, true, false},
		{false, true, false},
		{true, true, true},
	}

	rowMatch, colMatch, size := hungarian.MaxMatching(mask)
	assert.Equal(t, 2, size, "rows 0 and 1 compete for the single column 1")
	assertInjective(t, rowMatch, colMatch)

	unmatched := 0
	for _, c := range rowMatch {
		if c == hungarian.Unassigned {
			unmatched++
		}
	}
	assert.Equal(t, 1, unmatched)
}

// TestMaxMatching_EmptyMask verifies the degenerate all-false mask.
func TestMaxMatching_EmptyMask(t *testing.T) {
	mask := [][]bool{
		{false, false},
		{false, false},
	}

	rowMatch, colMatch, size := hungarian.MaxMatching(mask)
	assert.Equal(t, 0, size)
	assert.Equal(t, []int{hungarian.Unassigned, hungarian.Unassigned}, rowMatch)
	assert.Equal(t, []int{hungarian.Unassigned, hungarian.Unassigned}, colMatch)
}

// TestMaxMatching_Deterministic verifies that repeated runs over the same
// mask produce identical matchings (ascending-order scans, no randomness).
func TestMaxMatching_Deterministic(t *testing.T) {
	mask := [][]bool{
		{true, true, false, true},
		{true, false, true, false},
		{false, true, true, true},
		{true, true, false, false},
	}

	firstRow, firstCol, firstSize := hungarian.MaxMatching(mask)
	for i := 0; i < 5; i++ {
		rowMatch, colMatch, size := hungarian.MaxMatching(mask)
		require.Equal(t, firstSize, size)
		require.Equal(t, firstRow, rowMatch)
		require.Equal(t, firstCol, colMatch)
	}
}
