// Package hungarian core types and configuration.
//
// Sentinel errors follow the package convention: every message is prefixed
// with "hungarian: ", callers match them via errors.Is, and no user-triggered
// condition ever panics.
package hungarian

import "errors"

// Unassigned marks a row with no valid pairing in a returned assignment,
// and an unmatched vertex inside the internal matching arrays.
const Unassigned = -1

// DefaultEpsilon is the shared numeric tolerance for the zero test. The same
// value governs zero-mask construction, cover derivation and the δ-adjustment
// step; threading a single constant through all three is what keeps the
// tolerance consistent by construction.
const DefaultEpsilon = 1e-6

// Sentinel errors returned by the assignment engine.
var (
	// ErrEmptyMatrix indicates a nil cost matrix, zero rows, or a zero-width row.
	ErrEmptyMatrix = errors.New("hungarian: cost matrix is empty")

	// ErrRaggedMatrix indicates rows of inconsistent length.
	ErrRaggedMatrix = errors.New("hungarian: cost matrix rows have unequal length")

	// ErrNegativeCost indicates a negative entry; reduction invariants require
	// non-negative costs, so the input is rejected before any work begins.
	ErrNegativeCost = errors.New("hungarian: negative cost entry")

	// ErrNonFiniteCost indicates a NaN or ±Inf entry in the caller's matrix.
	// +Inf is reserved for internal padding and may not appear in real cells.
	ErrNonFiniteCost = errors.New("hungarian: non-finite cost entry")

	// ErrBadOption indicates a nonsensical Options value (negative Epsilon,
	// TargetPairs or MaxIterations).
	ErrBadOption = errors.New("hungarian: invalid option value")

	// ErrInfeasibleTarget indicates that the required pairing count cannot be
	// met: either TargetPairs exceeds min(rows, cols) up front, or the
	// augmentation loop stalled with every cell covered. Hard failure, never
	// retried — the algorithm is deterministic.
	ErrInfeasibleTarget = errors.New("hungarian: target pairing count is unreachable")

	// ErrIterationLimit indicates that the augmentation loop exceeded
	// Options.MaxIterations. Distinct from ErrInfeasibleTarget: a solution may
	// still exist, the caller simply bounded the work.
	ErrIterationLimit = errors.New("hungarian: iteration limit exceeded")
)

// Options configures a Solve call.
//
// Epsilon       – numeric tolerance for the zero test (0 ⇒ DefaultEpsilon;
//
//	negative ⇒ ErrBadOption).
// TargetPairs   – required number of pairings (0 ⇒ number of rows).
//
//	Must not exceed min(rows, cols); negative ⇒ ErrBadOption.
//
// MaxIterations – cap on augmentation-loop passes (0 ⇒ unlimited).
//
//	Each pass is one mask/match/adjust round; negative ⇒ ErrBadOption.
type Options struct {
	Epsilon       float64 // Zero-test tolerance shared across the whole solve
	TargetPairs   int     // Required pairing count; 0 means "one per row"
	MaxIterations int     // Loop-pass budget; 0 means unlimited
}

// DefaultOptions returns the documented defaults. Use this as a starting
// point and override fields before passing &opts to Solve.
//
// Defaults:
//   - Epsilon:       DefaultEpsilon (1e-6)
//   - TargetPairs:   0 (pair every row)
//   - MaxIterations: 0 (no cap)
func DefaultOptions() Options {
	return Options{
		Epsilon:       DefaultEpsilon,
		TargetPairs:   0,
		MaxIterations: 0,
	}
}
