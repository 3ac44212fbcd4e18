// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package align computes line-range correspondences between two versions
// of a file.
package align

// =============================================================================
// STRATEGY
// =============================================================================

// Strategy selects which alignment producer runs. The two producers solve
// different problems — ContentMatch guesses correspondences from raw lines,
// HunkDerived trusts an external differ's positions — but their outputs
// satisfy the same invariants, so downstream consumers treat them
// interchangeably.
type Strategy int

const (
	// ContentMatch aligns directly from the two line sequences.
	ContentMatch Strategy = iota
	// HunkDerived aligns from a precomputed hunk list.
	HunkDerived
)

// String returns the string representation of a strategy.
func (s Strategy) String() string {
	switch s {
	case ContentMatch:
		return "content-match"
	case HunkDerived:
		return "hunk-derived"
	default:
		return "unknown"
	}
}

// Align runs the selected producer. ContentMatch ignores hunks;
// HunkDerived uses only the lengths of before and after.
func Align(s Strategy, before, after []string, hunks []Hunk) []Alignment {
	if s == HunkDerived {
		return FromHunks(hunks, len(before), len(after))
	}
	return Match(before, after)
}
