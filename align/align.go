// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package align computes line-range correspondences between two versions
// of a file.
package align

import "fmt"

// =============================================================================
// SPAN
// =============================================================================

// Span is a half-open interval [Start, End) over 0-indexed line positions
// in one sequence. Start <= End always holds for spans built by this package.
type Span struct {
	Start int // First line position in the span
	End   int // One past the last line position
}

// Len returns the number of lines covered by the span.
func (s Span) Len() int {
	return s.End - s.Start
}

// Empty reports whether the span covers no lines.
func (s Span) Empty() bool {
	return s.Start == s.End
}

// String returns the span in [start, end) notation.
func (s Span) String() string {
	return fmt.Sprintf("[%d, %d)", s.Start, s.End)
}

// =============================================================================
// ALIGNMENT
// =============================================================================

// Alignment pairs a span of before-lines with the corresponding span of
// after-lines. When Changed is false the two spans hold identical content
// and therefore have equal length; when Changed is true the spans bound a
// modified region and may differ in length (either may even be empty, for
// a pure insertion or deletion at that point).
//
// A well-formed alignment list for a file pair covers [0, beforeLen) and
// [0, afterLen) completely, with consecutive elements adjacent in both
// dimensions.
type Alignment struct {
	Before  Span // Line range in the old version
	After   Span // Line range in the new version
	Changed bool // Whether the region differs between versions
}

// String returns a compact rendering for test failures and debugging.
func (a Alignment) String() string {
	tag := "same"
	if a.Changed {
		tag = "changed"
	}
	return fmt.Sprintf("{%s %s/%s}", tag, a.Before, a.After)
}

// whole returns the trivial alignment list for the degenerate shapes every
// producer shares: both sides empty (nothing to align), one side empty
// (single changed span covering the other side). The second return is false
// when both sides are nonempty and the caller must do real work.
func whole(beforeLen, afterLen int) ([]Alignment, bool) {
	switch {
	case beforeLen == 0 && afterLen == 0:
		return nil, true
	case beforeLen == 0:
		return []Alignment{{
			Before:  Span{0, 0},
			After:   Span{0, afterLen},
			Changed: true,
		}}, true
	case afterLen == 0:
		return []Alignment{{
			Before:  Span{0, beforeLen},
			After:   Span{0, 0},
			Changed: true,
		}}, true
	}
	return nil, false
}
