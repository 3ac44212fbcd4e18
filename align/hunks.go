// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package align computes line-range correspondences between two versions
// of a file.
package align

// =============================================================================
// HUNK TRANSLATION
// =============================================================================

// Hunk is an externally computed change block: OldLines lines starting at
// OldStart were replaced by NewLines lines starting at NewStart. Positions
// are 0-indexed; either length may be zero for a pure insertion or
// deletion. Hunk lists handed to FromHunks must already be ordered and
// non-overlapping in both dimensions — that is the producing differ's
// contract, and it is trusted rather than re-validated here.
type Hunk struct {
	OldStart int // First changed line in the old version
	OldLines int // Number of old lines replaced
	NewStart int // First changed line in the new version
	NewLines int // Number of new lines inserted
}

// FromHunks builds an alignment list from an external differ's hunk list
// plus the two versions' total line counts. Hunk positions are
// authoritative, so unlike Match there is no guessing: the regions between
// hunks are unchanged by definition, and each hunk maps verbatim to one
// changed span pair.
//
// An empty hunk list with content on both sides is a no-op diff (for
// example a permission-only change) and yields a single unchanged span
// covering everything.
func FromHunks(hunks []Hunk, beforeLen, afterLen int) []Alignment {
	if len(hunks) == 0 {
		if ranges, done := whole(beforeLen, afterLen); done {
			return ranges
		}
		return []Alignment{{
			Before: Span{0, beforeLen},
			After:  Span{0, afterLen},
		}}
	}

	var ranges []Alignment
	bPos, aPos := 0, 0

	for _, h := range hunks {
		if bPos < h.OldStart || aPos < h.NewStart {
			// The gap sizes should agree; if a producer hands us hunks
			// where they don't, emit each side's own bounds rather than
			// fail, so coverage still holds per side.
			ranges = append(ranges, Alignment{
				Before: Span{bPos, h.OldStart},
				After:  Span{aPos, h.NewStart},
			})
		}
		ranges = append(ranges, Alignment{
			Before:  Span{h.OldStart, h.OldStart + h.OldLines},
			After:   Span{h.NewStart, h.NewStart + h.NewLines},
			Changed: true,
		})
		bPos = h.OldStart + h.OldLines
		aPos = h.NewStart + h.NewLines
	}

	if bPos < beforeLen || aPos < afterLen {
		ranges = append(ranges, Alignment{
			Before: Span{bPos, beforeLen},
			After:  Span{aPos, afterLen},
		})
	}

	return ranges
}
