// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package diff produces the hunk lists that feed the alignment engine.
package diff

import "github.com/pmezard/go-difflib/difflib"

// =============================================================================
// DIFFLIB ADAPTER
// =============================================================================

// DifflibHunks diffs two line slices with pmezard/go-difflib's sequence
// matcher and converts its opcodes into the shared hunk model. Hunks come
// out change-only (no context), ordered, with 1-indexed positions.
// Adjacent non-equal opcodes collapse into a single hunk.
func DifflibHunks(oldLines, newLines []string) []Hunk {
	matcher := difflib.NewMatcher(oldLines, newLines)

	var hunks []Hunk
	var pending *Hunk

	flush := func() {
		if pending != nil {
			hunks = append(hunks, *pending)
			pending = nil
		}
	}

	for _, op := range matcher.GetOpCodes() {
		if op.Tag == 'e' {
			flush()
			continue
		}
		if pending == nil {
			pending = &Hunk{OldStart: op.I1 + 1, NewStart: op.J1 + 1}
		}
		for i := op.I1; i < op.I2; i++ {
			pending.Lines = append(pending.Lines, Line{
				Type:    LineRemoved,
				Content: oldLines[i],
				OldLine: i + 1,
			})
			pending.OldCount++
		}
		for j := op.J1; j < op.J2; j++ {
			pending.Lines = append(pending.Lines, Line{
				Type:    LineAdded,
				Content: newLines[j],
				NewLine: j + 1,
			})
			pending.NewCount++
		}
	}
	flush()

	return hunks
}
