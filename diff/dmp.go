// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package diff produces the hunk lists that feed the alignment engine.
package diff

import "github.com/sergi/go-diff/diffmatchpatch"

// =============================================================================
// DIFF-MATCH-PATCH ADAPTER
// =============================================================================

// DiffMatchPatchHunks diffs two versions with sergi/go-diff in line mode
// and converts the result into the shared hunk model. Hunks come out
// change-only (no context), ordered, with 1-indexed positions.
func DiffMatchPatchHunks(oldContent, newContent string) []Hunk {
	dmp := diffmatchpatch.New()
	oldChars, newChars, lineArray := dmp.DiffLinesToChars(oldContent, newContent)
	diffs := dmp.DiffCharsToLines(dmp.DiffMain(oldChars, newChars, false), lineArray)
	return HunksFromDiffs(diffs)
}

// HunksFromDiffs converts line-mode diffmatchpatch output into hunks. Each
// diff's text is a run of whole lines; equal runs advance both cursors and
// close the pending hunk, delete/insert runs accumulate removed/added
// lines into it.
func HunksFromDiffs(diffs []diffmatchpatch.Diff) []Hunk {
	var hunks []Hunk

	oldPos, newPos := 1, 1 // 1-indexed next line on each side
	var pending *Hunk

	flush := func() {
		if pending != nil {
			hunks = append(hunks, *pending)
			pending = nil
		}
	}
	open := func() *Hunk {
		if pending == nil {
			pending = &Hunk{OldStart: oldPos, NewStart: newPos}
		}
		return pending
	}

	for _, d := range diffs {
		lines := SplitLines(d.Text)
		switch d.Type {
		case diffmatchpatch.DiffEqual:
			flush()
			oldPos += len(lines)
			newPos += len(lines)
		case diffmatchpatch.DiffDelete:
			h := open()
			for _, line := range lines {
				h.Lines = append(h.Lines, Line{
					Type:    LineRemoved,
					Content: line,
					OldLine: oldPos,
				})
				h.OldCount++
				oldPos++
			}
		case diffmatchpatch.DiffInsert:
			h := open()
			for _, line := range lines {
				h.Lines = append(h.Lines, Line{
					Type:    LineAdded,
					Content: line,
					NewLine: newPos,
				})
				h.NewCount++
				newPos++
			}
		}
	}
	flush()

	return hunks
}
