// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package diff produces the hunk lists that feed the alignment engine.
package diff

import "github.com/jeranaias/reviewdiff/align"

// =============================================================================
// CHANGE BLOCKS
// =============================================================================

// ChangeBlocks projects a hunk list down to the engine's 0-indexed change
// blocks, stripping any context the producer included. Each run of
// removed/added lines inside a hunk becomes one block, so a hunk with
// interior context yields several blocks. The result is ordered and
// non-overlapping whenever the input hunks are.
func ChangeBlocks(hunks []Hunk) []align.Hunk {
	var blocks []align.Hunk

	for _, h := range hunks {
		old0 := max(h.OldStart-1, 0)
		new0 := max(h.NewStart-1, 0)

		run := align.Hunk{}
		inRun := false
		flush := func() {
			if inRun {
				blocks = append(blocks, run)
				inRun = false
			}
		}

		for _, line := range h.Lines {
			switch line.Type {
			case LineContext:
				flush()
				old0++
				new0++
			case LineRemoved:
				if !inRun {
					run = align.Hunk{OldStart: old0, NewStart: new0}
					inRun = true
				}
				run.OldLines++
				old0++
			case LineAdded:
				if !inRun {
					run = align.Hunk{OldStart: old0, NewStart: new0}
					inRun = true
				}
				run.NewLines++
				new0++
			}
		}
		flush()
	}

	return blocks
}
