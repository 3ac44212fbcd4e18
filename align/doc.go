// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package align computes line-range correspondences between two versions
// of a file.
//
// An alignment is an ordered list of (before, after) span pairs that
// covers both versions completely, with each pair tagged changed or
// unchanged. The dual-pane renderer, scroll sync, and annotation
// placement all consume this one structure.
//
// # Key Types
//
//   - Span: half-open [Start, End) interval of 0-indexed line positions
//   - Alignment: paired before/after Span plus a Changed flag
//   - Hunk: externally computed change block (0-indexed start/length pairs)
//   - Strategy: selects between the two alignment producers
//
// # Usage
//
// Align two versions directly from their lines:
//
//	ranges := align.Match(beforeLines, afterLines)
//
// Or translate an external differ's hunk list:
//
//	ranges := align.FromHunks(hunks, len(beforeLines), len(afterLines))
//
// Both producers honor the same output invariants (full coverage,
// adjacency, equal-length unchanged spans), so consumers never need to
// know which one ran.
package align
