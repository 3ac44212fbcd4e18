// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package align computes line-range correspondences between two versions
// of a file.
package align

// =============================================================================
// CONTENT MATCHER
// =============================================================================

// block is a run of identical lines: before[Before:Before+Len] equals
// after[After:After+Len].
type block struct {
	Before int
	After  int
	Len    int
}

// matcher holds the scan state for one Match call. Used positions are
// tracked per after-line so a line consumed by one block can never be
// claimed again by a later one.
type matcher struct {
	before    []string
	after     []string
	positions map[string][]int // after-line content -> ordered positions
	used      []bool           // after positions already consumed
}

// Match aligns two versions of a file directly from their lines, with no
// external diff tool involved. It greedily matches runs of identical lines,
// then drops any match that would step backwards in the after dimension,
// and finally fills the gaps between the surviving runs with changed spans.
//
// The result always covers both inputs completely. Both inputs empty
// yields nil.
func Match(before, after []string) []Alignment {
	if ranges, done := whole(len(before), len(after)); done {
		return ranges
	}

	m := &matcher{
		before:    before,
		after:     after,
		positions: make(map[string][]int, len(after)),
		used:      make([]bool, len(after)),
	}
	for j, line := range after {
		m.positions[line] = append(m.positions[line], j)
	}

	blocks := m.scan()
	blocks = monotonic(blocks)
	return fromBlocks(blocks, len(before), len(after))
}

// scan walks before left to right, matching each line against the earliest
// unused occurrence in after and extending the match as long as both sides
// keep agreeing. Blocks come out ordered by Before but not necessarily by
// After: a later before-line may grab an earlier, still-unused after
// position. The monotonic filter resolves that afterwards.
func (m *matcher) scan() []block {
	var blocks []block

	i := 0
	for i < len(m.before) {
		j, ok := m.claim(m.before[i])
		if !ok {
			i++
			continue
		}
		length := 1
		for i+length < len(m.before) && j+length < len(m.after) &&
			!m.used[j+length] && m.before[i+length] == m.after[j+length] {
			length++
		}
		for k := j; k < j+length; k++ {
			m.used[k] = true
		}
		blocks = append(blocks, block{Before: i, After: j, Len: length})
		i += length
	}

	return blocks
}

// claim returns the smallest unused after-position holding the given
// content and marks it used. Returns false when every occurrence is
// already consumed (or the line never occurs in after).
func (m *matcher) claim(line string) (int, bool) {
	for _, j := range m.positions[line] {
		if !m.used[j] {
			m.used[j] = true
			return j, true
		}
	}
	return 0, false
}

// monotonic keeps only blocks whose after-range starts at or past the end
// of the previously kept block's after-range. The earlier-scanned block
// wins a conflict; the later one is discarded rather than reordered, so
// kept blocks are strictly increasing in both dimensions.
func monotonic(blocks []block) []block {
	kept := make([]block, 0, len(blocks))
	afterEnd := 0
	for _, b := range blocks {
		if b.After >= afterEnd {
			kept = append(kept, b)
			afterEnd = b.After + b.Len
		}
	}
	return kept
}

// fromBlocks converts a doubly-monotonic block list into a covering
// alignment list: a changed span for every gap (including zero-width gaps
// on one side, which represent pure insertions or deletions at that point)
// and an unchanged span for every block.
func fromBlocks(blocks []block, beforeLen, afterLen int) []Alignment {
	var ranges []Alignment
	bPos, aPos := 0, 0

	for _, b := range blocks {
		if bPos < b.Before || aPos < b.After {
			ranges = append(ranges, Alignment{
				Before:  Span{bPos, b.Before},
				After:   Span{aPos, b.After},
				Changed: true,
			})
		}
		ranges = append(ranges, Alignment{
			Before: Span{b.Before, b.Before + b.Len},
			After:  Span{b.After, b.After + b.Len},
		})
		bPos = b.Before + b.Len
		aPos = b.After + b.Len
	}

	if bPos < beforeLen || aPos < afterLen {
		ranges = append(ranges, Alignment{
			Before:  Span{bPos, beforeLen},
			After:   Span{aPos, afterLen},
			Changed: true,
		})
	}

	return ranges
}
