// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package pane builds the render-ready structures for dual-pane diff
// display.
package pane

import (
	"github.com/jeranaias/reviewdiff/align"
	"github.com/jeranaias/reviewdiff/diff"
)

// =============================================================================
// BUILDER
// =============================================================================

// builder accumulates both panes and the range list during one Build
// call. Cursors track the next unconsumed 1-indexed source line on each
// side; removed/added lines buffer up inside a hunk until a context line
// or the hunk's end flushes them as one changed range.
type builder struct {
	beforeSrc []string
	afterSrc  []string

	before []Line
	after  []Line
	ranges []Range

	oldPos int // 1-indexed next old source line
	newPos int // 1-indexed next new source line

	removed []Line
	added   []Line
}

// Build produces the two pane line slices and the pane-index range list
// for a file, from its full contents plus the hunk list. A nil content
// pointer models an absent side (added or deleted file): that pane gets
// no lines outside the hunks, and no error is ever returned because
// absence is an expected state.
//
// Hunks may include context lines or not; both shapes produce full panes
// because unchanged regions between hunks are copied from the contents.
func Build(beforeContent, afterContent *string, hunks []diff.Hunk) (before, after []Line, ranges []Range) {
	b := &builder{oldPos: 1, newPos: 1}
	if beforeContent != nil {
		b.beforeSrc = diff.SplitLines(*beforeContent)
	}
	if afterContent != nil {
		b.afterSrc = diff.SplitLines(*afterContent)
	}

	for _, h := range hunks {
		b.copyUnchanged(h.OldStart, h.NewStart)
		for _, line := range h.Lines {
			switch line.Type {
			case diff.LineContext:
				b.flushChanged()
				b.context(line)
			case diff.LineRemoved:
				b.removed = append(b.removed, Line{
					Kind:    KindRemoved,
					Number:  line.OldLine,
					Content: line.Content,
				})
			case diff.LineAdded:
				b.added = append(b.added, Line{
					Kind:    KindAdded,
					Number:  line.NewLine,
					Content: line.Content,
				})
			}
		}
		b.flushChanged()
	}

	// Unchanged tail after the last hunk.
	b.copyUnchanged(len(b.beforeSrc)+1, len(b.afterSrc)+1)

	return b.before, b.after, b.ranges
}

// copyUnchanged copies source lines into both panes up to (but not
// including) the given 1-indexed targets, recording one unchanged range
// over whatever was copied. A zero target means that side has no position
// for the coming hunk and is left alone.
func (b *builder) copyUnchanged(oldTarget, newTarget int) {
	bStart, aStart := len(b.before), len(b.after)

	for oldTarget > 0 && b.oldPos < oldTarget && b.oldPos <= len(b.beforeSrc) {
		b.before = append(b.before, Line{
			Kind:    KindContext,
			Number:  b.oldPos,
			Content: b.beforeSrc[b.oldPos-1],
		})
		b.oldPos++
	}
	for newTarget > 0 && b.newPos < newTarget && b.newPos <= len(b.afterSrc) {
		b.after = append(b.after, Line{
			Kind:    KindContext,
			Number:  b.newPos,
			Content: b.afterSrc[b.newPos-1],
		})
		b.newPos++
	}

	if len(b.before) > bStart || len(b.after) > aStart {
		b.ranges = append(b.ranges, Range{
			Before: align.Span{Start: bStart, End: len(b.before)},
			After:  align.Span{Start: aStart, End: len(b.after)},
		})
	}
}

// context appends one context line identically to both panes as its own
// unchanged range and advances both cursors past it.
func (b *builder) context(line diff.Line) {
	oldNum, newNum := line.OldLine, line.NewLine
	if oldNum == 0 {
		oldNum = b.oldPos
	}
	if newNum == 0 {
		newNum = b.newPos
	}

	bStart, aStart := len(b.before), len(b.after)
	b.before = append(b.before, Line{Kind: KindContext, Number: oldNum, Content: line.Content})
	b.after = append(b.after, Line{Kind: KindContext, Number: newNum, Content: line.Content})
	b.oldPos = oldNum + 1
	b.newPos = newNum + 1

	b.ranges = append(b.ranges, Range{
		Before: align.Span{Start: bStart, End: len(b.before)},
		After:  align.Span{Start: aStart, End: len(b.after)},
	})
}

// flushChanged emits any buffered removed/added run as one changed range.
// The two sides commonly differ in length; that is the normal shape of a
// replacement and the range simply spans each side's own lines.
func (b *builder) flushChanged() {
	if len(b.removed) == 0 && len(b.added) == 0 {
		return
	}

	bStart, aStart := len(b.before), len(b.after)
	oldSource := align.Span{Start: b.oldPos, End: b.oldPos}
	newSource := align.Span{Start: b.newPos, End: b.newPos}

	if len(b.removed) > 0 {
		oldSource.Start = b.removed[0].Number
		oldSource.End = b.removed[len(b.removed)-1].Number + 1
		b.oldPos = oldSource.End
	}
	if len(b.added) > 0 {
		newSource.Start = b.added[0].Number
		newSource.End = b.added[len(b.added)-1].Number + 1
		b.newPos = newSource.End
	}

	b.before = append(b.before, b.removed...)
	b.after = append(b.after, b.added...)
	b.removed = nil
	b.added = nil

	b.ranges = append(b.ranges, Range{
		Before:    align.Span{Start: bStart, End: len(b.before)},
		After:     align.Span{Start: aStart, End: len(b.after)},
		Changed:   true,
		OldSource: oldSource,
		NewSource: newSource,
	})
}
