// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package pane builds the render-ready structures for dual-pane diff
// display.
package pane

import "github.com/jeranaias/reviewdiff/align"

// =============================================================================
// PANE TYPES
// =============================================================================

// Kind classifies a rendered pane line.
type Kind int

const (
	// KindContext is a line present in both versions
	KindContext Kind = iota
	// KindAdded is a line only in the new version (after pane only)
	KindAdded
	// KindRemoved is a line only in the old version (before pane only)
	KindRemoved
)

// String returns the string representation of a pane line kind.
func (k Kind) String() string {
	switch k {
	case KindContext:
		return "context"
	case KindAdded:
		return "added"
	case KindRemoved:
		return "removed"
	default:
		return "unknown"
	}
}

// Line is one rendered line in a pane.
type Line struct {
	Kind    Kind   // How the line should be styled
	Number  int    // 1-indexed line number in its source version
	Content string // The line's text
}

// Range aligns an index range of the before pane with an index range of
// the after pane. Unlike align.Alignment, the spans here are positions in
// the two pane slices Build returns, which is what scroll sync and visual
// connectors operate on. For changed ranges, OldSource and NewSource carry
// the corresponding 1-indexed source line spans so annotations can be
// pinned back to real file positions; for unchanged ranges they are empty.
type Range struct {
	Before    align.Span // Index range in the before pane slice
	After     align.Span // Index range in the after pane slice
	Changed   bool       // Whether the region differs between versions
	OldSource align.Span // 1-indexed old-version lines (changed ranges)
	NewSource align.Span // 1-indexed new-version lines (changed ranges)
}
