// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package diff produces the hunk lists that feed the alignment engine.
package diff

import (
	"fmt"
	"strings"
)

// =============================================================================
// LINE TYPES
// =============================================================================

// LineType represents the type of a diff line.
type LineType int

const (
	// LineContext represents unchanged context lines
	LineContext LineType = iota
	// LineAdded represents added lines
	LineAdded
	// LineRemoved represents removed lines
	LineRemoved
)

// String returns the string representation of a line type.
func (t LineType) String() string {
	switch t {
	case LineContext:
		return "context"
	case LineAdded:
		return "added"
	case LineRemoved:
		return "removed"
	default:
		return "unknown"
	}
}

// Prefix returns the unified-diff prefix character for this line type.
func (t LineType) Prefix() string {
	switch t {
	case LineContext:
		return " "
	case LineAdded:
		return "+"
	case LineRemoved:
		return "-"
	default:
		return " "
	}
}

// =============================================================================
// LINE
// =============================================================================

// Line represents a single line in a diff.
type Line struct {
	Type    LineType // Type of line (added, removed, context)
	Content string   // The actual line content
	OldLine int      // 1-indexed line number in the old version (0 if added)
	NewLine int      // 1-indexed line number in the new version (0 if removed)
}

// =============================================================================
// HUNK
// =============================================================================

// Hunk represents a contiguous section of a diff: the changed lines plus
// any surrounding context the producer chose to include. Starts are
// 1-indexed; counts cover every line in the hunk, context included.
type Hunk struct {
	OldStart int    // Starting line in the old version
	OldCount int    // Number of old-version lines in the hunk
	NewStart int    // Starting line in the new version
	NewCount int    // Number of new-version lines in the hunk
	Lines    []Line // The hunk's lines in order
}

// =============================================================================
// STATS
// =============================================================================

// FileMode classifies what happened to the file as a whole.
type FileMode string

const (
	FileNew      FileMode = "new"
	FileModified FileMode = "modified"
	FileDeleted  FileMode = "deleted"
)

// Stats holds summary statistics about a diff.
type Stats struct {
	Additions int      // Number of added lines
	Deletions int      // Number of removed lines
	Mode      FileMode // What happened to the file
}

// =============================================================================
// DIFF
// =============================================================================

// Diff represents a complete diff for one file.
type Diff struct {
	Path  string // Path of the file being diffed
	Hunks []Hunk // The diff hunks in order
	Stats Stats  // Summary statistics
}

// Summary returns a human-readable one-line summary of the diff.
func (d *Diff) Summary() string {
	var parts []string

	switch d.Stats.Mode {
	case FileNew:
		parts = append(parts, "New file")
	case FileDeleted:
		parts = append(parts, "File deleted")
	default:
		parts = append(parts, "Modified")
	}

	if d.Stats.Additions > 0 {
		parts = append(parts, fmt.Sprintf("+%d", d.Stats.Additions))
	}
	if d.Stats.Deletions > 0 {
		parts = append(parts, fmt.Sprintf("-%d", d.Stats.Deletions))
	}

	return strings.Join(parts, " ")
}
