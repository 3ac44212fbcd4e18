// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package align computes line-range correspondences between two versions
// of a file.
//
// This file tests the hunk translator and strategy selection.
package align

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFromHunks_SingleHunk(t *testing.T) {
	ranges := FromHunks([]Hunk{
		{OldStart: 2, OldLines: 1, NewStart: 2, NewLines: 2},
	}, 5, 6)

	require.Equal(t, []Alignment{
		{Before: Span{0, 2}, After: Span{0, 2}},
		{Before: Span{2, 3}, After: Span{2, 4}, Changed: true},
		{Before: Span{3, 5}, After: Span{4, 6}},
	}, ranges)
	requireWellFormed(t, ranges, 5, 6)
}

func TestFromHunks_MultipleHunks(t *testing.T) {
	ranges := FromHunks([]Hunk{
		{OldStart: 0, OldLines: 2, NewStart: 0, NewLines: 1},
		{OldStart: 4, OldLines: 0, NewStart: 3, NewLines: 3},
	}, 6, 8)

	require.Equal(t, []Alignment{
		{Before: Span{0, 2}, After: Span{0, 1}, Changed: true},
		{Before: Span{2, 4}, After: Span{1, 3}},
		{Before: Span{4, 4}, After: Span{3, 6}, Changed: true},
		{Before: Span{4, 6}, After: Span{6, 8}},
	}, ranges)
	requireWellFormed(t, ranges, 6, 8)
}

func TestFromHunks_HunkAtVeryEnd(t *testing.T) {
	ranges := FromHunks([]Hunk{
		{OldStart: 3, OldLines: 1, NewStart: 3, NewLines: 0},
	}, 4, 3)

	require.Equal(t, []Alignment{
		{Before: Span{0, 3}, After: Span{0, 3}},
		{Before: Span{3, 4}, After: Span{3, 3}, Changed: true},
	}, ranges)
	requireWellFormed(t, ranges, 4, 3)
}

func TestFromHunks_NoHunks(t *testing.T) {
	t.Run("both sides nonempty is a no-op diff", func(t *testing.T) {
		ranges := FromHunks(nil, 4, 4)
		require.Equal(t, []Alignment{
			{Before: Span{0, 4}, After: Span{0, 4}},
		}, ranges)
	})

	t.Run("empty before is a pure addition", func(t *testing.T) {
		ranges := FromHunks(nil, 0, 3)
		require.Equal(t, []Alignment{
			{Before: Span{0, 0}, After: Span{0, 3}, Changed: true},
		}, ranges)
	})

	t.Run("empty after is a pure deletion", func(t *testing.T) {
		ranges := FromHunks(nil, 3, 0)
		require.Equal(t, []Alignment{
			{Before: Span{0, 3}, After: Span{0, 0}, Changed: true},
		}, ranges)
	})

	t.Run("both empty", func(t *testing.T) {
		require.Nil(t, FromHunks(nil, 0, 0))
	})
}

// TestFromHunks_MismatchedGaps pins the lenient handling of a producer
// quirk: when the unchanged gaps before a hunk differ in size between the
// two dimensions, each side keeps its own bounds instead of failing. The
// resulting "unchanged" span then violates the equal-length law, which is
// exactly what a consistency check downstream should surface — per-side
// coverage and adjacency still hold.
func TestFromHunks_MismatchedGaps(t *testing.T) {
	ranges := FromHunks([]Hunk{
		{OldStart: 3, OldLines: 1, NewStart: 2, NewLines: 1},
	}, 5, 4)

	require.Equal(t, []Alignment{
		{Before: Span{0, 3}, After: Span{0, 2}},
		{Before: Span{3, 4}, After: Span{2, 3}, Changed: true},
		{Before: Span{4, 5}, After: Span{3, 4}},
	}, ranges)
}

func TestAlign_Strategies(t *testing.T) {
	before := []string{"a", "b", "c"}
	after := []string{"a", "x", "c"}
	hunks := []Hunk{{OldStart: 1, OldLines: 1, NewStart: 1, NewLines: 1}}

	content := Align(ContentMatch, before, after, nil)
	derived := Align(HunkDerived, before, after, hunks)

	// The two producers need not agree byte for byte, but here they do,
	// and both must be well-formed.
	require.Equal(t, content, derived)
	requireWellFormed(t, content, 3, 3)
	requireWellFormed(t, derived, 3, 3)
}

func TestStrategy_String(t *testing.T) {
	require.Equal(t, "content-match", ContentMatch.String())
	require.Equal(t, "hunk-derived", HunkDerived.String())
	require.Equal(t, "unknown", Strategy(99).String())
}
