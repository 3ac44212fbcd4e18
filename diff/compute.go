// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package diff produces the hunk lists that feed the alignment engine.
package diff

// =============================================================================
// DIFF COMPUTATION
// =============================================================================

// contextLines is the number of unchanged lines kept around each change
// when grouping into hunks.
const contextLines = 3

// Compute builds a diff between two versions of a file's content using a
// line-granularity LCS comparison. Empty old content marks the file new,
// empty new content marks it deleted.
func Compute(path, oldContent, newContent string) *Diff {
	d := &Diff{Path: path}

	oldLines := SplitLines(oldContent)
	newLines := SplitLines(newContent)

	switch {
	case oldContent == "" && newContent != "":
		d.Stats.Mode = FileNew
	case oldContent != "" && newContent == "":
		d.Stats.Mode = FileDeleted
	default:
		d.Stats.Mode = FileModified
	}

	lines := compareLines(oldLines, newLines)
	d.Hunks = groupHunks(lines)

	for _, line := range lines {
		switch line.Type {
		case LineAdded:
			d.Stats.Additions++
		case LineRemoved:
			d.Stats.Deletions++
		}
	}

	return d
}

// compareLines walks both versions against their longest common
// subsequence, tagging every line context, removed, or added.
func compareLines(oldLines, newLines []string) []Line {
	var result []Line

	if len(oldLines) == 0 && len(newLines) == 0 {
		return result
	}

	// Pure addition (new file)
	if len(oldLines) == 0 {
		for i, line := range newLines {
			result = append(result, Line{
				Type:    LineAdded,
				Content: line,
				NewLine: i + 1,
			})
		}
		return result
	}

	// Pure deletion (file removed)
	if len(newLines) == 0 {
		for i, line := range oldLines {
			result = append(result, Line{
				Type:    LineRemoved,
				Content: line,
				OldLine: i + 1,
			})
		}
		return result
	}

	common := lcs(oldLines, newLines)

	oldIdx, newIdx, lcsIdx := 0, 0, 0
	for oldIdx < len(oldLines) || newIdx < len(newLines) {
		if lcsIdx < len(common) &&
			oldIdx < len(oldLines) && newIdx < len(newLines) &&
			oldLines[oldIdx] == newLines[newIdx] &&
			oldLines[oldIdx] == common[lcsIdx] {
			result = append(result, Line{
				Type:    LineContext,
				Content: oldLines[oldIdx],
				OldLine: oldIdx + 1,
				NewLine: newIdx + 1,
			})
			oldIdx++
			newIdx++
			lcsIdx++
		} else if oldIdx < len(oldLines) && (lcsIdx >= len(common) || oldLines[oldIdx] != common[lcsIdx]) {
			result = append(result, Line{
				Type:    LineRemoved,
				Content: oldLines[oldIdx],
				OldLine: oldIdx + 1,
			})
			oldIdx++
		} else if newIdx < len(newLines) {
			result = append(result, Line{
				Type:    LineAdded,
				Content: newLines[newIdx],
				NewLine: newIdx + 1,
			})
			newIdx++
		}
	}

	return result
}

// lcs computes the longest common subsequence of two line slices.
func lcs(a, b []string) []string {
	m, n := len(a), len(b)

	dp := make([][]int, m+1)
	for i := range dp {
		dp[i] = make([]int, n+1)
	}

	for i := 1; i <= m; i++ {
		for j := 1; j <= n; j++ {
			if a[i-1] == b[j-1] {
				dp[i][j] = dp[i-1][j-1] + 1
			} else {
				dp[i][j] = max(dp[i-1][j], dp[i][j-1])
			}
		}
	}

	var out []string
	i, j := m, n
	for i > 0 && j > 0 {
		if a[i-1] == b[j-1] {
			out = append([]string{a[i-1]}, out...)
			i--
			j--
		} else if dp[i-1][j] > dp[i][j-1] {
			i--
		} else {
			j--
		}
	}

	return out
}

// groupHunks groups tagged lines into hunks, keeping contextLines of
// unchanged context on each side of every change run. Change runs whose
// separating context fits inside 2*contextLines merge into one hunk.
func groupHunks(lines []Line) []Hunk {
	var hunks []Hunk

	i := 0
	for i < len(lines) {
		if lines[i].Type == LineContext {
			i++
			continue
		}

		start := max(0, i-contextLines)

		// Extend past this change run, merging runs separated by small
		// context gaps.
		end := i + 1
		j := i + 1
		for j < len(lines) {
			if lines[j].Type != LineContext {
				end = j + 1
				j++
				continue
			}
			k := j
			for k < len(lines) && lines[k].Type == LineContext {
				k++
			}
			if k < len(lines) && k-j <= 2*contextLines {
				j = k
				continue
			}
			break
		}

		stop := min(len(lines), end+contextLines)
		h := Hunk{Lines: make([]Line, 0, stop-start)}
		for _, line := range lines[start:stop] {
			h.Lines = append(h.Lines, line)
			if line.OldLine > 0 {
				h.OldCount++
				if h.OldStart == 0 {
					h.OldStart = line.OldLine
				}
			}
			if line.NewLine > 0 {
				h.NewCount++
				if h.NewStart == 0 {
					h.NewStart = line.NewLine
				}
			}
		}
		hunks = append(hunks, h)
		i = stop
	}

	return hunks
}
