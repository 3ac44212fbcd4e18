// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package diff produces the hunk lists that feed the alignment engine.
//
// It carries a small built-in line differ for when no external tool is
// available, adapters that convert third-party differ output into the
// shared Hunk model, and the boundary helpers (line splitting, binary
// sniffing) that sit between raw file blobs and the engine.
//
// # Key Types
//
//   - LineType: kind of diff line (context, added, removed)
//   - Line: single diff line with content and 1-indexed source positions
//   - Hunk: contiguous group of diff lines with start/count pairs
//   - Diff: complete result for one file, with hunks and stats
//
// # Usage
//
// Compute a diff between two versions of a file:
//
//	d := diff.Compute("main.go", oldContent, newContent)
//	fmt.Println(d.Summary())
//	fmt.Println(d.Unified())
//
// Feed the change blocks to the alignment engine:
//
//	ranges := align.FromHunks(diff.ChangeBlocks(d.Hunks), oldLen, newLen)
package diff
