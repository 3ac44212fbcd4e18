// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package pane builds the render-ready structures for dual-pane diff
// display.
//
// Where package align maps source line numbers, pane maps positions in
// the two rendered pane arrays: the UI needs to sync scroll offsets and
// draw connectors between two arrays that usually differ in length, and
// source line numbers cannot express that.
//
// # Key Types
//
//   - Line: one rendered line with kind, source number, and content
//   - Range: alignment between pane-array index ranges, with source line
//     ranges carried along for annotation placement
//
// # Usage
//
//	before, after, ranges := pane.Build(&oldContent, &newContent, hunks)
//
// A nil content pointer models an absent side (added or deleted file);
// that pane simply stays empty outside the hunk lines.
package pane
