// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package diff produces the hunk lists that feed the alignment engine.
package diff

import (
	"bytes"
	"strings"
)

// =============================================================================
// CONTENT BOUNDARY
// =============================================================================

// binarySniffLen is how much of a blob is inspected for binary content.
const binarySniffLen = 8192

// SplitLines splits content into lines on "\n", dropping the empty element
// a trailing newline produces. Empty content yields an empty slice, so a
// final newline never manufactures a phantom last line.
func SplitLines(content string) []string {
	if content == "" {
		return []string{}
	}
	lines := strings.Split(content, "\n")
	if len(lines) > 0 && lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	return lines
}

// IsBinary reports whether a blob looks like binary data, checking for a
// NUL byte within its first 8 KiB. Binary files must not reach the
// alignment engine; the caller reports them as having no line diff.
func IsBinary(blob []byte) bool {
	if len(blob) > binarySniffLen {
		blob = blob[:binarySniffLen]
	}
	return bytes.IndexByte(blob, 0) >= 0
}
