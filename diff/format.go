// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package diff produces the hunk lists that feed the alignment engine.
package diff

import (
	"fmt"
	"strings"
)

// =============================================================================
// UNIFIED FORMAT
// =============================================================================

// Unified returns the diff in standard unified diff format.
func (d *Diff) Unified() string {
	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("--- a/%s\n", d.Path))
	sb.WriteString(fmt.Sprintf("+++ b/%s\n", d.Path))

	for _, hunk := range d.Hunks {
		sb.WriteString(fmt.Sprintf("@@ -%d,%d +%d,%d @@\n",
			hunk.OldStart, hunk.OldCount,
			hunk.NewStart, hunk.NewCount))

		for _, line := range hunk.Lines {
			sb.WriteString(line.Type.Prefix())
			sb.WriteString(line.Content)
			sb.WriteString("\n")
		}
	}

	return sb.String()
}
