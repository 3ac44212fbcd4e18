// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package diff produces the hunk lists that feed the alignment engine.
package diff_test

import (
	"fmt"

	"github.com/jeranaias/reviewdiff/diff"
)

func ExampleCompute() {
	// Original file content
	oldContent := "package main\n\nfunc main() {\n\tfmt.Println(\"Hello\")\n}\n"

	// Modified file content
	newContent := "package main\n\nimport \"fmt\"\n\nfunc main() {\n\tfmt.Println(\"Hello, World!\")\n}\n"

	// Compute the diff
	d := diff.Compute("main.go", oldContent, newContent)

	// Display summary
	fmt.Println(d.Summary())

	// Output:
	// Modified +3 -1
}

func ExampleDiff_Unified() {
	d := diff.Compute("file.txt", "line1\nline2\nline3", "line1\nmodified\nline3")

	fmt.Println(d.Unified())

	// Output:
	// --- a/file.txt
	// +++ b/file.txt
	// @@ -1,3 +1,3 @@
	//  line1
	// -line2
	// +modified
	//  line3
}

func ExampleDiff_Summary_newFile() {
	// New file (empty old content)
	d := diff.Compute("newfile.txt", "", "line1\nline2")

	fmt.Println(d.Summary())
	fmt.Println("Mode:", d.Stats.Mode)

	// Output:
	// New file +2
	// Mode: new
}

func ExampleChangeBlocks() {
	d := diff.Compute("file.txt", "line1\nline2\nline3", "line1\nmodified\nline3")

	// Project the hunks down to 0-indexed change blocks for the
	// alignment engine.
	for _, block := range diff.ChangeBlocks(d.Hunks) {
		fmt.Printf("%+v\n", block)
	}

	// Output:
	// {OldStart:1 OldLines:1 NewStart:1 NewLines:1}
}
