// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

package strategy

import "strings"

// Variant is one combination of text transforms applied to all three
// texts before a strategy attempt.
type Variant struct {
	Name           string
	StripBlanks    bool
	RelativeIndent bool
	ReverseLines   bool
}

// defaultVariants are tried in order for every strategy. Cheap, likely
// transforms come first.
var defaultVariants = []Variant{
	{Name: "none"},
	{Name: "strip_blanks", StripBlanks: true},
	{Name: "relative_indent", RelativeIndent: true},
	{Name: "strip_blanks+relative_indent", StripBlanks: true, RelativeIndent: true},
}

// reversalVariant matches line-reversed quotations. It has never shipped
// enabled; Runner.EnableLineReversal turns it on for experiments.
var reversalVariant = Variant{Name: "reverse_lines", ReverseLines: true}

// stripBlankLines drops lines that are empty or whitespace-only. The
// result keeps a trailing newline.
func stripBlankLines(text string) string {
	var kept []string
	for _, line := range strings.Split(strings.TrimSuffix(text, "\n"), "\n") {
		if strings.TrimSpace(line) != "" {
			kept = append(kept, line)
		}
	}
	if len(kept) == 0 {
		return ""
	}
	return strings.Join(kept, "\n") + "\n"
}

// reverseLines reverses the order of lines, keeping a trailing newline.
func reverseLines(text string) string {
	lines := strings.Split(strings.TrimSuffix(text, "\n"), "\n")
	for i, j := 0, len(lines)-1; i < j; i, j = i+1, j-1 {
		lines[i], lines[j] = lines[j], lines[i]
	}
	return strings.Join(lines, "\n") + "\n"
}
