// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

// Package blockparse extracts SEARCH/REPLACE edit blocks from free-form
// proposal text. Three block shapes are recognized, tried as a strict
// fallback chain from most to least structured; once a shape yields at
// least one block, later shapes are never consulted, so a permissive
// pattern can never add spurious matches on top of well formed ones.
package blockparse

import (
	"regexp"
	"strings"

	"github.com/petar-djukic/go-patcher/pkg/types"
)

// Block grammar: a header line holding the file path, immediately above
// the (optionally fenced) marker-delimited region.
//
//	path/to/file
//	```lang
//	<<<<<<< SEARCH
//	old lines
//	=======
//	new lines
//	>>>>>>> REPLACE
//	```
const blockBody = `<<<<<<< SEARCH\n(.*?)^=======\n(.*?)^>>>>>>> REPLACE`

var patterns = []*regexp.Regexp{
	// Fenced with a language tag.
	regexp.MustCompile(`(?sm)^([^\n]+)\n` + "```" + `[A-Za-z0-9_.+-]+[ \t]*\n` + blockBody + `[ \t]*\n` + "```"),
	// Fenced without a language tag.
	regexp.MustCompile(`(?sm)^([^\n]+)\n` + "```" + `[ \t]*\n` + blockBody + `[ \t]*\n` + "```"),
	// Bare markers, no fence.
	regexp.MustCompile(`(?sm)^([^\n]+)\n` + blockBody),
}

// Parse returns the EditBlocks found in text, in source order. Malformed
// or partial blocks are silently omitted; Parse never fails.
func Parse(text string) []types.EditBlock {
	var matches [][]string
	for _, pat := range patterns {
		matches = pat.FindAllStringSubmatch(text, -1)
		if len(matches) > 0 {
			break
		}
	}

	var blocks []types.EditBlock
	for _, m := range matches {
		if b, ok := cleanBlock(m[1], m[2], m[3]); ok {
			blocks = append(blocks, b)
		}
	}
	return blocks
}

// cleanBlock trims the captured fields and rejects paths that cannot
// name a file: empty after trimming, or starting with a comment marker
// (prose and commented-out headers are common in noisy proposals).
func cleanBlock(path, search, replace string) (types.EditBlock, bool) {
	path = strings.TrimSpace(path)
	if path == "" || strings.HasPrefix(path, "#") || strings.HasPrefix(path, "//") {
		return types.EditBlock{}, false
	}

	return types.EditBlock{
		FilePath:    path,
		SearchText:  strings.TrimRight(search, "\n"),
		ReplaceText: strings.TrimRight(replace, "\n"),
	}, true
}
