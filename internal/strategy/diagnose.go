// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

package strategy

import (
	"fmt"
	"strings"

	"github.com/sergi/go-diff/diffmatchpatch"
)

// ClosestMatch scans original for the line window most similar to the
// search text. Used only for failure messages, so callers can see how
// near the best candidate came. Returns an empty string when nothing
// resembles the search text at all.
func ClosestMatch(original, search string) string {
	if search == "" || original == "" {
		return ""
	}

	target := strings.TrimSuffix(search, "\n")
	contentLines := strings.Split(original, "\n")
	window := len(strings.Split(target, "\n"))
	if window > len(contentLines) {
		window = len(contentLines)
	}
	if window == 0 {
		return ""
	}

	var bestSim float64
	var bestStart int
	for i := 0; i+window <= len(contentLines); i++ {
		candidate := strings.Join(contentLines[i:i+window], "\n")
		if s := similarity(candidate, target); s > bestSim {
			bestSim = s
			bestStart = i
		}
	}

	if bestSim == 0 {
		return ""
	}
	return fmt.Sprintf("closest match at lines %d-%d, similarity %.2f",
		bestStart+1, bestStart+window, bestSim)
}

// similarity is the Levenshtein-based ratio between two strings,
// between 0.0 and 1.0.
func similarity(a, b string) float64 {
	if a == b {
		return 1.0
	}
	if a == "" || b == "" {
		return 0.0
	}

	dmp := diffmatchpatch.New()
	diffs := dmp.DiffMain(a, b, false)
	distance := dmp.DiffLevenshtein(diffs)
	maxLen := len(a)
	if len(b) > maxLen {
		maxLen = len(b)
	}
	return 1.0 - float64(distance)/float64(maxLen)
}
