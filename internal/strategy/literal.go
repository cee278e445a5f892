// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

package strategy

import "strings"

// LiteralReplace succeeds when the search text occurs verbatim in the
// original and substitutes the replacement for it. Cheapest strategy,
// always tried first.
type LiteralReplace struct{}

func (LiteralReplace) Name() string { return "literal_replace" }

func (LiteralReplace) Apply(search, replace, original string) Outcome {
	if search == "" || !strings.Contains(original, search) {
		return NotApplicable()
	}

	// Every occurrence is replaced. An adjacent contract elsewhere in
	// the system documents first-occurrence-only but has never enforced
	// it; keep replace-all until that discrepancy is settled upstream.
	return Applied(strings.ReplaceAll(original, search, replace))
}
