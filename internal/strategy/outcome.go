// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

// Package strategy implements the patch strategies and the runner that
// drives them across preprocessing variants. Each strategy is a pure
// function of (search, replace, original) text; strategies never touch
// the target file.
package strategy

// Outcome is the result of one strategy attempt. It is a two-variant
// value rather than a nullable string so that an intentionally empty
// replacement result can never be confused with a strategy declining.
type Outcome struct {
	text    string
	applied bool
}

// Applied wraps a successful result text.
func Applied(text string) Outcome {
	return Outcome{text: text, applied: true}
}

// NotApplicable is the declining outcome.
func NotApplicable() Outcome {
	return Outcome{}
}

// Result returns the produced text and whether the strategy applied.
// The text is meaningful only when the second return is true.
func (o Outcome) Result() (string, bool) {
	return o.text, o.applied
}

// Strategy is one patch algorithm. Apply must be deterministic and must
// return NotApplicable rather than a partial result when it cannot
// produce a clean outcome. All three inputs end with a trailing newline;
// the caller normalizes this.
type Strategy interface {
	Name() string
	Apply(search, replace, original string) Outcome
}
