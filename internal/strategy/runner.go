// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

package strategy

import (
	"github.com/petar-djukic/go-patcher/internal/indent"
)

// Runner drives the cross product of strategies and preprocessing
// variants against one edit, short-circuiting on the first success.
// Strategy order is fixed by cost: literal replacement, then the git
// cherry-pick merge, then the fuzzy line-diff patch.
type Runner struct {
	Strategies []Strategy

	// EnableLineReversal adds the dormant line-reversal variant to the
	// trial list. Off everywhere today.
	EnableLineReversal bool
}

// NewRunner builds a runner with the standard strategy list. The
// cherry-pick strategy is omitted when no git binary is available.
func NewRunner() *Runner {
	strategies := []Strategy{LiteralReplace{}}
	if GitAvailable() {
		strategies = append(strategies, GitCherryPick{})
	}
	strategies = append(strategies, LineDiffPatch{})
	return &Runner{Strategies: strategies}
}

// Run tries every (strategy, variant) combination in order and returns
// the first applied result along with the winning strategy's name.
// Returns ok=false only after every combination has declined. Errors
// inside a single attempt (marker exhaustion, corrupt indent reversal,
// strategy panics) fail that attempt only, never the whole run.
func (r *Runner) Run(search, replace, original string) (result, strategyUsed string, ok bool) {
	for _, st := range r.Strategies {
		for _, v := range r.variants() {
			if out, ok := r.attempt(st, v, search, replace, original); ok {
				return out, st.Name(), true
			}
		}
	}
	return "", "", false
}

func (r *Runner) variants() []Variant {
	if !r.EnableLineReversal {
		return defaultVariants
	}
	return append(append([]Variant{}, defaultVariants...), reversalVariant)
}

// attempt preprocesses all three texts per the variant, runs the
// strategy, and reverses any reversible transform on the result. A
// panicking strategy counts as a declined attempt.
func (r *Runner) attempt(st Strategy, v Variant, search, replace, original string) (result string, ok bool) {
	defer func() {
		if recover() != nil {
			result, ok = "", false
		}
	}()

	if v.StripBlanks {
		search = stripBlankLines(search)
		replace = stripBlankLines(replace)
		original = stripBlankLines(original)
	}
	if v.ReverseLines {
		search = reverseLines(search)
		replace = reverseLines(replace)
		original = reverseLines(original)
	}

	var ri *indent.RelativeIndenter
	if v.RelativeIndent {
		var err error
		ri, err = indent.NewRelativeIndenter(search, replace, original)
		if err != nil {
			return "", false
		}
		if search, err = ri.MakeRelative(search); err != nil {
			return "", false
		}
		if replace, err = ri.MakeRelative(replace); err != nil {
			return "", false
		}
		if original, err = ri.MakeRelative(original); err != nil {
			return "", false
		}
	}

	out, applied := st.Apply(search, replace, original).Result()
	if !applied {
		return "", false
	}

	if ri != nil {
		abs, err := ri.MakeAbsolute(out)
		if err != nil {
			// Corrupt reversal fails this attempt, not the run.
			return "", false
		}
		out = abs
	}
	if v.ReverseLines {
		out = reverseLines(out)
	}
	return out, true
}
