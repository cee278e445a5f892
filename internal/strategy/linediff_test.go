// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

package strategy

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLineDiffPatch_ExactContext(t *testing.T) {
	original := "alpha\nbeta\ngamma\ndelta\n"
	search := "beta\ngamma\n"
	replace := "beta\nGAMMA\n"

	out, ok := LineDiffPatch{}.Apply(search, replace, original).Result()
	require.True(t, ok)
	assert.Equal(t, "alpha\nbeta\nGAMMA\ndelta\n", out)
}

// The quoted search text has drifted slightly from the file; the
// character-level remap absorbs the drift and the patch still lands.
func TestLineDiffPatch_DriftedContext(t *testing.T) {
	original := "def handler(req):\n    check(req)\n    log(req)\n    return ok\n"
	search := "def handler(req):\n    check(req)\n    return ok\n"
	replace := "def handler(req):\n    check(req)\n    return err\n"

	out, ok := LineDiffPatch{}.Apply(search, replace, original).Result()
	require.True(t, ok)
	assert.Contains(t, out, "return err")
	assert.Contains(t, out, "log(req)")
	assert.NotContains(t, out, "return ok")
}

// A search block re-indented relative to the file must not apply in raw
// form: the near-exact apply threshold rejects the mangled splice that a
// permissive matcher would accept (destroying the def line and leaking
// the block's indentation). Landing this edit is the relative-indent
// variant's job, and declining here is what lets the runner reach it.
func TestLineDiffPatch_ReindentedSearchDeclines(t *testing.T) {
	original := "def foo():\n    return 1\n"
	search := "        return 1\n"
	replace := "        return 2\n"

	_, ok := LineDiffPatch{}.Apply(search, replace, original).Result()
	assert.False(t, ok)
}

func TestLineDiffPatch_IdenticalTextsDecline(t *testing.T) {
	_, ok := LineDiffPatch{}.Apply("same\n", "same\n", "same plus context\n").Result()
	assert.False(t, ok)
}

// When no region of the original resembles the search text, every patch
// fails to locate and the strategy declines rather than emitting a
// partial result.
func TestLineDiffPatch_NoResemblanceDeclines(t *testing.T) {
	original := "alpha\nbeta\ngamma\n"
	search := "12345\n67890\n"
	replace := "QQQQQ\n"

	_, ok := LineDiffPatch{}.Apply(search, replace, original).Result()
	assert.False(t, ok)
}
