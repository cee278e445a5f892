// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

package strategy

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func requireGit(t *testing.T) {
	t.Helper()
	if !GitAvailable() {
		t.Skip("git binary not available")
	}
}

func TestGitCherryPick_CleanPick(t *testing.T) {
	requireGit(t)

	original := "alpha\nbeta\ngamma\n"
	search := original
	replace := "alpha\nBETA\ngamma\n"

	out, ok := GitCherryPick{}.Apply(search, replace, original).Result()
	require.True(t, ok)
	assert.Equal(t, "alpha\nBETA\ngamma\n", out)
}

// The search text quotes only part of the file; the merge engine applies
// the search-to-replace change onto the full original using context.
func TestGitCherryPick_PartialFileContext(t *testing.T) {
	requireGit(t)

	original := "header\nalpha\nbeta\ngamma\ntrailer\n"
	search := "alpha\nbeta\ngamma\n"
	replace := "alpha\nBETA\ngamma\n"

	out, ok := GitCherryPick{}.Apply(search, replace, original).Result()
	require.True(t, ok)
	assert.Equal(t, "header\nalpha\nBETA\ngamma\ntrailer\n", out)
}

// Both sides changed the same line; the pick conflicts and the strategy
// declines instead of emitting a half-merged result.
func TestGitCherryPick_ConflictDeclines(t *testing.T) {
	requireGit(t)

	original := "alpha\nZETA\ngamma\n"
	search := "alpha\nbeta\ngamma\n"
	replace := "alpha\nBETA\ngamma\n"

	_, ok := GitCherryPick{}.Apply(search, replace, original).Result()
	assert.False(t, ok)
}

func TestGitCherryPick_NoChangeIsClean(t *testing.T) {
	requireGit(t)

	original := "alpha\n"
	out, ok := GitCherryPick{}.Apply(original, original, original).Result()
	require.True(t, ok)
	assert.Equal(t, original, out)
}
