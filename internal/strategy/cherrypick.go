// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

package strategy

import (
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"time"

	gogit "github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"
	"github.com/go-git/go-git/v5/plumbing/object"
)

const (
	mergeFileName = "contents"

	authorName  = "go-patcher"
	authorEmail = "noreply@go-patcher"
)

// GitAvailable reports whether a git binary is on PATH. When it is not,
// the runner simply leaves the cherry-pick strategy out of the list.
func GitAvailable() bool {
	_, err := exec.LookPath("git")
	return err == nil
}

// GitCherryPick resolves an edit as a three-way merge: in a throwaway
// repository it commits original, search, and replace versions of one
// file, checks out the original commit, and cherry-picks the
// search-to-replace change onto it. A clean pick is the result; any
// conflict or git error declines. The temporary repository is removed
// on every exit path. Most expensive strategy, tried after literal
// replacement.
type GitCherryPick struct{}

func (GitCherryPick) Name() string { return "git_cherry_pick" }

func (GitCherryPick) Apply(search, replace, original string) Outcome {
	dir, err := os.MkdirTemp("", "go-patcher-merge-")
	if err != nil {
		return NotApplicable()
	}
	defer os.RemoveAll(dir)

	repo, err := gogit.PlainInit(dir, false)
	if err != nil {
		return NotApplicable()
	}
	wt, err := repo.Worktree()
	if err != nil {
		return NotApplicable()
	}

	target := filepath.Join(dir, mergeFileName)
	commit := func(content, msg string) (plumbing.Hash, error) {
		if err := os.WriteFile(target, []byte(content), 0o644); err != nil {
			return plumbing.ZeroHash, err
		}
		if _, err := wt.Add(mergeFileName); err != nil {
			return plumbing.ZeroHash, err
		}
		return wt.Commit(msg, &gogit.CommitOptions{
			AllowEmptyCommits: true,
			Author: &object.Signature{
				Name:  authorName,
				Email: authorEmail,
				When:  time.Now(),
			},
		})
	}

	base, err := commit(original, "original")
	if err != nil {
		return NotApplicable()
	}
	if _, err := commit(search, "search"); err != nil {
		return NotApplicable()
	}
	tip, err := commit(replace, "replace")
	if err != nil {
		return NotApplicable()
	}

	// Detach onto the original commit, then let git's merge engine pick
	// the search->replace change onto it non-interactively.
	if err := wt.Checkout(&gogit.CheckoutOptions{Hash: base}); err != nil {
		return NotApplicable()
	}

	cmd := exec.Command("git", "-c", "commit.gpgsign=false",
		"cherry-pick", "--allow-empty", "--keep-redundant-commits", tip.String())
	cmd.Dir = dir
	cmd.Env = append(os.Environ(),
		"GIT_AUTHOR_NAME="+authorName,
		"GIT_AUTHOR_EMAIL="+authorEmail,
		"GIT_COMMITTER_NAME="+authorName,
		"GIT_COMMITTER_EMAIL="+authorEmail,
	)
	if err := cmd.Run(); err != nil {
		return NotApplicable()
	}

	merged, err := os.ReadFile(target)
	if err != nil {
		return NotApplicable()
	}
	if strings.Contains(string(merged), "<<<<<<<") {
		return NotApplicable()
	}
	return Applied(string(merged))
}
