// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

package strategy

import (
	"time"

	"github.com/sergi/go-diff/diffmatchpatch"
)

// Default matcher settings. Remapping search-space coordinates into the
// original file tolerates a lot of drift; the final patch application is
// held to a near-exact bar so a bad anchor cannot smear a patch across
// unrelated text. The three apply-side values work as a set: the strict
// threshold rejects anything but close matches, the single-character
// margin keeps surrounding context out of the fuzzy pattern, and the
// wide distance stops the proximity penalty from sinking a good match
// whose anchor drifted.
const (
	remapThreshold = 0.95
	remapDistance  = 500
	applyThreshold = 0.1
	applyDistance  = 100000
	patchMargin    = 1

	diffTimeout = time.Second
)

// LineDiffPatch derives the intended edit as a line-granularity diff
// between search and replace, re-anchors each resulting patch from
// search-text coordinates into original-text coordinates with a
// character-level diff, then applies the patches fuzzily against the
// original. All-or-nothing: one unlocatable patch fails the strategy.
type LineDiffPatch struct {
	// Zero values fall back to the package defaults above.
	RemapThreshold float64
	RemapDistance  int
	ApplyThreshold float64
	ApplyDistance  int
	Margin         int
}

func (LineDiffPatch) Name() string { return "line_diff_patch" }

func (s LineDiffPatch) Apply(search, replace, original string) Outcome {
	patches := s.makeLinePatches(search, replace)
	if len(patches) == 0 {
		return NotApplicable()
	}

	patches = s.remapToOriginal(patches, search, original)

	dmp := diffmatchpatch.New()
	dmp.DiffTimeout = diffTimeout
	dmp.MatchThreshold = defFloat(s.ApplyThreshold, applyThreshold)
	dmp.MatchDistance = defInt(s.ApplyDistance, applyDistance)

	result, applied := dmp.PatchApply(patches, original)
	for _, ok := range applied {
		if !ok {
			return NotApplicable()
		}
	}
	return Applied(result)
}

// makeLinePatches diffs search against replace with whole lines as the
// atomic units and turns the diff into positioned patches anchored to
// search-text coordinates.
func (s LineDiffPatch) makeLinePatches(search, replace string) []diffmatchpatch.Patch {
	dmp := diffmatchpatch.New()
	dmp.DiffTimeout = diffTimeout
	dmp.PatchMargin = defInt(s.Margin, patchMargin)

	c1, c2, lineArray := dmp.DiffLinesToChars(search, replace)
	diffs := dmp.DiffMain(c1, c2, false)
	diffs = dmp.DiffCharsToLines(diffs, lineArray)

	return dmp.PatchMake(search, diffs)
}

// remapToOriginal translates each patch's anchor position from
// search-text space into original-text space, absorbing drift between
// what the proposal quoted and what the file actually contains.
func (s LineDiffPatch) remapToOriginal(patches []diffmatchpatch.Patch, search, original string) []diffmatchpatch.Patch {
	dmp := diffmatchpatch.New()
	dmp.DiffTimeout = diffTimeout
	dmp.MatchThreshold = defFloat(s.RemapThreshold, remapThreshold)
	dmp.MatchDistance = defInt(s.RemapDistance, remapDistance)

	anchor := dmp.DiffMain(search, original, false)
	for i := range patches {
		patches[i].Start1 = dmp.DiffXIndex(anchor, patches[i].Start1)
		patches[i].Start2 = dmp.DiffXIndex(anchor, patches[i].Start2)
	}
	return patches
}

func defFloat(v, def float64) float64 {
	if v > 0 {
		return v
	}
	return def
}

func defInt(v, def int) int {
	if v > 0 {
		return v
	}
	return def
}
