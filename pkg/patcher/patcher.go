// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

// Package patcher defines the public interface for go-patcher, a
// library that applies machine-proposed SEARCH/REPLACE edit blocks to
// files, tolerating whitespace drift and minor reflow in the proposal.
package patcher

import (
	"errors"

	"github.com/petar-djukic/go-patcher/pkg/types"
)

// ErrInvalidConfig is returned by New when the config cannot be used.
var ErrInvalidConfig = errors.New("invalid config")

// Config configures a Patcher instance.
type Config struct {
	BaseDir  string // Directory edit block paths are resolved against (required)
	DryRun   bool   // Report results without writing any file
	NoBackup bool   // Suppress the .bak sibling written before each attempt
}

// Patcher applies and previews batches of edit blocks.
type Patcher interface {
	// Apply parses edit blocks out of proposal text and applies them in
	// order against files under the base directory.
	Apply(proposal string) *types.BatchResult

	// Preview reports, per block, whether the target exists and whether
	// the search text occurs verbatim, without running any strategy.
	Preview(proposal string) []types.PreviewResult
}
