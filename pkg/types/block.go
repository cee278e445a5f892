// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

// Package types defines the shared data model for go-patcher: parsed
// edit blocks, per-block patch results, and batch aggregates.
package types

import "fmt"

// EditBlock is one (file path, search text, replace text) triple parsed
// from proposal text. FilePath is relative to a caller-supplied base
// directory. Blocks are immutable once parsed.
type EditBlock struct {
	FilePath    string // Target file, relative to the base directory
	SearchText  string // Text the proposal expects to find
	ReplaceText string // Text to put in its place
}

// Status classifies the outcome of one block.
type Status int

const (
	StatusSuccess Status = iota // A strategy applied and the result was (or would be) written
	StatusFailed                // The block was attempted and every strategy declined
	StatusSkipped               // Nothing was attempted (missing file, not a regular file)
)

func (s Status) String() string {
	switch s {
	case StatusSuccess:
		return "success"
	case StatusFailed:
		return "failed"
	case StatusSkipped:
		return "skipped"
	default:
		return "unknown"
	}
}

// MarshalJSON encodes the status as its string form.
func (s Status) MarshalJSON() ([]byte, error) {
	return []byte(fmt.Sprintf("%q", s.String())), nil
}

// PatchResult describes the outcome of applying a single EditBlock.
type PatchResult struct {
	FilePath     string `json:"file_path"`
	Status       Status `json:"status"`
	Message      string `json:"message"`
	StrategyUsed string `json:"strategy_used,omitempty"` // Empty unless a strategy applied
	BackupPath   string `json:"backup_path,omitempty"`   // Empty unless a backup was written
}

// BatchResult aggregates the PatchResults of one batch.
type BatchResult struct {
	TotalBlocks int           `json:"total_blocks"`
	Successful  int           `json:"successful"`
	Failed      int           `json:"failed"`
	Skipped     int           `json:"skipped"`
	Details     []PatchResult `json:"details"`
}

// PreviewResult describes what a read-only inspection of one block found,
// without any strategy having run.
type PreviewResult struct {
	FilePath    string   `json:"file_path"`
	Exists      bool     `json:"exists"`
	SearchFound bool     `json:"search_found"`
	Occurrences int      `json:"occurrences"`
	Problems    []string `json:"problems,omitempty"`
}
