// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

package patcher

import (
	"fmt"
	"os"

	"github.com/petar-djukic/go-patcher/internal/applier"
	"github.com/petar-djukic/go-patcher/pkg/types"
)

// New validates the config and returns a ready-to-use Patcher.
func New(cfg Config) (Patcher, error) {
	if err := validateConfig(cfg); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}

	return &patcherAdapter{cfg: cfg}, nil
}

// patcherAdapter adapts internal/applier to the public Patcher interface.
// A fresh Applicator per Apply call keeps batches isolated from each
// other; only blocks within one batch chain their effects.
type patcherAdapter struct {
	cfg Config
}

func (p *patcherAdapter) Apply(proposal string) *types.BatchResult {
	a := applier.New(p.cfg.BaseDir)
	a.DryRun = p.cfg.DryRun
	a.Backup = !p.cfg.NoBackup
	return a.ApplyText(proposal)
}

func (p *patcherAdapter) Preview(proposal string) []types.PreviewResult {
	pv := &applier.Previewer{BaseDir: p.cfg.BaseDir}
	return pv.PreviewText(proposal)
}

// validateConfig checks that required fields are present.
func validateConfig(cfg Config) error {
	if cfg.BaseDir == "" {
		return fmt.Errorf("BaseDir is required")
	}
	if info, err := os.Stat(cfg.BaseDir); err != nil || !info.IsDir() {
		return fmt.Errorf("BaseDir %q does not exist or is not a directory", cfg.BaseDir)
	}
	return nil
}
