// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

package applier

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/petar-djukic/go-patcher/internal/blockparse"
	"github.com/petar-djukic/go-patcher/pkg/types"
)

// Previewer inspects edit blocks without running any strategy or
// touching disk beyond reads. It reports whether each target exists,
// whether the literal search text occurs verbatim (and how often), and
// basic validation problems.
type Previewer struct {
	BaseDir string
}

// PreviewText parses blocks out of proposal text and previews each one.
func (p *Previewer) PreviewText(text string) []types.PreviewResult {
	blocks := blockparse.Parse(text)
	results := make([]types.PreviewResult, 0, len(blocks))
	for _, block := range blocks {
		results = append(results, p.previewBlock(block))
	}
	return results
}

func (p *Previewer) previewBlock(block types.EditBlock) types.PreviewResult {
	pr := types.PreviewResult{FilePath: block.FilePath}

	if block.FilePath == "" {
		pr.Problems = append(pr.Problems, "empty file path")
		return pr
	}
	if block.SearchText == "" {
		pr.Problems = append(pr.Problems, "empty search text")
	}

	path := block.FilePath
	if !filepath.IsAbs(path) {
		path = filepath.Join(p.BaseDir, path)
	}

	info, err := os.Stat(path)
	if err != nil || !info.Mode().IsRegular() {
		if filepath.IsAbs(block.FilePath) {
			pr.Problems = append(pr.Problems, "absolute path does not exist")
		}
		return pr
	}
	pr.Exists = true

	raw, err := os.ReadFile(path)
	if err != nil {
		pr.Problems = append(pr.Problems, "file could not be read")
		return pr
	}
	content, _, err := decode(raw)
	if err != nil {
		pr.Problems = append(pr.Problems, "file could not be decoded")
		return pr
	}

	if block.SearchText != "" {
		pr.Occurrences = strings.Count(content, block.SearchText)
		pr.SearchFound = pr.Occurrences > 0
	}
	return pr
}
