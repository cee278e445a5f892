// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

// Package applier orchestrates a batch of edit blocks against real
// files: path resolution, encoding-aware reads, backups, strategy runs,
// and atomic writes. Blocks for the same file are applied strictly in
// input order, each seeing the content left by its predecessors.
package applier

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/encoding/charmap"

	"github.com/petar-djukic/go-patcher/internal/blockparse"
	"github.com/petar-djukic/go-patcher/internal/strategy"
	"github.com/petar-djukic/go-patcher/pkg/types"
)

const backupSuffix = ".bak"

// fileEncoding records how a file was decoded so the write path can
// encode it the same way.
type fileEncoding int

const (
	encodingUTF8 fileEncoding = iota
	encodingLatin1
)

// Applicator applies parsed edit blocks to files under BaseDir.
type Applicator struct {
	BaseDir string
	DryRun  bool // Report results without touching disk
	Backup  bool // Write a .bak sibling before attempting each file
	Runner  *strategy.Runner

	// Post-edit content by resolved path, so later blocks in the batch
	// observe earlier blocks' effects even under dry-run.
	contents  map[string]string
	encodings map[string]fileEncoding
}

// New returns an Applicator with backups enabled and the standard
// strategy runner.
func New(baseDir string) *Applicator {
	return &Applicator{
		BaseDir: baseDir,
		Backup:  true,
		Runner:  strategy.NewRunner(),
	}
}

// ApplyText parses edit blocks out of proposal text and applies them in
// order, returning one PatchResult per block plus totals.
func (a *Applicator) ApplyText(text string) *types.BatchResult {
	return a.ApplyBlocks(blockparse.Parse(text))
}

// ApplyBlocks applies an already-parsed batch.
func (a *Applicator) ApplyBlocks(blocks []types.EditBlock) *types.BatchResult {
	if a.contents == nil {
		a.contents = make(map[string]string)
		a.encodings = make(map[string]fileEncoding)
	}

	result := &types.BatchResult{TotalBlocks: len(blocks)}
	for _, block := range blocks {
		pr := a.applyBlock(block)
		switch pr.Status {
		case types.StatusSuccess:
			result.Successful++
		case types.StatusSkipped:
			result.Skipped++
		default:
			result.Failed++
		}
		result.Details = append(result.Details, pr)
	}
	return result
}

// applyBlock processes one block. A panic anywhere inside is recorded in
// the block's message instead of aborting the rest of the batch.
func (a *Applicator) applyBlock(block types.EditBlock) (pr types.PatchResult) {
	pr = types.PatchResult{FilePath: block.FilePath}
	defer func() {
		if r := recover(); r != nil {
			pr.Status = types.StatusFailed
			pr.Message = fmt.Sprintf("unexpected error: %v", r)
		}
	}()

	path := a.resolve(block.FilePath)

	content, enc, ok := a.cachedContent(path)
	if !ok {
		info, err := os.Stat(path)
		if err != nil {
			pr.Status = types.StatusSkipped
			pr.Message = "file does not exist"
			return pr
		}
		if !info.Mode().IsRegular() {
			pr.Status = types.StatusSkipped
			pr.Message = "not a regular file"
			return pr
		}

		raw, err := os.ReadFile(path)
		if err != nil {
			pr.Status = types.StatusFailed
			pr.Message = fmt.Sprintf("reading file: %v", err)
			return pr
		}
		content, enc, err = decode(raw)
		if err != nil {
			pr.Status = types.StatusFailed
			pr.Message = fmt.Sprintf("decoding file: %v", err)
			return pr
		}
	}

	search := ensureTrailingNewline(block.SearchText)
	replace := ensureTrailingNewline(block.ReplaceText)
	original := ensureTrailingNewline(content)

	// The backup reflects the pre-attempt content and is written whether
	// or not any strategy ends up succeeding.
	if a.Backup && !a.DryRun {
		backupPath := path + backupSuffix
		if err := a.writeEncoded(backupPath, content, enc); err != nil {
			pr.Status = types.StatusFailed
			pr.Message = fmt.Sprintf("writing backup: %v", err)
			return pr
		}
		pr.BackupPath = backupPath
	}

	newText, strategyUsed, applied := a.runner().Run(search, replace, original)
	if !applied {
		pr.Status = types.StatusFailed
		pr.Message = "all strategies failed"
		if diag := strategy.ClosestMatch(original, search); diag != "" {
			pr.Message += "; " + diag
		}
		return pr
	}

	if !a.DryRun {
		if err := a.writeEncoded(path, newText, enc); err != nil {
			pr.Status = types.StatusFailed
			pr.Message = fmt.Sprintf("writing file: %v", err)
			return pr
		}
	}

	a.contents[path] = newText
	a.encodings[path] = enc

	pr.Status = types.StatusSuccess
	pr.Message = "applied"
	pr.StrategyUsed = strategyUsed
	if a.DryRun {
		pr.Message = "applied (dry run)"
	}
	return pr
}

// resolve joins a relative block path onto the base directory. Absolute
// paths are taken as-is, matching how Previewer reads the same block.
func (a *Applicator) resolve(filePath string) string {
	if filepath.IsAbs(filePath) {
		return filePath
	}
	return filepath.Join(a.BaseDir, filePath)
}

func (a *Applicator) cachedContent(path string) (string, fileEncoding, bool) {
	content, ok := a.contents[path]
	if !ok {
		return "", encodingUTF8, false
	}
	return content, a.encodings[path], true
}

func (a *Applicator) runner() *strategy.Runner {
	if a.Runner == nil {
		a.Runner = strategy.NewRunner()
	}
	return a.Runner
}

// writeEncoded encodes content back to the encoding it was read with and
// writes it atomically.
func (a *Applicator) writeEncoded(path, content string, enc fileEncoding) error {
	data, err := encode(content, enc)
	if err != nil {
		return err
	}
	return atomicWrite(path, data)
}

// decode interprets raw bytes as UTF-8, falling back to Latin-1 when the
// bytes are not valid UTF-8.
func decode(raw []byte) (string, fileEncoding, error) {
	if utf8.Valid(raw) {
		return string(raw), encodingUTF8, nil
	}
	decoded, err := charmap.ISO8859_1.NewDecoder().Bytes(raw)
	if err != nil {
		return "", encodingUTF8, fmt.Errorf("latin-1 fallback: %w", err)
	}
	return string(decoded), encodingLatin1, nil
}

// encode converts content to the bytes for the given encoding. Encoding
// to Latin-1 fails when the patched text introduced characters outside
// that charset.
func encode(content string, enc fileEncoding) ([]byte, error) {
	if enc == encodingUTF8 {
		return []byte(content), nil
	}
	data, err := charmap.ISO8859_1.NewEncoder().Bytes([]byte(content))
	if err != nil {
		return nil, fmt.Errorf("latin-1 encode: %w", err)
	}
	return data, nil
}

func ensureTrailingNewline(s string) string {
	if strings.HasSuffix(s, "\n") {
		return s
	}
	return s + "\n"
}

// atomicWrite writes data to a temp file in the same directory, then
// renames it over the target path, preserving existing permissions.
func atomicWrite(path string, data []byte) error {
	dir := filepath.Dir(path)

	perm := os.FileMode(0o644)
	if info, err := os.Stat(path); err == nil {
		perm = info.Mode().Perm()
	}

	f, err := os.CreateTemp(dir, ".go-patcher-*.tmp")
	if err != nil {
		return fmt.Errorf("creating temp file: %w", err)
	}
	tmpPath := f.Name()

	if _, err := f.Write(data); err != nil {
		f.Close()
		os.Remove(tmpPath)
		return fmt.Errorf("writing temp file: %w", err)
	}
	if err := f.Close(); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("closing temp file: %w", err)
	}

	if err := os.Chmod(tmpPath, perm); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("setting permissions: %w", err)
	}

	if err := os.Rename(tmpPath, path); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("renaming temp file: %w", err)
	}

	return nil
}
