// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/petar-djukic/go-patcher/pkg/patcher"
	"github.com/petar-djukic/go-patcher/pkg/types"
)

// exitCodeError carries a process exit code out through cobra.
// 1 = at least one block failed; 2 = blocks were present but none
// succeeded.
type exitCodeError struct {
	code int
	msg  string
}

func (e *exitCodeError) Error() string { return e.msg }

// runPatcher executes one batch: read proposal text, apply (or preview)
// it, print the result as JSON on stdout.
func runPatcher(cmd *cobra.Command, args []string) error {
	proposal, err := readProposal(args)
	if err != nil {
		return fmt.Errorf("reading input: %w", err)
	}

	p, err := patcher.New(patcher.Config{
		BaseDir:  viper.GetString("base-dir"),
		DryRun:   viper.GetBool("dry-run"),
		NoBackup: viper.GetBool("no-backup"),
	})
	if err != nil {
		return fmt.Errorf("initialization failed: %w", err)
	}

	if viper.GetBool("preview-only") {
		return printJSON(p.Preview(proposal))
	}

	result := p.Apply(proposal)
	if err := printJSON(result); err != nil {
		return err
	}
	printSummary(result)

	// A dry run that completed reports success regardless of per-block
	// outcomes; a real run maps them onto the exit code.
	if viper.GetBool("dry-run") {
		return nil
	}
	switch {
	case result.TotalBlocks > 0 && result.Successful == 0:
		return &exitCodeError{code: 2, msg: "no blocks could be applied"}
	case result.Failed > 0:
		return &exitCodeError{code: 1, msg: fmt.Sprintf("%d of %d blocks failed", result.Failed, result.TotalBlocks)}
	}
	return nil
}

// readProposal reads the positional input file, or stdin when no file
// is given.
func readProposal(args []string) (string, error) {
	if len(args) == 1 {
		data, err := os.ReadFile(args[0])
		if err != nil {
			return "", err
		}
		return string(data), nil
	}

	data, err := io.ReadAll(os.Stdin)
	if err != nil {
		return "", err
	}
	return string(data), nil
}

// printJSON writes v as indented JSON to stdout.
func printJSON(v any) error {
	out, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("marshaling result: %w", err)
	}
	fmt.Println(string(out))
	return nil
}

// printSummary writes a human-readable account to stderr, honoring
// --quiet and --verbose.
func printSummary(result *types.BatchResult) {
	if viper.GetBool("quiet") {
		return
	}

	if viper.GetBool("verbose") {
		for _, d := range result.Details {
			line := fmt.Sprintf("%s: %s", d.FilePath, d.Status)
			if d.StrategyUsed != "" {
				line += " (" + d.StrategyUsed + ")"
			}
			if d.Status != types.StatusSuccess && d.Message != "" {
				line += ": " + d.Message
			}
			fmt.Fprintln(os.Stderr, line)
		}
	}

	fmt.Fprintf(os.Stderr, "%d blocks: %d applied, %d failed, %d skipped\n",
		result.TotalBlocks, result.Successful, result.Failed, result.Skipped)
}
