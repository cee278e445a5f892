// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

// Command go-patcher reads proposal text containing SEARCH/REPLACE edit
// blocks and applies them to files under a base directory.
package main

import (
	"errors"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

const version = "0.1.0"

func main() {
	rootCmd := newRootCmd()

	if err := rootCmd.Execute(); err != nil {
		var ee *exitCodeError
		if errors.As(err, &ee) {
			os.Exit(ee.code)
		}
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:     "go-patcher [input-file]",
		Short:   "Apply SEARCH/REPLACE edit blocks to files",
		Long:    "go-patcher parses SEARCH/REPLACE edit blocks out of proposal text (a file argument or standard input) and applies them to files under the base directory, falling back through approximate patch strategies when the search text does not match byte-for-byte.",
		Version: version,
		Args:    cobra.MaximumNArgs(1),
		RunE:    runPatcher,

		SilenceUsage: true,
	}

	rootCmd.Flags().StringP("base-dir", "d", ".", "Directory edit block paths are resolved against")
	rootCmd.Flags().BoolP("dry-run", "n", false, "Report results without writing any file")
	rootCmd.Flags().Bool("no-backup", false, "Do not write .bak files before editing")
	rootCmd.Flags().Bool("preview-only", false, "Inspect blocks without applying anything")
	rootCmd.Flags().BoolP("quiet", "q", false, "Suppress the summary on stderr")
	rootCmd.Flags().BoolP("verbose", "v", false, "Print per-block detail on stderr")

	// Bind flags to viper.
	viper.BindPFlag("base-dir", rootCmd.Flags().Lookup("base-dir"))
	viper.BindPFlag("dry-run", rootCmd.Flags().Lookup("dry-run"))
	viper.BindPFlag("no-backup", rootCmd.Flags().Lookup("no-backup"))
	viper.BindPFlag("preview-only", rootCmd.Flags().Lookup("preview-only"))
	viper.BindPFlag("quiet", rootCmd.Flags().Lookup("quiet"))
	viper.BindPFlag("verbose", rootCmd.Flags().Lookup("verbose"))

	// Env vars: GO_PATCHER_BASE_DIR, GO_PATCHER_DRY_RUN, etc.
	viper.SetEnvPrefix("GO_PATCHER")
	viper.AutomaticEnv()

	// Config file.
	viper.SetConfigName(".go-patcher")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.ReadInConfig() // Ignore error; config file is optional.

	return rootCmd
}
