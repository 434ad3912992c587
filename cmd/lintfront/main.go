// Package main is the entry point for the lintfront CLI.
package main

import (
	"errors"
	"os"

	"github.com/yaklabco/lintfront/internal/cli"
	"github.com/yaklabco/lintfront/internal/logging"
)

// Build-time variables set by GoReleaser via ldflags.
//
//nolint:gochecknoglobals // Version variables must be package-level for ldflags injection
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	os.Exit(run())
}

func run() int {
	info := cli.BuildInfo{
		Version: version,
		Commit:  commit,
		Date:    date,
	}

	rootCmd := cli.NewRootCommand(info)

	err := rootCmd.Execute()
	if err != nil && !errors.Is(err, cli.ErrIssuesFound) {
		// ErrIssuesFound only drives the exit code, everything else is
		// worth reporting.
		logger := logging.Default()
		logger.Error("command failed", logging.FieldError, err)
	}

	return cli.ExitCodeFromError(err)
}
