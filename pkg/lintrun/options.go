package lintrun

import (
	"io"

	"github.com/yaklabco/lintfront/pkg/document"
	"github.com/yaklabco/lintfront/pkg/extract"
)

// Options controls a single lint run.
type Options struct {
	// Args are the input paths (files or directories). When empty and
	// Stdin is set, the standard input stream is analyzed instead.
	Args []string

	// Config, when non-nil, is the explicit configuration override: it is
	// used as-is for every file and no discovery happens.
	Config document.Document

	// ConfigPath is an explicitly requested config file. A missing or
	// malformed file here is fatal to the run.
	ConfigPath string

	// Exclude is a single extra exclusion pattern, prepended to the
	// ignore-file patterns.
	Exclude string

	// ExcludePath is an explicit ignore-file path. Empty means upward
	// discovery of the default ignore file.
	ExcludePath string

	// Extensions lists extra file suffixes (beyond the default "js")
	// retained during directory descent.
	Extensions []string

	// Extract selects the markup-extraction mode.
	Extract extract.Mode

	// Reporter, when non-nil, receives the accumulated diagnostics and
	// metadata at the end of the run. Formatting is the reporter's
	// problem, not this package's.
	Reporter func(diagnostics []Diagnostic, data []Metadata)

	// WorkingDir is the base for relative paths and discovery. Empty
	// means the process working directory.
	WorkingDir string

	// HomeDir overrides the per-user config location, mainly for tests.
	HomeDir string

	// Stdin supplies source text when no Args are given.
	Stdin io.Reader
}

// effectiveExtract returns the extraction mode, defaulting to never.
func (o Options) effectiveExtract() extract.Mode {
	if o.Extract == "" {
		return extract.ModeNever
	}
	return o.Extract
}
