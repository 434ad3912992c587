// Package lintrun orchestrates a lint pass: it gathers files, resolves each
// file's configuration, prepares source text, and delegates to an external
// Analyzer, accumulating diagnostics and metadata.
package lintrun

import "github.com/yaklabco/lintfront/pkg/document"

// AnalyzerError is one error record reported by the analyzer.
type AnalyzerError struct {
	// Line and Column are 1-based positions in the analyzed source.
	Line   int
	Column int

	// Code is the analyzer's error identifier.
	Code string

	// Reason is the human-readable description.
	Reason string

	// Evidence is the offending source fragment, when available.
	Evidence string
}

// Analyzer is the external rule-checking engine this subsystem feeds.
// Analyze reports pass/fail plus an ordered sequence of error records;
// Data exposes the per-invocation metadata of the most recent call.
type Analyzer interface {
	Analyze(source string, options document.Document, globals map[string]any) (bool, []AnalyzerError)
	Data() map[string]any
}

// Diagnostic tags one analyzer error with its originating file.
// File is the literal "stdin" when no file path is known.
type Diagnostic struct {
	File string
	Err  AnalyzerError
}

// Metadata is the analyzer's per-file data annotated with the file path and
// the detected source language.
type Metadata struct {
	File     string
	Language string
	Data     map[string]any
}
