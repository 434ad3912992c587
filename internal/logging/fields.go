// Package logging provides a structured logging wrapper around charmbracelet/log.
package logging

// Field name constants for structured logging.
// Using constants prevents typos and enables IDE autocomplete.
const (
	// Common fields.
	FieldError      = "error"
	FieldPath       = "path"
	FieldPaths      = "paths"
	FieldFile       = "file"
	FieldWorkingDir = "working_dir"
	FieldRunID      = "run_id"

	// Discovery fields.
	FieldPattern    = "pattern"
	FieldPatterns   = "patterns"
	FieldIgnoreFile = "ignore_file"
	FieldExtensions = "extensions"

	// Configuration fields.
	FieldConfigPath   = "config_path"
	FieldConfigSource = "config_source"
	FieldExtends      = "extends"
	FieldManifest     = "manifest"

	// Statistics fields.
	FieldFilesCollected   = "files_collected"
	FieldFilesAnalyzed    = "files_analyzed"
	FieldDiagnosticsTotal = "diagnostics_total"
	FieldWarningsTotal    = "warnings_total"

	// Version fields.
	FieldVersion = "version"
	FieldCommit  = "commit"
	FieldBuilt   = "built"
)
