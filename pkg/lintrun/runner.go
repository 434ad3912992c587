package lintrun

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"

	"github.com/yaklabco/lintfront/internal/configloader"
	"github.com/yaklabco/lintfront/internal/logging"
	"github.com/yaklabco/lintfront/pkg/collect"
	"github.com/yaklabco/lintfront/pkg/document"
	"github.com/yaklabco/lintfront/pkg/extract"
	"github.com/yaklabco/lintfront/pkg/findfile"
	"github.com/yaklabco/lintfront/pkg/ignore"
)

// stdinTag is the file tag used when no file path is known.
const stdinTag = "stdin"

// bom is the UTF-8 byte-order mark stripped from assembled source.
const bom = "\uFEFF"

// Runner drives a lint pass against an external Analyzer.
type Runner struct {
	Analyzer Analyzer
}

// New creates a Runner.
func New(analyzer Analyzer) *Runner {
	return &Runner{Analyzer: analyzer}
}

// Gather determines the exact set of files a run with opts would analyze,
// honoring ignore rules and the extension filter. The returned list is
// complete when Gather returns.
func (r *Runner) Gather(ctx context.Context, opts Options) ([]string, []collect.Warning, error) {
	workDir, err := resolveWorkDir(opts.WorkingDir)
	if err != nil {
		return nil, nil, err
	}

	finder := findfile.New()
	return gather(ctx, opts, workDir, finder)
}

func gather(
	ctx context.Context,
	opts Options,
	workDir string,
	finder *findfile.Finder,
) ([]string, []collect.Warning, error) {
	patterns := ignore.LoadPatterns(opts.Exclude, opts.ExcludePath, workDir, finder)
	matcher := ignore.NewMatcher(patterns)

	roots := make([]string, 0, len(opts.Args))
	for _, arg := range opts.Args {
		if !filepath.IsAbs(arg) {
			arg = filepath.Join(workDir, arg)
		}
		roots = append(roots, arg)
	}

	collector := collect.New(matcher, collect.NewExtFilter(opts.Extensions))
	return collector.Collect(ctx, roots)
}

// Run executes a full lint pass: gather, per-file configuration resolution,
// content preparation, and analyzer delegation. Fatal configuration errors
// abort the run; collection problems become warnings on the result.
func (r *Runner) Run(ctx context.Context, opts Options) (*Result, error) {
	workDir, err := resolveWorkDir(opts.WorkingDir)
	if err != nil {
		return nil, err
	}

	result := &Result{RunID: uuid.NewString()}
	logger := logging.WithRun(result.RunID)

	finder := findfile.New()
	resolver := &configloader.Resolver{
		Finder:  finder,
		HomeDir: opts.HomeDir,
	}

	// An explicit config object short-circuits discovery; an explicitly
	// requested config file is loaded once, strictly, and then acts as the
	// explicit object.
	if opts.Config != nil {
		resolver.Explicit = opts.Config
		resolver.ExplicitSource = workDir
	} else if opts.ConfigPath != "" {
		doc, err := resolver.Load(opts.ConfigPath)
		if err != nil {
			return nil, err
		}
		resolver.Explicit = doc
		resolver.ExplicitSource = opts.ConfigPath
	}

	if len(opts.Args) == 0 && opts.Stdin != nil {
		return r.runStdin(opts, workDir, resolver, result)
	}

	files, warnings, err := gather(ctx, opts, workDir, finder)
	if err != nil {
		return nil, err
	}
	result.Files = files
	result.Warnings = warnings

	logger.Debug("collected files",
		logging.FieldFilesCollected, len(files),
		logging.FieldWorkingDir, workDir)

	for _, file := range files {
		select {
		case <-ctx.Done():
			return result, fmt.Errorf("run cancelled: %w", ctx.Err())
		default:
		}

		doc, source, err := resolver.Resolve(file)
		if err != nil {
			return nil, err
		}

		content, err := os.ReadFile(file)
		if err != nil {
			result.Warnings = append(result.Warnings, collect.Warning{Path: file, Err: err})
			logger.Warn("skipping unreadable file",
				logging.FieldFile, file, logging.FieldError, err)
			continue
		}

		code := extractFor(file, string(content), opts.effectiveExtract())
		r.analyze(file, code, doc, sourceDir(source, workDir), result)
	}

	if opts.Reporter != nil {
		opts.Reporter(result.Diagnostics, result.Data)
	}

	logger.Debug("run finished",
		logging.FieldFilesAnalyzed, len(result.Files),
		logging.FieldDiagnosticsTotal, len(result.Diagnostics),
		logging.FieldWarningsTotal, len(result.Warnings))

	return result, nil
}

// runStdin analyzes the standard input stream as a single unnamed file.
func (r *Runner) runStdin(
	opts Options,
	workDir string,
	resolver *configloader.Resolver,
	result *Result,
) (*Result, error) {
	content, err := io.ReadAll(opts.Stdin)
	if err != nil {
		return nil, fmt.Errorf("read stdin: %w", err)
	}

	// Configuration is resolved as if the stream lived in the working
	// directory.
	doc, source, err := resolver.Resolve(filepath.Join(workDir, stdinTag))
	if err != nil {
		return nil, err
	}

	code := extract.Extract(string(content), opts.effectiveExtract())
	r.analyze("", code, doc, sourceDir(source, workDir), result)

	if opts.Reporter != nil {
		opts.Reporter(result.Diagnostics, result.Data)
	}
	return result, nil
}

// analyze prepares one file's source and delegates to the analyzer.
// The configuration is cloned so the caller's document is never mutated;
// reserved keys are consumed before delegation.
func (r *Runner) analyze(file, code string, doc document.Document, sourceDir string, result *Result) {
	cfg := doc.Clone()
	if cfg == nil {
		cfg = document.New()
	}

	globals := cfg.Globals()
	prereq := cfg.Prereq()

	if len(prereq) > 0 {
		var buffer strings.Builder
		for _, dep := range prereq {
			if !filepath.IsAbs(dep) {
				dep = filepath.Join(sourceDir, dep)
			}
			content, err := os.ReadFile(dep)
			if err != nil {
				continue
			}
			buffer.Write(content)
		}
		code = buffer.String() + code
	}

	code = strings.TrimPrefix(code, bom)

	tag := file
	if tag == "" {
		tag = stdinTag
	}

	ok, errs := r.Analyzer.Analyze(code, cfg, globals)
	if !ok {
		for _, e := range errs {
			result.Diagnostics = append(result.Diagnostics, Diagnostic{File: tag, Err: e})
		}
	}

	result.Data = append(result.Data, Metadata{
		File:     tag,
		Language: extract.DetectLanguage([]byte(code)),
		Data:     r.Analyzer.Data(),
	})
}

// extractFor applies the extraction mode appropriate for a file: markup
// hosts go through script-element extraction, Markdown hosts through
// fenced-block extraction, and anything else through the auto heuristic.
func extractFor(file, content string, mode extract.Mode) string {
	if mode == extract.ModeNever {
		return content
	}

	switch strings.ToLower(filepath.Ext(file)) {
	case ".md", ".markdown":
		return extract.ExtractMarkdown(content, mode)
	case ".html", ".htm", ".xhtml":
		return extract.Extract(content, extract.ModeAlways)
	default:
		return extract.Extract(content, mode)
	}
}

// sourceDir returns the directory prereq paths resolve against for a config
// source path; file sources use their directory, everything else the
// working directory.
func sourceDir(source, workDir string) string {
	if source == "" {
		return workDir
	}
	if info, err := os.Stat(source); err == nil && info.IsDir() {
		return source
	}
	return filepath.Dir(source)
}

// resolveWorkDir resolves the working directory, defaulting to os.Getwd().
func resolveWorkDir(workDir string) (string, error) {
	if workDir == "" {
		wd, err := os.Getwd()
		if err != nil {
			return "", fmt.Errorf("get working directory: %w", err)
		}
		return wd, nil
	}
	abs, err := filepath.Abs(workDir)
	if err != nil {
		return "", fmt.Errorf("resolve working directory: %w", err)
	}
	return abs, nil
}
