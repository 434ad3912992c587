package cli

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/yaklabco/lintfront/internal/configloader"
	"github.com/yaklabco/lintfront/internal/logging"
	"github.com/yaklabco/lintfront/internal/ui/pretty"
	"github.com/yaklabco/lintfront/pkg/document"
	"github.com/yaklabco/lintfront/pkg/extract"
	"github.com/yaklabco/lintfront/pkg/lintrun"
)

type runFlags struct {
	exclude     string
	excludePath string
	extensions  []string
	extract     string
}

func newRunCommand() *cobra.Command {
	flags := &runFlags{}

	cmd := &cobra.Command{
		Use:   "run [paths...]",
		Short: "Analyze source files",
		Long:  runLongDescription,
		Args:  cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRun(cmd, args, flags)
		},
	}

	cmd.Flags().StringVar(&flags.exclude, "exclude", "", "extra exclusion pattern")
	cmd.Flags().StringVar(&flags.excludePath, "exclude-path", "",
		"path to an ignore file (default: nearest .lintignore)")
	cmd.Flags().StringSliceVar(&flags.extensions, "extra-ext", nil,
		"additional file extensions to analyze")
	cmd.Flags().StringVar(&flags.extract, "extract", "never",
		"extract scripts from markup: never, always, auto")

	return cmd
}

const runLongDescription = `Analyze source files for issues.

Directories are descended recursively; files listed explicitly are always
analyzed regardless of extension. When no paths are given and input is
piped, standard input is analyzed instead.

Examples:
  lintfront run                    # Analyze piped input
  lintfront run src/               # Analyze a directory tree
  lintfront run app.js lib/        # Mix files and directories
  lintfront run --extract auto .   # Pull scripts out of markup files
  lintfront run --exclude 'dist'   # Add an exclusion pattern`

func runRun(cmd *cobra.Command, args []string, flags *runFlags) error {
	logger := logging.Default()

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	// Explicit config path comes from the root command's persistent flag.
	configPath, err := cmd.Flags().GetString("config")
	if err != nil {
		return fmt.Errorf("get config flag: %w", err)
	}

	workDir, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("get working directory: %w", err)
	}

	mode, err := extract.ParseMode(flags.extract)
	if err != nil {
		return fmt.Errorf("invalid extract mode: %w", err)
	}

	colorMode, err := cmd.Flags().GetString("color")
	if err != nil {
		colorMode = "auto"
	}

	out := cmd.OutOrStdout()
	printer := pretty.NewPrinter(pretty.NewStyles(pretty.IsColorEnabled(colorMode, out)), out)

	opts := lintrun.Options{
		Args:        args,
		ConfigPath:  configPath,
		Exclude:     flags.exclude,
		ExcludePath: flags.excludePath,
		Extensions:  flags.extensions,
		Extract:     mode,
		WorkingDir:  workDir,
		Reporter: func(diagnostics []lintrun.Diagnostic, _ []lintrun.Metadata) {
			printer.PrintAll(diagnostics)
		},
	}

	// Piped input stands in for paths when none are given.
	if len(args) == 0 && !isatty.IsTerminal(os.Stdin.Fd()) {
		opts.Stdin = os.Stdin
	}

	logger.Debug("starting run",
		logging.FieldPaths, opts.Args,
		logging.FieldWorkingDir, opts.WorkingDir,
		logging.FieldExtensions, opts.Extensions,
	)

	runner := lintrun.New(passAnalyzer{})

	result, err := runner.Run(ctx, opts)
	if err != nil {
		if errors.Is(err, configloader.ErrConfigNotFound) ||
			errors.Is(err, configloader.ErrConfigParse) ||
			errors.Is(err, configloader.ErrExtendsCycle) {
			return errors.Join(errors.New("failed to load configuration"), err)
		}
		return errors.Join(errors.New("run failed"), err)
	}

	for _, warning := range result.Warnings {
		logger.Warn("skipped input",
			logging.FieldPath, warning.Path,
			logging.FieldError, warning.Err,
		)
	}

	logger.Debug("run complete",
		logging.FieldRunID, result.RunID,
		logging.FieldFilesAnalyzed, len(result.Files),
		logging.FieldDiagnosticsTotal, len(result.Diagnostics),
	)

	if !result.OK() {
		return ErrIssuesFound
	}

	return nil
}

// passAnalyzer accepts every file. Real analyzers plug in through the
// lintrun.Analyzer interface; the CLI ships with this placeholder so the
// discovery and configuration front end is usable on its own.
type passAnalyzer struct{}

func (passAnalyzer) Analyze(string, document.Document, map[string]any) (bool, []lintrun.AnalyzerError) {
	return true, nil
}

func (passAnalyzer) Data() map[string]any { return nil }
