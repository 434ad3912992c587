package cli

import "errors"

// Exit codes for lintfront.
const (
	// ExitSuccess indicates successful execution with no issues.
	ExitSuccess = 0

	// ExitIssuesFound indicates the run completed but diagnostics were reported.
	ExitIssuesFound = 1

	// ExitFatal indicates a configuration or usage error before analysis
	// could complete.
	ExitFatal = 2
)

// ErrIssuesFound is returned when a run completes with diagnostics. It is
// a signal for the exit code, not something to log.
var ErrIssuesFound = errors.New("issues found")

// ExitCodeFromError maps a command error to a process exit code.
func ExitCodeFromError(err error) int {
	switch {
	case err == nil:
		return ExitSuccess
	case errors.Is(err, ErrIssuesFound):
		return ExitIssuesFound
	default:
		return ExitFatal
	}
}
