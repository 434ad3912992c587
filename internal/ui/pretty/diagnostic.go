package pretty

import (
	"fmt"
	"io"

	"github.com/yaklabco/lintfront/pkg/lintrun"
)

// Printer renders diagnostics one per line.
type Printer struct {
	Styles *Styles
	Out    io.Writer
}

// NewPrinter creates a Printer writing to out.
func NewPrinter(styles *Styles, out io.Writer) *Printer {
	return &Printer{Styles: styles, Out: out}
}

// Print renders a single diagnostic as "file:line:col  code  message".
func (p *Printer) Print(diag lintrun.Diagnostic) {
	location := fmt.Sprintf("%d:%d", diag.Err.Line, diag.Err.Column)

	fmt.Fprintf(p.Out, "%s%s%s  %s  %s\n",
		p.Styles.FilePath.Render(diag.File),
		p.Styles.Dim.Render(":"),
		p.Styles.Location.Render(location),
		p.Styles.Code.Render(diag.Err.Code),
		p.Styles.Message.Render(diag.Err.Reason),
	)
}

// PrintAll renders every diagnostic followed by a one-line summary.
func (p *Printer) PrintAll(diagnostics []lintrun.Diagnostic) {
	for _, diag := range diagnostics {
		p.Print(diag)
	}

	if len(diagnostics) == 0 {
		fmt.Fprintln(p.Out, p.Styles.Success.Render("no issues found"))
		return
	}
	fmt.Fprintln(p.Out, p.Styles.Failure.Render(fmt.Sprintf("%d issue(s) found", len(diagnostics))))
}
