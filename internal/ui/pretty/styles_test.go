package pretty

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/yaklabco/lintfront/pkg/lintrun"
)

func TestIsColorEnabled(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer

	assert.True(t, IsColorEnabled("always", &buf))
	assert.False(t, IsColorEnabled("never", &buf))
	// A plain buffer is not a TTY.
	assert.False(t, IsColorEnabled("auto", &buf))
}

func TestPrinter_Print(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	p := NewPrinter(NewStyles(false), &buf)

	p.Print(lintrun.Diagnostic{
		File: "/proj/a.js",
		Err:  lintrun.AnalyzerError{Line: 3, Column: 7, Code: "W098", Reason: "unused variable"},
	})

	got := buf.String()
	assert.Contains(t, got, "/proj/a.js:3:7")
	assert.Contains(t, got, "W098")
	assert.Contains(t, got, "unused variable")
}

func TestPrinter_PrintAll_Summary(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	p := NewPrinter(NewStyles(false), &buf)

	p.PrintAll(nil)
	assert.Contains(t, buf.String(), "no issues found")

	buf.Reset()
	p.PrintAll([]lintrun.Diagnostic{
		{File: "a.js", Err: lintrun.AnalyzerError{Code: "W001", Reason: "x"}},
		{File: "b.js", Err: lintrun.AnalyzerError{Code: "W002", Reason: "y"}},
	})
	out := buf.String()
	assert.Contains(t, out, "2 issue(s) found")
	if strings.Count(out, "\n") != 3 {
		t.Errorf("output = %q, want two diagnostics plus summary", out)
	}
}
