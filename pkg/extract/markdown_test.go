package extract

import (
	"strings"
	"testing"
)

func TestExtractMarkdown_FencedBlock(t *testing.T) {
	t.Parallel()

	src := "# Title\n\nSome prose.\n\n```js\nvar x=1;\n```\n"
	got := ExtractMarkdown(src, ModeAuto)

	if !strings.Contains(got, "var x=1;") {
		t.Fatalf("ExtractMarkdown() = %q, want fenced content", got)
	}
	if strings.Contains(got, "Title") || strings.Contains(got, "prose") {
		t.Errorf("ExtractMarkdown() = %q, contains prose", got)
	}

	// "var x=1;" sits on line 6 of the source (1-based).
	lines := strings.Split(got, "\n")
	if len(lines) < 6 || strings.TrimSpace(lines[5]) != "var x=1;" {
		t.Errorf("line 6 = %q, want \"var x=1;\"", line(lines, 5))
	}
}

func TestExtractMarkdown_LanguageFilter(t *testing.T) {
	t.Parallel()

	src := "```python\nprint(1)\n```\n\n```javascript\nvar ok=true;\n```\n"
	got := ExtractMarkdown(src, ModeAlways)

	if strings.Contains(got, "print(1)") {
		t.Errorf("ExtractMarkdown() = %q, included non-script fence", got)
	}
	if !strings.Contains(got, "var ok=true;") {
		t.Errorf("ExtractMarkdown() = %q, missing javascript fence", got)
	}
}

func TestExtractMarkdown_AutoWithoutFence(t *testing.T) {
	t.Parallel()

	src := "just prose, no fences\n"
	if got := ExtractMarkdown(src, ModeAuto); got != src {
		t.Errorf("ExtractMarkdown() = %q, want unchanged input", got)
	}
}

func TestExtractMarkdown_Never(t *testing.T) {
	t.Parallel()

	src := "```js\nvar x=1;\n```\n"
	if got := ExtractMarkdown(src, ModeNever); got != src {
		t.Errorf("ExtractMarkdown() = %q, want passthrough", got)
	}
}
