package extract

import (
	"bytes"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"
)

// executableFence reports whether a fenced-code info string names an
// executable-script language.
func executableFence(lang string) bool {
	switch strings.ToLower(strings.TrimSpace(lang)) {
	case "js", "javascript", "mjs", "cjs":
		return true
	default:
		return false
	}
}

// LooksLikeMarkdownHost reports whether the text contains a fenced code
// block opener. This is the auto-mode heuristic for Markdown hosts.
func LooksLikeMarkdownHost(raw string) bool {
	return strings.Contains(raw, "```")
}

// ExtractMarkdown returns the fenced executable-script blocks of a Markdown
// document, padded with bare newlines so extracted code keeps its original
// line numbers. Mode semantics mirror Extract: ModeNever passes through,
// ModeAuto extracts only when a fence opener is present.
func ExtractMarkdown(raw string, mode Mode) string {
	switch mode {
	case ModeAlways:
		return extractFences(raw)
	case ModeAuto:
		if LooksLikeMarkdownHost(raw) {
			return extractFences(raw)
		}
		return raw
	default:
		return raw
	}
}

func extractFences(raw string) string {
	src := []byte(raw)
	md := goldmark.New()
	root := md.Parser().Parse(text.NewReader(src))

	var out strings.Builder
	emitted := 0

	_ = ast.Walk(root, func(node ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		fence, ok := node.(*ast.FencedCodeBlock)
		if !ok {
			return ast.WalkContinue, nil
		}

		var lang string
		if fence.Info != nil {
			lang = string(fence.Info.Text(src))
		}
		if !executableFence(lang) {
			return ast.WalkSkipChildren, nil
		}

		lines := fence.Lines()
		for i := range lines.Len() {
			seg := lines.At(i)
			// 0-based source line of this segment.
			lineNo := bytes.Count(src[:seg.Start], []byte("\n"))
			for emitted < lineNo {
				out.WriteByte('\n')
				emitted++
			}
			chunk := seg.Value(src)
			out.Write(chunk)
			emitted += bytes.Count(chunk, []byte("\n"))
		}
		return ast.WalkSkipChildren, nil
	})

	return out.String()
}
