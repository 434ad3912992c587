// Package extract isolates embedded executable-script regions from
// markup-hosting documents so the analyzer only ever sees source code.
// Newlines from skipped regions are re-emitted as padding, keeping line
// numbers in the extracted stream aligned with the original document.
package extract

import (
	"fmt"
	"strings"

	"golang.org/x/net/html"
)

// Mode controls when extraction is applied.
type Mode string

const (
	// ModeNever passes text through unchanged.
	ModeNever Mode = "never"
	// ModeAlways always extracts.
	ModeAlways Mode = "always"
	// ModeAuto extracts only when the text looks like markup.
	ModeAuto Mode = "auto"
)

// ParseMode validates a mode string.
func ParseMode(s string) (Mode, error) {
	switch Mode(s) {
	case ModeNever, ModeAlways, ModeAuto:
		return Mode(s), nil
	case "":
		return ModeNever, nil
	default:
		return "", fmt.Errorf("unknown extract mode %q (want never, always, or auto)", s)
	}
}

// LooksLikeMarkup reports whether the first non-whitespace character of the
// text is "<". This is the auto-mode heuristic.
func LooksLikeMarkup(raw string) bool {
	trimmed := strings.TrimLeft(raw, " \t\r\n\f\v")
	return strings.HasPrefix(trimmed, "<")
}

// Extract returns the embedded script content of a markup document, or the
// text unchanged when mode is ModeNever, or ModeAuto with non-markup input.
func Extract(raw string, mode Mode) string {
	switch mode {
	case ModeAlways:
		return extractHTML(raw)
	case ModeAuto:
		if LooksLikeMarkup(raw) {
			return extractHTML(raw)
		}
		return raw
	default:
		return raw
	}
}

// executableScriptType reports whether a script element's type attribute
// denotes executable script. An absent attribute defaults to executable.
func executableScriptType(typ string) bool {
	switch strings.ToLower(strings.TrimSpace(typ)) {
	case "", "text/javascript", "application/javascript", "module":
		return true
	default:
		return false
	}
}

// extractHTML tokenizes the document and accumulates text found strictly
// between opening and closing script tags of executable type. Newlines from
// everything outside those regions accumulate and are flushed as bare
// newlines at the start of the next region.
func extractHTML(raw string) string {
	tokenizer := html.NewTokenizer(strings.NewReader(raw))

	var out strings.Builder
	pending := 0
	inScript := false

	for {
		tt := tokenizer.Next()
		if tt == html.ErrorToken {
			break
		}
		chunk := string(tokenizer.Raw())

		switch tt {
		case html.StartTagToken:
			name, hasAttr := tokenizer.TagName()
			if string(name) != "script" {
				pending += strings.Count(chunk, "\n")
				continue
			}

			executable := true
			for hasAttr {
				var key, val []byte
				key, val, hasAttr = tokenizer.TagAttr()
				if string(key) == "type" {
					executable = executableScriptType(string(val))
				}
			}

			pending += strings.Count(chunk, "\n")
			if executable {
				out.WriteString(strings.Repeat("\n", pending))
				pending = 0
				inScript = true
			}

		case html.EndTagToken:
			name, _ := tokenizer.TagName()
			if inScript && string(name) == "script" {
				inScript = false
			}
			pending += strings.Count(chunk, "\n")

		case html.TextToken:
			if inScript {
				out.WriteString(chunk)
			} else {
				pending += strings.Count(chunk, "\n")
			}

		default:
			pending += strings.Count(chunk, "\n")
		}
	}

	return out.String()
}
