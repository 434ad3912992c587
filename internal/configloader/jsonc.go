package configloader

import (
	"encoding/json"
	"fmt"
)

// parseJSONC parses JSON that may carry JavaScript-style comments.
// Valid plain JSON is accepted directly; otherwise comments are stripped and
// the content is parsed again.
func parseJSONC(content []byte, target any) error {
	if err := json.Unmarshal(content, target); err == nil {
		return nil
	}

	stripped := stripComments(content)
	if err := json.Unmarshal(stripped, target); err != nil {
		return fmt.Errorf("unmarshal stripped JSON: %w", err)
	}
	return nil
}

// scanState tracks where the comment stripper is inside the input.
type scanState int

const (
	scanCode scanState = iota
	scanString
	scanLineComment
	scanBlockComment
)

// stripComments removes // and /* */ comments, preserving string contents
// and the newlines inside line comments so JSON parse errors keep usable
// line numbers.
func stripComments(content []byte) []byte {
	out := make([]byte, 0, len(content))
	state := scanCode

	for i := 0; i < len(content); i++ {
		ch := content[i]

		switch state {
		case scanLineComment:
			if ch == '\n' {
				state = scanCode
				out = append(out, ch)
			}

		case scanBlockComment:
			if ch == '*' && i+1 < len(content) && content[i+1] == '/' {
				state = scanCode
				i++
			}

		case scanString:
			out = append(out, ch)
			switch ch {
			case '\\':
				if i+1 < len(content) {
					i++
					out = append(out, content[i])
				}
			case '"':
				state = scanCode
			}

		default:
			if ch == '"' {
				state = scanString
				out = append(out, ch)
				continue
			}
			if ch == '/' && i+1 < len(content) {
				switch content[i+1] {
				case '/':
					state = scanLineComment
					i++
					continue
				case '*':
					state = scanBlockComment
					i++
					continue
				}
			}
			out = append(out, ch)
		}
	}

	return out
}
