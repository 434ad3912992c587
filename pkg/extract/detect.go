package extract

import (
	"strings"

	"github.com/go-enry/go-enry/v2"
)

// langText is the fallback when detection fails or confidence is low.
const langText = "text"

// detectCandidates are the languages offered to the classifier. The set is
// biased toward what this system actually feeds an analyzer.
//
//nolint:gochecknoglobals // Read-only lookup table.
var detectCandidates = []string{
	"JavaScript", "TypeScript", "HTML", "Markdown", "JSON", "CSS", "Shell",
}

// DetectLanguage returns a lowercase language tag for the given content,
// used to enrich per-file metadata. Returns "text" when nothing confident
// can be said.
func DetectLanguage(content []byte) string {
	if len(content) == 0 {
		return langText
	}

	// Shebang is the most reliable signal.
	if lang, safe := enry.GetLanguageByShebang(content); safe {
		return strings.ToLower(lang)
	}

	if lang, safe := enry.GetLanguageByClassifier(content, detectCandidates); safe && lang != "" {
		return strings.ToLower(lang)
	}

	return langText
}
