// Package ignore implements ignore-pattern loading and matching for file
// collection. Patterns come from an explicit exclusion and an ignore file
// (found directly or by upward search) and are resolved to absolute form
// once, at load time.
package ignore

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/gobwas/glob"

	"github.com/yaklabco/lintfront/pkg/findfile"
)

// DefaultIgnoreFile is the conventional ignore file name discovered by
// upward search when no explicit path is given.
const DefaultIgnoreFile = ".lintignore"

// Pattern is a single exclusion rule resolved against the directory of the
// ignore file it came from.
//
// A leading "!" marks a negation pattern. Negation syntax is accepted at
// load time and the marker is preserved on the resolved string, but matching
// treats the pattern literally: a "!" pattern never matches a normal
// absolute path and never exempts one. This asymmetry is inherited behavior,
// kept rather than silently fixed.
type Pattern struct {
	// Raw is the pattern line as written.
	Raw string

	// Resolved is the absolute form, with any leading "!" preserved.
	Resolved string

	// barePrefix is set when Raw names a bare directory (no separator, or
	// a single trailing one); such patterns prune by path prefix.
	barePrefix bool

	matcher glob.Glob
}

// LoadPatterns assembles the ordered pattern list for a run.
//
// The ignore file is located from explicitPath when given, otherwise by
// upward search from workDir using DefaultIgnoreFile. The single explicit
// exclusion string, when non-empty, is prepended as an extra pattern line.
// Blank and whitespace-only lines are dropped. Every surviving line is
// resolved to absolute form relative to the ignore file's directory (or
// workDir when no file was found).
func LoadPatterns(explicit, explicitPath, workDir string, finder *findfile.Finder) []Pattern {
	base := workDir
	if base == "" {
		base, _ = os.Getwd()
	}

	var lines []string
	file := explicitPath
	if file == "" {
		file, _ = finder.Find(DefaultIgnoreFile, workDir)
	}
	if file != "" {
		if content, err := os.ReadFile(file); err == nil {
			lines = strings.Split(string(content), "\n")
			base = filepath.Dir(file)
		}
	}

	if explicit != "" {
		lines = append([]string{explicit}, lines...)
	}

	patterns := make([]Pattern, 0, len(lines))
	for _, line := range lines {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		patterns = append(patterns, resolvePattern(line, base))
	}
	return patterns
}

// resolvePattern turns one pattern line into its absolute form.
func resolvePattern(line, base string) Pattern {
	pat := Pattern{Raw: line}

	core := line
	negated := strings.HasPrefix(line, "!")
	if negated {
		core = strings.TrimPrefix(line, "!")
	}

	trimmed := strings.TrimSuffix(core, "/")
	pat.barePrefix = !negated && trimmed != "" && !strings.ContainsAny(trimmed, `/\`)

	resolved := core
	if !filepath.IsAbs(resolved) {
		resolved = filepath.Join(base, resolved)
	}
	resolved = filepath.Clean(resolved)
	if negated {
		resolved = "!" + resolved
	}
	pat.Resolved = resolved

	// Compile the glob against the resolved literal. Negated patterns keep
	// their "!" in the compiled form, so they only ever match paths that
	// themselves start with "!".
	if g, err := glob.Compile(strings.ToLower(filepath.ToSlash(resolved)), '/'); err == nil {
		pat.matcher = g
	}

	return pat
}

// Matcher decides whether an absolute path is excluded from collection.
type Matcher struct {
	patterns []Pattern
}

// NewMatcher wraps an ordered pattern sequence.
func NewMatcher(patterns []Pattern) *Matcher {
	return &Matcher{patterns: patterns}
}

// Patterns returns the matcher's pattern sequence in load order.
func (m *Matcher) Patterns() []Pattern {
	return m.patterns
}

// Ignored reports whether path is excluded. A path is ignored when any
// pattern matches by case-insensitive glob against the absolute path, by
// exact string equality, or by bare-directory prefix (the pattern named a
// bare directory, the path exists on disk, and the path string starts with
// the resolved pattern).
func (m *Matcher) Ignored(path string) bool {
	if m == nil || len(m.patterns) == 0 {
		return false
	}

	abs := path
	if !filepath.IsAbs(abs) {
		if resolved, err := filepath.Abs(abs); err == nil {
			abs = resolved
		}
	}
	abs = filepath.Clean(abs)
	lowered := strings.ToLower(filepath.ToSlash(abs))

	for i := range m.patterns {
		pat := &m.patterns[i]

		if pat.matcher != nil && pat.matcher.Match(lowered) {
			return true
		}
		if abs == pat.Resolved {
			return true
		}
		if pat.barePrefix && pathExists(abs) && strings.HasPrefix(abs, pat.Resolved) {
			return true
		}
	}
	return false
}

func pathExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
