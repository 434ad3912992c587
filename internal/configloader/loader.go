// Package configloader resolves the effective configuration for a file.
// Sources are consulted in precedence order: an explicit document supplied by
// the caller, a lint-configuration field embedded in the nearest package
// manifest, a project config file discovered by upward search, and finally a
// per-user config file in the home directory. Config files are JSON with
// comments; "extends" chains are flattened before the document is returned.
package configloader

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/yaklabco/lintfront/internal/logging"
	"github.com/yaklabco/lintfront/pkg/document"
	"github.com/yaklabco/lintfront/pkg/findfile"
)

// Default file names recognized during discovery.
const (
	// ConfigFileName is the project config file searched for upward.
	ConfigFileName = ".lintrc"

	// ManifestFileName is the package manifest searched for upward.
	ManifestFileName = "package.json"

	// ManifestConfigKey is the manifest field holding an embedded config.
	ManifestConfigKey = "lintConfig"
)

// Resolution error categories. All three are fatal to the run.
var (
	// ErrConfigNotFound marks an explicitly requested config path that
	// does not exist. A simply-absent default path is not an error.
	ErrConfigNotFound = errors.New("config file not found")

	// ErrConfigParse marks malformed JSON anywhere in a config chain.
	ErrConfigParse = errors.New("config parse failure")

	// ErrExtendsCycle marks a circular extends chain.
	ErrExtendsCycle = errors.New("extends cycle detected")
)

// Resolver discovers and loads the effective configuration for files.
// A Resolver is scoped to one run and shares the run's Finder cache.
type Resolver struct {
	// Finder performs the upward searches and owns the path cache.
	Finder *findfile.Finder

	// Explicit, when non-nil, is returned as-is for every file.
	Explicit document.Document

	// ExplicitSource is the directory prereq paths resolve against when
	// Explicit is set (empty means the working directory).
	ExplicitSource string

	// HomeDir overrides the user home directory, mainly for tests.
	// Empty means os.UserHomeDir().
	HomeDir string
}

// Resolve returns the effective configuration for filePath along with the
// source path of the loaded file. The source is empty for an explicit
// document; for manifest-embedded configuration it is the manifest path.
func (r *Resolver) Resolve(filePath string) (document.Document, string, error) {
	if r.Explicit != nil {
		return r.Explicit, r.ExplicitSource, nil
	}

	dir := filepath.Dir(filePath)
	if abs, err := filepath.Abs(dir); err == nil {
		dir = abs
	}

	if doc, source := r.manifestConfig(dir); doc != nil {
		return doc, source, nil
	}

	path := r.discoverConfigFile(dir)
	if path == "" {
		return document.New(), "", nil
	}

	doc, err := r.Load(path)
	if err != nil {
		return nil, "", err
	}
	return doc, path, nil
}

// manifestConfig looks for an embedded config in the nearest package
// manifest. Every failure here is a silent fallthrough: a manifest that is
// missing, unreadable, or malformed just means "no config found here".
func (r *Resolver) manifestConfig(dir string) (document.Document, string) {
	path, ok := r.Finder.Find(ManifestFileName, dir)
	if !ok {
		return nil, ""
	}

	content, err := os.ReadFile(path)
	if err != nil {
		return nil, ""
	}

	var manifest map[string]any
	if err := parseJSONC(content, &manifest); err != nil {
		logging.Default().Debug("ignoring malformed manifest",
			logging.FieldManifest, path, logging.FieldError, err)
		return nil, ""
	}

	embedded, ok := manifest[ManifestConfigKey].(map[string]any)
	if !ok {
		return nil, ""
	}
	return document.Document(embedded), path
}

// discoverConfigFile finds the project config by upward search, falling back
// to the per-user file in the home directory. Empty when neither exists.
func (r *Resolver) discoverConfigFile(dir string) string {
	if path, ok := r.Finder.Find(ConfigFileName, dir); ok {
		return path
	}

	home := r.HomeDir
	if home == "" {
		var err error
		home, err = os.UserHomeDir()
		if err != nil {
			return ""
		}
	}

	candidate := filepath.Join(home, ConfigFileName)
	if info, err := os.Stat(candidate); err == nil && !info.IsDir() {
		return candidate
	}
	return ""
}

// Load reads and parses the config file at path, flattening its extends
// chain. A missing path wraps ErrConfigNotFound, malformed JSON wraps
// ErrConfigParse, and a circular chain wraps ErrExtendsCycle; all are fatal
// to the run.
func (r *Resolver) Load(path string) (document.Document, error) {
	abs := path
	if resolved, err := filepath.Abs(abs); err == nil {
		abs = resolved
	}
	return r.load(abs, map[string]bool{})
}

func (r *Resolver) load(path string, visited map[string]bool) (document.Document, error) {
	if visited[path] {
		return nil, fmt.Errorf("%w: %s revisited", ErrExtendsCycle, path)
	}
	visited[path] = true

	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrConfigNotFound, path, err)
	}

	doc := document.New()
	if err := parseJSONC(content, &doc); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrConfigParse, path, err)
	}

	if ref, ok := doc.Extends(); ok {
		parentPath := ref
		if !filepath.IsAbs(parentPath) {
			parentPath = filepath.Join(filepath.Dir(path), parentPath)
		}
		parentPath = filepath.Clean(parentPath)

		logging.Default().Debug("following extends",
			logging.FieldConfigPath, path, logging.FieldExtends, parentPath)

		parent, err := r.load(parentPath, visited)
		if err != nil {
			return nil, err
		}
		doc.ApplyDefaults(parent)
	}
	doc.DropExtends()

	return doc, nil
}
