// Package findfile implements upward directory search with memoization.
// A Finder walks parent directories toward the filesystem root looking for a
// file by name, caching every probe so repeated queries during a run never
// touch the filesystem twice.
package findfile

import (
	"os"
	"path/filepath"
	"sync"
)

// entry records the outcome of a single probe.
type entry struct {
	path  string
	found bool
}

// Finder performs upward file searches against an explicit per-run cache.
// The zero value is not usable; create one with New. A Finder is safe for
// use from concurrent traversals.
type Finder struct {
	mu     sync.Mutex
	cache  map[string]entry
	probes int
}

// New creates a Finder with an empty cache.
func New() *Finder {
	return &Finder{cache: make(map[string]entry)}
}

// Find searches for name starting at startDir and ascending toward the
// filesystem root. It returns the absolute path of the first match and true,
// or "" and false when no ancestor directory contains the file.
//
// startDir defaults to the process working directory when empty. Every
// probed candidate path is cached, found or not, so a repeated query is
// answered without filesystem access.
func (f *Finder) Find(name, startDir string) (string, bool) {
	dir := startDir
	if dir == "" {
		wd, err := os.Getwd()
		if err != nil {
			return "", false
		}
		dir = wd
	}
	if abs, err := filepath.Abs(dir); err == nil {
		dir = abs
	}

	for {
		candidate := filepath.Clean(filepath.Join(dir, name))

		hit, cached := f.lookup(candidate)
		if cached && hit.found {
			return hit.path, true
		}
		if !cached {
			if f.probe(candidate) {
				f.store(candidate, entry{path: candidate, found: true})
				return candidate, true
			}
			f.store(candidate, entry{})
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return "", false
		}
		dir = parent
	}
}

// Probes reports how many filesystem probes the finder has performed.
func (f *Finder) Probes() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.probes
}

func (f *Finder) lookup(candidate string) (entry, bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	hit, ok := f.cache[candidate]
	return hit, ok
}

func (f *Finder) store(candidate string, e entry) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.cache[candidate] = e
}

func (f *Finder) probe(candidate string) bool {
	f.mu.Lock()
	f.probes++
	f.mu.Unlock()

	_, err := os.Stat(candidate)
	return err == nil
}
