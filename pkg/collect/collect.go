// Package collect implements recursive file collection. Roots are expanded
// depth-first, ignore patterns prune whole subtrees, and files discovered
// during descent must pass the extension filter. Subtree walks fan out on an
// errgroup and Collect returns only after every walk reachable from its
// roots has completed, so the result list is final when the call returns.
package collect

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/yaklabco/lintfront/internal/logging"
	"github.com/yaklabco/lintfront/pkg/ignore"
)

// Warning records a non-fatal collection problem: the item is skipped and
// the run continues.
type Warning struct {
	Path string
	Err  error
}

func (w Warning) String() string {
	return fmt.Sprintf("can't open %s: %v", w.Path, w.Err)
}

// ExtFilter decides whether a file found during directory descent is
// retained, by suffix.
type ExtFilter struct {
	suffixes []string
}

// NewExtFilter builds a filter from the default extension ("js") plus any
// extra user-specified suffixes. Entries may be written with or without a
// leading dot; matching is case-insensitive.
func NewExtFilter(extra []string) *ExtFilter {
	suffixes := []string{".js"}
	for _, ext := range extra {
		ext = strings.TrimSpace(strings.ToLower(ext))
		if ext == "" {
			continue
		}
		if !strings.HasPrefix(ext, ".") {
			ext = "." + ext
		}
		suffixes = append(suffixes, ext)
	}
	return &ExtFilter{suffixes: suffixes}
}

// Match reports whether path carries one of the filter's suffixes.
func (f *ExtFilter) Match(path string) bool {
	lowered := strings.ToLower(path)
	for _, suffix := range f.suffixes {
		if strings.HasSuffix(lowered, suffix) {
			return true
		}
	}
	return false
}

// Collector walks root paths into an ordered file list.
type Collector struct {
	Matcher *ignore.Matcher
	Ext     *ExtFilter
}

// New creates a Collector.
func New(matcher *ignore.Matcher, ext *ExtFilter) *Collector {
	return &Collector{Matcher: matcher, Ext: ext}
}

// Collect expands the given roots into an ordered, deduplicated list of
// absolute file paths. An ignored root is skipped entirely, including its
// subtree. A nonexistent root produces a Warning and is skipped. An
// explicitly named file is retained regardless of extension; files found
// during directory descent must pass the extension filter.
func (c *Collector) Collect(ctx context.Context, roots []string) ([]string, []Warning, error) {
	var files []string
	var warnings []Warning
	seen := make(map[string]struct{})

	for _, root := range roots {
		select {
		case <-ctx.Done():
			return nil, nil, fmt.Errorf("collection cancelled: %w", ctx.Err())
		default:
		}

		abs := root
		if !filepath.IsAbs(abs) {
			if resolved, err := filepath.Abs(abs); err == nil {
				abs = resolved
			}
		}
		abs = filepath.Clean(abs)

		if c.Matcher.Ignored(abs) {
			continue
		}

		info, err := os.Stat(abs)
		if err != nil {
			warnings = append(warnings, Warning{Path: root, Err: err})
			logging.Default().Warn("skipping unreadable path",
				logging.FieldPath, root, logging.FieldError, err)
			continue
		}

		if !info.IsDir() {
			if _, ok := seen[abs]; !ok {
				seen[abs] = struct{}{}
				files = append(files, abs)
			}
			continue
		}

		discovered, err := c.walkDir(ctx, abs)
		if err != nil {
			return nil, nil, err
		}
		for _, f := range discovered {
			if _, ok := seen[f]; !ok {
				seen[f] = struct{}{}
				files = append(files, f)
			}
		}
	}

	return files, warnings, nil
}

// walkDir enumerates one directory. Each subdirectory's walk runs on its own
// goroutine; results land in per-entry slots and are flattened in listing
// order after the group joins, so the returned slice is complete and
// deterministic for a given directory layout.
func (c *Collector) walkDir(ctx context.Context, dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		logging.Default().Warn("skipping unreadable directory",
			logging.FieldPath, dir, logging.FieldError, err)
		return nil, nil
	}

	slots := make([][]string, len(entries))
	group, ctx := errgroup.WithContext(ctx)

	for i, entry := range entries {
		full := filepath.Join(dir, entry.Name())

		if c.Matcher.Ignored(full) {
			continue
		}

		if entry.IsDir() {
			group.Go(func() error {
				select {
				case <-ctx.Done():
					return fmt.Errorf("collection cancelled: %w", ctx.Err())
				default:
				}
				sub, walkErr := c.walkDir(ctx, full)
				slots[i] = sub
				return walkErr
			})
			continue
		}

		if c.Ext.Match(full) {
			slots[i] = []string{full}
		}
	}

	if err := group.Wait(); err != nil {
		return nil, err
	}

	var out []string
	for _, slot := range slots {
		out = append(out, slot...)
	}
	return out, nil
}
