package collect

import (
	"context"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"github.com/yaklabco/lintfront/pkg/findfile"
	"github.com/yaklabco/lintfront/pkg/ignore"
)

func writeFile(t *testing.T, path string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	if err := os.WriteFile(path, []byte("// test\n"), 0o644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
}

func noIgnores() *ignore.Matcher {
	return ignore.NewMatcher(nil)
}

func TestCollect_ExtensionFilter(t *testing.T) {
	t.Parallel()

	tmp := t.TempDir()
	writeFile(t, filepath.Join(tmp, "a.js"))
	writeFile(t, filepath.Join(tmp, "b.ts"))
	writeFile(t, filepath.Join(tmp, "c.txt"))

	c := New(noIgnores(), NewExtFilter([]string{"ts"}))
	files, warnings, err := c.Collect(context.Background(), []string{tmp})
	if err != nil {
		t.Fatalf("Collect() error = %v", err)
	}
	if len(warnings) != 0 {
		t.Fatalf("Collect() warnings = %v", warnings)
	}

	want := []string{filepath.Join(tmp, "a.js"), filepath.Join(tmp, "b.ts")}
	if !reflect.DeepEqual(files, want) {
		t.Errorf("Collect() = %v, want %v", files, want)
	}
}

func TestCollect_DepthFirst(t *testing.T) {
	t.Parallel()

	tmp := t.TempDir()
	writeFile(t, filepath.Join(tmp, "a", "one.js"))
	writeFile(t, filepath.Join(tmp, "a", "sub", "two.js"))
	writeFile(t, filepath.Join(tmp, "z.js"))

	c := New(noIgnores(), NewExtFilter(nil))
	files, _, err := c.Collect(context.Background(), []string{tmp})
	if err != nil {
		t.Fatalf("Collect() error = %v", err)
	}

	want := []string{
		filepath.Join(tmp, "a", "one.js"),
		filepath.Join(tmp, "a", "sub", "two.js"),
		filepath.Join(tmp, "z.js"),
	}
	if !reflect.DeepEqual(files, want) {
		t.Errorf("Collect() = %v, want %v", files, want)
	}
}

func TestCollect_IgnorePrunesSubtree(t *testing.T) {
	t.Parallel()

	tmp := t.TempDir()
	writeFile(t, filepath.Join(tmp, "keep.js"))
	writeFile(t, filepath.Join(tmp, "vendor", "dep.js"))
	writeFile(t, filepath.Join(tmp, "vendor", "nested", "deep.js"))

	ignoreFile := filepath.Join(tmp, ignore.DefaultIgnoreFile)
	if err := os.WriteFile(ignoreFile, []byte("vendor/\n"), 0o644); err != nil {
		t.Fatalf("write ignore file: %v", err)
	}
	matcher := ignore.NewMatcher(ignore.LoadPatterns("", ignoreFile, tmp, findfile.New()))

	c := New(matcher, NewExtFilter(nil))
	files, _, err := c.Collect(context.Background(), []string{tmp})
	if err != nil {
		t.Fatalf("Collect() error = %v", err)
	}

	for _, f := range files {
		if strings.Contains(f, "vendor") {
			t.Errorf("file under ignored directory collected: %s", f)
		}
	}
	if len(files) != 1 {
		t.Errorf("Collect() = %v, want only keep.js", files)
	}
}

func TestCollect_ExplicitFileBypassesExtensionFilter(t *testing.T) {
	t.Parallel()

	tmp := t.TempDir()
	target := filepath.Join(tmp, "script.weird")
	writeFile(t, target)

	c := New(noIgnores(), NewExtFilter(nil))
	files, _, err := c.Collect(context.Background(), []string{target})
	if err != nil {
		t.Fatalf("Collect() error = %v", err)
	}
	if !reflect.DeepEqual(files, []string{target}) {
		t.Errorf("Collect() = %v, want %v", files, []string{target})
	}
}

func TestCollect_MissingPathWarns(t *testing.T) {
	t.Parallel()

	tmp := t.TempDir()
	writeFile(t, filepath.Join(tmp, "a.js"))
	missing := filepath.Join(tmp, "ghost.js")

	c := New(noIgnores(), NewExtFilter(nil))
	files, warnings, err := c.Collect(context.Background(), []string{missing, tmp})
	if err != nil {
		t.Fatalf("Collect() error = %v", err)
	}
	if len(warnings) != 1 || warnings[0].Path != missing {
		t.Errorf("warnings = %v, want one for %s", warnings, missing)
	}
	if len(files) != 1 {
		t.Errorf("Collect() = %v, want the existing file only", files)
	}
}

func TestCollect_Deduplicates(t *testing.T) {
	t.Parallel()

	tmp := t.TempDir()
	target := filepath.Join(tmp, "a.js")
	writeFile(t, target)

	c := New(noIgnores(), NewExtFilter(nil))
	files, _, err := c.Collect(context.Background(), []string{target, tmp, target})
	if err != nil {
		t.Fatalf("Collect() error = %v", err)
	}
	if !reflect.DeepEqual(files, []string{target}) {
		t.Errorf("Collect() = %v, want single entry", files)
	}
}

func TestCollect_CompleteBeforeReturn(t *testing.T) {
	t.Parallel()

	// A wide, nested tree: every file must be present in the returned list,
	// which fails if any subtree walk were still in flight at return.
	tmp := t.TempDir()
	const dirs, filesPerDir = 8, 5
	want := dirs * filesPerDir
	for d := range dirs {
		for f := range filesPerDir {
			writeFile(t, filepath.Join(tmp, string(rune('a'+d)), "sub", fileName(f)))
		}
	}

	c := New(noIgnores(), NewExtFilter(nil))
	for range 10 {
		files, _, err := c.Collect(context.Background(), []string{tmp})
		if err != nil {
			t.Fatalf("Collect() error = %v", err)
		}
		if len(files) != want {
			t.Fatalf("Collect() returned %d files, want %d", len(files), want)
		}
	}
}

func fileName(i int) string {
	return "f" + string(rune('0'+i)) + ".js"
}

func TestExtFilter(t *testing.T) {
	t.Parallel()

	f := NewExtFilter([]string{"ts", ".JSX", " ", ""})

	cases := map[string]bool{
		"a.js":        true,
		"a.ts":        true,
		"a.jsx":       true,
		"A.JS":        true,
		"a.txt":       false,
		"a.js.bak":    false,
		"noextension": false,
	}
	for path, want := range cases {
		if got := f.Match(path); got != want {
			t.Errorf("Match(%q) = %v, want %v", path, got, want)
		}
	}
}

func TestCollect_Cancelled(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	c := New(noIgnores(), NewExtFilter(nil))
	if _, _, err := c.Collect(ctx, []string{t.TempDir()}); err == nil {
		t.Error("Collect() with cancelled context returned nil error")
	}
}
