package pwalk_test

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/go-pwalk/pwalk"
	"github.com/go-pwalk/pwalk/pwalktest"
	"github.com/go-pwalk/pwalk/testtools"
)

// symlinkLoop creates a symlink at linkPath pointing back at dir,
// so that following it re-enters an ancestor of its own location.
func symlinkLoop(dir, linkPath string) error {
	return os.Symlink(dir, linkPath)
}

func paths(t *testing.T, root string, entries []pwalk.DirEntry[struct{}]) []string {
	t.Helper()
	out := make([]string, len(entries))
	for i, e := range entries {
		rel, err := filepath.Rel(root, e.Path())
		if err != nil {
			t.Fatal(err)
		}
		out[i] = filepath.ToSlash(rel)
	}
	return out
}

func TestEmptyDirectory(t *testing.T) {
	dir, cleanup := testtools.CreateFiles(t, nil)
	defer cleanup()

	entries, err := pwalk.Collect(pwalk.Walk(dir))
	if err != nil {
		t.Fatal(err)
	}
	if got := paths(t, dir, entries); len(got) != 1 || got[0] != "." {
		t.Fatalf("got %v, want [.]", got)
	}
}

func TestTwoFilesSorted(t *testing.T) {
	dir, cleanup := testtools.CreateFiles(t, []testtools.FileSpec{
		{Path: "b.txt", Content: "b"},
		{Path: "a.txt", Content: "a"},
	})
	defer cleanup()

	entries, err := pwalk.Collect(pwalk.Walk(dir, pwalk.Sort[struct{}, struct{}](true)))
	if err != nil {
		t.Fatal(err)
	}
	pwalktest.Snapshot(t, dir, entries, []string{".", "a.txt", "b.txt"})
}

func TestHiddenSkippedByDefault(t *testing.T) {
	dir, cleanup := testtools.CreateFiles(t, []testtools.FileSpec{
		{Path: "visible.txt", Content: "x"},
		{Path: ".hidden", Content: "y"},
	})
	defer cleanup()

	entries, err := pwalk.Collect(pwalk.Walk(dir, pwalk.Sort[struct{}, struct{}](true)))
	if err != nil {
		t.Fatal(err)
	}
	got := paths(t, dir, entries)
	want := []string{".", "visible.txt"}
	if !equal(got, want) {
		t.Fatalf("got %v, want %v", got, want)
	}
}

func TestHiddenIncludedWhenDisabled(t *testing.T) {
	dir, cleanup := testtools.CreateFiles(t, []testtools.FileSpec{
		{Path: "visible.txt", Content: "x"},
		{Path: ".hidden", Content: "y"},
	})
	defer cleanup()

	entries, err := pwalk.Collect(pwalk.Walk(dir,
		pwalk.Sort[struct{}, struct{}](true),
		pwalk.SkipHidden[struct{}, struct{}](false),
	))
	if err != nil {
		t.Fatal(err)
	}
	got := paths(t, dir, entries)
	want := []string{".", ".hidden", "visible.txt"}
	if !equal(got, want) {
		t.Fatalf("got %v, want %v", got, want)
	}
}

func TestMaxDepthBound(t *testing.T) {
	dir, cleanup := testtools.CreateFiles(t, []testtools.FileSpec{
		{Path: "a/b/c.txt", Content: "x"},
	})
	defer cleanup()

	entries, err := pwalk.Collect(pwalk.Walk(dir,
		pwalk.Sort[struct{}, struct{}](true),
		pwalk.MaxDepth[struct{}, struct{}](1),
	))
	if err != nil {
		t.Fatal(err)
	}
	got := paths(t, dir, entries)
	want := []string{".", "a"}
	if !equal(got, want) {
		t.Fatalf("got %v, want %v", got, want)
	}
}

func TestMinDepthSuppressesRoot(t *testing.T) {
	dir, cleanup := testtools.CreateFiles(t, []testtools.FileSpec{
		{Path: "a.txt", Content: "x"},
	})
	defer cleanup()

	entries, err := pwalk.Collect(pwalk.Walk(dir,
		pwalk.Sort[struct{}, struct{}](true),
		pwalk.MinDepth[struct{}, struct{}](1),
	))
	if err != nil {
		t.Fatal(err)
	}
	got := paths(t, dir, entries)
	want := []string{"a.txt"}
	if !equal(got, want) {
		t.Fatalf("got %v, want %v", got, want)
	}
}

func TestProcessReadDirPrunesSubtree(t *testing.T) {
	dir, cleanup := testtools.CreateFiles(t, []testtools.FileSpec{
		{Path: "keep/x.txt", Content: "x"},
		{Path: "skip/y.txt", Content: "y"},
	})
	defer cleanup()

	prune := func(depth *int, dirPath string, state *struct{}, batch *pwalk.ReadDirBatch[struct{}, struct{}]) {
		for i := range batch.Results {
			res := &batch.Results[i]
			if res.Err == nil && res.Entry.FileName == "skip" {
				res.Entry.ReadChildrenPath = ""
			}
		}
	}

	entries, err := pwalk.Collect(pwalk.Walk(dir,
		pwalk.Sort[struct{}, struct{}](true),
		pwalk.ProcessReadDir[struct{}, struct{}](prune),
	))
	if err != nil {
		t.Fatal(err)
	}
	got := paths(t, dir, entries)
	want := []string{".", "keep", "keep/x.txt", "skip"}
	if !equal(got, want) {
		t.Fatalf("got %v, want %v", got, want)
	}
}

// TestDeepNestingPreservesDepthFirstOrder builds a tree where a
// breadth-first traversal and a depth-first pre-order traversal visit
// the same set of entries in a different order, so a scheduler bug
// that reorders completions (while still yielding every entry) fails
// this test even though it would pass a set-equality check.
func TestDeepNestingPreservesDepthFirstOrder(t *testing.T) {
	dir, cleanup := testtools.CreateFiles(t, []testtools.FileSpec{
		{Path: "a/b/c.txt", Content: "x"},
		{Path: "a/d.txt", Content: "y"},
		{Path: "e.txt", Content: "z"},
	})
	defer cleanup()

	entries, err := pwalk.Collect(pwalk.Walk(dir, pwalk.Sort[struct{}, struct{}](true)))
	if err != nil {
		t.Fatal(err)
	}
	pwalktest.Snapshot(t, dir, entries, []string{".", "a", "a/b", "a/b/c.txt", "a/d.txt", "e.txt"})
}

func TestSymlinkLoopDetected(t *testing.T) {
	dir, cleanup := testtools.CreateFiles(t, []testtools.FileSpec{
		{Path: "a/", Content: ""},
	})
	defer cleanup()

	loopPath := filepath.Join(dir, "a", "loop")
	if err := symlinkLoop(dir, loopPath); err != nil {
		t.Fatal(err)
	}

	s := pwalk.Walk(dir, pwalk.FollowLinks[struct{}, struct{}](true))
	var loopErr *pwalk.LoopError
	var lastErr error
	for {
		_, err, ok := s.Next()
		if !ok {
			break
		}
		if err != nil {
			lastErr = err
			if errors.As(err, &loopErr) {
				return
			}
		}
	}
	t.Fatalf("expected a LoopError somewhere in the stream, last error seen: %s", pwalktest.Error(lastErr))
}

// equal reports whether a and b hold the same strings in the same
// order. It deliberately does not sort either side: the depth-first
// pre-order guarantee is exactly what callers are asserting, and a
// bug that reorders entries while preserving the set must fail here.
func equal(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
