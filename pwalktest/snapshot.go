// Package pwalktest holds test helpers shared across pwalk's own
// tests and any downstream caller's.
package pwalktest

import (
	"fmt"
	"path/filepath"
	"testing"

	"github.com/pmezard/go-difflib/difflib"

	"github.com/go-pwalk/pwalk"
)

// Snapshot asserts that a drained Stream's paths (relative to root,
// slash-separated) equal want IN ORDER, failing with a unified diff
// instead of a raw slice dump when they don't. Order matters here:
// the whole point of the walk is depth-first pre-order delivery, so
// this never sorts either side before comparing.
func Snapshot[C any, S any](t *testing.T, root string, entries []pwalk.DirEntry[C], want []string) {
	t.Helper()

	got := make([]string, len(entries))
	for i, e := range entries {
		rel, err := filepath.Rel(root, e.Path())
		if err != nil {
			t.Fatal(err)
		}
		got[i] = filepath.ToSlash(rel)
	}
	if equalStrings(got, want) {
		return
	}

	diff := difflib.UnifiedDiff{
		A:        want,
		B:        got,
		FromFile: "want",
		ToFile:   "got",
		Context:  3,
	}
	out, err := difflib.GetUnifiedDiffString(diff)
	if err != nil {
		t.Fatalf("snapshot mismatch (diff failed: %v)\nwant: %v\ngot:  %v", err, want, got)
	}
	t.Fatalf("snapshot mismatch:\n%s", out)
}

func equalStrings(a, b []string) bool {
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

// Error returns err.Error(), or "<nil>" if err is nil — a small helper
// for building ReadDirBatch/Result expectations in table-driven tests.
func Error(err error) string {
	if err == nil {
		return "<nil>"
	}
	return fmt.Sprint(err)
}
