package main

import (
	"testing"
	"time"
)

func TestResolveOptionsConfigFillsUnsetFlags(t *testing.T) {
	sortVal := true
	workers := 4
	cfg := &fileConfig{
		Sort:    &sortVal,
		Workers: &workers,
		Exclude: []string{"**/vendor/**"},
	}
	// Flags at their default values, as if the user never set them.
	got := resolveOptions(cfg, false, true, false, 0, 0, 0, time.Second, nil)

	if !got.sort {
		t.Errorf("sort = false, want true from config")
	}
	if got.workers != 4 {
		t.Errorf("workers = %d, want 4 from config", got.workers)
	}
	if len(got.exclude) != 1 || got.exclude[0] != "**/vendor/**" {
		t.Errorf("exclude = %v, want config's pattern", got.exclude)
	}
}

func TestResolveOptionsFlagsWinOverConfig(t *testing.T) {
	sortVal := false
	cfg := &fileConfig{Sort: &sortVal}
	got := resolveOptions(cfg, true, true, false, 0, 0, 0, time.Second, nil)
	if !got.sort {
		t.Errorf("sort = false, want true: an explicitly set flag must win over config")
	}
}

func TestMatchesAny(t *testing.T) {
	patterns := []string{"**/*.tmp", "build/**"}
	cases := map[string]bool{
		"a/b/c.tmp":    true,
		"build/out.go": true,
		"src/main.go":  false,
	}
	for path, want := range cases {
		if got := matchesAny(patterns, path); got != want {
			t.Errorf("matchesAny(%v, %q) = %v, want %v", patterns, path, got, want)
		}
	}
}
