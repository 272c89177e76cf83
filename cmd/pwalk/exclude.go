package main

import (
	"github.com/bmatcuk/doublestar/v4"

	"github.com/go-pwalk/pwalk"
)

// newExcludeFilter builds a ProcessReadDirFunc that drops every result
// whose path matches one of patterns, using a doublestar glob against
// the entry's own Path().
func newExcludeFilter(patterns []string) pwalk.ProcessReadDirFunc[struct{}, struct{}] {
	return func(depth *int, dirPath string, state *struct{}, batch *pwalk.ReadDirBatch[struct{}, struct{}]) {
		if len(patterns) == 0 {
			return
		}
		kept := batch.Results[:0]
		for _, res := range batch.Results {
			if res.Err != nil {
				kept = append(kept, res)
				continue
			}
			if matchesAny(patterns, res.Entry.Path()) {
				continue
			}
			kept = append(kept, res)
		}
		batch.Results = kept
	}
}

func matchesAny(patterns []string, path string) bool {
	for _, pat := range patterns {
		if ok, err := doublestar.Match(pat, path); err == nil && ok {
			return true
		}
	}
	return false
}
