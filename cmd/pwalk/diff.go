package main

import (
	"fmt"
	"sort"

	"github.com/pmezard/go-difflib/difflib"
)

// diffReports renders a unified diff between two saved reports' path
// listings, the way a "did this tree change" check would read it.
func diffReports(oldReport, newReport *Report) (string, error) {
	diff := difflib.UnifiedDiff{
		A:        reportLines(oldReport),
		B:        reportLines(newReport),
		FromFile: oldReport.Root,
		ToFile:   newReport.Root,
		Context:  3,
	}
	return difflib.GetUnifiedDiffString(diff)
}

func reportLines(r *Report) []string {
	lines := make([]string, 0, len(r.Entries))
	for _, e := range r.Entries {
		lines = append(lines, fmt.Sprintf("%d\t%s\t%s", e.Depth, e.Type, e.Path))
	}
	sort.Strings(lines)
	return lines
}
