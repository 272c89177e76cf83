package main

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	gotoml "github.com/pelletier/go-toml"
)

// Report is the serializable summary of one walk, written by -report
// and consumed by -diff.
type Report struct {
	Root    string        `json:"root" toml:"root"`
	Entries []ReportEntry `json:"entries" toml:"entries"`
	Errors  []string      `json:"errors,omitempty" toml:"errors,omitempty"`
}

// ReportEntry is one surviving (non-error) entry from a walk.
type ReportEntry struct {
	Path  string `json:"path" toml:"path"`
	Depth int    `json:"depth" toml:"depth"`
	Type  string `json:"type" toml:"type"`
}

func formatFromPath(path, explicit string) string {
	if explicit != "" {
		return explicit
	}
	if strings.HasSuffix(path, ".toml") {
		return "toml"
	}
	return "json"
}

func writeReport(path string, format string, report *Report) error {
	var data []byte
	var err error
	switch formatFromPath(path, format) {
	case "toml":
		data, err = gotoml.Marshal(*report)
	default:
		data, err = json.MarshalIndent(report, "", "  ")
	}
	if err != nil {
		return fmt.Errorf("marshal report: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write report %s: %w", path, err)
	}
	return nil
}

func readReport(path string) (*Report, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read report %s: %w", path, err)
	}
	report := &Report{}
	if strings.HasSuffix(path, ".toml") {
		err = gotoml.Unmarshal(data, report)
	} else {
		err = json.Unmarshal(data, report)
	}
	if err != nil {
		return nil, fmt.Errorf("parse report %s: %w", path, err)
	}
	return report, nil
}
