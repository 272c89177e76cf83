package main

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v2"
)

// fileConfig mirrors the CLI flags so a -config file can set defaults
// that flags then override. Pointer fields distinguish "absent from
// the file" from "explicitly false/zero".
type fileConfig struct {
	Sort        *bool    `toml:"sort" yaml:"sort"`
	SkipHidden  *bool    `toml:"skip_hidden" yaml:"skip_hidden"`
	FollowLinks *bool    `toml:"follow_links" yaml:"follow_links"`
	MinDepth    *int     `toml:"min_depth" yaml:"min_depth"`
	MaxDepth    *int     `toml:"max_depth" yaml:"max_depth"`
	Workers     *int     `toml:"workers" yaml:"workers"`
	BusyTimeout *string  `toml:"busy_timeout" yaml:"busy_timeout"`
	Exclude     []string `toml:"exclude" yaml:"exclude"`
}

func loadConfig(path string) (*fileConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}
	cfg := &fileConfig{}
	if strings.HasSuffix(path, ".yaml") || strings.HasSuffix(path, ".yml") {
		err = yaml.Unmarshal(data, cfg)
	} else {
		_, err = toml.Decode(string(data), cfg)
	}
	if err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	return cfg, nil
}

// busyTimeoutOf parses the file config's busy_timeout string, falling
// back to def when absent or unparsable.
func busyTimeoutOf(cfg *fileConfig, def time.Duration) time.Duration {
	if cfg == nil || cfg.BusyTimeout == nil {
		return def
	}
	d, err := time.ParseDuration(*cfg.BusyTimeout)
	if err != nil {
		return def
	}
	return d
}
