/******************************************************************************\
* The Romualdo Language                                                        *
*                                                                              *
* Copyright 2020-2024 Leandro Motta Barros                                     *
* Licensed under the MIT license (see LICENSE.txt for details)                 *
\******************************************************************************/

// Package config loads the optional fls.toml run-configuration file that
// can sit next to a script, overriding the preflight profiler's thresholds
// without recompiling fls.
package config

import (
	"os"
	"path/filepath"
	"time"

	"github.com/pelletier/go-toml/v2"

	"github.com/flslang/fls/pkg/profiler"
)

// Preflight holds the overridable preflight profiler thresholds, all
// optional -- an absent or zero field leaves the profiler's built-in
// default untouched.
type Preflight struct {
	// TimeoutSeconds overrides profiler.Timeout.
	TimeoutSeconds float64 `toml:"timeout_seconds"`

	// LoopProgressCheckInterval overrides profiler.LoopProgressCheckInterval.
	LoopProgressCheckInterval int `toml:"loop_progress_check_interval"`

	// MaxRecursionDepth overrides profiler.MaxRecursionDepth.
	MaxRecursionDepth int `toml:"max_recursion_depth"`
}

// Config is the root of an fls.toml file.
type Config struct {
	Preflight Preflight `toml:"preflight"`
}

// LoadNextTo looks for an fls.toml next to scriptPath and parses it. Returns
// a zero-valued Config (applying no overrides) if the file doesn't exist or
// fails to load -- a missing or broken config file is not an error fls
// reports, since it's purely optional tuning.
func LoadNextTo(scriptPath string) *Config {
	dir := filepath.Dir(scriptPath)
	data, err := os.ReadFile(filepath.Join(dir, "fls.toml"))
	if err != nil {
		return &Config{}
	}

	var cfg Config
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return &Config{}
	}
	return &cfg
}

// Apply pushes any non-zero overrides in c into the profiler package's
// threshold vars.
func (c *Config) Apply() {
	if c.Preflight.TimeoutSeconds > 0 {
		profiler.Timeout = time.Duration(c.Preflight.TimeoutSeconds * float64(time.Second))
	}
	if c.Preflight.LoopProgressCheckInterval > 0 {
		profiler.LoopProgressCheckInterval = c.Preflight.LoopProgressCheckInterval
	}
	if c.Preflight.MaxRecursionDepth > 0 {
		profiler.MaxRecursionDepth = c.Preflight.MaxRecursionDepth
	}
}
