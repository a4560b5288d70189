// Package config loads meshkit settings from a JSON file and merges CLI
// overrides.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// Defaults applied by Resolve.
const (
	DefaultMeshCells   = 64
	DefaultMaxLevels   = 5
	DefaultEvalTimeout = "5s"
)

// Config holds all configurable settings.
type Config struct {
	// Meshing
	MeshCells int `json:"mesh_cells"` // marching cubes resolution
	MaxLevels int `json:"max_levels"` // subdivision cap for upsample

	// Evaluation
	EvalTimeout string `json:"eval_timeout"` // Go duration string

	// Output path for the JSON result; empty writes to stdout.
	Output string `json:"output"`

	timeout time.Duration
}

// Flags holds CLI flag values that override config file settings.
type Flags struct {
	MeshCells   int
	MaxLevels   int
	EvalTimeout string
	Output      string
}

// Load reads a JSON config file and returns Config.
// Fields not set in the file keep their zero values.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("config: read %s: %w", path, err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("config: parse %s: %w", path, err)
	}

	return cfg, nil
}

// Resolve applies CLI overrides, then fills empty fields with defaults.
// CLI flags take priority when non-zero/non-empty.
func (c *Config) Resolve(flags Flags) error {
	if flags.MeshCells > 0 {
		c.MeshCells = flags.MeshCells
	}
	if flags.MaxLevels > 0 {
		c.MaxLevels = flags.MaxLevels
	}
	if flags.EvalTimeout != "" {
		c.EvalTimeout = flags.EvalTimeout
	}
	if flags.Output != "" {
		c.Output = flags.Output
	}

	if c.MeshCells <= 0 {
		c.MeshCells = DefaultMeshCells
	}
	if c.MaxLevels <= 0 {
		c.MaxLevels = DefaultMaxLevels
	}
	if c.EvalTimeout == "" {
		c.EvalTimeout = DefaultEvalTimeout
	}

	d, err := time.ParseDuration(c.EvalTimeout)
	if err != nil {
		return fmt.Errorf("config: eval_timeout: %w", err)
	}
	if d <= 0 {
		return fmt.Errorf("config: eval_timeout must be positive, got %s", d)
	}
	c.timeout = d
	return nil
}

// Timeout returns the parsed evaluation timeout. It is zero until Resolve
// succeeds.
func (c *Config) Timeout() time.Duration {
	return c.timeout
}
