package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"
)

// Config holds all configurable paths and conversion settings.
type Config struct {
	// Paths
	InputDir  string `json:"input_dir"`
	OutputDir string `json:"output_dir"`

	// Conversion settings
	Workers  int     `json:"workers"`
	TimeStep float32 `json:"time_step"`
	LogLevel string  `json:"log_level"`

	// Preview settings
	Preview       bool   `json:"preview"`
	PreviewFormat string `json:"preview_format"`
	PreviewWidth  int    `json:"preview_width"`
	PreviewHeight int    `json:"preview_height"`
	Supersample   int    `json:"supersample"`
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

// Resolve fills in any empty fields with defaults.
// CLI flags take priority when non-zero/non-empty.
func (c *Config) Resolve(flags Flags) {
	// CLI flags override config file
	if flags.InputDir != "" {
		c.InputDir = flags.InputDir
	}
	if flags.OutputDir != "" {
		c.OutputDir = flags.OutputDir
	}
	if flags.Workers > 0 {
		c.Workers = flags.Workers
	}
	if flags.Preview {
		c.Preview = true
	}
	if flags.PreviewFormat != "" {
		c.PreviewFormat = flags.PreviewFormat
	}
	if flags.LogLevel != "" {
		c.LogLevel = flags.LogLevel
	}

	if c.InputDir == "" {
		c.InputDir = "."
	}

	// Resolve output dir against input dir
	if c.OutputDir == "" {
		c.OutputDir = filepath.Join(c.InputDir, "tracks")
	} else if !filepath.IsAbs(c.OutputDir) {
		c.OutputDir = filepath.Join(c.InputDir, c.OutputDir)
	}

	if c.Workers <= 0 {
		c.Workers = runtime.NumCPU()
	}
	if c.TimeStep <= 0 {
		c.TimeStep = 1.0 / 60
	}
	if c.LogLevel == "" {
		c.LogLevel = "info"
	}

	c.PreviewFormat = strings.ToLower(c.PreviewFormat)
	if c.PreviewFormat != "tga" {
		c.PreviewFormat = "webp"
	}
	if c.PreviewWidth <= 0 {
		c.PreviewWidth = 512
	}
	if c.PreviewHeight <= 0 {
		c.PreviewHeight = 384
	}
	if c.Supersample <= 0 {
		c.Supersample = 2
	}
}

// Flags holds CLI flag values that override config file settings.
type Flags struct {
	InputDir      string
	OutputDir     string
	Workers       int
	Preview       bool
	PreviewFormat string
	LogLevel      string
}
