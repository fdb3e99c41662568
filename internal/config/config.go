package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config is the fully resolved run configuration: defaults, then an
// optional YAML file, then flags, then scenario-level overrides.
type Config struct {
	ScenarioPath string `yaml:"scenario"`
	OutputVideo  string `yaml:"output"`

	Width          int     `yaml:"width"`
	Height         int     `yaml:"height"`
	FPS            int     `yaml:"fps"`
	TimeResolution float64 `yaml:"time_resolution"`
	TotalDuration  float64 `yaml:"total_duration"`

	VideoEncoder string `yaml:"video_encoder"`
	Quality      int    `yaml:"quality"`
	DPI          int    `yaml:"dpi"`
	Workers      int    `yaml:"workers"`

	NoVideo   bool   `yaml:"no_video"`
	ShowStats bool   `yaml:"show_stats"`
	LogLevel  string `yaml:"log_level"`

	BuildVersion string `yaml:"-"`
}

func Default() Config {
	return Config{
		Width:          1280,
		Height:         720,
		FPS:            24,
		TimeResolution: 0.02,
		DPI:            150,
		LogLevel:       "info",
	}
}

// ApplyFile overlays values from a YAML config file. Unknown keys are
// rejected so typos do not silently fall back to defaults.
func (c *Config) ApplyFile(path string) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	dec := yaml.NewDecoder(f)
	dec.KnownFields(true)
	if err := dec.Decode(c); err != nil {
		return fmt.Errorf("parse config %s: %w", path, err)
	}
	return nil
}
