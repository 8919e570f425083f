package config

import (
	"fmt"
	"strings"
	"time"
)

// Intensity hints accepted by the backend analyser.
var intensities = []string{"soft", "medium", "hard"}

// Config holds runtime settings for the moodiary terminal client.
//
// Units: RequestTimeout and AnalyzeDelay are time.Durations; the flags take
// them in seconds and milliseconds respectively.
type Config struct {
	APIBaseURL       string
	StatePath        string
	RequestTimeout   time.Duration
	AnalyzeDelay     time.Duration
	AnalyzeMinLength int
	AutoAnalyze      bool
	RemoteAnalysis   bool
	Intensity        string
	LogLevel         string
	LogFormat        string
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.APIBaseURL = "http://localhost:8000/api"
	c.StatePath = "moodiary.db"
	c.RequestTimeout = 10 * time.Second
	c.AnalyzeDelay = time.Second
	c.AnalyzeMinLength = 20
	c.AutoAnalyze = true
	c.RemoteAnalysis = false
	c.Intensity = "medium"
	c.LogLevel = "info"
	c.LogFormat = "text"
}

// Validate reports the first setting that cannot be used as is.
func (c *Config) Validate() error {
	if strings.TrimSpace(c.APIBaseURL) == "" {
		return fmt.Errorf("API base URL is empty")
	}
	if strings.TrimSpace(c.StatePath) == "" {
		return fmt.Errorf("state path is empty")
	}
	if c.RequestTimeout < 0 {
		return fmt.Errorf("request timeout must not be negative, got %s", c.RequestTimeout)
	}
	if c.AnalyzeDelay < 0 {
		return fmt.Errorf("analyze delay must not be negative, got %s", c.AnalyzeDelay)
	}
	if c.AnalyzeMinLength < 0 {
		return fmt.Errorf("analyze min length must not be negative, got %d", c.AnalyzeMinLength)
	}
	for _, i := range intensities {
		if c.Intensity == i {
			return nil
		}
	}
	return fmt.Errorf("intensity must be one of %s, got %q", strings.Join(intensities, ", "), c.Intensity)
}

// LoadConfig constructs a Config, applies defaults, then overlays values from
// the config file (if present) and command-line flags (if present). Later
// sources take precedence over earlier ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseFile(cfg)
	parseFlags(cfg)
	return cfg
}
