package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"

	"github.com/dmitrijs2005/moodiary/internal/flagx"
	"github.com/dmitrijs2005/moodiary/internal/timex"
	"gopkg.in/yaml.v3"
)

// FileConfig is the on-disk form of Config. Pointer fields tell an absent key
// apart from a zero value, so a file only overrides what it names.
type FileConfig struct {
	APIBaseURL       *string         `json:"api_base_url" yaml:"api_base_url"`
	StatePath        *string         `json:"state_path" yaml:"state_path"`
	RequestTimeout   *timex.Duration `json:"request_timeout" yaml:"request_timeout"`
	AnalyzeDelay     *timex.Duration `json:"analyze_delay" yaml:"analyze_delay"`
	AnalyzeMinLength *int            `json:"analyze_min_length" yaml:"analyze_min_length"`
	AutoAnalyze      *bool           `json:"auto_analyze" yaml:"auto_analyze"`
	RemoteAnalysis   *bool           `json:"remote_analysis" yaml:"remote_analysis"`
	Intensity        *string         `json:"intensity" yaml:"intensity"`
	LogLevel         *string         `json:"log_level" yaml:"log_level"`
	LogFormat        *string         `json:"log_format" yaml:"log_format"`
}

// parseFile overlays Config with the file named by -c or -config. Files ending
// in .yaml or .yml are read as YAML, anything else as JSON. It panics on read
// or decode errors.
func parseFile(cfg *Config) {
	path := flagx.ConfigFileFlag(os.Args[1:])
	if path == "" {
		return
	}

	data, err := os.ReadFile(path)
	if err != nil {
		panic(err)
	}

	var fc FileConfig
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, &fc)
	default:
		err = json.Unmarshal(data, &fc)
	}
	if err != nil {
		panic(err)
	}

	fc.apply(cfg)
}

func (fc *FileConfig) apply(cfg *Config) {
	if fc.APIBaseURL != nil {
		cfg.APIBaseURL = *fc.APIBaseURL
	}
	if fc.StatePath != nil {
		cfg.StatePath = *fc.StatePath
	}
	if fc.RequestTimeout != nil {
		cfg.RequestTimeout = fc.RequestTimeout.Duration
	}
	if fc.AnalyzeDelay != nil {
		cfg.AnalyzeDelay = fc.AnalyzeDelay.Duration
	}
	if fc.AnalyzeMinLength != nil {
		cfg.AnalyzeMinLength = *fc.AnalyzeMinLength
	}
	if fc.AutoAnalyze != nil {
		cfg.AutoAnalyze = *fc.AutoAnalyze
	}
	if fc.RemoteAnalysis != nil {
		cfg.RemoteAnalysis = *fc.RemoteAnalysis
	}
	if fc.Intensity != nil {
		cfg.Intensity = *fc.Intensity
	}
	if fc.LogLevel != nil {
		cfg.LogLevel = *fc.LogLevel
	}
	if fc.LogFormat != nil {
		cfg.LogFormat = *fc.LogFormat
	}
}
