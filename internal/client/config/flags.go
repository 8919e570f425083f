package config

import (
	"flag"
	"os"
	"time"

	"github.com/dmitrijs2005/moodiary/internal/flagx"
)

// parseFlags populates Config from command-line flags.
//
//	-a string   API base URL
//	-s string   path of the local state database
//	-t int      request timeout (seconds)
//	-d int      auto-analysis debounce delay (milliseconds)
//	-m int      minimum content length before auto-analysis runs
//	-r          ask the backend analyser instead of the local classifier
//	-i string   analyser intensity: soft, medium or hard
//	-l string   log level
//	-f string   log format: text, json or zap
//
// os.Args is filtered through flagx.FilterArgs so the config file flag does
// not reach this set.
func parseFlags(cfg *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{"-a", "-s", "-t", "-d", "-m", "-r", "-i", "-l", "-f"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&cfg.APIBaseURL, "a", cfg.APIBaseURL, "API base URL")
	fs.StringVar(&cfg.StatePath, "s", cfg.StatePath, "path of the local state database")
	timeout := fs.Int("t", int(cfg.RequestTimeout.Seconds()), "request timeout (in seconds)")
	delay := fs.Int("d", int(cfg.AnalyzeDelay.Milliseconds()), "auto-analysis delay (in milliseconds)")
	fs.IntVar(&cfg.AnalyzeMinLength, "m", cfg.AnalyzeMinLength, "minimum content length for auto-analysis")
	fs.BoolVar(&cfg.RemoteAnalysis, "r", cfg.RemoteAnalysis, "use the backend emotion analyser")
	fs.StringVar(&cfg.Intensity, "i", cfg.Intensity, "analyser intensity (soft, medium, hard)")
	fs.StringVar(&cfg.LogLevel, "l", cfg.LogLevel, "log level")
	fs.StringVar(&cfg.LogFormat, "f", cfg.LogFormat, "log format (text, json, zap)")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}

	cfg.RequestTimeout = time.Duration(*timeout) * time.Second
	cfg.AnalyzeDelay = time.Duration(*delay) * time.Millisecond
}
