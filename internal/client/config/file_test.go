package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTemp(t *testing.T, dir, name, body string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func Test_parseFile_SourcesAndPrecedence(t *testing.T) {
	origArgs := os.Args
	t.Cleanup(func() { os.Args = origArgs })

	dir := t.TempDir()

	t.Run("loads JSON", func(t *testing.T) {
		path := writeTemp(t, dir, "cfg.json", `{
			"api_base_url": "https://diary.example/api",
			"request_timeout": "5s",
			"analyze_delay": 500000000,
			"remote_analysis": true
		}`)
		os.Args = []string{"moodiary", "-config", path}

		cfg := &Config{}
		cfg.LoadDefaults()
		parseFile(cfg)

		assert.Equal(t, "https://diary.example/api", cfg.APIBaseURL)
		assert.Equal(t, 5*time.Second, cfg.RequestTimeout)
		assert.Equal(t, 500*time.Millisecond, cfg.AnalyzeDelay)
		assert.True(t, cfg.RemoteAnalysis)
		assert.Equal(t, "moodiary.db", cfg.StatePath, "absent keys keep defaults")
	})

	t.Run("loads YAML", func(t *testing.T) {
		path := writeTemp(t, dir, "cfg.yaml", "state_path: /var/lib/moodiary.db\nauto_analyze: false\nanalyze_min_length: 0\nintensity: soft\nlog_format: zap\n")
		os.Args = []string{"moodiary", "-c", path}

		cfg := &Config{}
		cfg.LoadDefaults()
		parseFile(cfg)

		assert.Equal(t, "/var/lib/moodiary.db", cfg.StatePath)
		assert.False(t, cfg.AutoAnalyze)
		assert.Equal(t, 0, cfg.AnalyzeMinLength)
		assert.Equal(t, "soft", cfg.Intensity)
		assert.Equal(t, "zap", cfg.LogFormat)
		assert.Equal(t, time.Second, cfg.AnalyzeDelay)
	})

	t.Run("no flag leaves config alone", func(t *testing.T) {
		os.Args = []string{"moodiary"}

		cfg := &Config{APIBaseURL: "http://keep", AnalyzeDelay: 42 * time.Second}
		parseFile(cfg)

		assert.Equal(t, "http://keep", cfg.APIBaseURL)
		assert.Equal(t, 42*time.Second, cfg.AnalyzeDelay)
	})

	t.Run("flags override file", func(t *testing.T) {
		path := writeTemp(t, dir, "override.yml", "api_base_url: http://from-file/api\n")
		os.Args = []string{"moodiary", "-c", path, "-a", "http://from-flag/api"}

		cfg := LoadConfig()
		assert.Equal(t, "http://from-flag/api", cfg.APIBaseURL)
	})

	t.Run("invalid JSON panics", func(t *testing.T) {
		bad := writeTemp(t, dir, "bad.json", `{ this is not valid json`)
		os.Args = []string{"moodiary", "-config", bad}

		require.Panics(t, func() { parseFile(&Config{}) })
	})

	t.Run("invalid duration panics", func(t *testing.T) {
		bad := writeTemp(t, dir, "bad.yaml", "analyze_delay: soon\n")
		os.Args = []string{"moodiary", "-c", bad}

		require.Panics(t, func() { parseFile(&Config{}) })
	})

	t.Run("missing file panics", func(t *testing.T) {
		os.Args = []string{"moodiary", "-c", filepath.Join(dir, "absent.json")}

		require.Panics(t, func() { parseFile(&Config{}) })
	})
}
