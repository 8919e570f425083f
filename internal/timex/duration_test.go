package timex

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestDuration_JSON(t *testing.T) {
	var cfg struct {
		A Duration `json:"a"`
		B Duration `json:"b"`
	}
	require.NoError(t, json.Unmarshal([]byte(`{"a":"750ms","b":2000000000}`), &cfg))
	assert.Equal(t, 750*time.Millisecond, cfg.A.Duration)
	assert.Equal(t, 2*time.Second, cfg.B.Duration)

	out, err := json.Marshal(Duration{Duration: time.Second})
	require.NoError(t, err)
	assert.JSONEq(t, `"1s"`, string(out))
}

func TestDuration_YAML(t *testing.T) {
	var cfg struct {
		A Duration `yaml:"a"`
		B Duration `yaml:"b"`
	}
	require.NoError(t, yaml.Unmarshal([]byte("a: 1m\nb: 5\n"), &cfg))
	assert.Equal(t, time.Minute, cfg.A.Duration)
	assert.Equal(t, 5*time.Nanosecond, cfg.B.Duration)
}

func TestDuration_Invalid(t *testing.T) {
	var d Duration
	require.Error(t, json.Unmarshal([]byte(`"soon"`), &d))
	require.Error(t, json.Unmarshal([]byte(`true`), &d))
	require.Error(t, yaml.Unmarshal([]byte(`[1, 2]`), &d))
}
