package logger

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	cases := map[string]slog.Level{
		"debug":   slog.LevelDebug,
		"INFO":    slog.LevelInfo,
		"warn":    slog.LevelWarn,
		"warning": slog.LevelWarn,
		"error":   slog.LevelError,
		"bogus":   slog.LevelInfo,
	}
	for in, want := range cases {
		assert.Equal(t, want, ParseLevel(in), in)
	}
}

func TestInit_JSONWithComponent(t *testing.T) {
	prev := slog.Default()
	t.Cleanup(func() { slog.SetDefault(prev) })

	var buf bytes.Buffer
	Init(Config{Level: slog.LevelInfo, Format: "json", Output: &buf})
	ForComponent("detect").Info("ran", "issues", 3)
	ForComponent("detect").Debug("hidden")

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 1)
	var rec map[string]any
	require.NoError(t, json.Unmarshal([]byte(lines[0]), &rec))
	assert.Equal(t, "detect", rec["component"])
	assert.Equal(t, "ran", rec["msg"])
	assert.Equal(t, float64(3), rec["issues"])
}

func TestInit_Text(t *testing.T) {
	prev := slog.Default()
	t.Cleanup(func() { slog.SetDefault(prev) })

	var buf bytes.Buffer
	Init(Config{Level: slog.LevelDebug, Format: "text", Output: &buf})
	ForComponent("watch").Debug("tick")
	assert.Contains(t, buf.String(), "component=watch")
	assert.Contains(t, buf.String(), "msg=tick")
}

func TestInit_ZeroFieldsUseDefaults(t *testing.T) {
	prev := slog.Default()
	t.Cleanup(func() { slog.SetDefault(prev) })

	var buf bytes.Buffer
	Init(Config{Output: &buf})
	ForComponent("rpc").Info("up")
	ForComponent("rpc").Debug("hidden")
	assert.Equal(t, slog.LevelInfo, DefaultConfig().Level)
	assert.Contains(t, buf.String(), "msg=up")
	assert.NotContains(t, buf.String(), "hidden")
}
