package log

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"talentops/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func TestParseLevel(t *testing.T) {
	testCases := []struct {
		input string
		want  zapcore.Level
	}{
		{input: "debug", want: zap.DebugLevel},
		{input: " WARN ", want: zap.WarnLevel},
		{input: "error", want: zap.ErrorLevel},
		{input: "", want: zap.InfoLevel},
		{input: "verbose", want: zap.InfoLevel},
	}
	for _, tc := range testCases {
		t.Run(tc.input, func(t *testing.T) {
			assert.Equal(t, tc.want, ParseLevel(tc.input))
		})
	}
}

func TestNewLogger_SplitsStreams(t *testing.T) {
	conf := &config.Configuration{}
	conf.App.Name = "talentops"
	conf.App.Env = "test"
	conf.Log.Level = "info"

	var stdout, stderr bytes.Buffer
	logger := newLogger(conf, &stdout, &stderr)
	logger.Debug("hidden")
	logger.Info("snapshot captured", zap.Int("written", 3))
	logger.Warn("policy fallback")
	require.NoError(t, logger.Sync())

	lines := strings.Split(strings.TrimSpace(stdout.String()), "\n")
	require.Len(t, lines, 2)
	var entry map[string]any
	require.NoError(t, json.Unmarshal([]byte(lines[1]), &entry))
	assert.Equal(t, "snapshot captured", entry["message"])
	assert.Equal(t, "info", entry["level"])
	assert.Equal(t, "talentops", entry["app"])
	assert.EqualValues(t, 3, entry["written"])

	assert.Contains(t, stderr.String(), `"message":"policy fallback"`)
	assert.NotContains(t, stdout.String(), "hidden")
}

func TestNewLogger_Console(t *testing.T) {
	conf := &config.Configuration{}
	conf.Log.Format = "Console"

	var stdout bytes.Buffer
	logger := newLogger(conf, &stdout, &bytes.Buffer{})
	logger.Info("console line")

	assert.Contains(t, stdout.String(), "console line")
	assert.False(t, json.Valid([]byte(strings.Split(stdout.String(), "\n")[0])))
}
