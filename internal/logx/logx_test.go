package logx

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"editorscan/internal/paths"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		input string
		want  logrus.Level
	}{
		{"", logrus.InfoLevel},
		{"debug", logrus.DebugLevel},
		{"warn", logrus.WarnLevel},
		{"ERROR", logrus.ErrorLevel},
		{"chatty", logrus.InfoLevel},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, ParseLevel(tt.input), "ParseLevel(%q)", tt.input)
	}
}

func TestNewRespectsLevel(t *testing.T) {
	var buf bytes.Buffer
	logger := New(&buf, "warn")

	logger.Info("hidden")
	logger.Warn("shown")

	out := buf.String()
	assert.NotContains(t, out, "hidden")
	assert.Contains(t, out, "shown")
}

func TestNewFileCreatesLogsDir(t *testing.T) {
	root := t.TempDir()
	p := paths.AppPaths{LogsDir: filepath.Join(root, "logs")}

	logger, closer, err := NewFile(p, "debug")
	require.NoError(t, err)
	logger.Debug("probe started")
	require.NoError(t, closer.Close())

	entries, err := os.ReadDir(p.LogsDir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, ".log", filepath.Ext(entries[0].Name()))

	data, err := os.ReadFile(filepath.Join(p.LogsDir, entries[0].Name()))
	require.NoError(t, err)
	assert.Contains(t, string(data), "probe started")
}

func TestDiscard(t *testing.T) {
	logger := Discard()
	logger.Error("nothing")
	assert.Equal(t, logrus.InfoLevel, logger.GetLevel())
}
