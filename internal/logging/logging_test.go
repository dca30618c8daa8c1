package logging

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		name string
		want zapcore.Level
	}{
		{"DEBUG", zapcore.DebugLevel},
		{"INFO", zapcore.InfoLevel},
		{"WARNING", zapcore.WarnLevel},
		{"ERROR", zapcore.ErrorLevel},
		{"bogus", zapcore.InfoLevel},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, ParseLevel(tt.name), "ParseLevel(%q)", tt.name)
	}
}

func TestNew_WritesLogFile(t *testing.T) {
	root := t.TempDir()

	logger, closeLogger, err := New(root, zapcore.DebugLevel)
	require.NoError(t, err)

	logger.Info("hello from the scanner")
	closeLogger()

	raw, err := os.ReadFile(filepath.Join(root, "logs", "app.log"))
	require.NoError(t, err)

	assert.Contains(t, string(raw), "hello from the scanner")
}
