package logger

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestZapLogger_Fields(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	l := NewFromZap(zap.New(core))

	l.Info("extractor", "saved questions", map[string]interface{}{"count": 3})
	l.Debug("server", "no details", nil)
	l.Error("server", "request failed", map[string]interface{}{"error": errors.New("boom")})

	entries := logs.All()
	require.Len(t, entries, 3)

	first := entries[0].ContextMap()
	assert.Equal(t, "saved questions", entries[0].Message)
	assert.Equal(t, "extractor", first["module"])
	assert.Equal(t, map[string]interface{}{"count": 3}, first["details"])

	assert.Equal(t, map[string]interface{}{}, entries[1].ContextMap()["details"])

	assert.Equal(t, zapcore.ErrorLevel, entries[2].Level)
	assert.Equal(t, "boom", entries[2].ContextMap()["error"])
}

func TestNewZapLogger_WritesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "app.log")
	l := NewZapLogger(path, true, false)

	l.Info("test", "hello file", map[string]interface{}{"k": "v"})
	l.Debug("test", "filtered out", nil)
	_ = l.Sync()

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	content := string(data)

	assert.Contains(t, content, `"message":"hello file"`)
	assert.Contains(t, content, `"module":"test"`)
	assert.False(t, strings.Contains(content, "filtered out"))
}
