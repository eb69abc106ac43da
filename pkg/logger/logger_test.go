package logger

import (
	"os"
	"path/filepath"
	"testing"

	"tunevideo/pkg/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestInitLoggerWritesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "app.log")
	l := InitLogger(&config.LogConfig{Path: path, Level: "debug", MaxSize: 1})
	defer zap.ReplaceGlobals(zap.NewNop())

	zap.S().Infof("training submitted: %s", "surfer")
	_ = l.Sync()

	b, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(b), "training submitted: surfer")
}

func TestInitLoggerFallsBackToInfo(t *testing.T) {
	l := InitLogger(&config.LogConfig{Level: "verbose"})
	defer zap.ReplaceGlobals(zap.NewNop())
	assert.False(t, l.Core().Enabled(zap.DebugLevel))
	assert.True(t, l.Core().Enabled(zap.InfoLevel))
}
