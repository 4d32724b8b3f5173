package logger

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/noah-isme/student-database/pkg/config"
)

func TestNewHonoursLevel(t *testing.T) {
	l, err := New(&config.Config{Env: config.EnvProduction, Log: config.LogConfig{Level: "warn", Format: "json"}})
	require.NoError(t, err)
	assert.False(t, l.Core().Enabled(zapcore.InfoLevel))
	assert.True(t, l.Core().Enabled(zapcore.WarnLevel))
}

func TestNewFallsBackToInfo(t *testing.T) {
	l, err := New(&config.Config{Env: config.EnvDevelopment, Log: config.LogConfig{Level: "loud", Format: "console"}})
	require.NoError(t, err)
	assert.False(t, l.Core().Enabled(zapcore.DebugLevel))
	assert.True(t, l.Core().Enabled(zapcore.InfoLevel))
}

func TestConfigTagsEntriesWithApp(t *testing.T) {
	zapCfg := zapConfig(&config.Config{Env: config.EnvDevelopment, Log: config.LogConfig{Format: "json"}})
	assert.Equal(t, AppName, zapCfg.InitialFields["app"])
	assert.Equal(t, config.EnvDevelopment, zapCfg.InitialFields["env"])
	assert.Equal(t, "json", zapCfg.Encoding)
	assert.Equal(t, "timestamp", zapCfg.EncoderConfig.TimeKey)
}

func TestSyncNopLogger(t *testing.T) {
	assert.NoError(t, Sync(zap.NewNop()))
}
