package logging_test

import (
	"errors"
	"testing"

	"github.com/bryanCE/dnsgen/internal/logging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func TestNew_Levels(t *testing.T) {
	logger, err := logging.New(false)
	require.NoError(t, err)
	assert.False(t, logger.Core().Enabled(zap.DebugLevel))
	assert.True(t, logger.Core().Enabled(zap.InfoLevel))

	logger, err = logging.New(true)
	require.NoError(t, err)
	assert.True(t, logger.Core().Enabled(zap.DebugLevel))
}

func TestLogError_AttachesError(t *testing.T) {
	core, logs := observer.New(zap.InfoLevel)
	logger := zap.New(core)

	logging.LogError(logger, errors.New("disk full"), "failed to write records", zap.String("path", "out.json"))

	require.Equal(t, 1, logs.Len())
	entry := logs.All()[0]
	assert.Equal(t, "failed to write records", entry.Message)
	assert.Equal(t, "disk full", entry.ContextMap()["error"])
	assert.Equal(t, "out.json", entry.ContextMap()["path"])
}

func TestLogError_NilLogger(t *testing.T) {
	assert.NotPanics(t, func() {
		logging.LogError(nil, errors.New("boom"), "ignored")
	})
}
