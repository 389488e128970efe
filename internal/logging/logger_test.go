package logging

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func TestInit_WritesRotatingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "dispatch.log")

	require.NoError(t, Init(Options{AppEnv: "production", File: path, MaxSizeMB: 1}))
	Info("flight validated", "flight_number", "TK1591")
	_ = Close()

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"flight_number":"TK1591"`)
}

func TestHelpers_UseInjectedLogger(t *testing.T) {
	core, logs := observer.New(zap.DebugLevel)
	SetLogger(zap.New(core).Sugar())
	t.Cleanup(func() { SetLogger(nil) })

	Warn("lookup table unavailable", "table", "taxi_times")
	WithRequest("req-1", "/api/v1/flights").Infow("handled")

	entries := logs.All()
	require.Len(t, entries, 2)
	assert.Equal(t, "lookup table unavailable", entries[0].Message)
	assert.Equal(t, "taxi_times", entries[0].ContextMap()["table"])
	assert.Equal(t, "req-1", entries[1].ContextMap()["request_id"])
}

func TestGetLogger_FallbackWithoutInit(t *testing.T) {
	SetLogger(nil)
	assert.NotNil(t, GetLogger())
}
