package logger

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewDefaultLevelIsWarn(t *testing.T) {
	var buf bytes.Buffer
	log := New(&buf, Config{})
	log.Info("quiet")
	log.Debug("quieter")
	assert.Empty(t, buf.String())

	log.Warn("loud", "k", "v")
	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "WARN", entry["level"])
	assert.Equal(t, "loud", entry["msg"])
	assert.Equal(t, "v", entry["k"])
	assert.NotContains(t, entry, "source")

	ts, ok := entry["time"].(string)
	require.True(t, ok)
	assert.True(t, strings.HasSuffix(ts, "Z"), ts)
	_, err := time.Parse(time.RFC3339Nano, ts)
	assert.NoError(t, err)
}

func TestNewDebug(t *testing.T) {
	var buf bytes.Buffer
	New(&buf, Config{Debug: true}).Debug("trace")
	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "DEBUG", entry["level"])
	assert.Contains(t, entry, "source")
}
