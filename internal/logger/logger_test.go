package logger

import (
	"bufio"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestNewWritesJSONLines(t *testing.T) {
	path := filepath.Join(t.TempDir(), "expert.log")

	log := New(Options{FilePath: path})
	log.Info("answer ready", zap.String("module", "answer"), zap.Int("tokens", 42))
	log.Debug("dropped at info level")
	require.NoError(t, log.Sync())

	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()

	var entries []map[string]any
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		var entry map[string]any
		require.NoError(t, json.Unmarshal(scanner.Bytes(), &entry))
		entries = append(entries, entry)
	}

	require.Len(t, entries, 1)
	assert.Equal(t, "INFO", entries[0]["level"])
	assert.Equal(t, "answer ready", entries[0]["message"])
	assert.Equal(t, "answer", entries[0]["module"])
	assert.EqualValues(t, 42, entries[0]["tokens"])
	assert.Contains(t, entries[0], "timestamp")
}

func TestNewWithoutOutputsIsNop(t *testing.T) {
	log := New(Options{})
	assert.NotPanics(t, func() {
		log.Info("nowhere")
	})
	assert.False(t, log.Core().Enabled(zap.ErrorLevel))
}
