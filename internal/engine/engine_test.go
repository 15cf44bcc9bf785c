package engine

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/perchfs/perch/internal/infrastructure/config"
	"github.com/perchfs/perch/internal/infrastructure/logging"
)

func newTestEngine(t *testing.T) *Engine {
	t.Helper()
	return New(config.EngineConfig{
		MaxInFlight:     4,
		ListenerTimeout: 100 * time.Millisecond,
		CopyBufferSize:  32 * 1024,
	}, logging.NewNop())
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}

func readFile(t *testing.T, path string) string {
	t.Helper()
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	return string(data)
}
