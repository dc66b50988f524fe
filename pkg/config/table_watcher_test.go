package config

import (
	"context"
	"os"
	"path/filepath"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTableWatcher_ReloadOnWrite(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "table.yaml")
	require.NoError(t, os.WriteFile(path, []byte(sampleTable), 0o644))

	var reloads atomic.Int32
	watcher, err := NewTableWatcher(path, func(string) error {
		reloads.Add(1)
		return nil
	}, nil)
	require.NoError(t, err)
	watcher.debounceTime = 50 * time.Millisecond

	require.NoError(t, watcher.Start(context.Background()))
	defer watcher.Stop()

	require.NoError(t, os.WriteFile(path, []byte(sampleTable), 0o644))

	assert.Eventually(t, func() bool {
		return reloads.Load() >= 1
	}, 3*time.Second, 25*time.Millisecond)
}

func TestTableWatcher_IgnoresOtherFiles(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "table.yaml")
	require.NoError(t, os.WriteFile(path, []byte(sampleTable), 0o644))

	var reloads atomic.Int32
	watcher, err := NewTableWatcher(path, func(string) error {
		reloads.Add(1)
		return nil
	}, nil)
	require.NoError(t, err)
	watcher.debounceTime = 50 * time.Millisecond

	require.NoError(t, watcher.Start(context.Background()))
	defer watcher.Stop()

	require.NoError(t, os.WriteFile(filepath.Join(dir, "other.yaml"), []byte("x"), 0o644))

	time.Sleep(300 * time.Millisecond)
	assert.Equal(t, int32(0), reloads.Load())
}

func TestTableWatcher_StartStop(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "table.yaml")
	require.NoError(t, os.WriteFile(path, []byte(sampleTable), 0o644))

	watcher, err := NewTableWatcher(path, func(string) error { return nil }, nil)
	require.NoError(t, err)

	assert.False(t, watcher.IsRunning())
	require.NoError(t, watcher.Start(context.Background()))
	assert.True(t, watcher.IsRunning())

	// Start is idempotent while running.
	require.NoError(t, watcher.Start(context.Background()))

	require.NoError(t, watcher.Stop())
	assert.False(t, watcher.IsRunning())

	// Stop is idempotent once stopped.
	require.NoError(t, watcher.Stop())
}
