package knowledge

import (
	"context"
	"os"
	"path/filepath"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Jacquart08/ultimate-overlay/internal/logging"
)

func TestWatcherReloadsOnFileChange(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "knowledge.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"Python": [{"title": "old"}]}`), 0600))

	store := NewStore(path, logging.NewNop())
	require.NoError(t, store.Load())

	var refreshes atomic.Int32
	w := NewWatcher(logging.NewNop(), func() { refreshes.Add(1) })
	w.Add(path, store.Load)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		defer close(done)
		assert.NoError(t, w.Run(ctx))
	}()

	// Give the watcher time to register the directory.
	time.Sleep(100 * time.Millisecond)
	require.NoError(t, os.WriteFile(path, []byte(`{"Go": [{"title": "new"}]}`), 0600))

	deadline := time.Now().Add(2 * time.Second)
	for refreshes.Load() == 0 && time.Now().Before(deadline) {
		time.Sleep(10 * time.Millisecond)
	}
	require.Greater(t, refreshes.Load(), int32(0), "file change never triggered a reload")
	assert.Equal(t, []string{"Go"}, store.Keys())

	cancel()
	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("watcher did not stop on context cancel")
	}
}

func TestWatcherIgnoresUnrelatedFiles(t *testing.T) {
	dir := t.TempDir()
	watched := filepath.Join(dir, "knowledge.json")
	require.NoError(t, os.WriteFile(watched, []byte(`{}`), 0600))

	var reloads atomic.Int32
	w := NewWatcher(logging.NewNop(), nil)
	w.Add(watched, func() error {
		reloads.Add(1)
		return nil
	})

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		defer close(done)
		_ = w.Run(ctx)
	}()

	time.Sleep(100 * time.Millisecond)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "other.json"), []byte(`{}`), 0600))
	time.Sleep(200 * time.Millisecond)

	assert.Equal(t, int32(0), reloads.Load())

	cancel()
	<-done
}

func TestWatcherSkipsRefreshWhenReloadFails(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "knowledge.json")
	require.NoError(t, os.WriteFile(path, []byte(`{}`), 0600))

	var refreshes atomic.Int32
	w := NewWatcher(logging.NewNop(), func() { refreshes.Add(1) })
	w.Add(path, func() error { return os.ErrInvalid })

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		defer close(done)
		_ = w.Run(ctx)
	}()

	time.Sleep(100 * time.Millisecond)
	require.NoError(t, os.WriteFile(path, []byte(`{"a": []}`), 0600))
	time.Sleep(200 * time.Millisecond)

	assert.Equal(t, int32(0), refreshes.Load())

	cancel()
	<-done
}
