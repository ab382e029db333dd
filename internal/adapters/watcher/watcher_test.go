package watcher_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/cmkit/cmkit/internal/adapters/watcher"
	"github.com/cmkit/cmkit/internal/core/domain"
	"github.com/cmkit/cmkit/internal/core/ports"
	"github.com/cmkit/cmkit/internal/core/ports/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

const testWindow = 5 * time.Millisecond

func newTestWatcher(t *testing.T) *watcher.Watcher {
	t.Helper()
	ctrl := gomock.NewController(t)
	log := mocks.NewMockLogger(ctrl)
	log.EXPECT().Info(gomock.Any()).AnyTimes()
	log.EXPECT().Warn(gomock.Any()).AnyTimes()
	log.EXPECT().Error(gomock.Any()).AnyTimes()
	return watcher.NewWatcher(log).WithWindow(testWindow)
}

func waitForEvent(t *testing.T, sub ports.Subscription) {
	t.Helper()
	select {
	case _, ok := <-sub.Events():
		require.True(t, ok, "subscription closed before event arrived")
	case <-time.After(5 * time.Second):
		t.Fatal("timed out waiting for change notification")
	}
}

func TestWatcher_NotifiesOnContentChange(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, domain.CacheFileName)
	require.NoError(t, os.WriteFile(path, []byte("A:STRING=1\n"), 0o644))

	sub, err := newTestWatcher(t).Watch(path)
	require.NoError(t, err)
	t.Cleanup(func() { require.NoError(t, sub.Release()) })

	require.NoError(t, os.WriteFile(path, []byte("A:STRING=2\n"), 0o644))
	waitForEvent(t, sub)
}

func TestWatcher_NotifiesOnCreate(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, domain.CacheFileName)

	// The watched file does not exist yet; creation counts as a change.
	sub, err := newTestWatcher(t).Watch(path)
	require.NoError(t, err)
	t.Cleanup(func() { require.NoError(t, sub.Release()) })

	require.NoError(t, os.WriteFile(path, []byte("A:STRING=1\n"), 0o644))
	waitForEvent(t, sub)
}

func TestWatcher_NotifiesOnAtomicRename(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, domain.CacheFileName)
	require.NoError(t, os.WriteFile(path, []byte("A:STRING=1\n"), 0o644))

	sub, err := newTestWatcher(t).Watch(path)
	require.NoError(t, err)
	t.Cleanup(func() { require.NoError(t, sub.Release()) })

	// Write-to-temp-then-rename, the way generators replace cache files.
	tmp := filepath.Join(dir, "cache.tmp")
	require.NoError(t, os.WriteFile(tmp, []byte("A:STRING=2\n"), 0o644))
	require.NoError(t, os.Rename(tmp, path))
	waitForEvent(t, sub)
}

func TestWatcher_IgnoresOtherFiles(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, domain.CacheFileName)
	require.NoError(t, os.WriteFile(path, []byte("A:STRING=1\n"), 0o644))

	sub, err := newTestWatcher(t).Watch(path)
	require.NoError(t, err)
	t.Cleanup(func() { require.NoError(t, sub.Release()) })

	require.NoError(t, os.WriteFile(filepath.Join(dir, "other.txt"), []byte("noise"), 0o644))

	select {
	case <-sub.Events():
		t.Fatal("unrelated file produced a notification")
	case <-time.After(100 * time.Millisecond):
	}
}

func TestWatcher_SuppressesNoOpRewrite(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, domain.CacheFileName)
	content := []byte("A:STRING=1\n")
	require.NoError(t, os.WriteFile(path, content, 0o644))

	sub, err := newTestWatcher(t).Watch(path)
	require.NoError(t, err)
	t.Cleanup(func() { require.NoError(t, sub.Release()) })

	// Same bytes rewritten: fingerprint unchanged, no notification.
	require.NoError(t, os.WriteFile(path, content, 0o644))

	select {
	case <-sub.Events():
		t.Fatal("identical rewrite produced a notification")
	case <-time.After(100 * time.Millisecond):
	}
}

func TestWatcher_CreatesMissingDirectory(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "not-yet-configured", "build")
	path := filepath.Join(dir, domain.CacheFileName)

	sub, err := newTestWatcher(t).Watch(path)
	require.NoError(t, err)
	t.Cleanup(func() { require.NoError(t, sub.Release()) })

	assert.DirExists(t, dir)
}

func TestWatcher_ReleaseClosesEventsAndIsIdempotent(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, domain.CacheFileName)

	sub, err := newTestWatcher(t).Watch(path)
	require.NoError(t, err)

	require.NoError(t, sub.Release())
	require.NoError(t, sub.Release())

	_, ok := <-sub.Events()
	assert.False(t, ok, "events channel should be closed after release")
}
