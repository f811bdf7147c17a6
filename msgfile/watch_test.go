package msgfile

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestWatch_ReportsWrites(t *testing.T) {
	path := writeFile(t, "messages.yaml", "generic: first\n")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	changes, err := Watch(ctx, path)
	require.NoError(t, err)

	require.NoError(t, os.WriteFile(path, []byte("generic: second\n"), 0644))

	select {
	case _, ok := <-changes:
		require.True(t, ok, "channel closed before reporting a change")
	case <-time.After(5 * time.Second):
		t.Fatal("no change reported after writing the file")
	}

	data, err := New(path, Options{}).Load(context.Background())
	require.NoError(t, err)
	require.Equal(t, "second", data["generic"])
}

func TestWatch_IgnoresSiblings(t *testing.T) {
	path := writeFile(t, "messages.yaml", "generic: first\n")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	changes, err := Watch(ctx, path)
	require.NoError(t, err)

	sibling := filepath.Join(filepath.Dir(path), "other.yaml")
	require.NoError(t, os.WriteFile(sibling, []byte("x: y\n"), 0644))

	select {
	case <-changes:
		t.Fatal("change reported for a different file")
	case <-time.After(200 * time.Millisecond):
	}
}

func TestWatch_ClosesOnCancel(t *testing.T) {
	path := writeFile(t, "messages.yaml", "generic: first\n")

	ctx, cancel := context.WithCancel(context.Background())
	changes, err := Watch(ctx, path)
	require.NoError(t, err)

	cancel()

	select {
	case _, ok := <-changes:
		require.False(t, ok, "expected channel to close after cancel")
	case <-time.After(5 * time.Second):
		t.Fatal("channel not closed after cancel")
	}
}

func TestWatch_MissingDirectory(t *testing.T) {
	_, err := Watch(context.Background(), filepath.Join(t.TempDir(), "missing", "messages.yaml"))
	require.Error(t, err)
}
