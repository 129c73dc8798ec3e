package snapshot

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTakeCopiesStoreFile(t *testing.T) {
	root := t.TempDir()
	storePath := filepath.Join(root, "hoopqueens.db")
	require.NoError(t, os.WriteFile(storePath, []byte("store-bytes"), 0o644))

	dir := filepath.Join(root, "snapshots")
	m := NewManager(dir, storePath, nil)
	m.now = func() time.Time {
		return time.Date(2025, time.June, 7, 19, 30, 0, 0, time.UTC)
	}

	path, err := m.Take(context.Background())
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "hoopqueens_2025-06-07_19-30-00.db"), path)

	copied, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, []byte("store-bytes"), copied)
}

func TestTakeWithoutFileBackedStore(t *testing.T) {
	m := NewManager(t.TempDir(), "", nil)

	path, err := m.Take(context.Background())
	require.NoError(t, err)
	assert.Empty(t, path)
}

func TestTakeWhenStoreFileMissing(t *testing.T) {
	root := t.TempDir()
	m := NewManager(filepath.Join(root, "snapshots"), filepath.Join(root, "absent.db"), nil)

	path, err := m.Take(context.Background())
	require.NoError(t, err)
	assert.Empty(t, path)
}

func TestStatsCountsSnapshots(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "a.db"), []byte("aaaa"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "b.db"), []byte("bb"), 0o644))
	require.NoError(t, os.Mkdir(filepath.Join(dir, "nested"), 0o755))

	m := NewManager(dir, "unused.db", nil)

	count, totalBytes := m.Stats()
	assert.Equal(t, 2, count)
	assert.Equal(t, int64(6), totalBytes)
}

func TestStatsOnMissingDir(t *testing.T) {
	m := NewManager(filepath.Join(t.TempDir(), "never-created"), "unused.db", nil)

	count, totalBytes := m.Stats()
	assert.Zero(t, count)
	assert.Zero(t, totalBytes)
}

func TestStorePathFromDSN(t *testing.T) {
	cases := []struct {
		name string
		dsn  string
		want string
	}{
		{"plain path", "hoopqueens.db", "hoopqueens.db"},
		{"file scheme", "file:hoopqueens.db", "hoopqueens.db"},
		{"file scheme with params", "file:hoopqueens.db?cache=shared&_fk=1", "hoopqueens.db"},
		{"nested path", "file:data/league.db", "data/league.db"},
		{"memory", ":memory:", ""},
		{"file memory", "file::memory:?mode=memory", ""},
		{"mode memory param", "file:league.db?mode=memory", ""},
		{"empty", "  ", ""},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, StorePathFromDSN(tc.dsn))
		})
	}
}
