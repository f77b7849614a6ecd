package fsutil

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestEnsureDir(t *testing.T) {
	t.Run("creates nested directories", func(t *testing.T) {
		req := require.New(t)
		dir := filepath.Join(t.TempDir(), "a", "b", "c")

		req.NoError(EnsureDir(dir, 0755))
		info, err := os.Stat(dir)
		req.NoError(err)
		req.True(info.IsDir())
	})

	t.Run("is idempotent", func(t *testing.T) {
		dir := t.TempDir()
		require.NoError(t, EnsureDir(dir, 0755))
		require.NoError(t, EnsureDir(dir, 0755))
	})

	t.Run("fails on a regular file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "file")
		require.NoError(t, os.WriteFile(path, []byte("x"), 0644))
		require.Error(t, EnsureDir(path, 0755))
	})
}

func TestAtomicWriteFile(t *testing.T) {
	t.Run("writes content and leaves no temp files", func(t *testing.T) {
		req := require.New(t)
		dir := filepath.Join(t.TempDir(), "uploads")
		path := filepath.Join(dir, "blob.png")

		req.NoError(AtomicWriteFile(path, []byte("payload"), 0644))

		got, err := os.ReadFile(path)
		req.NoError(err)
		req.Equal([]byte("payload"), got)

		entries, err := os.ReadDir(dir)
		req.NoError(err)
		req.Len(entries, 1)
		req.Equal("blob.png", entries[0].Name())
	})

	t.Run("applies permissions", func(t *testing.T) {
		req := require.New(t)
		path := filepath.Join(t.TempDir(), "blob.jpg")

		req.NoError(AtomicWriteFile(path, []byte{1, 2, 3}, 0600))
		info, err := os.Stat(path)
		req.NoError(err)
		req.Equal(os.FileMode(0600), info.Mode().Perm())
	})

	t.Run("writes empty payloads", func(t *testing.T) {
		req := require.New(t)
		path := filepath.Join(t.TempDir(), "empty.gif")

		req.NoError(AtomicWriteFile(path, nil, 0644))
		info, err := os.Stat(path)
		req.NoError(err)
		req.Zero(info.Size())
	})
}
