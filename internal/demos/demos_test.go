package demos

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/samber/lo"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, dir, name string, size int, mtime time.Time) {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, make([]byte, size), 0644))
	require.NoError(t, os.Chtimes(path, mtime, mtime))
}

func TestLister_List(t *testing.T) {
	base := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)

	t.Run("should return an empty list when the directory does not exist", func(t *testing.T) {
		req := require.New(t)
		items := NewLister(filepath.Join(t.TempDir(), "missing"), "/demo/").List()
		req.NotNil(items)
		req.Empty(items)
	})

	t.Run("should keep only allowed image extensions", func(t *testing.T) {
		req := require.New(t)
		dir := t.TempDir()
		for _, name := range []string{"a.jpg", "b.JPEG", "c.png", "d.webp", "e.gif", "f.txt", "noext"} {
			writeFile(t, dir, name, 1, base)
		}

		items := NewLister(dir, "/demo/").List()

		names := lo.Map(items, func(it Item, _ int) string { return it.Filename })
		req.ElementsMatch([]string{"a.jpg", "b.JPEG", "c.png", "d.webp"}, names)
	})

	t.Run("should skip directories even with an image extension", func(t *testing.T) {
		req := require.New(t)
		dir := t.TempDir()
		req.NoError(os.Mkdir(filepath.Join(dir, "album.png"), 0755))
		writeFile(t, dir, "real.png", 3, base)

		items := NewLister(dir, "/demo/").List()
		req.Len(items, 1)
		req.Equal("real.png", items[0].Filename)
	})

	t.Run("should skip entries whose metadata cannot be read", func(t *testing.T) {
		req := require.New(t)
		dir := t.TempDir()
		req.NoError(os.Symlink(filepath.Join(dir, "gone.png"), filepath.Join(dir, "dangling.png")))
		writeFile(t, dir, "ok.jpg", 3, base)

		items := NewLister(dir, "/demo/").List()
		req.Len(items, 1)
		req.Equal("ok.jpg", items[0].Filename)
	})

	t.Run("should order by modification time, newest first", func(t *testing.T) {
		req := require.New(t)
		dir := t.TempDir()
		writeFile(t, dir, "old.jpg", 1, base)
		writeFile(t, dir, "newest.png", 2, base.Add(2*time.Hour))
		writeFile(t, dir, "middle.webp", 3, base.Add(time.Hour))

		items := NewLister(dir, "/demo/").List()

		req.Equal([]string{"newest.png", "middle.webp", "old.jpg"},
			lo.Map(items, func(it Item, _ int) string { return it.Filename }))
	})

	t.Run("should fill url, size and timestamp", func(t *testing.T) {
		req := require.New(t)
		dir := t.TempDir()
		writeFile(t, dir, "nba_01.jpg", 42, base)

		items := NewLister(dir, "/demo").List()

		req.Len(items, 1)
		req.Equal("/demo/nba_01.jpg", items[0].URL)
		req.EqualValues(42, items[0].Bytes)
		req.True(base.Equal(items[0].ModifiedAt))
	})

	t.Run("should reflect changes between calls", func(t *testing.T) {
		req := require.New(t)
		dir := t.TempDir()
		lister := NewLister(dir, "/demo/")
		req.Empty(lister.List())

		writeFile(t, dir, "later.png", 1, base)
		req.Len(lister.List(), 1)
	})
}

func TestLister_FileSystem(t *testing.T) {
	base := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
	dir := t.TempDir()
	writeFile(t, dir, "nba_01.jpg", 4, base)
	writeFile(t, dir, "notes.txt", 4, base)
	require.NoError(t, os.Mkdir(filepath.Join(dir, "album.png"), 0755))
	require.NoError(t, os.Mkdir(filepath.Join(dir, "sub"), 0755))
	writeFile(t, filepath.Join(dir, "sub"), "nested.jpg", 4, base)

	fsys := NewLister(dir, "/demo/").FileSystem()

	t.Run("should open listed images", func(t *testing.T) {
		req := require.New(t)
		f, err := fsys.Open("/nba_01.jpg")
		req.NoError(err)
		defer f.Close()
		info, err := f.Stat()
		req.NoError(err)
		req.EqualValues(4, info.Size())
	})

	for _, name := range []string{"/", "/notes.txt", "/album.png", "/sub", "/sub/nested.jpg", "/missing.png"} {
		t.Run("should hide "+name, func(t *testing.T) {
			_, err := fsys.Open(name)
			require.True(t, errors.Is(err, fs.ErrNotExist), "got %v", err)
		})
	}
}
