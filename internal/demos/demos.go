// Package demos lists the sample images shipped in the public demo folder.
package demos

import (
	"io/fs"
	"net/http"
	"os"
	"path"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/samber/lo"
)

var allowedExtensions = []string{".jpg", ".jpeg", ".png", ".webp"}

type Item struct {
	Filename   string    `json:"filename"`
	URL        string    `json:"url"`
	Bytes      int64     `json:"bytes"`
	ModifiedAt time.Time `json:"modifiedAt"`
}

type Lister struct {
	dir       string
	urlPrefix string
}

// NewLister lists dir and builds each item's URL as urlPrefix + filename.
func NewLister(dir, urlPrefix string) *Lister {
	if !strings.HasSuffix(urlPrefix, "/") {
		urlPrefix += "/"
	}
	return &Lister{dir: dir, urlPrefix: urlPrefix}
}

// List reads the directory on every call and returns its images, newest first.
// A missing directory gives an empty list; unreadable entries are skipped.
func (l *Lister) List() []Item {
	items := make([]Item, 0)

	entries, err := os.ReadDir(l.dir)
	if err != nil {
		return items
	}

	for _, entry := range entries {
		name := entry.Name()
		if !lo.Contains(allowedExtensions, strings.ToLower(filepath.Ext(name))) {
			continue
		}
		// Stat follows symlinks, so a link to a regular image is listed.
		info, err := os.Stat(filepath.Join(l.dir, name))
		if err != nil || !info.Mode().IsRegular() {
			continue
		}
		items = append(items, Item{
			Filename:   name,
			URL:        l.urlPrefix + name,
			Bytes:      info.Size(),
			ModifiedAt: info.ModTime().UTC(),
		})
	}

	sort.SliceStable(items, func(i, j int) bool {
		return items[i].ModifiedAt.After(items[j].ModifiedAt)
	})
	return items
}

// FileSystem serves the same files List returns: top-level regular files
// with an image extension. Everything else, the directory itself
// included, reports fs.ErrNotExist.
func (l *Lister) FileSystem() http.FileSystem {
	return imageFS{root: http.Dir(l.dir)}
}

type imageFS struct {
	root http.FileSystem
}

func (fsys imageFS) Open(name string) (http.File, error) {
	if path.Dir(name) != "/" || !lo.Contains(allowedExtensions, strings.ToLower(path.Ext(name))) {
		return nil, fs.ErrNotExist
	}
	f, err := fsys.root.Open(name)
	if err != nil {
		return nil, err
	}
	info, err := f.Stat()
	if err != nil || !info.Mode().IsRegular() {
		f.Close()
		return nil, fs.ErrNotExist
	}
	return f, nil
}
