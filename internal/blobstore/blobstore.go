// Package blobstore keeps uploaded images in a private directory under
// server-generated names and reads them back by exact filename.
//
// Types:
//   - Upload: the incoming form payload; a nil File means no file was sent.
//   - StoredBlob: what an upload returns to the client.
//   - Blob: a stored payload read back with its resolved Content-Type.
//
// Stored blobs are immutable: the store only creates and reads.
package blobstore

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"gamesnap-xray/internal/fsutil"
	"gamesnap-xray/internal/mimetypes"
	"gamesnap-xray/internal/utils"
)

// DefaultExtension is used when the client's filename carries no usable extension.
const DefaultExtension = "jpg"

var (
	ErrValidation  = errors.New("no file provided")
	ErrInvalidName = errors.New("invalid filename")
	ErrNotFound    = errors.New("file not found")
)

type UploadedFile struct {
	Name string // client-side filename, only its extension is kept
	MIME string // advisory, as declared by the client
	Data []byte
}

type Upload struct {
	File *UploadedFile
}

type StoredBlob struct {
	ID       string `json:"id"`
	Filename string `json:"filename"`
	MIME     string `json:"mime"`
}

type Blob struct {
	Filename string
	MIME     string
	Data     []byte
}

type Store struct {
	dir string
}

func New(dir string) *Store {
	return &Store{dir: dir}
}

func (s *Store) Dir() string {
	return s.dir
}

// Save stores the uploaded file under a fresh name. It fails with
// ErrValidation when the upload carries no file.
func (s *Store) Save(u Upload) (StoredBlob, error) {
	if u.File == nil {
		return StoredBlob{}, ErrValidation
	}
	ext := utils.Extension(u.File.Name, DefaultExtension)
	if !utils.IsSafeFilename(ext) {
		ext = DefaultExtension
	}
	return s.Put(u.File.Data, ext, u.File.MIME)
}

// Put writes data as "<id>.<ext>" with a freshly generated id.
func (s *Store) Put(data []byte, ext, mime string) (StoredBlob, error) {
	id := utils.GenerateUUID()
	filename := fmt.Sprintf("%s.%s", id, ext)
	if !utils.IsSafeFilename(filename) {
		return StoredBlob{}, fmt.Errorf("%w: extension %q", ErrInvalidName, ext)
	}

	if err := fsutil.EnsureDir(s.dir, 0755); err != nil {
		return StoredBlob{}, fmt.Errorf("prepare upload dir: %w", err)
	}
	if err := fsutil.AtomicWriteFile(filepath.Join(s.dir, filename), data, 0644); err != nil {
		return StoredBlob{}, fmt.Errorf("store %s: %w", filename, err)
	}

	return StoredBlob{ID: id, Filename: filename, MIME: mime}, nil
}

// Open reads a stored blob. The name is checked before it is joined to the
// store directory, whatever the caller believes about its origin.
func (s *Store) Open(name string) (Blob, error) {
	if !utils.IsSafeFilename(name) {
		return Blob{}, ErrInvalidName
	}

	path := filepath.Join(s.dir, name)
	info, err := os.Stat(path)
	if errors.Is(err, fs.ErrNotExist) {
		return Blob{}, ErrNotFound
	}
	if err != nil {
		return Blob{}, fmt.Errorf("stat %s: %w", name, err)
	}
	if !info.Mode().IsRegular() {
		return Blob{}, ErrNotFound
	}

	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return Blob{}, ErrNotFound
	}
	if err != nil {
		return Blob{}, fmt.Errorf("read %s: %w", name, err)
	}

	return Blob{Filename: name, MIME: mimetypes.ForFilename(name), Data: data}, nil
}
