// Package mimetypes maps stored file names to the Content-Type they are served with.
package mimetypes

import (
	"path/filepath"
	"strings"

	"github.com/gabriel-vasile/mimetype"
)

const (
	ImageJPEG   = "image/jpeg"
	ImagePNG    = "image/png"
	ImageWebP   = "image/webp"
	ImageGIF    = "image/gif"
	OctetStream = "application/octet-stream"
)

var byExtension = map[string]string{
	"jpg":  ImageJPEG,
	"jpeg": ImageJPEG,
	"png":  ImagePNG,
	"webp": ImageWebP,
	"gif":  ImageGIF,
}

// ForExtension resolves an extension, with or without its leading dot, to a
// MIME type. Unknown extensions resolve to application/octet-stream.
func ForExtension(ext string) string {
	if mt, ok := byExtension[strings.ToLower(strings.TrimPrefix(ext, "."))]; ok {
		return mt
	}
	return OctetStream
}

func ForFilename(name string) string {
	return ForExtension(filepath.Ext(name))
}

// Sniff detects the MIME type from the payload itself. It is only used to
// fill in an upload's advisory type when the client did not declare one.
func Sniff(data []byte) string {
	mt, _, _ := strings.Cut(mimetype.Detect(data).String(), ";")
	return mt
}
