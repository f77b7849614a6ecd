// Package utils provides filename checks and identifier generation.
//
// Functions:
//   - IsSafeFilename: Reports whether a name may be joined to a base directory.
//     Input: string (filename)
//     Output: bool
//   - Extension: Returns the lowercased extension of a filename without the dot.
//     Input: string (filename), string (fallback)
//     Output: string (extension)
//   - GenerateUUID: Returns a new random UUID string.
//     Output: string (UUID)
//
// Used by the blob store and the handlers for safe file handling and unique IDs.
package utils

import (
	"path/filepath"
	"regexp"
	"strings"

	"github.com/google/uuid"
)

var safeName = regexp.MustCompile(`^[A-Za-z0-9._-]+$`)

// IsSafeFilename accepts only non-empty names made of ASCII letters, digits,
// '.', '_' and '-'. Names consisting solely of dots are rejected since they
// resolve to the base directory or its parent.
func IsSafeFilename(name string) bool {
	if !safeName.MatchString(name) {
		return false
	}
	return strings.Trim(name, ".") != ""
}

// Extension returns the trailing extension of name, lowercased and without
// the leading dot, or fallback when name has none.
func Extension(name, fallback string) string {
	ext := strings.TrimPrefix(filepath.Ext(name), ".")
	if ext == "" {
		return fallback
	}
	return strings.ToLower(ext)
}

func GenerateUUID() string {
	return uuid.New().String()
}
