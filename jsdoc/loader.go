package jsdoc

import (
	"io/fs"
	"os"
	"path/filepath"
)

// Loader resolves a path to source text.
type Loader interface {
	Load(path string) (string, error)
}

// OSLoader reads files from the local file system.
type OSLoader struct{}

// Load reads the named file.
func (OSLoader) Load(path string) (string, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}

	return string(b), nil
}

// FSLoader reads files from an [fs.FS]. Paths are converted to slash form
// before the lookup, so the results of [filepath.Join] can be used as-is.
type FSLoader struct {
	FS fs.FS
}

// Load reads the named file from l.FS.
func (l FSLoader) Load(path string) (string, error) {
	b, err := fs.ReadFile(l.FS, filepath.ToSlash(path))
	if err != nil {
		return "", err
	}

	return string(b), nil
}
