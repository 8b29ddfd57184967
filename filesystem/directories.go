package filesystem

import (
	"errors"
	"os"
	"path/filepath"
)

func Abs(p string) string {
	p, err := filepath.Abs(p)
	if err != nil {
		panic(err)
	}

	return p
}

func CreateDirectoryIfNotExists(path string) error {
	return os.MkdirAll(path, 0777)
}

// CreateParentDirectory makes sure the directory that will hold file exists.
func CreateParentDirectory(file string) error {
	return CreateDirectoryIfNotExists(filepath.Dir(file))
}

// Exists reports whether anything exists at path.
func Exists(path string) bool {
	_, err := os.Stat(path)
	return !errors.Is(err, os.ErrNotExist)
}
