package filesystem

import (
	"io/fs"
)

// FileInfo is an alias for fs.FileInfo from the standard library.
// This provides compatibility with the fs.FS ecosystem while maintaining
// a stable local type for our abstraction layer.
type FileInfo = fs.FileInfo

// FileSystem abstracts the operations the exporter performs so the
// export layout can be tested against an in-memory implementation.
type FileSystem interface {
	// Mkdir creates a directory. It fails if the path already exists,
	// which is how the exporter refuses to overwrite a previous run.
	Mkdir(path string) error

	// MkdirAll creates a directory along with any missing parents.
	// An existing directory is not an error.
	MkdirAll(path string) error

	// WriteFile writes data to path, creating or truncating the file.
	WriteFile(path string, data []byte) error

	// Symlink creates newname as a symbolic link to oldname.
	// oldname may be relative to the directory containing newname.
	Symlink(oldname, newname string) error

	// ReadFile reads the file at path.
	ReadFile(path string) ([]byte, error)

	// Readlink returns the target of the symbolic link at path.
	Readlink(path string) (string, error)

	// Stat returns file information for path.
	Stat(path string) (FileInfo, error)
}
