package filesystem

import (
	"os"
)

// OSFileSystem implements FileSystem for the OS filesystem.
type OSFileSystem struct{}

// NewOSFileSystem creates a new OS filesystem.
func NewOSFileSystem() *OSFileSystem {
	return &OSFileSystem{}
}

func (p *OSFileSystem) Mkdir(path string) error {
	return os.Mkdir(path, 0o755)
}

func (p *OSFileSystem) MkdirAll(path string) error {
	return os.MkdirAll(path, 0o755)
}

func (p *OSFileSystem) WriteFile(path string, data []byte) error {
	return os.WriteFile(path, data, 0o644)
}

func (p *OSFileSystem) Symlink(oldname, newname string) error {
	return os.Symlink(oldname, newname)
}

func (p *OSFileSystem) ReadFile(path string) ([]byte, error) {
	return os.ReadFile(path)
}

func (p *OSFileSystem) Readlink(path string) (string, error) {
	return os.Readlink(path)
}

func (p *OSFileSystem) Stat(path string) (FileInfo, error) {
	// os.Stat returns os.FileInfo which implements fs.FileInfo
	return os.Stat(path)
}
