package filesystem

import (
	"fmt"
	"io/fs"
	"path"
	"path/filepath"
	"sort"
	"sync"
	"time"
)

// memEntry is one node in the in-memory tree.
type memEntry struct {
	data   []byte
	dir    bool
	target string // non-empty for symlinks
}

// MemoryFileSystem is an in-memory FileSystem implementation for tests.
// Symlinks are recorded with their literal target so tests can assert
// on relative link layout without touching the disk.
// Safe for concurrent use by multiple goroutines.
type MemoryFileSystem struct {
	mu      sync.Mutex
	entries map[string]*memEntry
}

// NewMemoryFileSystem creates an empty in-memory filesystem whose
// root directory "." exists.
func NewMemoryFileSystem() *MemoryFileSystem {
	return &MemoryFileSystem{
		entries: map[string]*memEntry{
			".": {dir: true},
		},
	}
}

// normalize converts a path to the canonical slash-separated form used
// as a map key.
func normalize(p string) string {
	return path.Clean(filepath.ToSlash(p))
}

func (m *MemoryFileSystem) Mkdir(p string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	p = normalize(p)
	if _, ok := m.entries[p]; ok {
		return &fs.PathError{Op: "mkdir", Path: p, Err: fs.ErrExist}
	}
	if err := m.requireDir(path.Dir(p)); err != nil {
		return err
	}
	m.entries[p] = &memEntry{dir: true}
	return nil
}

func (m *MemoryFileSystem) MkdirAll(p string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.mkdirAllLocked(normalize(p))
}

// mkdirAllLocked creates p and any missing parents. Caller holds the lock.
func (m *MemoryFileSystem) mkdirAllLocked(p string) error {
	if entry, ok := m.entries[p]; ok {
		if !entry.dir {
			return &fs.PathError{Op: "mkdir", Path: p, Err: fs.ErrExist}
		}
		return nil
	}

	if parent := path.Dir(p); parent != p {
		if err := m.mkdirAllLocked(parent); err != nil {
			return err
		}
	}
	m.entries[p] = &memEntry{dir: true}
	return nil
}

func (m *MemoryFileSystem) WriteFile(p string, data []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	p = normalize(p)
	if err := m.requireDir(path.Dir(p)); err != nil {
		return err
	}
	if entry, ok := m.entries[p]; ok && entry.dir {
		return &fs.PathError{Op: "write", Path: p, Err: fmt.Errorf("is a directory")}
	}
	buf := make([]byte, len(data))
	copy(buf, data)
	m.entries[p] = &memEntry{data: buf}
	return nil
}

func (m *MemoryFileSystem) Symlink(oldname, newname string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	newname = normalize(newname)
	if _, ok := m.entries[newname]; ok {
		return &fs.PathError{Op: "symlink", Path: newname, Err: fs.ErrExist}
	}
	if err := m.requireDir(path.Dir(newname)); err != nil {
		return err
	}
	m.entries[newname] = &memEntry{target: filepath.ToSlash(oldname)}
	return nil
}

func (m *MemoryFileSystem) ReadFile(p string) ([]byte, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	entry, resolved, err := m.resolve(normalize(p), 0)
	if err != nil {
		return nil, err
	}
	if entry.dir {
		return nil, &fs.PathError{Op: "read", Path: resolved, Err: fmt.Errorf("is a directory")}
	}
	buf := make([]byte, len(entry.data))
	copy(buf, entry.data)
	return buf, nil
}

func (m *MemoryFileSystem) Readlink(p string) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	p = normalize(p)
	entry, ok := m.entries[p]
	if !ok {
		return "", &fs.PathError{Op: "readlink", Path: p, Err: fs.ErrNotExist}
	}
	if entry.target == "" {
		return "", &fs.PathError{Op: "readlink", Path: p, Err: fmt.Errorf("not a symlink")}
	}
	return entry.target, nil
}

func (m *MemoryFileSystem) Stat(p string) (FileInfo, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	p = normalize(p)
	entry, resolved, err := m.resolve(p, 0)
	if err != nil {
		return nil, err
	}
	return &memFileInfo{
		name: path.Base(resolved),
		size: int64(len(entry.data)),
		dir:  entry.dir,
	}, nil
}

// Paths returns every path in the filesystem, sorted.
// Test helper; not part of the FileSystem interface.
func (m *MemoryFileSystem) Paths() []string {
	m.mu.Lock()
	defer m.mu.Unlock()

	paths := make([]string, 0, len(m.entries))
	for p := range m.entries {
		if p == "." {
			continue
		}
		paths = append(paths, p)
	}
	sort.Strings(paths)
	return paths
}

// resolve follows symlinks to the final entry. Caller holds the lock.
func (m *MemoryFileSystem) resolve(p string, depth int) (*memEntry, string, error) {
	if depth > 8 {
		return nil, p, &fs.PathError{Op: "stat", Path: p, Err: fmt.Errorf("too many levels of symbolic links")}
	}
	entry, ok := m.entries[p]
	if !ok {
		return nil, p, &fs.PathError{Op: "stat", Path: p, Err: fs.ErrNotExist}
	}
	if entry.target == "" {
		return entry, p, nil
	}
	target := entry.target
	if !path.IsAbs(target) {
		target = normalize(path.Join(path.Dir(p), target))
	}
	return m.resolve(target, depth+1)
}

// requireDir verifies that p exists and is a directory. Caller holds
// the lock.
func (m *MemoryFileSystem) requireDir(p string) error {
	entry, ok := m.entries[p]
	if !ok {
		return &fs.PathError{Op: "open", Path: p, Err: fs.ErrNotExist}
	}
	if !entry.dir {
		return &fs.PathError{Op: "open", Path: p, Err: fmt.Errorf("not a directory")}
	}
	return nil
}

// memFileInfo implements fs.FileInfo for in-memory entries.
type memFileInfo struct {
	name string
	size int64
	dir  bool
}

func (i *memFileInfo) Name() string { return i.name }
func (i *memFileInfo) Size() int64  { return i.size }
func (i *memFileInfo) Mode() fs.FileMode {
	if i.dir {
		return fs.ModeDir | 0o755
	}
	return 0o644
}
func (i *memFileInfo) ModTime() time.Time { return time.Time{} }
func (i *memFileInfo) IsDir() bool        { return i.dir }
func (i *memFileInfo) Sys() interface{}   { return nil }
