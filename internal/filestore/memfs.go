package filestore

import (
	"io/fs"
	"path"
	"sort"
	"sync"
	"syscall"
	"time"
)

// MemFS implements FileSystem in memory. It is used for testing.
// Failures can be injected per operation with FailOn.
//
// MemFS is safe for concurrent use.
type MemFS struct {
	mu    sync.RWMutex
	files map[string]*memFile
	dirs  map[string]bool
	fail  map[string]error
}

type memFile struct {
	content []byte
	mode    fs.FileMode
	modTime time.Time
}

// NewMemFS creates a new in-memory file system with a root directory.
func NewMemFS() *MemFS {
	return &MemFS{
		files: make(map[string]*memFile),
		dirs:  map[string]bool{"/": true},
		fail:  make(map[string]error),
	}
}

// Ensure MemFS implements FileSystem.
var _ FileSystem = (*MemFS)(nil)

// AddFile creates a file and its parent directories.
func (m *MemFS) AddFile(filePath, content string, mode fs.FileMode) {
	m.mu.Lock()
	defer m.mu.Unlock()

	filePath = path.Clean(filePath)
	for d := path.Dir(filePath); !m.dirs[d]; d = path.Dir(d) {
		m.dirs[d] = true
	}
	m.files[filePath] = &memFile{content: []byte(content), mode: mode, modTime: time.Now()}
}

// AddDir creates a directory.
func (m *MemFS) AddDir(dirPath string) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.dirs[path.Clean(dirPath)] = true
}

// FailOn makes every later call to op ("read", "stat", "create", "rename"
// or "remove") fail with err. A nil err clears the failure.
func (m *MemFS) FailOn(op string, err error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if err == nil {
		delete(m.fail, op)
		return
	}
	m.fail[op] = err
}

// Content returns the content of a file and whether it exists.
func (m *MemFS) Content(filePath string) (string, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	f, ok := m.files[path.Clean(filePath)]
	if !ok {
		return "", false
	}
	return string(f.content), true
}

// Files returns all file paths, sorted.
func (m *MemFS) Files() []string {
	m.mu.RLock()
	defer m.mu.RUnlock()

	out := make([]string, 0, len(m.files))
	for p := range m.files {
		out = append(out, p)
	}
	sort.Strings(out)
	return out
}

// ReadFile reads the entire file content.
func (m *MemFS) ReadFile(filePath string) ([]byte, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	filePath = path.Clean(filePath)
	if err := m.fail["read"]; err != nil {
		return nil, &fs.PathError{Op: "read", Path: filePath, Err: err}
	}
	f, ok := m.files[filePath]
	if !ok {
		if m.dirs[filePath] {
			return nil, &fs.PathError{Op: "read", Path: filePath, Err: syscall.EISDIR}
		}
		return nil, &fs.PathError{Op: "read", Path: filePath, Err: fs.ErrNotExist}
	}
	content := make([]byte, len(f.content))
	copy(content, f.content)
	return content, nil
}

// Stat returns file info.
func (m *MemFS) Stat(filePath string) (fs.FileInfo, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	filePath = path.Clean(filePath)
	if err := m.fail["stat"]; err != nil {
		return nil, &fs.PathError{Op: "stat", Path: filePath, Err: err}
	}
	if f, ok := m.files[filePath]; ok {
		return memFileInfo{name: path.Base(filePath), size: int64(len(f.content)), mode: f.mode, modTime: f.modTime}, nil
	}
	if m.dirs[filePath] {
		return memFileInfo{name: path.Base(filePath), mode: fs.ModeDir | 0o755}, nil
	}
	return nil, &fs.PathError{Op: "stat", Path: filePath, Err: fs.ErrNotExist}
}

// CreateFile creates a new file.
func (m *MemFS) CreateFile(filePath string, data []byte, perm fs.FileMode) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	filePath = path.Clean(filePath)
	if err := m.fail["create"]; err != nil {
		return &fs.PathError{Op: "create", Path: filePath, Err: err}
	}
	if _, ok := m.files[filePath]; ok || m.dirs[filePath] {
		return &fs.PathError{Op: "create", Path: filePath, Err: fs.ErrExist}
	}
	if !m.dirs[path.Dir(filePath)] {
		return &fs.PathError{Op: "create", Path: filePath, Err: fs.ErrNotExist}
	}

	content := make([]byte, len(data))
	copy(content, data)
	m.files[filePath] = &memFile{content: content, mode: perm, modTime: time.Now()}
	return nil
}

// Rename moves a file, replacing any file at newPath.
func (m *MemFS) Rename(oldPath, newPath string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	oldPath = path.Clean(oldPath)
	newPath = path.Clean(newPath)
	if err := m.fail["rename"]; err != nil {
		return &fs.PathError{Op: "rename", Path: oldPath, Err: err}
	}
	f, ok := m.files[oldPath]
	if !ok {
		return &fs.PathError{Op: "rename", Path: oldPath, Err: fs.ErrNotExist}
	}
	if m.dirs[newPath] {
		return &fs.PathError{Op: "rename", Path: newPath, Err: syscall.EISDIR}
	}
	m.files[newPath] = f
	delete(m.files, oldPath)
	return nil
}

// Remove deletes a file.
func (m *MemFS) Remove(filePath string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	filePath = path.Clean(filePath)
	if err := m.fail["remove"]; err != nil {
		return &fs.PathError{Op: "remove", Path: filePath, Err: err}
	}
	if _, ok := m.files[filePath]; !ok {
		return &fs.PathError{Op: "remove", Path: filePath, Err: fs.ErrNotExist}
	}
	delete(m.files, filePath)
	return nil
}

// memFileInfo implements fs.FileInfo.
type memFileInfo struct {
	name    string
	size    int64
	mode    fs.FileMode
	modTime time.Time
}

func (fi memFileInfo) Name() string       { return fi.name }
func (fi memFileInfo) Size() int64        { return fi.size }
func (fi memFileInfo) Mode() fs.FileMode  { return fi.mode }
func (fi memFileInfo) ModTime() time.Time { return fi.modTime }
func (fi memFileInfo) IsDir() bool        { return fi.mode.IsDir() }
func (fi memFileInfo) Sys() any           { return nil }
