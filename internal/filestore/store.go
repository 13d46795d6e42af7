package filestore

import (
	"context"
	"io/fs"
	"path/filepath"

	"github.com/google/uuid"
)

// defaultMode is used when saving to a path that does not exist yet.
const defaultMode fs.FileMode = 0o644

// Store loads and saves documents on a FileSystem.
type Store struct {
	fs FileSystem

	// newTempName returns the temporary file name for a save of path.
	newTempName func(path string) string
}

// NewStore creates a store on fsys. A nil fsys uses the OS file system.
func NewStore(fsys FileSystem) *Store {
	if fsys == nil {
		fsys = DefaultFS()
	}
	return &Store{fs: fsys, newTempName: TempName}
}

// TempName returns a unique sibling temporary path for saving path:
// ".<base>.<uuid>~" in the same directory.
func TempName(path string) string {
	dir, base := filepath.Split(path)
	return filepath.Join(dir, "."+base+"."+uuid.NewString()+"~")
}

// Load reads the file at path. Errors are *OpError values wrapping the
// file system error, so errors.Is(err, fs.ErrNotExist) and
// errors.Is(err, fs.ErrPermission) work.
func (s *Store) Load(ctx context.Context, path string) (*Document, error) {
	if err := ctx.Err(); err != nil {
		return nil, &OpError{Op: "load", Path: path, Err: err}
	}

	info, err := s.fs.Stat(path)
	if err != nil {
		return nil, &OpError{Op: "load", Path: path, Err: err}
	}
	if !info.Mode().IsRegular() {
		return nil, &OpError{Op: "load", Path: path, Err: ErrNotRegular}
	}

	content, err := s.fs.ReadFile(path)
	if err != nil {
		return nil, &OpError{Op: "load", Path: path, Err: err}
	}

	lines, trailing := Split(content)
	return &Document{
		Path:            path,
		Lines:           lines,
		TrailingNewline: trailing,
		Mode:            info.Mode().Perm(),
		ModTime:         info.ModTime(),
	}, nil
}

// Save writes lines to path through a temporary file and an atomic rename.
// The target keeps its current permissions; a new file gets 0644. On
// failure the temporary file is removed and the target is untouched.
func (s *Store) Save(ctx context.Context, path string, lines []string, trailingNewline bool) error {
	if err := ctx.Err(); err != nil {
		return &OpError{Op: "save", Path: path, Err: err}
	}

	mode := defaultMode
	if info, err := s.fs.Stat(path); err == nil {
		if !info.Mode().IsRegular() {
			return &OpError{Op: "save", Path: path, Err: ErrNotRegular}
		}
		mode = info.Mode().Perm()
	}

	tmp := s.newTempName(path)
	if err := s.fs.CreateFile(tmp, Join(lines, trailingNewline), mode); err != nil {
		_ = s.fs.Remove(tmp) // best-effort; a partial file may exist
		return &OpError{Op: "save", Path: path, Err: err}
	}
	if err := s.fs.Rename(tmp, path); err != nil {
		_ = s.fs.Remove(tmp) // best-effort cleanup
		return &OpError{Op: "save", Path: path, Err: err}
	}
	return nil
}
