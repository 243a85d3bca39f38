package assets

import (
	"os"
	"path/filepath"
	"time"

	"github.com/gofrs/flock"
)

// FileStore is the interface used by LessConverter for accessing
// files. Names are basePath joined with the asset name.
type FileStore interface {
	// ModTime returns the modification time of the given file. If the
	// file can't be stat'ed, the second return value is false.
	ModTime(name string) (time.Time, bool)
	// ReadFile returns the whole contents of the given file.
	ReadFile(name string) ([]byte, error)
	// WriteFileExclusive replaces the contents of the given file while
	// holding an exclusive lock on it, so concurrent writers don't
	// interleave their output.
	WriteFileExclusive(name string, data []byte) error
}

// DirStore is a FileStore backed by the OS filesystem. Locks are
// advisory, only writers going through a DirStore (or flock(2)) honor
// them.
type DirStore struct {
	// Perm is used when creating files. If zero, 0644 is used.
	Perm os.FileMode
}

func (s *DirStore) perm() os.FileMode {
	if s.Perm == 0 {
		return 0644
	}
	return s.Perm
}

func (s *DirStore) ModTime(name string) (time.Time, bool) {
	st, err := os.Stat(name)
	if err != nil {
		return time.Time{}, false
	}
	return st.ModTime(), true
}

func (s *DirStore) ReadFile(name string) ([]byte, error) {
	return os.ReadFile(name)
}

func (s *DirStore) WriteFileExclusive(name string, data []byte) error {
	if err := os.MkdirAll(filepath.Dir(name), 0755); err != nil {
		return err
	}
	// Create the file with the right permissions before
	// flock opens it.
	f, err := os.OpenFile(name, os.O_CREATE|os.O_WRONLY, s.perm())
	if err != nil {
		return err
	}
	f.Close()
	lock := flock.New(name)
	if err := lock.Lock(); err != nil {
		return err
	}
	defer lock.Unlock()
	return os.WriteFile(name, data, s.perm())
}
