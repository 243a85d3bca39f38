package assets

import (
	"path"
	"path/filepath"
	"sync"
	"time"

	"github.com/rainycape/vfs"
)

// VFSStore is a FileStore backed by a vfs.VFS, like an in-memory
// filesystem or a baked one. Exclusive writes are only serialized
// between users of the same VFSStore.
type VFSStore struct {
	fs    vfs.VFS
	mutex sync.Mutex
}

// NewVFSStore returns a FileStore which reads and writes from fs.
func NewVFSStore(fs vfs.VFS) *VFSStore {
	return &VFSStore{fs: fs}
}

// VFS returns the underlying filesystem.
func (s *VFSStore) VFS() vfs.VFS {
	return s.fs
}

func vfsPath(name string) string {
	return path.Clean("/" + filepath.ToSlash(name))
}

func (s *VFSStore) ModTime(name string) (time.Time, bool) {
	st, err := s.fs.Stat(vfsPath(name))
	if err != nil {
		return time.Time{}, false
	}
	return st.ModTime(), true
}

func (s *VFSStore) ReadFile(name string) ([]byte, error) {
	return vfs.ReadFile(s.fs, vfsPath(name))
}

func (s *VFSStore) WriteFileExclusive(name string, data []byte) error {
	p := vfsPath(name)
	s.mutex.Lock()
	defer s.mutex.Unlock()
	if err := vfs.MkdirAll(s.fs, path.Dir(p), 0755); err != nil {
		return err
	}
	return vfs.WriteFile(s.fs, p, data, 0644)
}
