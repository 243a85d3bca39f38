package cache

import (
	"crypto/md5"
	"encoding/hex"
	"os"
	"path/filepath"
)

// FileSystem is a Driver which stores each key in its own file,
// spreading them in subdirectories of Root.
type FileSystem struct {
	Root string
}

func (f *FileSystem) keyPath(key string) string {
	sum := md5.Sum([]byte(key))
	fileKey := hex.EncodeToString(sum[:])
	return filepath.Join(f.Root, fileKey[:2], fileKey[2:4], fileKey[4:])
}

func (f *FileSystem) Set(key string, b []byte) error {
	p := f.keyPath(key)
	if err := os.MkdirAll(filepath.Dir(p), 0755); err != nil {
		return err
	}
	// Write to a temporary file first, so readers never
	// see partial entries.
	tmp, err := os.CreateTemp(filepath.Dir(p), ".tmp-")
	if err != nil {
		return err
	}
	if _, err := tmp.Write(b); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return err
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return err
	}
	return os.Rename(tmp.Name(), p)
}

func (f *FileSystem) Get(key string) ([]byte, error) {
	data, err := os.ReadFile(f.keyPath(key))
	if err != nil {
		if os.IsNotExist(err) {
			/* Cache miss */
			return nil, nil
		}
		return nil, err
	}
	return data, nil
}

func (f *FileSystem) Delete(key string) error {
	err := os.Remove(f.keyPath(key))
	if err != nil && os.IsNotExist(err) {
		return nil
	}
	return err
}

func (f *FileSystem) Close() error {
	return nil
}

func fsOpener(dir string) (Driver, error) {
	return &FileSystem{Root: dir}, nil
}

func init() {
	Register("file", fsOpener)
}
