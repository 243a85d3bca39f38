// Package cache implements byte caches stored in a directory, used by
// compilers for keeping their intermediate results.
//
// Drivers are registered by name. The available ones are:
//
//	file       A tree of files, one per key (the default)
//	leveldb    A LevelDB database
package cache

import (
	"crypto/md5"
	"encoding/hex"
	"fmt"
)

// DefaultDriver is the driver used when no name is given to Open.
const DefaultDriver = "file"

var (
	drivers = map[string]Opener{}
)

// Opener returns a new Driver storing its data in the given
// directory.
type Opener func(dir string) (Driver, error)

// Driver is the interface implemented by cache drivers.
type Driver interface {
	// Set sets the cached value to the given []byte.
	Set(key string, b []byte) error
	// Get returns the []byte associated with the given key. If the
	// key is not found, a nil []byte and no error are returned.
	Get(key string) ([]byte, error)
	// Delete removes the given key from the cache. Deleting a
	// missing key is not an error.
	Delete(key string) error
	// Close releases the resources used by the driver.
	Close() error
}

// Register registers a new cache driver with the given name. This
// function is not thread safe, it's intended to be called from init
// functions.
func Register(name string, f Opener) {
	drivers[name] = f
}

// Open returns a new Driver of the given kind for dir. An empty name
// selects DefaultDriver.
func Open(name string, dir string) (Driver, error) {
	if name == "" {
		name = DefaultDriver
	}
	opener := drivers[name]
	if opener == nil {
		return nil, fmt.Errorf("unknown cache driver %q", name)
	}
	return opener(dir)
}

// Key returns a cache key derived from the given parts.
func Key(parts ...[]byte) string {
	h := md5.New()
	for _, v := range parts {
		fmt.Fprintf(h, "%d:", len(v))
		h.Write(v)
	}
	return hex.EncodeToString(h.Sum(nil))
}
