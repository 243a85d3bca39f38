package assets

import (
	"os"
	"path/filepath"
)

// Options configure a LessConverter.
type Options struct {
	// Compress makes the compiler generate minified CSS. Output names
	// include the "-m" marker.
	Compress bool
	// ForceParse recompiles assets even when their output is up
	// to date.
	ForceParse bool
	// UseCache enables the compiler's own intermediate result cache.
	UseCache bool
	// CacheDir is the directory for the compiler cache. When empty
	// or not an existing directory, DefaultCacheDir is used.
	CacheDir string
	// CacheSuffix appends the source modification time to the output
	// name, so changes bust browser and CDN caches.
	CacheSuffix bool
}

// cacheDir returns the directory passed to the compiler, or an
// empty string if caching is disabled.
func (o *Options) cacheDir() string {
	if !o.UseCache {
		return ""
	}
	if o.CacheDir != "" && isDir(o.CacheDir) {
		return o.CacheDir
	}
	return DefaultCacheDir()
}

// DefaultCacheDir returns the runtime directory used by the compiler
// cache when no valid directory is configured. The directory is created
// if needed. If no directory can be created, an empty string is returned.
func DefaultCacheDir() string {
	base, err := os.UserCacheDir()
	if err != nil {
		base = os.TempDir()
	}
	dir := filepath.Join(base, "lessconv")
	if err := os.MkdirAll(dir, 0755); err != nil {
		return ""
	}
	return dir
}

func isDir(p string) bool {
	st, err := os.Stat(p)
	return err == nil && st.IsDir()
}
