// Package less implements compilers for LESS code.
//
// Command runs the lessc binary, while Reducer sends the code to a
// remote service. Both minify their output when asked for compressed
// CSS and cache their results when given a cache directory.
package less

import (
	"os/exec"
	"sync"

	"github.com/black-lamp/lessconv/assets"
	"github.com/black-lamp/lessconv/cache"
	"github.com/black-lamp/lessconv/log"

	"github.com/dchest/cssmin"
)

var (
	lesscPath, _ = exec.LookPath("lessc")

	// CacheDriver is the name of the cache driver used for the cache
	// directories passed in assets.CompileOptions.
	CacheDriver = cache.DefaultDriver

	cacheMutex   sync.Mutex
	cacheDrivers = map[string]cache.Driver{}
)

// Default returns a Command using the lessc found in $PATH, or a
// Reducer if there's no lessc available.
func Default() assets.Compiler {
	if lesscPath != "" {
		return &Command{Path: lesscPath}
	}
	return &Reducer{}
}

func cacheFor(dir string) cache.Driver {
	cacheMutex.Lock()
	defer cacheMutex.Unlock()
	key := CacheDriver + ":" + dir
	if d := cacheDrivers[key]; d != nil {
		return d
	}
	d, err := cache.Open(CacheDriver, dir)
	if err != nil {
		log.Warningf("can't open %s cache in %s: %s", CacheDriver, dir, err)
		return nil
	}
	cacheDrivers[key] = d
	return d
}

// CloseCaches closes all the caches opened by the compilers in this
// package.
func CloseCaches() error {
	cacheMutex.Lock()
	defer cacheMutex.Unlock()
	var first error
	for k, v := range cacheDrivers {
		if err := v.Close(); err != nil && first == nil {
			first = err
		}
		delete(cacheDrivers, k)
	}
	return first
}

// compile calls f to compile src, minifying its output if requested
// and going through the cache in opts.CacheDir, if any.
func compile(name string, src []byte, opts assets.CompileOptions, f func() ([]byte, error)) ([]byte, error) {
	var c cache.Driver
	var key string
	if opts.CacheDir != "" {
		if c = cacheFor(opts.CacheDir); c != nil {
			compress := []byte{'0'}
			if opts.Compress {
				compress[0] = '1'
			}
			key = cache.Key([]byte(name), compress, []byte(opts.Dir), src)
			if b, err := c.Get(key); err == nil && len(b) > 0 {
				return b, nil
			}
		}
	}
	css, err := f()
	if err != nil {
		return nil, err
	}
	if opts.Compress {
		css = cssmin.Minify(css)
	}
	if c != nil && len(css) > 0 {
		if err := c.Set(key, css); err != nil {
			log.Warningf("error caching %s output: %s", name, err)
		}
	}
	return css, nil
}
