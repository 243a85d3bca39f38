package assets

import (
	"fmt"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/black-lamp/lessconv/log"
)

const (
	// InputExt is the extension of the assets handled by LessConverter.
	InputExt = "less"
	// OutputExt is the extension of the generated assets.
	OutputExt = "css"
)

// LessConverter converts LESS assets into CSS, recompiling them only
// when the CSS file is missing or older than its source, unless
// ForceParse is set. Assets with other extensions are handed to
// Fallback.
type LessConverter struct {
	Options
	// Compiler compiles the LESS code. It must be non-nil.
	Compiler Compiler
	// Store is used for accessing the files. If nil, the
	// OS filesystem is used.
	Store FileStore
	// Fallback converts assets which are not LESS. If nil,
	// they're returned unchanged.
	Fallback Converter
	// Logger receives a trace message for each successful
	// compilation. If nil, log.Std is used.
	Logger log.Interface
	// Diagnostic, if non-nil, is called when a compilation fails
	// without an error being returned from Convert (e.g. the compiler
	// produced no output).
	Diagnostic func(*Diagnostic)
}

// NewLessConverter returns a LessConverter which compiles using c and
// reads and writes files from the OS filesystem.
func NewLessConverter(c Compiler, opts Options) *LessConverter {
	return &LessConverter{
		Options:  opts,
		Compiler: c,
	}
}

func (c *LessConverter) store() FileStore {
	if c.Store != nil {
		return c.Store
	}
	return defaultStore
}

func (c *LessConverter) logger() log.Interface {
	if c.Logger != nil {
		return c.Logger
	}
	return log.Std
}

var defaultStore = &DirStore{}

// Convert implements the Converter interface. If asset has no extension,
// it's returned unchanged. The returned name is the same whether the
// asset has been recompiled or not. The only errors returned by Convert
// are those returned by the Compiler.
func (c *LessConverter) Convert(asset string, basePath string) (string, error) {
	dot := strings.LastIndexByte(asset, '.')
	if dot < 0 {
		return asset, nil
	}
	if asset[dot+1:] != InputExt {
		if c.Fallback != nil {
			return c.Fallback.Convert(asset, basePath)
		}
		return PassThrough{}.Convert(asset, basePath)
	}
	st := c.store()
	assetMtime, assetOk := st.ModTime(filepath.Join(basePath, asset))
	var suffix string
	if c.CacheSuffix && assetOk {
		suffix = strconv.FormatInt(assetMtime.Unix(), 10)
	}
	result := c.BuildResult(asset, suffix)
	resultMtime, resultOk := st.ModTime(filepath.Join(basePath, result))
	// A missing file is older than any existing one.
	stale := !resultOk || (assetOk && resultMtime.Before(assetMtime))
	if stale || c.ForceParse {
		if _, err := c.parseLess(basePath, asset, result); err != nil {
			return "", fmt.Errorf("converting %s: %w", asset, err)
		}
	}
	return result, nil
}

// BuildResult returns the name of the CSS file generated from asset.
// If suffix is non-empty, it's appended to the name before the
// extension. Compressed results are marked with "-m". Assets without
// an extension are returned unchanged.
//
//	style.less                     => style.css
//	style.less (compressed)        => style-m.css
//	style.less, "123"              => style-123.css
//	style.less, "123" (compressed) => style-m123.css
func (c *LessConverter) BuildResult(asset string, suffix string) string {
	dot := strings.LastIndexByte(asset, '.')
	if dot < 0 {
		return asset
	}
	divider := "-"
	if c.Compress {
		divider = "-m"
	}
	stem := asset[:dot]
	switch {
	case suffix != "":
		return stem + divider + suffix + "." + OutputExt
	case c.Compress:
		return stem + divider + "." + OutputExt
	}
	return stem + "." + OutputExt
}

// parseLess compiles basePath/asset into basePath/result. It returns
// an error only when the compiler fails. Other failures are reported
// to c.Diagnostic and make parseLess return false.
func (c *LessConverter) parseLess(basePath string, asset string, result string) (bool, error) {
	src := filepath.Join(basePath, asset)
	dst := filepath.Join(basePath, result)
	st := c.store()
	code, err := st.ReadFile(src)
	if err != nil {
		c.diagnose(asset, result, DiagnosticReadFailed, err)
		return false, nil
	}
	opts := CompileOptions{
		Compress: c.Compress,
		CacheDir: c.cacheDir(),
		Dir:      filepath.Dir(src),
	}
	css, err := c.Compiler.Compile(code, opts)
	if err != nil {
		return false, err
	}
	if len(css) == 0 {
		c.diagnose(asset, result, DiagnosticEmptyOutput, nil)
		return false, nil
	}
	if err := st.WriteFileExclusive(dst, css); err != nil {
		c.diagnose(asset, result, DiagnosticWriteFailed, err)
		return false, nil
	}
	c.logger().Debugf("converted %s into %s", asset, result)
	return true, nil
}

func (c *LessConverter) diagnose(asset string, result string, reason DiagnosticReason, err error) {
	if c.Diagnostic != nil {
		c.Diagnostic(&Diagnostic{
			Asset:  asset,
			Result: result,
			Reason: reason,
			Err:    err,
		})
	}
}
