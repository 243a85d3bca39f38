// Package assets converts stylesheet assets written in LESS into CSS.
//
// The conversion is driven by a LessConverter, which compiles an asset
// only when its output is missing or older than the source (or when
// forced), and always returns the deterministic name of the output.
// Compilation itself is delegated to a Compiler (the less subpackage
// provides lessc and reducer based ones), while files are accessed
// through a FileStore.
package assets

// Converter is the interface implemented by asset converters. Convert
// receives an asset path relative to basePath and returns the path,
// also relative to basePath, of the converted asset.
type Converter interface {
	Convert(asset string, basePath string) (string, error)
}

// ConverterFunc adapts a function to the Converter interface.
type ConverterFunc func(asset string, basePath string) (string, error)

func (f ConverterFunc) Convert(asset string, basePath string) (string, error) {
	return f(asset, basePath)
}

// PassThrough is a Converter which returns its assets unchanged.
type PassThrough struct{}

func (PassThrough) Convert(asset string, basePath string) (string, error) {
	return asset, nil
}
