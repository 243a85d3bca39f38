package assets

import (
	"fmt"
)

// CompileOptions are passed by LessConverter to its Compiler.
type CompileOptions struct {
	// Compress requests minified output.
	Compress bool
	// CacheDir is the directory where the compiler might store
	// its intermediate results. Empty means caching is disabled.
	CacheDir string
	// Dir is the directory of the source file, used for resolving
	// imports.
	Dir string
}

// Compiler compiles LESS source code into CSS. Compilers should return
// a *ParseError when the source can't be parsed.
type Compiler interface {
	Compile(src []byte, opts CompileOptions) ([]byte, error)
}

// CompilerFunc adapts a function to the Compiler interface.
type CompilerFunc func(src []byte, opts CompileOptions) ([]byte, error)

func (f CompilerFunc) Compile(src []byte, opts CompileOptions) ([]byte, error) {
	return f(src, opts)
}

// ParseError is returned by compilers when the source code is not
// valid.
type ParseError struct {
	// Name is the name of the compiler or the file, might be empty.
	Name    string
	Message string
}

func (e *ParseError) Error() string {
	if e.Name != "" {
		return fmt.Sprintf("%s: parse error: %s", e.Name, e.Message)
	}
	return "parse error: " + e.Message
}
