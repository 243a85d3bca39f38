package less

import (
	"bytes"
	"errors"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/black-lamp/lessconv/assets"
)

var (
	// ErrNoLessc is returned by Command when its Path is empty.
	ErrNoLessc = errors.New("lessc not found")
)

// Command compiles LESS code by running lessc (or any program with
// a compatible interface) with the code on its standard input.
type Command struct {
	// Path is the path to the lessc binary.
	Path string
	// Args are additional arguments passed to lessc.
	Args []string
}

// NewCommand returns a Command which runs the given lessc binary. If
// path is empty, lessc is looked up in $PATH.
func NewCommand(path string) *Command {
	if path == "" {
		path = lesscPath
	}
	return &Command{Path: path}
}

func (c *Command) args(opts assets.CompileOptions) []string {
	args := []string{"--no-color"}
	if opts.Dir != "" {
		args = append(args, "--include-path="+opts.Dir)
	}
	args = append(args, c.Args...)
	return append(args, "-")
}

func (c *Command) Compile(src []byte, opts assets.CompileOptions) ([]byte, error) {
	if c.Path == "" {
		return nil, ErrNoLessc
	}
	return compile("lessc", src, opts, func() ([]byte, error) {
		cmd := exec.Command(c.Path, c.args(opts)...)
		cmd.Stdin = bytes.NewReader(src)
		var stdout, stderr bytes.Buffer
		cmd.Stdout = &stdout
		cmd.Stderr = &stderr
		if opts.Dir != "" {
			cmd.Dir = opts.Dir
		}
		if err := cmd.Run(); err != nil {
			var exitErr *exec.ExitError
			if errors.As(err, &exitErr) {
				msg := strings.TrimSpace(stderr.String())
				if msg == "" {
					msg = err.Error()
				}
				return nil, &assets.ParseError{Name: filepath.Base(c.Path), Message: msg}
			}
			return nil, err
		}
		return stdout.Bytes(), nil
	})
}
