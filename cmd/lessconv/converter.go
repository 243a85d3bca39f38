package main

import (
	"fmt"

	"github.com/black-lamp/lessconv/assets"
	"github.com/black-lamp/lessconv/assets/less"
	"github.com/black-lamp/lessconv/config"
	"github.com/black-lamp/lessconv/log"
)

// assetOptions override the values in the configuration file.
type assetOptions struct {
	Dir      string `help:"Directory the assets are relative to"`
	Compress bool   `help:"Generate minified CSS"`
	Force    bool   `help:"Recompile assets even if their output is up to date"`
	Cache    bool   `help:"Enable the compiler cache"`
	CacheDir string `name:"cache-dir" help:"Directory for the compiler cache"`
	Suffix   bool   `help:"Append the source modification time to output names"`
	Port     int    `help:"Port to listen on (serve only)"`
}

func (o *assetOptions) apply(c *config.Config) {
	if o.Dir != "" {
		c.Dir = o.Dir
	}
	c.Compress = c.Compress || o.Compress
	c.ForceParse = c.ForceParse || o.Force
	c.UseCache = c.UseCache || o.Cache
	if o.CacheDir != "" {
		c.CacheDir = o.CacheDir
	}
	c.CacheSuffix = c.CacheSuffix || o.Suffix
	if o.Port != 0 {
		c.Port = o.Port
	}
}

func newCompiler(c *config.Config) (assets.Compiler, error) {
	switch c.Compiler {
	case "", "auto":
		if c.Lessc != "" {
			return less.NewCommand(c.Lessc), nil
		}
		less.DefaultReducer = c.Reducer
		return less.Default(), nil
	case "lessc":
		cmd := less.NewCommand(c.Lessc)
		if cmd.Path == "" {
			return nil, less.ErrNoLessc
		}
		return cmd, nil
	case "reducer":
		return &less.Reducer{URL: c.Reducer}, nil
	}
	return nil, fmt.Errorf("unknown compiler %q", c.Compiler)
}

// newConverter applies opts over the configuration and returns
// the converter it describes.
func newConverter(opts *assetOptions) (*assets.LessConverter, error) {
	opts.apply(cfg)
	compiler, err := newCompiler(cfg)
	if err != nil {
		return nil, err
	}
	less.CacheDriver = cfg.CacheDriver
	conv := assets.NewLessConverter(compiler, cfg.Options())
	conv.Diagnostic = func(d *assets.Diagnostic) {
		log.Warningf("%s was not converted: %s", d.Asset, d)
	}
	return conv, nil
}
