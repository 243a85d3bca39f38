package config

import (
	"github.com/black-lamp/lessconv/assets"
)

// Config contains the settings used by the lessconv command.
// See the help on each field for further information.
type Config struct {
	// Compress, ForceParse, UseCache, CacheDir and CacheSuffix map
	// directly to assets.Options.
	Compress    bool   `yaml:"compress" help:"Generate minified CSS, named with the -m marker"`
	ForceParse  bool   `yaml:"force_parse" help:"Recompile assets even if their output is up to date"`
	UseCache    bool   `yaml:"use_cache" help:"Enable the compiler cache"`
	CacheDir    string `yaml:"cache_dir" help:"Directory for the compiler cache. If empty or invalid, a default one is used"`
	CacheSuffix bool   `yaml:"cache_suffix" help:"Append the source modification time to output names"`
	// CacheDriver selects the driver for the compiler cache.
	CacheDriver string `yaml:"cache_driver" default:"file" help:"Compiler cache driver (file or leveldb)"`
	// Compiler is one of auto, lessc or reducer.
	Compiler string `yaml:"compiler" default:"auto" help:"Compiler to use: auto, lessc or reducer"`
	Lessc    string `yaml:"lessc" help:"Path to lessc. If empty, $PATH is searched"`
	Reducer  string `yaml:"reducer" default:"http://reducer.gondolaweb.com/" help:"Base URL for the reducer service"`
	// Dir is the base directory for the assets.
	Dir string `yaml:"dir" default:"." help:"Directory the assets are relative to"`
	// Port is used by the serve command.
	Port     int    `yaml:"port" default:"8888" help:"Port to listen on"`
	LogLevel string `yaml:"log_level" default:"debug" help:"Minimum level for log messages"`
}

// Options returns the converter options set in the configuration.
func (c *Config) Options() assets.Options {
	return assets.Options{
		Compress:    c.Compress,
		ForceParse:  c.ForceParse,
		UseCache:    c.UseCache,
		CacheDir:    c.CacheDir,
		CacheSuffix: c.CacheSuffix,
	}
}
