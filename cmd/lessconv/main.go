// Command lessconv converts LESS assets into CSS, either once, whenever
// they change or when they're requested over HTTP.
package main

import (
	"github.com/black-lamp/lessconv/assets/less"
	"github.com/black-lamp/lessconv/config"
	"github.com/black-lamp/lessconv/log"

	"github.com/rainycape/command"
)

var (
	commands = []*command.Cmd{
		{
			Name:    "convert",
			Help:    "Convert the given LESS assets into CSS, printing the names of the results",
			Usage:   "<asset> ...",
			Func:    convertCommand,
			Options: &assetOptions{},
		},
		{
			Name:    "watch",
			Help:    "Watch the assets directory, converting LESS assets as they change",
			Func:    watchCommand,
			Options: &assetOptions{},
		},
		{
			Name:    "serve",
			Help:    "Serve the assets directory over HTTP, converting LESS assets on request",
			Func:    serveCommand,
			Options: &assetOptions{},
		},
	}
	// cfg is set by the common options function before
	// running any command.
	cfg = config.Default()
)

type commonOptions struct {
	Config string `help:"Configuration file (YAML). If empty, the defaults are used"`
	Quiet  bool   `name:"q" help:"Disable verbose output"`
}

func main() {
	opts := &command.Options{
		Options: &commonOptions{},
		Func: func(_ *command.Cmd, opts *command.Options) error {
			copts := opts.Options.(*commonOptions)
			if copts.Config != "" {
				c, err := config.Load(copts.Config)
				if err != nil {
					return err
				}
				cfg = c
			}
			level, err := log.ParseLevel(cfg.LogLevel)
			if err != nil {
				return err
			}
			if copts.Quiet {
				level = log.LError
			}
			log.SetLevel(level)
			return nil
		},
	}
	err := command.RunOpts(nil, opts, commands)
	less.CloseCaches()
	command.Exit(err)
}
