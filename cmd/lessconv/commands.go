package main

import (
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"

	"github.com/black-lamp/lessconv/assets"
	"github.com/black-lamp/lessconv/log"

	"github.com/rainycape/command"
)

func convertCommand(args *command.Args, opts *assetOptions) error {
	names := args.Args()
	if len(names) == 0 {
		return errors.New("no assets to convert")
	}
	conv, err := newConverter(opts)
	if err != nil {
		return err
	}
	for _, v := range names {
		result, err := conv.Convert(v, cfg.Dir)
		if err != nil {
			return err
		}
		fmt.Println(result)
	}
	return nil
}

func watchCommand(_ *command.Args, opts *assetOptions) error {
	conv, err := newConverter(opts)
	if err != nil {
		return err
	}
	w, err := assets.NewWatcher(conv, cfg.Dir, func(asset string, result string, err error) {
		if err == nil {
			log.Infof("%s => %s", asset, result)
		}
	})
	if err != nil {
		return err
	}
	defer w.Close()
	log.Infof("watching %s", cfg.Dir)
	ch := make(chan os.Signal, 1)
	signal.Notify(ch, os.Interrupt)
	<-ch
	return nil
}

func serveCommand(_ *command.Args, opts *assetOptions) error {
	conv, err := newConverter(opts)
	if err != nil {
		return err
	}
	addr := fmt.Sprintf(":%d", cfg.Port)
	log.Infof("serving %s on %s", cfg.Dir, addr)
	return http.ListenAndServe(addr, assets.Handler(conv, cfg.Dir))
}
