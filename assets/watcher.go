package assets

import (
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/black-lamp/lessconv/log"

	"gopkg.in/fsnotify.v1"
)

// WatchDelay is the time the Watcher waits after the last event for a
// file before converting it. Editors usually generate several events
// per save.
var WatchDelay = 50 * time.Millisecond

// Watcher converts LESS files in a directory tree as soon as they're
// modified.
type Watcher struct {
	conv      Converter
	dir       string
	converted func(string, string, error)
	watcher   *fsnotify.Watcher
	mutex     sync.Mutex
	timers    map[string]*time.Timer
}

// NewWatcher starts watching all the directories under dir, converting
// modified LESS files with conv. If converted is non-nil, it's called
// from the watcher goroutine after each conversion. Call Close to stop
// watching.
func NewWatcher(conv Converter, dir string, converted func(asset string, result string, err error)) (*Watcher, error) {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	w := &Watcher{
		conv:      conv,
		dir:       dir,
		converted: converted,
		watcher:   fw,
		timers:    make(map[string]*time.Timer),
	}
	if err := w.addTree(dir); err != nil {
		fw.Close()
		return nil, err
	}
	go w.watch()
	return w, nil
}

func (w *Watcher) addTree(dir string) error {
	return filepath.Walk(dir, func(p string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if info.IsDir() {
			return w.watcher.Add(p)
		}
		return nil
	})
}

func (w *Watcher) watch() {
	for {
		select {
		case ev, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if ev.Op&(fsnotify.Write|fsnotify.Create) == 0 {
				break
			}
			if ev.Op&fsnotify.Create != 0 {
				if st, err := os.Stat(ev.Name); err == nil && st.IsDir() {
					if err := w.addTree(ev.Name); err != nil {
						log.Warningf("error watching %s: %s", ev.Name, err)
					}
					break
				}
			}
			if filepath.Ext(ev.Name) == "."+InputExt {
				w.schedule(ev.Name)
			}
		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			log.Errorf("error watching %s: %s", w.dir, err)
		}
	}
}

func (w *Watcher) schedule(name string) {
	w.mutex.Lock()
	defer w.mutex.Unlock()
	if w.timers == nil {
		// Closed
		return
	}
	if t := w.timers[name]; t != nil {
		t.Stop()
	}
	w.timers[name] = time.AfterFunc(WatchDelay, func() {
		w.mutex.Lock()
		delete(w.timers, name)
		w.mutex.Unlock()
		w.changed(name)
	})
}

func (w *Watcher) changed(name string) {
	asset, err := filepath.Rel(w.dir, name)
	if err != nil {
		log.Warningf("%s is not under %s", name, w.dir)
		return
	}
	result, err := w.conv.Convert(asset, w.dir)
	if err != nil {
		log.Errorf("error converting %s: %s", asset, err)
	}
	if w.converted != nil {
		w.converted(asset, result, err)
	}
}

// Close stops watching. Pending conversions are cancelled.
func (w *Watcher) Close() error {
	w.mutex.Lock()
	for _, t := range w.timers {
		t.Stop()
	}
	w.timers = nil
	w.mutex.Unlock()
	return w.watcher.Close()
}
