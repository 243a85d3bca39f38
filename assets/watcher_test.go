package assets

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestWatcher(t *testing.T) {
	dir := t.TempDir()
	if err := os.MkdirAll(filepath.Join(dir, "css"), 0755); err != nil {
		t.Fatal(err)
	}
	c, _ := newTestConverter(Options{})
	type conversion struct {
		asset, result string
		err           error
	}
	ch := make(chan conversion, 16)
	w, err := NewWatcher(c, dir, func(asset string, result string, err error) {
		ch <- conversion{asset, result, err}
	})
	if err != nil {
		t.Fatal(err)
	}
	defer w.Close()
	// Not a LESS file, must be ignored
	if err := os.WriteFile(filepath.Join(dir, "css", "plain.css"), []byte("b{}"), 0644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, "css", "site.less"), []byte("a{}"), 0644); err != nil {
		t.Fatal(err)
	}
	select {
	case conv := <-ch:
		if conv.err != nil {
			t.Fatal(conv.err)
		}
		if conv.asset != filepath.Join("css", "site.less") {
			t.Errorf("unexpected asset %q", conv.asset)
		}
		if conv.result != filepath.Join("css", "site.css") {
			t.Errorf("unexpected result %q", conv.result)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("timed out waiting for the conversion")
	}
	if s := readFile(t, filepath.Join(dir, "css", "site.css")); s != "compiled:a{}" {
		t.Errorf("unexpected output %q", s)
	}
}
