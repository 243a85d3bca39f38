package cache

import (
	"bytes"
	"testing"
)

func testDriver(t *testing.T, name string) {
	d, err := Open(name, t.TempDir())
	if err != nil {
		t.Fatal(err)
	}
	defer d.Close()
	if b, err := d.Get("missing"); err != nil || b != nil {
		t.Errorf("expecting nil, nil for missing key, got %q, %v", b, err)
	}
	value := []byte("body{color:red}")
	if err := d.Set("a", value); err != nil {
		t.Fatal(err)
	}
	b, err := d.Get("a")
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(b, value) {
		t.Errorf("expecting %q, got %q", value, b)
	}
	if err := d.Set("a", []byte("x")); err != nil {
		t.Fatal(err)
	}
	if b, _ := d.Get("a"); string(b) != "x" {
		t.Errorf("expecting overwritten value x, got %q", b)
	}
	if err := d.Delete("a"); err != nil {
		t.Fatal(err)
	}
	if b, _ := d.Get("a"); b != nil {
		t.Errorf("expecting nil after delete, got %q", b)
	}
	if err := d.Delete("a"); err != nil {
		t.Errorf("deleting a missing key returned %v", err)
	}
}

func TestFileSystem(t *testing.T) {
	testDriver(t, "file")
}

func TestLevelDB(t *testing.T) {
	testDriver(t, "leveldb")
}

func TestDefaultDriver(t *testing.T) {
	d, err := Open("", t.TempDir())
	if err != nil {
		t.Fatal(err)
	}
	if _, ok := d.(*FileSystem); !ok {
		t.Errorf("expecting *FileSystem, got %T", d)
	}
}

func TestUnknownDriver(t *testing.T) {
	if _, err := Open("memcache", t.TempDir()); err == nil {
		t.Error("expecting an error for an unknown driver")
	}
}

func TestKey(t *testing.T) {
	if Key([]byte("ab"), []byte("c")) == Key([]byte("a"), []byte("bc")) {
		t.Error("keys with different part boundaries must differ")
	}
	if Key([]byte("a")) != Key([]byte("a")) {
		t.Error("keys must be deterministic")
	}
}
