package assets

import (
	"io"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"
)

func get(t *testing.T, srv *httptest.Server, p string) (*http.Response, string) {
	resp, err := http.Get(srv.URL + p)
	if err != nil {
		t.Fatal(err)
	}
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatal(err)
	}
	return resp, string(body)
}

func TestHandler(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "css", "style.less"), "a{}", t1)
	writeFile(t, filepath.Join(dir, "bad.less"), "a{{", t1)
	c, fc := newTestConverter(Options{})
	c.Compiler = CompilerFunc(func(src []byte, opts CompileOptions) ([]byte, error) {
		if strings.Contains(string(src), "{{") {
			return nil, &ParseError{Message: "Unrecognised input"}
		}
		return fc.Compile(src, opts)
	})
	srv := httptest.NewServer(Handler(c, dir))
	defer srv.Close()

	resp, body := get(t, srv, "/css/style.less?v=1")
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expecting 200, got %d: %s", resp.StatusCode, body)
	}
	if body != "compiled:a{}" {
		t.Errorf("unexpected body %q", body)
	}
	if ct := resp.Header.Get("Content-Type"); !strings.HasPrefix(ct, "text/css") {
		t.Errorf("unexpected content type %q", ct)
	}
	if cc := resp.Header.Get("Cache-Control"); !strings.HasPrefix(cc, "max-age=") {
		t.Errorf("expecting a max-age cache control, got %q", cc)
	}

	if resp, _ := get(t, srv, "/missing.less"); resp.StatusCode != http.StatusNotFound {
		t.Errorf("expecting 404 for a missing asset, got %d", resp.StatusCode)
	}
	if resp, body := get(t, srv, "/bad.less"); resp.StatusCode != http.StatusInternalServerError {
		t.Errorf("expecting 500 for a parse error, got %d", resp.StatusCode)
	} else if !strings.Contains(body, "Unrecognised input") {
		t.Errorf("error body doesn't include the parse error: %q", body)
	}
	if n := fc.count(); n != 1 {
		t.Errorf("expecting 1 compilation, got %d", n)
	}
}
