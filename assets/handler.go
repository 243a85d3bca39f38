package assets

import (
	"net/http"
	"path"
	"path/filepath"
	"strconv"
	"time"

	"github.com/black-lamp/lessconv/log"

	"github.com/go-chi/chi/v5"
)

// maxCacheControlAge is the maximum max-age supported by most
// browsers (2^31).
const maxCacheControlAge = int(^uint32(0) >> 1)

var (
	maxExpiresValue         = time.Unix(int64(maxCacheControlAge), 0).UTC().Format(http.TimeFormat)
	maxCacheControlAgeValue = strconv.Itoa(maxCacheControlAge)
)

func neverExpires(w http.ResponseWriter) {
	header := w.Header()
	header.Set("Cache-Control", "max-age="+maxCacheControlAgeValue)
	header.Set("Expires", maxExpiresValue)
}

// Handler returns an http.Handler which converts the requested asset
// using conv and serves the result from basePath, which must be a
// directory in the OS filesystem. Requests with a query string are
// served with headers which make them never expire.
func Handler(conv Converter, basePath string) http.Handler {
	r := chi.NewRouter()
	r.Get("/*", func(w http.ResponseWriter, r *http.Request) {
		name := path.Clean("/" + chi.URLParam(r, "*"))[1:]
		if name == "" {
			http.NotFound(w, r)
			return
		}
		result, err := conv.Convert(filepath.FromSlash(name), basePath)
		if err != nil {
			log.Warningf("error serving %s: %s", r.URL, err)
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
		if r.URL.RawQuery != "" {
			neverExpires(w)
		}
		http.ServeFile(w, r, filepath.Join(basePath, result))
	})
	return r
}
