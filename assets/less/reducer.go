package less

import (
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/black-lamp/lessconv/assets"
)

// DefaultReducer is the base URL used by Reducer when its URL is
// empty.
var DefaultReducer = "http://reducer.gondolaweb.com/"

// Reducer compiles LESS code using a remote service. The code is sent
// in a POST request to URL + "less", in the form parameter named
// "code". The service must answer with the CSS and a 200 status, any
// other status is interpreted as a parse error whose message is the
// response body.
type Reducer struct {
	URL string
	// Client is the HTTP client used for the requests. If nil,
	// http.DefaultClient is used.
	Client *http.Client
}

func (r *Reducer) endpoint() string {
	u := r.URL
	if u == "" {
		u = DefaultReducer
	}
	if !strings.HasSuffix(u, "/") {
		u += "/"
	}
	return u + "less"
}

func (r *Reducer) client() *http.Client {
	if r.Client != nil {
		return r.Client
	}
	return http.DefaultClient
}

func (r *Reducer) Compile(src []byte, opts assets.CompileOptions) ([]byte, error) {
	return compile("reducer", src, opts, func() ([]byte, error) {
		form := url.Values{
			"code": []string{string(src)},
		}
		endpoint := r.endpoint()
		resp, err := r.client().PostForm(endpoint, form)
		if err != nil {
			return nil, err
		}
		defer resp.Body.Close()
		body, err := io.ReadAll(resp.Body)
		if err != nil {
			return nil, err
		}
		if resp.StatusCode != http.StatusOK {
			msg := strings.TrimSpace(string(body))
			if msg == "" {
				msg = fmt.Sprintf("%s returned status %d", endpoint, resp.StatusCode)
			}
			return nil, &assets.ParseError{Name: "reducer", Message: msg}
		}
		return body, nil
	})
}
