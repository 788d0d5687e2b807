package util

import (
	"fmt"
	"net/http"
	"net/url"
)

// NewProxyFunc returns the proxy selector for the fetcher's transport.
// Configured proxy URLs are parsed once up front and take precedence over
// the standard environment variables; a scheme without its own proxy
// follows the environment.
func NewProxyFunc(httpProxy, httpsProxy string) func(*http.Request) (*url.URL, error) {
	if httpProxy == "" && httpsProxy == "" {
		return http.ProxyFromEnvironment
	}

	parse := func(raw string) (*url.URL, error) {
		if raw == "" {
			return nil, nil
		}
		u, err := url.Parse(raw)
		if err != nil {
			return nil, fmt.Errorf("parse proxy URL %q: %w", raw, err)
		}
		return u, nil
	}
	httpURL, httpErr := parse(httpProxy)
	httpsURL, httpsErr := parse(httpsProxy)

	return func(req *http.Request) (*url.URL, error) {
		var u *url.URL
		var err error
		if req.URL.Scheme == "https" && httpsProxy != "" {
			u, err = httpsURL, httpsErr
		} else {
			u, err = httpURL, httpErr
		}
		if err != nil {
			return nil, err
		}
		if u == nil {
			return http.ProxyFromEnvironment(req)
		}
		return u, nil
	}
}
