// Package http provides the outbound HTTP client used by provider adapters.
package http

import (
	"net"
	"net/http"
	"time"
)

// NewHTTPClient creates an HTTP client configured for external provider
// calls.
//
// Settings:
//   - Proxy: honored from the environment (HTTP_PROXY etc.)
//   - Dialer.Timeout: TCP connect timeout, shorter than the default
//   - MaxIdleConns: 100 to avoid exhaustion when several providers are
//     polled together
//   - Client.Timeout: whole-request timeout, passed by the caller
//
// http.DefaultClient has no timeout; always use this constructor for
// provider traffic so one slow upstream cannot stall a request forever.
func NewHTTPClient(timeout time.Duration) *http.Client {
	t := &http.Transport{
		Proxy: http.ProxyFromEnvironment,
		DialContext: (&net.Dialer{
			Timeout:   4 * time.Second,
			KeepAlive: 30 * time.Second,
		}).DialContext,
		MaxIdleConns:        100,
		IdleConnTimeout:     90 * time.Second,
		TLSHandshakeTimeout: 5 * time.Second,
	}
	return &http.Client{Timeout: timeout, Transport: t}
}
