package httpclient

import (
	"net/http"
	"time"
)

// New returns a client with a hard timeout for outbound calls such as
// the OAuth userinfo fetch.
func New(timeout time.Duration) *http.Client {
	return &http.Client{Timeout: timeout}
}
