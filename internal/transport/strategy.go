package transport

import "net/http"

const (
	SchemeHTTP  = "http"
	SchemeHTTPS = "https"
)

// Strategy produces the transport configuration for one URL scheme.
type Strategy interface {
	Scheme() string
	// Agent returns a fresh agent for a single call, or nil when the
	// scheme does not need one.
	Agent() (*http.Transport, error)
}
