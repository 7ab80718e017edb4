package transport

import (
	"crypto/tls"
	"net"
	"net/http"
	"time"

	"golang.org/x/net/http2"
)

const (
	keepAlive       = 30 * time.Second
	idleConnTimeout = 90 * time.Second
	maxIdleConns    = 10
)

type secureStrategy struct {
	tlsConfig *tls.Config
}

func (s *secureStrategy) Scheme() string {
	return SchemeHTTPS
}

// Agent builds a keep-alive transport with its own TLS config. Compression is
// left to the caller, which sets Accept-Encoding explicitly.
func (s *secureStrategy) Agent() (*http.Transport, error) {
	dialer := &net.Dialer{KeepAlive: keepAlive}

	t := &http.Transport{
		Proxy:               http.ProxyFromEnvironment,
		DialContext:         dialer.DialContext,
		TLSClientConfig:     s.tlsConfig.Clone(),
		MaxIdleConns:        maxIdleConns,
		IdleConnTimeout:     idleConnTimeout,
		TLSHandshakeTimeout: 10 * time.Second,
		DisableCompression:  true,
	}

	if _, err := http2.ConfigureTransports(t); err != nil {
		return nil, err
	}

	return t, nil
}

// NewSecureStrategy returns the https strategy. A nil tlsConfig uses
// TLS 1.2 as the floor and the system roots.
func NewSecureStrategy(tlsConfig *tls.Config) Strategy {
	if tlsConfig == nil {
		tlsConfig = &tls.Config{MinVersion: tls.VersionTLS12}
	}

	return &secureStrategy{tlsConfig: tlsConfig}
}
