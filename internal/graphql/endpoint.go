package graphql

import (
	"errors"
	"net/url"
)

// EndpointSource supplies the backend base URL. It is consulted on every
// call, so a source backed by live configuration sees changes immediately.
type EndpointSource interface {
	BackendURL() string
}

// StaticEndpoint is an EndpointSource that always returns the same URL.
type StaticEndpoint string

func (s StaticEndpoint) BackendURL() string {
	return string(s)
}

// ResolveGraphQLURL resolves "graphql" against base the way a browser
// resolves a relative link. A base without a trailing slash loses its last
// path segment: https://host/magento becomes https://host/graphql.
func ResolveGraphQLURL(base string) (*url.URL, error) {
	u, err := url.Parse(base)
	if err != nil {
		return nil, &EndpointError{URL: base, Err: err}
	}

	if !u.IsAbs() || u.Host == "" {
		return nil, &EndpointError{URL: base, Err: errors.New("must be an absolute URL with a host")}
	}

	return u.ResolveReference(&url.URL{Path: graphqlPath}), nil
}
