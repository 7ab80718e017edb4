// Package graphql fetches store configuration and schema metadata from a
// Magento-style GraphQL backend.
//
// Every operation follows the same path: read the backend URL from the
// injected EndpointSource, resolve "graphql" against it, pick a transport
// strategy by scheme, POST the query, decode the JSON envelope and extract one
// field from data.
//
// A field that is missing from data is not an error: the operation returns a
// nil value and a nil error. Transport and decode failures are returned with
// the underlying message unchanged, see TransportError and
// MalformedResponseError. Nothing is retried, cached or timed out here;
// callers own that policy through the context they pass in.
package graphql
