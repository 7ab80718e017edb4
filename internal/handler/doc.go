// Package handler exposes the GraphQL-derived store metadata over HTTP so
// build tooling can read it without speaking GraphQL. A field missing from
// the backend response is a 404, a failed backend call is a 502 carrying the
// error message.
package handler
