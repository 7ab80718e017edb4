// Package transport selects how an outgoing GraphQL request reaches the
// backend. There are two strategies:
//
//   - Secure: a keep-alive agent with TLS and HTTP/2 negotiation, used for
//     https endpoints.
//   - Plain: no agent at all, used for http endpoints. The request goes out
//     over the default transport.
//
// Agents are created per call and owned by that call.
package transport
