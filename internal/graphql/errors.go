package graphql

import (
	"errors"
	"fmt"
)

var ErrEmptyResponse = errors.New("empty response")

// TransportError is a failure to get a response from the backend. Its message
// is the underlying error's message.
type TransportError struct {
	Err error
}

func (e *TransportError) Error() string {
	return e.Err.Error()
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

// MalformedResponseError is a response that could not be decoded as a GraphQL
// envelope. Its message is the decoder's message.
type MalformedResponseError struct {
	Err error
}

func (e *MalformedResponseError) Error() string {
	return e.Err.Error()
}

func (e *MalformedResponseError) Unwrap() error {
	return e.Err
}

// EndpointError reports a backend URL that is not an absolute http(s) URL.
type EndpointError struct {
	URL string
	Err error
}

func (e *EndpointError) Error() string {
	return fmt.Sprintf("invalid backend url %q: %v", e.URL, e.Err)
}

func (e *EndpointError) Unwrap() error {
	return e.Err
}

// ResponseError is one entry of a GraphQL "errors" array.
type ResponseError struct {
	Message    string         `json:"message"`
	Path       []any          `json:"path,omitempty"`
	Extensions map[string]any `json:"extensions,omitempty"`
}

// GraphQLError is returned when the backend answers with a non-empty errors
// array.
type GraphQLError struct {
	Errors []ResponseError
}

func (e *GraphQLError) Error() string {
	if len(e.Errors) == 0 {
		return "graphql: unknown error"
	}
	if len(e.Errors) == 1 {
		return e.Errors[0].Message
	}
	return fmt.Sprintf("%s (and %d more errors)", e.Errors[0].Message, len(e.Errors)-1)
}
