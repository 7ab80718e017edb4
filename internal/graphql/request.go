package graphql

import (
	"encoding/json"
	"net/http"
)

const (
	HeaderContentType    = "Content-Type"
	HeaderAcceptEncoding = "Accept-Encoding"
	HeaderStore          = "Store"

	acceptEncoding = "gzip, deflate, br"
	graphqlPath    = "graphql"
)

// Request is one outgoing GraphQL call. Agent is nil for plain http
// endpoints and set for https ones.
type Request struct {
	Method string
	URL    string
	Header http.Header
	Body   string
	Agent  *http.Transport
}

type queryBody struct {
	Query     string         `json:"query"`
	Variables map[string]any `json:"variables,omitempty"`
}

func newRequest(target, storeViewCode, query string, variables map[string]any, agent *http.Transport) (*Request, error) {
	body, err := json.Marshal(queryBody{Query: query, Variables: variables})
	if err != nil {
		return nil, err
	}

	header := make(http.Header)
	header.Set(HeaderContentType, "application/json")
	header.Set(HeaderAcceptEncoding, acceptEncoding)
	header.Set(HeaderStore, storeViewCode)

	return &Request{
		Method: http.MethodPost,
		URL:    target,
		Header: header,
		Body:   string(body),
		Agent:  agent,
	}, nil
}
