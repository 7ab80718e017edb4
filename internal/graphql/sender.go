package graphql

import (
	"context"
	"net/http"
	"strings"
)

// Sender performs a Request. Implementations must not retry.
type Sender interface {
	Send(ctx context.Context, req *Request) (*http.Response, error)
}

// HTTPSender sends requests over net/http. Requests with an Agent use it as
// the round tripper, the rest go through the plain transport.
type HTTPSender struct {
	plain http.RoundTripper
}

func NewHTTPSender() *HTTPSender {
	return &HTTPSender{plain: http.DefaultTransport}
}

func (s *HTTPSender) Send(ctx context.Context, req *Request) (*http.Response, error) {
	httpReq, err := http.NewRequestWithContext(ctx, req.Method, req.URL, strings.NewReader(req.Body))
	if err != nil {
		return nil, err
	}
	httpReq.Header = req.Header.Clone()

	var rt http.RoundTripper = s.plain
	if req.Agent != nil {
		rt = req.Agent
	}

	client := &http.Client{Transport: rt}

	return client.Do(httpReq)
}
