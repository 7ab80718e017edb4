package graphql_test

import (
	"context"
	"io"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/angeloszaimis/storeconfig/internal/graphql"
)

// recordingSender captures every request and answers from a queue.
type recordingSender struct {
	mutex    sync.Mutex
	requests []*graphql.Request
	replies  []func() (*http.Response, error)
}

func (s *recordingSender) Send(_ context.Context, req *graphql.Request) (*http.Response, error) {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	s.requests = append(s.requests, req)
	if len(s.replies) == 0 {
		return jsonResponse(`{"data":null}`), nil
	}

	next := s.replies[0]
	s.replies = s.replies[1:]
	return next()
}

func (s *recordingSender) replyJSON(body string) {
	s.replies = append(s.replies, func() (*http.Response, error) {
		return jsonResponse(body), nil
	})
}

func (s *recordingSender) replyError(err error) {
	s.replies = append(s.replies, func() (*http.Response, error) {
		return nil, err
	})
}

func (s *recordingSender) replyResponse(resp *http.Response) {
	s.replies = append(s.replies, func() (*http.Response, error) {
		return resp, nil
	})
}

func (s *recordingSender) lastRequest() *graphql.Request {
	s.mutex.Lock()
	defer s.mutex.Unlock()
	return s.requests[len(s.requests)-1]
}

func jsonResponse(body string) *http.Response {
	return &http.Response{
		StatusCode: http.StatusOK,
		Header:     http.Header{"Content-Type": []string{"application/json"}},
		Body:       io.NopCloser(strings.NewReader(body)),
	}
}

// mutableEndpoint lets a test change the backend URL between calls.
type mutableEndpoint struct {
	mutex sync.Mutex
	url   string
}

func (e *mutableEndpoint) BackendURL() string {
	e.mutex.Lock()
	defer e.mutex.Unlock()
	return e.url
}

func (e *mutableEndpoint) set(url string) {
	e.mutex.Lock()
	e.url = url
	e.mutex.Unlock()
}

type observedQuery struct {
	op     string
	kind   string
	status int
	err    error
}

type recordingObserver struct {
	mutex  sync.Mutex
	events []observedQuery
}

func (o *recordingObserver) QuerySent(op string) {
	o.add(observedQuery{op: op, kind: "sent"})
}

func (o *recordingObserver) QueryCompleted(op string, _ time.Duration, status int) {
	o.add(observedQuery{op: op, kind: "completed", status: status})
}

func (o *recordingObserver) QueryFailed(op string, _ time.Duration, err error) {
	o.add(observedQuery{op: op, kind: "failed", err: err})
}

func (o *recordingObserver) add(e observedQuery) {
	o.mutex.Lock()
	o.events = append(o.events, e)
	o.mutex.Unlock()
}

func (o *recordingObserver) kinds() []string {
	o.mutex.Lock()
	defer o.mutex.Unlock()

	out := make([]string, 0, len(o.events))
	for _, e := range o.events {
		out = append(out, e.kind)
	}
	return out
}
