package graphql

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/angeloszaimis/storeconfig/internal/transport"
)

const DefaultStoreViewCode = "default"

// Client runs queries against the backend named by its EndpointSource.
type Client struct {
	endpoint      EndpointSource
	storeViewCode string
	sender        Sender
	selector      *transport.Selector
	observer      Observer
	logger        *slog.Logger
}

type Option func(*Client)

// WithStoreViewCode sets the value of the Store header.
func WithStoreViewCode(code string) Option {
	return func(c *Client) {
		if code != "" {
			c.storeViewCode = code
		}
	}
}

func WithSender(s Sender) Option {
	return func(c *Client) {
		c.sender = s
	}
}

func WithSelector(s *transport.Selector) Option {
	return func(c *Client) {
		c.selector = s
	}
}

func WithObserver(o Observer) Option {
	return func(c *Client) {
		c.observer = o
	}
}

func WithLogger(l *slog.Logger) Option {
	return func(c *Client) {
		c.logger = l
	}
}

func NewClient(endpoint EndpointSource, opts ...Option) *Client {
	c := &Client{
		endpoint:      endpoint,
		storeViewCode: DefaultStoreViewCode,
		sender:        NewHTTPSender(),
		selector:      transport.NewSelector(nil, nil),
		observer:      nopObserver{},
		logger:        slog.New(slog.DiscardHandler),
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

// StoreConfig returns data.storeConfig, or nil when the backend left it out.
func (c *Client) StoreConfig(ctx context.Context) (*StoreConfig, error) {
	var data struct {
		StoreConfig *StoreConfig `json:"storeConfig"`
	}

	ok, err := c.fetchInto(ctx, OpStoreConfig, storeConfigQuery, &data)
	if err != nil || !ok {
		return nil, err
	}

	return data.StoreConfig, nil
}

// MediaURL returns storeConfig.secure_base_media_url, or "" when absent.
func (c *Client) MediaURL(ctx context.Context) (string, error) {
	var data struct {
		StoreConfig *struct {
			SecureBaseMediaURL string `json:"secure_base_media_url"`
		} `json:"storeConfig"`
	}

	ok, err := c.fetchInto(ctx, OpMediaURL, mediaURLQuery, &data)
	if err != nil || !ok || data.StoreConfig == nil {
		return "", err
	}

	return data.StoreConfig.SecureBaseMediaURL, nil
}

// AvailableStores returns data.availableStores, or nil when absent.
func (c *Client) AvailableStores(ctx context.Context) (StoreList, error) {
	var data struct {
		AvailableStores StoreList `json:"availableStores"`
	}

	ok, err := c.fetchInto(ctx, OpAvailableStores, availableStoresQuery, &data)
	if err != nil || !ok {
		return nil, err
	}

	return data.AvailableStores, nil
}

// SchemaTypes returns the introspection data unmodified. The result is nil
// only when the response carried no data at all.
func (c *Client) SchemaTypes(ctx context.Context) (*SchemaData, error) {
	return c.schema(ctx, OpSchemaTypes)
}

// UnionAndInterfaceTypes returns the introspection data with types reduced to
// those whose possibleTypes is truthy. It returns nil when __schema is
// missing.
func (c *Client) UnionAndInterfaceTypes(ctx context.Context) (*SchemaData, error) {
	data, err := c.schema(ctx, OpUnionTypes)
	if err != nil || data == nil || data.Schema == nil {
		return nil, err
	}

	kept := make([]Type, 0, len(data.Schema.Types))
	for _, t := range data.Schema.Types {
		if t.HasPossibleTypes() {
			kept = append(kept, t)
		}
	}
	data.Schema.Types = kept

	return data, nil
}

// PossibleTypes maps every union and interface to the names of its
// implementations.
func (c *Client) PossibleTypes(ctx context.Context) (map[string][]string, error) {
	data, err := c.UnionAndInterfaceTypes(ctx)
	if err != nil || data == nil {
		return nil, err
	}

	out := make(map[string][]string, len(data.Schema.Types))
	for _, t := range data.Schema.Types {
		names, err := t.PossibleTypeNames()
		if err != nil {
			return nil, &MalformedResponseError{Err: err}
		}
		out[t.Name] = names
	}

	return out, nil
}

// Query runs an arbitrary query and returns the raw data object. The result
// is nil when the response had no data.
func (c *Client) Query(ctx context.Context, query string, variables map[string]any) (json.RawMessage, error) {
	return c.fetch(ctx, "query", query, variables)
}

func (c *Client) schema(ctx context.Context, op string) (*SchemaData, error) {
	var data SchemaData

	ok, err := c.fetchInto(ctx, op, schemaTypesQuery, &data)
	if err != nil || !ok {
		return nil, err
	}

	return &data, nil
}

func (c *Client) fetchInto(ctx context.Context, op, query string, out any) (bool, error) {
	data, err := c.fetch(ctx, op, query, nil)
	if err != nil || data == nil {
		return false, err
	}

	if err := json.Unmarshal(data, out); err != nil {
		return false, &MalformedResponseError{Err: err}
	}

	return true, nil
}

type envelope struct {
	Data   json.RawMessage `json:"data"`
	Errors []ResponseError `json:"errors"`
}

func (c *Client) fetch(ctx context.Context, op, query string, variables map[string]any) (json.RawMessage, error) {
	target, err := ResolveGraphQLURL(c.endpoint.BackendURL())
	if err != nil {
		return nil, err
	}

	strat, err := c.selector.Select(target)
	if err != nil {
		return nil, &EndpointError{URL: target.String(), Err: err}
	}

	agent, err := strat.Agent()
	if err != nil {
		return nil, &TransportError{Err: err}
	}
	if agent != nil {
		defer agent.CloseIdleConnections()
	}

	req, err := newRequest(target.String(), c.storeViewCode, query, variables, agent)
	if err != nil {
		return nil, err
	}

	c.logger.Debug("Sending GraphQL query",
		slog.String("operation", op),
		slog.String("url", req.URL),
		slog.String("store", c.storeViewCode),
		slog.Bool("secure", agent != nil))

	c.observer.QuerySent(op)
	start := time.Now()

	resp, err := c.sender.Send(ctx, req)
	if err != nil {
		c.observer.QueryFailed(op, time.Since(start), err)
		return nil, &TransportError{Err: err}
	}

	env, err := decodeEnvelope(resp)
	duration := time.Since(start)
	if err != nil {
		c.observer.QueryFailed(op, duration, err)
		return nil, err
	}

	c.logger.Debug("Received GraphQL response",
		slog.String("operation", op),
		slog.Int("status", resp.StatusCode),
		slog.Duration("duration", duration))

	if len(env.Errors) > 0 {
		gqlErr := &GraphQLError{Errors: env.Errors}
		c.observer.QueryFailed(op, duration, gqlErr)
		return nil, gqlErr
	}

	c.observer.QueryCompleted(op, duration, resp.StatusCode)

	data := bytes.TrimSpace(env.Data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		return nil, nil
	}

	return data, nil
}

func decodeEnvelope(resp *http.Response) (*envelope, error) {
	if resp == nil || resp.Body == nil {
		return nil, &MalformedResponseError{Err: ErrEmptyResponse}
	}
	defer resp.Body.Close()

	body, err := decodedBody(resp.Header.Get("Content-Encoding"), resp.Body)
	if err != nil {
		return nil, &MalformedResponseError{Err: err}
	}

	raw, err := io.ReadAll(body)
	if err != nil {
		return nil, &TransportError{Err: err}
	}

	var env envelope
	if err := json.Unmarshal(raw, &env); err != nil {
		return nil, &MalformedResponseError{Err: err}
	}

	return &env, nil
}
