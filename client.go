package n8n

import (
	"context"
	"net/http"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// requestTimeout bounds every request issued by the client, including
// connection setup and reading the response body. There is no per-call
// override; use context deadlines for tighter bounds.
const requestTimeout = 10 * time.Second

// Client is the n8n API client.
type Client struct {
	baseURL    string
	httpClient *http.Client
	logger     zerolog.Logger
	hooks      *hookTransport
}

// NewClient creates a new n8n client from cfg.
//
// The returned client holds an HTTP client with a 10 second timeout whose
// transport injects the X-N8N-API-KEY and Accept headers on every request.
// When cfg.Debug is true, one request hook and one response hook are
// registered to trace HTTP traffic; construction itself never touches the
// network.
func NewClient(cfg Config, opts ...Option) (*Client, error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}

	c := &Client{
		baseURL:    cfg.BaseURL,
		httpClient: &http.Client{},
		logger:     log.Logger,
	}

	for _, opt := range opts {
		opt(c)
	}

	c.httpClient.Timeout = requestTimeout

	base := c.httpClient.Transport
	if base == nil {
		base = http.DefaultTransport
	}
	c.hooks = &hookTransport{base: base}
	if cfg.Debug {
		c.hooks.onRequest(dumpRequestHook(c.logger))
		c.hooks.onResponse(dumpResponseHook(c.logger))
	}
	c.httpClient.Transport = &headerTransport{
		base:   c.hooks,
		apiKey: cfg.APIKey,
	}

	return c, nil
}

// CheckConnectivity probes the API by requesting the workflow list.
//
// It resolves only when the server answers with status 200 exactly. Any
// other status yields a [*ConnectivityError]; a transport failure (the
// request never completed) propagates unchanged. The response payload is
// discarded.
func (c *Client) CheckConnectivity(ctx context.Context) error {
	resp, err := c.send(ctx, http.MethodGet, "/workflows", nil)
	if err != nil {
		return err
	}
	defer closeBody(resp)

	if resp.StatusCode != http.StatusOK {
		return &ConnectivityError{
			StatusCode: resp.StatusCode,
			Message:    readErrorMessage(resp),
		}
	}
	return nil
}
