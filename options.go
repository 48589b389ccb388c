package n8n

import (
	"net/http"

	"github.com/rs/zerolog"
)

// Option configures a Client during construction in [NewClient].
//
// Options run before the header and hook transports are installed, so a
// custom HTTP client's transport ends up underneath both wrappers. The
// fixed 10 second request timeout is applied after options and cannot be
// overridden.
type Option func(*Client)

// WithHTTPClient sets a custom HTTP client. Its transport is kept as the
// base of the client's transport chain.
func WithHTTPClient(httpClient *http.Client) Option {
	return func(c *Client) {
		c.httpClient = httpClient
	}
}

// WithLogger sets the logger used by the debug tracing hooks. The default
// is zerolog's global logger.
func WithLogger(logger zerolog.Logger) Option {
	return func(c *Client) {
		c.logger = logger
	}
}
