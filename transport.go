package n8n

import (
	"net/http"
	"net/http/httputil"

	"github.com/rs/zerolog"
)

// apiKeyHeader is the authentication header the n8n API expects.
const apiKeyHeader = "X-N8N-API-KEY"

// headerTransport wraps an http.RoundTripper to stamp the API key and
// Accept headers onto every outgoing request.
type headerTransport struct {
	base   http.RoundTripper
	apiKey string
}

func (t *headerTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	// Clone so concurrent callers never observe a mutated request.
	cloned := req.Clone(req.Context())
	cloned.Header.Set(apiKeyHeader, t.apiKey)
	cloned.Header.Set("Accept", "application/json")
	return t.base.RoundTrip(cloned)
}

// requestHook observes an outgoing request before it is sent.
type requestHook func(*http.Request)

// responseHook observes a received response before it is returned to the
// caller. Hooks must not consume the body.
type responseHook func(*http.Response)

// hookTransport invokes registered hooks around the base round trip. The
// hook slices are populated during NewClient and never change afterwards.
type hookTransport struct {
	base      http.RoundTripper
	reqHooks  []requestHook
	respHooks []responseHook
}

func (t *hookTransport) onRequest(h requestHook)   { t.reqHooks = append(t.reqHooks, h) }
func (t *hookTransport) onResponse(h responseHook) { t.respHooks = append(t.respHooks, h) }

func (t *hookTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	for _, h := range t.reqHooks {
		h(req)
	}
	resp, err := t.base.RoundTrip(req)
	if err != nil {
		return nil, err
	}
	for _, h := range t.respHooks {
		h(resp)
	}
	return resp, nil
}

// dumpRequestHook returns a hook that logs the full outgoing request.
// Dumps include headers and bodies, so this is for debugging only.
func dumpRequestHook(logger zerolog.Logger) requestHook {
	return func(req *http.Request) {
		if dump, err := httputil.DumpRequestOut(req, true); err == nil {
			logger.Debug().
				Str("method", req.Method).
				Str("url", req.URL.String()).
				Str("request_dump", string(dump)).
				Msg("HTTP request")
		}
	}
}

// dumpResponseHook returns a hook that logs the full received response.
func dumpResponseHook(logger zerolog.Logger) responseHook {
	return func(resp *http.Response) {
		if dump, err := httputil.DumpResponse(resp, true); err == nil {
			logger.Debug().
				Int("status_code", resp.StatusCode).
				Str("response_dump", string(dump)).
				Msg("HTTP response")
		}
	}
}
