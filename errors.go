package n8n

import "fmt"

// APIError is returned when the server responds with a non-success HTTP
// status. It always means a response was received; failures that occur
// before or while obtaining a response propagate as the underlying
// transport error instead.
type APIError struct {
	// StatusCode is the HTTP status the server answered with.
	StatusCode int

	// Message is the server's error payload, truncated to a safe size.
	Message string
}

func (e *APIError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("n8n: API error: status %d", e.StatusCode)
	}
	return fmt.Sprintf("n8n: API error: status %d: %s", e.StatusCode, e.Message)
}

// ConnectivityError is returned by [Client.CheckConnectivity] when the
// health probe reaches the server but receives a status other than 200.
type ConnectivityError struct {
	StatusCode int
	Message    string
}

func (e *ConnectivityError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("n8n: connectivity check failed: status %d", e.StatusCode)
	}
	return fmt.Sprintf("n8n: connectivity check failed: status %d: %s", e.StatusCode, e.Message)
}
