package n8n

import (
	"context"
	"net/http"
)

// ListExecutions returns past executions in the order the server reports
// them. A missing data field in the response is treated as an empty list,
// never nil.
func (c *Client) ListExecutions(ctx context.Context) ([]Execution, error) {
	var envelope listResponse[Execution]
	if err := c.do(ctx, http.MethodGet, "/executions", nil, &envelope); err != nil {
		return nil, err
	}
	return envelope.items(), nil
}

// GetExecution retrieves a single execution by ID.
func (c *Client) GetExecution(ctx context.Context, id string) (*Execution, error) {
	var ex Execution
	if err := c.do(ctx, http.MethodGet, "/executions/"+id, nil, &ex); err != nil {
		return nil, err
	}
	return &ex, nil
}

// DeleteExecution deletes an execution record. The server confirms by
// returning the deleted execution, which is passed through to the caller.
func (c *Client) DeleteExecution(ctx context.Context, id string) (*Execution, error) {
	var deleted Execution
	if err := c.do(ctx, http.MethodDelete, "/executions/"+id, nil, &deleted); err != nil {
		return nil, err
	}
	return &deleted, nil
}
