package n8n

import (
	"context"
	"net/http"
)

// ListWorkflows returns all workflows in the order the server reports
// them. A missing data field in the response is treated as an empty list,
// never nil.
func (c *Client) ListWorkflows(ctx context.Context) ([]Workflow, error) {
	var envelope listResponse[Workflow]
	if err := c.do(ctx, http.MethodGet, "/workflows", nil, &envelope); err != nil {
		return nil, err
	}
	return envelope.items(), nil
}

// GetWorkflow retrieves a single workflow by ID.
func (c *Client) GetWorkflow(ctx context.Context, id string) (*Workflow, error) {
	var wf Workflow
	if err := c.do(ctx, http.MethodGet, "/workflows/"+id, nil, &wf); err != nil {
		return nil, err
	}
	return &wf, nil
}

// CreateWorkflow creates a new workflow. The given workflow is sent
// verbatim as the request body; the server's view of the created workflow
// (with its assigned ID) is returned.
func (c *Client) CreateWorkflow(ctx context.Context, wf *Workflow) (*Workflow, error) {
	var created Workflow
	if err := c.do(ctx, http.MethodPost, "/workflows", wf, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

// UpdateWorkflow replaces the workflow identified by id with wf.
func (c *Client) UpdateWorkflow(ctx context.Context, id string, wf *Workflow) (*Workflow, error) {
	var updated Workflow
	if err := c.do(ctx, http.MethodPut, "/workflows/"+id, wf, &updated); err != nil {
		return nil, err
	}
	return &updated, nil
}

// DeleteWorkflow deletes a workflow. The server confirms by returning the
// deleted workflow, which is passed through to the caller.
func (c *Client) DeleteWorkflow(ctx context.Context, id string) (*Workflow, error) {
	var deleted Workflow
	if err := c.do(ctx, http.MethodDelete, "/workflows/"+id, nil, &deleted); err != nil {
		return nil, err
	}
	return &deleted, nil
}

// ActivateWorkflow turns the workflow's triggers on. The returned workflow
// reflects the new state (Active=true).
func (c *Client) ActivateWorkflow(ctx context.Context, id string) (*Workflow, error) {
	var wf Workflow
	if err := c.do(ctx, http.MethodPost, "/workflows/"+id+"/activate", nil, &wf); err != nil {
		return nil, err
	}
	return &wf, nil
}

// DeactivateWorkflow turns the workflow's triggers off. The returned
// workflow reflects the new state (Active=false).
func (c *Client) DeactivateWorkflow(ctx context.Context, id string) (*Workflow, error) {
	var wf Workflow
	if err := c.do(ctx, http.MethodPost, "/workflows/"+id+"/deactivate", nil, &wf); err != nil {
		return nil, err
	}
	return &wf, nil
}

// ExecuteWorkflow triggers a manual execution of the workflow with the
// given input payload. The input is sent verbatim as the request body.
func (c *Client) ExecuteWorkflow(ctx context.Context, id string, input any) (*ExecutionResult, error) {
	var result ExecutionResult
	if err := c.do(ctx, http.MethodPost, "/workflows/"+id+"/execute", input, &result); err != nil {
		return nil, err
	}
	return &result, nil
}
