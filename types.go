package n8n

import "github.com/go-openapi/strfmt"

// Workflow is an automation graph on the n8n server: a named set of nodes
// wired together by connections.
//
// Use [Client.ListWorkflows] or [Client.GetWorkflow] to retrieve workflows:
//
//	wf, err := client.GetWorkflow(ctx, "42")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Printf("%s has %d nodes\n", wf.Name, len(wf.Nodes))
type Workflow struct {
	// ID identifies the workflow on the server. Empty for workflows that
	// have not been created yet.
	ID string `json:"id,omitempty"`

	// Name is the human-readable workflow name.
	Name string `json:"name"`

	// Active reports whether the workflow's triggers are live.
	Active bool `json:"active"`

	// Nodes lists the workflow's nodes in server order.
	Nodes []Node `json:"nodes,omitempty"`

	// Connections wires node outputs to node inputs, keyed by the source
	// node name.
	Connections map[string]NodeConnections `json:"connections,omitempty"`

	// Settings carries workflow-level execution settings verbatim.
	Settings map[string]any `json:"settings,omitempty"`

	// CreatedAt and UpdatedAt are server-assigned; leave them nil when
	// creating or updating a workflow.
	CreatedAt *strfmt.DateTime `json:"createdAt,omitempty"`
	UpdatedAt *strfmt.DateTime `json:"updatedAt,omitempty"`
}

// Node is a single step in a workflow graph.
type Node struct {
	// ID identifies the node within its workflow.
	ID string `json:"id,omitempty"`

	// Name is the node's display name, referenced by Connections keys.
	Name string `json:"name"`

	// Type is the node type identifier.
	// Example: "n8n-nodes-base.httpRequest".
	Type string `json:"type"`

	// TypeVersion selects the node type revision.
	TypeVersion float64 `json:"typeVersion,omitempty"`

	// Position is the node's [x, y] placement on the editor canvas.
	Position []float64 `json:"position,omitempty"`

	// Parameters holds the node configuration verbatim.
	Parameters map[string]any `json:"parameters,omitempty"`
}

// NodeConnections maps a connection type (usually "main") to the outputs
// of a node; each output fans out to zero or more targets.
type NodeConnections map[string][][]Connection

// Connection points one node output at another node's input.
type Connection struct {
	// Node is the target node's name.
	Node string `json:"node"`

	// Type is the target input's connection type, usually "main".
	Type string `json:"type"`

	// Index selects which input of the target node to attach to.
	Index int `json:"index"`
}

// Execution is one run of a workflow, with its own status and timestamps.
// WorkflowID is a lookup reference only; the execution record survives the
// workflow's deletion.
type Execution struct {
	ID         string `json:"id"`
	WorkflowID string `json:"workflowId"`

	// Status is the execution state as reported by the server.
	// Values include "success", "error", "running", "waiting".
	Status string `json:"status,omitempty"`

	// Finished reports whether the execution has completed.
	Finished bool `json:"finished"`

	// Mode records how the execution was started, e.g. "manual",
	// "trigger", "webhook".
	Mode string `json:"mode,omitempty"`

	StartedAt strfmt.DateTime `json:"startedAt,omitempty"`
	StoppedAt strfmt.DateTime `json:"stoppedAt,omitempty"`
}

// IsFinished returns true once the execution has stopped, whatever the
// outcome.
func (e *Execution) IsFinished() bool {
	return e.Finished
}

// ExecutionResult acknowledges a manually triggered workflow execution.
type ExecutionResult struct {
	// ExecutionID identifies the execution that was started. Pass it to
	// [Client.GetExecution] to follow progress.
	ExecutionID string `json:"executionId"`

	// Success reports whether the server accepted the trigger.
	Success bool `json:"success"`
}

// IsSuccess returns true if the server accepted the execution request.
func (r *ExecutionResult) IsSuccess() bool {
	return r.Success
}

// listResponse is the collection envelope the API wraps list results in.
type listResponse[T any] struct {
	Data []T `json:"data"`
}

// items returns the payload, substituting an empty slice when the server
// omitted the data field. List results are never nil.
func (l listResponse[T]) items() []T {
	if l.Data == nil {
		return []T{}
	}
	return l.Data
}
