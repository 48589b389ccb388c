// Package n8n provides a Go SDK for the n8n workflow automation REST API.
//
// n8n is a workflow automation platform where automations are modeled as
// graphs of nodes and connections. This SDK covers the public v1 API:
// workflow CRUD, activation, execution, and execution history.
//
// # Quick Start
//
// Create a client and list workflows:
//
//	package main
//
//	import (
//	    "context"
//	    "fmt"
//	    "log"
//
//	    "github.com/n8nsdk/n8n-go"
//	)
//
//	func main() {
//	    client, err := n8n.NewClient(n8n.Config{
//	        BaseURL: "https://n8n.example.com/api/v1",
//	        APIKey:  "my-api-key",
//	    })
//	    if err != nil {
//	        log.Fatal(err)
//	    }
//
//	    if err := client.CheckConnectivity(context.Background()); err != nil {
//	        log.Fatal(err)
//	    }
//
//	    workflows, err := client.ListWorkflows(context.Background())
//	    if err != nil {
//	        log.Fatal(err)
//	    }
//	    for _, wf := range workflows {
//	        fmt.Printf("%s  %s (active=%v)\n", wf.ID, wf.Name, wf.Active)
//	    }
//	}
//
// # Configuration
//
// The client is configured once at construction and is immutable afterwards.
// Configuration can also be loaded from the environment:
//
//	cfg, err := n8n.FromEnv() // N8N_API_URL, N8N_API_KEY, N8N_DEBUG
//	if err != nil {
//	    log.Fatal(err)
//	}
//	client, err := n8n.NewClient(cfg)
//
// Setting Debug to true installs request/response tracing hooks on the
// transport; with Debug false no hooks are installed. Either way the
// behavior is fixed once NewClient returns.
//
// # Error Handling
//
// The SDK distinguishes three failure origins:
//
//   - [*APIError]: the server responded with a non-success HTTP status
//   - [*ConnectivityError]: the health probe received a status other than 200
//   - transport errors (DNS, TCP, timeout): propagated unchanged
//
// Use errors.As to branch on the failure kind:
//
//	wf, err := client.GetWorkflow(ctx, id)
//	if err != nil {
//	    var apiErr *n8n.APIError
//	    if errors.As(err, &apiErr) {
//	        // remote reachable but returned an error
//	    } else {
//	        // remote unreachable (or response unreadable)
//	    }
//	}
//
// # Thread Safety
//
// A [Client] is safe for concurrent use by multiple goroutines. Each method
// call is an independent HTTP request; the only shared state is the
// configuration and transport fixed at construction.
package n8n
