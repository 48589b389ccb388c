package n8n_test

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	n8n "github.com/n8nsdk/n8n-go"
)

// TestListExecutions_Success tests listing past executions.
func TestListExecutions_Success(t *testing.T) {
	// Arrange
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/executions", r.URL.Path)
		assert.Equal(t, http.MethodGet, r.Method)

		resp := map[string]interface{}{
			"data": []map[string]interface{}{
				{
					"id":         "exec-001",
					"workflowId": "7",
					"status":     "success",
					"finished":   true,
					"mode":       "trigger",
					"startedAt":  "2024-01-15T10:30:00Z",
					"stoppedAt":  "2024-01-15T10:30:05Z",
				},
				{
					"id":         "exec-002",
					"workflowId": "7",
					"status":     "running",
					"finished":   false,
					"mode":       "manual",
					"startedAt":  "2024-01-15T10:35:00Z",
				},
			},
		}
		w.Header().Set("Content-Type", "application/json")
		mustEncode(w, resp)
	}))
	defer server.Close()

	// Act
	client := newTestClient(t, server.URL)
	executions, err := client.ListExecutions(context.Background())

	// Assert
	require.NoError(t, err)
	require.Len(t, executions, 2)

	assert.Equal(t, "exec-001", executions[0].ID)
	assert.Equal(t, "7", executions[0].WorkflowID)
	assert.Equal(t, "success", executions[0].Status)
	assert.True(t, executions[0].IsFinished())

	assert.Equal(t, "exec-002", executions[1].ID)
	assert.Equal(t, "running", executions[1].Status)
	assert.False(t, executions[1].IsFinished())
}

// TestListExecutions_Empty tests that a response without a data field
// yields an empty, non-nil list.
func TestListExecutions_Empty(t *testing.T) {
	// Arrange
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = io.WriteString(w, `{}`)
	}))
	defer server.Close()

	// Act
	client := newTestClient(t, server.URL)
	executions, err := client.ListExecutions(context.Background())

	// Assert
	require.NoError(t, err)
	require.NotNil(t, executions)
	assert.Empty(t, executions)
}

// TestGetExecution_Success tests retrieving a single execution.
func TestGetExecution_Success(t *testing.T) {
	// Arrange
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/executions/exec-001", r.URL.Path)
		assert.Equal(t, http.MethodGet, r.Method)

		resp := map[string]interface{}{
			"id":         "exec-001",
			"workflowId": "7",
			"status":     "error",
			"finished":   true,
			"mode":       "webhook",
			"startedAt":  "2024-01-15T10:30:00Z",
			"stoppedAt":  "2024-01-15T10:30:09Z",
		}
		w.Header().Set("Content-Type", "application/json")
		mustEncode(w, resp)
	}))
	defer server.Close()

	// Act
	client := newTestClient(t, server.URL)
	ex, err := client.GetExecution(context.Background(), "exec-001")

	// Assert
	require.NoError(t, err)
	assert.Equal(t, "exec-001", ex.ID)
	assert.Equal(t, "error", ex.Status)
	assert.Equal(t, "webhook", ex.Mode)
	assert.True(t, ex.IsFinished())
	assert.False(t, ex.StartedAt.IsZero())
	assert.False(t, ex.StoppedAt.IsZero())
}

// TestGetExecution_NotFound tests that a missing execution surfaces as an
// APIError.
func TestGetExecution_NotFound(t *testing.T) {
	// Arrange
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		mustEncode(w, map[string]string{"message": "execution not found"})
	}))
	defer server.Close()

	// Act
	client := newTestClient(t, server.URL)
	ex, err := client.GetExecution(context.Background(), "missing")

	// Assert
	require.Error(t, err)
	assert.Nil(t, ex)

	var apiErr *n8n.APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusNotFound, apiErr.StatusCode)
}

// TestDeleteExecution_Success tests that DELETE returns the server's
// confirmation payload unchanged.
func TestDeleteExecution_Success(t *testing.T) {
	// Arrange
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/executions/exec-001", r.URL.Path)
		assert.Equal(t, http.MethodDelete, r.Method)

		resp := map[string]interface{}{
			"id":         "exec-001",
			"workflowId": "7",
			"status":     "success",
			"finished":   true,
		}
		w.Header().Set("Content-Type", "application/json")
		mustEncode(w, resp)
	}))
	defer server.Close()

	// Act
	client := newTestClient(t, server.URL)
	deleted, err := client.DeleteExecution(context.Background(), "exec-001")

	// Assert
	require.NoError(t, err)
	assert.Equal(t, "exec-001", deleted.ID)
	assert.Equal(t, "7", deleted.WorkflowID)
	assert.True(t, deleted.Finished)
}
