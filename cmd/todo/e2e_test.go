package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/pkamnerd/linkdesk/pkg/adapters/handler"
	"github.com/pkamnerd/linkdesk/pkg/adapters/repository/sqlite"
	"github.com/pkamnerd/linkdesk/pkg/core/services"
)

type taskDTO struct {
	ID          int64   `json:"id"`
	Title       string  `json:"title"`
	Description *string `json:"description"`
	Completed   bool    `json:"completed"`
}

func TestTodoService(t *testing.T) {
	repo, err := sqlite.NewTaskRepository("file:todo_e2e?mode=memory&cache=shared")
	require.NoError(t, err)

	service := services.NewTaskService(repo)
	mux := handler.NewTodoRouter(service, zap.NewNop())

	server := httptest.NewServer(mux)
	defer server.Close()
	client := server.Client()

	do := func(method, path string, payload any) *http.Response {
		t.Helper()
		var body bytes.Buffer
		if payload != nil {
			require.NoError(t, json.NewEncoder(&body).Encode(payload))
		}
		req, err := http.NewRequest(method, server.URL+path, &body)
		require.NoError(t, err)
		resp, err := client.Do(req)
		require.NoError(t, err)
		return resp
	}

	// Liveness
	resp := do(http.MethodGet, "/", nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	// Create
	resp = do(http.MethodPost, "/items", map[string]any{"title": "buy milk", "description": "2 liters"})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	var created taskDTO
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&created))
	assert.NotZero(t, created.ID)
	assert.Equal(t, "buy milk", created.Title)
	assert.False(t, created.Completed)

	// Missing title is rejected
	resp = do(http.MethodPost, "/items", map[string]any{"description": "no title"})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	// A task without a description reads back null, not ""
	resp = do(http.MethodPost, "/items", map[string]any{"title": "no notes"})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	var raw map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&raw))
	val, present := raw["description"]
	assert.True(t, present)
	assert.Nil(t, val)
	bareID := int64(raw["id"].(float64))
	resp = do(http.MethodDelete, fmt.Sprintf("/items/%d", bareID), nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	// List
	resp = do(http.MethodGet, "/items", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var items []taskDTO
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&items))
	assert.Len(t, items, 1)

	// Get
	resp = do(http.MethodGet, "/items/1", nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	resp = do(http.MethodGet, "/items/99", nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	resp = do(http.MethodGet, "/items/abc", nil)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	// Partial update: only completed changes
	resp = do(http.MethodPut, "/items/1", map[string]any{"completed": true})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var updated taskDTO
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&updated))
	assert.True(t, updated.Completed)
	assert.Equal(t, "buy milk", updated.Title)
	require.NotNil(t, updated.Description)
	assert.Equal(t, "2 liters", *updated.Description)

	resp = do(http.MethodPut, "/items/99", map[string]any{"completed": true})
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)

	// Delete
	resp = do(http.MethodDelete, "/items/1", nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	resp = do(http.MethodDelete, "/items/1", nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	resp = do(http.MethodGet, "/items/1", nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}
