package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func getHealth(llm *stubLLM, lister *stubLister) *httptest.ResponseRecorder {
	r := newTestRouter(llm, lister)
	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestHealthHealthy(t *testing.T) {
	w := getHealth(&stubLLM{}, &stubLister{count: 4})

	require.Equal(t, http.StatusOK, w.Code)
	var resp HealthResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))

	assert.Equal(t, "healthy", resp.Status)
	assert.Equal(t, "llama3.2:latest", resp.Model)
	assert.Equal(t, "http://localhost:11434", resp.OllamaURL)
	assert.False(t, resp.UsingAPIKey)
	assert.Equal(t, 4, resp.AvailableModels)
}

func TestHealthUnhealthy(t *testing.T) {
	w := getHealth(&stubLLM{}, &stubLister{err: errors.New("connection refused")})

	require.Equal(t, http.StatusServiceUnavailable, w.Code)

	var resp map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "unhealthy", resp["status"])
	assert.Contains(t, resp["error"], "connection refused")
}
