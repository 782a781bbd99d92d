package transport

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/purrstack/catbase/internal/catdb"
	"github.com/purrstack/catbase/internal/engine"
)

func newTestHTTPServer(t *testing.T) *HTTPServer {
	t.Helper()
	store := catdb.NewInMemoryStore(catdb.SampleCats()...)
	eng, err := engine.New(
		engine.ServerInfo{Name: "cat-database-server", Version: "1.0.0", Instructions: "test"},
		engine.CatTools(store),
	)
	require.NoError(t, err)
	return NewHTTPServer(eng, nil)
}

func doJSON(t *testing.T, s *HTTPServer, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var reader *bytes.Reader
	if body != nil {
		data, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(data)
	} else {
		reader = bytes.NewReader(nil)
	}
	req := httptest.NewRequest(method, path, reader)
	rr := httptest.NewRecorder()
	s.Router().ServeHTTP(rr, req)
	return rr
}

func TestHealth(t *testing.T) {
	rr := doJSON(t, newTestHTTPServer(t), http.MethodGet, "/health", nil)
	assert.Equal(t, http.StatusOK, rr.Code)
}

func TestInitialize(t *testing.T) {
	rr := doJSON(t, newTestHTTPServer(t), http.MethodGet, "/mcp/initialize", nil)
	require.Equal(t, http.StatusOK, rr.Code)

	var resp struct {
		ProtocolVersion string `json:"protocolVersion"`
		ServerInfo      struct {
			Name    string `json:"name"`
			Version string `json:"version"`
		} `json:"serverInfo"`
		Capabilities map[string]any `json:"capabilities"`
		Instructions string         `json:"instructions"`
	}
	require.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
	assert.NotEmpty(t, resp.ProtocolVersion)
	assert.Equal(t, "cat-database-server", resp.ServerInfo.Name)
	assert.Equal(t, "1.0.0", resp.ServerInfo.Version)
	assert.Contains(t, resp.Capabilities, "tools")
}

func TestListToolsEndpoint(t *testing.T) {
	rr := doJSON(t, newTestHTTPServer(t), http.MethodGet, "/mcp/tools", nil)
	require.Equal(t, http.StatusOK, rr.Code)

	var resp struct {
		Tools []struct {
			Name        string         `json:"name"`
			InputSchema map[string]any `json:"inputSchema"`
		} `json:"tools"`
	}
	require.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
	require.Len(t, resp.Tools, 4)
	assert.Equal(t, "list_all_cats", resp.Tools[0].Name)
	assert.Equal(t, "object", resp.Tools[1].InputSchema["type"])
}

func TestCallEndpoint(t *testing.T) {
	s := newTestHTTPServer(t)

	rr := doJSON(t, s, http.MethodPost, "/mcp/call", map[string]any{
		"name":      "get_cat_by_id",
		"arguments": map[string]any{"id": 1},
	})
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), "Mike")
}

func TestCallEndpoint_ErrorMapping(t *testing.T) {
	s := newTestHTTPServer(t)

	// Unknown tool -> 404 with the taxonomy code in the body.
	rr := doJSON(t, s, http.MethodPost, "/mcp/call", map[string]any{"name": "delete_cat"})
	assert.Equal(t, http.StatusNotFound, rr.Code)
	var engErr struct {
		Code    int    `json:"code"`
		Message string `json:"message"`
	}
	require.NoError(t, json.NewDecoder(rr.Body).Decode(&engErr))
	assert.Equal(t, -32601, engErr.Code)
	assert.Contains(t, engErr.Message, "delete_cat")

	// Missing required param -> 400.
	rr = doJSON(t, s, http.MethodPost, "/mcp/call", map[string]any{"name": "get_cat_by_id"})
	assert.Equal(t, http.StatusBadRequest, rr.Code)

	// Malformed body -> 400.
	req := httptest.NewRequest(http.MethodPost, "/mcp/call", bytes.NewReader([]byte("{not json")))
	rec := httptest.NewRecorder()
	s.Router().ServeHTTP(rec, req)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
