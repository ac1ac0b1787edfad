package server

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type stubService struct {
	lastQuestion string
}

func (s *stubService) ResolveQuestion(_ context.Context, question string) string {
	s.lastQuestion = question
	return "stub answer"
}

func newTestServer() (*httptest.Server, *stubService) {
	svc := &stubService{}
	srv := New(":0", svc, zap.NewNop())
	return httptest.NewServer(srv.Handler), svc
}

func TestQueryEndpoint(t *testing.T) {
	ts, svc := newTestServer()
	defer ts.Close()

	resp, err := http.Get(ts.URL + "/query?question=top+customer")
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "application/json", resp.Header.Get("Content-Type"))

	var payload map[string]string
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&payload))
	assert.Equal(t, "stub answer", payload["answer"])
	assert.Equal(t, "top customer", svc.lastQuestion)
}

func TestQueryEndpoint_MissingQuestion(t *testing.T) {
	ts, _ := newTestServer()
	defer ts.Close()

	resp, err := http.Get(ts.URL + "/query")
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestHealthEndpoint(t *testing.T) {
	ts, _ := newTestServer()
	defer ts.Close()

	resp, err := http.Get(ts.URL + "/")
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var payload map[string]string
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&payload))
	assert.NotEmpty(t, payload["message"])
}

func TestCORSHeadersPresent(t *testing.T) {
	ts, _ := newTestServer()
	defer ts.Close()

	resp, err := http.Get(ts.URL + "/query?question=x")
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, "*", resp.Header.Get("Access-Control-Allow-Origin"))
	assert.NotEmpty(t, resp.Header.Get("X-Request-ID"))
}
