package server

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/seaboard/crewmatch/internal/types"
)

type stubMatcher struct {
	resp *types.MatchResponse
	err  error
}

func (m *stubMatcher) Match(_ context.Context, _ *types.MatchRequest) (*types.MatchResponse, error) {
	return m.resp, m.err
}

func newTestServer(t *testing.T, matcher MatchService, env string) *Server {
	t.Helper()
	t.Setenv("RATE_LIMIT_ENABLED", "false")
	return New(Config{Port: 0, Env: env}, matcher, nil)
}

func TestHandleMatch_Success(t *testing.T) {
	matcher := &stubMatcher{resp: &types.MatchResponse{
		Candidates:    []types.AnonymizedCandidate{},
		SearchQuality: types.QualityGood,
	}}
	srv := newTestServer(t, matcher, "development")

	req := httptest.NewRequest(http.MethodPost, "/match", strings.NewReader(`{"query":"chief stewardess for 60m MY"}`))
	rec := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var resp types.MatchResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, types.QualityGood, resp.SearchQuality)
}

func TestHandleMatch_InvalidBody(t *testing.T) {
	srv := newTestServer(t, &stubMatcher{}, "development")

	req := httptest.NewRequest(http.MethodPost, "/match", strings.NewReader(`not json`))
	rec := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandleMatch_ValidationFailure(t *testing.T) {
	srv := newTestServer(t, &stubMatcher{}, "development")

	tests := []struct {
		name string
		body string
	}{
		{"empty query", `{"query":""}`},
		{"limit too high", `{"query":"captain","limit":50}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/match", strings.NewReader(tt.body))
			rec := httptest.NewRecorder()
			srv.Handler().ServeHTTP(rec, req)
			assert.Equal(t, http.StatusBadRequest, rec.Code)
		})
	}
}

func TestHandleMatch_UpstreamFailure(t *testing.T) {
	matcher := &stubMatcher{err: errors.New("database is down")}

	// Production hides the failure detail.
	srv := newTestServer(t, matcher, "production")
	req := httptest.NewRequest(http.MethodPost, "/match", strings.NewReader(`{"query":"captain"}`))
	rec := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.NotContains(t, rec.Body.String(), "database is down")

	// Development surfaces it.
	srv = newTestServer(t, matcher, "development")
	rec = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodPost, "/match", strings.NewReader(`{"query":"captain"}`))
	srv.Handler().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Contains(t, rec.Body.String(), "database is down")
}

func TestHandleHealth(t *testing.T) {
	srv := newTestServer(t, &stubMatcher{}, "development")

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rec := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())
}

func TestCORSPreflight(t *testing.T) {
	srv := newTestServer(t, &stubMatcher{}, "development")

	req := httptest.NewRequest(http.MethodOptions, "/match", nil)
	rec := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"))
}

func TestHTTPStatus(t *testing.T) {
	assert.Equal(t, http.StatusBadRequest, HTTPStatus(&ErrValidation{Field: "query"}))
	assert.Equal(t, http.StatusInternalServerError, HTTPStatus(&ErrUpstream{Operation: "match"}))
	assert.Equal(t, http.StatusInternalServerError, HTTPStatus(errors.New("boom")))
}
