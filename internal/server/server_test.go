package server

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/Daniel-Abiy/AfriDesk/internal/assistant"
	"github.com/Daniel-Abiy/AfriDesk/internal/catalog"
	"github.com/Daniel-Abiy/AfriDesk/internal/offices"
	"github.com/Daniel-Abiy/AfriDesk/internal/recommend"
	"github.com/Daniel-Abiy/AfriDesk/internal/session"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type scriptedLLM struct {
	response string
	calls    int
}

func (s *scriptedLLM) Complete(_ context.Context, _ string) (string, error) {
	s.calls++
	return s.response, nil
}

func newTestServer(t *testing.T, llm recommend.TextClient, credential string) *Server {
	t.Helper()

	cat := catalog.Default()
	store := session.NewStore(time.Hour)
	t.Cleanup(store.Close)

	var fetcher *recommend.Fetcher
	if llm != nil {
		fetcher = recommend.NewFetcherWithClient(llm, credential, nil)
	}

	return New(Deps{
		Catalog:     cat,
		Recommender: recommend.NewRecommender(cat, fetcher, nil),
		Assistant:   assistant.New(nil, credential, nil),
		Offices:     offices.Default(),
		Sessions:    store,
		Logger:      nil,
		Version:     "test",
	})
}

func doJSON(t *testing.T, handler http.Handler, method, path, body string, header http.Header) (*httptest.ResponseRecorder, map[string]any) {
	t.Helper()
	var reader *strings.Reader
	if body == "" {
		reader = strings.NewReader("{}")
	} else {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	for k, vals := range header {
		for _, v := range vals {
			req.Header.Add(k, v)
		}
	}
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	var payload map[string]any
	if rec.Body.Len() > 0 {
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &payload))
	}
	return rec, payload
}

func TestHealth(t *testing.T) {
	srv := newTestServer(t, nil, "")
	rec, payload := doJSON(t, srv.Handler(), http.MethodGet, "/health", "", nil)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "ok", payload["status"])
	assert.Equal(t, "test", payload["version"])
}

func TestMetricsEndpoint(t *testing.T) {
	srv := newTestServer(t, nil, "")
	req := httptest.NewRequest(http.MethodGet, "/metrics", nil)
	rec := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "afridesk_")
}

func TestRecommendationsLocalFallback(t *testing.T) {
	srv := newTestServer(t, nil, "")

	rec, payload := doJSON(t, srv.Handler(), http.MethodPost, "/api/v1/recommendations",
		`{"country": "Ghana", "needs": ["Health"]}`, nil)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "local", payload["source"])
	assert.Equal(t, "Ghana", payload["country"])
	assert.NotEmpty(t, payload["session_id"])

	services := payload["services"].([]any)
	require.Len(t, services, 2)
	first := services[0].(map[string]any)
	assert.NotEmpty(t, first["name"])
	assert.NotEmpty(t, first["fees"])
}

func TestRecommendationsServicesNeededSynonym(t *testing.T) {
	srv := newTestServer(t, nil, "")

	rec, payload := doJSON(t, srv.Handler(), http.MethodPost, "/api/v1/recommendations",
		`{"country": "Ghana", "services_needed": ["Health"]}`, nil)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Len(t, payload["services"].([]any), 2)
}

func TestRecommendationsRemoteAndMemoized(t *testing.T) {
	llm := &scriptedLLM{response: "```json\n{\"services\": [{\"name\": \"Birth Certificate Replacement\"}]}\n```"}
	srv := newTestServer(t, llm, "real-key")

	rec, payload := doJSON(t, srv.Handler(), http.MethodPost, "/api/v1/recommendations",
		`{"country": "Kenya", "needs": ["Identity"]}`, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "gemini", payload["source"])
	sessionID := payload["session_id"].(string)
	require.NotEmpty(t, sessionID)
	assert.Equal(t, 1, llm.calls)

	header := http.Header{}
	header.Set("X-Session-ID", sessionID)
	rec, payload = doJSON(t, srv.Handler(), http.MethodPost, "/api/v1/recommendations", "{}", header)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, sessionID, payload["session_id"])
	assert.Equal(t, "gemini", payload["source"])
	assert.Equal(t, 1, llm.calls, "memoized session must not call the model again")
}

func TestRecommendationsDisplayDefaults(t *testing.T) {
	llm := &scriptedLLM{response: `{"services": [{"name": "Sparse Service"}]}`}
	srv := newTestServer(t, llm, "real-key")

	_, payload := doJSON(t, srv.Handler(), http.MethodPost, "/api/v1/recommendations",
		`{"country": "Kenya"}`, nil)

	services := payload["services"].([]any)
	require.Len(t, services, 1)
	svc := services[0].(map[string]any)
	assert.Equal(t, "Sparse Service", svc["name"])
	assert.Equal(t, "No description available", svc["description"])
	assert.Equal(t, "Varies", svc["processing_time"])
	assert.Equal(t, "Varies", svc["fees"])
}

func TestRecommendationsBadBody(t *testing.T) {
	srv := newTestServer(t, nil, "")
	rec, payload := doJSON(t, srv.Handler(), http.MethodPost, "/api/v1/recommendations", `{not json`, nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.NotEmpty(t, payload["error"])
}

func TestCatalogCountries(t *testing.T) {
	srv := newTestServer(t, nil, "")
	rec, payload := doJSON(t, srv.Handler(), http.MethodGet, "/api/v1/catalog", "", nil)

	require.Equal(t, http.StatusOK, rec.Code)
	countries := payload["countries"].([]any)
	assert.Equal(t, []any{"Nigeria", "Kenya", "Ghana", "South Africa"}, countries)
}

func TestCatalogCountryFiltered(t *testing.T) {
	srv := newTestServer(t, nil, "")
	rec, payload := doJSON(t, srv.Handler(), http.MethodGet,
		"/api/v1/catalog/Kenya?categories=Tax%20Services", "", nil)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Kenya", payload["country"])
	assert.Len(t, payload["services"].([]any), 2)
}

func TestCatalogUnknownCountryResolves(t *testing.T) {
	srv := newTestServer(t, nil, "")
	rec, payload := doJSON(t, srv.Handler(), http.MethodGet, "/api/v1/catalog/Atlantis", "", nil)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Nigeria", payload["country"])
	assert.Len(t, payload["services"].([]any), 9)
}

func TestChatLocalReply(t *testing.T) {
	srv := newTestServer(t, nil, "")

	rec, payload := doJSON(t, srv.Handler(), http.MethodPost, "/api/v1/chat",
		`{"message": "how do I apply for a passport?", "profile": {"country": "Kenya"}}`, nil)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "local", payload["source"])
	assert.Contains(t, payload["reply"], "Passport Application")
	assert.NotEmpty(t, payload["session_id"])
}

func TestChatKeepsHistory(t *testing.T) {
	srv := newTestServer(t, nil, "")

	_, payload := doJSON(t, srv.Handler(), http.MethodPost, "/api/v1/chat",
		`{"message": "passport please"}`, nil)
	sessionID := payload["session_id"].(string)

	_, payload = doJSON(t, srv.Handler(), http.MethodPost, "/api/v1/chat",
		`{"session_id": "`+sessionID+`", "message": "and health insurance?"}`, nil)
	assert.Equal(t, sessionID, payload["session_id"])

	sess, ok := srv.deps.Sessions.Get(sessionID)
	require.True(t, ok)
	assert.Len(t, sess.History, 4)
	assert.Equal(t, assistant.RoleUser, sess.History[0].Role)
	assert.Equal(t, assistant.RoleAssistant, sess.History[1].Role)
}

func TestChatMessageRequired(t *testing.T) {
	srv := newTestServer(t, nil, "")
	rec, _ := doJSON(t, srv.Handler(), http.MethodPost, "/api/v1/chat", `{"message": "  "}`, nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestOfficesNearest(t *testing.T) {
	srv := newTestServer(t, nil, "")

	rec, payload := doJSON(t, srv.Handler(), http.MethodGet,
		"/api/v1/offices?needs=health&lat=-1.2921&lon=36.8219&limit=3", "", nil)

	require.Equal(t, http.StatusOK, rec.Code)
	list := payload["offices"].([]any)
	require.Len(t, list, 3)
	first := list[0].(map[string]any)
	assert.Equal(t, "Nairobi", first["city"])
	assert.Greater(t, first["distance_km"], 0.0)
}

func TestOfficesWithoutCoordinates(t *testing.T) {
	srv := newTestServer(t, nil, "")

	rec, payload := doJSON(t, srv.Handler(), http.MethodGet, "/api/v1/offices?needs=health", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Len(t, payload["offices"].([]any), 10)
}

func TestOfficesBadLimit(t *testing.T) {
	srv := newTestServer(t, nil, "")
	rec, _ := doJSON(t, srv.Handler(), http.MethodGet, "/api/v1/offices?limit=zero", "", nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
