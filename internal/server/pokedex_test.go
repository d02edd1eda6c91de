package server

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"pokedex/internal/domain"
	"pokedex/internal/state"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

type stubCatalog struct {
	list []domain.CreatureSummary
	err  error
}

func (s stubCatalog) ListAll(ctx context.Context) ([]domain.CreatureSummary, error) {
	return s.list, s.err
}

type stubComposer map[string]*domain.CreatureDetails

func (s stubComposer) ComposeDetails(ctx context.Context, name string) (*domain.CreatureDetails, error) {
	if d, ok := s[name]; ok {
		return d, nil
	}
	return nil, errors.New("not found")
}

func newTestServer(t *testing.T, catalog stubCatalog, composer stubComposer) (*state.Controller, http.Handler) {
	t.Helper()
	c := state.NewController(catalog, composer, zerolog.Nop())
	return c, NewPokedexServer(c, zerolog.Nop()).Handler()
}

func do(t *testing.T, h http.Handler, method, path, body string) (*httptest.ResponseRecorder, state.View) {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	var v state.View
	if rec.Code == http.StatusOK && strings.HasPrefix(path, "/api/") {
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &v))
	}
	return rec, v
}

func TestHealth(t *testing.T) {
	_, h := newTestServer(t, stubCatalog{}, stubComposer{})

	rec, _ := do(t, h, http.MethodGet, "/healthz", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())
	assert.NotEmpty(t, rec.Header().Get("X-Request-ID"))
}

func TestRequestIDIsEchoed(t *testing.T) {
	_, h := newTestServer(t, stubCatalog{}, stubComposer{})

	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	req.Header.Set("X-Request-ID", "abc-123")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	assert.Equal(t, "abc-123", rec.Header().Get("X-Request-ID"))
}

func TestView(t *testing.T) {
	catalog := stubCatalog{list: []domain.CreatureSummary{{Name: "caterpie"}, {Name: "metapod"}}}
	c, h := newTestServer(t, catalog, stubComposer{})

	_, v := do(t, h, http.MethodGet, "/api/view", "")
	assert.Empty(t, v.Results)
	assert.Equal(t, "No Results Found", v.Message)

	require.NoError(t, c.LoadList(context.Background()))

	rec, v := do(t, h, http.MethodGet, "/api/view", "")
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
	assert.Len(t, v.Results, 2)
	assert.False(t, v.IsLoading)
	assert.Nil(t, v.Details)
	assert.Empty(t, v.Message)
}

func TestUpdateQuery(t *testing.T) {
	catalog := stubCatalog{list: []domain.CreatureSummary{{Name: "caterpie"}, {Name: "metapod"}, {Name: "butterfree"}}}
	c, h := newTestServer(t, catalog, stubComposer{})
	require.NoError(t, c.LoadList(context.Background()))

	rec, v := do(t, h, http.MethodPut, "/api/query", `{"query":"POD"}`)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "POD", v.Query)
	require.Len(t, v.Results, 1)
	assert.Equal(t, "metapod", v.Results[0].Name)
	assert.Equal(t, "POD", c.Snapshot().Query)
}

func TestUpdateQuery_BadBody(t *testing.T) {
	c, h := newTestServer(t, stubCatalog{}, stubComposer{})

	req := httptest.NewRequest(http.MethodPut, "/api/query", strings.NewReader(`{"query":`))
	req.Header.Set("X-Request-ID", "req-42")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.JSONEq(t, `{"error":"invalid JSON body","request_id":"req-42"}`, rec.Body.String())
	assert.Equal(t, "", c.Snapshot().Query)
}

func TestUpdateQuery_BadBodyCarriesGeneratedRequestID(t *testing.T) {
	_, h := newTestServer(t, stubCatalog{}, stubComposer{})

	rec, _ := do(t, h, http.MethodPut, "/api/query", `not json`)
	require.Equal(t, http.StatusBadRequest, rec.Code)

	var body errorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.NotEmpty(t, body.RequestID)
	assert.Equal(t, rec.Header().Get("X-Request-ID"), body.RequestID)
}

func TestRequestDetails(t *testing.T) {
	composer := stubComposer{"onix": {
		Name:       "onix",
		Moves:      []string{"bind"},
		Types:      []string{"rock", "ground"},
		Evolutions: []string{"onix", "steelix"},
	}}
	_, h := newTestServer(t, stubCatalog{}, composer)

	rec, v := do(t, h, http.MethodPost, "/api/pokemon/onix/details", "")
	require.Equal(t, http.StatusOK, rec.Code)
	require.NotNil(t, v.Details)
	assert.Equal(t, "onix", v.Details.Name)
	assert.Equal(t, []string{"rock", "ground"}, v.Details.Types)
	assert.Equal(t, []string{"onix", "steelix"}, v.Details.Evolutions)
}

func TestRequestDetails_FailureIsSilent(t *testing.T) {
	composer := stubComposer{"onix": {Name: "onix"}}
	_, h := newTestServer(t, stubCatalog{}, composer)

	_, v := do(t, h, http.MethodPost, "/api/pokemon/onix/details", "")
	require.NotNil(t, v.Details)

	rec, v := do(t, h, http.MethodPost, "/api/pokemon/missingno/details", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Nil(t, v.Details)
	assert.NotContains(t, rec.Body.String(), "details")
}

func TestMethodNotAllowed(t *testing.T) {
	_, h := newTestServer(t, stubCatalog{}, stubComposer{})

	rec, _ := do(t, h, http.MethodDelete, "/api/view", "")
	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
}

func TestCORSPreflight(t *testing.T) {
	_, h := newTestServer(t, stubCatalog{}, stubComposer{})

	req := httptest.NewRequest(http.MethodOptions, "/api/query", nil)
	req.Header.Set("Origin", "http://localhost:3000")
	req.Header.Set("Access-Control-Request-Method", http.MethodPut)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	assert.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"))
}
