package httpserver

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	artworkcatalog "artjury/contexts/competition/artwork-catalog"
	catalogmemory "artjury/contexts/competition/artwork-catalog/adapters/memory"
	catalogentities "artjury/contexts/competition/artwork-catalog/domain/entities"
	judgingengine "artjury/contexts/competition/judging-engine"
	panelservice "artjury/contexts/identity-access/panel-service"
	"artjury/contexts/identity-access/panel-service/adapters/crypto"
	panelcommands "artjury/contexts/identity-access/panel-service/application/commands"
	"artjury/internal/app/directory"
	"artjury/internal/platform/session"
	"artjury/internal/shared/access"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

type testEnv struct {
	server   *Server
	sessions *session.Service
	catalog  *catalogmemory.Store
	admin    access.Actor
	judge    access.Actor
}

func seedArtworks() []catalogentities.Artwork {
	created := time.Date(2026, 2, 1, 10, 0, 0, 0, time.UTC)
	item := func(id, code string, category access.Category, order int, offset time.Duration) catalogentities.Artwork {
		return catalogentities.Artwork{
			ArtworkID:           id,
			ArtworkCode:         code,
			Title:               "Title " + code,
			Description:         "Description " + code,
			Category:            category,
			ArtistName:          "Artist " + code,
			ImageURL:            "https://example.test/" + code + ".jpg",
			OrderWithinCategory: order,
			CreatedAt:           created.Add(offset),
			UpdatedAt:           created.Add(offset),
		}
	}
	return []catalogentities.Artwork{
		item("art-pho-1", "PHO-001", access.CategoryPhotography, 2, 0),
		item("art-pho-2", "PHO-002", access.CategoryPhotography, 1, time.Minute),
		item("art-pai-1", "PAI-001", access.CategoryPaintings, 0, 2*time.Minute),
		item("art-dig-1", "DIG-001", access.CategoryDigitalPainting, 0, 3*time.Minute),
	}
}

func newTestEnv(t *testing.T) testEnv {
	t.Helper()
	ctx := context.Background()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	sessions := session.NewService("test-secret", time.Hour)

	catalog := artworkcatalog.NewInMemoryModule(seedArtworks(), logger)
	panel := panelservice.NewInMemoryModule(crypto.BcryptHasher{Cost: bcrypt.MinCost}, sessions, logger)
	judging := judgingengine.NewInMemoryModule(
		nil,
		directory.Artworks{Catalog: catalog.Queries},
		directory.Judges{Panel: panel.Queries},
		logger,
	)

	admin, err := panel.Admins.CreateAdmin(ctx, panelcommands.CreateAdminCommand{
		Username: "admin", Name: "Chair", Password: "admin-pass",
	})
	require.NoError(t, err)
	judge, err := panel.Handler.Judges.CreateJudge(ctx, admin.Actor(), panelcommands.CreateJudgeCommand{
		Username:   "judge1",
		Name:       "Judge One",
		Password:   "judge-pass",
		Categories: []string{"Photography", "Digital Painting"},
	})
	require.NoError(t, err)

	server := New(catalog, judging, panel, Options{
		Sessions:      sessions,
		Metrics:       NewMetrics(prometheus.NewRegistry()),
		EnableSwagger: true,
	}, logger, ":0")
	return testEnv{
		server:   server,
		sessions: sessions,
		catalog:  catalog.Store,
		admin:    admin.Actor(),
		judge:    judge.Actor(),
	}
}

func (e testEnv) token(t *testing.T, actor access.Actor) string {
	t.Helper()
	token, _, err := e.sessions.IssueToken(actor, "test")
	require.NoError(t, err)
	return token
}

func (e testEnv) do(t *testing.T, method string, path string, token string, body string) *httptest.ResponseRecorder {
	t.Helper()
	var reader io.Reader
	if body != "" {
		reader = bytes.NewReader([]byte(body))
	}
	req := httptest.NewRequest(method, path, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rr := httptest.NewRecorder()
	e.server.mux.ServeHTTP(rr, req)
	return rr
}

func decodeBody[T any](t *testing.T, rr *httptest.ResponseRecorder) T {
	t.Helper()
	var out T
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &out), rr.Body.String())
	return out
}

func expectStatus(t *testing.T, rr *httptest.ResponseRecorder, status int) {
	t.Helper()
	if rr.Code != status {
		t.Fatalf("expected %d, got %d body=%s", status, rr.Code, rr.Body.String())
	}
}

func expectErrorCode(t *testing.T, rr *httptest.ResponseRecorder, status int, code string) ErrorResponse {
	t.Helper()
	expectStatus(t, rr, status)
	resp := decodeBody[ErrorResponse](t, rr)
	if resp.Code != code {
		t.Fatalf("expected code %q, got %q", code, resp.Code)
	}
	return resp
}

func TestHealthz(t *testing.T) {
	env := newTestEnv(t)
	expectStatus(t, env.do(t, http.MethodGet, "/healthz", "", ""), http.StatusOK)
}

func TestMalformedAuthorizationHeaderIsRejected(t *testing.T) {
	env := newTestEnv(t)
	req := httptest.NewRequest(http.MethodGet, "/api/artworks", nil)
	req.Header.Set("Authorization", "Basic abc")
	rr := httptest.NewRecorder()
	env.server.mux.ServeHTTP(rr, req)
	expectErrorCode(t, rr, http.StatusUnauthorized, "invalid_token")

	expectErrorCode(t, env.do(t, http.MethodGet, "/api/artworks", "garbage", ""), http.StatusUnauthorized, "invalid_token")
}

func TestExpiredTokenIsRejected(t *testing.T) {
	env := newTestEnv(t)
	past := env.sessions.WithClock(func() time.Time { return time.Now().Add(-2 * time.Hour) })
	token, _, err := past.IssueToken(env.admin, "Chair")
	require.NoError(t, err)

	expectErrorCode(t, env.do(t, http.MethodGet, "/api/results", token, ""), http.StatusUnauthorized, "token_expired")
}

func TestSwaggerIsMounted(t *testing.T) {
	env := newTestEnv(t)
	rr := env.do(t, http.MethodGet, "/swagger/doc.json", "", "")
	expectStatus(t, rr, http.StatusOK)
	if !bytes.Contains(rr.Body.Bytes(), []byte("/api/vote")) {
		t.Fatalf("expected swagger document to list /api/vote, body=%s", rr.Body.String())
	}
}

func TestMetricsEndpointCountsRequests(t *testing.T) {
	env := newTestEnv(t)
	expectStatus(t, env.do(t, http.MethodGet, "/healthz", "", ""), http.StatusOK)

	rr := env.do(t, http.MethodGet, "/metrics", "", "")
	expectStatus(t, rr, http.StatusOK)
	if !bytes.Contains(rr.Body.Bytes(), []byte(`artjury_http_requests_total{method="GET",route="/healthz",status="200"} 1`)) {
		t.Fatalf("expected healthz request counter, body=%s", rr.Body.String())
	}
}
