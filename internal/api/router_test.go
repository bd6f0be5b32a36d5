package api_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/persistorai/landroute/internal/api"
	"github.com/persistorai/landroute/internal/models"
)

const testAdminToken = "router-test-admin-token"

func newTestAPI(t *testing.T, svc *mockService, adminToken string) http.Handler {
	t.Helper()

	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)

	return api.NewRouter(ctx, &api.RouterDeps{
		Log:         testLogger(),
		Service:     svc,
		AdminToken:  adminToken,
		CORSOrigins: []string{"http://localhost:3000"},
		Version:     "test",
		RateLimit:   1000,
		RateBurst:   1000,
	})
}

func TestRouter_RoutingOnBothPaths(t *testing.T) {
	t.Parallel()

	h := newTestAPI(t, graphService(europe()), "")

	for _, path := range []string{"/routing/CZE/ITA", "/api/v1/routing/CZE/ITA"} {
		w := doRequest(h, http.MethodGet, path, "")
		if w.Code != http.StatusOK {
			t.Errorf("%s: expected 200, got %d", path, w.Code)
		}

		if w.Header().Get("X-Request-ID") == "" {
			t.Errorf("%s: missing X-Request-ID", path)
		}
	}
}

func TestRouter_ErrorCarriesRequestID(t *testing.T) {
	t.Parallel()

	w := doRequest(newTestAPI(t, graphService(europe()), ""), http.MethodGet, "/routing/JPN/KOR", "")

	body := decodeError(t, w)
	if body.RequestID == "" || body.RequestID != w.Header().Get("X-Request-ID") {
		t.Errorf("request_id = %q, header = %q", body.RequestID, w.Header().Get("X-Request-ID"))
	}
}

func TestRouter_AdminRefresh(t *testing.T) {
	t.Parallel()

	refreshed := &models.GraphStats{Countries: 7, Edges: 8, Source: "test"}

	tests := []struct {
		name     string
		token    string
		header   string
		err      error
		wantCode int
	}{
		{"disabled", "", "Bearer " + testAdminToken, nil, http.StatusForbidden},
		{"missing token", testAdminToken, "", nil, http.StatusUnauthorized},
		{"refreshed", testAdminToken, "Bearer " + testAdminToken, nil, http.StatusOK},
		{"refresh failed", testAdminToken, "Bearer " + testAdminToken, errors.New("upstream down"), http.StatusServiceUnavailable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			svc := &mockService{refreshFn: func(context.Context) (*models.GraphStats, error) {
				if tt.err != nil {
					return nil, tt.err
				}
				return refreshed, nil
			}}

			req := httptest.NewRequest(http.MethodPost, "/api/v1/admin/refresh", http.NoBody)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}

			w := httptest.NewRecorder()
			newTestAPI(t, svc, tt.token).ServeHTTP(w, req)

			if w.Code != tt.wantCode {
				t.Fatalf("expected %d, got %d: %s", tt.wantCode, w.Code, w.Body.String())
			}
		})
	}
}

func TestRouter_Metrics(t *testing.T) {
	t.Parallel()

	h := newTestAPI(t, graphService(europe()), "")
	doRequest(h, http.MethodGet, "/routing/CZE/ITA", "")

	w := doRequest(h, http.MethodGet, "/metrics", "")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}

	if !strings.Contains(w.Body.String(), "landroute_http_requests_total") {
		t.Error("metrics output missing landroute_http_requests_total")
	}
}
