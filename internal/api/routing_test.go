package api_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"slices"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/persistorai/landroute/internal/api"
	"github.com/persistorai/landroute/internal/graph"
	"github.com/persistorai/landroute/internal/models"
)

// graphService routes over a real border graph.
func graphService(records []models.CountryRecord) *mockService {
	g := graph.Build(records)

	return &mockService{
		findRouteFn: func(_ context.Context, origin, destination string) ([]string, error) {
			return graph.FindRoute(g, origin, destination)
		},
	}
}

func europe() []models.CountryRecord {
	return []models.CountryRecord{
		{Code: "CZE", Neighbours: []string{"AUT"}},
		{Code: "AUT", Neighbours: []string{"CZE", "ITA"}},
		{Code: "ITA", Neighbours: []string{"AUT", "FRA"}},
		{Code: "FRA", Neighbours: []string{"ITA", "ESP"}},
		{Code: "ESP", Neighbours: []string{"FRA"}},
		{Code: "JPN", Neighbours: []string{}},
		{Code: "KOR", Neighbours: []string{}},
	}
}

func newRouteRouter(svc *mockService) *gin.Engine {
	h := api.NewRouteHandler(svc, testLogger())

	r := gin.New()
	r.GET("/routing/:origin/:destination", h.Route)

	return r
}

func TestRoute_Found(t *testing.T) {
	t.Parallel()

	tests := []struct {
		path string
		want []string
	}{
		{"/routing/CZE/ITA", []string{"CZE", "AUT", "ITA"}},
		{"/routing/cze/ita", []string{"CZE", "AUT", "ITA"}},
		{"/routing/FRA/fra", []string{"FRA"}},
		{"/routing/ESP/CZE", []string{"ESP", "FRA", "ITA", "AUT", "CZE"}},
	}

	r := newRouteRouter(graphService(europe()))

	for _, tt := range tests {
		w := doRequest(r, http.MethodGet, tt.path, "")

		if w.Code != http.StatusOK {
			t.Fatalf("%s: expected 200, got %d: %s", tt.path, w.Code, w.Body.String())
		}

		var body models.RouteResponse
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("invalid JSON: %v", err)
		}

		if !slices.Equal(body.Route, tt.want) {
			t.Errorf("%s: route = %v, want %v", tt.path, body.Route, tt.want)
		}
	}
}

func TestRoute_Errors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		path     string
		wantCode int
		wantErr  string
		wantMsg  string
	}{
		{"no path", "/routing/JPN/KOR", http.StatusBadRequest, api.ErrCodeNoRoute, "No land route found from 'JPN' to 'KOR'"},
		{"unknown origin", "/routing/XXX/DEU", http.StatusBadRequest, api.ErrCodeUnknownCountry, "Unknown country code: 'XXX'"},
		{"unknown destination", "/routing/CZE/deu", http.StatusBadRequest, api.ErrCodeUnknownCountry, "Unknown country code: 'DEU'"},
		{"code too long", "/routing/" + strings.Repeat("A", 17) + "/CZE", http.StatusBadRequest, api.ErrCodeInvalidRequest, ""},
		{"blank code", "/routing/%20/CZE", http.StatusBadRequest, api.ErrCodeInvalidRequest, ""},
	}

	r := newRouteRouter(graphService(europe()))

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			w := doRequest(r, http.MethodGet, tt.path, "")
			if w.Code != tt.wantCode {
				t.Fatalf("expected %d, got %d", tt.wantCode, w.Code)
			}

			body := decodeError(t, w)
			if body.Code != tt.wantErr {
				t.Errorf("code = %q, want %q", body.Code, tt.wantErr)
			}

			if tt.wantMsg != "" && body.Message != tt.wantMsg {
				t.Errorf("message = %q, want %q", body.Message, tt.wantMsg)
			}
		})
	}
}

func TestRoute_ServiceFailures(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		err      error
		wantCode int
		wantErr  string
	}{
		{"not loaded", models.ErrGraphNotLoaded, http.StatusServiceUnavailable, api.ErrCodeUnavailable},
		{"unexpected", errors.New("boom"), http.StatusInternalServerError, api.ErrCodeInternalError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			svc := &mockService{findRouteFn: func(context.Context, string, string) ([]string, error) {
				return nil, tt.err
			}}

			w := doRequest(newRouteRouter(svc), http.MethodGet, "/routing/CZE/ITA", "")
			if w.Code != tt.wantCode {
				t.Fatalf("expected %d, got %d", tt.wantCode, w.Code)
			}

			body := decodeError(t, w)
			if body.Code != tt.wantErr {
				t.Errorf("code = %q, want %q", body.Code, tt.wantErr)
			}

			if strings.Contains(body.Message, "boom") {
				t.Error("internal error details leaked to client")
			}
		})
	}
}
