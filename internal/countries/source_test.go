package countries_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"testing"
	"time"

	"github.com/persistorai/landroute/internal/countries"
)

const sampleDocument = `[
	{"name": {"common": "Czechia"}, "cca3": "CZE", "borders": ["AUT", "DEU", "POL", "SVK"]},
	{"name": {"common": "Japan"}, "cca3": "JPN", "borders": []},
	{"name": {"common": "Iceland"}, "cca3": "ISL"},
	{"cca3": "NUL", "borders": null},
	{"cca3": "ODD", "borders": "AUT"},
	{"cca3": "MIX", "borders": ["AUT", 7, null, "ITA"]},
	{"name": {"common": "Nowhere"}}
]`

func TestDecode(t *testing.T) {
	t.Parallel()

	records, err := countries.Decode(strings.NewReader(sampleDocument))
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}

	if len(records) != 7 {
		t.Fatalf("got %d records, want 7", len(records))
	}

	tests := []struct {
		idx        int
		code       string
		neighbours []string
	}{
		{idx: 0, code: "CZE", neighbours: []string{"AUT", "DEU", "POL", "SVK"}},
		{idx: 1, code: "JPN", neighbours: []string{}},
		{idx: 2, code: "ISL", neighbours: nil},
		{idx: 3, code: "NUL", neighbours: nil},
		{idx: 4, code: "ODD", neighbours: nil},
		{idx: 5, code: "MIX", neighbours: []string{"AUT", "ITA"}},
		{idx: 6, code: "", neighbours: nil},
	}

	for _, tc := range tests {
		r := records[tc.idx]
		if r.Code != tc.code {
			t.Errorf("record %d: code = %q, want %q", tc.idx, r.Code, tc.code)
		}

		if !slices.Equal(r.Neighbours, tc.neighbours) {
			t.Errorf("record %d: neighbours = %v, want %v", tc.idx, r.Neighbours, tc.neighbours)
		}
	}
}

func TestDecode_Invalid(t *testing.T) {
	t.Parallel()

	if _, err := countries.Decode(strings.NewReader(`{"not": "an array"}`)); err == nil {
		t.Fatal("expected error for non-array document")
	}

	if _, err := countries.Decode(strings.NewReader(`[{"cca3": `)); err == nil {
		t.Fatal("expected error for truncated document")
	}
}

func TestHTTPSource_Fetch(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			t.Errorf("unexpected method %s", r.Method)
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(sampleDocument))
	}))
	t.Cleanup(srv.Close)

	src := countries.NewHTTPSource(srv.URL, 5*time.Second)

	records, err := src.Fetch(context.Background())
	if err != nil {
		t.Fatalf("Fetch: %v", err)
	}

	if len(records) != 7 {
		t.Errorf("got %d records, want 7", len(records))
	}

	if src.Name() != srv.URL {
		t.Errorf("Name() = %q, want %q", src.Name(), srv.URL)
	}
}

func TestHTTPSource_NonOK(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, "gone", http.StatusServiceUnavailable)
	}))
	t.Cleanup(srv.Close)

	_, err := countries.NewHTTPSource(srv.URL, 5*time.Second).Fetch(context.Background())
	if err == nil || !strings.Contains(err.Error(), "unexpected HTTP status: 503") {
		t.Fatalf("expected status error, got %v", err)
	}
}

func TestHTTPSource_ContextCancelled(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(sampleDocument))
	}))
	t.Cleanup(srv.Close)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := countries.NewHTTPSource(srv.URL, 5*time.Second).Fetch(ctx); err == nil {
		t.Fatal("expected error for cancelled context")
	}
}

func TestFileSource_Fetch(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "countries.json")
	if err := os.WriteFile(path, []byte(sampleDocument), 0o600); err != nil {
		t.Fatalf("write fixture: %v", err)
	}

	src, err := countries.NewSource("file://"+path, time.Second)
	if err != nil {
		t.Fatalf("NewSource: %v", err)
	}

	records, err := src.Fetch(context.Background())
	if err != nil {
		t.Fatalf("Fetch: %v", err)
	}

	if len(records) != 7 {
		t.Errorf("got %d records, want 7", len(records))
	}
}

func TestNewSource_Schemes(t *testing.T) {
	t.Parallel()

	if _, err := countries.NewSource("https://example.com/countries.json", time.Second); err != nil {
		t.Errorf("https: %v", err)
	}

	if _, err := countries.NewSource("ftp://example.com/countries.json", time.Second); err == nil {
		t.Error("expected error for ftp scheme")
	}
}
