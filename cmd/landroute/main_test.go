package main

import (
	"context"
	"net"
	"net/http"
	"os"
	"path/filepath"
	"strconv"
	"testing"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/persistorai/landroute/internal/api"
	"github.com/persistorai/landroute/internal/config"
)

func TestNewLogger(t *testing.T) {
	tests := []struct {
		format    string
		level     string
		wantLevel logrus.Level
		wantJSON  bool
	}{
		{"json", "debug", logrus.DebugLevel, true},
		{"text", "warn", logrus.WarnLevel, false},
		{"json", "nonsense", logrus.InfoLevel, true},
	}

	for _, tt := range tests {
		log := newLogger(&config.Config{LogFormat: tt.format, LogLevel: tt.level})

		if log.GetLevel() != tt.wantLevel {
			t.Errorf("%s/%s: level = %v, want %v", tt.format, tt.level, log.GetLevel(), tt.wantLevel)
		}

		_, isJSON := log.Formatter.(*logrus.JSONFormatter)
		if isJSON != tt.wantJSON {
			t.Errorf("%s: JSON formatter = %v, want %v", tt.format, isJSON, tt.wantJSON)
		}
	}
}

func TestTimeoutBudgets(t *testing.T) {
	if writeTimeout <= api.RefreshTimeout {
		t.Errorf("writeTimeout %s must exceed admin refresh timeout %s", writeTimeout, api.RefreshTimeout)
	}

	if api.RefreshTimeout <= config.MaxFetchTimeout {
		t.Errorf("admin refresh timeout %s must exceed max fetch timeout %s", api.RefreshTimeout, config.MaxFetchTimeout)
	}

	if startupTimeout <= config.MaxFetchTimeout {
		t.Errorf("startupTimeout %s must exceed max fetch timeout %s", startupTimeout, config.MaxFetchTimeout)
	}
}

func freePort(t *testing.T) string {
	t.Helper()
	l, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatalf("listen: %v", err)
	}
	defer l.Close()
	return strconv.Itoa(l.Addr().(*net.TCPAddr).Port)
}

func TestRun_ServesFromFileSourceAndShutsDown(t *testing.T) {
	path := filepath.Join(t.TempDir(), "countries.json")
	doc := `[{"cca3":"CZE","borders":["AUT"]},{"cca3":"AUT","borders":["CZE","ITA"]},{"cca3":"ITA","borders":["AUT"]}]`
	if err := os.WriteFile(path, []byte(doc), 0o600); err != nil {
		t.Fatalf("write fixture: %v", err)
	}

	port := freePort(t)
	cfg := &config.Config{
		Port:         port,
		ListenHost:   "127.0.0.1",
		DataURL:      "file://" + path,
		FetchTimeout: time.Second,
		CORSOrigins:  []string{"http://localhost:3000"},
		LogLevel:     "error",
		LogFormat:    "json",
		RateLimit:    100,
		RateBurst:    100,
	}
	log := newLogger(cfg)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- run(ctx, cfg, log) }()

	url := "http://127.0.0.1:" + port + "/routing/cze/ita"

	var resp *http.Response
	var err error
	for range 50 {
		resp, err = http.Get(url) //nolint:noctx // test helper
		if err == nil {
			break
		}
		time.Sleep(20 * time.Millisecond)
	}
	if err != nil {
		cancel()
		t.Fatalf("server never came up: %v", err)
	}
	resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		t.Errorf("GET %s: status %d", url, resp.StatusCode)
	}

	cancel()

	select {
	case err := <-done:
		if err != nil {
			t.Errorf("run returned %v", err)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("run did not return after cancel")
	}
}

func TestRun_FailsWhenDatasetUnavailable(t *testing.T) {
	cfg := &config.Config{
		Port:         freePort(t),
		ListenHost:   "127.0.0.1",
		DataURL:      "file://" + filepath.Join(t.TempDir(), "missing.json"),
		FetchTimeout: time.Second,
		LogLevel:     "error",
		LogFormat:    "json",
		RateLimit:    1,
		RateBurst:    1,
	}

	if err := run(context.Background(), cfg, newLogger(cfg)); err == nil {
		t.Fatal("expected run to fail without a dataset")
	}
}
