// Command landroute serves shortest land routes between countries over HTTP.
package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"github.com/persistorai/landroute/internal/api"
	"github.com/persistorai/landroute/internal/config"
	"github.com/persistorai/landroute/internal/countries"
	"github.com/persistorai/landroute/internal/db"
	"github.com/persistorai/landroute/internal/db/migrations"
	"github.com/persistorai/landroute/internal/dbpool"
	"github.com/persistorai/landroute/internal/service"
	"github.com/persistorai/landroute/internal/store"
)

// Server timeouts.
const (
	readHeaderTimeout = 5 * time.Second
	readTimeout       = 15 * time.Second
	writeTimeout      = 90 * time.Second
	idleTimeout       = 60 * time.Second
	shutdownTimeout   = 30 * time.Second
	startupTimeout    = 2 * time.Minute
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	log := newLogger(cfg)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg, log); err != nil {
		log.WithError(err).Error("landroute exited with error")
		stop()
		os.Exit(1) //nolint:gocritic // stop is called explicitly above.
	}
}

func run(ctx context.Context, cfg *config.Config, log *logrus.Logger) error {
	log.WithFields(logrus.Fields{
		"version":   config.Version,
		"addr":      cfg.Addr(),
		"source":    cfg.DataURL,
		"snapshots": cfg.SnapshotsEnabled(),
		"admin":     cfg.AdminEnabled(),
	}).Info("starting landroute")

	source, err := countries.NewSource(cfg.DataURL, cfg.FetchTimeout)
	if err != nil {
		return fmt.Errorf("configuring data source: %w", err)
	}

	deps := &api.RouterDeps{
		Log:         log,
		AdminToken:  cfg.AdminToken.Value(),
		CORSOrigins: cfg.CORSOrigins,
		Version:     config.Version,
		RateLimit:   cfg.RateLimit,
		RateBurst:   cfg.RateBurst,
	}

	var snapshots service.SnapshotStore

	if cfg.SnapshotsEnabled() {
		pool, err := dbpool.NewPool(ctx, cfg.DatabaseURL.Value())
		if err != nil {
			return fmt.Errorf("connecting to snapshot database: %w", err)
		}
		defer pool.Close()

		if err := db.RunMigrations(ctx, pool, log, migrations.FS); err != nil {
			return fmt.Errorf("running migrations: %w", err)
		}

		snapshots = store.NewSnapshotStore(store.Base{Pool: pool, Log: log})
		deps.DB = pool
		deps.SchemaVersion = db.SchemaVersion()
	}

	svc := service.NewRouteService(source, snapshots, log)
	defer svc.Wait() // before the pool closes
	deps.Service = svc

	loadCtx, cancel := context.WithTimeout(ctx, startupTimeout)
	err = svc.Load(loadCtx)
	cancel()
	if err != nil {
		return err
	}

	srv := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           api.NewRouter(ctx, deps),
		ReadHeaderTimeout: readHeaderTimeout,
		ReadTimeout:       readTimeout,
		WriteTimeout:      writeTimeout,
		IdleTimeout:       idleTimeout,
	}

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		log.WithField("addr", srv.Addr).Info("HTTP server listening")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("server failed: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		service.NewRefreshWorker(svc, cfg.RefreshInterval, log).Run(gctx)
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()
		log.Info("shutting down")

		// The parent context is already cancelled; give in-flight requests a fresh deadline.
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("server shutdown failed: %w", err)
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		return err
	}

	log.Info("server stopped gracefully")

	return nil
}
