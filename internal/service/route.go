// Package service provides business logic between API handlers and data sources.
package service

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/sirupsen/logrus"
	"golang.org/x/sync/singleflight"

	"github.com/persistorai/landroute/internal/countries"
	"github.com/persistorai/landroute/internal/graph"
	"github.com/persistorai/landroute/internal/metrics"
	"github.com/persistorai/landroute/internal/models"
)

// SnapshotStore persists fetched datasets so the service can start without
// the upstream source.
type SnapshotStore interface {
	SaveSnapshot(ctx context.Context, source string, records []models.CountryRecord) (int64, error)
	LatestSnapshot(ctx context.Context) (*models.Snapshot, error)
	PruneSnapshots(ctx context.Context, keep int) (int, error)
}

// snapshotRetention is how many snapshots survive each successful refresh.
const snapshotRetention = 5

// snapshotTimeout bounds snapshot writes after a refresh and the snapshot
// read of the startup fallback.
const snapshotTimeout = 30 * time.Second

// Refresh outcome labels.
const (
	outcomeSuccess  = "success"
	outcomeError    = "error"
	outcomeSnapshot = "snapshot"
)

// ErrEmptyDataset is returned when a source yields no usable country records.
var ErrEmptyDataset = errors.New("dataset contains no countries")

// loadedGraph is an immutable graph together with where it came from.
type loadedGraph struct {
	graph    *graph.Graph
	source   string
	loadedAt time.Time
}

func (l *loadedGraph) stats() *models.GraphStats {
	return &models.GraphStats{
		Countries: l.graph.Len(),
		Edges:     l.graph.Edges(),
		Source:    l.source,
		LoadedAt:  l.loadedAt,
	}
}

// RouteService answers route and country queries against the current border
// graph. The graph is replaced wholesale on refresh; queries already running
// keep the graph they started with.
type RouteService struct {
	source    countries.Source
	snapshots SnapshotStore
	log       *logrus.Logger

	current atomic.Pointer[loadedGraph]
	group   singleflight.Group

	// persisting tracks snapshot writes that outlive their refresh.
	persisting sync.WaitGroup
}

// NewRouteService creates a RouteService. snapshots may be nil, which
// disables persistence and the startup fallback.
func NewRouteService(source countries.Source, snapshots SnapshotStore, log *logrus.Logger) *RouteService {
	return &RouteService{source: source, snapshots: snapshots, log: log}
}

// Load performs the initial graph load. The upstream source is tried first;
// if it fails and a snapshot store is configured, the newest snapshot is used.
// The snapshot read gets its own deadline, so an upstream that hangs until
// ctx expires still leaves room for the fallback.
func (s *RouteService) Load(ctx context.Context) error {
	_, err := s.Refresh(ctx)
	if err == nil {
		return nil
	}

	if s.snapshots == nil {
		return fmt.Errorf("loading border graph: %w", err)
	}

	s.log.WithError(err).Warn("upstream load failed, falling back to snapshot")

	snapCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), snapshotTimeout)
	defer cancel()

	snap, snapErr := s.snapshots.LatestSnapshot(snapCtx)
	if snapErr != nil {
		return fmt.Errorf("loading border graph: %w (snapshot fallback: %w)", err, snapErr)
	}

	g := graph.Build(snap.Records)
	if g.Len() == 0 {
		return fmt.Errorf("loading border graph: %w (snapshot fallback: %w)", err, ErrEmptyDataset)
	}

	s.install(&loadedGraph{
		graph:    g,
		source:   fmt.Sprintf("snapshot:%d (%s)", snap.ID, snap.Source),
		loadedAt: time.Now(),
	}, outcomeSnapshot)

	return nil
}

// Refresh fetches the dataset, builds a new graph and swaps it in. Concurrent
// calls share one fetch. On failure the previous graph stays in place.
// The new dataset is saved as a snapshot in the background; see Wait.
func (s *RouteService) Refresh(ctx context.Context) (*models.GraphStats, error) {
	ch := s.group.DoChan("refresh", func() (any, error) {
		// Detached so a caller going away does not abort a fetch others wait on.
		return s.refresh(context.WithoutCancel(ctx))
	})

	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case res := <-ch:
		if res.Err != nil {
			return nil, res.Err
		}

		stats, _ := res.Val.(*models.GraphStats)

		return stats, nil
	}
}

func (s *RouteService) refresh(ctx context.Context) (*models.GraphStats, error) {
	start := time.Now()

	records, err := s.source.Fetch(ctx)
	if err != nil {
		metrics.GraphRefreshes.WithLabelValues(outcomeError).Inc()
		s.log.WithError(err).WithField("source", s.source.Name()).Warn("border data fetch failed")

		return nil, fmt.Errorf("fetching %s: %w", s.source.Name(), err)
	}

	g := graph.Build(records)
	if g.Len() == 0 {
		metrics.GraphRefreshes.WithLabelValues(outcomeError).Inc()
		s.log.WithField("source", s.source.Name()).Warn("border data empty, keeping previous graph")

		return nil, ErrEmptyDataset
	}

	loaded := &loadedGraph{graph: g, source: s.source.Name(), loadedAt: time.Now()}
	s.install(loaded, outcomeSuccess)

	s.log.WithFields(logrus.Fields{
		"countries": g.Len(),
		"edges":     g.Edges(),
		"duration":  time.Since(start).String(),
	}).Info("border graph refreshed")

	if s.snapshots != nil {
		s.persisting.Add(1)

		go func() {
			defer s.persisting.Done()
			s.persist(ctx, records)
		}()
	}

	return loaded.stats(), nil
}

// install swaps in a new graph and publishes its gauges.
func (s *RouteService) install(l *loadedGraph, outcome string) {
	s.current.Store(l)

	metrics.GraphCountries.Set(float64(l.graph.Len()))
	metrics.GraphEdges.Set(float64(l.graph.Edges()))
	metrics.GraphRefreshes.WithLabelValues(outcome).Inc()
}

// Wait blocks until background snapshot writes have finished.
func (s *RouteService) Wait() {
	s.persisting.Wait()
}

// persist stores records as a snapshot and prunes old ones. Failures are
// logged only; the graph is already live.
func (s *RouteService) persist(ctx context.Context, records []models.CountryRecord) {
	ctx, cancel := context.WithTimeout(ctx, snapshotTimeout)
	defer cancel()

	id, err := s.snapshots.SaveSnapshot(ctx, s.source.Name(), records)
	if err != nil {
		s.log.WithError(err).Warn("saving border snapshot failed")

		return
	}

	removed, err := s.snapshots.PruneSnapshots(ctx, snapshotRetention)
	if err != nil {
		s.log.WithError(err).Warn("pruning border snapshots failed")

		return
	}

	s.log.WithFields(logrus.Fields{"snapshot_id": id, "pruned": removed}).Debug("border snapshot saved")
}

func (s *RouteService) loaded() (*loadedGraph, error) {
	l := s.current.Load()
	if l == nil {
		return nil, models.ErrGraphNotLoaded
	}

	return l, nil
}

// FindRoute returns the shortest land route between two canonical country codes.
func (s *RouteService) FindRoute(_ context.Context, origin, destination string) ([]string, error) {
	l, err := s.loaded()
	if err != nil {
		return nil, err
	}

	route, err := graph.FindRoute(l.graph, origin, destination)
	if err != nil {
		var re *graph.RouteError
		if errors.As(err, &re) {
			metrics.RouteQueries.WithLabelValues(string(re.Kind)).Inc()
		}

		s.log.WithFields(logrus.Fields{
			"origin":      origin,
			"destination": destination,
		}).WithError(err).Debug("route not found")

		return nil, err
	}

	metrics.RouteQueries.WithLabelValues("found").Inc()
	metrics.RouteHops.Observe(float64(len(route) - 1))

	return route, nil
}

// Countries lists every country code in the current graph, sorted.
func (s *RouteService) Countries(_ context.Context) (*models.CountryListResult, error) {
	l, err := s.loaded()
	if err != nil {
		return nil, err
	}

	codes := l.graph.Codes()

	return &models.CountryListResult{Countries: codes, Count: len(codes)}, nil
}

// Country returns one country and its neighbours in source order.
func (s *RouteService) Country(_ context.Context, code string) (*models.CountryResult, error) {
	l, err := s.loaded()
	if err != nil {
		return nil, err
	}

	neighbours, ok := l.graph.Neighbours(code)
	if !ok {
		return nil, models.ErrCountryNotFound
	}

	return &models.CountryResult{Code: code, Neighbours: neighbours}, nil
}

// Stats describes the current graph, or returns ErrGraphNotLoaded.
func (s *RouteService) Stats() (*models.GraphStats, error) {
	l, err := s.loaded()
	if err != nil {
		return nil, err
	}

	return l.stats(), nil
}
