package service

import (
	"context"
	"sync"

	"github.com/persistorai/landroute/internal/models"
)

// mockSource returns configured records and counts fetches.
type mockSource struct {
	mu    sync.Mutex
	calls int

	fetch func(ctx context.Context) ([]models.CountryRecord, error)
}

func (m *mockSource) Fetch(ctx context.Context) ([]models.CountryRecord, error) {
	m.mu.Lock()
	m.calls++
	m.mu.Unlock()

	return m.fetch(ctx)
}

func (m *mockSource) Name() string { return "mock://countries" }

func (m *mockSource) fetchCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()

	return m.calls
}

// mockSnapshotStore records calls and returns configured responses.
type mockSnapshotStore struct {
	mu    sync.Mutex
	calls []string
	saved [][]models.CountryRecord

	latest  func(ctx context.Context) (*models.Snapshot, error)
	saveErr error
	// saveGate, when set, holds SaveSnapshot until it is closed.
	saveGate chan struct{}
}

func (m *mockSnapshotStore) record(name string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.calls = append(m.calls, name)
}

func (m *mockSnapshotStore) SaveSnapshot(_ context.Context, _ string, records []models.CountryRecord) (int64, error) {
	if m.saveGate != nil {
		<-m.saveGate
	}

	m.record("SaveSnapshot")

	m.mu.Lock()
	defer m.mu.Unlock()

	if m.saveErr != nil {
		return 0, m.saveErr
	}

	m.saved = append(m.saved, records)

	return int64(len(m.saved)), nil
}

func (m *mockSnapshotStore) LatestSnapshot(ctx context.Context) (*models.Snapshot, error) {
	m.record("LatestSnapshot")
	if m.latest == nil {
		return nil, models.ErrSnapshotNotFound
	}

	return m.latest(ctx)
}

func (m *mockSnapshotStore) PruneSnapshots(_ context.Context, _ int) (int, error) {
	m.record("PruneSnapshots")
	return 0, nil
}

func (m *mockSnapshotStore) getCalls() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	cp := make([]string, len(m.calls))
	copy(cp, m.calls)
	return cp
}

// mockRefresher counts refresh calls.
type mockRefresher struct {
	mu    sync.Mutex
	calls int
	err   error
}

func (m *mockRefresher) Refresh(_ context.Context) (*models.GraphStats, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.calls++

	return &models.GraphStats{}, m.err
}

func (m *mockRefresher) count() int {
	m.mu.Lock()
	defer m.mu.Unlock()

	return m.calls
}
