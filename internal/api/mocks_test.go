package api_test

import (
	"context"

	"github.com/persistorai/landroute/internal/models"
)

// mockService implements api.Service for testing.
type mockService struct {
	findRouteFn func(ctx context.Context, origin, destination string) ([]string, error)
	countriesFn func(ctx context.Context) (*models.CountryListResult, error)
	countryFn   func(ctx context.Context, code string) (*models.CountryResult, error)
	refreshFn   func(ctx context.Context) (*models.GraphStats, error)
	statsFn     func() (*models.GraphStats, error)
}

func (m *mockService) FindRoute(ctx context.Context, origin, destination string) ([]string, error) {
	return m.findRouteFn(ctx, origin, destination)
}

func (m *mockService) Countries(ctx context.Context) (*models.CountryListResult, error) {
	return m.countriesFn(ctx)
}

func (m *mockService) Country(ctx context.Context, code string) (*models.CountryResult, error) {
	return m.countryFn(ctx, code)
}

func (m *mockService) Refresh(ctx context.Context) (*models.GraphStats, error) {
	return m.refreshFn(ctx)
}

func (m *mockService) Stats() (*models.GraphStats, error) {
	if m.statsFn == nil {
		return nil, models.ErrGraphNotLoaded
	}

	return m.statsFn()
}

// mockHealthChecker implements api.HealthChecker for testing.
type mockHealthChecker struct {
	err error
}

func (m *mockHealthChecker) HealthCheck(_ context.Context) error {
	return m.err
}
