package api

import (
	"context"

	"github.com/persistorai/landroute/internal/models"
)

// RouteRepository defines route queries used by RouteHandler.
type RouteRepository interface {
	FindRoute(ctx context.Context, origin, destination string) ([]string, error)
}

// CountryRepository defines country lookups used by CountryHandler.
type CountryRepository interface {
	Countries(ctx context.Context) (*models.CountryListResult, error)
	Country(ctx context.Context, code string) (*models.CountryResult, error)
}

// GraphRefresher reloads the border graph on demand.
type GraphRefresher interface {
	Refresh(ctx context.Context) (*models.GraphStats, error)
}

// GraphStatser reports on the currently loaded graph.
type GraphStatser interface {
	Stats() (*models.GraphStats, error)
}

// HealthChecker pings a backing store.
type HealthChecker interface {
	HealthCheck(ctx context.Context) error
}
