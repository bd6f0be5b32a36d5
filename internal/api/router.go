package api

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/sirupsen/logrus"

	"github.com/persistorai/landroute/internal/middleware"
)

// Service is everything the router needs from the route service.
type Service interface {
	RouteRepository
	CountryRepository
	GraphRefresher
	GraphStatser
}

// RouterDeps holds all dependencies needed by the router.
type RouterDeps struct {
	Log           *logrus.Logger
	Service       Service
	DB            HealthChecker // nil when snapshots are disabled
	AdminToken    string
	CORSOrigins   []string
	Version       string
	SchemaVersion int
	RateLimit     int
	RateBurst     int
}

// maxBodySize caps request bodies; no endpoint takes more than an empty POST.
const maxBodySize = 64 << 10

// setupMiddleware configures all middleware on the Gin engine.
func setupMiddleware(ctx context.Context, r *gin.Engine, deps *RouterDeps) {
	r.SetTrustedProxies(nil) //nolint:errcheck // nil always succeeds.
	r.Use(middleware.RequestID(deps.Log))
	r.Use(ginLogger(deps.Log))
	r.Use(gin.Recovery())
	r.Use(middleware.SecurityHeaders())
	r.Use(middleware.MaxBodySize(maxBodySize))
	r.Use(cors.New(cors.Config{
		AllowOrigins:     deps.CORSOrigins,
		AllowMethods:     []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:     []string{"Content-Type", "Authorization"},
		MaxAge:           1 * time.Hour,
		AllowCredentials: false,
	}))
	r.Use(middleware.NewRateLimiter(ctx, deps.RateLimit, deps.RateBurst).Handler())
	r.Use(middleware.PrometheusMiddleware())

	// Metrics endpoint (unauthenticated, like health).
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))
}

// registerRoutes sets up all route handlers.
func registerRoutes(ctx context.Context, r *gin.Engine, deps *RouterDeps) {
	log := deps.Log

	routes := NewRouteHandler(deps.Service, log)
	countries := NewCountryHandler(deps.Service, log)
	admin := NewAdminHandler(deps.Service, log)
	health := NewHealthHandler(deps.Service, deps.DB, log, deps.Version, deps.SchemaVersion)

	// Unversioned path kept for existing callers.
	r.GET("/routing/:origin/:destination", routes.Route)

	api := r.Group("/api/v1")
	api.GET("/health", health.Liveness)
	api.GET("/ready", health.Readiness)
	api.GET("/routing/:origin/:destination", routes.Route)
	api.GET("/countries", countries.List)
	api.GET("/countries/:code", countries.Get)

	bfGuard := middleware.NewBruteForceGuard(ctx, log)
	adminGroup := api.Group("/admin",
		middleware.BruteForceMiddleware(bfGuard),
		middleware.AdminAuth(deps.AdminToken, log, bfGuard),
	)
	adminGroup.POST("/refresh", admin.Refresh)
}

// NewRouter creates and configures the Gin engine with all middleware and routes.
func NewRouter(ctx context.Context, deps *RouterDeps) http.Handler {
	r := gin.New()
	setupMiddleware(ctx, r, deps)
	registerRoutes(ctx, r, deps)

	return r
}
