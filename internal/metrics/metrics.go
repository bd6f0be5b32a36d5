// Package metrics defines Prometheus metrics for the route service.
package metrics

import "github.com/prometheus/client_golang/prometheus"

var (
	RequestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "landroute_http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path", "status"},
	)

	RequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "landroute_http_requests_total",
			Help: "Total HTTP requests",
		},
		[]string{"method", "path", "status"},
	)

	ErrorsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "landroute_errors_total",
			Help: "Total errors by type",
		},
		[]string{"type"},
	)

	RouteQueries = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "landroute_route_queries_total",
			Help: "Route queries by outcome",
		},
		[]string{"outcome"},
	)

	RouteHops = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "landroute_route_hops",
			Help:    "Border crossings in returned routes",
			Buckets: prometheus.LinearBuckets(0, 2, 10),
		},
	)

	GraphCountries = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "landroute_graph_countries",
			Help: "Countries in the loaded border graph",
		},
	)

	GraphEdges = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "landroute_graph_edges",
			Help: "Directed border references in the loaded graph",
		},
	)

	GraphRefreshes = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "landroute_graph_refresh_total",
			Help: "Graph load attempts by outcome",
		},
		[]string{"outcome"},
	)
)

func init() {
	prometheus.MustRegister(
		RequestDuration, RequestsTotal, ErrorsTotal,
		RouteQueries, RouteHops,
		GraphCountries, GraphEdges, GraphRefreshes,
	)
}
