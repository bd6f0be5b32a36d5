package client

import "time"

// RouteResponse is the body of a successful route query.
type RouteResponse struct {
	Route []string `json:"route"`
}

// CountryList lists the country codes known to the server.
type CountryList struct {
	Countries []string `json:"countries"`
	Count     int      `json:"count"`
}

// Country is a country code with its land neighbours in source order.
type Country struct {
	Code       string   `json:"code"`
	Neighbours []string `json:"neighbours"`
}

// GraphStats describes a loaded border graph.
type GraphStats struct {
	Countries int       `json:"countries"`
	Edges     int       `json:"edges"`
	Source    string    `json:"source"`
	LoadedAt  time.Time `json:"loaded_at"`
}

// HealthResponse is returned by the liveness endpoint.
type HealthResponse struct {
	Status        string      `json:"status"`
	Version       string      `json:"version"`
	Graph         *GraphStats `json:"graph"`
	Snapshots     string      `json:"snapshots"`
	SchemaVersion int         `json:"schema_version,omitempty"`
	UptimeSeconds float64     `json:"uptime_seconds"`
}
