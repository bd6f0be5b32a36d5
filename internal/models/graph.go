package models

import "time"

// RouteResponse is the payload returned for a successful route query.
type RouteResponse struct {
	Route []string `json:"route"`
}

// CountryResult holds a country code with its land neighbours.
type CountryResult struct {
	Code       string   `json:"code"`
	Neighbours []string `json:"neighbours"`
}

// CountryListResult lists every country code known to the loaded graph.
type CountryListResult struct {
	Countries []string `json:"countries"`
	Count     int      `json:"count"`
}

// GraphStats describes the currently loaded border graph.
type GraphStats struct {
	Countries int       `json:"countries"`
	Edges     int       `json:"edges"`
	Source    string    `json:"source"`
	LoadedAt  time.Time `json:"loaded_at"`
}
