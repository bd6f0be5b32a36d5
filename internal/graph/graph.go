// Package graph holds the land-border adjacency graph and the breadth-first
// route finder that runs over it.
//
// A Graph is immutable once built. It is safe to share a single Graph between
// any number of goroutines; replacing it means building a new one and swapping
// the reference.
package graph

import (
	"maps"
	"slices"
	"strings"

	"github.com/persistorai/landroute/internal/models"
)

// Graph maps each country code to the ordered codes of its land neighbours.
type Graph struct {
	adj   map[string][]string
	edges int
}

// Build converts country records into an adjacency graph.
//
// Records with a blank code are dropped. When a code appears more than once
// the first record wins and later ones are discarded, not merged. A nil
// neighbour list is stored as empty. Neighbour codes are not required to exist
// as keys; a dangling reference is simply unreachable.
func Build(records []models.CountryRecord) *Graph {
	adj := make(map[string][]string, len(records))
	edges := 0

	for _, r := range records {
		if strings.TrimSpace(r.Code) == "" {
			continue
		}

		if _, seen := adj[r.Code]; seen {
			continue
		}

		neighbours := make([]string, len(r.Neighbours))
		copy(neighbours, r.Neighbours)

		adj[r.Code] = neighbours
		edges += len(neighbours)
	}

	return &Graph{adj: adj, edges: edges}
}

// Has reports whether code is a key of the graph.
func (g *Graph) Has(code string) bool {
	_, ok := g.adj[code]
	return ok
}

// Neighbours returns a copy of the neighbour list for code, in source order.
// The second result is false when code is not a key of the graph.
func (g *Graph) Neighbours(code string) ([]string, bool) {
	n, ok := g.adj[code]
	if !ok {
		return nil, false
	}

	return slices.Clone(n), true
}

// Len returns the number of countries in the graph.
func (g *Graph) Len() int {
	return len(g.adj)
}

// Edges returns the number of directed neighbour references in the graph.
func (g *Graph) Edges() int {
	return g.edges
}

// Codes returns every country code in the graph, sorted.
func (g *Graph) Codes() []string {
	return slices.Sorted(maps.Keys(g.adj))
}
