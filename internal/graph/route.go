package graph

import (
	"errors"
	"fmt"
	"slices"
)

// ErrorKind classifies why a route query failed.
type ErrorKind string

// Route failure kinds.
const (
	KindUnknownCountry ErrorKind = "unknown_country"
	KindNoPath         ErrorKind = "no_path"
)

// Sentinels matched by RouteError via errors.Is.
var (
	ErrUnknownCountry = errors.New("unknown country code")
	ErrNoPath         = errors.New("no land route")
)

// RouteError is returned by FindRoute when no route can be produced.
type RouteError struct {
	Kind        ErrorKind
	Origin      string
	Destination string
	// Code is the offending code for KindUnknownCountry.
	Code    string
	Message string
}

// Error implements the error interface.
func (e *RouteError) Error() string { return e.Message }

// Is lets errors.Is match the kind sentinels.
func (e *RouteError) Is(target error) bool {
	switch e.Kind {
	case KindUnknownCountry:
		return target == ErrUnknownCountry
	case KindNoPath:
		return target == ErrNoPath
	default:
		return false
	}
}

func unknownCountry(origin, destination, code string) *RouteError {
	return &RouteError{
		Kind:        KindUnknownCountry,
		Origin:      origin,
		Destination: destination,
		Code:        code,
		Message:     fmt.Sprintf("Unknown country code: '%s'", code),
	}
}

func noPath(origin, destination string) *RouteError {
	return &RouteError{
		Kind:        KindNoPath,
		Origin:      origin,
		Destination: destination,
		Message:     fmt.Sprintf("No land route found from '%s' to '%s'", origin, destination),
	}
}

// FindRoute returns the shortest land route from origin to destination by hop
// count, origin and destination included.
//
// Origin is validated before destination, so when both are unknown the error
// names origin. Codes are compared as given; callers canonicalise case.
// Among several shortest routes the one discovered first wins, which follows
// the neighbour order of the source data.
func FindRoute(g *Graph, origin, destination string) ([]string, error) {
	if !g.Has(origin) {
		return nil, unknownCountry(origin, destination, origin)
	}

	if !g.Has(destination) {
		return nil, unknownCountry(origin, destination, destination)
	}

	if origin == destination {
		return []string{origin}, nil
	}

	return g.bfs(origin, destination)
}

// step is one discovered node; parent indexes the step it was reached from.
type step struct {
	code   string
	parent int
}

// bfs walks the graph level by level. Each discovered node is recorded once
// with a parent index, so branches never share a mutable path and the route
// is rebuilt only for the winning node. Nodes are marked visited on discovery,
// which bounds the walk by the number of distinct nodes.
func (g *Graph) bfs(origin, destination string) ([]string, error) {
	visited := map[string]struct{}{origin: {}}
	steps := []step{{code: origin, parent: -1}}

	for head := 0; head < len(steps); head++ {
		current := steps[head]

		if current.code == destination {
			return trail(steps, head), nil
		}

		for _, n := range g.adj[current.code] {
			if _, seen := visited[n]; seen {
				continue
			}

			visited[n] = struct{}{}
			steps = append(steps, step{code: n, parent: head})
		}
	}

	return nil, noPath(origin, destination)
}

// trail rebuilds the route ending at steps[i] by walking parent links.
func trail(steps []step, i int) []string {
	var route []string
	for ; i >= 0; i = steps[i].parent {
		route = append(route, steps[i].code)
	}

	slices.Reverse(route)

	return route
}
