package client

import (
	"context"
	"net/http"
	"net/url"
)

// Route returns the shortest land route between two country codes. Failures
// to find a route come back as *APIError; see IsUnknownCountry and IsNoRoute.
func (c *Client) Route(ctx context.Context, origin, destination string) ([]string, error) {
	path := "/api/v1/routing/" + url.PathEscape(origin) + "/" + url.PathEscape(destination)

	var resp RouteResponse
	if err := c.do(ctx, http.MethodGet, path, nil, false, &resp); err != nil {
		return nil, err
	}
	return resp.Route, nil
}

// Countries lists every country code in the server's current graph.
func (c *Client) Countries(ctx context.Context) (*CountryList, error) {
	var resp CountryList
	if err := c.do(ctx, http.MethodGet, "/api/v1/countries", nil, false, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// Country returns one country with its land neighbours.
func (c *Client) Country(ctx context.Context, code string) (*Country, error) {
	var resp Country
	if err := c.do(ctx, http.MethodGet, "/api/v1/countries/"+url.PathEscape(code), nil, false, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}
