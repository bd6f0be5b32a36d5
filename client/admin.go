package client

import (
	"context"
	"net/http"
)

// Refresh asks the server to reload its border graph. Requires an admin token.
// On failure the server keeps serving its previous graph.
func (c *Client) Refresh(ctx context.Context) (*GraphStats, error) {
	var resp GraphStats
	if err := c.do(ctx, http.MethodPost, "/api/v1/admin/refresh", nil, true, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}
