package main

import (
	"context"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/persistorai/landroute/client"
)

func newRefreshCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "refresh",
		Short: "Reload the server's border graph (requires admin token)",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			stats, err := apiClient.Refresh(context.Background())
			if err != nil {
				fatal("refresh", err)
			}
			if err := output(cmd.OutOrStdout(), statsView(stats)); err != nil {
				fatal("output", err)
			}
		},
	}
}

func statsView(s *client.GraphStats) view {
	return view{
		data:    s,
		headers: []string{"COUNTRIES", "EDGES", "SOURCE"},
		rows:    [][]string{{strconv.Itoa(s.Countries), strconv.Itoa(s.Edges), s.Source}},
		quiet:   fmt.Sprintf("%d %d", s.Countries, s.Edges),
	}
}

func newHealthCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "health",
		Short: "Check server health",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			h, err := apiClient.Health(context.Background())
			if err != nil {
				fatal("health", err)
			}
			if err := output(cmd.OutOrStdout(), healthView(h)); err != nil {
				fatal("output", err)
			}
		},
	}
}

func healthView(h *client.HealthResponse) view {
	countries := "-"
	if h.Graph != nil {
		countries = strconv.Itoa(h.Graph.Countries)
	}
	return view{
		data:    h,
		headers: []string{"STATUS", "VERSION", "COUNTRIES", "SNAPSHOTS"},
		rows:    [][]string{{h.Status, h.Version, countries, h.Snapshots}},
		quiet:   h.Status,
	}
}
