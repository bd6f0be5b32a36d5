package main

import (
	"context"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/persistorai/landroute/client"
)

func newRouteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "route <origin> <destination>",
		Short: "Find the shortest land route between two countries",
		Example: "  landroute route CZE ITA\n" +
			"  landroute route cze ita --format quiet",
		Args: cobra.ExactArgs(2),
		Run: func(cmd *cobra.Command, args []string) {
			route, err := apiClient.Route(context.Background(), args[0], args[1])
			if err != nil {
				fatal("route", err)
			}
			if err := output(cmd.OutOrStdout(), routeView(route)); err != nil {
				fatal("output", err)
			}
		},
	}
}

func routeView(route []string) view {
	rows := make([][]string, len(route))
	for i, code := range route {
		rows[i] = []string{strconv.Itoa(i), code}
	}
	return view{
		data:    client.RouteResponse{Route: route},
		headers: []string{"HOP", "COUNTRY"},
		rows:    rows,
		quiet:   strings.Join(route, " "),
	}
}
