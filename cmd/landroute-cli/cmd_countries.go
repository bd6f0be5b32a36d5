package main

import (
	"context"
	"strings"

	"github.com/spf13/cobra"

	"github.com/persistorai/landroute/client"
)

func newCountriesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "countries",
		Short: "List every country code the server knows",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			list, err := apiClient.Countries(context.Background())
			if err != nil {
				fatal("countries", err)
			}
			if err := output(cmd.OutOrStdout(), countriesView(list)); err != nil {
				fatal("output", err)
			}
		},
	}
}

func countriesView(list *client.CountryList) view {
	rows := make([][]string, len(list.Countries))
	for i, code := range list.Countries {
		rows[i] = []string{code}
	}
	return view{
		data:    list,
		headers: []string{"COUNTRY"},
		rows:    rows,
		quiet:   strings.Join(list.Countries, "\n"),
	}
}

func newCountryCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "country <code>",
		Short: "Show a country and its land neighbours",
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			country, err := apiClient.Country(context.Background(), args[0])
			if err != nil {
				fatal("country", err)
			}
			if err := output(cmd.OutOrStdout(), countryView(country)); err != nil {
				fatal("output", err)
			}
		},
	}
}

func countryView(c *client.Country) view {
	return view{
		data:    c,
		headers: []string{"COUNTRY", "NEIGHBOURS"},
		rows:    [][]string{{c.Code, strings.Join(c.Neighbours, ",")}},
		quiet:   strings.Join(c.Neighbours, " "),
	}
}
