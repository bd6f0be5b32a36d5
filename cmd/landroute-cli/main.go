package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/persistorai/landroute/client"
)

// Build-time variables set via ldflags.
var (
	version   = "0.1.0"
	commit    = ""
	buildDate = ""
)

const defaultURL = "http://localhost:8080"

var (
	apiClient *client.Client
	flagURL   string
	flagToken string
	flagFmt   string
)

func versionString() string {
	if commit != "" && buildDate != "" {
		return fmt.Sprintf("landroute version %s (commit: %s, built: %s)", version, commit, buildDate)
	}
	return fmt.Sprintf("landroute version %s-dev", version)
}

type configFile struct {
	URL        string `yaml:"url"`
	AdminToken string `yaml:"admin_token"`
	// Named server profiles; ActiveProfile selects one, "default" otherwise.
	Profiles      map[string]configProfile `yaml:"profiles"`
	ActiveProfile string                   `yaml:"active_profile"`
}

type configProfile struct {
	URL        string `yaml:"url"`
	AdminToken string `yaml:"admin_token"`
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:     "landroute",
		Short:   "landroute CLI: shortest land routes between countries",
		Version: versionString(),
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if err := validateFormat(flagFmt); err != nil {
				return err
			}
			resolveConfig()
			var opts []client.Option
			if flagToken != "" {
				opts = append(opts, client.WithAdminToken(flagToken))
			}
			apiClient = client.New(flagURL, opts...)
			return nil
		},
		SilenceUsage: true,
	}
	rootCmd.SetVersionTemplate("{{.Version}}\n")

	rootCmd.PersistentFlags().StringVar(&flagURL, "url", defaultURL, "landroute server URL (env: LANDROUTE_URL)")
	rootCmd.PersistentFlags().StringVar(&flagToken, "admin-token", "", "Admin token for refresh (env: LANDROUTE_ADMIN_TOKEN)")
	rootCmd.PersistentFlags().StringVar(&flagFmt, "format", "json", "Output format: json|table|quiet")

	rootCmd.AddCommand(newRouteCmd())
	rootCmd.AddCommand(newCountriesCmd())
	rootCmd.AddCommand(newCountryCmd())
	rootCmd.AddCommand(newRefreshCmd())
	rootCmd.AddCommand(newHealthCmd())

	return rootCmd
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func validateFormat(f string) error {
	switch f {
	case "json", "table", "quiet":
		return nil
	default:
		return fmt.Errorf("invalid --format %q (want json, table or quiet)", f)
	}
}

func resolveConfig() {
	// Flag takes precedence, then env, then config file.
	if flagURL == defaultURL {
		if v := os.Getenv("LANDROUTE_URL"); v != "" {
			flagURL = v
		}
	}
	if flagToken == "" {
		flagToken = os.Getenv("LANDROUTE_ADMIN_TOKEN")
	}

	cfg, err := loadConfigFile()
	if err != nil {
		return
	}

	resolvedURL, resolvedToken := cfg.URL, cfg.AdminToken
	if cfg.Profiles != nil {
		profileName := cfg.ActiveProfile
		if profileName == "" {
			profileName = "default"
		}
		if p, ok := cfg.Profiles[profileName]; ok {
			if p.URL != "" {
				resolvedURL = p.URL
			}
			if p.AdminToken != "" {
				resolvedToken = p.AdminToken
			}
		}
	}
	if flagURL == defaultURL && resolvedURL != "" {
		flagURL = resolvedURL
	}
	if flagToken == "" && resolvedToken != "" {
		flagToken = resolvedToken
	}
}

// loadConfigFile reads ~/.landroute/config.yaml.
func loadConfigFile() (*configFile, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(filepath.Join(home, ".landroute", "config.yaml"))
	if err != nil {
		return nil, err
	}
	var cfg configFile
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	return &cfg, nil
}

func fatal(msg string, err error) {
	fmt.Fprintf(os.Stderr, "Error: %s: %v\n", msg, err)
	os.Exit(1)
}
