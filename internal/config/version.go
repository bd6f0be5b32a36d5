package config

// Version is the landroute binary version.
// Set at build time via: -ldflags "-X github.com/persistorai/landroute/internal/config.Version=<tag>"
var Version = "dev"
