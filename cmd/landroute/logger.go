package main

import (
	"os"

	"github.com/sirupsen/logrus"

	"github.com/persistorai/landroute/internal/config"
)

// newLogger builds the process logger from config. LOG_LEVEL is validated by
// config.Load, so a parse failure here falls back to info.
func newLogger(cfg *config.Config) *logrus.Logger {
	log := logrus.New()
	log.SetOutput(os.Stdout)

	if cfg.LogFormat == "text" {
		log.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	} else {
		log.SetFormatter(&logrus.JSONFormatter{})
	}

	level, err := logrus.ParseLevel(cfg.LogLevel)
	if err != nil {
		level = logrus.InfoLevel
	}
	log.SetLevel(level)

	return log
}
