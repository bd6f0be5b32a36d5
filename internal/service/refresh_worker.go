package service

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/persistorai/landroute/internal/models"
)

// Refresher reloads the border graph.
type Refresher interface {
	Refresh(ctx context.Context) (*models.GraphStats, error)
}

// RefreshWorker reloads the border graph on a fixed interval.
type RefreshWorker struct {
	refresher Refresher
	interval  time.Duration
	log       *logrus.Logger
}

// NewRefreshWorker creates a RefreshWorker. A non-positive interval makes Run
// return immediately.
func NewRefreshWorker(refresher Refresher, interval time.Duration, log *logrus.Logger) *RefreshWorker {
	return &RefreshWorker{refresher: refresher, interval: interval, log: log}
}

// Run refreshes on every tick until the context is cancelled.
func (w *RefreshWorker) Run(ctx context.Context) {
	if w.interval <= 0 {
		return
	}

	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	w.log.WithField("interval", w.interval.String()).Info("periodic graph refresh enabled")

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if _, err := w.refresher.Refresh(ctx); err != nil && ctx.Err() == nil {
				w.log.WithError(err).Warn("periodic graph refresh failed, keeping previous graph")
			}
		}
	}
}
