package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/sirupsen/logrus"

	"github.com/persistorai/landroute/internal/models"
)

// SnapshotStore persists the raw records of each successful fetch so the
// server can start from the last good dataset when the upstream is down.
type SnapshotStore struct {
	Base
}

// NewSnapshotStore creates a SnapshotStore.
func NewSnapshotStore(base Base) *SnapshotStore {
	return &SnapshotStore{Base: base}
}

// SaveSnapshot stores records in source order and returns the new snapshot ID.
func (s *SnapshotStore) SaveSnapshot(ctx context.Context, source string, records []models.CountryRecord) (int64, error) {
	ctx, cancel := withTimeout(ctx)
	defer cancel()

	tx, err := s.beginTx(ctx)
	if err != nil {
		return 0, fmt.Errorf("saving snapshot: %w", err)
	}

	defer tx.Rollback(ctx) //nolint:errcheck // best-effort rollback after commit.

	var id int64

	err = tx.QueryRow(ctx,
		`INSERT INTO border_snapshots (source, country_count) VALUES ($1, $2) RETURNING id`,
		source, len(records),
	).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("inserting snapshot: %w", err)
	}

	rows := make([][]any, len(records))
	for i, r := range records {
		neighbours := r.Neighbours
		if neighbours == nil {
			neighbours = []string{}
		}

		rows[i] = []any{id, i, r.Code, neighbours}
	}

	if _, err := tx.CopyFrom(ctx,
		pgx.Identifier{"border_snapshot_countries"},
		[]string{"snapshot_id", "position", "code", "neighbours"},
		pgx.CopyFromRows(rows),
	); err != nil {
		return 0, fmt.Errorf("copying snapshot countries: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return 0, fmt.Errorf("committing snapshot: %w", err)
	}

	s.Log.WithFields(logrus.Fields{
		"snapshot_id": id,
		"source":      source,
		"countries":   len(records),
	}).Debug("snapshot saved")

	return id, nil
}

// LatestSnapshot returns the most recently stored snapshot with its records
// in their original order. Returns models.ErrSnapshotNotFound when empty.
func (s *SnapshotStore) LatestSnapshot(ctx context.Context) (*models.Snapshot, error) {
	ctx, cancel := withTimeout(ctx)
	defer cancel()

	tx, err := s.beginReadTx(ctx)
	if err != nil {
		return nil, fmt.Errorf("loading latest snapshot: %w", err)
	}

	defer tx.Rollback(ctx) //nolint:errcheck // best-effort rollback after commit.

	var snap models.Snapshot

	err = tx.QueryRow(ctx,
		`SELECT id, source, created_at FROM border_snapshots ORDER BY created_at DESC, id DESC LIMIT 1`,
	).Scan(&snap.ID, &snap.Source, &snap.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, models.ErrSnapshotNotFound
		}

		return nil, fmt.Errorf("querying latest snapshot: %w", err)
	}

	rows, err := tx.Query(ctx,
		`SELECT code, neighbours FROM border_snapshot_countries WHERE snapshot_id = $1 ORDER BY position`,
		snap.ID,
	)
	if err != nil {
		return nil, fmt.Errorf("querying snapshot countries: %w", err)
	}

	snap.Records, err = pgx.CollectRows(rows, func(row pgx.CollectableRow) (models.CountryRecord, error) {
		var r models.CountryRecord
		err := row.Scan(&r.Code, &r.Neighbours)

		return r, err
	})
	if err != nil {
		return nil, fmt.Errorf("collecting snapshot countries: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("committing snapshot read: %w", err)
	}

	return &snap, nil
}

// PruneSnapshots deletes all but the newest keep snapshots and returns how
// many were removed.
func (s *SnapshotStore) PruneSnapshots(ctx context.Context, keep int) (int, error) {
	if keep < 1 {
		keep = 1
	}

	ctx, cancel := withTimeout(ctx)
	defer cancel()

	tag, err := s.Pool.Exec(ctx,
		`DELETE FROM border_snapshots WHERE id NOT IN (
			SELECT id FROM border_snapshots ORDER BY created_at DESC, id DESC LIMIT $1
		)`, keep)
	if err != nil {
		return 0, fmt.Errorf("pruning snapshots: %w", err)
	}

	return int(tag.RowsAffected()), nil
}
