package models

import (
	"errors"
	"time"
)

// ErrSnapshotNotFound is returned when no border snapshot has been stored yet.
var ErrSnapshotNotFound = errors.New("snapshot not found")

// Snapshot is a persisted copy of the records from one successful fetch.
type Snapshot struct {
	ID        int64           `json:"id"`
	Source    string          `json:"source"`
	CreatedAt time.Time       `json:"created_at"`
	Records   []CountryRecord `json:"records"`
}
