package db_test

import (
	"testing"

	"github.com/persistorai/landroute/internal/db"
)

func TestSchemaVersion(t *testing.T) {
	t.Parallel()

	if v := db.SchemaVersion(); v < 1 {
		t.Errorf("SchemaVersion() = %d, want >= 1", v)
	}
}
