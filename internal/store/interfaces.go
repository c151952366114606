package store

import (
	"context"
	"time"

	"github.com/MKhiriev/worldsync/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// JournalRepository persists the remote events observed by synchronizers.
type JournalRepository interface {
	// Append stores records in one statement. Calling it with no records
	// is a no-op.
	Append(ctx context.Context, records ...models.JournalRecord) error

	// List returns matching records, newest first.
	List(ctx context.Context, filter models.JournalFilter) ([]models.JournalRecord, error)

	// Prune deletes records created before olderThan and returns how many
	// were removed.
	Prune(ctx context.Context, olderThan time.Time) (int64, error)
}
