package store

import "github.com/MKhiriev/worldsync/internal/logger"

// Storages groups the repositories of the daemon.
type Storages struct {
	JournalRepository JournalRepository
}

// NewStorages builds every repository on db.
func NewStorages(db *DB, log *logger.Logger) *Storages {
	return &Storages{
		JournalRepository: NewJournalRepository(db, log),
	}
}
