package store

import (
	"context"
	"database/sql"

	"github.com/MKhiriev/worldsync/internal/logger"
	"github.com/MKhiriev/worldsync/migrations"
)

// DB is an open journal database.
type DB struct {
	*sql.DB
	logger *logger.Logger
}

// Migrate applies the embedded schema migrations that have not run yet.
func (db *DB) Migrate(ctx context.Context) error {
	n, err := migrations.Migrate(ctx, db.DB)
	if err != nil {
		return err
	}
	if n > 0 {
		db.logger.Info().Str("func", "*DB.Migrate").Int("applied", n).Msg("journal schema migrated")
	}
	return nil
}
