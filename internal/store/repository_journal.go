package store

import (
	"context"
	"fmt"
	"time"

	"github.com/MKhiriev/worldsync/internal/logger"
	"github.com/MKhiriev/worldsync/models"
)

// journalRepository is the SQLite-backed implementation of
// [JournalRepository] over the "journal" table.
type journalRepository struct {
	*DB
	logger *logger.Logger
}

// NewJournalRepository constructs a [JournalRepository] backed by db.
func NewJournalRepository(db *DB, logger *logger.Logger) JournalRepository {
	logger.Debug().Msg("creating journal repository")
	return &journalRepository{
		DB:     db,
		logger: logger,
	}
}

func (r *journalRepository) Append(ctx context.Context, records ...models.JournalRecord) error {
	if len(records) == 0 {
		return nil
	}

	query, args, err := buildInsertJournalQuery(records)
	if err != nil {
		r.logger.Err(err).Str("func", "journalRepository.Append").Msg("failed to create query")
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	result, err := r.DB.ExecContext(ctx, query, args...)
	if err != nil {
		r.logger.Err(err).Str("func", "journalRepository.Append").Int("records", len(records)).Msg("failed to insert journal records")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	affected, err := result.RowsAffected()
	if err != nil || affected != int64(len(records)) {
		r.logger.Error().Err(err).Str("func", "journalRepository.Append").
			Int64("affected", affected).Int("records", len(records)).Msg("journal records were not saved")
		return ErrJournalNotSaved
	}

	return nil
}

func (r *journalRepository) List(ctx context.Context, filter models.JournalFilter) ([]models.JournalRecord, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSelectJournalQuery(filter)
	if err != nil {
		log.Err(err).Str("func", "journalRepository.List").Msg("failed to create query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "journalRepository.List").Str("service", filter.Service).Msg("failed to query journal")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	records := make([]models.JournalRecord, 0, 50)
	for rows.Next() {
		var (
			rec      models.JournalRecord
			kind     string
			revision int64
		)
		scanErr := rows.Scan(
			&rec.ID,
			&rec.Service,
			&rec.SessionID,
			&rec.EntityID,
			&rec.Topic,
			&kind,
			&rec.Sender,
			&revision,
			&rec.Payload,
			&rec.CreatedAt,
		)
		if scanErr != nil {
			log.Err(scanErr).Str("func", "journalRepository.List").Msg("failed to scan journal row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, scanErr)
		}
		rec.Kind = models.JournalKind(kind)
		rec.Revision = uint64(revision)
		records = append(records, rec)
	}
	if err = rows.Err(); err != nil {
		log.Err(err).Str("func", "journalRepository.List").Msg("error iterating journal rows")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return records, nil
}

func (r *journalRepository) Prune(ctx context.Context, olderThan time.Time) (int64, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildPruneJournalQuery(olderThan)
	if err != nil {
		log.Err(err).Str("func", "journalRepository.Prune").Msg("failed to create query")
		return 0, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	result, err := r.DB.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "journalRepository.Prune").Time("older_than", olderThan).Msg("failed to prune journal")
		return 0, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	return affected, nil
}
