package store

import (
	"time"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/worldsync/models"
)

const journalTable = "journal"

// defaultListLimit caps a listing when the filter sets no limit.
const defaultListLimit = 100

var journalColumns = []string{
	"id",
	"service",
	"session_id",
	"entity_id",
	"topic",
	"kind",
	"sender",
	"revision",
	"payload",
	"created_at",
}

// psql is the statement builder for SQLite's "?" placeholders.
var psql = sq.StatementBuilder.PlaceholderFormat(sq.Question)

func buildInsertJournalQuery(records []models.JournalRecord) (string, []any, error) {
	insert := psql.Insert(journalTable).
		Columns(journalColumns[1:]...)

	for _, r := range records {
		createdAt := r.CreatedAt
		if createdAt.IsZero() {
			createdAt = time.Now()
		}
		insert = insert.Values(
			r.Service,
			r.SessionID,
			r.EntityID,
			r.Topic,
			string(r.Kind),
			r.Sender,
			int64(r.Revision),
			r.Payload,
			createdAt.UTC(),
		)
	}

	return insert.ToSql()
}

func buildSelectJournalQuery(filter models.JournalFilter) (string, []any, error) {
	limit := filter.Limit
	if limit == 0 {
		limit = defaultListLimit
	}

	query := psql.Select(journalColumns...).
		From(journalTable).
		OrderBy("id DESC").
		Limit(limit)

	if filter.Service != "" {
		query = query.Where(sq.Eq{"service": filter.Service})
	}
	if filter.SessionID != "" {
		query = query.Where(sq.Eq{"session_id": filter.SessionID})
	}
	if filter.Kind != "" {
		query = query.Where(sq.Eq{"kind": string(filter.Kind)})
	}

	return query.ToSql()
}

func buildPruneJournalQuery(olderThan time.Time) (string, []any, error) {
	return psql.Delete(journalTable).
		Where(sq.Lt{"created_at": olderThan.UTC()}).
		ToSql()
}
