package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"datareceiver/internal/domain/record"
	"datareceiver/internal/infrastructure/storage/predicate"

	"github.com/mattn/go-sqlite3"
	"golang.org/x/exp/slog"
)

var dialect = predicate.Dialect{
	Columns: map[record.Field]string{
		record.FieldOrigin: "origin",
		record.FieldDate:   "DATE(datetime)",
	},
	Placeholder: predicate.Question,
}

type RecordRepository struct {
	db  *sql.DB
	log *slog.Logger
}

func NewRecordRepository(db *sql.DB, log *slog.Logger) *RecordRepository {
	return &RecordRepository{
		db:  db,
		log: log.With("component", "record_repository", "driver", "sqlite"),
	}
}

func (r *RecordRepository) Insert(ctx context.Context, rec *record.Record) error {
	const query = `
		INSERT INTO received_data (id, origin, mime_data, datetime)
		VALUES (?, ?, ?, ?)`

	_, err := r.db.ExecContext(ctx, query, rec.ID, rec.Origin, rec.MimeData, rec.Datetime)
	if err != nil {
		if isUniqueViolation(err) {
			return record.ErrDuplicateID
		}
		r.log.Error("failed to insert record", "id", rec.ID, "error", err)
		return fmt.Errorf("insert record: %w: %w", record.ErrStorage, err)
	}

	return nil
}

func (r *RecordRepository) Query(ctx context.Context, filter record.Filter) ([]record.Record, error) {
	where, args, err := dialect.Where(filter.Predicates())
	if err != nil {
		return nil, fmt.Errorf("build query: %w: %w", record.ErrStorage, err)
	}

	query := `SELECT id, origin, mime_data, datetime FROM received_data` + where + ` ORDER BY datetime, id`

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		r.log.Error("failed to query records", "filter", filter, "error", err)
		return nil, fmt.Errorf("query records: %w: %w", record.ErrStorage, err)
	}
	defer rows.Close()

	records := make([]record.Record, 0)
	for rows.Next() {
		var rec record.Record
		var id, origin, mimeData, datetime sql.NullString
		if err := rows.Scan(&id, &origin, &mimeData, &datetime); err != nil {
			return nil, fmt.Errorf("scan record: %w: %w", record.ErrStorage, err)
		}
		rec.ID = id.String
		rec.Origin = origin.String
		rec.MimeData = mimeData.String
		rec.Datetime = datetime.String
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate records: %w: %w", record.ErrStorage, err)
	}

	return records, nil
}

func isUniqueViolation(err error) bool {
	var sqliteErr sqlite3.Error
	if errors.As(err, &sqliteErr) {
		return sqliteErr.Code == sqlite3.ErrConstraint &&
			(sqliteErr.ExtendedCode == sqlite3.ErrConstraintUnique ||
				sqliteErr.ExtendedCode == sqlite3.ErrConstraintPrimaryKey)
	}
	return false
}
