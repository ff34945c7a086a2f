package postgres

import (
	"context"
	"errors"
	"fmt"

	"datareceiver/internal/domain/record"
	"datareceiver/internal/infrastructure/storage/predicate"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"golang.org/x/exp/slog"
)

// SQLSTATE unique_violation
const uniqueViolation = "23505"

// datetime is stored as ISO-8601 text, the first ten characters are the calendar date
var dialect = predicate.Dialect{
	Columns: map[record.Field]string{
		record.FieldOrigin: "origin",
		record.FieldDate:   "substr(datetime, 1, 10)",
	},
	Placeholder: predicate.Dollar,
}

type RecordRepository struct {
	pool *pgxpool.Pool
	log  *slog.Logger
}

func NewRecordRepository(pool *pgxpool.Pool, log *slog.Logger) *RecordRepository {
	return &RecordRepository{
		pool: pool,
		log:  log.With("component", "record_repository", "driver", "postgres"),
	}
}

func (r *RecordRepository) Insert(ctx context.Context, rec *record.Record) error {
	const query = `
		INSERT INTO received_data (id, origin, mime_data, datetime)
		VALUES ($1, $2, $3, $4)`

	_, err := r.pool.Exec(ctx, query, rec.ID, rec.Origin, rec.MimeData, rec.Datetime)
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

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		r.log.Error("failed to query records", "filter", filter, "error", err)
		return nil, fmt.Errorf("query records: %w: %w", record.ErrStorage, err)
	}
	defer rows.Close()

	return r.scanRecords(rows)
}

func (r *RecordRepository) scanRecords(rows pgx.Rows) ([]record.Record, error) {
	records := make([]record.Record, 0)
	for rows.Next() {
		var id, origin, mimeData, datetime *string
		if err := rows.Scan(&id, &origin, &mimeData, &datetime); err != nil {
			return nil, fmt.Errorf("scan record: %w: %w", record.ErrStorage, err)
		}
		records = append(records, record.Record{
			ID:       deref(id),
			Origin:   deref(origin),
			MimeData: deref(mimeData),
			Datetime: deref(datetime),
		})
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate records: %w: %w", record.ErrStorage, err)
	}
	return records, nil
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == uniqueViolation
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
