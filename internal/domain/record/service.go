package record

import (
	"context"
	"errors"
	"fmt"
	"time"

	"golang.org/x/exp/slog"
)

// Service defines the business logic for received data
type Service struct {
	repo Repository
	log  *slog.Logger
	now  func() time.Time
}

type Servicer interface {
	Submit(ctx context.Context, sub Submission) (*Record, error)
	Query(ctx context.Context, filter Filter) ([]Record, error)
}

// Option customizes a Service.
type Option func(*Service)

// WithClock replaces time.Now as the source of Record.Datetime.
func WithClock(now func() time.Time) Option {
	return func(s *Service) {
		s.now = now
	}
}

// NewService creates a new record service
func NewService(repo Repository, log *slog.Logger, opts ...Option) Servicer {
	s := &Service{
		repo: repo,
		log:  log.With("component", "record_service"),
		now:  time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Submit validates the submission, stamps it and stores it.
func (s *Service) Submit(ctx context.Context, sub Submission) (*Record, error) {
	if err := sub.Validate(); err != nil {
		s.log.Warn("rejected submission", "id", sub.ID, "origin", sub.Origin, "error", err)
		return nil, err
	}

	rec := &Record{
		ID:       sub.ID,
		Origin:   sub.Origin,
		MimeData: sub.MimeData,
		Datetime: FormatTime(s.now()),
	}

	if err := s.repo.Insert(ctx, rec); err != nil {
		if errors.Is(err, ErrDuplicateID) {
			s.log.Warn("duplicate record id", "id", rec.ID, "origin", rec.Origin)
			return nil, ErrDuplicateID
		}
		s.log.Error("failed to insert record", "id", rec.ID, "error", err)
		return nil, fmt.Errorf("submit record: %w", err)
	}

	s.log.Info("data saved to database",
		"id", rec.ID,
		"origin", rec.Origin,
		"mime_data", rec.MimeData,
		"datetime", rec.Datetime,
	)

	return rec, nil
}

// Query returns the records matching filter
func (s *Service) Query(ctx context.Context, filter Filter) ([]Record, error) {
	records, err := s.repo.Query(ctx, filter)
	if err != nil {
		s.log.Error("failed to fetch records", "origin", filter.Origin, "date", filter.Date, "error", err)
		return nil, fmt.Errorf("query records: %w", err)
	}
	if records == nil {
		records = []Record{}
	}

	s.log.Debug("records fetched", "origin", filter.Origin, "date", filter.Date, "count", len(records))
	return records, nil
}
