package record

import (
	"context"
)

// Repository is implemented by every storage backend.
// Implementations translate driver errors into ErrDuplicateID or ErrStorage.
type Repository interface {
	Insert(ctx context.Context, rec *Record) error
	Query(ctx context.Context, filter Filter) ([]Record, error)
}
