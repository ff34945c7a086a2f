package record

import (
	"errors"
)

var (
	ErrMissingFields = errors.New("missing required fields (id, origin, mime_data)")
	ErrDuplicateID   = errors.New("record id already exists")
	ErrStorage       = errors.New("record storage failure")
)
