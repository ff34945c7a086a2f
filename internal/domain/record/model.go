package record

import "time"

// TimeLayout is the ISO-8601 form of Record.Datetime: UTC, millisecond precision, "Z" suffix.
const TimeLayout = "2006-01-02T15:04:05.000Z07:00"

// DateLayout is the calendar-date form accepted by Filter.Date.
const DateLayout = "2006-01-02"

// Record is a single received data item. Datetime is assigned by the server.
type Record struct {
	ID       string `json:"id"`
	Origin   string `json:"origin"`
	MimeData string `json:"mime_data"`
	Datetime string `json:"datetime"`
}

// Submission is the caller-supplied part of a Record.
type Submission struct {
	ID       string
	Origin   string
	MimeData string
}

// Validate reports ErrMissingFields when any field is empty.
func (s Submission) Validate() error {
	if s.ID == "" || s.Origin == "" || s.MimeData == "" {
		return ErrMissingFields
	}
	return nil
}

// FormatTime renders t the way Datetime is persisted.
func FormatTime(t time.Time) string {
	return t.UTC().Format(TimeLayout)
}
