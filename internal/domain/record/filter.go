package record

// Field names a filterable property of a Record.
type Field int

const (
	FieldOrigin Field = iota + 1
	FieldDate
)

func (f Field) String() string {
	switch f {
	case FieldOrigin:
		return "origin"
	case FieldDate:
		return "date"
	default:
		return "unknown"
	}
}

// Filter narrows a query. Zero values mean "no constraint".
// Date is compared against the calendar-date part of Datetime (YYYY-MM-DD);
// it is not validated, a malformed value simply matches nothing.
type Filter struct {
	Origin string `json:"origin,omitempty"`
	Date   string `json:"date,omitempty"`
}

// Predicate is an equality test of one field against a value.
type Predicate struct {
	Field Field
	Value string
}

// Predicates returns the conjunction described by the filter, in a stable order.
func (f Filter) Predicates() []Predicate {
	var preds []Predicate
	if f.Origin != "" {
		preds = append(preds, Predicate{Field: FieldOrigin, Value: f.Origin})
	}
	if f.Date != "" {
		preds = append(preds, Predicate{Field: FieldDate, Value: f.Date})
	}
	return preds
}
