package predicate

import (
	"testing"

	"datareceiver/internal/domain/record"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testColumns = map[record.Field]string{
	record.FieldOrigin: "origin",
	record.FieldDate:   "DATE(datetime)",
}

func TestDialect_Where(t *testing.T) {
	tests := []struct {
		name     string
		dialect  Dialect
		filter   record.Filter
		wantSQL  string
		wantArgs []any
	}{
		{
			name:    "no filter",
			dialect: Dialect{Columns: testColumns, Placeholder: Question},
			filter:  record.Filter{},
			wantSQL: "",
		},
		{
			name:     "origin",
			dialect:  Dialect{Columns: testColumns, Placeholder: Question},
			filter:   record.Filter{Origin: "web-app"},
			wantSQL:  " WHERE origin = ?",
			wantArgs: []any{"web-app"},
		},
		{
			name:     "origin and date with dollar placeholders",
			dialect:  Dialect{Columns: testColumns, Placeholder: Dollar},
			filter:   record.Filter{Origin: "web-app", Date: "2025-04-09"},
			wantSQL:  " WHERE origin = $1 AND DATE(datetime) = $2",
			wantArgs: []any{"web-app", "2025-04-09"},
		},
		{
			name:     "injection attempt stays a parameter",
			dialect:  Dialect{Columns: testColumns, Placeholder: Question},
			filter:   record.Filter{Origin: "x' OR '1'='1"},
			wantSQL:  " WHERE origin = ?",
			wantArgs: []any{"x' OR '1'='1"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sql, args, err := tt.dialect.Where(tt.filter.Predicates())
			require.NoError(t, err)
			assert.Equal(t, tt.wantSQL, sql)
			if tt.wantArgs == nil {
				assert.Empty(t, args)
			} else {
				assert.Equal(t, tt.wantArgs, args)
			}
		})
	}
}

func TestDialect_Where_UnknownField(t *testing.T) {
	d := Dialect{Columns: map[record.Field]string{record.FieldOrigin: "origin"}, Placeholder: Question}

	_, _, err := d.Where(record.Filter{Date: "2025-04-09"}.Predicates())

	assert.Error(t, err)
}
