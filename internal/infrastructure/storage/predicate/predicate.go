// Package predicate renders record filters as parameterized SQL.
package predicate

import (
	"fmt"
	"strings"

	"datareceiver/internal/domain/record"
)

// Dialect maps record fields to SQL expressions and renders placeholders.
type Dialect struct {
	Columns     map[record.Field]string
	Placeholder func(n int) string
}

// Question renders "?" placeholders (SQLite).
func Question(int) string { return "?" }

// Dollar renders "$n" placeholders (PostgreSQL).
func Dollar(n int) string { return fmt.Sprintf("$%d", n) }

// Where returns " WHERE <expr> = <ph> AND ..." with its arguments, or an empty
// clause when preds is empty. Values are never inlined into the SQL text.
func (d Dialect) Where(preds []record.Predicate) (string, []any, error) {
	if len(preds) == 0 {
		return "", nil, nil
	}

	conditions := make([]string, 0, len(preds))
	args := make([]any, 0, len(preds))

	for i, p := range preds {
		expr, ok := d.Columns[p.Field]
		if !ok {
			return "", nil, fmt.Errorf("no column for filter field %s", p.Field)
		}
		conditions = append(conditions, expr+" = "+d.Placeholder(i+1))
		args = append(args, p.Value)
	}

	return " WHERE " + strings.Join(conditions, " AND "), args, nil
}
