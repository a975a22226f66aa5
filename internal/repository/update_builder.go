package repository

import (
	"strconv"
	"strings"

	"github.com/UnknownOlympus/hestia/internal/lib/digest"
	"github.com/UnknownOlympus/hestia/internal/models"
)

// setBuilder accumulates "column = $n" assignments and their bound values.
type setBuilder struct {
	assignments []string
	args        []any
}

func (b *setBuilder) add(column string, value any) {
	b.args = append(b.args, value)
	b.assignments = append(b.assignments, column+" = $"+strconv.Itoa(len(b.args)))
}

// buildEmployeeUpdate renders a single bound UPDATE statement for the present fields.
// ok is false when the update has no fields.
func buildEmployeeUpdate(identifier int, update models.EmployeeUpdate) (string, []any, bool) {
	var builder setBuilder

	if update.Name != nil {
		builder.add("name", *update.Name)
	}
	if update.Salary != nil {
		builder.add("salary", *update.Salary)
	}
	if update.Dept != nil {
		builder.add("dept", *update.Dept)
	}
	if update.Password != nil {
		builder.add("password", digest.Password(*update.Password))
	}

	if len(builder.assignments) == 0 {
		return "", nil, false
	}

	builder.args = append(builder.args, identifier)
	query := "UPDATE employees SET " + strings.Join(builder.assignments, ", ") +
		" WHERE id = $" + strconv.Itoa(len(builder.args))

	return query, builder.args, true
}
