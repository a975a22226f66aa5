package console

import (
	"strconv"
	"strings"

	"github.com/UnknownOlympus/hestia/internal/models"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
)

const ruleWidth = 40

var rule = strings.Repeat("=", ruleWidth)

// banner renders a title framed by rules.
func banner(title string) string {
	return rule + "\n" + strings.Repeat(" ", 10) + title + "\n" + rule
}

// employeeTable renders employees as a bordered grid. Password digests are never shown.
func employeeTable(employees ...models.Employee) string {
	rows := make([][]string, 0, len(employees))
	for _, employee := range employees {
		rows = append(rows, []string{
			strconv.Itoa(employee.ID),
			employee.Name,
			employee.Email,
			employee.Dept,
			strconv.FormatFloat(employee.Salary, 'f', 2, 64),
		})
	}

	return table.New().
		Border(lipgloss.NormalBorder()).
		BorderRow(true).
		Headers("ID", "Name", "Email", "Department", "Salary").
		Rows(rows...).
		Render()
}
