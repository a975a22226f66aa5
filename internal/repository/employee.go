package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/UnknownOlympus/hestia/internal/lib/digest"
	"github.com/UnknownOlympus/hestia/internal/models"
	"github.com/jackc/pgx/v5"
)

const employeeColumns = `id, email, name, password, salary, dept`

// FindByCredentials returns the employee whose email and password digest both match.
func (r *Repository) FindByCredentials(ctx context.Context, email, password string) (models.Employee, error) {
	defer r.observe("find_by_credentials", time.Now())

	query := `SELECT ` + employeeColumns + ` FROM employees WHERE email = $1 AND password = $2`

	employee, err := scanEmployee(r.db.QueryRow(ctx, query, email, digest.Password(password)))
	if err != nil {
		return models.Employee{}, fmt.Errorf("failed to find employee by credentials: %w", err)
	}

	return employee, nil
}

// GetEmployeeByID retrieves an employee from the database by their ID.
func (r *Repository) GetEmployeeByID(ctx context.Context, identifier int) (models.Employee, error) {
	defer r.observe("get_employee_by_id", time.Now())

	query := `SELECT ` + employeeColumns + ` FROM employees WHERE id = $1`

	employee, err := scanEmployee(r.db.QueryRow(ctx, query, identifier))
	if err != nil {
		return models.Employee{}, fmt.Errorf("failed to get employee by id: %w", err)
	}

	return employee, nil
}

// ListEmployees returns every employee ordered by id.
func (r *Repository) ListEmployees(ctx context.Context) ([]models.Employee, error) {
	defer r.observe("list_employees", time.Now())

	query := `SELECT ` + employeeColumns + ` FROM employees ORDER BY id`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list employees: %w", err)
	}
	defer rows.Close()

	employees := make([]models.Employee, 0)
	for rows.Next() {
		var employee models.Employee
		if err = rows.Scan(&employee.ID, &employee.Email, &employee.Name, &employee.Password,
			&employee.Salary, &employee.Dept); err != nil {
			return nil, fmt.Errorf("failed to scan employee row: %w", err)
		}
		employees = append(employees, employee)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate employee rows: %w", err)
	}

	return employees, nil
}

// SaveEmployee inserts a new employee and returns the generated id.
// Duplicate emails are not checked here.
func (r *Repository) SaveEmployee(ctx context.Context, employee models.NewEmployee) (int, error) {
	defer r.observe("save_employee", time.Now())

	query := `
		INSERT INTO employees (email, name, password, salary, dept)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id;
	`

	var identifier int
	err := r.db.QueryRow(ctx, query,
		employee.Email, employee.Name, digest.Password(employee.Password), employee.Salary, employee.Dept,
	).Scan(&identifier)
	if err != nil {
		return 0, fmt.Errorf("failed to save employee: %w", err)
	}

	return identifier, nil
}

// UpdateEmployee applies the fields present in update to the employee with the given id.
// An empty update executes nothing.
func (r *Repository) UpdateEmployee(ctx context.Context, identifier int, update models.EmployeeUpdate) error {
	query, args, ok := buildEmployeeUpdate(identifier, update)
	if !ok {
		return nil
	}

	defer r.observe("update_employee", time.Now())

	_, err := r.db.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("failed to update employee data: %w", err)
	}

	return nil
}

// DeleteEmployee removes the employee with the given id.
func (r *Repository) DeleteEmployee(ctx context.Context, identifier int) error {
	defer r.observe("delete_employee", time.Now())

	tag, err := r.db.Exec(ctx, `DELETE FROM employees WHERE id = $1`, identifier)
	if err != nil {
		return fmt.Errorf("failed to delete employee: %w", err)
	}

	if tag.RowsAffected() == 0 {
		return fmt.Errorf("failed to delete employee %d: %w", identifier, ErrNotFound)
	}

	return nil
}

func scanEmployee(row pgx.Row) (models.Employee, error) {
	var employee models.Employee

	err := row.Scan(&employee.ID, &employee.Email, &employee.Name, &employee.Password, &employee.Salary, &employee.Dept)
	if errors.Is(err, pgx.ErrNoRows) {
		return models.Employee{}, ErrNotFound
	}
	if err != nil {
		return models.Employee{}, err
	}

	return employee, nil
}
