package employees

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math"
	"net/mail"
	"strings"

	"github.com/UnknownOlympus/hestia/internal/models"
	"github.com/UnknownOlympus/hestia/internal/repository"
)

// ErrInvalidEmployee wraps every registration validation failure.
var ErrInvalidEmployee = errors.New("invalid employee data")

// Staff manages employee records for the admin and employee consoles.
type Staff struct {
	log  *slog.Logger
	repo repository.EmployeeRepoIface
}

func NewStaff(log *slog.Logger, repo repository.EmployeeRepoIface) *Staff {
	return &Staff{log: log, repo: repo}
}

func (s *Staff) initLogger(opn string) *slog.Logger {
	return s.log.With(
		slog.String("op", opn),
		slog.String("division", "employee"),
	)
}

// Register validates and stores a new employee, returning its id.
func (s *Staff) Register(ctx context.Context, employee models.NewEmployee) (int, error) {
	const opn = "Employee.Register"
	log := s.initLogger(opn)

	employee.Email = strings.TrimSpace(employee.Email)
	employee.Name = strings.TrimSpace(employee.Name)

	if err := ValidateNewEmployee(employee); err != nil {
		return 0, err
	}

	identifier, err := s.repo.SaveEmployee(ctx, employee)
	if err != nil {
		return 0, fmt.Errorf("failed to save new employee %s: %w", employee.Name, err)
	}

	log.InfoContext(ctx, "Employee registered", "id", identifier)

	return identifier, nil
}

// Get returns the employee with the given id. A missing row yields repository.ErrNotFound.
func (s *Staff) Get(ctx context.Context, identifier int) (models.Employee, error) {
	employee, err := s.repo.GetEmployeeByID(ctx, identifier)
	if err != nil {
		return models.Employee{}, fmt.Errorf("failed to get employee %d: %w", identifier, err)
	}

	return employee, nil
}

// List returns every employee.
func (s *Staff) List(ctx context.Context) ([]models.Employee, error) {
	employees, err := s.repo.ListEmployees(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list employees: %w", err)
	}

	return employees, nil
}

// Update applies the present fields of update. An empty update is a no-op.
func (s *Staff) Update(ctx context.Context, identifier int, update models.EmployeeUpdate) error {
	const opn = "Employee.Update"
	log := s.initLogger(opn)

	if update.IsEmpty() {
		log.DebugContext(ctx, "Nothing to update", "id", identifier)
		return nil
	}

	if update.Salary != nil {
		if err := validateSalary(*update.Salary); err != nil {
			return err
		}
	}

	if err := s.repo.UpdateEmployee(ctx, identifier, update); err != nil {
		return fmt.Errorf("failed to update employee %d: %w", identifier, err)
	}

	log.InfoContext(ctx, "Employee updated", "id", identifier)

	return nil
}

// Remove deletes the employee with the given id.
func (s *Staff) Remove(ctx context.Context, identifier int) error {
	const opn = "Employee.Remove"
	log := s.initLogger(opn)

	if err := s.repo.DeleteEmployee(ctx, identifier); err != nil {
		return fmt.Errorf("failed to remove employee %d: %w", identifier, err)
	}

	log.InfoContext(ctx, "Employee removed", "id", identifier)

	return nil
}

// ValidateNewEmployee checks registration input before it reaches the database.
func ValidateNewEmployee(employee models.NewEmployee) error {
	switch {
	case !isValidEmail(employee.Email):
		return fmt.Errorf("%w: email %q is not a valid address", ErrInvalidEmployee, employee.Email)
	case employee.Name == "":
		return fmt.Errorf("%w: name is required", ErrInvalidEmployee)
	case employee.Password == "":
		return fmt.Errorf("%w: password is required", ErrInvalidEmployee)
	}

	return validateSalary(employee.Salary)
}

func validateSalary(salary float64) error {
	switch {
	case math.IsNaN(salary) || math.IsInf(salary, 0):
		return fmt.Errorf("%w: salary must be a finite number", ErrInvalidEmployee)
	case salary < 0:
		return fmt.Errorf("%w: salary must not be negative", ErrInvalidEmployee)
	}

	return nil
}

// isValidEmail checks if the given email address is valid.
func isValidEmail(email string) bool {
	addr, err := mail.ParseAddress(email)
	return err == nil && addr.Address == email
}
