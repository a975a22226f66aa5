// Package console drives the interactive admin and employee sessions.
package console

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"math"
	"strconv"
	"strings"

	"github.com/UnknownOlympus/hestia/internal/lib/logger/sl"
	"github.com/UnknownOlympus/hestia/internal/metrics"
	"github.com/UnknownOlympus/hestia/internal/models"
	"github.com/UnknownOlympus/hestia/internal/services/auth"
)

// Authenticator verifies credentials and manages the admin password.
type Authenticator interface {
	BeginAdminLogin(ctx context.Context) (*auth.AdminChallenge, error)
	EmployeeLogin(ctx context.Context, email, password string) (models.Employee, error)
	ResetAdminPassword(ctx context.Context, password, confirm string) error
}

// StaffManager reads and writes employee records.
type StaffManager interface {
	Register(ctx context.Context, employee models.NewEmployee) (int, error)
	Get(ctx context.Context, identifier int) (models.Employee, error)
	List(ctx context.Context) ([]models.Employee, error)
	Update(ctx context.Context, identifier int, update models.EmployeeUpdate) error
	Remove(ctx context.Context, identifier int) error
}

// Console runs one interactive session: role selection, authentication and the role menu.
type Console struct {
	log     *slog.Logger
	prompt  *Prompter
	out     io.Writer
	auth    Authenticator
	staff   StaffManager
	metrics *metrics.Metrics
}

func New(
	log *slog.Logger,
	in io.Reader,
	out io.Writer,
	auth Authenticator,
	staff StaffManager,
	metrics *metrics.Metrics,
) *Console {
	return &Console{
		log:     log.With(slog.String("division", "console")),
		prompt:  NewPrompter(in, out),
		out:     out,
		auth:    auth,
		staff:   staff,
		metrics: metrics,
	}
}

// Prompter exposes the console's input reader for commands that need extra prompts.
func (c *Console) Prompter() *Prompter {
	return c.prompt
}

func (c *Console) println(a ...any) {
	fmt.Fprintln(c.out, a...)
}

func (c *Console) printf(format string, a ...any) {
	fmt.Fprintf(c.out, format, a...)
}

// fail reports an unexpected error to the user and the log.
func (c *Console) fail(ctx context.Context, action string, err error) {
	c.log.ErrorContext(ctx, "Console action failed", slog.String("action", action), sl.Err(err))
	c.printf("Operation failed: %v\n", err)
}

func (c *Console) countAction(menu, action string) {
	if c.metrics == nil {
		return
	}
	c.metrics.ConsoleActions.WithLabelValues(menu, action).Inc()
}

// readID prompts for an employee id. ok is false when the input is not a number.
func (c *Console) readID(prompt string) (int, bool, error) {
	raw, err := c.prompt.Line(prompt)
	if err != nil {
		return 0, false, err
	}

	identifier, convErr := strconv.Atoi(strings.TrimSpace(raw))
	if convErr != nil {
		c.println("Invalid employee ID. Please enter a number.")
		return 0, false, nil
	}

	return identifier, true, nil
}

// readSalary parses a salary answer. ok is false when the input is not a finite number.
func (c *Console) readSalary(raw string) (float64, bool) {
	salary, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil || math.IsNaN(salary) || math.IsInf(salary, 0) {
		c.println("Invalid salary. Please enter a number.")
		return 0, false
	}

	return salary, true
}

// readUpdate collects optional fields. An empty answer leaves the field unchanged.
func (c *Console) readUpdate(verb string) (models.EmployeeUpdate, bool, error) {
	var update models.EmployeeUpdate

	name, err := c.prompt.Line(verb + " name (press Enter to skip): ")
	if err != nil {
		return update, false, err
	}
	salary, err := c.prompt.Line(verb + " salary (press Enter to skip): ")
	if err != nil {
		return update, false, err
	}
	dept, err := c.prompt.Line(verb + " department (press Enter to skip): ")
	if err != nil {
		return update, false, err
	}
	password, err := c.prompt.Secret(verb + " password (press Enter to skip): ")
	if err != nil {
		return update, false, err
	}

	if name != "" {
		update.Name = &name
	}
	if strings.TrimSpace(salary) != "" {
		value, ok := c.readSalary(salary)
		if !ok {
			return update, false, nil
		}
		update.Salary = &value
	}
	if dept != "" {
		update.Dept = &dept
	}
	if password != "" {
		update.Password = &password
	}

	return update, true, nil
}

// isInputError reports whether err means the session can no longer read input.
func isInputError(err error) bool {
	return errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF)
}
