package console

import (
	"context"
	"errors"
	"strings"

	"github.com/UnknownOlympus/hestia/internal/credentials"
	"github.com/UnknownOlympus/hestia/internal/services/auth"
)

const (
	roleAdmin    = "1"
	roleEmployee = "2"
)

// Run selects a role, authenticates it and enters that role's menu.
// Every path ends the session; running out of input is treated as a normal exit.
func (c *Console) Run(ctx context.Context) error {
	err := c.selectRole(ctx)
	if isInputError(err) {
		c.println()
		return nil
	}

	return err
}

func (c *Console) selectRole(ctx context.Context) error {
	c.println("Select your role:")
	c.println("1. Admin")
	c.println("2. Employee")

	choice, err := c.prompt.Line("Enter your choice (1 or 2): ")
	if err != nil {
		return err
	}

	switch strings.TrimSpace(choice) {
	case roleAdmin:
		return c.adminAuth(ctx)
	case roleEmployee:
		return c.employeeAuth(ctx)
	default:
		c.println("Invalid choice. Please enter 1 for Admin or 2 for Employee.")
		return nil
	}
}

func (c *Console) adminAuth(ctx context.Context) error {
	challenge, err := c.auth.BeginAdminLogin(ctx)
	if err != nil {
		c.reportAdminLoginError(ctx, err)
		return nil
	}

	password, err := c.prompt.Secret("Enter admin password: ")
	if err != nil {
		return err
	}

	if err = challenge.Verify(ctx, password); err != nil {
		c.reportAdminLoginError(ctx, err)
		return nil
	}

	return c.adminMenu(ctx)
}

func (c *Console) reportAdminLoginError(ctx context.Context, err error) {
	switch {
	case errors.Is(err, credentials.ErrNotConfigured):
		c.println("Admin credentials are not configured. Run `hestia set-admin-password` first.")
	case errors.Is(err, auth.ErrInvalidCredentials):
		c.println("Incorrect admin password.")
	default:
		c.fail(ctx, "admin_login", err)
	}
}

func (c *Console) employeeAuth(ctx context.Context) error {
	email, err := c.prompt.Line("Enter your email: ")
	if err != nil {
		return err
	}
	password, err := c.prompt.Secret("Enter your password: ")
	if err != nil {
		return err
	}

	employee, err := c.auth.EmployeeLogin(ctx, email, password)
	switch {
	case errors.Is(err, auth.ErrInvalidCredentials):
		c.println("Invalid login credentials.")
		return nil
	case err != nil:
		c.fail(ctx, "employee_login", err)
		return nil
	}

	c.printf("Welcome, %s!\n", employee.Name)

	return c.employeeMenu(ctx, employee.ID)
}
