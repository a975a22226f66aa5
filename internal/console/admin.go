package console

import (
	"context"
	"errors"
	"strings"

	"github.com/UnknownOlympus/hestia/internal/models"
	"github.com/UnknownOlympus/hestia/internal/repository"
	"github.com/UnknownOlympus/hestia/internal/services/auth"
	"github.com/UnknownOlympus/hestia/internal/services/employees"
)

const menuAdmin = "admin"

func (c *Console) printAdminMenu() {
	c.println()
	c.println(banner("ADMIN DASHBOARD"))
	c.println("1. Register Employee")
	c.println("2. View Employee Details")
	c.println("3. List All Employees")
	c.println("4. Update Employee Details")
	c.println("5. Delete Employee")
	c.println("6. Reset Admin Password")
	c.println("7. Logout")
	c.println(rule)
}

// adminMenu loops until the admin logs out or input ends.
func (c *Console) adminMenu(ctx context.Context) error {
	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		c.printAdminMenu()
		choice, err := c.prompt.Line("Enter your option: ")
		if err != nil {
			return err
		}

		switch strings.TrimSpace(choice) {
		case "1":
			c.countAction(menuAdmin, "register")
			err = c.registerEmployee(ctx)
		case "2":
			c.countAction(menuAdmin, "view")
			err = c.viewEmployee(ctx)
		case "3":
			c.countAction(menuAdmin, "list")
			c.listEmployees(ctx)
		case "4":
			c.countAction(menuAdmin, "update")
			err = c.modifyEmployee(ctx)
		case "5":
			c.countAction(menuAdmin, "delete")
			err = c.removeEmployee(ctx)
		case "6":
			c.countAction(menuAdmin, "reset_password")
			err = c.resetAdminPassword(ctx)
		case "7":
			c.countAction(menuAdmin, "logout")
			c.println("Logging out...")
			return nil
		default:
			c.println("Invalid input. Please try again.")
		}
		if err != nil {
			return err
		}

		c.println(rule)
	}
}

func (c *Console) registerEmployee(ctx context.Context) error {
	c.println()
	c.println(banner("ADD NEW EMPLOYEE"))

	var (
		input models.NewEmployee
		err   error
	)

	if input.Email, err = c.prompt.Line("Enter email: "); err != nil {
		return err
	}
	if input.Name, err = c.prompt.Line("Enter name: "); err != nil {
		return err
	}
	if input.Password, err = c.prompt.Secret("Enter password: "); err != nil {
		return err
	}
	rawSalary, err := c.prompt.Line("Enter salary: ")
	if err != nil {
		return err
	}
	if input.Dept, err = c.prompt.Line("Enter department: "); err != nil {
		return err
	}

	salary, ok := c.readSalary(rawSalary)
	if !ok {
		return nil
	}
	input.Salary = salary

	identifier, err := c.staff.Register(ctx, input)
	switch {
	case errors.Is(err, employees.ErrInvalidEmployee):
		c.printf("Could not add employee: %v\n", err)
	case err != nil:
		c.fail(ctx, "register", err)
	default:
		c.printf("New employee added successfully! (ID: %d)\n", identifier)
	}

	return nil
}

// lookup fetches an employee, printing notFound when it does not exist.
func (c *Console) lookup(ctx context.Context, action string, identifier int, notFound string) (models.Employee, bool) {
	employee, err := c.staff.Get(ctx, identifier)
	switch {
	case errors.Is(err, repository.ErrNotFound):
		c.println(notFound)
		return models.Employee{}, false
	case err != nil:
		c.fail(ctx, action, err)
		return models.Employee{}, false
	}

	return employee, true
}

func (c *Console) viewEmployee(ctx context.Context) error {
	identifier, ok, err := c.readID("\nEnter employee ID: ")
	if err != nil || !ok {
		return err
	}

	employee, found := c.lookup(ctx, "view", identifier, "Employee not found.")
	if !found {
		return nil
	}

	c.println("\nEmployee Information:")
	c.println(employeeTable(employee))

	return nil
}

func (c *Console) listEmployees(ctx context.Context) {
	list, err := c.staff.List(ctx)
	if err != nil {
		c.fail(ctx, "list", err)
		return
	}

	if len(list) == 0 {
		c.println("No employees in the system.")
		return
	}

	c.println("\nList of Employees:")
	c.println(employeeTable(list...))
}

func (c *Console) modifyEmployee(ctx context.Context) error {
	identifier, ok, err := c.readID("\nEnter employee ID to modify: ")
	if err != nil || !ok {
		return err
	}

	if _, found := c.lookup(ctx, "update", identifier, "Employee not found. Cannot modify details."); !found {
		return nil
	}

	c.println()
	c.println(banner("MODIFY EMPLOYEE DETAILS"))

	update, ok, err := c.readUpdate("Enter new")
	if err != nil || !ok {
		return err
	}

	err = c.staff.Update(ctx, identifier, update)
	switch {
	case errors.Is(err, employees.ErrInvalidEmployee):
		c.printf("Could not update employee: %v\n", err)
	case err != nil:
		c.fail(ctx, "update", err)
	default:
		c.println("Employee details successfully updated.")
	}

	return nil
}

func (c *Console) removeEmployee(ctx context.Context) error {
	identifier, ok, err := c.readID("\nEnter employee ID to remove: ")
	if err != nil || !ok {
		return err
	}

	if _, found := c.lookup(ctx, "delete", identifier, "Employee not found. Cannot remove."); !found {
		return nil
	}

	err = c.staff.Remove(ctx, identifier)
	switch {
	case errors.Is(err, repository.ErrNotFound):
		c.println("Employee not found. Cannot remove.")
	case err != nil:
		c.fail(ctx, "delete", err)
	default:
		c.println("Employee removed successfully.")
	}

	return nil
}

func (c *Console) resetAdminPassword(ctx context.Context) error {
	password, err := c.prompt.Secret("\nEnter new admin password: ")
	if err != nil {
		return err
	}
	confirm, err := c.prompt.Secret("Confirm new password: ")
	if err != nil {
		return err
	}

	c.reportReset(ctx, c.auth.ResetAdminPassword(ctx, password, confirm))

	return nil
}

func (c *Console) reportReset(ctx context.Context, err error) {
	switch {
	case errors.Is(err, auth.ErrPasswordMismatch):
		c.println("Passwords do not match. Try again.")
	case errors.Is(err, auth.ErrEmptyPassword):
		c.println("Password must not be empty.")
	case err != nil:
		c.fail(ctx, "reset_password", err)
	default:
		c.println("Admin password reset successfully!")
	}
}

// SetAdminPassword prompts twice for a new admin password and stores it.
// It reports whether the password was stored.
func (c *Console) SetAdminPassword(ctx context.Context) (bool, error) {
	password, err := c.prompt.Secret("Enter new admin password: ")
	if err != nil {
		return false, err
	}
	confirm, err := c.prompt.Secret("Confirm new password: ")
	if err != nil {
		return false, err
	}

	err = c.auth.ResetAdminPassword(ctx, password, confirm)
	c.reportReset(ctx, err)

	return err == nil, nil
}
