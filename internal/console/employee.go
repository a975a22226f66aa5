package console

import (
	"context"
	"errors"
	"strings"

	"github.com/UnknownOlympus/hestia/internal/services/employees"
)

const menuEmployee = "employee"

func (c *Console) printEmployeeMenu() {
	c.println()
	c.println(banner("EMPLOYEE DASHBOARD"))
	c.println("1. View Profile")
	c.println("2. Update Profile")
	c.println("3. Logout")
	c.println(rule)
}

// employeeMenu is bound to a single employee id; no other record is reachable from it.
func (c *Console) employeeMenu(ctx context.Context, identifier int) error {
	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		c.printEmployeeMenu()
		choice, err := c.prompt.Line("Select an option: ")
		if err != nil {
			return err
		}

		switch strings.TrimSpace(choice) {
		case "1":
			c.countAction(menuEmployee, "view")
			c.viewProfile(ctx, identifier)
		case "2":
			c.countAction(menuEmployee, "update")
			err = c.updateProfile(ctx, identifier)
		case "3":
			c.countAction(menuEmployee, "logout")
			c.println("Logging out...")
			return nil
		default:
			c.println("Invalid option. Please try again.")
		}
		if err != nil {
			return err
		}

		c.println(rule)
	}
}

func (c *Console) viewProfile(ctx context.Context, identifier int) {
	c.println()
	c.println(banner("VIEW PROFILE"))

	employee, found := c.lookup(ctx, "view_profile", identifier, "Employee not found.")
	if !found {
		return
	}

	c.println("\nEmployee Information:")
	c.println(employeeTable(employee))
}

// updateProfile does not re-fetch the record before updating it.
func (c *Console) updateProfile(ctx context.Context, identifier int) error {
	c.println()
	c.println(banner("MODIFY PROFILE"))

	update, ok, err := c.readUpdate("Update")
	if err != nil || !ok {
		return err
	}

	err = c.staff.Update(ctx, identifier, update)
	switch {
	case errors.Is(err, employees.ErrInvalidEmployee):
		c.printf("Could not update profile: %v\n", err)
	case err != nil:
		c.fail(ctx, "update_profile", err)
	default:
		c.println("Profile updated successfully!")
	}

	return nil
}
