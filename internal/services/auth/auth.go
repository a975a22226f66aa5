package auth

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/UnknownOlympus/hestia/internal/credentials"
	"github.com/UnknownOlympus/hestia/internal/lib/digest"
	"github.com/UnknownOlympus/hestia/internal/lib/logger/sl"
	"github.com/UnknownOlympus/hestia/internal/metrics"
	"github.com/UnknownOlympus/hestia/internal/models"
	"github.com/UnknownOlympus/hestia/internal/repository"
)

var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrPasswordMismatch   = errors.New("passwords do not match")
	ErrEmptyPassword      = errors.New("password must not be empty")
)

// EmployeeFinder looks an employee up by login credentials.
type EmployeeFinder interface {
	FindByCredentials(ctx context.Context, email, password string) (models.Employee, error)
}

// Authenticator verifies admin and employee credentials and manages the admin password.
type Authenticator struct {
	log     *slog.Logger
	repo    EmployeeFinder
	store   credentials.Store
	metrics *metrics.Metrics
}

func NewAuthenticator(
	log *slog.Logger,
	repo EmployeeFinder,
	store credentials.Store,
	metrics *metrics.Metrics,
) *Authenticator {
	return &Authenticator{log: log, repo: repo, store: store, metrics: metrics}
}

func (a *Authenticator) initLogger(opn string) *slog.Logger {
	return a.log.With(
		slog.String("op", opn),
		slog.String("division", "auth"),
	)
}

// AdminChallenge holds the admin digest read once at the start of an admin login.
type AdminChallenge struct {
	auth   *Authenticator
	digest string
}

// BeginAdminLogin reads the stored admin digest. It returns credentials.ErrNotConfigured
// when none has been stored, so the caller can stop before prompting for a password.
func (a *Authenticator) BeginAdminLogin(ctx context.Context) (*AdminChallenge, error) {
	const opn = "Auth.BeginAdminLogin"
	log := a.initLogger(opn)

	stored, err := a.store.Get(ctx)
	if errors.Is(err, credentials.ErrNotConfigured) {
		a.countLogin(metrics.RoleAdmin, metrics.StatusNotConfigured)
		log.WarnContext(ctx, "Admin credentials are not configured")
		return nil, err
	}
	if err != nil {
		a.countLogin(metrics.RoleAdmin, metrics.StatusFailure)
		return nil, fmt.Errorf("failed to read admin credentials: %w", err)
	}

	return &AdminChallenge{auth: a, digest: stored}, nil
}

// Verify checks password against the digest read by BeginAdminLogin.
// It returns ErrInvalidCredentials on mismatch.
func (c *AdminChallenge) Verify(ctx context.Context, password string) error {
	const opn = "Auth.AdminLogin"
	log := c.auth.initLogger(opn)

	if !digest.Equal(digest.Password(password), c.digest) {
		c.auth.countLogin(metrics.RoleAdmin, metrics.StatusFailure)
		log.InfoContext(ctx, "Admin login rejected")
		return ErrInvalidCredentials
	}

	c.auth.countLogin(metrics.RoleAdmin, metrics.StatusSuccess)
	log.InfoContext(ctx, "Admin logged in")

	return nil
}

// AdminLogin reads the admin digest and checks password against it in one step.
func (a *Authenticator) AdminLogin(ctx context.Context, password string) error {
	challenge, err := a.BeginAdminLogin(ctx)
	if err != nil {
		return err
	}

	return challenge.Verify(ctx, password)
}

// EmployeeLogin returns the employee matching email and password, or ErrInvalidCredentials.
func (a *Authenticator) EmployeeLogin(ctx context.Context, email, password string) (models.Employee, error) {
	const opn = "Auth.EmployeeLogin"
	log := a.initLogger(opn)

	email = strings.TrimSpace(email)

	employee, err := a.repo.FindByCredentials(ctx, email, password)
	if errors.Is(err, repository.ErrNotFound) {
		a.countLogin(metrics.RoleEmployee, metrics.StatusFailure)
		log.InfoContext(ctx, "Employee login rejected", "email", email)
		return models.Employee{}, ErrInvalidCredentials
	}
	if err != nil {
		a.countLogin(metrics.RoleEmployee, metrics.StatusFailure)
		log.ErrorContext(ctx, "Employee lookup failed", sl.Err(err))
		return models.Employee{}, fmt.Errorf("failed to verify employee credentials: %w", err)
	}

	a.countLogin(metrics.RoleEmployee, metrics.StatusSuccess)
	log.InfoContext(ctx, "Employee logged in", "id", employee.ID)

	return employee, nil
}

// ResetAdminPassword stores the digest of password once confirm matches it.
// On mismatch nothing is written.
func (a *Authenticator) ResetAdminPassword(ctx context.Context, password, confirm string) error {
	const opn = "Auth.ResetAdminPassword"
	log := a.initLogger(opn)

	if password != confirm {
		log.InfoContext(ctx, "Admin password confirmation mismatch")
		return ErrPasswordMismatch
	}
	if password == "" {
		return ErrEmptyPassword
	}

	if err := a.store.Set(ctx, digest.Password(password)); err != nil {
		return fmt.Errorf("failed to reset admin password: %w", err)
	}

	log.InfoContext(ctx, "Admin password reset")

	return nil
}

func (a *Authenticator) countLogin(role, status string) {
	if a.metrics == nil {
		return
	}
	a.metrics.LoginAttempts.WithLabelValues(role, status).Inc()
}
