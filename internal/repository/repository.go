package repository

import (
	"context"
	"errors"
	"time"

	"github.com/UnknownOlympus/hestia/internal/metrics"
	"github.com/UnknownOlympus/hestia/internal/models"
)

// ErrNotFound is returned when a lookup matches no row.
var ErrNotFound = errors.New("record not found")

type Repository struct {
	db      Database
	metrics *metrics.Metrics
}

// EmployeeRepoIface represents the interface for interacting with employee data in the repository.
// Plaintext passwords passed in are hashed before they reach the database.
type EmployeeRepoIface interface {
	FindByCredentials(ctx context.Context, email, password string) (models.Employee, error)
	GetEmployeeByID(ctx context.Context, identifier int) (models.Employee, error)
	ListEmployees(ctx context.Context) ([]models.Employee, error)
	SaveEmployee(ctx context.Context, employee models.NewEmployee) (int, error)
	UpdateEmployee(ctx context.Context, identifier int, update models.EmployeeUpdate) error
	DeleteEmployee(ctx context.Context, identifier int) error
}

func NewEmployeeRepository(db Database, metrics *metrics.Metrics) EmployeeRepoIface {
	return &Repository{db: db, metrics: metrics}
}

// AdminCredentialRepoIface stores the admin password digest in the database.
type AdminCredentialRepoIface interface {
	GetAdminDigest(ctx context.Context) (string, error)
	SaveAdminDigest(ctx context.Context, digest string) error
}

func NewAdminCredentialRepository(db Database, metrics *metrics.Metrics) AdminCredentialRepoIface {
	return &Repository{db: db, metrics: metrics}
}

// observe records the duration of a query started at startTime.
func (r *Repository) observe(queryType string, startTime time.Time) {
	if r.metrics == nil {
		return
	}
	r.metrics.DBQueryDuration.WithLabelValues(queryType).Observe(time.Since(startTime).Seconds())
}
