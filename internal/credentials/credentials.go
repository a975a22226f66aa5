// Package credentials keeps the admin password digest behind a small get/set interface,
// so the flat file can be swapped for the database or a real secret manager.
package credentials

import (
	"context"
	"errors"
	"fmt"

	"github.com/UnknownOlympus/hestia/internal/repository"
)

// ErrNotConfigured is returned when no admin digest has been stored yet.
var ErrNotConfigured = errors.New("admin credentials are not configured")

// Store reads and replaces the admin password digest.
type Store interface {
	Get(ctx context.Context) (string, error)
	Set(ctx context.Context, digest string) error
}

const (
	BackendFile     = "file"
	BackendDatabase = "database"
)

// New returns the store for the given backend name.
func New(backend, path string, repo repository.AdminCredentialRepoIface) (Store, error) {
	switch backend {
	case BackendFile:
		return NewFileStore(path), nil
	case BackendDatabase:
		if repo == nil {
			return nil, errors.New("database credential backend requires a repository")
		}
		return NewDatabaseStore(repo), nil
	default:
		return nil, fmt.Errorf("unknown credentials backend %q", backend)
	}
}
