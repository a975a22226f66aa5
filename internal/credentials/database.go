package credentials

import (
	"context"
	"errors"
	"fmt"

	"github.com/UnknownOlympus/hestia/internal/repository"
)

// DatabaseStore keeps the digest in the admin_credentials table.
type DatabaseStore struct {
	repo repository.AdminCredentialRepoIface
}

func NewDatabaseStore(repo repository.AdminCredentialRepoIface) *DatabaseStore {
	return &DatabaseStore{repo: repo}
}

func (s *DatabaseStore) Get(ctx context.Context) (string, error) {
	digest, err := s.repo.GetAdminDigest(ctx)
	if errors.Is(err, repository.ErrNotFound) {
		return "", ErrNotConfigured
	}
	if err != nil {
		return "", fmt.Errorf("failed to load admin credentials: %w", err)
	}

	return digest, nil
}

func (s *DatabaseStore) Set(ctx context.Context, digest string) error {
	if err := s.repo.SaveAdminDigest(ctx, digest); err != nil {
		return fmt.Errorf("failed to store admin credentials: %w", err)
	}

	return nil
}
