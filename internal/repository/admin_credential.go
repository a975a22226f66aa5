package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
)

// SaveAdminDigest stores the admin password digest, replacing any previous one.
func (r *Repository) SaveAdminDigest(ctx context.Context, digest string) error {
	defer r.observe("save_admin_digest", time.Now())

	query := `
		INSERT INTO admin_credentials (id, digest)
		VALUES (1, $1)
		ON CONFLICT (id) DO UPDATE SET digest = EXCLUDED.digest, updated_at = CURRENT_TIMESTAMP;`

	_, err := r.db.Exec(ctx, query, digest)
	if err != nil {
		return fmt.Errorf("failed to save admin digest: %w", err)
	}

	return nil
}

// GetAdminDigest returns the stored admin password digest.
func (r *Repository) GetAdminDigest(ctx context.Context) (string, error) {
	defer r.observe("get_admin_digest", time.Now())

	query := "SELECT digest FROM admin_credentials WHERE id = 1"

	var digest string
	err := r.db.QueryRow(ctx, query).Scan(&digest)
	if errors.Is(err, pgx.ErrNoRows) {
		return "", fmt.Errorf("failed to get admin digest: %w", ErrNotFound)
	}
	if err != nil {
		return "", fmt.Errorf("failed to get admin digest: %w", err)
	}

	return digest, nil
}
