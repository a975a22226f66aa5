package repository_test

import (
	"context"
	"regexp"
	"testing"

	"github.com/UnknownOlympus/hestia/internal/repository"
	"github.com/jackc/pgx/v5"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	saveAdminDigestQuery = `
		INSERT INTO admin_credentials (id, digest)
		VALUES (1, $1)
		ON CONFLICT (id) DO UPDATE SET digest = EXCLUDED.digest, updated_at = CURRENT_TIMESTAMP;`
	getAdminDigestQuery = "SELECT digest FROM admin_credentials WHERE id = 1"
)

func TestSaveAdminDigest(t *testing.T) {
	t.Parallel()

	t.Run("success", func(t *testing.T) {
		t.Parallel()
		mock, err := pgxmock.NewPool()
		require.NoError(t, err)
		defer mock.Close()

		mock.ExpectExec(regexp.QuoteMeta(saveAdminDigestQuery)).
			WithArgs("abc123").
			WillReturnResult(pgxmock.NewResult("INSERT", 1))

		repo := repository.NewAdminCredentialRepository(mock, nil)
		require.NoError(t, repo.SaveAdminDigest(context.Background(), "abc123"))
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("query error", func(t *testing.T) {
		t.Parallel()
		mock, err := pgxmock.NewPool()
		require.NoError(t, err)
		defer mock.Close()

		mock.ExpectExec(regexp.QuoteMeta(saveAdminDigestQuery)).
			WithArgs("abc123").
			WillReturnError(assert.AnError)

		repo := repository.NewAdminCredentialRepository(mock, nil)
		err = repo.SaveAdminDigest(context.Background(), "abc123")

		require.ErrorIs(t, err, assert.AnError)
		require.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestGetAdminDigest(t *testing.T) {
	t.Parallel()

	t.Run("success", func(t *testing.T) {
		t.Parallel()
		mock, err := pgxmock.NewPool()
		require.NoError(t, err)
		defer mock.Close()

		mock.ExpectQuery(regexp.QuoteMeta(getAdminDigestQuery)).
			WillReturnRows(pgxmock.NewRows([]string{"digest"}).AddRow("abc123"))

		repo := repository.NewAdminCredentialRepository(mock, nil)
		actual, err := repo.GetAdminDigest(context.Background())

		require.NoError(t, err)
		assert.Equal(t, "abc123", actual)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("not configured", func(t *testing.T) {
		t.Parallel()
		mock, err := pgxmock.NewPool()
		require.NoError(t, err)
		defer mock.Close()

		mock.ExpectQuery(regexp.QuoteMeta(getAdminDigestQuery)).WillReturnError(pgx.ErrNoRows)

		repo := repository.NewAdminCredentialRepository(mock, nil)
		_, err = repo.GetAdminDigest(context.Background())

		require.ErrorIs(t, err, repository.ErrNotFound)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("query error", func(t *testing.T) {
		t.Parallel()
		mock, err := pgxmock.NewPool()
		require.NoError(t, err)
		defer mock.Close()

		mock.ExpectQuery(regexp.QuoteMeta(getAdminDigestQuery)).WillReturnError(assert.AnError)

		repo := repository.NewAdminCredentialRepository(mock, nil)
		_, err = repo.GetAdminDigest(context.Background())

		require.ErrorIs(t, err, assert.AnError)
		assert.Contains(t, err.Error(), "failed to get admin digest")
		require.NoError(t, mock.ExpectationsWereMet())
	})
}
