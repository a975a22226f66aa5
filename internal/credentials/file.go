package credentials

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"
)

// FileStore keeps the digest as the entire content of a single file.
type FileStore struct {
	path string
}

func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

// Get returns the stored digest. A missing or blank file means ErrNotConfigured.
func (s *FileStore) Get(_ context.Context) (string, error) {
	data, err := os.ReadFile(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		return "", ErrNotConfigured
	}
	if err != nil {
		return "", fmt.Errorf("failed to read credential file %s: %w", s.path, err)
	}

	digest := strings.TrimSpace(string(data))
	if digest == "" {
		return "", ErrNotConfigured
	}

	return digest, nil
}

// Set overwrites the file with digest.
func (s *FileStore) Set(_ context.Context, digest string) error {
	const perm = 0o600
	if err := os.WriteFile(s.path, []byte(digest), perm); err != nil {
		return fmt.Errorf("failed to write credential file %s: %w", s.path, err)
	}

	return nil
}
