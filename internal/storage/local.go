package storage

import (
	"context"
	"fmt"
	"io"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

// LocalStorage persists uploaded files under a single base directory.
// Every relative path is resolved and checked against the base before any
// filesystem operation, so callers cannot escape it.
type LocalStorage struct {
	basePath string
	baseURL  string
}

// NewLocalStorage creates a local storage rooted at basePath, creating the
// directory if needed
func NewLocalStorage(basePath, baseURL string) (*LocalStorage, error) {
	abs, err := filepath.Abs(basePath)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve storage path: %w", err)
	}
	if err := os.MkdirAll(abs, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create storage directory: %w", err)
	}
	return &LocalStorage{
		basePath: abs,
		baseURL:  strings.TrimSuffix(baseURL, "/"),
	}, nil
}

// resolve maps a relative path to an absolute one inside the base directory.
// Rejects anything that would resolve outside of it.
func (s *LocalStorage) resolve(relPath string) (string, error) {
	cleaned := filepath.Clean(filepath.FromSlash(relPath))
	if cleaned == "." || strings.HasPrefix(cleaned, "..") || filepath.IsAbs(cleaned) {
		return "", fmt.Errorf("invalid storage path %q", relPath)
	}
	full := filepath.Join(s.basePath, cleaned)
	if full != s.basePath && !strings.HasPrefix(full, s.basePath+string(filepath.Separator)) {
		return "", fmt.Errorf("invalid storage path %q", relPath)
	}
	return full, nil
}

// Save writes the reader's content at relPath and returns the stored
// relative path in slash form
func (s *LocalStorage) Save(ctx context.Context, relPath string, r io.Reader) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	full, err := s.resolve(relPath)
	if err != nil {
		return "", err
	}

	if err := os.MkdirAll(filepath.Dir(full), 0o755); err != nil {
		return "", fmt.Errorf("failed to create upload directory: %w", err)
	}

	dst, err := os.Create(full)
	if err != nil {
		return "", fmt.Errorf("failed to create file: %w", err)
	}
	defer dst.Close()

	if _, err := io.Copy(dst, r); err != nil {
		os.Remove(full)
		return "", fmt.Errorf("failed to write file: %w", err)
	}

	rel, err := filepath.Rel(s.basePath, full)
	if err != nil {
		return "", fmt.Errorf("failed to compute stored path: %w", err)
	}
	return filepath.ToSlash(rel), nil
}

// Delete removes a stored file and prunes its directory when that leaves it
// empty. Deleting a file that is already gone is not an error.
func (s *LocalStorage) Delete(ctx context.Context, relPath string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	full, err := s.resolve(relPath)
	if err != nil {
		return err
	}

	if err := os.Remove(full); err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("failed to delete file: %w", err)
	}

	// Prune the containing directory if empty; base itself is never removed.
	dir := filepath.Dir(full)
	if dir != s.basePath {
		entries, err := os.ReadDir(dir)
		if err == nil && len(entries) == 0 {
			os.Remove(dir)
		}
	}

	return nil
}

// URL returns the public URL for a stored relative path
func (s *LocalStorage) URL(relPath string) string {
	return s.baseURL + "/" + strings.TrimPrefix(filepath.ToSlash(relPath), "/")
}

// GenerateFileName builds a collision-free file name keeping the original
// extension, lowercased
func GenerateFileName(original string) string {
	ext := strings.ToLower(path.Ext(original))
	return uuid.NewString() + ext
}
