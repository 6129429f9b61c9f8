// Package blob stores uploaded documents on the local filesystem and
// serves them back under the /blobs/ URL prefix.
package blob

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// FSStore keeps blobs under baseDir/<bucket>/<path>. Paths are
// sanitized so a stored name can never escape the base directory.
type FSStore struct {
	baseDir string
}

func NewFSStore(baseDir string) (*FSStore, error) {
	if strings.TrimSpace(baseDir) == "" {
		return nil, fmt.Errorf("blob base directory is empty")
	}
	if err := os.MkdirAll(baseDir, 0o755); err != nil {
		return nil, fmt.Errorf("create blob directory: %w", err)
	}
	return &FSStore{baseDir: baseDir}, nil
}

// BaseDir returns the root directory blobs are written under.
func (s *FSStore) BaseDir() string {
	return s.baseDir
}

func (s *FSStore) Upload(_ context.Context, bucket, path string, data []byte, _ string) (string, error) {
	full, err := s.resolve(bucket, path)
	if err != nil {
		return "", err
	}
	if err := os.MkdirAll(filepath.Dir(full), 0o755); err != nil {
		return "", fmt.Errorf("create upload directory: %w", err)
	}
	if err := os.WriteFile(full, data, 0o644); err != nil {
		return "", fmt.Errorf("write blob: %w", err)
	}
	return s.PublicURL(bucket, path), nil
}

// PublicURL returns the path the HTTP layer serves this blob under.
func (s *FSStore) PublicURL(bucket, path string) string {
	return "/blobs/" + bucket + "/" + path
}

func (s *FSStore) Delete(_ context.Context, bucket, path string) error {
	full, err := s.resolve(bucket, path)
	if err != nil {
		return err
	}
	if err := os.Remove(full); err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("delete blob: %w", err)
	}
	return nil
}

func (s *FSStore) resolve(bucket, path string) (string, error) {
	if strings.TrimSpace(bucket) == "" || strings.TrimSpace(path) == "" {
		return "", fmt.Errorf("blob bucket and path are required")
	}
	cleaned := filepath.Join(s.baseDir, filepath.Clean("/"+bucket), filepath.Clean("/"+path))
	if !strings.HasPrefix(cleaned, s.baseDir+string(filepath.Separator)) {
		return "", fmt.Errorf("blob path escapes base directory")
	}
	return cleaned, nil
}
