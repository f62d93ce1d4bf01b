package storage

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"

	"github.com/esdoorn/practice-api/internal/api/metrics"
	"github.com/esdoorn/practice-api/internal/core/ports"
)

// FileStore keeps avatar images as files on disk. The stored reference is the
// generated filename; Resolve turns it into an absolute URL under /uploads.
//
// File writes are not transactional with the database row that references
// them: a crash between the two can orphan a file or leave a row pointing at
// a missing one. Callers clean up best-effort and log the rest.
type FileStore struct {
	dir     string
	baseURL string
}

// NewFileStore creates the upload directory if needed. baseURL is the public
// origin the API is served from, without a trailing slash.
func NewFileStore(dir, baseURL string) (*FileStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create upload dir: %w", err)
	}
	return &FileStore{dir: dir, baseURL: strings.TrimRight(baseURL, "/")}, nil
}

// Dir returns the directory uploads are written to, for static serving.
func (s *FileStore) Dir() string {
	return s.dir
}

func (s *FileStore) Store(ctx context.Context, up ports.ImageUpload) (string, error) {
	name := uuid.NewString() + extensionFor(up)
	if err := os.WriteFile(filepath.Join(s.dir, name), up.Data, 0o644); err != nil {
		return "", fmt.Errorf("write image file: %w", err)
	}
	metrics.ImagesStoredTotal.WithLabelValues("file").Inc()
	return name, nil
}

func (s *FileStore) Resolve(ref string) string {
	if ref == "" {
		return ""
	}
	return s.baseURL + "/uploads/" + ref
}

func (s *FileStore) Remove(ctx context.Context, ref string) error {
	if ref == "" {
		return nil
	}
	err := os.Remove(filepath.Join(s.dir, filepath.Base(ref)))
	if err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("remove image file: %w", err)
	}
	return nil
}

func extensionFor(up ports.ImageUpload) string {
	if ext := filepath.Ext(up.Filename); ext != "" {
		return ext
	}
	switch up.ContentType {
	case "image/png":
		return ".png"
	case "image/gif":
		return ".gif"
	case "image/webp":
		return ".webp"
	default:
		return ".jpg"
	}
}
