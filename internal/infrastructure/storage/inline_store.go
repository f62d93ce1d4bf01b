package storage

import (
	"context"
	"encoding/base64"

	"github.com/esdoorn/practice-api/internal/api/metrics"
	"github.com/esdoorn/practice-api/internal/core/ports"
)

// InlineStore keeps avatar images inside the doctor row itself: the stored
// reference is a base64 data URI, so Resolve is the identity and Remove is a
// no-op (the blob disappears with the row).
type InlineStore struct{}

func NewInlineStore() *InlineStore {
	return &InlineStore{}
}

func (s *InlineStore) Store(ctx context.Context, up ports.ImageUpload) (string, error) {
	contentType := up.ContentType
	if contentType == "" {
		contentType = "application/octet-stream"
	}
	metrics.ImagesStoredTotal.WithLabelValues("inline").Inc()
	return "data:" + contentType + ";base64," + base64.StdEncoding.EncodeToString(up.Data), nil
}

func (s *InlineStore) Resolve(ref string) string {
	return ref
}

func (s *InlineStore) Remove(ctx context.Context, ref string) error {
	return nil
}
