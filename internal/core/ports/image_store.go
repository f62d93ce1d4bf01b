package ports

import "context"

// ImageUpload carries the bytes of an uploaded avatar image.
type ImageUpload struct {
	Filename    string
	ContentType string
	Data        []byte
}

// ImageStore abstracts how avatar images are persisted. Two implementations
// exist: one writing files to disk (ref is a generated filename, resolved to
// an absolute URL) and one keeping the image inline (ref is a data URI).
type ImageStore interface {
	Store(ctx context.Context, up ImageUpload) (string, error)
	// Resolve turns a stored reference into a representation a browser can
	// render directly. Returns "" for an empty reference.
	Resolve(ref string) string
	// Remove discards the stored resource behind ref. Removing an already
	// absent resource is not an error.
	Remove(ctx context.Context, ref string) error
}
