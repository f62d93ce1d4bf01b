package ports

import (
	"context"

	"github.com/esdoorn/practice-api/internal/core/domain"
)

// SiteBlockRepository persists the welcome/urgency singleton rows.
type SiteBlockRepository interface {
	// Get returns the block content, synthesizing {id:1, html:""} when the
	// row does not exist yet. Absence is not an error.
	Get(ctx context.Context, block string) (*domain.SiteBlock, error)
	// Upsert inserts the singleton row or overwrites it in place. It never
	// produces a second row for the same block.
	Upsert(ctx context.Context, block, html string) (*domain.SiteBlock, error)
}
