package ports

import (
	"context"

	"github.com/esdoorn/practice-api/internal/core/domain"
)

type SiteBlockService interface {
	Get(ctx context.Context, block string) (*domain.SiteBlock, error)
	Upsert(ctx context.Context, block, html string) (*domain.SiteBlock, error)
}
