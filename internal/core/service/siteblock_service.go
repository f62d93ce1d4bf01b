package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/esdoorn/practice-api/internal/core/domain"
	"github.com/esdoorn/practice-api/internal/core/ports"
)

// SiteBlockService reads and upserts the welcome/urgency singleton blocks.
type SiteBlockService struct {
	repo ports.SiteBlockRepository
	log  zerolog.Logger
}

func NewSiteBlockService(repo ports.SiteBlockRepository, log zerolog.Logger) *SiteBlockService {
	return &SiteBlockService{repo: repo, log: log}
}

func (s *SiteBlockService) Get(ctx context.Context, block string) (*domain.SiteBlock, error) {
	return s.repo.Get(ctx, block)
}

func (s *SiteBlockService) Upsert(ctx context.Context, block, html string) (*domain.SiteBlock, error) {
	updated, err := s.repo.Upsert(ctx, block, html)
	if err != nil {
		return nil, err
	}
	s.log.Info().Str("block", block).Int("html_bytes", len(html)).Msg("site block updated")
	return updated, nil
}
