package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/esdoorn/practice-api/internal/core/domain"
)

// singletonID is the fixed primary key of each site-block table; the table
// schema enforces it with a CHECK constraint.
const singletonID = 1

// blockTables whitelists the tables a block name may resolve to, since table
// names cannot be bound as query parameters.
var blockTables = map[string]string{
	domain.BlockWelcome: "welcome",
	domain.BlockUrgency: "urgency",
}

type SiteBlockRepository struct {
	db *sql.DB
}

func NewSiteBlockRepository(db *sql.DB) *SiteBlockRepository {
	return &SiteBlockRepository{db: db}
}

func (r *SiteBlockRepository) Get(ctx context.Context, block string) (*domain.SiteBlock, error) {
	table, err := tableFor(block)
	if err != nil {
		return nil, err
	}

	sb := &domain.SiteBlock{ID: singletonID}
	query := fmt.Sprintf(`SELECT html FROM %s WHERE id = $1`, table)
	if err := r.db.QueryRowContext(ctx, query, singletonID).Scan(&sb.HTML); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			// Absence means "not written yet", served as empty content.
			return sb, nil
		}
		return nil, fmt.Errorf("get %s block: %w", block, err)
	}
	return sb, nil
}

func (r *SiteBlockRepository) Upsert(ctx context.Context, block, html string) (*domain.SiteBlock, error) {
	table, err := tableFor(block)
	if err != nil {
		return nil, err
	}

	query := fmt.Sprintf(`INSERT INTO %s (id, html) VALUES ($1, $2)
	                      ON CONFLICT (id) DO UPDATE SET html = EXCLUDED.html`, table)
	if _, err := r.db.ExecContext(ctx, query, singletonID, html); err != nil {
		return nil, fmt.Errorf("upsert %s block: %w", block, err)
	}
	return &domain.SiteBlock{ID: singletonID, HTML: html}, nil
}

func tableFor(block string) (string, error) {
	table, ok := blockTables[block]
	if !ok {
		return "", fmt.Errorf("unknown site block %q", block)
	}
	return table, nil
}
