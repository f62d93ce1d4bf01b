package ports

import (
	"context"

	"github.com/esdoorn/practice-api/internal/core/domain"
)

// HolidayRepository persists holiday rows. Read operations join the owning
// doctor's name into DoctorName.
type HolidayRepository interface {
	List(ctx context.Context) ([]domain.Holiday, error)
	Get(ctx context.Context, id int64) (*domain.Holiday, error)
	Create(ctx context.Context, h *domain.Holiday) (*domain.Holiday, error)
	Update(ctx context.Context, h *domain.Holiday) (*domain.Holiday, error)
	Delete(ctx context.Context, id int64) error
}
