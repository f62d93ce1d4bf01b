package ports

import (
	"context"

	"github.com/esdoorn/practice-api/internal/core/domain"
)

// CreateHolidayInput carries the fields for a new holiday entry. Dates are
// YYYY-MM-DD calendar dates.
type CreateHolidayInput struct {
	DoctorID  int64
	StartDate string
	EndDate   string
}

// HolidayPatch is a partial update: nil means "leave unchanged".
type HolidayPatch struct {
	DoctorID  *int64
	StartDate *string
	EndDate   *string
}

type HolidayService interface {
	List(ctx context.Context) ([]domain.Holiday, error)
	Get(ctx context.Context, id int64) (*domain.Holiday, error)
	Create(ctx context.Context, in CreateHolidayInput) (*domain.Holiday, error)
	Update(ctx context.Context, id int64, patch HolidayPatch) (*domain.Holiday, error)
	Delete(ctx context.Context, id int64) error
}
