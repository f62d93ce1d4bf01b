package ports

import (
	"context"

	"github.com/esdoorn/practice-api/internal/core/domain"
)

// DoctorRepository persists doctor rows. Update writes the full row; the
// field-by-field merge with the previous values happens in the service layer.
type DoctorRepository interface {
	List(ctx context.Context) ([]domain.Doctor, error)
	Get(ctx context.Context, id int64) (*domain.Doctor, error)
	Create(ctx context.Context, d *domain.Doctor) (*domain.Doctor, error)
	Update(ctx context.Context, d *domain.Doctor) (*domain.Doctor, error)
	// Delete removes the doctor row; dependent holidays go with it via the
	// store's cascade rule.
	Delete(ctx context.Context, id int64) error
	// ListWithHolidays returns every doctor joined to all of their holidays,
	// holidays ordered by start date ascending. Doctors without holidays are
	// included with an empty slice.
	ListWithHolidays(ctx context.Context) ([]domain.DoctorHolidays, error)
}
