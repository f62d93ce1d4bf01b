package ports

import "context"

// DoctorView is the API shape of a doctor: the raw image reference is
// resolved into a directly renderable URL (or null when no image is stored).
type DoctorView struct {
	ID        int64   `json:"id"`
	Firstname string  `json:"firstname"`
	Lastname  string  `json:"lastname"`
	Email     string  `json:"email"`
	Phone     string  `json:"phone"`
	AgendaURL string  `json:"agendaUrl"`
	ImageURL  *string `json:"imageUrl"`
}

// HolidayRange is a holiday entry nested under a doctor in the
// doctors-with-holidays view.
type HolidayRange struct {
	ID        int64  `json:"id"`
	StartDate string `json:"startDate"`
	EndDate   string `json:"endDate"`
}

// DoctorWithHolidays annotates a doctor with their upcoming holidays.
type DoctorWithHolidays struct {
	DoctorView
	Holidays []HolidayRange `json:"holidays"`
}

// CreateDoctorInput carries the fields for a new doctor. All text fields are
// required; Image is optional.
type CreateDoctorInput struct {
	Firstname string
	Lastname  string
	Email     string
	Phone     string
	AgendaURL string
	Image     *ImageUpload
}

// DoctorPatch is a partial update: nil means "leave unchanged". A non-nil
// empty string is rejected rather than silently falling back to the old
// value, so clients cannot wipe a required field by accident.
type DoctorPatch struct {
	Firstname *string
	Lastname  *string
	Email     *string
	Phone     *string
	AgendaURL *string
	Image     *ImageUpload
}

type DoctorService interface {
	List(ctx context.Context) ([]DoctorView, error)
	Get(ctx context.Context, id int64) (*DoctorView, error)
	Create(ctx context.Context, in CreateDoctorInput) (*DoctorView, error)
	Update(ctx context.Context, id int64, patch DoctorPatch) (*DoctorView, error)
	Delete(ctx context.Context, id int64) error
	// WithHolidays returns every doctor annotated with the holidays whose end
	// date is strictly after today (UTC calendar date).
	WithHolidays(ctx context.Context) ([]DoctorWithHolidays, error)
}
