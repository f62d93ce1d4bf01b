package service

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/esdoorn/practice-api/internal/core/domain"
	"github.com/esdoorn/practice-api/internal/core/ports"
)

// DoctorService implements doctor CRUD with avatar image handling and the
// doctors-with-holidays aggregation.
type DoctorService struct {
	repo   ports.DoctorRepository
	images ports.ImageStore
	log    zerolog.Logger
}

func NewDoctorService(repo ports.DoctorRepository, images ports.ImageStore, log zerolog.Logger) *DoctorService {
	return &DoctorService{repo: repo, images: images, log: log}
}

func (s *DoctorService) List(ctx context.Context) ([]ports.DoctorView, error) {
	doctors, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	views := make([]ports.DoctorView, 0, len(doctors))
	for i := range doctors {
		views = append(views, *s.view(&doctors[i]))
	}
	return views, nil
}

func (s *DoctorService) Get(ctx context.Context, id int64) (*ports.DoctorView, error) {
	d, err := s.repo.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	return s.view(d), nil
}

func (s *DoctorService) Create(ctx context.Context, in ports.CreateDoctorInput) (*ports.DoctorView, error) {
	if err := requireFields(map[string]string{
		"firstname": in.Firstname,
		"lastname":  in.Lastname,
		"email":     in.Email,
		"phone":     in.Phone,
		"agendaUrl": in.AgendaURL,
	}); err != nil {
		return nil, err
	}

	var ref string
	if in.Image != nil {
		var err error
		ref, err = s.images.Store(ctx, *in.Image)
		if err != nil {
			return nil, fmt.Errorf("store image: %w", err)
		}
	}

	created, err := s.repo.Create(ctx, &domain.Doctor{
		Firstname: in.Firstname,
		Lastname:  in.Lastname,
		Email:     in.Email,
		Phone:     in.Phone,
		AgendaURL: in.AgendaURL,
		ImageRef:  ref,
	})
	if err != nil {
		// The row never made it in; don't leave the image behind.
		s.discardImage(ctx, ref)
		return nil, err
	}

	s.log.Info().Int64("doctor_id", created.ID).Msg("doctor created")
	return s.view(created), nil
}

func (s *DoctorService) Update(ctx context.Context, id int64, patch ports.DoctorPatch) (*ports.DoctorView, error) {
	old, err := s.repo.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	merged := *old
	if err := applyField(&merged.Firstname, patch.Firstname, "firstname"); err != nil {
		return nil, err
	}
	if err := applyField(&merged.Lastname, patch.Lastname, "lastname"); err != nil {
		return nil, err
	}
	if err := applyField(&merged.Email, patch.Email, "email"); err != nil {
		return nil, err
	}
	if err := applyField(&merged.Phone, patch.Phone, "phone"); err != nil {
		return nil, err
	}
	if err := applyField(&merged.AgendaURL, patch.AgendaURL, "agendaUrl"); err != nil {
		return nil, err
	}

	var newRef string
	if patch.Image != nil {
		newRef, err = s.images.Store(ctx, *patch.Image)
		if err != nil {
			return nil, fmt.Errorf("store image: %w", err)
		}
		merged.ImageRef = newRef
	}

	updated, err := s.repo.Update(ctx, &merged)
	if err != nil {
		s.discardImage(ctx, newRef)
		return nil, err
	}

	// A replaced image leaves its predecessor orphaned; drop it best-effort.
	if newRef != "" && old.ImageRef != "" {
		s.discardImage(ctx, old.ImageRef)
	}

	s.log.Info().Int64("doctor_id", id).Msg("doctor updated")
	return s.view(updated), nil
}

func (s *DoctorService) Delete(ctx context.Context, id int64) error {
	old, err := s.repo.Get(ctx, id)
	if err != nil {
		return err
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	s.discardImage(ctx, old.ImageRef)
	s.log.Info().Int64("doctor_id", id).Msg("doctor deleted")
	return nil
}

func (s *DoctorService) WithHolidays(ctx context.Context) ([]ports.DoctorWithHolidays, error) {
	rows, err := s.repo.ListWithHolidays(ctx)
	if err != nil {
		return nil, err
	}

	today := time.Now().UTC().Format(domain.DateLayout)
	out := make([]ports.DoctorWithHolidays, 0, len(rows))
	for i := range rows {
		item := ports.DoctorWithHolidays{
			DoctorView: *s.view(&rows[i].Doctor),
			Holidays:   []ports.HolidayRange{},
		}
		for _, h := range rows[i].Holidays {
			// ISO calendar dates compare correctly as strings.
			if h.EndDate > today {
				item.Holidays = append(item.Holidays, ports.HolidayRange{
					ID:        h.ID,
					StartDate: h.StartDate,
					EndDate:   h.EndDate,
				})
			}
		}
		out = append(out, item)
	}
	return out, nil
}

func (s *DoctorService) view(d *domain.Doctor) *ports.DoctorView {
	v := &ports.DoctorView{
		ID:        d.ID,
		Firstname: d.Firstname,
		Lastname:  d.Lastname,
		Email:     d.Email,
		Phone:     d.Phone,
		AgendaURL: d.AgendaURL,
	}
	if d.ImageRef != "" {
		url := s.images.Resolve(d.ImageRef)
		v.ImageURL = &url
	}
	return v
}

// discardImage removes a stored image resource, logging failures instead of
// surfacing them: an orphaned file must never fail the triggering operation.
func (s *DoctorService) discardImage(ctx context.Context, ref string) {
	if ref == "" {
		return
	}
	if err := s.images.Remove(ctx, ref); err != nil {
		s.log.Warn().Err(err).Str("image_ref", ref).Msg("failed to remove image resource")
	}
}

func requireFields(fields map[string]string) error {
	for _, name := range []string{"firstname", "lastname", "email", "phone", "agendaUrl"} {
		if fields[name] == "" {
			return fmt.Errorf("%w: %s is required", domain.ErrValidation, name)
		}
	}
	return nil
}

func applyField(dst *string, src *string, name string) error {
	if src == nil {
		return nil
	}
	if *src == "" {
		return fmt.Errorf("%w: %s must not be empty", domain.ErrValidation, name)
	}
	*dst = *src
	return nil
}
