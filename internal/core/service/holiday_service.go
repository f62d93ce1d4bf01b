package service

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/esdoorn/practice-api/internal/core/domain"
	"github.com/esdoorn/practice-api/internal/core/ports"
)

// HolidayService implements holiday CRUD.
type HolidayService struct {
	repo ports.HolidayRepository
	log  zerolog.Logger
}

func NewHolidayService(repo ports.HolidayRepository, log zerolog.Logger) *HolidayService {
	return &HolidayService{repo: repo, log: log}
}

func (s *HolidayService) List(ctx context.Context) ([]domain.Holiday, error) {
	return s.repo.List(ctx)
}

func (s *HolidayService) Get(ctx context.Context, id int64) (*domain.Holiday, error) {
	return s.repo.Get(ctx, id)
}

func (s *HolidayService) Create(ctx context.Context, in ports.CreateHolidayInput) (*domain.Holiday, error) {
	if in.DoctorID <= 0 {
		return nil, fmt.Errorf("%w: doctorId is required", domain.ErrValidation)
	}
	if err := checkDate(in.StartDate, "startDate"); err != nil {
		return nil, err
	}
	if err := checkDate(in.EndDate, "endDate"); err != nil {
		return nil, err
	}

	created, err := s.repo.Create(ctx, &domain.Holiday{
		DoctorID:  in.DoctorID,
		StartDate: in.StartDate,
		EndDate:   in.EndDate,
	})
	if err != nil {
		return nil, err
	}

	s.log.Info().Int64("holiday_id", created.ID).Int64("doctor_id", created.DoctorID).Msg("holiday created")
	return created, nil
}

func (s *HolidayService) Update(ctx context.Context, id int64, patch ports.HolidayPatch) (*domain.Holiday, error) {
	old, err := s.repo.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	merged := *old
	if patch.DoctorID != nil {
		if *patch.DoctorID <= 0 {
			return nil, fmt.Errorf("%w: doctorId must be a positive id", domain.ErrValidation)
		}
		merged.DoctorID = *patch.DoctorID
	}
	if patch.StartDate != nil {
		if err := checkDate(*patch.StartDate, "startDate"); err != nil {
			return nil, err
		}
		merged.StartDate = *patch.StartDate
	}
	if patch.EndDate != nil {
		if err := checkDate(*patch.EndDate, "endDate"); err != nil {
			return nil, err
		}
		merged.EndDate = *patch.EndDate
	}

	return s.repo.Update(ctx, &merged)
}

func (s *HolidayService) Delete(ctx context.Context, id int64) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	s.log.Info().Int64("holiday_id", id).Msg("holiday deleted")
	return nil
}

func checkDate(s, name string) error {
	if s == "" {
		return fmt.Errorf("%w: %s is required", domain.ErrValidation, name)
	}
	if !domain.ValidDate(s) {
		return fmt.Errorf("%w: %s must be a YYYY-MM-DD date", domain.ErrValidation, name)
	}
	return nil
}
