package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"

	"github.com/esdoorn/practice-api/internal/core/domain"
)

type HolidayRepository struct {
	db *sql.DB
}

func NewHolidayRepository(db *sql.DB) *HolidayRepository {
	return &HolidayRepository{db: db}
}

const holidaySelect = `SELECT h.id, h.doctor_id, d.firstname || ' ' || d.lastname,
	       h.start_date, h.end_date
	FROM holidays h
	JOIN doctors d ON d.id = h.doctor_id`

func (r *HolidayRepository) List(ctx context.Context) ([]domain.Holiday, error) {
	rows, err := r.db.QueryContext(ctx, holidaySelect+` ORDER BY h.start_date DESC`)
	if err != nil {
		return nil, fmt.Errorf("list holidays: %w", err)
	}
	defer rows.Close()

	holidays := []domain.Holiday{}
	for rows.Next() {
		var h domain.Holiday
		if err := rows.Scan(&h.ID, &h.DoctorID, &h.DoctorName, &h.StartDate, &h.EndDate); err != nil {
			return nil, fmt.Errorf("scan holiday: %w", err)
		}
		holidays = append(holidays, h)
	}
	return holidays, rows.Err()
}

func (r *HolidayRepository) Get(ctx context.Context, id int64) (*domain.Holiday, error) {
	h := &domain.Holiday{}
	err := r.db.QueryRowContext(ctx, holidaySelect+` WHERE h.id = $1`, id).Scan(
		&h.ID, &h.DoctorID, &h.DoctorName, &h.StartDate, &h.EndDate,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrHolidayNotFound
		}
		return nil, fmt.Errorf("get holiday: %w", err)
	}
	return h, nil
}

func (r *HolidayRepository) Create(ctx context.Context, h *domain.Holiday) (*domain.Holiday, error) {
	query := `INSERT INTO holidays (doctor_id, start_date, end_date)
	          VALUES ($1, $2, $3) RETURNING id`
	var id int64
	err := r.db.QueryRowContext(ctx, query, h.DoctorID, h.StartDate, h.EndDate).Scan(&id)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == codeForeignKeyViolation {
			return nil, fmt.Errorf("%w: doctorId does not reference an existing doctor", domain.ErrValidation)
		}
		return nil, fmt.Errorf("insert holiday: %w", err)
	}
	return r.Get(ctx, id)
}

func (r *HolidayRepository) Update(ctx context.Context, h *domain.Holiday) (*domain.Holiday, error) {
	query := `UPDATE holidays SET doctor_id = $1, start_date = $2, end_date = $3 WHERE id = $4`
	res, err := r.db.ExecContext(ctx, query, h.DoctorID, h.StartDate, h.EndDate, h.ID)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == codeForeignKeyViolation {
			return nil, fmt.Errorf("%w: doctorId does not reference an existing doctor", domain.ErrValidation)
		}
		return nil, fmt.Errorf("update holiday: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return nil, domain.ErrHolidayNotFound
	}
	return r.Get(ctx, h.ID)
}

func (r *HolidayRepository) Delete(ctx context.Context, id int64) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM holidays WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete holiday: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return domain.ErrHolidayNotFound
	}
	return nil
}
