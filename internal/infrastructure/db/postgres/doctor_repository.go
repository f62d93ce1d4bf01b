package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/esdoorn/practice-api/internal/core/domain"
)

type DoctorRepository struct {
	db *sql.DB
}

func NewDoctorRepository(db *sql.DB) *DoctorRepository {
	return &DoctorRepository{db: db}
}

const doctorColumns = `id, firstname, lastname, email, phone, agenda_url, COALESCE(image_ref, '')`

func scanDoctor(row interface{ Scan(...any) error }) (*domain.Doctor, error) {
	d := &domain.Doctor{}
	err := row.Scan(&d.ID, &d.Firstname, &d.Lastname, &d.Email, &d.Phone, &d.AgendaURL, &d.ImageRef)
	if err != nil {
		return nil, err
	}
	return d, nil
}

func (r *DoctorRepository) List(ctx context.Context) ([]domain.Doctor, error) {
	query := `SELECT ` + doctorColumns + ` FROM doctors ORDER BY lastname, firstname`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list doctors: %w", err)
	}
	defer rows.Close()

	doctors := []domain.Doctor{}
	for rows.Next() {
		d, err := scanDoctor(rows)
		if err != nil {
			return nil, fmt.Errorf("scan doctor: %w", err)
		}
		doctors = append(doctors, *d)
	}
	return doctors, rows.Err()
}

func (r *DoctorRepository) Get(ctx context.Context, id int64) (*domain.Doctor, error) {
	query := `SELECT ` + doctorColumns + ` FROM doctors WHERE id = $1`
	d, err := scanDoctor(r.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrDoctorNotFound
		}
		return nil, fmt.Errorf("get doctor: %w", err)
	}
	return d, nil
}

func (r *DoctorRepository) Create(ctx context.Context, d *domain.Doctor) (*domain.Doctor, error) {
	query := `INSERT INTO doctors (firstname, lastname, email, phone, agenda_url, image_ref)
	          VALUES ($1, $2, $3, $4, $5, NULLIF($6, '')) RETURNING id`
	created := *d
	err := r.db.QueryRowContext(ctx, query,
		d.Firstname, d.Lastname, d.Email, d.Phone, d.AgendaURL, d.ImageRef,
	).Scan(&created.ID)
	if err != nil {
		return nil, fmt.Errorf("insert doctor: %w", err)
	}
	return &created, nil
}

func (r *DoctorRepository) Update(ctx context.Context, d *domain.Doctor) (*domain.Doctor, error) {
	query := `UPDATE doctors
	          SET firstname = $1, lastname = $2, email = $3, phone = $4,
	              agenda_url = $5, image_ref = NULLIF($6, '')
	          WHERE id = $7`
	res, err := r.db.ExecContext(ctx, query,
		d.Firstname, d.Lastname, d.Email, d.Phone, d.AgendaURL, d.ImageRef, d.ID,
	)
	if err != nil {
		return nil, fmt.Errorf("update doctor: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return nil, domain.ErrDoctorNotFound
	}
	updated := *d
	return &updated, nil
}

func (r *DoctorRepository) Delete(ctx context.Context, id int64) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM doctors WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete doctor: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return domain.ErrDoctorNotFound
	}
	return nil
}

// ListWithHolidays left-joins doctors to their holidays. A doctor with no
// holiday rows still yields exactly one result entry with an empty slice;
// null holiday columns from the join are skipped, never dropped doctors.
func (r *DoctorRepository) ListWithHolidays(ctx context.Context) ([]domain.DoctorHolidays, error) {
	query := `SELECT d.id, d.firstname, d.lastname, d.email, d.phone, d.agenda_url,
	                 COALESCE(d.image_ref, ''),
	                 h.id, h.start_date, h.end_date
	          FROM doctors d
	          LEFT JOIN holidays h ON h.doctor_id = d.id
	          ORDER BY d.lastname, d.firstname, d.id, h.start_date`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list doctors with holidays: %w", err)
	}
	defer rows.Close()

	out := []domain.DoctorHolidays{}
	index := map[int64]int{}
	for rows.Next() {
		var d domain.Doctor
		var hID sql.NullInt64
		var hStart, hEnd sql.NullString
		err := rows.Scan(&d.ID, &d.Firstname, &d.Lastname, &d.Email, &d.Phone,
			&d.AgendaURL, &d.ImageRef, &hID, &hStart, &hEnd)
		if err != nil {
			return nil, fmt.Errorf("scan doctor holidays: %w", err)
		}

		i, seen := index[d.ID]
		if !seen {
			i = len(out)
			index[d.ID] = i
			out = append(out, domain.DoctorHolidays{Doctor: d, Holidays: []domain.Holiday{}})
		}
		if hID.Valid {
			out[i].Holidays = append(out[i].Holidays, domain.Holiday{
				ID:        hID.Int64,
				DoctorID:  d.ID,
				StartDate: hStart.String,
				EndDate:   hEnd.String,
			})
		}
	}
	return out, rows.Err()
}
