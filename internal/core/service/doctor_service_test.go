package service

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/esdoorn/practice-api/internal/core/domain"
	"github.com/esdoorn/practice-api/internal/core/ports"
)

type stubDoctorRepo struct {
	doctors  map[int64]*domain.Doctor
	holidays map[int64][]domain.Holiday
	nextID   int64
	failNext error
}

func newStubDoctorRepo() *stubDoctorRepo {
	return &stubDoctorRepo{
		doctors:  make(map[int64]*domain.Doctor),
		holidays: make(map[int64][]domain.Holiday),
	}
}

func (r *stubDoctorRepo) List(_ context.Context) ([]domain.Doctor, error) {
	out := []domain.Doctor{}
	for _, d := range r.doctors {
		out = append(out, *d)
	}
	return out, nil
}

func (r *stubDoctorRepo) Get(_ context.Context, id int64) (*domain.Doctor, error) {
	d, ok := r.doctors[id]
	if !ok {
		return nil, domain.ErrDoctorNotFound
	}
	clone := *d
	return &clone, nil
}

func (r *stubDoctorRepo) Create(_ context.Context, d *domain.Doctor) (*domain.Doctor, error) {
	if r.failNext != nil {
		err := r.failNext
		r.failNext = nil
		return nil, err
	}
	r.nextID++
	created := *d
	created.ID = r.nextID
	r.doctors[created.ID] = &created
	clone := created
	return &clone, nil
}

func (r *stubDoctorRepo) Update(_ context.Context, d *domain.Doctor) (*domain.Doctor, error) {
	if r.failNext != nil {
		err := r.failNext
		r.failNext = nil
		return nil, err
	}
	if _, ok := r.doctors[d.ID]; !ok {
		return nil, domain.ErrDoctorNotFound
	}
	updated := *d
	r.doctors[d.ID] = &updated
	clone := updated
	return &clone, nil
}

func (r *stubDoctorRepo) Delete(_ context.Context, id int64) error {
	if _, ok := r.doctors[id]; !ok {
		return domain.ErrDoctorNotFound
	}
	delete(r.doctors, id)
	delete(r.holidays, id)
	return nil
}

func (r *stubDoctorRepo) ListWithHolidays(_ context.Context) ([]domain.DoctorHolidays, error) {
	out := []domain.DoctorHolidays{}
	for _, d := range r.doctors {
		hs := r.holidays[d.ID]
		if hs == nil {
			hs = []domain.Holiday{}
		}
		out = append(out, domain.DoctorHolidays{Doctor: *d, Holidays: hs})
	}
	return out, nil
}

// stubImageStore records stored refs and removals in memory.
type stubImageStore struct {
	stored  map[string][]byte
	counter int
	failing bool
}

func newStubImageStore() *stubImageStore {
	return &stubImageStore{stored: make(map[string][]byte)}
}

func (s *stubImageStore) Store(_ context.Context, up ports.ImageUpload) (string, error) {
	if s.failing {
		return "", errors.New("store failed")
	}
	s.counter++
	ref := fmt.Sprintf("img-%d", s.counter)
	s.stored[ref] = up.Data
	return ref, nil
}

func (s *stubImageStore) Resolve(ref string) string {
	return "http://localhost/uploads/" + ref
}

func (s *stubImageStore) Remove(_ context.Context, ref string) error {
	delete(s.stored, ref)
	return nil
}

func newDoctorService(repo *stubDoctorRepo, images *stubImageStore) *DoctorService {
	return NewDoctorService(repo, images, zerolog.Nop())
}

func validCreateInput() ports.CreateDoctorInput {
	return ports.CreateDoctorInput{
		Firstname: "An",
		Lastname:  "Peeters",
		Email:     "an@example.com",
		Phone:     "0470 11 22 33",
		AgendaURL: "https://agenda.example.com/an",
	}
}

func TestDoctorService_Create_NoImage(t *testing.T) {
	svc := newDoctorService(newStubDoctorRepo(), newStubImageStore())

	view, err := svc.Create(context.Background(), validCreateInput())
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}
	if view.ID == 0 {
		t.Fatalf("expected generated id")
	}
	if view.ImageURL != nil {
		t.Fatalf("expected null imageUrl, got %v", *view.ImageURL)
	}
}

func TestDoctorService_Create_MissingField(t *testing.T) {
	svc := newDoctorService(newStubDoctorRepo(), newStubImageStore())

	in := validCreateInput()
	in.Phone = ""
	if _, err := svc.Create(context.Background(), in); !errors.Is(err, domain.ErrValidation) {
		t.Fatalf("expected ErrValidation, got %v", err)
	}
}

func TestDoctorService_Create_WithImage(t *testing.T) {
	images := newStubImageStore()
	svc := newDoctorService(newStubDoctorRepo(), images)

	in := validCreateInput()
	in.Image = &ports.ImageUpload{Filename: "a.jpg", ContentType: "image/jpeg", Data: []byte{1, 2, 3}}

	view, err := svc.Create(context.Background(), in)
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}
	if view.ImageURL == nil {
		t.Fatalf("expected imageUrl to be resolved")
	}
	if len(images.stored) != 1 {
		t.Fatalf("expected one stored image, got %d", len(images.stored))
	}
}

func TestDoctorService_Create_RepoFailureCleansUpImage(t *testing.T) {
	repo := newStubDoctorRepo()
	repo.failNext = errors.New("insert failed")
	images := newStubImageStore()
	svc := newDoctorService(repo, images)

	in := validCreateInput()
	in.Image = &ports.ImageUpload{Filename: "a.jpg", Data: []byte{1}}

	if _, err := svc.Create(context.Background(), in); err == nil {
		t.Fatalf("expected error")
	}
	if len(images.stored) != 0 {
		t.Fatalf("expected orphaned image to be removed, %d left", len(images.stored))
	}
}

func TestDoctorService_Update_SingleFieldKeepsOthers(t *testing.T) {
	repo := newStubDoctorRepo()
	svc := newDoctorService(repo, newStubImageStore())

	created, err := svc.Create(context.Background(), validCreateInput())
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}

	phone := "0499 99 88 77"
	updated, err := svc.Update(context.Background(), created.ID, ports.DoctorPatch{Phone: &phone})
	if err != nil {
		t.Fatalf("Update returned error: %v", err)
	}

	if updated.Phone != phone {
		t.Fatalf("phone not updated: %s", updated.Phone)
	}
	if updated.Firstname != created.Firstname || updated.Lastname != created.Lastname ||
		updated.Email != created.Email || updated.AgendaURL != created.AgendaURL {
		t.Fatalf("untouched fields changed: %+v vs %+v", updated, created)
	}
}

func TestDoctorService_Update_EmptyFieldRejected(t *testing.T) {
	svc := newDoctorService(newStubDoctorRepo(), newStubImageStore())

	created, _ := svc.Create(context.Background(), validCreateInput())

	empty := ""
	if _, err := svc.Update(context.Background(), created.ID, ports.DoctorPatch{Lastname: &empty}); !errors.Is(err, domain.ErrValidation) {
		t.Fatalf("expected ErrValidation for empty lastname, got %v", err)
	}
}

func TestDoctorService_Update_NewImageReplacesOld(t *testing.T) {
	images := newStubImageStore()
	svc := newDoctorService(newStubDoctorRepo(), images)

	in := validCreateInput()
	in.Image = &ports.ImageUpload{Filename: "old.jpg", Data: []byte{1}}
	created, err := svc.Create(context.Background(), in)
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}
	oldURL := *created.ImageURL

	updated, err := svc.Update(context.Background(), created.ID, ports.DoctorPatch{
		Image: &ports.ImageUpload{Filename: "new.jpg", Data: []byte{2}},
	})
	if err != nil {
		t.Fatalf("Update returned error: %v", err)
	}
	if *updated.ImageURL == oldURL {
		t.Fatalf("expected image url to change")
	}
	if len(images.stored) != 1 {
		t.Fatalf("expected old image to be removed, %d stored", len(images.stored))
	}
}

func TestDoctorService_Update_NoImageKeepsOld(t *testing.T) {
	images := newStubImageStore()
	svc := newDoctorService(newStubDoctorRepo(), images)

	in := validCreateInput()
	in.Image = &ports.ImageUpload{Filename: "old.jpg", Data: []byte{1}}
	created, _ := svc.Create(context.Background(), in)

	first := "Anke"
	updated, err := svc.Update(context.Background(), created.ID, ports.DoctorPatch{Firstname: &first})
	if err != nil {
		t.Fatalf("Update returned error: %v", err)
	}
	if updated.ImageURL == nil || *updated.ImageURL != *created.ImageURL {
		t.Fatalf("image reference should be retained verbatim")
	}
}

func TestDoctorService_Update_NotFound(t *testing.T) {
	svc := newDoctorService(newStubDoctorRepo(), newStubImageStore())

	name := "X"
	if _, err := svc.Update(context.Background(), 99, ports.DoctorPatch{Firstname: &name}); !errors.Is(err, domain.ErrDoctorNotFound) {
		t.Fatalf("expected ErrDoctorNotFound, got %v", err)
	}
}

func TestDoctorService_Delete_RemovesImage(t *testing.T) {
	images := newStubImageStore()
	repo := newStubDoctorRepo()
	svc := newDoctorService(repo, images)

	in := validCreateInput()
	in.Image = &ports.ImageUpload{Filename: "a.jpg", Data: []byte{1}}
	created, _ := svc.Create(context.Background(), in)

	if err := svc.Delete(context.Background(), created.ID); err != nil {
		t.Fatalf("Delete returned error: %v", err)
	}
	if len(repo.doctors) != 0 {
		t.Fatalf("doctor row still present")
	}
	if len(images.stored) != 0 {
		t.Fatalf("image resource still present")
	}
}

func TestDoctorService_WithHolidays_FiltersPast(t *testing.T) {
	repo := newStubDoctorRepo()
	svc := newDoctorService(repo, newStubImageStore())

	created, _ := svc.Create(context.Background(), validCreateInput())

	day := 24 * time.Hour
	past := time.Now().UTC().Add(-10 * day).Format(domain.DateLayout)
	pastEnd := time.Now().UTC().Add(-5 * day).Format(domain.DateLayout)
	future := time.Now().UTC().Add(5 * day).Format(domain.DateLayout)
	futureEnd := time.Now().UTC().Add(10 * day).Format(domain.DateLayout)

	repo.holidays[created.ID] = []domain.Holiday{
		{ID: 1, DoctorID: created.ID, StartDate: past, EndDate: pastEnd},
		{ID: 2, DoctorID: created.ID, StartDate: future, EndDate: futureEnd},
	}

	out, err := svc.WithHolidays(context.Background())
	if err != nil {
		t.Fatalf("WithHolidays returned error: %v", err)
	}
	if len(out) != 1 {
		t.Fatalf("expected one doctor, got %d", len(out))
	}
	if len(out[0].Holidays) != 1 || out[0].Holidays[0].ID != 2 {
		t.Fatalf("expected only the future holiday, got %+v", out[0].Holidays)
	}
}

func TestDoctorService_WithHolidays_DoctorWithoutHolidays(t *testing.T) {
	repo := newStubDoctorRepo()
	svc := newDoctorService(repo, newStubImageStore())

	_, _ = svc.Create(context.Background(), validCreateInput())

	out, err := svc.WithHolidays(context.Background())
	if err != nil {
		t.Fatalf("WithHolidays returned error: %v", err)
	}
	if len(out) != 1 {
		t.Fatalf("expected doctor to appear exactly once, got %d entries", len(out))
	}
	if out[0].Holidays == nil || len(out[0].Holidays) != 0 {
		t.Fatalf("expected empty holiday list, got %+v", out[0].Holidays)
	}
}
