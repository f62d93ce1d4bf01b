package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/esdoorn/practice-api/internal/core/domain"
	"github.com/esdoorn/practice-api/internal/core/ports"
)

type stubDoctorService struct {
	view      *ports.DoctorView
	err       error
	lastIn    ports.CreateDoctorInput
	lastPatch ports.DoctorPatch
	lastID    int64
}

func (s *stubDoctorService) List(_ context.Context) ([]ports.DoctorView, error) {
	if s.err != nil {
		return nil, s.err
	}
	return []ports.DoctorView{*s.view}, nil
}

func (s *stubDoctorService) Get(_ context.Context, id int64) (*ports.DoctorView, error) {
	s.lastID = id
	return s.view, s.err
}

func (s *stubDoctorService) Create(_ context.Context, in ports.CreateDoctorInput) (*ports.DoctorView, error) {
	s.lastIn = in
	return s.view, s.err
}

func (s *stubDoctorService) Update(_ context.Context, id int64, patch ports.DoctorPatch) (*ports.DoctorView, error) {
	s.lastID = id
	s.lastPatch = patch
	return s.view, s.err
}

func (s *stubDoctorService) Delete(_ context.Context, id int64) error {
	s.lastID = id
	return s.err
}

func (s *stubDoctorService) WithHolidays(_ context.Context) ([]ports.DoctorWithHolidays, error) {
	if s.err != nil {
		return nil, s.err
	}
	return []ports.DoctorWithHolidays{{DoctorView: *s.view, Holidays: []ports.HolidayRange{}}}, nil
}

func sampleView() *ports.DoctorView {
	return &ports.DoctorView{
		ID:        1,
		Firstname: "An",
		Lastname:  "Peeters",
		Email:     "an@example.com",
		Phone:     "0470 11 22 33",
		AgendaURL: "https://agenda.example.com/an",
	}
}

// multipartBody builds a multipart form from fields, optionally with an image
// file part.
func multipartBody(t *testing.T, fields map[string]string, image []byte) (*bytes.Buffer, string) {
	t.Helper()
	buf := &bytes.Buffer{}
	w := multipart.NewWriter(buf)
	for k, v := range fields {
		if err := w.WriteField(k, v); err != nil {
			t.Fatalf("write field %s: %v", k, err)
		}
	}
	if image != nil {
		fw, err := w.CreateFormFile("image", "avatar.jpg")
		if err != nil {
			t.Fatalf("create file part: %v", err)
		}
		if _, err := fw.Write(image); err != nil {
			t.Fatalf("write file part: %v", err)
		}
	}
	if err := w.Close(); err != nil {
		t.Fatalf("close writer: %v", err)
	}
	return buf, w.FormDataContentType()
}

func newMultipartContext(method, target string, body *bytes.Buffer, contentType string) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	e.Validator = NewValidator()
	req := httptest.NewRequest(method, target, body)
	req.Header.Set(echo.HeaderContentType, contentType)
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func TestDoctorHandler_Create_WithoutImage(t *testing.T) {
	svc := &stubDoctorService{view: sampleView()}
	h := NewDoctorHandler(svc)

	body, ct := multipartBody(t, map[string]string{
		"firstname": "An",
		"lastname":  "Peeters",
		"email":     "an@example.com",
		"phone":     "0470 11 22 33",
		"agendaUrl": "https://agenda.example.com/an",
	}, nil)

	c, rec := newMultipartContext(http.MethodPost, "/doctors", body, ct)
	if err := h.Create(c); err != nil {
		t.Fatalf("Create returned error: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
	}
	if svc.lastIn.Image != nil {
		t.Errorf("no image was uploaded but service received one")
	}

	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid response body: %v", err)
	}
	if v, ok := resp["imageUrl"]; !ok || v != nil {
		t.Errorf("expected imageUrl to be present and null, got %v", resp["imageUrl"])
	}
}

func TestDoctorHandler_Create_WithImage(t *testing.T) {
	svc := &stubDoctorService{view: sampleView()}
	h := NewDoctorHandler(svc)

	body, ct := multipartBody(t, map[string]string{
		"firstname": "An",
		"lastname":  "Peeters",
		"email":     "an@example.com",
		"phone":     "0470 11 22 33",
		"agendaUrl": "https://agenda.example.com/an",
	}, []byte{0xff, 0xd8, 0xff})

	c, rec := newMultipartContext(http.MethodPost, "/doctors", body, ct)
	if err := h.Create(c); err != nil {
		t.Fatalf("Create returned error: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}
	if svc.lastIn.Image == nil {
		t.Fatalf("image upload not forwarded to service")
	}
	if svc.lastIn.Image.Filename != "avatar.jpg" || len(svc.lastIn.Image.Data) != 3 {
		t.Errorf("unexpected upload: %+v", svc.lastIn.Image)
	}
}

func TestDoctorHandler_Create_ValidationError(t *testing.T) {
	svc := &stubDoctorService{err: domain.ErrValidation}
	h := NewDoctorHandler(svc)

	body, ct := multipartBody(t, map[string]string{"firstname": "An"}, nil)
	c, rec := newMultipartContext(http.MethodPost, "/doctors", body, ct)
	if err := h.Create(c); err != nil {
		t.Fatalf("Create returned error: %v", err)
	}
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}

func TestDoctorHandler_Update_OnlyPresentFields(t *testing.T) {
	svc := &stubDoctorService{view: sampleView()}
	h := NewDoctorHandler(svc)

	body, ct := multipartBody(t, map[string]string{"phone": "0499 99 88 77"}, nil)
	c, rec := newMultipartContext(http.MethodPut, "/doctors/1", body, ct)
	c.SetParamNames("id")
	c.SetParamValues("1")

	if err := h.Update(c); err != nil {
		t.Fatalf("Update returned error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}

	patch := svc.lastPatch
	if patch.Phone == nil || *patch.Phone != "0499 99 88 77" {
		t.Errorf("phone not passed: %v", patch.Phone)
	}
	if patch.Firstname != nil || patch.Lastname != nil || patch.Email != nil || patch.AgendaURL != nil || patch.Image != nil {
		t.Errorf("absent fields must stay nil: %+v", patch)
	}
}

func TestDoctorHandler_Update_InvalidID(t *testing.T) {
	h := NewDoctorHandler(&stubDoctorService{view: sampleView()})

	body, ct := multipartBody(t, map[string]string{"phone": "0499 99 88 77"}, nil)
	c, rec := newMultipartContext(http.MethodPut, "/doctors/abc", body, ct)
	c.SetParamNames("id")
	c.SetParamValues("abc")

	if err := h.Update(c); err != nil {
		t.Fatalf("Update returned error: %v", err)
	}
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}

func TestDoctorHandler_Update_NotFound(t *testing.T) {
	h := NewDoctorHandler(&stubDoctorService{err: domain.ErrDoctorNotFound})

	body, ct := multipartBody(t, map[string]string{"phone": "0499 99 88 77"}, nil)
	c, rec := newMultipartContext(http.MethodPut, "/doctors/42", body, ct)
	c.SetParamNames("id")
	c.SetParamValues("42")

	if err := h.Update(c); err != nil {
		t.Fatalf("Update returned error: %v", err)
	}
	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}
}

func TestDoctorHandler_Delete(t *testing.T) {
	svc := &stubDoctorService{}
	h := NewDoctorHandler(svc)

	e := echo.New()
	req := httptest.NewRequest(http.MethodDelete, "/doctors/3", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues("3")

	if err := h.Delete(c); err != nil {
		t.Fatalf("Delete returned error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if svc.lastID != 3 {
		t.Errorf("id not forwarded: %d", svc.lastID)
	}
}

func TestDoctorHandler_WithHolidays(t *testing.T) {
	svc := &stubDoctorService{view: sampleView()}
	h := NewDoctorHandler(svc)

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/doctors/doctors-with-holidays", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := h.WithHolidays(c); err != nil {
		t.Fatalf("WithHolidays returned error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp []map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid response body: %v", err)
	}
	if len(resp) != 1 {
		t.Fatalf("expected one doctor, got %d", len(resp))
	}
	if hs, ok := resp[0]["holidays"].([]any); !ok || len(hs) != 0 {
		t.Errorf("expected empty holidays array, got %v", resp[0]["holidays"])
	}
}
