package handler

import (
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/esdoorn/practice-api/internal/core/domain"
	"github.com/esdoorn/practice-api/internal/core/ports"
)

// maxImageBytes caps uploaded avatar size.
const maxImageBytes = 10 << 20

// DoctorHandler handles HTTP requests for doctor profiles. Writes accept
// multipart/form-data with an optional file field "image".
type DoctorHandler struct {
	service ports.DoctorService
}

func NewDoctorHandler(service ports.DoctorService) *DoctorHandler {
	return &DoctorHandler{service: service}
}

// List handles GET /doctors.
//
// @Summary      List all doctors
// @Tags         doctors
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}  ports.DoctorView
// @Router       /doctors [get]
func (h *DoctorHandler) List(c echo.Context) error {
	doctors, err := h.service.List(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, doctors)
}

// Get handles GET /doctors/:id.
//
// @Summary      Get a doctor by id
// @Tags         doctors
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      int  true  "Doctor id"
// @Success      200  {object}  ports.DoctorView
// @Failure      404  {object}  map[string]string
// @Router       /doctors/{id} [get]
func (h *DoctorHandler) Get(c echo.Context) error {
	id, err := paramID(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid id"})
	}

	doctor, err := h.service.Get(c.Request().Context(), id)
	if err != nil {
		if errors.Is(err, domain.ErrDoctorNotFound) {
			return c.JSON(http.StatusNotFound, map[string]string{"error": "doctor not found"})
		}
		return err
	}
	return c.JSON(http.StatusOK, doctor)
}

// Create handles POST /doctors (multipart/form-data).
//
// @Summary      Create a doctor
// @Tags         doctors
// @Accept       multipart/form-data
// @Produce      json
// @Security     BearerAuth
// @Success      201  {object}  ports.DoctorView
// @Failure      400  {object}  map[string]string
// @Router       /doctors [post]
func (h *DoctorHandler) Create(c echo.Context) error {
	in := ports.CreateDoctorInput{
		Firstname: c.FormValue("firstname"),
		Lastname:  c.FormValue("lastname"),
		Email:     c.FormValue("email"),
		Phone:     c.FormValue("phone"),
		AgendaURL: c.FormValue("agendaUrl"),
	}

	image, err := readImageFile(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	}
	in.Image = image

	doctor, err := h.service.Create(c.Request().Context(), in)
	if err != nil {
		if errors.Is(err, domain.ErrValidation) {
			return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
		}
		return err
	}
	return c.JSON(http.StatusCreated, doctor)
}

// Update handles PUT /doctors/:id (multipart/form-data, partial). Only fields
// present in the form participate in the update; an uploaded image replaces
// the stored one.
//
// @Summary      Update a doctor
// @Tags         doctors
// @Accept       multipart/form-data
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      int  true  "Doctor id"
// @Success      200  {object}  ports.DoctorView
// @Failure      400  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /doctors/{id} [put]
func (h *DoctorHandler) Update(c echo.Context) error {
	id, err := paramID(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid id"})
	}

	form, err := c.MultipartForm()
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "multipart form required"})
	}

	patch := ports.DoctorPatch{
		Firstname: formString(form, "firstname"),
		Lastname:  formString(form, "lastname"),
		Email:     formString(form, "email"),
		Phone:     formString(form, "phone"),
		AgendaURL: formString(form, "agendaUrl"),
	}

	if fhs := form.File["image"]; len(fhs) > 0 {
		image, err := readUpload(fhs[0])
		if err != nil {
			return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
		}
		patch.Image = image
	}

	doctor, err := h.service.Update(c.Request().Context(), id, patch)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrDoctorNotFound):
			return c.JSON(http.StatusNotFound, map[string]string{"error": "doctor not found"})
		case errors.Is(err, domain.ErrValidation):
			return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
		}
		return err
	}
	return c.JSON(http.StatusOK, doctor)
}

// Delete handles DELETE /doctors/:id. Holidays cascade; the stored image is
// removed best-effort.
//
// @Summary      Delete a doctor
// @Tags         doctors
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      int  true  "Doctor id"
// @Success      200  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /doctors/{id} [delete]
func (h *DoctorHandler) Delete(c echo.Context) error {
	id, err := paramID(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid id"})
	}

	if err := h.service.Delete(c.Request().Context(), id); err != nil {
		if errors.Is(err, domain.ErrDoctorNotFound) {
			return c.JSON(http.StatusNotFound, map[string]string{"error": "doctor not found"})
		}
		return err
	}
	return c.JSON(http.StatusOK, map[string]string{"message": "doctor deleted"})
}

// WithHolidays handles GET /doctors/doctors-with-holidays.
//
// @Summary      List doctors with their upcoming holidays
// @Tags         doctors
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}  ports.DoctorWithHolidays
// @Router       /doctors/doctors-with-holidays [get]
func (h *DoctorHandler) WithHolidays(c echo.Context) error {
	doctors, err := h.service.WithHolidays(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, doctors)
}

func paramID(c echo.Context) (int64, error) {
	return strconv.ParseInt(c.Param("id"), 10, 64)
}

// formString returns a pointer to the field value when the field is present
// in the form, nil otherwise. Presence, not truthiness, decides whether a
// field participates in a partial update.
func formString(form *multipart.Form, name string) *string {
	vals, ok := form.Value[name]
	if !ok || len(vals) == 0 {
		return nil
	}
	v := vals[0]
	return &v
}

// readImageFile extracts the optional "image" upload from the request.
// A request without a file is fine; an unreadable or oversized one is not.
func readImageFile(c echo.Context) (*ports.ImageUpload, error) {
	fh, err := c.FormFile("image")
	if err != nil {
		return nil, nil
	}
	return readUpload(fh)
}

func readUpload(fh *multipart.FileHeader) (*ports.ImageUpload, error) {
	if fh.Size > maxImageBytes {
		return nil, fmt.Errorf("image exceeds %d bytes", maxImageBytes)
	}

	f, err := fh.Open()
	if err != nil {
		return nil, fmt.Errorf("open upload: %w", err)
	}
	defer f.Close()

	data, err := io.ReadAll(io.LimitReader(f, maxImageBytes+1))
	if err != nil {
		return nil, fmt.Errorf("read upload: %w", err)
	}
	if len(data) > maxImageBytes {
		return nil, fmt.Errorf("image exceeds %d bytes", maxImageBytes)
	}

	return &ports.ImageUpload{
		Filename:    fh.Filename,
		ContentType: fh.Header.Get("Content-Type"),
		Data:        data,
	}, nil
}
