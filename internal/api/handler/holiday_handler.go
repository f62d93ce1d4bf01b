package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/esdoorn/practice-api/internal/core/domain"
	"github.com/esdoorn/practice-api/internal/core/ports"
)

type HolidayHandler struct {
	service ports.HolidayService
}

func NewHolidayHandler(service ports.HolidayService) *HolidayHandler {
	return &HolidayHandler{service: service}
}

type createHolidayRequest struct {
	DoctorID  int64  `json:"doctorId" validate:"required"`
	StartDate string `json:"startDate" validate:"required"`
	EndDate   string `json:"endDate" validate:"required"`
}

type updateHolidayRequest struct {
	DoctorID  *int64  `json:"doctorId"`
	StartDate *string `json:"startDate"`
	EndDate   *string `json:"endDate"`
}

// List handles GET /holidays.
//
// @Summary      List all holidays
// @Tags         holidays
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}  domain.Holiday
// @Router       /holidays [get]
func (h *HolidayHandler) List(c echo.Context) error {
	holidays, err := h.service.List(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, holidays)
}

// Get handles GET /holidays/:id.
//
// @Summary      Get a holiday by id
// @Tags         holidays
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      int  true  "Holiday id"
// @Success      200  {object}  domain.Holiday
// @Failure      404  {object}  map[string]string
// @Router       /holidays/{id} [get]
func (h *HolidayHandler) Get(c echo.Context) error {
	id, err := paramID(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid id"})
	}

	holiday, err := h.service.Get(c.Request().Context(), id)
	if err != nil {
		if errors.Is(err, domain.ErrHolidayNotFound) {
			return c.JSON(http.StatusNotFound, map[string]string{"error": "holiday not found"})
		}
		return err
	}
	return c.JSON(http.StatusOK, holiday)
}

// Create handles POST /holidays.
//
// @Summary      Create a holiday
// @Tags         holidays
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createHolidayRequest  true  "Holiday details"
// @Success      201   {object}  domain.Holiday
// @Failure      400   {object}  map[string]string
// @Router       /holidays [post]
func (h *HolidayHandler) Create(c echo.Context) error {
	var req createHolidayRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	}

	holiday, err := h.service.Create(c.Request().Context(), ports.CreateHolidayInput{
		DoctorID:  req.DoctorID,
		StartDate: req.StartDate,
		EndDate:   req.EndDate,
	})
	if err != nil {
		if errors.Is(err, domain.ErrValidation) {
			return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
		}
		return err
	}
	return c.JSON(http.StatusCreated, holiday)
}

// Update handles PUT /holidays/:id. Absent fields keep their stored values.
//
// @Summary      Update a holiday
// @Tags         holidays
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      int                   true  "Holiday id"
// @Param        body  body      updateHolidayRequest  true  "Fields to change"
// @Success      200   {object}  domain.Holiday
// @Failure      400   {object}  map[string]string
// @Failure      404   {object}  map[string]string
// @Router       /holidays/{id} [put]
func (h *HolidayHandler) Update(c echo.Context) error {
	id, err := paramID(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid id"})
	}

	var req updateHolidayRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid payload"})
	}

	holiday, err := h.service.Update(c.Request().Context(), id, ports.HolidayPatch{
		DoctorID:  req.DoctorID,
		StartDate: req.StartDate,
		EndDate:   req.EndDate,
	})
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrHolidayNotFound):
			return c.JSON(http.StatusNotFound, map[string]string{"error": "holiday not found"})
		case errors.Is(err, domain.ErrValidation):
			return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
		}
		return err
	}
	return c.JSON(http.StatusOK, holiday)
}

// Delete handles DELETE /holidays/:id.
//
// @Summary      Delete a holiday
// @Tags         holidays
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      int  true  "Holiday id"
// @Success      200  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /holidays/{id} [delete]
func (h *HolidayHandler) Delete(c echo.Context) error {
	id, err := paramID(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid id"})
	}

	if err := h.service.Delete(c.Request().Context(), id); err != nil {
		if errors.Is(err, domain.ErrHolidayNotFound) {
			return c.JSON(http.StatusNotFound, map[string]string{"error": "holiday not found"})
		}
		return err
	}
	return c.JSON(http.StatusOK, map[string]string{"message": "holiday deleted"})
}
