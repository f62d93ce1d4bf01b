package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/esdoorn/practice-api/internal/core/ports"
)

// SiteBlockHandler serves one editable HTML fragment (welcome or urgency).
// One instance is registered per block.
type SiteBlockHandler struct {
	service ports.SiteBlockService
	block   string
}

func NewSiteBlockHandler(service ports.SiteBlockService, block string) *SiteBlockHandler {
	return &SiteBlockHandler{service: service, block: block}
}

type siteBlockResponse struct {
	HTML string `json:"html"`
}

type upsertSiteBlockRequest struct {
	// Pointer so a missing field is distinguishable from an intentionally
	// empty fragment.
	HTML *string `json:"html"`
}

// Get returns the current HTML, or an empty string when never written.
//
// @Summary      Read a site block
// @Tags         site-blocks
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  siteBlockResponse
// @Router       /{block} [get]
func (h *SiteBlockHandler) Get(c echo.Context) error {
	block, err := h.service.Get(c.Request().Context(), h.block)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, siteBlockResponse{HTML: block.HTML})
}

// Put replaces the block content, creating the singleton row on first write.
//
// @Summary      Replace a site block
// @Tags         site-blocks
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      upsertSiteBlockRequest  true  "New HTML content"
// @Success      200   {object}  domain.SiteBlock
// @Failure      400   {object}  map[string]string
// @Router       /{block} [put]
func (h *SiteBlockHandler) Put(c echo.Context) error {
	var req upsertSiteBlockRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid payload"})
	}
	if req.HTML == nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "html field required"})
	}

	block, err := h.service.Upsert(c.Request().Context(), h.block, *req.HTML)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, block)
}
