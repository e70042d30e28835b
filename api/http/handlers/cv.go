package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/cvfolio/backend/api/http/presenter"
	"github.com/cvfolio/backend/pkg/cv"
)

// CVHandler serves the portfolio document: public read, authenticated write.
type CVHandler struct {
	uc cv.UseCase
}

func NewCVHandler(uc cv.UseCase) *CVHandler { return &CVHandler{uc: uc} }

// Get returns the published CV document.
// @Summary Get the CV document
// @Tags    cv
// @Produce json
// @Success 200 {object} cv.Document
// @Failure 404 {object} presenter.ErrorResponse
// @Router  /cv [get]
func (h *CVHandler) Get(c *fiber.Ctx) error {
	doc, err := h.uc.Get(c.Context())
	if err != nil {
		return presenter.FromError(c, err)
	}
	return presenter.JSON(c, http.StatusOK, doc)
}

// Update replaces the CV document (admin area).
// @Summary Replace the CV document
// @Tags    cv
// @Accept  json
// @Produce json
// @Param   input body cv.Document true "Full CV document"
// @Security BearerAuth
// @Success 200 {object} cv.Document
// @Failure 400 {object} presenter.ErrorResponse
// @Failure 401 {object} presenter.ErrorResponse
// @Failure 500 {object} presenter.ErrorResponse
// @Router  /cv [put]
func (h *CVHandler) Update(c *fiber.Ctx) error {
	var doc cv.Document
	if err := c.BodyParser(&doc); err != nil {
		return presenter.Error(c, http.StatusBadRequest, "invalid JSON payload")
	}
	saved, err := h.uc.Update(c.Context(), doc)
	if err != nil {
		return presenter.FromError(c, err)
	}
	return presenter.JSON(c, http.StatusOK, saved)
}
