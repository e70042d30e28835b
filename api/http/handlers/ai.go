package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/cvfolio/backend/api/http/presenter"
	"github.com/cvfolio/backend/pkg/gateway"
)

// AIHandler serves the unauthenticated AI gateway endpoints.
type AIHandler struct {
	svc *gateway.Service
}

func NewAIHandler(svc *gateway.Service) *AIHandler { return &AIHandler{svc: svc} }

// AnalyzeCV scores the CV document via the selected provider.
// @Summary Analyze a CV
// @Description Sends the CV document to the selected AI provider and returns the model's JSON analysis as-is.
// @Tags    ai
// @Accept  json
// @Produce json
// @Param   input body gateway.AnalyzeRequest true "CV document plus optional provider"
// @Success 200 {object} map[string]any "Raw analysis JSON from the model"
// @Failure 400 {object} presenter.ErrorResponse
// @Failure 500 {object} presenter.ErrorResponse
// @Router  /ai/analyze-cv [post]
func (h *AIHandler) AnalyzeCV(c *fiber.Ctx) error {
	var req gateway.AnalyzeRequest
	if err := c.BodyParser(&req); err != nil {
		return presenter.Error(c, http.StatusBadRequest, "invalid JSON payload")
	}
	raw, err := h.svc.AnalyzeCV(c.Context(), req)
	if err != nil {
		return presenter.FromError(c, err)
	}
	// The model's text is the body; it is not re-parsed here.
	c.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	return c.Status(http.StatusOK).SendString(raw)
}

// RewriteSection rewrites one CV section.
// @Summary Rewrite a CV section
// @Tags    ai
// @Accept  json
// @Produce json
// @Param   input body gateway.RewriteRequest true "Section name, current content and optional style options"
// @Success 200 {object} map[string]string
// @Failure 400 {object} presenter.ErrorResponse
// @Failure 500 {object} presenter.ErrorResponse
// @Router  /ai/rewrite-section [post]
func (h *AIHandler) RewriteSection(c *fiber.Ctx) error {
	var req gateway.RewriteRequest
	if err := c.BodyParser(&req); err != nil {
		return presenter.Error(c, http.StatusBadRequest, "invalid JSON payload")
	}
	text, err := h.svc.RewriteSection(c.Context(), req)
	if err != nil {
		return presenter.FromError(c, err)
	}
	return presenter.JSON(c, http.StatusOK, fiber.Map{"rewrittenContent": text})
}

// GenerateCoverLetter drafts a cover letter from the CV and a job description.
// @Summary Generate a cover letter
// @Tags    ai
// @Accept  json
// @Produce json
// @Param   input body gateway.CoverLetterRequest true "CV document, job description and optional company/position"
// @Success 200 {object} map[string]string
// @Failure 400 {object} presenter.ErrorResponse
// @Failure 500 {object} presenter.ErrorResponse
// @Router  /generate-cover-letter [post]
func (h *AIHandler) GenerateCoverLetter(c *fiber.Ctx) error {
	var req gateway.CoverLetterRequest
	if err := c.BodyParser(&req); err != nil {
		return presenter.Error(c, http.StatusBadRequest, "invalid JSON payload")
	}
	text, err := h.svc.GenerateCoverLetter(c.Context(), req)
	if err != nil {
		return presenter.FromError(c, err)
	}
	return presenter.JSON(c, http.StatusOK, fiber.Map{"coverLetter": text})
}
