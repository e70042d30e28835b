package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/cvfolio/backend/api/http/presenter"
	"github.com/cvfolio/backend/pkg/gateway"
	"github.com/cvfolio/backend/pkg/security"
	"github.com/cvfolio/backend/pkg/security/shield"
)

// SuggestHandler serves the authenticated improvement-suggestions endpoint.
// Shield and authentication run in that order, and both strictly before the
// body is validated or any provider is dispatched, so blocked and anonymous
// callers never cost an upstream call.
type SuggestHandler struct {
	svc    *gateway.Service
	shield shield.Shield
	auth   security.Authenticator
}

func NewSuggestHandler(svc *gateway.Service, sh shield.Shield, auth security.Authenticator) *SuggestHandler {
	return &SuggestHandler{svc: svc, shield: sh, auth: auth}
}

// SuggestImprovements proposes schema-validated CV improvements.
// @Summary Suggest CV improvements
// @Description Returns improvement suggestions validated against a fixed schema. Requires a session token.
// @Tags    ai
// @Accept  json
// @Produce json
// @Param   input body gateway.SuggestRequest true "CV document plus optional target role"
// @Security BearerAuth
// @Success 200 {object} gateway.SuggestionList
// @Failure 400 {object} presenter.ErrorResponse
// @Failure 401 {object} presenter.ErrorResponse
// @Failure 403 {object} presenter.ErrorResponse
// @Failure 500 {object} presenter.ErrorResponse
// @Router  /ai/suggest-improvements [post]
func (h *SuggestHandler) SuggestImprovements(c *fiber.Ctx) error {
	if err := h.shield.Check(c); err != nil {
		return presenter.FromError(c, err)
	}
	if _, err := h.auth.Authenticate(c); err != nil {
		return presenter.FromError(c, err)
	}
	var req gateway.SuggestRequest
	if err := c.BodyParser(&req); err != nil {
		return presenter.Error(c, http.StatusBadRequest, "invalid JSON payload")
	}
	out, err := h.svc.SuggestImprovements(c.Context(), req)
	if err != nil {
		return presenter.FromError(c, err)
	}
	return presenter.JSON(c, http.StatusOK, out)
}
