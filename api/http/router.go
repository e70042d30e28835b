package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/cvfolio/backend/api/http/handlers"
)

// Register wires all HTTP routes onto given Fiber app. The endpoint paths are
// part of the public contract of the site and must not change.
func Register(
	app *fiber.App,
	ai *handlers.AIHandler,
	suggest *handlers.SuggestHandler,
	cv *handlers.CVHandler,
	auth *handlers.AuthHandler,
	health *handlers.HealthHandler,
	authMW fiber.Handler,
) {
	api := app.Group("/api")

	// Health and readiness endpoints for probes/monitoring
	api.Get("/health", health.Health)
	api.Get("/ready", health.Ready)

	a := api.Group("/auth")
	a.Post("/register", auth.Register)
	a.Post("/login", auth.Login)

	// Portfolio document: public read, admin write
	api.Get("/cv", cv.Get)
	api.Put("/cv", authMW, cv.Update)

	// AI gateway
	api.Post("/ai/analyze-cv", ai.AnalyzeCV)
	api.Post("/ai/rewrite-section", ai.RewriteSection)
	api.Post("/generate-cover-letter", ai.GenerateCoverLetter)
	// Authenticated: the handler runs shield and auth itself so the order
	// (preflight, shield, auth, validate, dispatch) stays in one place.
	api.Post("/ai/suggest-improvements", suggest.SuggestImprovements)
}
