package handlers

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"

	"github.com/cvfolio/backend/pkg/gateway"
	"github.com/cvfolio/backend/pkg/llm"
	"github.com/cvfolio/backend/pkg/security"
	"github.com/cvfolio/backend/pkg/security/cors"
	"github.com/cvfolio/backend/pkg/security/shield"
)

type fakeShield struct {
	calls int
	err   error
}

func (f *fakeShield) Check(_ *fiber.Ctx) error {
	f.calls++
	return f.err
}

type fakeAuthenticator struct {
	calls int
	err   error
}

func (f *fakeAuthenticator) Authenticate(_ *fiber.Ctx) (string, error) {
	f.calls++
	if f.err != nil {
		return "", f.err
	}
	return "user-1", nil
}

const validSuggestions = `{"suggestions":[{"type":"improve","section":"summary","title":"Tighten the opener","description":"Lead with the strongest result.","priority":"high","estimatedImpact":"Faster recruiter buy-in"}]}`

func newSuggestTestApp(fake llm.Completer, sh shield.Shield, auth security.Authenticator, origins []string) *fiber.App {
	registry := llm.NewRegistry()
	registry.Register("openai", fake)
	app := fiber.New()
	app.Use(cors.New(origins))
	h := NewSuggestHandler(gateway.NewService(registry, nil), sh, auth)
	app.Post("/api/ai/suggest-improvements", h.SuggestImprovements)
	return app
}

func TestSuggestImprovementsRejectsAnonymousCallersBeforeDispatch(t *testing.T) {
	fake := &countingCompleter{reply: validSuggestions}
	sh := &fakeShield{}
	auth := &fakeAuthenticator{err: fmt.Errorf("no token: %w", security.ErrUnauthenticated)}
	app := newSuggestTestApp(fake, sh, auth, []string{"*"})

	resp, body := postJSON(t, app, "/api/ai/suggest-improvements", `{"cvData":{"summary":"x"}}`)

	require.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	require.Contains(t, body, `"error"`)
	require.Zero(t, fake.calls, "anonymous callers must not cost a provider call")
}

func TestSuggestImprovementsShieldRunsBeforeAuth(t *testing.T) {
	fake := &countingCompleter{reply: validSuggestions}
	sh := &fakeShield{err: fmt.Errorf("bot marker: %w", shield.ErrBlocked)}
	auth := &fakeAuthenticator{}
	app := newSuggestTestApp(fake, sh, auth, []string{"*"})

	resp, body := postJSON(t, app, "/api/ai/suggest-improvements", `{"cvData":{"summary":"x"}}`)

	require.Equal(t, http.StatusForbidden, resp.StatusCode)
	require.Contains(t, body, `"error"`)
	require.Equal(t, 1, sh.calls)
	require.Zero(t, auth.calls, "a blocked request never reaches authentication")
	require.Zero(t, fake.calls)
}

func TestSuggestImprovementsValidatesAfterAuth(t *testing.T) {
	fake := &countingCompleter{reply: validSuggestions}
	auth := &fakeAuthenticator{}
	app := newSuggestTestApp(fake, &fakeShield{}, auth, []string{"*"})

	resp, body := postJSON(t, app, "/api/ai/suggest-improvements", `{"targetRole":"staff engineer"}`)

	require.Equal(t, http.StatusBadRequest, resp.StatusCode)
	require.Contains(t, body, "cvData")
	require.Equal(t, 1, auth.calls)
	require.Zero(t, fake.calls)
}

func TestSuggestImprovementsReturnsValidatedList(t *testing.T) {
	fake := &countingCompleter{reply: validSuggestions}
	app := newSuggestTestApp(fake, &fakeShield{}, &fakeAuthenticator{}, []string{"*"})

	resp, body := postJSON(t, app, "/api/ai/suggest-improvements", `{"cvData":{"summary":"x"},"targetRole":"staff engineer"}`)

	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.JSONEq(t, validSuggestions, body)
	require.Equal(t, 1, fake.calls)
}

func TestSuggestImprovementsRejectsMalformedModelOutput(t *testing.T) {
	fake := &countingCompleter{reply: `{"suggestions":[{"type":"delete","section":"summary","title":"t","description":"d","priority":"high","estimatedImpact":"e"}]}`}
	app := newSuggestTestApp(fake, &fakeShield{}, &fakeAuthenticator{}, []string{"*"})

	resp, body := postJSON(t, app, "/api/ai/suggest-improvements", `{"cvData":{"summary":"x"}}`)

	require.Equal(t, http.StatusInternalServerError, resp.StatusCode)
	require.Contains(t, body, `"error"`)
}

func TestSuggestImprovementsPreflightShortCircuits(t *testing.T) {
	fake := &countingCompleter{reply: validSuggestions}
	sh := &fakeShield{err: fmt.Errorf("bot marker: %w", shield.ErrBlocked)}
	auth := &fakeAuthenticator{}
	app := newSuggestTestApp(fake, sh, auth, []string{"http://localhost:3000"})

	req := httptest.NewRequest(http.MethodOptions, "/api/ai/suggest-improvements", nil)
	req.Header.Set(fiber.HeaderOrigin, "http://localhost:3000")
	req.Header.Set(fiber.HeaderAccessControlRequestMethod, http.MethodPost)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)

	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.Equal(t, "http://localhost:3000", resp.Header.Get(fiber.HeaderAccessControlAllowOrigin))
	require.NotEmpty(t, resp.Header.Get(fiber.HeaderAccessControlAllowMethods))
	require.Zero(t, sh.calls, "preflight terminates before the shield")
	require.Zero(t, auth.calls)
	require.Zero(t, fake.calls)
}
