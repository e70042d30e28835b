package shield

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func check(t *testing.T, p *Policy, userAgent string) error {
	t.Helper()
	var checkErr error
	app := fiber.New()
	app.Get("/", func(c *fiber.Ctx) error {
		checkErr = p.Check(c)
		return c.SendStatus(http.StatusOK)
	})
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if userAgent != "" {
		req.Header.Set(fiber.HeaderUserAgent, userAgent)
	}
	_, err := app.Test(req, -1)
	require.NoError(t, err)
	return checkErr
}

func TestOffModePassesEverything(t *testing.T) {
	p := NewPolicy(ModeOff, nil)

	assert.NoError(t, check(t, p, "curl/8.5.0"))
	assert.NoError(t, check(t, p, ""))
}

func TestEmptyModeDefaultsToOff(t *testing.T) {
	p := NewPolicy("", nil)

	assert.NoError(t, check(t, p, "curl/8.5.0"))
}

func TestLiveModeBlocksScriptedClients(t *testing.T) {
	p := NewPolicy(ModeLive, nil)

	for _, ua := range []string{
		"curl/8.5.0",
		"Wget/1.21",
		"python-requests/2.31",
		"Go-http-client/2.0",
		"Scrapy/2.11 (+https://scrapy.org)",
	} {
		assert.ErrorIs(t, check(t, p, ua), ErrBlocked, "user agent %q", ua)
	}
}

func TestLiveModeBlocksMissingUserAgent(t *testing.T) {
	p := NewPolicy(ModeLive, nil)

	assert.ErrorIs(t, check(t, p, ""), ErrBlocked)
}

func TestLiveModeAllowsBrowsers(t *testing.T) {
	p := NewPolicy(ModeLive, nil)

	browser := "Mozilla/5.0 (X11; Linux x86_64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/128.0 Safari/537.36"
	assert.NoError(t, check(t, p, browser))
}
