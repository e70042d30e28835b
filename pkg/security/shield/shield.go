package shield

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// ErrBlocked is returned for requests the shield policy denies.
var ErrBlocked = errors.New("request blocked by abuse shield")

// Shield is the abuse-mitigation decision consulted before a protected
// request is processed. Implementations are injected so tests can substitute
// doubles.
type Shield interface {
	Check(c *fiber.Ctx) error
}

const (
	ModeOff  = "off"
	ModeLive = "live"
)

// User-agent markers of common scripted clients. Deliberately coarse: the
// shield exists to keep casual abuse away from paid provider calls, not to
// be a bot detector.
var botMarkers = []string{"curl/", "wget/", "python-requests", "go-http-client", "scrapy"}

// Policy is a rule-based Shield. In "off" mode every request passes; in
// "live" mode requests from scripted clients or without a user agent are
// denied.
type Policy struct {
	mode   string
	logger *zap.Logger
}

func NewPolicy(mode string, logger *zap.Logger) *Policy {
	if logger == nil {
		logger = zap.NewNop()
	}
	if mode == "" {
		mode = ModeOff
	}
	return &Policy{mode: mode, logger: logger}
}

func (p *Policy) Check(c *fiber.Ctx) error {
	if p.mode != ModeLive {
		return nil
	}
	ua := strings.ToLower(c.Get(fiber.HeaderUserAgent))
	if ua == "" {
		p.logger.Info("shield denied request", zap.String("reason", "empty user agent"), zap.String("path", c.Path()))
		return ErrBlocked
	}
	for _, marker := range botMarkers {
		if strings.Contains(ua, marker) {
			p.logger.Info("shield denied request", zap.String("reason", "scripted client"), zap.String("userAgent", ua), zap.String("path", c.Path()))
			return ErrBlocked
		}
	}
	return nil
}
