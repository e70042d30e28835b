package gateway

import (
	"context"
	"errors"
	"strings"

	"go.uber.org/zap"

	"github.com/cvfolio/backend/pkg/llm"
)

// Temperatures per operation kind. JSON-shaped outputs run colder so the
// model sticks to the requested structure.
const (
	structuredTemperature = 0.3
	freeTextTemperature   = 0.7
)

// Service is the AI gateway: it validates a request, builds the prompt,
// dispatches exactly one call to the selected provider and normalizes the
// response. It holds no per-request state and is safe for concurrent use.
type Service struct {
	registry *llm.Registry
	logger   *zap.Logger
}

func NewService(registry *llm.Registry, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{registry: registry, logger: logger}
}

// resolve maps an unknown provider id to a ValidationError so it surfaces as
// a caller mistake, not a server failure.
func (s *Service) resolve(provider string) (llm.Completer, string, error) {
	client, name, err := s.registry.Resolve(provider)
	if err != nil {
		var unknown *llm.UnknownProviderError
		if errors.As(err, &unknown) {
			return nil, name, &ValidationError{Field: "provider", Reason: "must be \"openai\" or \"google\""}
		}
		return nil, name, err
	}
	return client, name, nil
}

func (s *Service) complete(ctx context.Context, operation, provider, prompt string, temperature float32) (string, error) {
	client, name, err := s.resolve(provider)
	if err != nil {
		return "", err
	}
	text, err := client.CompleteText(ctx, prompt, llm.Params{Temperature: temperature})
	if err != nil {
		s.logger.Warn("provider call failed",
			zap.String("operation", operation),
			zap.String("provider", name),
			zap.Error(err),
		)
		return "", err
	}
	s.logger.Debug("provider call completed",
		zap.String("operation", operation),
		zap.String("provider", name),
		zap.Int("chars", len(text)),
	)
	return text, nil
}

// AnalyzeCV returns the model's analysis as raw JSON text. The text is passed
// through verbatim; parsing and trusting it is the caller's concern. When the
// provider returns no content the literal "{}" is substituted so the response
// body is still well-formed JSON.
func (s *Service) AnalyzeCV(ctx context.Context, req AnalyzeRequest) (string, error) {
	if err := req.Validate(); err != nil {
		return "", err
	}
	raw, err := s.complete(ctx, "analyze-cv", req.Provider, buildAnalysisPrompt(req.CVData), structuredTemperature)
	if err != nil {
		return "", err
	}
	if strings.TrimSpace(raw) == "" {
		return "{}", nil
	}
	return raw, nil
}

// RewriteSection returns the rewritten section text, trimmed.
func (s *Service) RewriteSection(ctx context.Context, req RewriteRequest) (string, error) {
	if err := req.Validate(); err != nil {
		return "", err
	}
	text, err := s.complete(ctx, "rewrite-section", req.Provider, buildRewritePrompt(req), freeTextTemperature)
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(text), nil
}

// GenerateCoverLetter returns the drafted letter, trimmed.
func (s *Service) GenerateCoverLetter(ctx context.Context, req CoverLetterRequest) (string, error) {
	if err := req.Validate(); err != nil {
		return "", err
	}
	text, err := s.complete(ctx, "generate-cover-letter", req.Provider, buildCoverLetterPrompt(req), freeTextTemperature)
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(text), nil
}

// SuggestImprovements returns improvement suggestions checked against the
// fixed schema. Non-conforming model output is an error, never passed on.
func (s *Service) SuggestImprovements(ctx context.Context, req SuggestRequest) (*SuggestionList, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}
	raw, err := s.complete(ctx, "suggest-improvements", req.Provider, buildSuggestionsPrompt(req), structuredTemperature)
	if err != nil {
		return nil, err
	}
	out, err := decodeSuggestions(raw)
	if err != nil {
		s.logger.Warn("suggestions failed schema validation", zap.Error(err))
		return nil, err
	}
	return out, nil
}
