package llm

import (
	"context"
	"errors"
	"fmt"
)

// DefaultProvider is used when a request does not name a provider.
const DefaultProvider = "openai"

// Params are per-call model parameters passed through to the provider.
type Params struct {
	Model       string
	Temperature float32
	MaxTokens   int
}

// Completer is a minimal abstraction for text-completion LLMs used by the
// gateway. It intentionally hides concrete providers to preserve dependency
// direction.
type Completer interface {
	CompleteText(ctx context.Context, prompt string, params Params) (string, error)
}

// ErrMissingAPIKey is returned by a client whose credential is not configured.
// The check runs before any outbound call is made.
var ErrMissingAPIKey = errors.New("api key is not configured for the selected provider")

// UpstreamError reports a non-2xx or malformed provider response.
type UpstreamError struct {
	Provider string
	Status   int
	Err      error
}

func (e *UpstreamError) Error() string {
	if e.Status > 0 {
		return fmt.Sprintf("%s upstream error (http %d): %v", e.Provider, e.Status, e.Err)
	}
	return fmt.Sprintf("%s upstream error: %v", e.Provider, e.Err)
}

func (e *UpstreamError) Unwrap() error { return e.Err }

// UnknownProviderError is returned by the registry for provider ids it has no
// client for.
type UnknownProviderError struct {
	Provider string
}

func (e *UnknownProviderError) Error() string {
	return fmt.Sprintf("unknown provider %q", e.Provider)
}

// Registry resolves provider ids to concrete clients. It is populated once at
// process start and read-only afterwards.
type Registry struct {
	providers map[string]Completer
}

func NewRegistry() *Registry {
	return &Registry{providers: make(map[string]Completer)}
}

// Register binds a provider id to a client. Later registrations with the same
// id replace earlier ones.
func (r *Registry) Register(name string, c Completer) {
	r.providers[name] = c
}

// Resolve returns the client for the given provider id, falling back to
// DefaultProvider when the id is empty. A misconfigured client for a known id
// still resolves; its credential check happens on the call itself.
func (r *Registry) Resolve(name string) (Completer, string, error) {
	if name == "" {
		name = DefaultProvider
	}
	c, ok := r.providers[name]
	if !ok {
		return nil, name, &UnknownProviderError{Provider: name}
	}
	return c, name, nil
}
