package gateway

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/cvfolio/backend/pkg/llm"
)

// fakeCompleter records calls and replays a canned reply.
type fakeCompleter struct {
	calls      int
	reply      string
	err        error
	lastPrompt string
	lastParams llm.Params
}

func (f *fakeCompleter) CompleteText(_ context.Context, prompt string, params llm.Params) (string, error) {
	f.calls++
	f.lastPrompt = prompt
	f.lastParams = params
	return f.reply, f.err
}

func newTestService(fake *fakeCompleter) *Service {
	registry := llm.NewRegistry()
	registry.Register("openai", fake)
	registry.Register("google", fake)
	return NewService(registry, nil)
}

func TestAnalyzeCVRequiresCVData(t *testing.T) {
	fake := &fakeCompleter{reply: `{"overallScore": 80}`}
	svc := newTestService(fake)

	_, err := svc.AnalyzeCV(context.Background(), AnalyzeRequest{})

	var validation *ValidationError
	require.ErrorAs(t, err, &validation)
	require.Equal(t, "cvData", validation.Field)
	require.Zero(t, fake.calls, "validation must reject before any provider call")
}

func TestAnalyzeCVNullCVDataIsMissing(t *testing.T) {
	fake := &fakeCompleter{}
	svc := newTestService(fake)

	_, err := svc.AnalyzeCV(context.Background(), AnalyzeRequest{CVData: []byte("null")})

	var validation *ValidationError
	require.ErrorAs(t, err, &validation)
	require.Zero(t, fake.calls)
}

func TestAnalyzeCVPassesTextThroughVerbatim(t *testing.T) {
	fake := &fakeCompleter{reply: "{\"overallScore\": 72,\n\"strengths\": []}"}
	svc := newTestService(fake)

	out, err := svc.AnalyzeCV(context.Background(), AnalyzeRequest{CVData: []byte(`{"summary":"x"}`)})
	require.NoError(t, err)
	require.Equal(t, fake.reply, out, "analysis text is not re-shaped")
	require.Equal(t, 1, fake.calls)
}

func TestAnalyzeCVDefaultsToEmptyObject(t *testing.T) {
	fake := &fakeCompleter{reply: "  \n "}
	svc := newTestService(fake)

	out, err := svc.AnalyzeCV(context.Background(), AnalyzeRequest{CVData: []byte(`{}`)})
	require.NoError(t, err)
	require.Equal(t, "{}", out)
}

func TestAnalyzeCVEmbedsDocumentInPrompt(t *testing.T) {
	fake := &fakeCompleter{reply: "{}"}
	svc := newTestService(fake)

	_, err := svc.AnalyzeCV(context.Background(), AnalyzeRequest{
		CVData: []byte(`{"contact":{"name":"Ada Lovelace"},"summary":"First programmer"}`),
	})
	require.NoError(t, err)
	require.Contains(t, fake.lastPrompt, "Ada Lovelace")
	require.Contains(t, fake.lastPrompt, "First programmer")
	require.Contains(t, fake.lastPrompt, `"overallScore"`, "prompt carries the fixed schema")
}

func TestRewriteSectionValidatesFieldOrder(t *testing.T) {
	fake := &fakeCompleter{}
	svc := newTestService(fake)

	_, err := svc.RewriteSection(context.Background(), RewriteRequest{Content: "text"})
	var validation *ValidationError
	require.ErrorAs(t, err, &validation)
	require.Equal(t, "section", validation.Field)

	_, err = svc.RewriteSection(context.Background(), RewriteRequest{Section: "summary"})
	require.ErrorAs(t, err, &validation)
	require.Equal(t, "content", validation.Field)

	require.Zero(t, fake.calls)
}

func TestRewriteSectionTrimsReply(t *testing.T) {
	fake := &fakeCompleter{reply: "\n  Better summary.  \n"}
	svc := newTestService(fake)

	out, err := svc.RewriteSection(context.Background(), RewriteRequest{Section: "summary", Content: "Old summary."})
	require.NoError(t, err)
	require.Equal(t, "Better summary.", out)
}

func TestRewriteSectionIsDeterministic(t *testing.T) {
	fake := &fakeCompleter{reply: "HELLO"}
	svc := newTestService(fake)
	req := RewriteRequest{Section: "summary", Content: "Old.", Tone: "formal", Length: "short"}

	first, err := svc.RewriteSection(context.Background(), req)
	require.NoError(t, err)
	second, err := svc.RewriteSection(context.Background(), req)
	require.NoError(t, err)

	require.Equal(t, first, second, "the gateway adds no per-call randomness")
	require.Equal(t, fake.lastParams, llm.Params{Temperature: freeTextTemperature})
}

func TestCoverLetterRequiresBothFields(t *testing.T) {
	fake := &fakeCompleter{}
	svc := newTestService(fake)

	_, err := svc.GenerateCoverLetter(context.Background(), CoverLetterRequest{JobDescription: "Go engineer"})
	var validation *ValidationError
	require.ErrorAs(t, err, &validation)
	require.Equal(t, "cvData", validation.Field)

	_, err = svc.GenerateCoverLetter(context.Background(), CoverLetterRequest{CVData: []byte(`{}`)})
	require.ErrorAs(t, err, &validation)
	require.Equal(t, "jobDescription", validation.Field)

	require.Zero(t, fake.calls)
}

func TestUnknownProviderIsAValidationError(t *testing.T) {
	fake := &fakeCompleter{}
	svc := newTestService(fake)

	_, err := svc.RewriteSection(context.Background(), RewriteRequest{
		Section: "summary", Content: "x", Provider: "anthropic",
	})
	var validation *ValidationError
	require.ErrorAs(t, err, &validation)
	require.Equal(t, "provider", validation.Field)
	require.Zero(t, fake.calls)
}

func TestMissingAPIKeyMakesNoCall(t *testing.T) {
	registry := llm.NewRegistry()
	registry.Register("openai", &keylessCompleter{})
	svc := NewService(registry, nil)

	_, err := svc.AnalyzeCV(context.Background(), AnalyzeRequest{CVData: []byte(`{}`)})
	require.ErrorIs(t, err, llm.ErrMissingAPIKey)
}

type keylessCompleter struct{}

func (keylessCompleter) CompleteText(context.Context, string, llm.Params) (string, error) {
	return "", llm.ErrMissingAPIKey
}

func TestSuggestImprovementsAcceptsFencedJSON(t *testing.T) {
	fake := &fakeCompleter{reply: "```json\n{\"suggestions\":[{\"type\":\"improve\",\"section\":\"summary\",\"title\":\"Sharpen the opener\",\"description\":\"Lead with impact.\",\"priority\":\"high\",\"estimatedImpact\":\"Stronger first impression\"}]}\n```"}
	svc := newTestService(fake)

	out, err := svc.SuggestImprovements(context.Background(), SuggestRequest{CVData: []byte(`{}`)})
	require.NoError(t, err)
	require.Len(t, out.Suggestions, 1)
	require.Equal(t, "improve", out.Suggestions[0].Type)
}

func TestSuggestImprovementsRejectsBadSchema(t *testing.T) {
	cases := map[string]string{
		"not json":      "the model rambled instead",
		"bad type":      `{"suggestions":[{"type":"delete","section":"s","title":"t","description":"d","priority":"high","estimatedImpact":"i"}]}`,
		"bad priority":  `{"suggestions":[{"type":"add","section":"s","title":"t","description":"d","priority":"urgent","estimatedImpact":"i"}]}`,
		"empty field":   `{"suggestions":[{"type":"add","section":"","title":"t","description":"d","priority":"low","estimatedImpact":"i"}]}`,
		"missing array": `{"advice":[]}`,
	}
	for name, reply := range cases {
		t.Run(name, func(t *testing.T) {
			fake := &fakeCompleter{reply: reply}
			svc := newTestService(fake)

			_, err := svc.SuggestImprovements(context.Background(), SuggestRequest{CVData: []byte(`{}`)})
			var schemaErr *SchemaValidationError
			require.ErrorAs(t, err, &schemaErr)
		})
	}
}

func TestSuggestImprovementsTargetRoleInPrompt(t *testing.T) {
	fake := &fakeCompleter{reply: `{"suggestions":[]}`}
	svc := newTestService(fake)

	_, err := svc.SuggestImprovements(context.Background(), SuggestRequest{
		CVData:     []byte(`{}`),
		TargetRole: "Staff Engineer",
	})
	require.NoError(t, err)
	require.Contains(t, fake.lastPrompt, "Staff Engineer")
}
