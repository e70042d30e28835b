package gateway

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRewritePromptCarriesAllOptions(t *testing.T) {
	prompt := buildRewritePrompt(RewriteRequest{
		Section:      "experience",
		Content:      "Did backend things.",
		Instructions: "Quantify the outcomes",
		Tone:         "confident",
		Length:       "two sentences",
	})

	require.Contains(t, prompt, "experience")
	require.Contains(t, prompt, "Did backend things.")
	require.Contains(t, prompt, "Quantify the outcomes")
	require.Contains(t, prompt, "confident")
	require.Contains(t, prompt, "two sentences")
}

func TestRewritePromptOmitsUnsetOptions(t *testing.T) {
	prompt := buildRewritePrompt(RewriteRequest{Section: "summary", Content: "x"})
	require.NotContains(t, prompt, "tone")
	require.NotContains(t, prompt, "Target length")
	require.NotContains(t, prompt, "Additional instructions")
}

func TestCoverLetterPromptCarriesContext(t *testing.T) {
	prompt := buildCoverLetterPrompt(CoverLetterRequest{
		CVData:         []byte(`{"summary":"Go developer"}`),
		JobDescription: "Build distributed systems",
		Company:        "Acme",
		Position:       "Senior Engineer",
	})

	require.Contains(t, prompt, "Go developer")
	require.Contains(t, prompt, "Build distributed systems")
	require.Contains(t, prompt, "Acme")
	require.Contains(t, prompt, "Senior Engineer")
}

func TestPromptsAreDeterministic(t *testing.T) {
	req := SuggestRequest{CVData: []byte(`{"summary":"x"}`), TargetRole: "SRE"}
	require.Equal(t, buildSuggestionsPrompt(req), buildSuggestionsPrompt(req))

	a := AnalyzeRequest{CVData: []byte(`{"summary":"x"}`)}
	require.Equal(t, buildAnalysisPrompt(a.CVData), buildAnalysisPrompt(a.CVData))
}
