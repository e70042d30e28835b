package gateway

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDecodeSuggestionsExampleIsOptional(t *testing.T) {
	out, err := decodeSuggestions(`{"suggestions":[
		{"type":"add","section":"projects","title":"Add a flagship project","description":"Show depth.","priority":"medium","estimatedImpact":"Better recruiter signal"},
		{"type":"reorder","section":"skills","title":"Lead with Go","description":"Match the target role.","priority":"low","estimatedImpact":"Faster scanning","example":"Go, Postgres, Kubernetes"}
	]}`)
	require.NoError(t, err)
	require.Len(t, out.Suggestions, 2)
	require.Empty(t, out.Suggestions[0].Example)
	require.Equal(t, "Go, Postgres, Kubernetes", out.Suggestions[1].Example)
}

func TestExtractJSONObject(t *testing.T) {
	require.Equal(t, `{"a":1}`, extractJSONObject("noise {\"a\":1} trailing"))
	require.Equal(t, "", extractJSONObject("no object here"))
	require.Equal(t, "", extractJSONObject("} reversed {"))
}
