package gateway

import (
	"encoding/json"
	"fmt"
	"strings"
)

// Suggestion is one schema-validated improvement proposal.
type Suggestion struct {
	Type            string `json:"type"`
	Section         string `json:"section"`
	Title           string `json:"title"`
	Description     string `json:"description"`
	Priority        string `json:"priority"`
	EstimatedImpact string `json:"estimatedImpact"`
	Example         string `json:"example,omitempty"`
}

// SuggestionList is the response body of the suggestions operation.
type SuggestionList struct {
	Suggestions []Suggestion `json:"suggestions"`
}

var (
	suggestionTypes      = map[string]bool{"add": true, "improve": true, "remove": true, "reorder": true}
	suggestionPriorities = map[string]bool{"high": true, "medium": true, "low": true}
)

// decodeSuggestions parses model output into a SuggestionList and checks it
// against the fixed schema. Models routinely fence their JSON in markdown, so
// the outermost object is carved out of the raw text first.
func decodeSuggestions(raw string) (*SuggestionList, error) {
	payload := extractJSONObject(raw)
	if payload == "" {
		return nil, &SchemaValidationError{Reason: "no JSON object in model output"}
	}
	var out SuggestionList
	if err := json.Unmarshal([]byte(payload), &out); err != nil {
		return nil, &SchemaValidationError{Reason: err.Error()}
	}
	if out.Suggestions == nil {
		return nil, &SchemaValidationError{Reason: "missing suggestions array"}
	}
	for i, s := range out.Suggestions {
		if !suggestionTypes[s.Type] {
			return nil, &SchemaValidationError{Reason: fmt.Sprintf("suggestions[%d].type %q is not one of add/improve/remove/reorder", i, s.Type)}
		}
		if !suggestionPriorities[s.Priority] {
			return nil, &SchemaValidationError{Reason: fmt.Sprintf("suggestions[%d].priority %q is not one of high/medium/low", i, s.Priority)}
		}
		for name, v := range map[string]string{
			"section":         s.Section,
			"title":           s.Title,
			"description":     s.Description,
			"estimatedImpact": s.EstimatedImpact,
		} {
			if strings.TrimSpace(v) == "" {
				return nil, &SchemaValidationError{Reason: fmt.Sprintf("suggestions[%d].%s is empty", i, name)}
			}
		}
	}
	return &out, nil
}

// extractJSONObject returns the substring from the first '{' to the last '}'
// of raw, or "" when no object is present.
func extractJSONObject(raw string) string {
	i := strings.Index(raw, "{")
	j := strings.LastIndex(raw, "}")
	if i < 0 || j <= i {
		return ""
	}
	return raw[i : j+1]
}
