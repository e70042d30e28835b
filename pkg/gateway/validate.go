package gateway

import (
	"bytes"
	"encoding/json"
)

// requiredField pairs a field name with its presence in the parsed body.
// Order matters: the first absent field is the one named in the error.
type requiredField struct {
	name    string
	present bool
}

func firstMissing(fields []requiredField) error {
	for _, f := range fields {
		if !f.present {
			return missingField(f.name)
		}
	}
	return nil
}

// hasJSON reports whether a raw message carries an actual value. The CV
// document is opaque to the gateway; presence is the only check made here.
func hasJSON(raw json.RawMessage) bool {
	trimmed := bytes.TrimSpace(raw)
	return len(trimmed) > 0 && !bytes.Equal(trimmed, []byte("null"))
}

// AnalyzeRequest asks for a scored analysis of a full CV document.
type AnalyzeRequest struct {
	CVData   json.RawMessage `json:"cvData"`
	Provider string          `json:"provider"`
}

func (r *AnalyzeRequest) Validate() error {
	return firstMissing([]requiredField{
		{"cvData", hasJSON(r.CVData)},
	})
}

// RewriteRequest asks for a rewritten version of one CV section.
type RewriteRequest struct {
	Section      string `json:"section"`
	Content      string `json:"content"`
	Instructions string `json:"instructions"`
	Provider     string `json:"provider"`
	Tone         string `json:"tone"`
	Length       string `json:"length"`
}

func (r *RewriteRequest) Validate() error {
	return firstMissing([]requiredField{
		{"section", r.Section != ""},
		{"content", r.Content != ""},
	})
}

// CoverLetterRequest asks for a cover letter drafted from the CV and a job
// description.
type CoverLetterRequest struct {
	CVData         json.RawMessage `json:"cvData"`
	JobDescription string          `json:"jobDescription"`
	Company        string          `json:"company"`
	Position       string          `json:"position"`
	Provider       string          `json:"provider"`
}

func (r *CoverLetterRequest) Validate() error {
	return firstMissing([]requiredField{
		{"cvData", hasJSON(r.CVData)},
		{"jobDescription", r.JobDescription != ""},
	})
}

// SuggestRequest asks for schema-validated improvement suggestions.
type SuggestRequest struct {
	CVData     json.RawMessage `json:"cvData"`
	TargetRole string          `json:"targetRole"`
	Provider   string          `json:"provider"`
}

func (r *SuggestRequest) Validate() error {
	return firstMissing([]requiredField{
		{"cvData", hasJSON(r.CVData)},
	})
}
