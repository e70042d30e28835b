package gateway

import (
	"fmt"
	"strings"
)

// The analysis prompt instructs the model to answer with nothing but a JSON
// object of this exact shape. The raw text is passed back to the caller
// unparsed, so the instruction is the only contract we have.
const analysisSchema = `{
  "overallScore": <number 0-100>,
  "strengths": [<string>],
  "improvements": [<string>],
  "missingElements": [<string>],
  "industryAlignment": { "score": <number 0-100>, "feedback": <string> },
  "keywordOptimization": { "score": <number 0-100>, "suggestions": [<string>] },
  "sections": {
    "summary": { "score": <number 0-100>, "feedback": <string> },
    "experience": { "score": <number 0-100>, "feedback": <string> },
    "skills": { "score": <number 0-100>, "feedback": <string> },
    "projects": { "score": <number 0-100>, "feedback": <string> },
    "education": { "score": <number 0-100>, "feedback": <string> }
  }
}`

const suggestionsSchema = `{
  "suggestions": [
    {
      "type": "add" | "improve" | "remove" | "reorder",
      "section": <string>,
      "title": <string>,
      "description": <string>,
      "priority": "high" | "medium" | "low",
      "estimatedImpact": <string>,
      "example": <string, optional>
    }
  ]
}`

func buildAnalysisPrompt(cvData []byte) string {
	return fmt.Sprintf(
		"You are an expert CV reviewer and career coach.\n"+
			"Analyze the CV below and score it for clarity, impact and completeness.\n\n"+
			"CV data (JSON) between markers:\n<<<\n%s\n>>>\n\n"+
			"Return ONLY a JSON object matching this exact structure, with no surrounding text or markdown:\n%s",
		cvData, analysisSchema,
	)
}

func buildRewritePrompt(r RewriteRequest) string {
	var b strings.Builder
	fmt.Fprintf(&b, "You are an expert CV writer. Rewrite the %s section of a CV to be more compelling.\n\n", r.Section)
	fmt.Fprintf(&b, "Current content between markers:\n<<<\n%s\n>>>\n\n", r.Content)
	if r.Tone != "" {
		fmt.Fprintf(&b, "Use a %s tone.\n", r.Tone)
	}
	if r.Length != "" {
		fmt.Fprintf(&b, "Target length: %s.\n", r.Length)
	}
	if r.Instructions != "" {
		fmt.Fprintf(&b, "Additional instructions: %s\n", r.Instructions)
	}
	b.WriteString("\nReturn only the rewritten text, without commentary or markdown.")
	return b.String()
}

func buildCoverLetterPrompt(r CoverLetterRequest) string {
	var b strings.Builder
	b.WriteString("You are an expert cover letter writer. Draft a cover letter for the candidate described by the CV below.\n\n")
	fmt.Fprintf(&b, "CV data (JSON) between markers:\n<<<\n%s\n>>>\n\n", r.CVData)
	fmt.Fprintf(&b, "Job description:\n%s\n\n", r.JobDescription)
	if r.Company != "" {
		fmt.Fprintf(&b, "Company: %s\n", r.Company)
	}
	if r.Position != "" {
		fmt.Fprintf(&b, "Position: %s\n", r.Position)
	}
	b.WriteString("\nWrite three to four paragraphs, professional but personal. Return only the letter body, no salutation placeholders and no markdown.")
	return b.String()
}

func buildSuggestionsPrompt(r SuggestRequest) string {
	var b strings.Builder
	b.WriteString("You are an expert CV reviewer. Propose concrete improvements for the CV below.\n\n")
	fmt.Fprintf(&b, "CV data (JSON) between markers:\n<<<\n%s\n>>>\n\n", r.CVData)
	if r.TargetRole != "" {
		fmt.Fprintf(&b, "The candidate is targeting this role: %s\n\n", r.TargetRole)
	}
	fmt.Fprintf(&b,
		"Return ONLY a JSON object matching this exact structure, with no surrounding text or markdown:\n%s",
		suggestionsSchema,
	)
	return b.String()
}
