package prompt

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/bryanwahyu/applicant-intake/internal/domain/applications"
)

// GetQualifySystemPrompt provides strict directions and schema for JSON output.
func GetQualifySystemPrompt() string {
	return `You are an HR qualification system for a physical therapy practice. Based on the application and research, determine if the candidate is QUALIFIED, UNQUALIFIED, or needs FOLLOW_UP. Provide a clear, concise reason for your decision. You must produce one valid JSON object only (no markdown, no commentary).`
}

// GetQualifyUserPrompt builds the classification message around the core
// application fields plus the free-text assessment.
func GetQualifyUserPrompt(app *applications.Application, assessment string) string {
	return fmt.Sprintf(`Based on this analysis, qualify the candidate:

Applicant: %s
Education: %s
Pay Range: %s
Certifications: %s

Analysis:
%s

Respond in JSON format with:
{
  "category": "QUALIFIED" | "UNQUALIFIED" | "FOLLOW_UP",
  "reason": "Brief explanation of your decision"
}`,
		app.Name,
		app.EducationLevel,
		app.PayRange,
		orNone(app.Certificates, "None"),
		assessment,
	)
}

// Qualification mirrors the schema used by the qualify system prompt.
type Qualification struct {
	Category string `json:"category"`
	Reason   string `json:"reason"`
}

// ParseQualification decodes the model response into a Qualification and
// rejects anything that does not carry a category.
func ParseQualification(raw string) (Qualification, error) {
	var q Qualification
	if err := json.Unmarshal([]byte(raw), &q); err != nil {
		return Qualification{}, fmt.Errorf("failed to parse qualification response: %w", err)
	}
	if strings.TrimSpace(q.Category) == "" {
		return Qualification{}, fmt.Errorf("qualification response missing category")
	}
	return q, nil
}
