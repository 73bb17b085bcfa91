package prompt

import (
	"fmt"
	"strings"

	"github.com/bryanwahyu/applicant-intake/internal/domain/applications"
)

// GetAssessSystemPrompt frames the model as an expert HR analyst for the practice.
func GetAssessSystemPrompt() string {
	return "You are an expert HR analyst for a physical therapy practice. Analyze job applications and provide detailed, professional assessments of candidates. Consider education level, certifications, pay expectations, and overall fit for a physical therapy practice."
}

// GetAssessUserPrompt lays out the full application plus any profile research.
func GetAssessUserPrompt(app *applications.Application, profileResearch string) string {
	var b strings.Builder
	fmt.Fprintf(&b, `Analyze this job application:

Name: %s
Email: %s
Phone: %s
Address: %s
Education Level: %s
Desired Pay Range: %s
Certifications: %s
LinkedIn: %s
Additional Notes: %s
`,
		app.Name,
		app.Email,
		app.Phone,
		orNone(app.Address, "Not provided"),
		app.EducationLevel,
		app.PayRange,
		orNone(app.Certificates, "None provided"),
		orNone(app.LinkedIn, "Not provided"),
		orNone(app.AdditionalNotes, "None"),
	)

	if profileResearch != "" {
		fmt.Fprintf(&b, "\nLinkedIn Analysis: %s\n", profileResearch)
	}

	b.WriteString(`
Provide a comprehensive analysis covering:
1. Overall candidate profile and background
2. Qualifications and certifications assessment
3. Education level appropriateness for physical therapy roles
4. Salary expectations evaluation
5. Potential strengths and areas of concern
6. Recommendations for next steps

Format your response as a professional HR assessment report.`)

	return b.String()
}

func orNone(s, fallback string) string {
	if strings.TrimSpace(s) == "" {
		return fallback
	}
	return s
}
