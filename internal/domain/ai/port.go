package ai

import (
	"context"

	"github.com/bryanwahyu/applicant-intake/internal/domain/applications"
)

// Qualification is the machine-parseable outcome of the classification call.
type Qualification struct {
	Category string `json:"category"`
	Reason   string `json:"reason"`
}

// Client is the outbound port to the language-model provider. Each method is
// one chat-completion call; the pipeline decides which failures are fatal.
type Client interface {
	// ResearchProfile asks for a qualitative assessment of a profile URL.
	ResearchProfile(ctx context.Context, profileURL string) (string, error)
	// AssessApplicant produces the free-text professional assessment.
	AssessApplicant(ctx context.Context, app *applications.Application, profileResearch string) (string, error)
	// QualifyApplicant classifies into QUALIFIED / UNQUALIFIED / FOLLOW_UP.
	// A response that cannot be parsed into a Qualification is an error.
	QualifyApplicant(ctx context.Context, app *applications.Application, assessment string) (Qualification, error)
}
