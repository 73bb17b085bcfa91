package analysis

import (
	"context"
	"fmt"
	"log"

	"github.com/google/uuid"

	"github.com/bryanwahyu/applicant-intake/internal/application"
	"github.com/bryanwahyu/applicant-intake/internal/domain/ai"
	"github.com/bryanwahyu/applicant-intake/internal/domain/analyses"
	"github.com/bryanwahyu/applicant-intake/internal/domain/applications"
)

// FallbackReason is stored when the classification call fails or returns
// something outside the taxonomy.
const FallbackReason = "Unable to automatically qualify candidate - manual review needed"

// Service runs the qualification pipeline: optional profile research, a
// free-text assessment, then a structured classification. Exactly one
// Analysis row is written per successful run; re-runs append.
type Service struct {
	Apps   applications.Repository
	Repo   analyses.Repository
	Client ai.Client
	Clock  application.Clock
}

func NewService(apps applications.Repository, repo analyses.Repository, client ai.Client, clock application.Clock) *Service {
	return &Service{Apps: apps, Repo: repo, Client: client, Clock: clock}
}

// Analyze loads the application, runs the three provider calls and persists
// the outcome. An assessment failure aborts before anything is written.
func (s *Service) Analyze(ctx context.Context, id applications.ApplicationID) (*analyses.Analysis, error) {
	app, err := s.Apps.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	// Step A: research, only when a profile URL was supplied. Failure is
	// recovered locally; the pipeline continues with a null value.
	var linkedinAnalysis string
	if app.LinkedIn != "" {
		linkedinAnalysis, err = s.Client.ResearchProfile(ctx, app.LinkedIn)
		if err != nil {
			log.Printf("profile research failed for application=%s: %v", app.ID, err)
			linkedinAnalysis = ""
		}
	}

	// Step B: free-text assessment. This failure is fatal; no partial row.
	assessment, err := s.Client.AssessApplicant(ctx, app, linkedinAnalysis)
	if err != nil {
		return nil, fmt.Errorf("assessing applicant: %w", err)
	}

	// Step C: classification. Any failure degrades to FOLLOW_UP so the
	// assessment already paid for is not discarded.
	q, err := s.Client.QualifyApplicant(ctx, app, assessment)
	if err != nil || !analyses.ValidCategory(q.Category) {
		if err != nil {
			log.Printf("qualification failed for application=%s: %v", app.ID, err)
		}
		q = ai.Qualification{
			Category: string(analyses.CategoryFollowUp),
			Reason:   FallbackReason,
		}
	}

	a := &analyses.Analysis{
		ID:                    analyses.AnalysisID(uuid.New().String()),
		ApplicationID:         string(app.ID),
		ResearchSummary:       assessment,
		LinkedInAnalysis:      linkedinAnalysis,
		QualificationCategory: analyses.QualificationCategory(q.Category),
		QualificationReason:   q.Reason,
		AnalyzedAt:            s.Clock.Now(),
	}
	if err := s.Repo.Save(ctx, a); err != nil {
		return nil, fmt.Errorf("saving analysis: %w", err)
	}
	return a, nil
}
