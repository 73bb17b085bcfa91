package postgres

import (
	"context"
	"database/sql"
	"time"

	domain "github.com/bryanwahyu/applicant-intake/internal/domain/analyses"
)

type AnalysisRepository struct {
	db *sql.DB
}

func NewAnalysisRepository(db *sql.DB) *AnalysisRepository {
	return &AnalysisRepository{db: db}
}

// Save inserts an analysis record (append-only)
func (r *AnalysisRepository) Save(ctx context.Context, a *domain.Analysis) error {
	const q = `
INSERT INTO ai_analyses
  (id, application_id, research_summary, linkedin_analysis,
   qualification_category, qualification_reason, analyzed_at)
VALUES ($1,$2,$3,$4,$5,$6,$7);
`
	analyzedAt := a.AnalyzedAt
	if analyzedAt.IsZero() {
		analyzedAt = time.Now().UTC()
	}
	_, err := r.db.ExecContext(ctx, q,
		a.ID, a.ApplicationID,
		nullString(a.ResearchSummary), nullString(a.LinkedInAnalysis),
		a.QualificationCategory, a.QualificationReason, analyzedAt,
	)
	return err
}

// LatestByApplication returns the row with the max analyzed_at for one application
func (r *AnalysisRepository) LatestByApplication(ctx context.Context, applicationID string) (*domain.Analysis, error) {
	const q = `
SELECT id, application_id, research_summary, linkedin_analysis,
       qualification_category, qualification_reason, analyzed_at
FROM ai_analyses
WHERE application_id=$1
ORDER BY analyzed_at DESC, id DESC
LIMIT 1;
`
	row := r.db.QueryRowContext(ctx, q, applicationID)

	var a domain.Analysis
	var research, linkedin sql.NullString
	if err := row.Scan(
		&a.ID, &a.ApplicationID, &research, &linkedin,
		&a.QualificationCategory, &a.QualificationReason, &a.AnalyzedAt,
	); err != nil {
		return nil, err
	}
	a.ResearchSummary = fromNull(research)
	a.LinkedInAnalysis = fromNull(linkedin)
	return &a, nil
}
