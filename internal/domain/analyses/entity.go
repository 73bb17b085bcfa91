package analyses

import "time"

// AnalysisID identifier type
type AnalysisID string

// QualificationCategory taxonomy for AI qualification output
type QualificationCategory string

const (
	CategoryQualified   QualificationCategory = "QUALIFIED"
	CategoryUnqualified QualificationCategory = "UNQUALIFIED"
	CategoryFollowUp    QualificationCategory = "FOLLOW_UP"
)

// ValidCategory reports whether s is one of the three categories.
func ValidCategory(s string) bool {
	switch QualificationCategory(s) {
	case CategoryQualified, CategoryUnqualified, CategoryFollowUp:
		return true
	}
	return false
}

// Analysis represents one AI pipeline result, kept append-only for auditing.
// An application may accumulate many rows; readers pick the latest analyzed_at.
type Analysis struct {
	ID                    AnalysisID            `json:"id"`
	ApplicationID         string                `json:"application_id"`
	ResearchSummary       string                `json:"research_summary,omitempty"`
	LinkedInAnalysis      string                `json:"linkedin_analysis,omitempty"`
	QualificationCategory QualificationCategory `json:"qualification_category"`
	QualificationReason   string                `json:"qualification_reason"`
	AnalyzedAt            time.Time             `json:"analyzed_at"`
}
