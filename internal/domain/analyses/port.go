package analyses

import "context"

// Repository port for persisting and querying analyses
type Repository interface {
	Save(ctx context.Context, a *Analysis) error
	// LatestByApplication returns the row with the max analyzed_at for the
	// application, or sql.ErrNoRows when none exists.
	LatestByApplication(ctx context.Context, applicationID string) (*Analysis, error)
}
