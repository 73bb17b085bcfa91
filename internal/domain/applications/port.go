package applications

import "context"

// ListFilter filter untuk listing admin
type ListFilter struct {
	// Status matches exactly; empty or "all" means no status filter.
	Status string
	// Search is a case-insensitive substring match on name OR email.
	Search string
}

// Repository port (interface untuk persistence)
type Repository interface {
	Save(ctx context.Context, a *Application) error
	Get(ctx context.Context, id ApplicationID) (*Application, error)
	// List returns applications ordered by created_at desc, id desc.
	List(ctx context.Context, f ListFilter) ([]*Application, error)
	UpdateStatus(ctx context.Context, id ApplicationID, status Status) error
}
