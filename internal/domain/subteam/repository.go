package subteam

import "context"

// Repository describes sub-team persistence needs from use cases.
//
// GetByID reports absence through the bool, never through the error. Upsert
// replaces an existing row with the same id.
type Repository interface {
	List(ctx context.Context) ([]SubTeam, error)
	GetByID(ctx context.Context, id string) (SubTeam, bool, error)
	Upsert(ctx context.Context, s SubTeam) error
	Clear(ctx context.Context) error
}
