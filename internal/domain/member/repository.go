package member

import "context"

// Repository describes roster persistence needs from use cases.
//
// List returns members ordered by (subteam, display order); ListBySubteam
// orders by display order. Both break display-order ties by insertion order.
// An unknown subteam yields an empty slice, not an error.
type Repository interface {
	List(ctx context.Context) ([]Member, error)
	ListBySubteam(ctx context.Context, subteam string) ([]Member, error)
	Insert(ctx context.Context, m Member) error
	Clear(ctx context.Context) error
}
