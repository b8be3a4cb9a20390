package item

import "context"

// Repository is the authoritative item set. Mutating calls are serialized by
// the implementation and must only become visible after the set was durably
// persisted.
type Repository interface {
	List(ctx context.Context) ([]Item, error)
	Get(ctx context.Context, id int) (Item, error)
	Create(ctx context.Context, name string, price float64) (Item, error)
	BulkUpdate(ctx context.Context, ids []int, patch Patch) ([]int, error)
}
