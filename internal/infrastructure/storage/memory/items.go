// Package memory holds the in-memory stores behind the domain repositories.
// Each store owns one shared mutable set guarded by its own lock; the item
// set is additionally bound to a snapshot so that readers only ever observe
// what was last durably persisted.
package memory

import (
	"context"
	"fmt"
	"slices"
	"sync"

	"itemkeeper/internal/domain/item"

	"golang.org/x/exp/slog"
)

// Snapshotter persists the full item set.
type Snapshotter interface {
	Save(ctx context.Context, items []item.Item) error
}

// ItemStore implements item.Repository. Mutations build the replacement set,
// persist it, and only then publish it, so a failed save leaves both memory
// and disk at the previous state.
type ItemStore struct {
	mu    sync.RWMutex
	items []item.Item
	snap  Snapshotter
	log   *slog.Logger
}

func NewItemStore(seed []item.Item, snap Snapshotter, log *slog.Logger) *ItemStore {
	return &ItemStore{
		items: slices.Clone(seed),
		snap:  snap,
		log:   log.With("component", "item_store"),
	}
}

func (s *ItemStore) List(_ context.Context) ([]item.Item, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Clone(s.items), nil
}

func (s *ItemStore) Get(_ context.Context, id int) (item.Item, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, it := range s.items {
		if it.ID == id {
			return it, nil
		}
	}
	return item.Item{}, item.ErrNotFound
}

// Create assigns max(existing ids)+1, or 1 for an empty set. The id is
// computed under the write lock, so concurrent creates never collide.
func (s *ItemStore) Create(ctx context.Context, name string, price float64) (item.Item, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	next := 0
	for _, it := range s.items {
		if it.ID > next {
			next = it.ID
		}
	}

	created := item.Item{ID: next + 1, Name: name, Price: price}
	replacement := append(slices.Clone(s.items), created)

	if err := s.snap.Save(ctx, replacement); err != nil {
		s.log.Error("snapshot save failed, create rolled back", "id", created.ID, "error", err)
		return item.Item{}, fmt.Errorf("%w: %v", item.ErrPersistence, err)
	}

	s.items = replacement
	return created, nil
}

// BulkUpdate applies the patch to every requested id that exists and returns
// those ids in input order. Unknown ids are skipped, not an error.
func (s *ItemStore) BulkUpdate(ctx context.Context, ids []int, patch item.Patch) ([]int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	replacement := slices.Clone(s.items)
	index := make(map[int]int, len(replacement))
	for i, it := range replacement {
		index[it.ID] = i
	}

	updated := make([]int, 0, len(ids))
	for _, id := range ids {
		i, ok := index[id]
		if !ok {
			continue
		}
		if patch.Name != nil {
			replacement[i].Name = *patch.Name
		}
		if patch.Price != nil {
			replacement[i].Price = *patch.Price
		}
		updated = append(updated, id)
	}

	if err := s.snap.Save(ctx, replacement); err != nil {
		s.log.Error("snapshot save failed, bulk update rolled back", "ids", ids, "error", err)
		return nil, fmt.Errorf("%w: %v", item.ErrPersistence, err)
	}

	s.items = replacement
	return updated, nil
}
