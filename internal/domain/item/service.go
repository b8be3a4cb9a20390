package item

import (
	"context"
	"fmt"
	"strings"

	"golang.org/x/exp/slog"
)

const maxNameLen = 256

type Servicer interface {
	List(ctx context.Context) ([]Item, error)
	Get(ctx context.Context, id int) (Item, error)
	Create(ctx context.Context, name string, price float64) (Item, error)
	BulkUpdate(ctx context.Context, ids []int, patch Patch) ([]int, error)
}

type Service struct {
	repo Repository
	log  *slog.Logger
}

func NewService(repo Repository, log *slog.Logger) *Service {
	return &Service{
		repo: repo,
		log:  log.With("component", "item_service"),
	}
}

func (s *Service) List(ctx context.Context) ([]Item, error) {
	return s.repo.List(ctx)
}

func (s *Service) Get(ctx context.Context, id int) (Item, error) {
	return s.repo.Get(ctx, id)
}

func (s *Service) Create(ctx context.Context, name string, price float64) (Item, error) {
	if err := validateCandidate(name, price); err != nil {
		s.log.Debug("create rejected", "name", name, "error", err)
		return Item{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	created, err := s.repo.Create(ctx, name, price)
	if err != nil {
		return Item{}, err
	}

	s.log.Info("item created", "id", created.ID, "name", created.Name)
	return created, nil
}

func (s *Service) BulkUpdate(ctx context.Context, ids []int, patch Patch) ([]int, error) {
	if patch.Name != nil {
		if err := validateCandidate(*patch.Name, 0); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
		}
	}
	if patch.Price != nil && *patch.Price < 0 {
		return nil, fmt.Errorf("%w: price must not be negative", ErrInvalidInput)
	}

	updated, err := s.repo.BulkUpdate(ctx, ids, patch)
	if err != nil {
		return nil, err
	}

	s.log.Info("items updated", "requested", len(ids), "updated", len(updated))
	return updated, nil
}

func validateCandidate(name string, price float64) error {
	if strings.TrimSpace(name) == "" {
		return fmt.Errorf("name must not be empty")
	}
	if len(name) > maxNameLen {
		return fmt.Errorf("name must be at most %d characters", maxNameLen)
	}
	if price < 0 {
		return fmt.Errorf("price must not be negative")
	}
	return nil
}
