package item

import (
	"context"
	"errors"
	"fmt"

	"itemkeeper/internal/app/server/api/http/middleware/auth"
	"itemkeeper/internal/domain/item"

	"github.com/danielgtaylor/huma/v2"
	"golang.org/x/exp/slog"
)

type Handler struct {
	service   item.Servicer
	log       *slog.Logger
	public    huma.Middlewares
	protected huma.Middlewares
}

// NewHandler wires the item endpoints. Reads use the public middleware set,
// mutations the protected one (bearer auth).
func NewHandler(service item.Servicer, log *slog.Logger, public, protected huma.Middlewares) *Handler {
	return &Handler{
		service:   service,
		log:       log,
		public:    public,
		protected: protected,
	}
}

func (h *Handler) SetupRoutes(api huma.API) {
	huma.Register(api, h.listOp(), h.list)
	huma.Register(api, h.getOp(), h.get)
	huma.Register(api, h.createOp(), h.create)
	huma.Register(api, h.bulkUpdateOp(), h.bulkUpdate)
}

func (h *Handler) list(ctx context.Context, _ *struct{}) (*listOutput, error) {
	items, err := h.service.List(ctx)
	if err != nil {
		return nil, err
	}

	return &listOutput{Body: items}, nil
}

func (h *Handler) get(ctx context.Context, input *getInput) (*getOutput, error) {
	it, err := h.service.Get(ctx, input.ID)
	if err != nil {
		if errors.Is(err, item.ErrNotFound) {
			return nil, huma.Error404NotFound(fmt.Sprintf("no item with id: %d", input.ID))
		}
		return nil, err
	}

	return &getOutput{Body: it}, nil
}

func (h *Handler) create(ctx context.Context, input *createInput) (*createOutput, error) {
	if _, ok := auth.GetUserID(ctx); !ok {
		return nil, huma.Error401Unauthorized("Unauthorized")
	}

	created, err := h.service.Create(ctx, input.Body.Name, input.Body.Price)
	if err != nil {
		return nil, mapMutationError(err)
	}

	return &createOutput{Body: created}, nil
}

func (h *Handler) bulkUpdate(ctx context.Context, input *bulkUpdateInput) (*bulkUpdateOutput, error) {
	if _, ok := auth.GetUserID(ctx); !ok {
		return nil, huma.Error401Unauthorized("Unauthorized")
	}

	updated, err := h.service.BulkUpdate(ctx, input.Body.IDs, input.Body.Item)
	if err != nil {
		return nil, mapMutationError(err)
	}

	return &bulkUpdateOutput{Body: updated}, nil
}

func mapMutationError(err error) error {
	switch {
	case errors.Is(err, item.ErrInvalidInput):
		return huma.Error422UnprocessableEntity(err.Error())
	case errors.Is(err, item.ErrPersistence):
		return huma.Error500InternalServerError("failed to save items")
	default:
		return err
	}
}
