package item

import (
	"net/http"

	"github.com/danielgtaylor/huma/v2"
)

func (h *Handler) listOp() huma.Operation {
	return huma.Operation{
		OperationID: "items-list",
		Method:      http.MethodGet,
		Path:        "/items",
		Summary:     "List all items",
		Tags:        []string{"items"},
		Middlewares: h.public,
	}
}

func (h *Handler) getOp() huma.Operation {
	return huma.Operation{
		OperationID: "items-get",
		Method:      http.MethodGet,
		Path:        "/items/{id}",
		Summary:     "Get one item by id",
		Tags:        []string{"items"},
		Middlewares: h.public,
	}
}

func (h *Handler) createOp() huma.Operation {
	return huma.Operation{
		OperationID:   "items-create",
		Method:        http.MethodPost,
		Path:          "/items",
		Summary:       "Create an item",
		Description:   "Stores a new item. The id is assigned by the server and returned in the response.",
		Tags:          []string{"items"},
		DefaultStatus: http.StatusCreated,
		Security:      []map[string][]string{{"bearer": {}}},
		Middlewares:   h.protected,
	}
}

func (h *Handler) bulkUpdateOp() huma.Operation {
	return huma.Operation{
		OperationID: "items-bulk-update",
		Method:      http.MethodPut,
		Path:        "/updateitems",
		Summary:     "Update several items at once",
		Description: "Applies the given fields to every listed id that exists; unknown ids are skipped.",
		Tags:        []string{"items"},
		Security:    []map[string][]string{{"bearer": {}}},
		Middlewares: h.protected,
	}
}
