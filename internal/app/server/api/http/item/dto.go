package item

import "itemkeeper/internal/domain/item"

type listOutput struct {
	Body []item.Item
}

type getInput struct {
	ID int `path:"id" example:"1" doc:"Item id"`
}

type getOutput struct {
	Body item.Item
}

type createInput struct {
	Body createRequest
}

type createRequest struct {
	Name  string  `json:"name" minLength:"1" doc:"Item name"`
	Price float64 `json:"price" minimum:"0" doc:"Item price"`
}

type createOutput struct {
	Body item.Item
}

type bulkUpdateInput struct {
	Body bulkUpdateRequest
}

type bulkUpdateRequest struct {
	IDs  []int      `json:"ids" doc:"Ids to update; unknown ids are skipped"`
	Item item.Patch `json:"item" doc:"Fields to apply; absent fields keep their value"`
}

type bulkUpdateOutput struct {
	Body []int
}
