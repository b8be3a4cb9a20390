package item

// Item is a single priced record. IDs are assigned by the store and never
// change afterwards.
type Item struct {
	ID    int     `json:"id"`
	Name  string  `json:"name"`
	Price float64 `json:"price"`
}

// Patch is a partial update. A nil field keeps the current value.
type Patch struct {
	Name  *string  `json:"name,omitempty"`
	Price *float64 `json:"price,omitempty"`
}
