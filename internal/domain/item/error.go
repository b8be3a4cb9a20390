package item

import "errors"

var (
	ErrNotFound     = errors.New("item not found")
	ErrInvalidInput = errors.New("invalid input")
	ErrPersistence  = errors.New("items not persisted")
)
