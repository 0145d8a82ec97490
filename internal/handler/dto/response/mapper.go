package response

import (
	"github.com/jinzhu/copier"

	"venue-desk/internal/usecase/queries"
)

// copyAll maps read models onto response DTOs by field name.
func copyAll[S any, D any](src []S) ([]D, error) {
	out := make([]D, 0, len(src))
	if len(src) == 0 {
		return out, nil
	}
	if err := copier.Copy(&out, &src); err != nil {
		return nil, err
	}
	return out, nil
}

func copyOne[S any, D any](src S) (*D, error) {
	var dst D
	if err := copier.Copy(&dst, src); err != nil {
		return nil, err
	}
	return &dst, nil
}

func NewPage[T any](items []T, next *queries.Cursor) Page[T] {
	p := Page[T]{Items: items}
	if next != nil {
		p.Next = &next.After
	}
	return p
}

// Page wraps a listing with its next-page cursor.
type Page[T any] struct {
	Items []T     `json:"items"`
	Next  *string `json:"next,omitempty"`
}
