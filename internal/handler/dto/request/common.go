package request

import (
	"time"

	"github.com/google/uuid"

	"venue-desk/internal/usecase/queries"
)

// ListQuery carries keyset pagination parameters.
type ListQuery struct {
	After string `form:"after"`
	Limit int    `form:"limit" binding:"omitempty,min=1,max=200"`
}

func (q ListQuery) Cursor() *queries.Cursor {
	if q.After == "" {
		return nil
	}
	return &queries.Cursor{After: q.After}
}

func (q ListQuery) PageLimit() int {
	return queries.ValidateLimit(q.Limit)
}

// SelectionRequest names the rows a bulk operation acts on.
type SelectionRequest struct {
	IDs []uuid.UUID `json:"ids" binding:"required,min=1"`
}

func timeRange(from, to *time.Time) queries.TimeRange {
	return queries.TimeRange{From: from, To: to}
}
