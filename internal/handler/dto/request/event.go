package request

import (
	"time"

	"github.com/google/uuid"

	"venue-desk/internal/usecase/commands"
	"venue-desk/internal/usecase/queries"
)

type CreateEventRequest struct {
	Title       string     `json:"title" binding:"required"`
	Scope       string     `json:"scope" binding:"required,scope"`
	TypeID      *uuid.UUID `json:"type_id"`
	StartAt     time.Time  `json:"start_at" binding:"required"`
	Description string     `json:"description"`
}

func (r CreateEventRequest) ToCommand() commands.CreateEventRequest {
	return commands.CreateEventRequest{
		Title:       r.Title,
		Scope:       r.Scope,
		TypeID:      r.TypeID,
		StartAt:     r.StartAt,
		Description: r.Description,
	}
}

type UpdateEventRequest struct {
	Title       *string    `json:"title"`
	Scope       *string    `json:"scope" binding:"omitempty,scope"`
	TypeID      *uuid.UUID `json:"type_id"`
	ClearType   bool       `json:"clear_type"`
	StartAt     *time.Time `json:"start_at"`
	Description *string    `json:"description"`
}

func (r UpdateEventRequest) ToCommand() commands.UpdateEventRequest {
	return commands.UpdateEventRequest{
		Title:       r.Title,
		Scope:       r.Scope,
		TypeID:      r.TypeID,
		ClearType:   r.ClearType,
		StartAt:     r.StartAt,
		Description: r.Description,
	}
}

type EventListQuery struct {
	ListQuery
	TypeName    string     `form:"type"`
	Scope       string     `form:"scope" binding:"omitempty,scope"`
	StartFrom   *time.Time `form:"start_from"`
	StartTo     *time.Time `form:"start_to"`
	CreatedFrom *time.Time `form:"created_from"`
	CreatedTo   *time.Time `form:"created_to"`
}

func (q EventListQuery) Filters() queries.EventFilters {
	return queries.EventFilters{
		TypeName: q.TypeName,
		Scope:    q.Scope,
		Start:    timeRange(q.StartFrom, q.StartTo),
		Created:  timeRange(q.CreatedFrom, q.CreatedTo),
	}
}
