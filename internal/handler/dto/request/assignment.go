package request

import (
	"time"

	"github.com/google/uuid"

	"venue-desk/internal/usecase/commands"
	"venue-desk/internal/usecase/queries"
)

type CreateAssignmentRequest struct {
	Description string     `json:"description"`
	EventID     *uuid.UUID `json:"event_id"`
	TypeID      *uuid.UUID `json:"type_id"`
	PlaceID     *uuid.UUID `json:"place_id"`
	Deadline    time.Time  `json:"deadline" binding:"required"`
	State       string     `json:"state" binding:"omitempty,assignment_state"`
}

func (r CreateAssignmentRequest) ToCommand() commands.CreateAssignmentRequest {
	return commands.CreateAssignmentRequest{
		Description: r.Description,
		EventID:     r.EventID,
		TypeID:      r.TypeID,
		PlaceID:     r.PlaceID,
		Deadline:    r.Deadline,
		State:       r.State,
	}
}

type UpdateAssignmentRequest struct {
	Description *string    `json:"description"`
	EventID     *uuid.UUID `json:"event_id"`
	ClearEvent  bool       `json:"clear_event"`
	TypeID      *uuid.UUID `json:"type_id"`
	ClearType   bool       `json:"clear_type"`
	PlaceID     *uuid.UUID `json:"place_id"`
	ClearPlace  bool       `json:"clear_place"`
	Deadline    *time.Time `json:"deadline"`
	State       *string    `json:"state" binding:"omitempty,assignment_state"`
}

func (r UpdateAssignmentRequest) ToCommand() commands.UpdateAssignmentRequest {
	return commands.UpdateAssignmentRequest{
		Description: r.Description,
		EventID:     r.EventID,
		ClearEvent:  r.ClearEvent,
		TypeID:      r.TypeID,
		ClearType:   r.ClearType,
		PlaceID:     r.PlaceID,
		ClearPlace:  r.ClearPlace,
		Deadline:    r.Deadline,
		State:       r.State,
	}
}

type AssignmentListQuery struct {
	ListQuery
	TypeName     string     `form:"type"`
	PlaceName    string     `form:"place"`
	State        string     `form:"state" binding:"omitempty,assignment_state"`
	DeadlineFrom *time.Time `form:"deadline_from"`
	DeadlineTo   *time.Time `form:"deadline_to"`
	CreatedFrom  *time.Time `form:"created_from"`
	CreatedTo    *time.Time `form:"created_to"`
}

func (q AssignmentListQuery) Filters() queries.AssignmentFilters {
	return queries.AssignmentFilters{
		TypeName:  q.TypeName,
		PlaceName: q.PlaceName,
		State:     q.State,
		Deadline:  timeRange(q.DeadlineFrom, q.DeadlineTo),
		Created:   timeRange(q.CreatedFrom, q.CreatedTo),
	}
}
