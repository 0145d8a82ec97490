package response

import (
	"time"

	"github.com/google/uuid"

	"venue-desk/internal/domain/assignment"
	"venue-desk/internal/usecase/queries"
)

type AssignmentResponse struct {
	ID          uuid.UUID  `json:"id"`
	Description string     `json:"description"`
	EventID     *uuid.UUID `json:"event_id,omitempty"`
	EventTitle  string     `json:"event_title"`
	TypeID      *uuid.UUID `json:"type_id,omitempty"`
	TypeName    string     `json:"type_name"`
	PlaceID     *uuid.UUID `json:"place_id,omitempty"`
	PlaceName   string     `json:"place_name"`
	Deadline    time.Time  `json:"deadline"`
	State       string     `json:"state"`
	StateLabel  string     `json:"state_label"`
	CreatedAt   time.Time  `json:"created_at"`
}

func FromAssignmentView(v *queries.AssignmentView) (*AssignmentResponse, error) {
	res, err := copyOne[*queries.AssignmentView, AssignmentResponse](v)
	if err != nil {
		return nil, err
	}
	res.StateLabel = assignment.State(res.State).Label()
	return res, nil
}

func FromAssignmentViews(vs []*queries.AssignmentView) ([]AssignmentResponse, error) {
	out, err := copyAll[*queries.AssignmentView, AssignmentResponse](vs)
	if err != nil {
		return nil, err
	}
	for i := range out {
		out[i].StateLabel = assignment.State(out[i].State).Label()
	}
	return out, nil
}

type DeletedResponse struct {
	Deleted int64 `json:"deleted"`
}
