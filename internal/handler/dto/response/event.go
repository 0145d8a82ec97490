package response

import (
	"time"

	"github.com/google/uuid"

	"venue-desk/internal/domain/event"
	"venue-desk/internal/usecase/queries"
)

type EventResponse struct {
	ID          uuid.UUID  `json:"id"`
	Title       string     `json:"title"`
	Scope       string     `json:"scope"`
	ScopeLabel  string     `json:"scope_label"`
	TypeID      *uuid.UUID `json:"type_id,omitempty"`
	TypeName    string     `json:"type_name"`
	StartAt     time.Time  `json:"start_at"`
	Description string     `json:"description"`
	CreatedAt   time.Time  `json:"created_at"`
}

func FromEventView(v *queries.EventView) (*EventResponse, error) {
	res, err := copyOne[*queries.EventView, EventResponse](v)
	if err != nil {
		return nil, err
	}
	res.ScopeLabel = event.Scope(res.Scope).Label()
	return res, nil
}

func FromEventViews(vs []*queries.EventView) ([]EventResponse, error) {
	out, err := copyAll[*queries.EventView, EventResponse](vs)
	if err != nil {
		return nil, err
	}
	for i := range out {
		out[i].ScopeLabel = event.Scope(out[i].Scope).Label()
	}
	return out, nil
}
