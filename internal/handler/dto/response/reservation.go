package response

import (
	"time"

	"github.com/google/uuid"

	"venue-desk/internal/usecase/commands"
	"venue-desk/internal/usecase/queries"
)

type AreaRef struct {
	ID   uuid.UUID `json:"id"`
	Name string    `json:"name"`
}

type ReservationResponse struct {
	ID         uuid.UUID `json:"id"`
	EventID    uuid.UUID `json:"event_id"`
	EventTitle string    `json:"event_title"`
	PlaceID    uuid.UUID `json:"place_id"`
	PlaceName  string    `json:"place_name"`
	Areas      []AreaRef `json:"areas"`
	StartAt    time.Time `json:"start_at"`
	EndAt      time.Time `json:"end_at"`
	Comment    string    `json:"comment"`
	CreatedAt  time.Time `json:"created_at"`
}

type CreateReservationResponse struct {
	ReservationID uuid.UUID `json:"reservation_id"`
	EventID       uuid.UUID `json:"event_id"`
}

func FromCreateReservationResult(r *commands.CreateReservationResult) CreateReservationResponse {
	return CreateReservationResponse{ReservationID: r.ReservationID, EventID: r.EventID}
}

func FromReservationView(v *queries.ReservationView) (*ReservationResponse, error) {
	res, err := copyOne[*queries.ReservationView, ReservationResponse](v)
	if err != nil {
		return nil, err
	}
	if res.Areas == nil {
		res.Areas = []AreaRef{}
	}
	return res, nil
}

func FromReservationViews(vs []*queries.ReservationView) ([]ReservationResponse, error) {
	out, err := copyAll[*queries.ReservationView, ReservationResponse](vs)
	if err != nil {
		return nil, err
	}
	for i := range out {
		if out[i].Areas == nil {
			out[i].Areas = []AreaRef{}
		}
	}
	return out, nil
}

type AvailablePlaceResponse struct {
	ID       uuid.UUID `json:"id"`
	Name     string    `json:"name"`
	HasAreas bool      `json:"has_areas"`
}

type AreaOptionResponse struct {
	ID      uuid.UUID `json:"id"`
	Name    string    `json:"name"`
	Enabled bool      `json:"enabled"`
}

func FromAvailablePlaces(ps []queries.AvailablePlace) ([]AvailablePlaceResponse, error) {
	return copyAll[queries.AvailablePlace, AvailablePlaceResponse](ps)
}

func FromAreaOptions(as []queries.AreaOption) ([]AreaOptionResponse, error) {
	return copyAll[queries.AreaOption, AreaOptionResponse](as)
}
