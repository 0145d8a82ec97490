//go:build unit || e2e

package builder

import (
	"time"

	reqdto "venue-desk/internal/handler/dto/request"
	"venue-desk/internal/usecase/queries"

	"github.com/google/uuid"
)

type ReservationBuilder struct {
	EventID    uuid.UUID
	EventTitle string
	Scope      string
	PlaceID    uuid.UUID
	PlaceName  string
	Areas      []queries.AreaRef
	StartAt    time.Time
	EndAt      time.Time
	Comment    string
	CreatedAt  time.Time
}

func NewReservationBuilder() *ReservationBuilder {
	start := time.Now().Add(48 * time.Hour).Truncate(time.Hour).UTC()
	return &ReservationBuilder{
		EventID:    uuid.New(),
		EventTitle: "Spring concert",
		Scope:      "entertainment",
		PlaceID:    uuid.New(),
		PlaceName:  "Assembly hall",
		StartAt:    start,
		EndAt:      start.Add(2 * time.Hour),
		Comment:    "Needs a piano",
		CreatedAt:  time.Now().UTC(),
	}
}

func (r *ReservationBuilder) With(mutate func(*ReservationBuilder)) *ReservationBuilder {
	mutate(r)
	return r
}

func (r *ReservationBuilder) WithArea(name string) *ReservationBuilder {
	r.Areas = append(r.Areas, queries.AreaRef{ID: uuid.New(), Name: name})
	return r
}

func (r *ReservationBuilder) BuildCreateRequestDTO() reqdto.CreateReservationRequest {
	areaIDs := make([]uuid.UUID, 0, len(r.Areas))
	for _, a := range r.Areas {
		areaIDs = append(areaIDs, a.ID)
	}
	return reqdto.CreateReservationRequest{
		Title:   r.EventTitle,
		Scope:   r.Scope,
		PlaceID: r.PlaceID,
		AreaIDs: areaIDs,
		StartAt: r.StartAt,
		EndAt:   r.EndAt,
		Comment: r.Comment,
	}
}

func (r *ReservationBuilder) BuildViewQuery() *queries.ReservationView {
	return &queries.ReservationView{
		ID:         uuid.New(),
		EventID:    r.EventID,
		EventTitle: r.EventTitle,
		PlaceID:    r.PlaceID,
		PlaceName:  r.PlaceName,
		Areas:      r.Areas,
		StartAt:    r.StartAt,
		EndAt:      r.EndAt,
		Comment:    r.Comment,
		CreatedAt:  r.CreatedAt,
	}
}
