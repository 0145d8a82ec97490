package request

import (
	"time"

	"github.com/google/uuid"

	"venue-desk/internal/usecase/commands"
	"venue-desk/internal/usecase/queries"
)

// AvailabilityQuery is the interval step of the reservation wizard.
type AvailabilityQuery struct {
	Start time.Time `form:"start" binding:"required"`
	End   time.Time `form:"end" binding:"required"`
}

type CreateReservationRequest struct {
	Title       string      `json:"title" binding:"required"`
	Scope       string      `json:"scope" binding:"required,scope"`
	TypeID      *uuid.UUID  `json:"type_id"`
	Description string      `json:"description"`
	PlaceID     uuid.UUID   `json:"place_id" binding:"required"`
	AreaIDs     []uuid.UUID `json:"area_ids"`
	StartAt     time.Time   `json:"start_at" binding:"required"`
	EndAt       time.Time   `json:"end_at" binding:"required"`
	Comment     string      `json:"comment"`
}

func (r CreateReservationRequest) ToCommand() commands.CreateReservationRequest {
	return commands.CreateReservationRequest{
		Title:       r.Title,
		Scope:       r.Scope,
		TypeID:      r.TypeID,
		Description: r.Description,
		PlaceID:     r.PlaceID,
		AreaIDs:     r.AreaIDs,
		StartAt:     r.StartAt,
		EndAt:       r.EndAt,
		Comment:     r.Comment,
	}
}

type ReservationListQuery struct {
	ListQuery
	PlaceName   string     `form:"place"`
	StartFrom   *time.Time `form:"start_from"`
	StartTo     *time.Time `form:"start_to"`
	EndFrom     *time.Time `form:"end_from"`
	EndTo       *time.Time `form:"end_to"`
	CreatedFrom *time.Time `form:"created_from"`
	CreatedTo   *time.Time `form:"created_to"`
}

func (q ReservationListQuery) Filters() queries.ReservationFilters {
	return queries.ReservationFilters{
		PlaceName: q.PlaceName,
		Start:     timeRange(q.StartFrom, q.StartTo),
		End:       timeRange(q.EndFrom, q.EndTo),
		Created:   timeRange(q.CreatedFrom, q.CreatedTo),
	}
}

// CalendarQuery bounds the reservations feed.
type CalendarQuery struct {
	From time.Time `form:"from" binding:"required"`
	To   time.Time `form:"to" binding:"required"`
}
