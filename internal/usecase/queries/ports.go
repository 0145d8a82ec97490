package queries

import (
	"context"
	"io"
	"time"

	"github.com/google/uuid"

	"venue-desk/internal/domain/club"
	"venue-desk/internal/domain/reservation"
)

// ScheduleStore loads places with their areas and bookings for the resolver.
type ScheduleStore interface {
	AllSchedules(ctx context.Context) ([]reservation.PlaceSchedule, error)
	Schedule(ctx context.Context, placeID uuid.UUID) (reservation.PlaceSchedule, error)
}

type ReservationReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*ReservationView, error)
	List(ctx context.Context, f ReservationFilters, page Page) ([]*ReservationView, error)
	// Overlapping returns reservations intersecting [from, to) ordered by start.
	Overlapping(ctx context.Context, from, to time.Time) ([]*ReservationView, error)
}

type EventReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*EventView, error)
	List(ctx context.Context, f EventFilters, page Page) ([]*EventView, error)
}

type AssignmentReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*AssignmentView, error)
	List(ctx context.Context, f AssignmentFilters, page Page) ([]*AssignmentView, error)
}

type ClubReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*ClubView, error)
	List(ctx context.Context, f ClubFilters, page Page) ([]*ClubView, error)
	// Listings returns every club with teacher and place names resolved.
	Listings(ctx context.Context) ([]club.Listing, error)
}

// TableEncoder writes a table as a downloadable document.
type TableEncoder interface {
	ContentType() string
	EncodeTable(w io.Writer, t Table) error
}

// CalendarEncoder writes calendar entries as an iCalendar feed.
type CalendarEncoder interface {
	ContentType() string
	EncodeCalendar(w io.Writer, name string, entries []CalendarEntry) error
}
