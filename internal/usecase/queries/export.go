package queries

import (
	"context"
	"io"
	"time"

	"venue-desk/internal/domain/assignment"
	"venue-desk/internal/domain/reservation"
)

// ExportQueries renders the listings as downloads. Table exports honour the
// same filters as the listings but are not paginated.
type ExportQueries interface {
	TableContentType() string
	CalendarContentType() string

	Events(ctx context.Context, filters EventFilters, w io.Writer) error
	Assignments(ctx context.Context, filters AssignmentFilters, w io.Writer) error
	Desktop(ctx context.Context, filters AssignmentFilters, w io.Writer) error
	Reservations(ctx context.Context, filters ReservationFilters, w io.Writer) error
	Clubs(ctx context.Context, filters ClubFilters, w io.Writer) error
	WeeklySchedule(ctx context.Context, weekStart time.Time, w io.Writer) error

	ReservationsCalendar(ctx context.Context, from, to time.Time, w io.Writer) error
	WeeklyCalendar(ctx context.Context, weekStart time.Time, w io.Writer) error
}

type exportQueriesImpl struct {
	reservations ReservationReadStore
	events       EventReadStore
	assignments  AssignmentReadStore
	clubs        ClubReadStore
	schedule     ClubQueries
	table        TableEncoder
	calendar     CalendarEncoder
	loc          *time.Location
}

func NewExportQueries(
	reservations ReservationReadStore,
	events EventReadStore,
	assignments AssignmentReadStore,
	clubs ClubReadStore,
	schedule ClubQueries,
	table TableEncoder,
	calendar CalendarEncoder,
	loc *time.Location,
) ExportQueries {
	if loc == nil {
		loc = time.UTC
	}
	return &exportQueriesImpl{
		reservations: reservations,
		events:       events,
		assignments:  assignments,
		clubs:        clubs,
		schedule:     schedule,
		table:        table,
		calendar:     calendar,
		loc:          loc,
	}
}

var allRows = Page{}

func (q *exportQueriesImpl) TableContentType() string {
	return q.table.ContentType()
}

func (q *exportQueriesImpl) CalendarContentType() string {
	return q.calendar.ContentType()
}

func (q *exportQueriesImpl) Events(ctx context.Context, filters EventFilters, w io.Writer) error {
	rows, err := q.events.List(ctx, filters, allRows)
	if err != nil {
		return err
	}
	return q.table.EncodeTable(w, EventsTable(rows, q.loc))
}

func (q *exportQueriesImpl) Assignments(ctx context.Context, filters AssignmentFilters, w io.Writer) error {
	rows, err := q.assignments.List(ctx, filters, allRows)
	if err != nil {
		return err
	}
	return q.table.EncodeTable(w, AssignmentsTable(rows, q.loc))
}

func (q *exportQueriesImpl) Desktop(ctx context.Context, filters AssignmentFilters, w io.Writer) error {
	filters.State = assignment.StateActive.String()
	rows, err := q.assignments.List(ctx, filters, allRows)
	if err != nil {
		return err
	}
	return q.table.EncodeTable(w, DesktopTable(rows, q.loc))
}

func (q *exportQueriesImpl) Reservations(ctx context.Context, filters ReservationFilters, w io.Writer) error {
	rows, err := q.reservations.List(ctx, filters, allRows)
	if err != nil {
		return err
	}
	return q.table.EncodeTable(w, ReservationsTable(rows, q.loc))
}

func (q *exportQueriesImpl) Clubs(ctx context.Context, filters ClubFilters, w io.Writer) error {
	rows, err := q.clubs.List(ctx, filters, allRows)
	if err != nil {
		return err
	}
	return q.table.EncodeTable(w, ClubsTable(rows, q.loc))
}

func (q *exportQueriesImpl) WeeklySchedule(ctx context.Context, weekStart time.Time, w io.Writer) error {
	week, err := q.schedule.WeeklySchedule(ctx, weekStart)
	if err != nil {
		return err
	}
	return q.table.EncodeTable(w, WeekTable(week))
}

func (q *exportQueriesImpl) ReservationsCalendar(ctx context.Context, from, to time.Time, w io.Writer) error {
	if _, err := reservation.NewTimeSlot(from, to); err != nil {
		return err
	}
	rows, err := q.reservations.Overlapping(ctx, from, to)
	if err != nil {
		return err
	}
	return q.calendar.EncodeCalendar(w, "Бронирования", reservationEntries(rows))
}

func (q *exportQueriesImpl) WeeklyCalendar(ctx context.Context, weekStart time.Time, w io.Writer) error {
	week, err := q.schedule.WeeklySchedule(ctx, weekStart)
	if err != nil {
		return err
	}
	return q.calendar.EncodeCalendar(w, "Расписание секций", sessionEntries(week))
}
