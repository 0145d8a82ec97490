package queries

import (
	"context"
	"time"

	"github.com/google/uuid"

	"venue-desk/internal/domain/club"
	"venue-desk/internal/infra"
	"venue-desk/internal/pkg/errs"
)

var ErrClubNotFound = errs.New("club not found")

type ClubQueries interface {
	GetByID(ctx context.Context, id uuid.UUID) (*ClubView, error)
	List(ctx context.Context, filters ClubFilters, cursor *Cursor, limit int) ([]*ClubView, *Cursor, error)
	// WeeklySchedule expands every club into the Monday-first week containing weekStart.
	WeeklySchedule(ctx context.Context, weekStart time.Time) (*WeekView, error)
}

type clubQueriesImpl struct {
	store ClubReadStore
	loc   *time.Location
}

// loc is the venue time zone weekdays and session times are judged in.
func NewClubQueries(store ClubReadStore, loc *time.Location) ClubQueries {
	if loc == nil {
		loc = time.UTC
	}
	return &clubQueriesImpl{store: store, loc: loc}
}

func (q *clubQueriesImpl) GetByID(ctx context.Context, id uuid.UUID) (*ClubView, error) {
	c, err := q.store.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrClubNotFound
		}
		return nil, err
	}
	return c, nil
}

func (q *clubQueriesImpl) List(ctx context.Context, filters ClubFilters, cursor *Cursor, limit int) ([]*ClubView, *Cursor, error) {
	limit = ValidateLimit(limit)
	page, err := pageFor(cursor, limit)
	if err != nil {
		return nil, nil, err
	}
	rows, err := q.store.List(ctx, filters, page)
	if err != nil {
		return nil, nil, err
	}
	rows, next := trimPage(rows, limit, func(v *ClubView) Keyset {
		return Keyset{CreatedAt: v.CreatedAt, ID: v.ID}
	})
	return rows, next, nil
}

func (q *clubQueriesImpl) WeeklySchedule(ctx context.Context, weekStart time.Time) (*WeekView, error) {
	listings, err := q.store.Listings(ctx)
	if err != nil {
		return nil, err
	}

	grid := club.BuildWeek(weekStart.In(q.loc), listings)
	return weekView(grid), nil
}

func weekView(grid club.WeekGrid) *WeekView {
	w := &WeekView{WeekStart: grid.WeekStart, Days: make([]DayView, 0, club.DaysPerWeek)}
	for i, sessions := range grid.Days {
		day := DayView{
			Name:     club.DayNames[i],
			Date:     grid.WeekStart.AddDate(0, 0, i),
			Sessions: make([]SessionView, 0, len(sessions)),
		}
		for _, s := range sessions {
			day.Sessions = append(day.Sessions, SessionView{
				ClubID:      s.ClubID,
				ClubName:    s.ClubName,
				TeacherName: s.TeacherName,
				PlaceName:   s.PlaceName,
				Start:       s.Start,
				End:         s.End,
				Label:       s.Label(),
			})
		}
		w.Days = append(w.Days, day)
	}
	return w
}
