package readstore

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"

	"venue-desk/internal/domain/club"
	"venue-desk/internal/infra"
	"venue-desk/internal/infra/db"
	"venue-desk/internal/pkg/pgconv"
	"venue-desk/internal/usecase/queries"
)

const clubSelect = `
SELECT c.id, c.name,
       c.type_id, COALESCE(t.name, ''),
       c.teacher_id, COALESCE(tc.name, ''),
       c.place_id, COALESCE(p.name, ''),
       c.rrule, c.first_start_at, c.duration_minutes, c.created_at
FROM clubs c
LEFT JOIN club_types t ON t.id = c.type_id
LEFT JOIN teachers tc ON tc.id = c.teacher_id
LEFT JOIN places p ON p.id = c.place_id`

type ClubReadStore struct {
	db  db.DBTX
	loc *time.Location
}

// loc anchors recurrence expansion so weekday and hour rules follow venue time.
func NewClubReadStore(db db.DBTX, loc *time.Location) *ClubReadStore {
	if loc == nil {
		loc = time.UTC
	}
	return &ClubReadStore{db: db, loc: loc}
}

func (r *ClubReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.ClubView, error) {
	var w where
	w.add("c.id = " + w.arg(id))

	rows, err := r.query(ctx, clubSelect+w.String(), w.args)
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, infra.WrapRepoErr("club not found", pgx.ErrNoRows, infra.KindNotFound)
	}
	return rows[0], nil
}

func (r *ClubReadStore) List(ctx context.Context, f queries.ClubFilters, page queries.Page) ([]*queries.ClubView, error) {
	var w where
	w.eq("t.name", f.TypeName)
	w.eq("tc.name", f.TeacherName)
	w.eq("p.name", f.PlaceName)
	w.after("c.created_at", "c.id", page.After)

	sql := clubSelect + w.String() + `
ORDER BY c.created_at DESC, c.id DESC` + w.limit(page.Limit)
	return r.query(ctx, sql, w.args)
}

func (r *ClubReadStore) Listings(ctx context.Context) ([]club.Listing, error) {
	rows, err := r.query(ctx, clubSelect+`
ORDER BY c.name, c.id`, nil)
	if err != nil {
		return nil, err
	}

	out := make([]club.Listing, 0, len(rows))
	for _, v := range rows {
		schedule := club.ReconstructSchedule(v.RRule, v.FirstStartAt.In(r.loc), time.Duration(v.DurationMinutes)*time.Minute)
		out = append(out, club.Listing{
			Club:        club.ReconstructClub(v.ID, v.Name, v.TypeID, v.TeacherID, v.PlaceID, schedule, v.CreatedAt),
			TeacherName: v.TeacherName,
			PlaceName:   v.PlaceName,
		})
	}
	return out, nil
}

func (r *ClubReadStore) query(ctx context.Context, sql string, args []any) ([]*queries.ClubView, error) {
	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to query clubs", err)
	}
	defer rows.Close()

	var out []*queries.ClubView
	for rows.Next() {
		var (
			v                          queries.ClubView
			typeID, teacherID, placeID pgtype.UUID
			duration                   int32
		)
		err := rows.Scan(&v.ID, &v.Name,
			&typeID, &v.TypeName,
			&teacherID, &v.TeacherName,
			&placeID, &v.PlaceName,
			&v.RRule, &v.FirstStartAt, &duration, &v.CreatedAt)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan club", err)
		}
		v.TypeID = pgconv.UUIDPtrFromPgtype(typeID)
		v.TeacherID = pgconv.UUIDPtrFromPgtype(teacherID)
		v.PlaceID = pgconv.UUIDPtrFromPgtype(placeID)
		v.DurationMinutes = int(duration)
		out = append(out, &v)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate clubs", err)
	}
	return out, nil
}
