package readstore

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"venue-desk/internal/infra"
	"venue-desk/internal/infra/db"
	"venue-desk/internal/infra/repository/converter"
	"venue-desk/internal/usecase/queries"
)

const reservationSelect = `
SELECT r.id, r.event_id, e.title, r.place_id, p.name,
       COALESCE(array_agg(a.id::text ORDER BY a.created_at, a.id) FILTER (WHERE a.id IS NOT NULL), '{}'),
       COALESCE(array_agg(a.name::text ORDER BY a.created_at, a.id) FILTER (WHERE a.id IS NOT NULL), '{}'),
       r.start_at, r.end_at, COALESCE(r.comment, ''), r.created_at
FROM reservations r
JOIN events e ON e.id = r.event_id
JOIN places p ON p.id = r.place_id
LEFT JOIN reservation_areas ra ON ra.reservation_id = r.id
LEFT JOIN areas a ON a.id = ra.area_id`

const reservationGroupBy = `
GROUP BY r.id, e.id, p.id`

type ReservationReadStore struct {
	db db.DBTX
}

func NewReservationReadStore(db db.DBTX) *ReservationReadStore {
	return &ReservationReadStore{db: db}
}

func (r *ReservationReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.ReservationView, error) {
	var w where
	w.add("r.id = " + w.arg(id))

	rows, err := r.query(ctx, reservationSelect+w.String()+reservationGroupBy, w.args)
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, infra.WrapRepoErr("reservation not found", pgx.ErrNoRows, infra.KindNotFound)
	}
	return rows[0], nil
}

func (r *ReservationReadStore) List(ctx context.Context, f queries.ReservationFilters, page queries.Page) ([]*queries.ReservationView, error) {
	var w where
	w.eq("p.name", f.PlaceName)
	w.between("r.start_at", f.Start)
	w.between("r.end_at", f.End)
	w.between("r.created_at", f.Created)
	w.after("r.created_at", "r.id", page.After)

	sql := reservationSelect + w.String() + reservationGroupBy + `
ORDER BY r.created_at DESC, r.id DESC` + w.limit(page.Limit)
	return r.query(ctx, sql, w.args)
}

func (r *ReservationReadStore) Overlapping(ctx context.Context, from, to time.Time) ([]*queries.ReservationView, error) {
	var w where
	w.add("r.start_at < " + w.arg(to))
	w.add("r.end_at > " + w.arg(from))

	sql := reservationSelect + w.String() + reservationGroupBy + `
ORDER BY r.start_at, r.id`
	return r.query(ctx, sql, w.args)
}

func (r *ReservationReadStore) query(ctx context.Context, sql string, args []any) ([]*queries.ReservationView, error) {
	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to query reservations", err)
	}
	defer rows.Close()

	var out []*queries.ReservationView
	for rows.Next() {
		var (
			v         queries.ReservationView
			areaIDs   []string
			areaNames []string
		)
		err := rows.Scan(&v.ID, &v.EventID, &v.EventTitle, &v.PlaceID, &v.PlaceName,
			&areaIDs, &areaNames, &v.StartAt, &v.EndAt, &v.Comment, &v.CreatedAt)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan reservation", err)
		}
		if v.Areas, err = areaRefs(areaIDs, areaNames); err != nil {
			return nil, infra.WrapRepoErr("stored area id is invalid", err)
		}
		out = append(out, &v)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate reservations", err)
	}
	return out, nil
}

func areaRefs(ids, names []string) ([]queries.AreaRef, error) {
	parsed, err := converter.ParseUUIDs(ids)
	if err != nil {
		return nil, err
	}
	refs := make([]queries.AreaRef, 0, len(parsed))
	for i, id := range parsed {
		ref := queries.AreaRef{ID: id}
		if i < len(names) {
			ref.Name = names[i]
		}
		refs = append(refs, ref)
	}
	return refs, nil
}
