package readstore

import (
	"context"
	"time"

	"github.com/google/uuid"

	"venue-desk/internal/domain/place"
	"venue-desk/internal/domain/reservation"
	"venue-desk/internal/infra"
	"venue-desk/internal/infra/db"
	"venue-desk/internal/infra/repository/converter"
	"venue-desk/internal/usecase/shared"
)

// ScheduleReadStore loads places with their areas and bookings inside one
// read-only snapshot.
type ScheduleReadStore struct {
	uow shared.UnitOfWork
}

func NewScheduleReadStore(uow shared.UnitOfWork) *ScheduleReadStore {
	return &ScheduleReadStore{uow: uow}
}

func (s *ScheduleReadStore) AllSchedules(ctx context.Context) ([]reservation.PlaceSchedule, error) {
	var out []reservation.PlaceSchedule
	err := s.uow.WithinReadOnly(ctx, func(ctx context.Context, tx shared.Tx) error {
		var err error
		out, err = loadSchedules(ctx, tx.DB(), nil)
		return err
	})
	return out, err
}

func (s *ScheduleReadStore) Schedule(ctx context.Context, placeID uuid.UUID) (reservation.PlaceSchedule, error) {
	var out []reservation.PlaceSchedule
	err := s.uow.WithinReadOnly(ctx, func(ctx context.Context, tx shared.Tx) error {
		var err error
		out, err = loadSchedules(ctx, tx.DB(), &placeID)
		return err
	})
	if err != nil {
		return reservation.PlaceSchedule{}, err
	}
	if len(out) == 0 {
		return reservation.PlaceSchedule{}, infra.WrapRepoErr("place not found", nil, infra.KindNotFound)
	}
	return out[0], nil
}

type placeRow struct {
	id        uuid.UUID
	name      string
	createdAt time.Time
	areas     []place.Area
	bookings  []reservation.Booking
}

// loadSchedules reads every place, or only placeID when given, ordered by name.
func loadSchedules(ctx context.Context, q db.DBTX, placeID *uuid.UUID) ([]reservation.PlaceSchedule, error) {
	var w where
	if placeID != nil {
		w.add("id = " + w.arg(*placeID))
	}
	rows, err := q.Query(ctx, `SELECT id, name, created_at FROM places`+w.String()+`
ORDER BY name, id`, w.args...)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list places", err)
	}

	var order []*placeRow
	byID := make(map[uuid.UUID]*placeRow)
	for rows.Next() {
		p := &placeRow{}
		if err := rows.Scan(&p.id, &p.name, &p.createdAt); err != nil {
			rows.Close()
			return nil, infra.WrapRepoErr("failed to scan place", err)
		}
		order = append(order, p)
		byID[p.id] = p
	}
	rows.Close()
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate places", err)
	}
	if len(order) == 0 {
		return nil, nil
	}

	if err := loadAreas(ctx, q, placeID, byID); err != nil {
		return nil, err
	}
	if err := loadBookings(ctx, q, placeID, byID); err != nil {
		return nil, err
	}

	out := make([]reservation.PlaceSchedule, 0, len(order))
	for _, p := range order {
		out = append(out, reservation.PlaceSchedule{
			Place:    place.ReconstructPlace(p.id, p.name, p.areas, p.createdAt),
			Bookings: p.bookings,
		})
	}
	return out, nil
}

func loadAreas(ctx context.Context, q db.DBTX, placeID *uuid.UUID, byID map[uuid.UUID]*placeRow) error {
	var w where
	if placeID != nil {
		w.add("place_id = " + w.arg(*placeID))
	}
	rows, err := q.Query(ctx, `SELECT id, place_id, name FROM areas`+w.String()+`
ORDER BY created_at, id`, w.args...)
	if err != nil {
		return infra.WrapRepoErr("failed to list areas", err)
	}
	defer rows.Close()

	for rows.Next() {
		var (
			id, owner uuid.UUID
			name      string
		)
		if err := rows.Scan(&id, &owner, &name); err != nil {
			return infra.WrapRepoErr("failed to scan area", err)
		}
		if p, ok := byID[owner]; ok {
			p.areas = append(p.areas, place.ReconstructArea(id, owner, name))
		}
	}
	if err := rows.Err(); err != nil {
		return infra.WrapRepoErr("failed to iterate areas", err)
	}
	return nil
}

func loadBookings(ctx context.Context, q db.DBTX, placeID *uuid.UUID, byID map[uuid.UUID]*placeRow) error {
	var w where
	if placeID != nil {
		w.add("r.place_id = " + w.arg(*placeID))
	}
	rows, err := q.Query(ctx, `
SELECT r.place_id, r.start_at, r.end_at,
       COALESCE(array_agg(ra.area_id::text) FILTER (WHERE ra.area_id IS NOT NULL), '{}')
FROM reservations r
LEFT JOIN reservation_areas ra ON ra.reservation_id = r.id`+w.String()+`
GROUP BY r.id
ORDER BY r.start_at, r.id`, w.args...)
	if err != nil {
		return infra.WrapRepoErr("failed to list bookings", err)
	}
	defer rows.Close()

	for rows.Next() {
		var (
			owner          uuid.UUID
			startAt, endAt time.Time
			areaIDs        []string
		)
		if err := rows.Scan(&owner, &startAt, &endAt, &areaIDs); err != nil {
			return infra.WrapRepoErr("failed to scan booking", err)
		}
		b, err := converter.Booking(startAt, endAt, areaIDs)
		if err != nil {
			return infra.WrapRepoErr("stored booking is invalid", err)
		}
		if p, ok := byID[owner]; ok {
			p.bookings = append(p.bookings, b)
		}
	}
	if err := rows.Err(); err != nil {
		return infra.WrapRepoErr("failed to iterate bookings", err)
	}
	return nil
}
