package repository

import (
	"context"
	"time"

	"github.com/google/uuid"

	"venue-desk/internal/domain/place"
	"venue-desk/internal/domain/reservation"
	"venue-desk/internal/infra"
	"venue-desk/internal/infra/db"
	"venue-desk/internal/infra/repository/converter"
	"venue-desk/internal/pkg/pgconv"
)

const (
	lockPlaceSQL = `SELECT id, name, created_at FROM places WHERE id = $1 FOR UPDATE`

	placeAreasSQL = `
SELECT id, name FROM areas
WHERE place_id = $1
ORDER BY created_at, id`

	placeBookingsSQL = `
SELECT r.start_at, r.end_at,
       COALESCE(array_agg(ra.area_id::text) FILTER (WHERE ra.area_id IS NOT NULL), '{}')
FROM reservations r
LEFT JOIN reservation_areas ra ON ra.reservation_id = r.id
WHERE r.place_id = $1
GROUP BY r.id, r.start_at, r.end_at
ORDER BY r.start_at, r.id`
)

type PlaceRepository struct {
	db db.DBTX
}

func NewPlaceRepository(db db.DBTX) *PlaceRepository {
	return &PlaceRepository{db: db}
}

func (r *PlaceRepository) ScheduleByID(ctx context.Context, id uuid.UUID) (reservation.PlaceSchedule, error) {
	var (
		placeID   uuid.UUID
		name      string
		createdAt time.Time
	)
	if err := r.db.QueryRow(ctx, lockPlaceSQL, id).Scan(&placeID, &name, &createdAt); err != nil {
		if pgconv.IsNoRows(err) {
			return reservation.PlaceSchedule{}, infra.WrapRepoErr("place not found", err, infra.KindNotFound)
		}
		return reservation.PlaceSchedule{}, infra.WrapRepoErr("failed to lock place", err)
	}

	areas, err := r.areas(ctx, placeID)
	if err != nil {
		return reservation.PlaceSchedule{}, err
	}

	bookings, err := r.bookings(ctx, placeID)
	if err != nil {
		return reservation.PlaceSchedule{}, err
	}

	return reservation.PlaceSchedule{
		Place:    place.ReconstructPlace(placeID, name, areas, createdAt),
		Bookings: bookings,
	}, nil
}

func (r *PlaceRepository) areas(ctx context.Context, placeID uuid.UUID) ([]place.Area, error) {
	rows, err := r.db.Query(ctx, placeAreasSQL, placeID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list areas", err)
	}
	defer rows.Close()

	var areas []place.Area
	for rows.Next() {
		var (
			id   uuid.UUID
			name string
		)
		if err := rows.Scan(&id, &name); err != nil {
			return nil, infra.WrapRepoErr("failed to scan area", err)
		}
		areas = append(areas, place.ReconstructArea(id, placeID, name))
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate areas", err)
	}
	return areas, nil
}

func (r *PlaceRepository) bookings(ctx context.Context, placeID uuid.UUID) ([]reservation.Booking, error) {
	rows, err := r.db.Query(ctx, placeBookingsSQL, placeID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list bookings", err)
	}
	defer rows.Close()

	var bookings []reservation.Booking
	for rows.Next() {
		var (
			startAt, endAt time.Time
			areaIDs        []string
		)
		if err := rows.Scan(&startAt, &endAt, &areaIDs); err != nil {
			return nil, infra.WrapRepoErr("failed to scan booking", err)
		}
		b, err := converter.Booking(startAt, endAt, areaIDs)
		if err != nil {
			return nil, infra.WrapRepoErr("stored booking is invalid", err)
		}
		bookings = append(bookings, b)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate bookings", err)
	}
	return bookings, nil
}
