package repository

import (
	"context"

	"github.com/google/uuid"

	"venue-desk/internal/domain/reservation"
	"venue-desk/internal/infra"
	"venue-desk/internal/infra/db"
	"venue-desk/internal/pkg/pgconv"
	"venue-desk/internal/usecase/shared"
)

const (
	insertReservationSQL = `
INSERT INTO reservations (id, event_id, place_id, start_at, end_at, comment)
VALUES ($1, $2, $3, $4, $5, $6)`

	insertReservationAreasSQL = `
INSERT INTO reservation_areas (reservation_id, place_id, area_id)
SELECT $1, $2, unnest($3::uuid[])`

	reservationSnapshotSQL = `
SELECT r.id, r.event_id, e.title, r.place_id, p.name, r.start_at, r.end_at
FROM reservations r
JOIN events e ON e.id = r.event_id
JOIN places p ON p.id = r.place_id
WHERE r.id = $1`

	deleteReservationSQL = `DELETE FROM reservations WHERE id = $1`
)

type ReservationRepository struct {
	db db.DBTX
}

func NewReservationRepository(db db.DBTX) *ReservationRepository {
	return &ReservationRepository{db: db}
}

// Create inserts the reservation and then its area links.
func (r *ReservationRepository) Create(ctx context.Context, res *reservation.Reservation) error {
	slot := res.TimeSlot()
	_, err := r.db.Exec(ctx, insertReservationSQL,
		res.ID(),
		res.EventID(),
		res.PlaceID(),
		slot.Start(),
		slot.End(),
		pgconv.OptionalText(res.Comment().String()),
	)
	if err != nil {
		return infra.WrapRepoErr("failed to create reservation", err)
	}

	if res.WholePlace() {
		return nil
	}
	_, err = r.db.Exec(ctx, insertReservationAreasSQL, res.ID(), res.PlaceID(), pgconv.UUIDStrings(res.AreaIDs()))
	if err != nil {
		return infra.WrapRepoErr("failed to link reservation areas", err)
	}
	return nil
}

func (r *ReservationRepository) FindByID(ctx context.Context, id uuid.UUID) (*shared.ReservationSnapshot, error) {
	var s shared.ReservationSnapshot
	err := r.db.QueryRow(ctx, reservationSnapshotSQL, id).Scan(
		&s.ID, &s.EventID, &s.EventTitle, &s.PlaceID, &s.PlaceName, &s.StartAt, &s.EndAt,
	)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("reservation not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find reservation", err)
	}
	return &s, nil
}

func (r *ReservationRepository) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := r.db.Exec(ctx, deleteReservationSQL, id)
	if err != nil {
		return infra.WrapRepoErr("failed to delete reservation", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("reservation not found", nil, infra.KindNotFound)
	}
	return nil
}
