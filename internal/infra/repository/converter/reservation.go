package converter

import (
	"time"

	"github.com/google/uuid"

	"venue-desk/internal/domain/reservation"
)

// Booking rebuilds a stored reservation interval and its area ids.
func Booking(startAt, endAt time.Time, areaIDs []string) (reservation.Booking, error) {
	slot, err := reservation.NewTimeSlot(startAt, endAt)
	if err != nil {
		return reservation.Booking{}, err
	}
	ids, err := ParseUUIDs(areaIDs)
	if err != nil {
		return reservation.Booking{}, err
	}
	return reservation.Booking{Slot: slot, AreaIDs: ids}, nil
}

func ParseUUIDs(raw []string) ([]uuid.UUID, error) {
	if len(raw) == 0 {
		return nil, nil
	}
	ids := make([]uuid.UUID, 0, len(raw))
	for _, s := range raw {
		id, err := uuid.Parse(s)
		if err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, nil
}
