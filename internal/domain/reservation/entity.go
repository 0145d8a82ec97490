package reservation

import (
	"errors"
	"time"

	"github.com/google/uuid"

	"venue-desk/internal/domain/place"
)

var (
	ErrInvalidTimeSlot = errors.New("start time must be before end time")
	ErrStartInPast     = errors.New("start time cannot be in the past")
	ErrCommentTooLong  = errors.New("comment is too long (max 1028 characters)")
	ErrPlaceBusy       = errors.New("place or area is not available for the requested interval")
)

const MaxCommentLength = 1028

// Reservation books a place, or a subset of its areas, for an event.
// An empty area set reserves the whole place.
type Reservation struct {
	id        uuid.UUID
	eventID   uuid.UUID
	placeID   uuid.UUID
	areaIDs   []uuid.UUID
	timeSlot  TimeSlot
	comment   Comment
	createdAt time.Time
}

func NewReservation(
	eventID uuid.UUID,
	p *place.Place,
	areaIDs []uuid.UUID,
	slot TimeSlot,
	comment Comment,
) (*Reservation, error) {
	areaIDs = dedupIDs(areaIDs)
	if err := p.ContainsAreas(areaIDs); err != nil {
		return nil, err
	}

	return &Reservation{
		id:       uuid.New(),
		eventID:  eventID,
		placeID:  p.ID(),
		areaIDs:  areaIDs,
		timeSlot: slot,
		comment:  comment,
	}, nil
}

func ReconstructReservation(
	id, eventID, placeID uuid.UUID,
	areaIDs []uuid.UUID,
	timeSlot TimeSlot,
	comment Comment,
	createdAt time.Time,
) *Reservation {
	return &Reservation{
		id:        id,
		eventID:   eventID,
		placeID:   placeID,
		areaIDs:   areaIDs,
		timeSlot:  timeSlot,
		comment:   comment,
		createdAt: createdAt,
	}
}

func (r *Reservation) WholePlace() bool {
	return len(r.areaIDs) == 0
}

func (r *Reservation) Booking() Booking {
	return Booking{Slot: r.timeSlot, AreaIDs: r.AreaIDs()}
}

func (r *Reservation) ID() uuid.UUID        { return r.id }
func (r *Reservation) EventID() uuid.UUID   { return r.eventID }
func (r *Reservation) PlaceID() uuid.UUID   { return r.placeID }
func (r *Reservation) TimeSlot() TimeSlot   { return r.timeSlot }
func (r *Reservation) Comment() Comment     { return r.comment }
func (r *Reservation) CreatedAt() time.Time { return r.createdAt }

func (r *Reservation) AreaIDs() []uuid.UUID {
	out := make([]uuid.UUID, len(r.areaIDs))
	copy(out, r.areaIDs)
	return out
}

func dedupIDs(ids []uuid.UUID) []uuid.UUID {
	if len(ids) == 0 {
		return nil
	}
	seen := make(map[uuid.UUID]struct{}, len(ids))
	out := make([]uuid.UUID, 0, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}
