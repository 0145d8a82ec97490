package reservation

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"

	"venue-desk/internal/domain/place"
)

// ErrUnknownPolicy is returned by ParsePolicy for anything but the known policy names.
var ErrUnknownPolicy = errors.New("unknown availability policy")

// Policy selects how existing bookings are tested against a query interval.
type Policy string

const (
	// PolicyOverlap treats a unit as busy when a booking overlaps the query.
	PolicyOverlap Policy = "overlap"
	// PolicyLegacyEndTime treats a unit as usable when it has no bookings or
	// at least one booking that ended by the query start.
	PolicyLegacyEndTime Policy = "legacy-end-time"
)

// ParsePolicy reads a configured policy name; empty means PolicyOverlap.
func ParsePolicy(s string) (Policy, error) {
	switch p := Policy(strings.ToLower(strings.TrimSpace(s))); p {
	case "":
		return PolicyOverlap, nil
	case PolicyOverlap, PolicyLegacyEndTime:
		return p, nil
	default:
		return "", ErrUnknownPolicy
	}
}

// String returns the configuration name of the policy.
func (p Policy) String() string {
	return string(p)
}

// Booking is the part of a reservation the resolver looks at.
// Empty AreaIDs books the whole place.
type Booking struct {
	Slot    TimeSlot
	AreaIDs []uuid.UUID
}

func (b Booking) covers(areaID uuid.UUID) bool {
	for _, id := range b.AreaIDs {
		if id == areaID {
			return true
		}
	}
	return false
}

// PlaceSchedule is a place with every booking made against it or its areas.
type PlaceSchedule struct {
	Place    *place.Place
	Bookings []Booking
}

// AreaAvailability is one area of a place with its selectable state.
type AreaAvailability struct {
	Area    place.Area
	Enabled bool
}

// Resolver answers availability questions over pre-loaded schedules.
// It never fails; referential integrity is the caller's concern.
type Resolver struct {
	policy Policy
}

func NewResolver(policy Policy) *Resolver {
	if policy == "" {
		policy = PolicyOverlap
	}
	return &Resolver{policy: policy}
}

// Policy reports the policy the resolver applies.
func (r *Resolver) Policy() Policy {
	return r.policy
}

// FindAvailablePlaces returns the places with at least one usable unit
// (the place itself or one of its areas) for the query. Input order is kept
// and each place appears once.
func (r *Resolver) FindAvailablePlaces(query TimeSlot, schedules []PlaceSchedule) []*place.Place {
	seen := make(map[uuid.UUID]struct{}, len(schedules))
	out := make([]*place.Place, 0, len(schedules))
	for _, s := range schedules {
		if s.Place == nil {
			continue
		}
		if _, dup := seen[s.Place.ID()]; dup {
			continue
		}
		if r.placeAvailable(s, query) {
			seen[s.Place.ID()] = struct{}{}
			out = append(out, s.Place)
		}
	}
	return out
}

// FindAvailableAreas lists every area of the place; busy ones are disabled.
func (r *Resolver) FindAvailableAreas(schedule PlaceSchedule, query TimeSlot) []AreaAvailability {
	if schedule.Place == nil {
		return nil
	}
	areas := schedule.Place.Areas()
	out := make([]AreaAvailability, 0, len(areas))
	for _, a := range areas {
		out = append(out, AreaAvailability{
			Area:    a,
			Enabled: r.areaAvailable(schedule, a.ID(), query),
		})
	}
	return out
}

// CanReserve checks a concrete request: the whole place when areaIDs is
// empty, otherwise every listed area.
func (r *Resolver) CanReserve(schedule PlaceSchedule, query TimeSlot, areaIDs []uuid.UUID) bool {
	if len(areaIDs) == 0 {
		if r.policy == PolicyOverlap {
			return !anyOverlap(schedule.Bookings, query)
		}
		return r.placeAvailable(schedule, query)
	}
	for _, id := range areaIDs {
		if !r.areaAvailable(schedule, id, query) {
			return false
		}
	}
	return true
}

func (r *Resolver) placeAvailable(s PlaceSchedule, query TimeSlot) bool {
	if !s.Place.HasAreas() {
		if r.policy == PolicyLegacyEndTime {
			return usable(s.Bookings, query.Start())
		}
		return !anyOverlap(s.Bookings, query)
	}

	if !r.placeLevelFree(s, query) {
		return false
	}
	for _, a := range s.Place.Areas() {
		if r.areaAvailable(s, a.ID(), query) {
			return true
		}
	}
	return false
}

func (r *Resolver) areaAvailable(s PlaceSchedule, areaID uuid.UUID, query TimeSlot) bool {
	if !r.placeLevelFree(s, query) {
		return false
	}
	own := forArea(s.Bookings, areaID)
	if r.policy == PolicyLegacyEndTime {
		return usable(own, query.Start())
	}
	return !anyOverlap(own, query)
}

// placeLevelFree tests the bookings made without area scoping; they count
// against the whole place and every one of its areas.
func (r *Resolver) placeLevelFree(s PlaceSchedule, query TimeSlot) bool {
	whole := wholePlace(s.Bookings)
	if r.policy == PolicyLegacyEndTime {
		return usable(whole, query.Start())
	}
	return !anyOverlap(whole, query)
}

// usable is the end-time rule: no bookings, or one that ended by qStart.
func usable(bookings []Booking, qStart time.Time) bool {
	if len(bookings) == 0 {
		return true
	}
	for _, b := range bookings {
		if b.Slot.EndsBy(qStart) {
			return true
		}
	}
	return false
}

func anyOverlap(bookings []Booking, query TimeSlot) bool {
	for _, b := range bookings {
		if b.Slot.Overlaps(query) {
			return true
		}
	}
	return false
}

func wholePlace(bookings []Booking) []Booking {
	var out []Booking
	for _, b := range bookings {
		if len(b.AreaIDs) == 0 {
			out = append(out, b)
		}
	}
	return out
}

func forArea(bookings []Booking, areaID uuid.UUID) []Booking {
	var out []Booking
	for _, b := range bookings {
		if b.covers(areaID) {
			out = append(out, b)
		}
	}
	return out
}
