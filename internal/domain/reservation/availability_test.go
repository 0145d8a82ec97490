//go:build unit

package reservation_test

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"venue-desk/internal/domain/place"
	"venue-desk/internal/domain/reservation"
)

var policies = []reservation.Policy{reservation.PolicyOverlap, reservation.PolicyLegacyEndTime}

func at(hour int) time.Time {
	return time.Date(2024, 1, 1, hour, 0, 0, 0, time.UTC)
}

func slot(t *testing.T, from, to int) reservation.TimeSlot {
	t.Helper()
	s, err := reservation.NewTimeSlot(at(from), at(to))
	require.NoError(t, err)
	return s
}

func newPlace(t *testing.T, name string, areas ...string) *place.Place {
	t.Helper()
	p, err := place.NewPlace(name)
	require.NoError(t, err)
	for _, a := range areas {
		_, err := p.AddArea(a)
		require.NoError(t, err)
	}
	return p
}

func areaID(t *testing.T, p *place.Place, name string) uuid.UUID {
	t.Helper()
	for _, a := range p.Areas() {
		if a.Name() == name {
			return a.ID()
		}
	}
	t.Fatalf("area %q not found", name)
	return uuid.Nil
}

func names(places []*place.Place) []string {
	out := make([]string, 0, len(places))
	for _, p := range places {
		out = append(out, p.Name())
	}
	return out
}

func enabled(areas []reservation.AreaAvailability) map[string]bool {
	out := make(map[string]bool, len(areas))
	for _, a := range areas {
		out[a.Area.Name()] = a.Enabled
	}
	return out
}

func TestResolver_HallAScenario(t *testing.T) {
	for _, policy := range policies {
		t.Run(policy.String(), func(t *testing.T) {
			hallA := newPlace(t, "Hall A", "Left", "Right")
			schedule := reservation.PlaceSchedule{
				Place: hallA,
				Bookings: []reservation.Booking{
					{Slot: slot(t, 8, 10), AreaIDs: []uuid.UUID{areaID(t, hallA, "Left")}},
				},
			}
			query := slot(t, 11, 12)
			r := reservation.NewResolver(policy)

			assert.Equal(t, []string{"Hall A"}, names(r.FindAvailablePlaces(query, []reservation.PlaceSchedule{schedule})))
			assert.Equal(t, map[string]bool{"Left": true, "Right": true}, enabled(r.FindAvailableAreas(schedule, query)))
		})
	}
}

func TestResolver_HallBScenario(t *testing.T) {
	for _, policy := range policies {
		t.Run(policy.String(), func(t *testing.T) {
			hallB := newPlace(t, "Hall B")
			schedule := reservation.PlaceSchedule{
				Place:    hallB,
				Bookings: []reservation.Booking{{Slot: slot(t, 9, 13)}},
			}
			r := reservation.NewResolver(policy)

			assert.Empty(t, r.FindAvailablePlaces(slot(t, 10, 11), []reservation.PlaceSchedule{schedule}))
			assert.False(t, r.CanReserve(schedule, slot(t, 10, 11), nil))
		})
	}
}

func TestResolver_EmptyUnitsAlwaysAvailable(t *testing.T) {
	for _, policy := range policies {
		t.Run(policy.String(), func(t *testing.T) {
			bare := newPlace(t, "Foyer")
			withAreas := newPlace(t, "Hall", "North", "South")
			schedules := []reservation.PlaceSchedule{{Place: bare}, {Place: withAreas}}
			r := reservation.NewResolver(policy)

			for _, q := range []reservation.TimeSlot{slot(t, 0, 1), slot(t, 9, 17), slot(t, 22, 23)} {
				assert.Equal(t, []string{"Foyer", "Hall"}, names(r.FindAvailablePlaces(q, schedules)))
				assert.Equal(t, map[string]bool{"North": true, "South": true}, enabled(r.FindAvailableAreas(schedules[1], q)))
				assert.Empty(t, r.FindAvailableAreas(schedules[0], q))
			}
		})
	}
}

func TestResolver_ReservationEndingByQueryStartIsClear(t *testing.T) {
	for _, policy := range policies {
		t.Run(policy.String(), func(t *testing.T) {
			hall := newPlace(t, "Hall", "Stage")
			foyer := newPlace(t, "Foyer")
			schedules := []reservation.PlaceSchedule{
				{Place: hall, Bookings: []reservation.Booking{{Slot: slot(t, 8, 10), AreaIDs: []uuid.UUID{areaID(t, hall, "Stage")}}}},
				{Place: foyer, Bookings: []reservation.Booking{{Slot: slot(t, 8, 10)}}},
			}
			r := reservation.NewResolver(policy)

			// end_at == qStart counts as clear
			q := slot(t, 10, 11)
			assert.Equal(t, []string{"Hall", "Foyer"}, names(r.FindAvailablePlaces(q, schedules)))
			assert.Equal(t, map[string]bool{"Stage": true}, enabled(r.FindAvailableAreas(schedules[0], q)))
		})
	}
}

func TestResolver_BusyAreasAreListedDisabled(t *testing.T) {
	for _, policy := range policies {
		t.Run(policy.String(), func(t *testing.T) {
			hall := newPlace(t, "Hall", "Left", "Right")
			schedule := reservation.PlaceSchedule{
				Place: hall,
				Bookings: []reservation.Booking{
					{Slot: slot(t, 9, 13), AreaIDs: []uuid.UUID{areaID(t, hall, "Left")}},
				},
			}
			r := reservation.NewResolver(policy)
			q := slot(t, 10, 11)

			areas := r.FindAvailableAreas(schedule, q)
			require.Len(t, areas, 2)
			assert.Equal(t, map[string]bool{"Left": false, "Right": true}, enabled(areas))
			assert.Equal(t, []string{"Hall"}, names(r.FindAvailablePlaces(q, []reservation.PlaceSchedule{schedule})))
			assert.True(t, r.CanReserve(schedule, q, []uuid.UUID{areaID(t, hall, "Right")}))
			assert.False(t, r.CanReserve(schedule, q, []uuid.UUID{areaID(t, hall, "Left"), areaID(t, hall, "Right")}))
		})
	}
}

func TestResolver_AllAreasBusy(t *testing.T) {
	for _, policy := range policies {
		t.Run(policy.String(), func(t *testing.T) {
			hall := newPlace(t, "Hall", "Left", "Right")
			both := []uuid.UUID{areaID(t, hall, "Left"), areaID(t, hall, "Right")}
			schedule := reservation.PlaceSchedule{
				Place:    hall,
				Bookings: []reservation.Booking{{Slot: slot(t, 9, 13), AreaIDs: both}},
			}
			r := reservation.NewResolver(policy)

			assert.Empty(t, r.FindAvailablePlaces(slot(t, 10, 11), []reservation.PlaceSchedule{schedule}))
		})
	}
}

func TestResolver_OverlapPolicy(t *testing.T) {
	r := reservation.NewResolver(reservation.PolicyOverlap)

	t.Run("future reservation after the query does not block", func(t *testing.T) {
		foyer := newPlace(t, "Foyer")
		schedule := reservation.PlaceSchedule{
			Place:    foyer,
			Bookings: []reservation.Booking{{Slot: slot(t, 14, 16)}},
		}
		assert.Equal(t, []string{"Foyer"}, names(r.FindAvailablePlaces(slot(t, 10, 12), []reservation.PlaceSchedule{schedule})))
	})

	t.Run("a clear reservation does not hide an overlapping one", func(t *testing.T) {
		foyer := newPlace(t, "Foyer")
		schedule := reservation.PlaceSchedule{
			Place: foyer,
			Bookings: []reservation.Booking{
				{Slot: slot(t, 6, 8)},
				{Slot: slot(t, 9, 13)},
			},
		}
		assert.Empty(t, r.FindAvailablePlaces(slot(t, 10, 11), []reservation.PlaceSchedule{schedule}))
	})

	t.Run("whole-place reservation blocks every area", func(t *testing.T) {
		hall := newPlace(t, "Hall", "Left", "Right")
		schedule := reservation.PlaceSchedule{
			Place:    hall,
			Bookings: []reservation.Booking{{Slot: slot(t, 9, 13)}},
		}
		q := slot(t, 10, 11)
		assert.Empty(t, r.FindAvailablePlaces(q, []reservation.PlaceSchedule{schedule}))
		assert.Equal(t, map[string]bool{"Left": false, "Right": false}, enabled(r.FindAvailableAreas(schedule, q)))
	})

	t.Run("area reservation blocks whole-place request", func(t *testing.T) {
		hall := newPlace(t, "Hall", "Left", "Right")
		schedule := reservation.PlaceSchedule{
			Place:    hall,
			Bookings: []reservation.Booking{{Slot: slot(t, 9, 13), AreaIDs: []uuid.UUID{areaID(t, hall, "Left")}}},
		}
		assert.False(t, r.CanReserve(schedule, slot(t, 10, 11), nil))
	})
}

func TestResolver_LegacyEndTimePolicy(t *testing.T) {
	r := reservation.NewResolver(reservation.PolicyLegacyEndTime)

	t.Run("future reservation after the query blocks", func(t *testing.T) {
		foyer := newPlace(t, "Foyer")
		schedule := reservation.PlaceSchedule{
			Place:    foyer,
			Bookings: []reservation.Booking{{Slot: slot(t, 14, 16)}},
		}
		assert.Empty(t, r.FindAvailablePlaces(slot(t, 10, 12), []reservation.PlaceSchedule{schedule}))
	})

	t.Run("any clear reservation makes the unit usable", func(t *testing.T) {
		foyer := newPlace(t, "Foyer")
		schedule := reservation.PlaceSchedule{
			Place: foyer,
			Bookings: []reservation.Booking{
				{Slot: slot(t, 6, 8)},
				{Slot: slot(t, 9, 13)},
			},
		}
		assert.Equal(t, []string{"Foyer"}, names(r.FindAvailablePlaces(slot(t, 10, 11), []reservation.PlaceSchedule{schedule})))
	})

	t.Run("whole-place reservation blocks a place with areas", func(t *testing.T) {
		hall := newPlace(t, "Hall", "Left", "Right")
		schedule := reservation.PlaceSchedule{
			Place:    hall,
			Bookings: []reservation.Booking{{Slot: slot(t, 9, 13)}},
		}
		query := slot(t, 10, 11)

		assert.Empty(t, r.FindAvailablePlaces(query, []reservation.PlaceSchedule{schedule}))
		assert.Equal(t, map[string]bool{"Left": false, "Right": false}, enabled(r.FindAvailableAreas(schedule, query)))
		assert.False(t, r.CanReserve(schedule, query, nil))
		assert.False(t, r.CanReserve(schedule, query, []uuid.UUID{areaID(t, hall, "Left")}))
	})

	t.Run("whole-place reservation ended by the query start leaves areas usable", func(t *testing.T) {
		hall := newPlace(t, "Hall", "Left", "Right")
		schedule := reservation.PlaceSchedule{
			Place:    hall,
			Bookings: []reservation.Booking{{Slot: slot(t, 6, 9)}},
		}
		query := slot(t, 10, 11)

		assert.Equal(t, []string{"Hall"}, names(r.FindAvailablePlaces(query, []reservation.PlaceSchedule{schedule})))
		assert.True(t, r.CanReserve(schedule, query, []uuid.UUID{areaID(t, hall, "Right")}))
	})
}

func TestResolver_DeduplicatesAndKeepsOrder(t *testing.T) {
	a := newPlace(t, "A")
	b := newPlace(t, "B")
	r := reservation.NewResolver(reservation.PolicyOverlap)

	got := r.FindAvailablePlaces(slot(t, 1, 2), []reservation.PlaceSchedule{{Place: b}, {Place: a}, {Place: b}, {}})
	assert.Equal(t, []string{"B", "A"}, names(got))
}

func TestParsePolicy(t *testing.T) {
	p, err := reservation.ParsePolicy("")
	require.NoError(t, err)
	assert.Equal(t, reservation.PolicyOverlap, p)

	p, err = reservation.ParsePolicy("LEGACY-END-TIME")
	require.NoError(t, err)
	assert.Equal(t, reservation.PolicyLegacyEndTime, p)

	_, err = reservation.ParsePolicy("strict")
	assert.ErrorIs(t, err, reservation.ErrUnknownPolicy)
}
