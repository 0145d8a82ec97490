//go:build unit

package club_test

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"venue-desk/internal/domain/catalog"
	"venue-desk/internal/domain/club"
)

// 2024-01-01 is a Monday.
func day(d, hour, minute int) time.Time {
	return time.Date(2024, 1, d, hour, minute, 0, 0, time.UTC)
}

func TestNewSchedule(t *testing.T) {
	tests := []struct {
		name     string
		rule     string
		start    time.Time
		duration time.Duration
		errIs    error
	}{
		{name: "weekly", rule: "FREQ=WEEKLY;BYDAY=MO,WE", start: day(1, 18, 0), duration: time.Hour},
		{name: "prefixed", rule: "RRULE:FREQ=DAILY;COUNT=3", start: day(1, 18, 0), duration: time.Hour},
		{name: "garbage rule", rule: "EVERY MONDAY", start: day(1, 18, 0), duration: time.Hour, errIs: club.ErrInvalidRule},
		{name: "zero duration", rule: "FREQ=WEEKLY", start: day(1, 18, 0), errIs: club.ErrInvalidDuration},
		{name: "missing start", rule: "FREQ=WEEKLY", duration: time.Hour, errIs: club.ErrMissingFirstTime},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := club.NewSchedule(tt.rule, tt.start, tt.duration)
			if tt.errIs != nil {
				assert.ErrorIs(t, err, tt.errIs)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestSchedule_Occurrences(t *testing.T) {
	s, err := club.NewSchedule("FREQ=WEEKLY;BYDAY=MO,WE", day(1, 18, 0), 90*time.Minute)
	require.NoError(t, err)

	occ := s.Occurrences(day(1, 0, 0), day(8, 0, 0))
	require.Len(t, occ, 2)
	assert.True(t, day(1, 18, 0).Equal(occ[0].Start))
	assert.True(t, day(1, 19, 30).Equal(occ[0].End))
	assert.True(t, day(3, 18, 0).Equal(occ[1].Start))

	// the upper bound is exclusive
	assert.Len(t, s.Occurrences(day(2, 0, 0), day(8, 18, 0)), 1)
}

func TestBuildWeek(t *testing.T) {
	chess := mustClub(t, "Chess", "FREQ=WEEKLY;BYDAY=MO,WE", day(1, 18, 0), time.Hour)
	choir := mustClub(t, "Choir", "FREQ=WEEKLY;BYDAY=MO", day(1, 10, 0), 2*time.Hour)
	later := mustClub(t, "Pottery", "FREQ=WEEKLY;BYDAY=SU", day(15, 12, 0), time.Hour)

	// any day of the week resolves to its Monday
	grid := club.BuildWeek(day(4, 15, 0), []club.Listing{
		{Club: chess, TeacherName: "Ivanov"},
		{Club: choir},
		{Club: later},
	})

	assert.True(t, day(1, 0, 0).Equal(grid.WeekStart))
	require.Len(t, grid.Days[0], 2)
	assert.Equal(t, "10:00–12:00 Choir", grid.Days[0][0].Label())
	assert.Equal(t, "18:00–19:00 Chess (Ivanov)", grid.Days[0][1].Label())
	require.Len(t, grid.Days[2], 1)
	assert.Empty(t, grid.Days[6], "club starting in a later week is not expanded")
}

func TestWeekStartOf(t *testing.T) {
	assert.True(t, day(1, 0, 0).Equal(club.WeekStartOf(day(7, 23, 59))))
	assert.True(t, day(8, 0, 0).Equal(club.WeekStartOf(day(8, 0, 1))))
}

func TestNewClub(t *testing.T) {
	_, err := club.NewClub(club.Params{Name: "", Schedule: mustSchedule(t)})
	assert.ErrorIs(t, err, catalog.ErrEmptyName)

	_, err = club.NewClub(club.Params{Name: "Chess"})
	assert.ErrorIs(t, err, club.ErrInvalidRule)

	teacher := uuid.New()
	c, err := club.NewClub(club.Params{Name: " Chess ", TeacherID: &teacher, Schedule: mustSchedule(t)})
	require.NoError(t, err)
	assert.Equal(t, "Chess", c.Name())
	assert.Equal(t, &teacher, c.TeacherID())
}

func mustSchedule(t *testing.T) club.Schedule {
	t.Helper()
	s, err := club.NewSchedule("FREQ=WEEKLY;BYDAY=TU", day(2, 17, 0), time.Hour)
	require.NoError(t, err)
	return s
}

func mustClub(t *testing.T, name, rule string, start time.Time, d time.Duration) *club.Club {
	t.Helper()
	s, err := club.NewSchedule(rule, start, d)
	require.NoError(t, err)
	c, err := club.NewClub(club.Params{Name: name, Schedule: s})
	require.NoError(t, err)
	return c
}
