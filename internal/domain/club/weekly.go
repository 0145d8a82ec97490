package club

import (
	"fmt"
	"sort"
	"time"

	"github.com/google/uuid"
)

const DaysPerWeek = 7

// Weekday headers, Monday first.
var DayNames = [DaysPerWeek]string{
	"Понедельник", "Вторник", "Среда", "Четверг", "Пятница", "Суббота", "Воскресенье",
}

// Session is one expanded occurrence of a club.
type Session struct {
	ClubID      uuid.UUID
	ClubName    string
	TeacherName string
	PlaceName   string
	Start       time.Time
	End         time.Time
}

// Label renders "HH:MM–HH:MM name (teacher)".
func (s Session) Label() string {
	label := fmt.Sprintf("%s–%s %s", s.Start.Format("15:04"), s.End.Format("15:04"), s.ClubName)
	if s.TeacherName != "" {
		label += " (" + s.TeacherName + ")"
	}
	return label
}

// Listing is a club with its display names resolved.
type Listing struct {
	Club        *Club
	TeacherName string
	PlaceName   string
}

type WeekGrid struct {
	WeekStart time.Time
	Days      [DaysPerWeek][]Session
}

// WeekStartOf returns Monday 00:00 of t's week in t's location.
func WeekStartOf(t time.Time) time.Time {
	day := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
	return day.AddDate(0, 0, -mondayIndex(day.Weekday()))
}

// BuildWeek expands every club into the week starting at weekStart.
// Cells are sorted by start time, then club name.
func BuildWeek(weekStart time.Time, listings []Listing) WeekGrid {
	weekStart = WeekStartOf(weekStart)
	weekEnd := weekStart.AddDate(0, 0, DaysPerWeek)
	loc := weekStart.Location()

	grid := WeekGrid{WeekStart: weekStart}
	for _, l := range listings {
		if l.Club == nil {
			continue
		}
		for _, occ := range l.Club.Schedule().Occurrences(weekStart, weekEnd) {
			start := occ.Start.In(loc)
			idx := mondayIndex(start.Weekday())
			grid.Days[idx] = append(grid.Days[idx], Session{
				ClubID:      l.Club.ID(),
				ClubName:    l.Club.Name(),
				TeacherName: l.TeacherName,
				PlaceName:   l.PlaceName,
				Start:       start,
				End:         occ.End.In(loc),
			})
		}
	}

	for i := range grid.Days {
		day := grid.Days[i]
		sort.SliceStable(day, func(a, b int) bool {
			if !day[a].Start.Equal(day[b].Start) {
				return day[a].Start.Before(day[b].Start)
			}
			return day[a].ClubName < day[b].ClubName
		})
	}
	return grid
}

func mondayIndex(d time.Weekday) int {
	return (int(d) + 6) % DaysPerWeek
}
