package queries

import (
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"

	"venue-desk/internal/domain/assignment"
	"venue-desk/internal/domain/event"
)

// DisplayTimeLayout renders dates as dd.mm.yyyy HH:MM.
const DisplayTimeLayout = "02.01.2006 15:04"

// Table is a header row of column display names plus one row of display strings per record.
type Table struct {
	Name    string
	Columns []string
	Rows    [][]string
}

type CalendarEntry struct {
	UID         string
	Summary     string
	Description string
	Location    string
	Start       time.Time
	End         time.Time
}

func displayTime(t time.Time, loc *time.Location) string {
	if t.IsZero() {
		return ""
	}
	return t.In(loc).Format(DisplayTimeLayout)
}

func EventsTable(rows []*EventView, loc *time.Location) Table {
	t := Table{
		Name:    "events",
		Columns: []string{"Заголовок", "Пространство", "Вид", "Дата начала", "Описание", "Дата создания"},
	}
	for _, v := range rows {
		t.Rows = append(t.Rows, []string{
			v.Title,
			event.Scope(v.Scope).Label(),
			v.TypeName,
			displayTime(v.StartAt, loc),
			v.Description,
			displayTime(v.CreatedAt, loc),
		})
	}
	return t
}

func AssignmentsTable(rows []*AssignmentView, loc *time.Location) Table {
	t := Table{
		Name:    "assignments",
		Columns: []string{"Локация", "Вид", "Мероприятие", "Статус", "Дедлайн", "Дата создания", "Описание"},
	}
	for _, v := range rows {
		t.Rows = append(t.Rows, []string{
			v.PlaceName,
			v.TypeName,
			v.EventTitle,
			assignment.State(v.State).Label(),
			displayTime(v.Deadline, loc),
			displayTime(v.CreatedAt, loc),
			v.Description,
		})
	}
	return t
}

// DesktopTable is the assignments table without the state column.
func DesktopTable(rows []*AssignmentView, loc *time.Location) Table {
	t := Table{
		Name:    "desktop",
		Columns: []string{"Локация", "Вид", "Мероприятие", "Дедлайн", "Дата создания", "Описание"},
	}
	for _, v := range rows {
		t.Rows = append(t.Rows, []string{
			v.PlaceName,
			v.TypeName,
			v.EventTitle,
			displayTime(v.Deadline, loc),
			displayTime(v.CreatedAt, loc),
			v.Description,
		})
	}
	return t
}

func ReservationsTable(rows []*ReservationView, loc *time.Location) Table {
	t := Table{
		Name:    "reservations",
		Columns: []string{"Мероприятие", "Помещение", "Зоны", "Начало", "Конец", "Комментарий", "Дата создания"},
	}
	for _, v := range rows {
		t.Rows = append(t.Rows, []string{
			v.EventTitle,
			v.PlaceName,
			areaNames(v.Areas),
			displayTime(v.StartAt, loc),
			displayTime(v.EndAt, loc),
			v.Comment,
			displayTime(v.CreatedAt, loc),
		})
	}
	return t
}

func ClubsTable(rows []*ClubView, loc *time.Location) Table {
	t := Table{
		Name:    "clubs",
		Columns: []string{"Название", "Вид", "Преподаватель", "Помещение", "Первое занятие", "Длительность, мин", "Расписание"},
	}
	for _, v := range rows {
		t.Rows = append(t.Rows, []string{
			v.Name,
			v.TypeName,
			v.TeacherName,
			v.PlaceName,
			displayTime(v.FirstStartAt, loc),
			strconv.Itoa(v.DurationMinutes),
			v.RRule,
		})
	}
	return t
}

// WeekTable lays sessions out in weekday columns, Monday first.
func WeekTable(w *WeekView) Table {
	t := Table{Name: "schedule"}
	depth := 0
	for _, d := range w.Days {
		t.Columns = append(t.Columns, d.Name)
		depth = max(depth, len(d.Sessions))
	}
	for i := 0; i < depth; i++ {
		row := make([]string, len(w.Days))
		for d, day := range w.Days {
			if i < len(day.Sessions) {
				row[d] = day.Sessions[i].Label
			}
		}
		t.Rows = append(t.Rows, row)
	}
	return t
}

func reservationEntries(rows []*ReservationView) []CalendarEntry {
	out := make([]CalendarEntry, 0, len(rows))
	for _, v := range rows {
		location := v.PlaceName
		if names := areaNames(v.Areas); names != "" {
			location += " (" + names + ")"
		}
		out = append(out, CalendarEntry{
			UID:         "reservation-" + v.ID.String(),
			Summary:     v.EventTitle,
			Description: v.Comment,
			Location:    location,
			Start:       v.StartAt,
			End:         v.EndAt,
		})
	}
	return out
}

func sessionEntries(w *WeekView) []CalendarEntry {
	var out []CalendarEntry
	for _, d := range w.Days {
		for _, s := range d.Sessions {
			out = append(out, CalendarEntry{
				UID:         sessionUID(s.ClubID, s.Start),
				Summary:     s.ClubName,
				Description: s.TeacherName,
				Location:    s.PlaceName,
				Start:       s.Start,
				End:         s.End,
			})
		}
	}
	return out
}

func sessionUID(clubID uuid.UUID, start time.Time) string {
	return "club-" + clubID.String() + "-" + strconv.FormatInt(start.Unix(), 10)
}

func areaNames(areas []AreaRef) string {
	names := make([]string, 0, len(areas))
	for _, a := range areas {
		names = append(names, a.Name)
	}
	return strings.Join(names, ", ")
}
