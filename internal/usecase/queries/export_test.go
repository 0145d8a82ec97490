//go:build unit

package queries_test

import (
	"bytes"
	"context"
	"io"
	"testing"
	"time"

	"venue-desk/internal/domain/club"
	"venue-desk/internal/domain/reservation"
	"venue-desk/internal/usecase/queries"
	queriesmock "venue-desk/tests/mock/queries"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type recordingEncoder struct {
	table   queries.Table
	name    string
	entries []queries.CalendarEntry
}

func (e *recordingEncoder) ContentType() string { return "test/plain" }

func (e *recordingEncoder) EncodeTable(w io.Writer, t queries.Table) error {
	e.table = t
	_, err := io.WriteString(w, t.Name)
	return err
}

func (e *recordingEncoder) EncodeCalendar(w io.Writer, name string, entries []queries.CalendarEntry) error {
	e.name = name
	e.entries = entries
	_, err := io.WriteString(w, name)
	return err
}

type exportFixture struct {
	reservations *queriesmock.MockReservationReadStore
	events       *queriesmock.MockEventReadStore
	assignments  *queriesmock.MockAssignmentReadStore
	clubs        *queriesmock.MockClubReadStore
	encoder      *recordingEncoder
	uc           queries.ExportQueries
}

func newExportFixture(t *testing.T, loc *time.Location) exportFixture {
	ctrl := gomock.NewController(t)
	f := exportFixture{
		reservations: queriesmock.NewMockReservationReadStore(ctrl),
		events:       queriesmock.NewMockEventReadStore(ctrl),
		assignments:  queriesmock.NewMockAssignmentReadStore(ctrl),
		clubs:        queriesmock.NewMockClubReadStore(ctrl),
		encoder:      &recordingEncoder{},
	}
	f.uc = queries.NewExportQueries(f.reservations, f.events, f.assignments, f.clubs,
		queries.NewClubQueries(f.clubs, loc), f.encoder, f.encoder, loc)
	return f
}

func TestExportQueries_Events(t *testing.T) {
	f := newExportFixture(t, time.UTC)
	f.events.EXPECT().List(gomock.Any(), queries.EventFilters{}, queries.Page{}).Return([]*queries.EventView{{
		ID:        uuid.New(),
		Title:     "Лекция",
		Scope:     "education",
		TypeName:  "Открытое занятие",
		StartAt:   time.Date(2030, 3, 2, 18, 30, 0, 0, time.UTC),
		CreatedAt: time.Date(2030, 2, 1, 9, 5, 0, 0, time.UTC),
	}}, nil)

	var buf bytes.Buffer
	require.NoError(t, f.uc.Events(context.Background(), queries.EventFilters{}, &buf))

	assert.Equal(t, []string{"Заголовок", "Пространство", "Вид", "Дата начала", "Описание", "Дата создания"}, f.encoder.table.Columns)
	require.Len(t, f.encoder.table.Rows, 1)
	row := f.encoder.table.Rows[0]
	assert.Equal(t, "02.03.2030 18:30", row[3])
	assert.Equal(t, "01.02.2030 09:05", row[5])
	assert.Equal(t, "", row[4])
	assert.Equal(t, "events", buf.String())
}

func TestExportQueries_DesktopForcesActiveState(t *testing.T) {
	f := newExportFixture(t, time.UTC)
	f.assignments.EXPECT().List(gomock.Any(), queries.AssignmentFilters{State: "active"}, queries.Page{}).Return(nil, nil)

	var buf bytes.Buffer
	require.NoError(t, f.uc.Desktop(context.Background(), queries.AssignmentFilters{State: "draft"}, &buf))

	assert.NotContains(t, f.encoder.table.Columns, "Статус")
	assert.Empty(t, f.encoder.table.Rows)
}

func TestExportQueries_ReservationsCalendar(t *testing.T) {
	from := time.Date(2030, 3, 1, 0, 0, 0, 0, time.UTC)
	to := from.AddDate(0, 1, 0)
	id := uuid.New()

	t.Run("areas are folded into the location", func(t *testing.T) {
		f := newExportFixture(t, time.UTC)
		f.reservations.EXPECT().Overlapping(gomock.Any(), from, to).Return([]*queries.ReservationView{{
			ID:         id,
			EventTitle: "Концерт",
			PlaceName:  "Актовый зал",
			Areas:      []queries.AreaRef{{Name: "Сцена"}, {Name: "Партер"}},
			StartAt:    from.Add(18 * time.Hour),
			EndAt:      from.Add(20 * time.Hour),
		}}, nil)

		require.NoError(t, f.uc.ReservationsCalendar(context.Background(), from, to, io.Discard))

		require.Len(t, f.encoder.entries, 1)
		assert.Equal(t, "reservation-"+id.String(), f.encoder.entries[0].UID)
		assert.Equal(t, "Актовый зал (Сцена, Партер)", f.encoder.entries[0].Location)
	})

	t.Run("error: inverted range", func(t *testing.T) {
		f := newExportFixture(t, time.UTC)

		err := f.uc.ReservationsCalendar(context.Background(), to, from, io.Discard)

		assert.ErrorIs(t, err, reservation.ErrInvalidTimeSlot)
	})
}

func TestExportQueries_WeeklySchedule(t *testing.T) {
	loc := time.FixedZone("MSK", 3*60*60)
	monday := time.Date(2030, 3, 4, 0, 0, 0, 0, loc)
	chess, err := club.NewSchedule("FREQ=WEEKLY;BYDAY=MO,WE", monday.Add(18*time.Hour), time.Hour)
	require.NoError(t, err)
	choir, err := club.NewSchedule("FREQ=WEEKLY;BYDAY=MO", monday.Add(10*time.Hour), 2*time.Hour)
	require.NoError(t, err)

	f := newExportFixture(t, loc)
	f.clubs.EXPECT().Listings(gomock.Any()).Return([]club.Listing{
		{Club: club.ReconstructClub(uuid.New(), "Шахматы", nil, nil, nil, chess, monday), TeacherName: "Иванов"},
		{Club: club.ReconstructClub(uuid.New(), "Хор", nil, nil, nil, choir, monday)},
	}, nil).Times(2)

	// any instant inside the week selects it
	within := monday.AddDate(0, 0, 3).Add(15 * time.Hour).UTC()

	require.NoError(t, f.uc.WeeklySchedule(context.Background(), within, io.Discard))

	table := f.encoder.table
	require.Len(t, table.Columns, club.DaysPerWeek)
	assert.Equal(t, "Понедельник", table.Columns[0])
	require.Len(t, table.Rows, 2)
	assert.Equal(t, "10:00–12:00 Хор", table.Rows[0][0])
	assert.Equal(t, "18:00–19:00 Шахматы (Иванов)", table.Rows[1][0])
	assert.Equal(t, "18:00–19:00 Шахматы (Иванов)", table.Rows[0][2])
	assert.Equal(t, "", table.Rows[1][2])

	require.NoError(t, f.uc.WeeklyCalendar(context.Background(), within, io.Discard))
	assert.Equal(t, "Расписание секций", f.encoder.name)
	assert.Len(t, f.encoder.entries, 3)
}
