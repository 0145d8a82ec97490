//go:build unit

package commands_test

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"venue-desk/internal/domain/place"
	"venue-desk/internal/domain/reservation"
	"venue-desk/internal/infra"
	"venue-desk/internal/pkg/clock"
	"venue-desk/internal/usecase/commands"
	"venue-desk/internal/usecase/shared"
	sharedmock "venue-desk/tests/mock/shared"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var testNow = time.Date(2030, 3, 1, 9, 0, 0, 0, time.UTC)

type txMocks struct {
	uow          *sharedmock.MockUnitOfWork
	tx           *sharedmock.MockTx
	places       *sharedmock.MockPlaceRepository
	reservations *sharedmock.MockReservationRepository
	events       *sharedmock.MockEventRepository
	assignments  *sharedmock.MockAssignmentRepository
	clubs        *sharedmock.MockClubRepository
	cache        *sharedmock.MockAvailabilityCache
}

// newTxMocks wires a unit of work that runs its callback against one mocked Tx.
func newTxMocks(ctrl *gomock.Controller) *txMocks {
	m := &txMocks{
		uow:          sharedmock.NewMockUnitOfWork(ctrl),
		tx:           sharedmock.NewMockTx(ctrl),
		places:       sharedmock.NewMockPlaceRepository(ctrl),
		reservations: sharedmock.NewMockReservationRepository(ctrl),
		events:       sharedmock.NewMockEventRepository(ctrl),
		assignments:  sharedmock.NewMockAssignmentRepository(ctrl),
		clubs:        sharedmock.NewMockClubRepository(ctrl),
		cache:        sharedmock.NewMockAvailabilityCache(ctrl),
	}
	m.uow.EXPECT().Within(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, fn func(context.Context, shared.Tx) error) error {
			return fn(ctx, m.tx)
		}).AnyTimes()
	m.tx.EXPECT().Places().Return(m.places).AnyTimes()
	m.tx.EXPECT().Reservations().Return(m.reservations).AnyTimes()
	m.tx.EXPECT().Events().Return(m.events).AnyTimes()
	m.tx.EXPECT().Assignments().Return(m.assignments).AnyTimes()
	m.tx.EXPECT().Clubs().Return(m.clubs).AnyTimes()
	return m
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func hallWithStage() (*place.Place, place.Area) {
	placeID := uuid.New()
	stage := place.ReconstructArea(uuid.New(), placeID, "Сцена")
	hall := place.ReconstructPlace(placeID, "Актовый зал", []place.Area{
		stage,
		place.ReconstructArea(uuid.New(), placeID, "Партер"),
	}, testNow)
	return hall, stage
}

func mustSlot(t *testing.T, start, end time.Time) reservation.TimeSlot {
	t.Helper()
	slot, err := reservation.NewTimeSlot(start, end)
	require.NoError(t, err)
	return slot
}

func TestReservationCommands_Create(t *testing.T) {
	start := testNow.Add(24 * time.Hour)
	end := start.Add(2 * time.Hour)

	newRequest := func(placeID uuid.UUID, areaIDs ...uuid.UUID) commands.CreateReservationRequest {
		return commands.CreateReservationRequest{
			Title:   "Весенний концерт",
			Scope:   "entertainment",
			PlaceID: placeID,
			AreaIDs: areaIDs,
			StartAt: start,
			EndAt:   end,
		}
	}

	t.Run("success: creates event and reservation then drops cached availability", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		m := newTxMocks(ctrl)
		hall, stage := hallWithStage()

		m.places.EXPECT().ScheduleByID(gomock.Any(), hall.ID()).
			Return(reservation.PlaceSchedule{Place: hall}, nil)
		m.events.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil)
		m.reservations.EXPECT().Create(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, res *reservation.Reservation) error {
				assert.Equal(t, hall.ID(), res.PlaceID())
				assert.Equal(t, []uuid.UUID{stage.ID()}, res.AreaIDs())
				return nil
			})
		m.cache.EXPECT().Invalidate(gomock.Any()).Return(nil)

		uc := commands.NewReservationCommands(m.uow, reservation.NewResolver(reservation.PolicyOverlap), m.cache, clock.NewMockClock(testNow), discardLogger())
		result, err := uc.Create(context.Background(), newRequest(hall.ID(), stage.ID()))

		require.NoError(t, err)
		assert.NotEqual(t, uuid.Nil, result.ReservationID)
		assert.NotEqual(t, uuid.Nil, result.EventID)
	})

	t.Run("error: busy area is rejected before anything is written", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		m := newTxMocks(ctrl)
		hall, stage := hallWithStage()

		busy := reservation.Booking{Slot: mustSlot(t, start.Add(time.Hour), end.Add(time.Hour)), AreaIDs: []uuid.UUID{stage.ID()}}
		m.places.EXPECT().ScheduleByID(gomock.Any(), hall.ID()).
			Return(reservation.PlaceSchedule{Place: hall, Bookings: []reservation.Booking{busy}}, nil)

		uc := commands.NewReservationCommands(m.uow, reservation.NewResolver(reservation.PolicyOverlap), m.cache, clock.NewMockClock(testNow), discardLogger())
		_, err := uc.Create(context.Background(), newRequest(hall.ID(), stage.ID()))

		assert.ErrorIs(t, err, reservation.ErrPlaceBusy)
	})

	t.Run("error: area from another place", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		m := newTxMocks(ctrl)
		hall, _ := hallWithStage()

		m.places.EXPECT().ScheduleByID(gomock.Any(), hall.ID()).
			Return(reservation.PlaceSchedule{Place: hall}, nil)

		uc := commands.NewReservationCommands(m.uow, reservation.NewResolver(reservation.PolicyOverlap), m.cache, clock.NewMockClock(testNow), discardLogger())
		_, err := uc.Create(context.Background(), newRequest(hall.ID(), uuid.New()))

		assert.ErrorIs(t, err, place.ErrAreaOutsidePlace)
	})

	t.Run("error: unknown place", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		m := newTxMocks(ctrl)
		placeID := uuid.New()

		m.places.EXPECT().ScheduleByID(gomock.Any(), placeID).
			Return(reservation.PlaceSchedule{}, infra.WrapRepoErr("place not found", nil, infra.KindNotFound))

		uc := commands.NewReservationCommands(m.uow, reservation.NewResolver(reservation.PolicyOverlap), m.cache, clock.NewMockClock(testNow), discardLogger())
		_, err := uc.Create(context.Background(), newRequest(placeID))

		assert.ErrorIs(t, err, commands.ErrPlaceNotFound)
	})

	t.Run("error: interval in the past never reaches the database", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uow := sharedmock.NewMockUnitOfWork(ctrl)
		cache := sharedmock.NewMockAvailabilityCache(ctrl)

		uc := commands.NewReservationCommands(uow, reservation.NewResolver(reservation.PolicyOverlap), cache, clock.NewMockClock(testNow), discardLogger())
		req := newRequest(uuid.New())
		req.StartAt = testNow.Add(-time.Hour)
		req.EndAt = testNow.Add(time.Hour)

		_, err := uc.Create(context.Background(), req)

		assert.ErrorIs(t, err, reservation.ErrStartInPast)
	})

	t.Run("error: cache failure does not fail the booking", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		m := newTxMocks(ctrl)
		hall, _ := hallWithStage()

		m.places.EXPECT().ScheduleByID(gomock.Any(), hall.ID()).
			Return(reservation.PlaceSchedule{Place: hall}, nil)
		m.events.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil)
		m.reservations.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil)
		m.cache.EXPECT().Invalidate(gomock.Any()).Return(assert.AnError)

		uc := commands.NewReservationCommands(m.uow, reservation.NewResolver(reservation.PolicyOverlap), m.cache, clock.NewMockClock(testNow), discardLogger())
		_, err := uc.Create(context.Background(), newRequest(hall.ID()))

		assert.NoError(t, err)
	})
}

func TestReservationCommands_Delete(t *testing.T) {
	id := uuid.New()
	snapshot := &shared.ReservationSnapshot{
		ID:         id,
		EventTitle: "Весенний концерт",
		PlaceName:  "Актовый зал",
		StartAt:    time.Date(2030, 3, 2, 18, 0, 0, 0, time.UTC),
	}

	t.Run("success: asks with a readable subject", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		m := newTxMocks(ctrl)

		m.reservations.EXPECT().FindByID(gomock.Any(), id).Return(snapshot, nil)
		m.reservations.EXPECT().Delete(gomock.Any(), id).Return(nil)
		m.cache.EXPECT().Invalidate(gomock.Any()).Return(nil)

		var asked string
		uc := commands.NewReservationCommands(m.uow, reservation.NewResolver(""), m.cache, clock.NewMockClock(testNow), discardLogger())
		err := uc.Delete(context.Background(), id, func(subject string) bool {
			asked = subject
			return true
		})

		require.NoError(t, err)
		assert.Equal(t, "Весенний концерт, Актовый зал, 02.03.2030 18:00", asked)
	})

	t.Run("error: declined confirmation deletes nothing", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		m := newTxMocks(ctrl)

		m.reservations.EXPECT().FindByID(gomock.Any(), id).Return(snapshot, nil)

		uc := commands.NewReservationCommands(m.uow, reservation.NewResolver(""), m.cache, clock.NewMockClock(testNow), discardLogger())
		err := uc.Delete(context.Background(), id, shared.Confirmed(false))

		assert.ErrorIs(t, err, shared.ErrNotConfirmed)
	})

	t.Run("error: missing reservation", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		m := newTxMocks(ctrl)

		m.reservations.EXPECT().FindByID(gomock.Any(), id).
			Return(nil, infra.WrapRepoErr("reservation not found", nil, infra.KindNotFound))

		uc := commands.NewReservationCommands(m.uow, reservation.NewResolver(""), m.cache, clock.NewMockClock(testNow), discardLogger())
		err := uc.Delete(context.Background(), id, shared.Confirmed(true))

		assert.ErrorIs(t, err, commands.ErrReservationNotFound)
	})
}
