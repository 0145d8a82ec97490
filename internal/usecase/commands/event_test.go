//go:build unit

package commands_test

import (
	"context"
	"testing"

	"venue-desk/internal/domain/event"
	"venue-desk/internal/infra"
	"venue-desk/internal/usecase/commands"
	"venue-desk/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestEventCommands_Create(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		m := newTxMocks(ctrl)
		m.events.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil)

		id, err := commands.NewEventCommands(m.uow, m.cache, discardLogger()).Create(context.Background(), commands.CreateEventRequest{
			Title:   "Лекция",
			Scope:   "enlightenment",
			StartAt: testNow,
		})

		require.NoError(t, err)
		assert.NotEqual(t, uuid.Nil, id)
	})

	t.Run("error: unknown scope", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		m := newTxMocks(ctrl)

		_, err := commands.NewEventCommands(m.uow, m.cache, discardLogger()).Create(context.Background(), commands.CreateEventRequest{
			Title:   "Лекция",
			Scope:   "sport",
			StartAt: testNow,
		})

		assert.ErrorIs(t, err, event.ErrInvalidScope)
	})
}

func TestEventCommands_Update(t *testing.T) {
	existing := func() *event.Event {
		return event.ReconstructEvent(uuid.New(), "Лекция", event.ScopeEducation, nil, testNow, "", testNow)
	}

	t.Run("partial update keeps untouched fields", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		m := newTxMocks(ctrl)
		ev := existing()
		title := "Открытая лекция"

		m.events.EXPECT().FindByID(gomock.Any(), ev.ID()).Return(ev, nil)
		m.events.EXPECT().Update(gomock.Any(), ev).Return(nil)

		err := commands.NewEventCommands(m.uow, m.cache, discardLogger()).
			Update(context.Background(), ev.ID(), commands.UpdateEventRequest{Title: &title})

		require.NoError(t, err)
		assert.Equal(t, title, ev.Title())
		assert.Equal(t, event.ScopeEducation, ev.Scope())
		assert.True(t, ev.StartAt().Equal(testNow))
	})

	t.Run("clear type", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		m := newTxMocks(ctrl)
		typeID := uuid.New()
		ev := event.ReconstructEvent(uuid.New(), "Лекция", event.ScopeEducation, &typeID, testNow, "", testNow)

		m.events.EXPECT().FindByID(gomock.Any(), ev.ID()).Return(ev, nil)
		m.events.EXPECT().Update(gomock.Any(), ev).Return(nil)

		err := commands.NewEventCommands(m.uow, m.cache, discardLogger()).
			Update(context.Background(), ev.ID(), commands.UpdateEventRequest{ClearType: true})

		require.NoError(t, err)
		assert.Nil(t, ev.TypeID())
	})

	t.Run("error: missing event", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		m := newTxMocks(ctrl)
		id := uuid.New()

		m.events.EXPECT().FindByID(gomock.Any(), id).
			Return(nil, infra.WrapRepoErr("event not found", nil, infra.KindNotFound))

		err := commands.NewEventCommands(m.uow, m.cache, discardLogger()).
			Update(context.Background(), id, commands.UpdateEventRequest{})

		assert.ErrorIs(t, err, commands.ErrEventNotFound)
	})
}

func TestEventCommands_DeleteMany(t *testing.T) {
	ids := []uuid.UUID{uuid.New(), uuid.New()}

	t.Run("success: deletes and drops cached availability", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		m := newTxMocks(ctrl)

		m.events.EXPECT().DeleteMany(gomock.Any(), ids).Return(int64(2), nil)
		m.cache.EXPECT().Invalidate(gomock.Any()).Return(nil)

		var asked string
		n, err := commands.NewEventCommands(m.uow, m.cache, discardLogger()).
			DeleteMany(context.Background(), ids, func(subject string) bool {
				asked = subject
				return true
			})

		require.NoError(t, err)
		assert.Equal(t, int64(2), n)
		assert.Equal(t, "2 мероприятий", asked)
	})

	t.Run("error: declined", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		m := newTxMocks(ctrl)

		_, err := commands.NewEventCommands(m.uow, m.cache, discardLogger()).
			DeleteMany(context.Background(), ids, shared.Confirmed(false))

		assert.ErrorIs(t, err, shared.ErrNotConfirmed)
	})

	t.Run("error: nothing selected", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		m := newTxMocks(ctrl)

		_, err := commands.NewEventCommands(m.uow, m.cache, discardLogger()).
			DeleteMany(context.Background(), nil, shared.Confirmed(true))

		assert.ErrorIs(t, err, commands.ErrNothingSelected)
	})
}

func TestEventCommands_CreateMissingStart(t *testing.T) {
	ctrl := gomock.NewController(t)
	m := newTxMocks(ctrl)

	_, err := commands.NewEventCommands(m.uow, m.cache, discardLogger()).Create(context.Background(), commands.CreateEventRequest{
		Title: "Лекция",
		Scope: "education",
	})

	assert.ErrorIs(t, err, event.ErrMissingStartTime)
}
