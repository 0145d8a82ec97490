//go:build unit

package repository

import (
	"context"
	"testing"
	"time"

	"venue-desk/internal/domain/event"
	"venue-desk/internal/infra"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockDBTX struct {
	mock.Mock
}

func (m *MockDBTX) Exec(ctx context.Context, query string, args ...any) (pgconn.CommandTag, error) {
	mockArgs := m.Called(ctx, query, args)
	return mockArgs.Get(0).(pgconn.CommandTag), mockArgs.Error(1)
}

func (m *MockDBTX) Query(ctx context.Context, query string, args ...any) (pgx.Rows, error) {
	mockArgs := m.Called(ctx, query, args)
	return mockArgs.Get(0).(pgx.Rows), mockArgs.Error(1)
}

func (m *MockDBTX) QueryRow(ctx context.Context, query string, args ...any) pgx.Row {
	mockArgs := m.Called(ctx, query, args)
	return mockArgs.Get(0).(pgx.Row)
}

type errRow struct {
	err error
}

func (r errRow) Scan(...any) error {
	return r.err
}

func newTestEvent(t *testing.T) *event.Event {
	t.Helper()
	ev, err := event.NewEvent(event.Params{
		Title:   "Концерт",
		Scope:   event.ScopeEducation,
		StartAt: time.Date(2030, 3, 1, 18, 0, 0, 0, time.UTC),
	})
	require.NoError(t, err)
	return ev
}

func TestEventRepository_Create(t *testing.T) {
	tests := []struct {
		name     string
		execErr  error
		wantKind infra.RepositoryErrorKind
	}{
		{name: "success"},
		{name: "missing type", execErr: &pgconn.PgError{Code: "23503"}, wantKind: infra.KindForeignKeyViolated},
		{name: "database error", execErr: assert.AnError, wantKind: infra.KindDBFailure},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockDB := new(MockDBTX)
			mockDB.On("Exec", mock.Anything, insertEventSQL, mock.Anything).
				Return(pgconn.NewCommandTag("INSERT 0 1"), tt.execErr)

			err := NewEventRepository(mockDB).Create(context.Background(), newTestEvent(t))

			if tt.wantKind != "" {
				assert.Error(t, err)
				assert.True(t, infra.IsKind(err, tt.wantKind))
			} else {
				assert.NoError(t, err)
			}
			mockDB.AssertExpectations(t)
		})
	}
}

func TestEventRepository_FindByID_NotFound(t *testing.T) {
	id := uuid.New()
	mockDB := new(MockDBTX)
	mockDB.On("QueryRow", mock.Anything, selectEventSQL, []any{id}).Return(errRow{err: pgx.ErrNoRows})

	ev, err := NewEventRepository(mockDB).FindByID(context.Background(), id)

	assert.Nil(t, ev)
	assert.True(t, infra.IsKind(err, infra.KindNotFound))
	mockDB.AssertExpectations(t)
}

func TestEventRepository_Update(t *testing.T) {
	t.Run("missing row is not found", func(t *testing.T) {
		mockDB := new(MockDBTX)
		mockDB.On("Exec", mock.Anything, updateEventSQL, mock.Anything).
			Return(pgconn.NewCommandTag("UPDATE 0"), nil)

		err := NewEventRepository(mockDB).Update(context.Background(), newTestEvent(t))

		assert.True(t, infra.IsKind(err, infra.KindNotFound))
	})

	t.Run("success", func(t *testing.T) {
		mockDB := new(MockDBTX)
		mockDB.On("Exec", mock.Anything, updateEventSQL, mock.Anything).
			Return(pgconn.NewCommandTag("UPDATE 1"), nil)

		assert.NoError(t, NewEventRepository(mockDB).Update(context.Background(), newTestEvent(t)))
	})
}

func TestEventRepository_DeleteMany(t *testing.T) {
	ids := []uuid.UUID{uuid.New(), uuid.New(), uuid.New()}
	mockDB := new(MockDBTX)
	mockDB.On("Exec", mock.Anything, deleteEventsSQL, mock.Anything).
		Return(pgconn.NewCommandTag("DELETE 2"), nil)

	n, err := NewEventRepository(mockDB).DeleteMany(context.Background(), ids)

	require.NoError(t, err)
	assert.Equal(t, int64(2), n)
	mockDB.AssertExpectations(t)
}
