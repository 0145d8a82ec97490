//go:build unit

package catalog_test

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	domcatalog "venue-desk/internal/domain/catalog"
	"venue-desk/internal/infra"
	"venue-desk/internal/pkg/errs"
	"venue-desk/internal/usecase/catalog"
	"venue-desk/internal/usecase/shared"
	sharedmock "venue-desk/tests/mock/shared"
)

type serviceFixture struct {
	uow   *sharedmock.MockUnitOfWork
	tx    *sharedmock.MockTx
	store *sharedmock.MockCatalogStore
	cache *sharedmock.MockAvailabilityCache
	uc    catalog.Commands
}

func newServiceFixture(t *testing.T) serviceFixture {
	ctrl := gomock.NewController(t)
	f := serviceFixture{
		uow:   sharedmock.NewMockUnitOfWork(ctrl),
		tx:    sharedmock.NewMockTx(ctrl),
		store: sharedmock.NewMockCatalogStore(ctrl),
		cache: sharedmock.NewMockAvailabilityCache(ctrl),
	}
	run := func(ctx context.Context, fn func(context.Context, shared.Tx) error) error {
		return fn(ctx, f.tx)
	}
	f.uow.EXPECT().Within(gomock.Any(), gomock.Any()).DoAndReturn(run).AnyTimes()
	f.uow.EXPECT().WithinReadOnly(gomock.Any(), gomock.Any()).DoAndReturn(run).AnyTimes()
	f.uc = catalog.NewCatalogCommands(f.uow, f.cache, slog.New(slog.NewTextHandler(io.Discard, nil)))
	return f
}

func TestCommands_List(t *testing.T) {
	f := newServiceFixture(t)
	items := []domcatalog.Item{item("Иванов"), item("Петрова")}
	f.tx.EXPECT().Catalog(domcatalog.KindTeachers, nil).Return(f.store, nil)
	f.store.EXPECT().List(gomock.Any()).Return(items, nil)

	got, err := f.uc.List(context.Background(), domcatalog.KindTeachers, nil)

	require.NoError(t, err)
	assert.Equal(t, items, got)
}

func TestCommands_Add(t *testing.T) {
	t.Run("places change drops cached availability", func(t *testing.T) {
		f := newServiceFixture(t)
		created := item("Object (1)")
		f.tx.EXPECT().Catalog(domcatalog.KindPlaces, nil).Return(f.store, nil)
		f.store.EXPECT().List(gomock.Any()).Return(nil, nil)
		f.store.EXPECT().Insert(gomock.Any(), "Object (1)").Return(created, nil)
		f.cache.EXPECT().Invalidate(gomock.Any()).Return(nil)

		got, err := f.uc.Add(context.Background(), domcatalog.KindPlaces, nil, "")

		require.NoError(t, err)
		assert.Equal(t, created, got)
	})

	t.Run("teachers change leaves the cache alone", func(t *testing.T) {
		f := newServiceFixture(t)
		created := item("Сидоров")
		f.tx.EXPECT().Catalog(domcatalog.KindTeachers, nil).Return(f.store, nil)
		f.store.EXPECT().List(gomock.Any()).Return(nil, nil)
		f.store.EXPECT().Insert(gomock.Any(), "Сидоров").Return(created, nil)

		_, err := f.uc.Add(context.Background(), domcatalog.KindTeachers, nil, "Сидоров")

		require.NoError(t, err)
	})

	t.Run("error: concurrent duplicate surfaces as duplicate name", func(t *testing.T) {
		f := newServiceFixture(t)
		f.tx.EXPECT().Catalog(domcatalog.KindTeachers, nil).Return(f.store, nil)
		f.store.EXPECT().List(gomock.Any()).Return(nil, nil)
		f.store.EXPECT().Insert(gomock.Any(), "Сидоров").
			Return(domcatalog.Item{}, infra.WrapRepoErr("duplicate", nil, infra.KindDuplicateKey))

		_, err := f.uc.Add(context.Background(), domcatalog.KindTeachers, nil, "Сидоров")

		assert.True(t, errs.Is(err, domcatalog.ErrDuplicateName))
	})

	t.Run("error: areas need a place", func(t *testing.T) {
		f := newServiceFixture(t)

		_, err := f.uc.Add(context.Background(), domcatalog.KindAreas, nil, "Сцена")

		assert.ErrorIs(t, err, catalog.ErrOwnerRequired)
	})

	t.Run("error: unknown place for areas", func(t *testing.T) {
		f := newServiceFixture(t)
		placeID := uuid.New()
		f.tx.EXPECT().Catalog(domcatalog.KindAreas, &placeID).Return(f.store, nil)
		f.store.EXPECT().List(gomock.Any()).
			Return(nil, infra.WrapRepoErr("place not found", nil, infra.KindNotFound))

		_, err := f.uc.Add(context.Background(), domcatalog.KindAreas, &placeID, "Сцена")

		assert.ErrorIs(t, err, catalog.ErrOwnerNotFound)
	})
}

func TestCommands_Remove(t *testing.T) {
	t.Run("error: unknown item", func(t *testing.T) {
		f := newServiceFixture(t)
		f.tx.EXPECT().Catalog(domcatalog.KindClubTypes, nil).Return(f.store, nil)
		f.store.EXPECT().List(gomock.Any()).Return([]domcatalog.Item{item("Спорт")}, nil)

		err := f.uc.Remove(context.Background(), domcatalog.KindClubTypes, nil, uuid.New(), shared.Confirmed(true))

		assert.ErrorIs(t, err, catalog.ErrItemNotFound)
	})

	t.Run("declined removal keeps the item", func(t *testing.T) {
		f := newServiceFixture(t)
		sport := item("Спорт")
		f.tx.EXPECT().Catalog(domcatalog.KindClubTypes, nil).Return(f.store, nil)
		f.store.EXPECT().List(gomock.Any()).Return([]domcatalog.Item{sport}, nil)

		err := f.uc.Remove(context.Background(), domcatalog.KindClubTypes, nil, sport.ID, shared.Confirmed(false))

		assert.ErrorIs(t, err, shared.ErrNotConfirmed)
	})

	t.Run("success", func(t *testing.T) {
		f := newServiceFixture(t)
		sport := item("Спорт")
		f.tx.EXPECT().Catalog(domcatalog.KindClubTypes, nil).Return(f.store, nil)
		f.store.EXPECT().List(gomock.Any()).Return([]domcatalog.Item{sport}, nil)
		f.store.EXPECT().Delete(gomock.Any(), sport.ID).Return(nil)

		err := f.uc.Remove(context.Background(), domcatalog.KindClubTypes, nil, sport.ID, shared.Confirmed(true))

		assert.NoError(t, err)
	})
}

func TestCommands_Rename(t *testing.T) {
	f := newServiceFixture(t)
	hall := item("Зал")
	f.tx.EXPECT().Catalog(domcatalog.KindPlaces, nil).Return(f.store, nil)
	f.store.EXPECT().List(gomock.Any()).Return([]domcatalog.Item{hall}, nil)
	f.store.EXPECT().Rename(gomock.Any(), hall.ID, "Большой зал").Return(nil)
	f.cache.EXPECT().Invalidate(gomock.Any()).Return(assert.AnError)

	err := f.uc.Rename(context.Background(), domcatalog.KindPlaces, nil, hall.ID, "Большой зал")

	assert.NoError(t, err)
}
