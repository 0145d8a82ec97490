package catalog

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	domcatalog "venue-desk/internal/domain/catalog"
	"venue-desk/internal/infra"
	"venue-desk/internal/pkg/errs"
	"venue-desk/internal/usecase/shared"
)

var (
	ErrItemNotFound  = errs.New("catalog item not found")
	ErrOwnerRequired = errs.New("areas catalog requires a place")
	ErrOwnerNotFound = errs.New("place not found")
)

type Commands interface {
	List(ctx context.Context, kind domcatalog.Kind, owner *uuid.UUID) ([]domcatalog.Item, error)
	// Add creates a placeholder-named item when name is empty.
	Add(ctx context.Context, kind domcatalog.Kind, owner *uuid.UUID, name string) (domcatalog.Item, error)
	Rename(ctx context.Context, kind domcatalog.Kind, owner *uuid.UUID, id uuid.UUID, name string) error
	Remove(ctx context.Context, kind domcatalog.Kind, owner *uuid.UUID, id uuid.UUID, confirm shared.ConfirmFunc) error
}

type commandsImpl struct {
	uow    shared.UnitOfWork
	cache  shared.AvailabilityCache
	logger *slog.Logger
}

func NewCatalogCommands(uow shared.UnitOfWork, cache shared.AvailabilityCache, logger *slog.Logger) Commands {
	return &commandsImpl{uow: uow, cache: cache, logger: logger}
}

func (c *commandsImpl) List(ctx context.Context, kind domcatalog.Kind, owner *uuid.UUID) ([]domcatalog.Item, error) {
	var items []domcatalog.Item
	err := c.uow.WithinReadOnly(ctx, func(ctx context.Context, tx shared.Tx) error {
		list, err := c.load(ctx, tx, kind, owner)
		if err != nil {
			return err
		}
		items = list.Items()
		return nil
	})
	return items, err
}

func (c *commandsImpl) Add(ctx context.Context, kind domcatalog.Kind, owner *uuid.UUID, name string) (domcatalog.Item, error) {
	var item domcatalog.Item
	err := c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		list, err := c.load(ctx, tx, kind, owner)
		if err != nil {
			return err
		}
		if name == "" {
			item, err = list.Add(ctx)
		} else {
			item, err = list.AddNamed(ctx, name)
		}
		return mapStoreErr(err)
	})
	if err != nil {
		return domcatalog.Item{}, err
	}
	c.invalidate(ctx, kind)
	return item, nil
}

func (c *commandsImpl) Rename(ctx context.Context, kind domcatalog.Kind, owner *uuid.UUID, id uuid.UUID, name string) error {
	err := c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		list, err := c.load(ctx, tx, kind, owner)
		if err != nil {
			return err
		}
		idx := list.IndexOf(id)
		if idx < 0 {
			return ErrItemNotFound
		}
		return mapStoreErr(list.Rename(ctx, idx, name))
	})
	if err != nil {
		return err
	}
	c.invalidate(ctx, kind)
	return nil
}

func (c *commandsImpl) Remove(ctx context.Context, kind domcatalog.Kind, owner *uuid.UUID, id uuid.UUID, confirm shared.ConfirmFunc) error {
	err := c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		list, err := c.load(ctx, tx, kind, owner)
		if err != nil {
			return err
		}
		idx := list.IndexOf(id)
		if idx < 0 {
			return ErrItemNotFound
		}
		return mapStoreErr(list.Remove(ctx, idx, confirm))
	})
	if err != nil {
		return err
	}
	c.invalidate(ctx, kind)
	return nil
}

func (c *commandsImpl) load(ctx context.Context, tx shared.Tx, kind domcatalog.Kind, owner *uuid.UUID) (*List, error) {
	if kind.Scoped() && owner == nil {
		return nil, ErrOwnerRequired
	}
	store, err := tx.Catalog(kind, owner)
	if err != nil {
		return nil, err
	}
	list, err := Load(ctx, store)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrOwnerNotFound
		}
		return nil, err
	}
	return list, nil
}

// Places and areas feed the availability search.
func (c *commandsImpl) invalidate(ctx context.Context, kind domcatalog.Kind) {
	if kind != domcatalog.KindPlaces && kind != domcatalog.KindAreas {
		return
	}
	if err := c.cache.Invalidate(ctx); err != nil {
		c.logger.Warn("failed to invalidate availability cache", "kind", kind.String(), "error", err.Error())
	}
}

func mapStoreErr(err error) error {
	switch {
	case err == nil:
		return nil
	case infra.IsKind(err, infra.KindDuplicateKey):
		return errs.Mark(err, domcatalog.ErrDuplicateName)
	case infra.IsKind(err, infra.KindNotFound):
		return errs.Mark(err, ErrItemNotFound)
	default:
		return err
	}
}
