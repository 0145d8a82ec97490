package queries

import (
	"context"

	"github.com/google/uuid"

	"venue-desk/internal/infra"
	"venue-desk/internal/pkg/errs"
)

var ErrEventNotFound = errs.New("event not found")

type EventQueries interface {
	GetByID(ctx context.Context, id uuid.UUID) (*EventView, error)
	List(ctx context.Context, filters EventFilters, cursor *Cursor, limit int) ([]*EventView, *Cursor, error)
}

type eventQueriesImpl struct {
	store EventReadStore
}

func NewEventQueries(store EventReadStore) EventQueries {
	return &eventQueriesImpl{store: store}
}

func (q *eventQueriesImpl) GetByID(ctx context.Context, id uuid.UUID) (*EventView, error) {
	ev, err := q.store.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrEventNotFound
		}
		return nil, err
	}
	return ev, nil
}

func (q *eventQueriesImpl) List(ctx context.Context, filters EventFilters, cursor *Cursor, limit int) ([]*EventView, *Cursor, error) {
	limit = ValidateLimit(limit)
	page, err := pageFor(cursor, limit)
	if err != nil {
		return nil, nil, err
	}
	rows, err := q.store.List(ctx, filters, page)
	if err != nil {
		return nil, nil, err
	}
	rows, next := trimPage(rows, limit, func(v *EventView) Keyset {
		return Keyset{CreatedAt: v.CreatedAt, ID: v.ID}
	})
	return rows, next, nil
}
