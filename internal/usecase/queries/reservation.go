package queries

import (
	"context"

	"github.com/google/uuid"

	"venue-desk/internal/infra"
	"venue-desk/internal/pkg/errs"
)

var ErrReservationNotFound = errs.New("reservation not found")

type ReservationQueries interface {
	GetByID(ctx context.Context, id uuid.UUID) (*ReservationView, error)
	List(ctx context.Context, filters ReservationFilters, cursor *Cursor, limit int) ([]*ReservationView, *Cursor, error)
}

type reservationQueriesImpl struct {
	store ReservationReadStore
}

func NewReservationQueries(store ReservationReadStore) ReservationQueries {
	return &reservationQueriesImpl{store: store}
}

func (q *reservationQueriesImpl) GetByID(ctx context.Context, id uuid.UUID) (*ReservationView, error) {
	rv, err := q.store.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrReservationNotFound
		}
		return nil, err
	}
	return rv, nil
}

func (q *reservationQueriesImpl) List(ctx context.Context, filters ReservationFilters, cursor *Cursor, limit int) ([]*ReservationView, *Cursor, error) {
	limit = ValidateLimit(limit)
	page, err := pageFor(cursor, limit)
	if err != nil {
		return nil, nil, err
	}
	rows, err := q.store.List(ctx, filters, page)
	if err != nil {
		return nil, nil, err
	}
	rows, next := trimPage(rows, limit, func(v *ReservationView) Keyset {
		return Keyset{CreatedAt: v.CreatedAt, ID: v.ID}
	})
	return rows, next, nil
}
