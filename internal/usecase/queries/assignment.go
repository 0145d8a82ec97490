package queries

import (
	"context"

	"github.com/google/uuid"

	"venue-desk/internal/domain/assignment"
	"venue-desk/internal/infra"
	"venue-desk/internal/pkg/errs"
)

var ErrAssignmentNotFound = errs.New("assignment not found")

type AssignmentQueries interface {
	GetByID(ctx context.Context, id uuid.UUID) (*AssignmentView, error)
	List(ctx context.Context, filters AssignmentFilters, cursor *Cursor, limit int) ([]*AssignmentView, *Cursor, error)
	// Desktop lists active assignments only; a state filter is ignored.
	Desktop(ctx context.Context, filters AssignmentFilters, cursor *Cursor, limit int) ([]*AssignmentView, *Cursor, error)
}

type assignmentQueriesImpl struct {
	store AssignmentReadStore
}

func NewAssignmentQueries(store AssignmentReadStore) AssignmentQueries {
	return &assignmentQueriesImpl{store: store}
}

func (q *assignmentQueriesImpl) GetByID(ctx context.Context, id uuid.UUID) (*AssignmentView, error) {
	a, err := q.store.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrAssignmentNotFound
		}
		return nil, err
	}
	return a, nil
}

func (q *assignmentQueriesImpl) List(ctx context.Context, filters AssignmentFilters, cursor *Cursor, limit int) ([]*AssignmentView, *Cursor, error) {
	limit = ValidateLimit(limit)
	page, err := pageFor(cursor, limit)
	if err != nil {
		return nil, nil, err
	}
	rows, err := q.store.List(ctx, filters, page)
	if err != nil {
		return nil, nil, err
	}
	rows, next := trimPage(rows, limit, func(v *AssignmentView) Keyset {
		return Keyset{CreatedAt: v.CreatedAt, ID: v.ID}
	})
	return rows, next, nil
}

func (q *assignmentQueriesImpl) Desktop(ctx context.Context, filters AssignmentFilters, cursor *Cursor, limit int) ([]*AssignmentView, *Cursor, error) {
	filters.State = assignment.StateActive.String()
	return q.List(ctx, filters, cursor, limit)
}
