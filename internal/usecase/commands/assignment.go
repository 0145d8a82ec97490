package commands

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"venue-desk/internal/domain/assignment"
	"venue-desk/internal/infra"
	"venue-desk/internal/pkg/errs"
	"venue-desk/internal/pkg/patch"
	"venue-desk/internal/usecase/shared"
)

var ErrAssignmentNotFound = errs.New("assignment not found")

type CreateAssignmentRequest struct {
	Description string
	EventID     *uuid.UUID
	TypeID      *uuid.UUID
	PlaceID     *uuid.UUID
	Deadline    time.Time
	// Empty creates a draft
	State string
}

// UpdateAssignmentRequest is a partial update; nil fields keep their value.
type UpdateAssignmentRequest struct {
	Description *string
	EventID     *uuid.UUID
	ClearEvent  bool
	TypeID      *uuid.UUID
	ClearType   bool
	PlaceID     *uuid.UUID
	ClearPlace  bool
	Deadline    *time.Time
	State       *string
}

type AssignmentCommands interface {
	Create(ctx context.Context, req CreateAssignmentRequest) (uuid.UUID, error)
	Update(ctx context.Context, id uuid.UUID, req UpdateAssignmentRequest) error
	DeleteMany(ctx context.Context, ids []uuid.UUID, confirmFn shared.ConfirmFunc) (int64, error)
	// Complete moves every listed active assignment to completed, or none of them.
	Complete(ctx context.Context, ids []uuid.UUID, confirmFn shared.ConfirmFunc) error
}

type assignmentCommandsImpl struct {
	uow    shared.UnitOfWork
	logger *slog.Logger
}

func NewAssignmentCommands(uow shared.UnitOfWork, logger *slog.Logger) AssignmentCommands {
	return &assignmentCommandsImpl{uow: uow, logger: logger}
}

func (uc *assignmentCommandsImpl) Create(ctx context.Context, req CreateAssignmentRequest) (uuid.UUID, error) {
	var state assignment.State
	if req.State != "" {
		var err error
		if state, err = assignment.NewState(req.State); err != nil {
			return uuid.Nil, err
		}
	}

	a, err := assignment.NewAssignment(assignment.Params{
		Description: req.Description,
		EventID:     req.EventID,
		TypeID:      req.TypeID,
		PlaceID:     req.PlaceID,
		Deadline:    req.Deadline,
	}, state)
	if err != nil {
		return uuid.Nil, err
	}

	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return mapRefErr(tx.Assignments().Create(ctx, a))
	})
	if err != nil {
		return uuid.Nil, err
	}
	return a.ID(), nil
}

func (uc *assignmentCommandsImpl) Update(ctx context.Context, id uuid.UUID, req UpdateAssignmentRequest) error {
	var next assignment.State
	if req.State != nil {
		var err error
		if next, err = assignment.NewState(*req.State); err != nil {
			return err
		}
	}

	return uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		a, derr := tx.Assignments().FindByID(ctx, id)
		if derr != nil {
			if infra.IsKind(derr, infra.KindNotFound) {
				return ErrAssignmentNotFound
			}
			return derr
		}

		derr = a.Update(assignment.Params{
			Description: patch.Coalesce(req.Description, a.Description()),
			EventID:     patch.Nullable(req.EventID, req.ClearEvent, a.EventID()),
			TypeID:      patch.Nullable(req.TypeID, req.ClearType, a.TypeID()),
			PlaceID:     patch.Nullable(req.PlaceID, req.ClearPlace, a.PlaceID()),
			Deadline:    patch.Coalesce(req.Deadline, a.Deadline()),
		})
		if derr != nil {
			return derr
		}
		if next != "" {
			if derr = a.TransitionTo(next); derr != nil {
				return derr
			}
		}
		return mapRefErr(tx.Assignments().Update(ctx, a))
	})
}

func (uc *assignmentCommandsImpl) DeleteMany(ctx context.Context, ids []uuid.UUID, confirmFn shared.ConfirmFunc) (int64, error) {
	if len(ids) == 0 {
		return 0, ErrNothingSelected
	}
	if err := confirm(confirmFn, fmt.Sprintf("%d заявок", len(ids))); err != nil {
		return 0, err
	}

	var deleted int64
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		n, derr := tx.Assignments().DeleteMany(ctx, ids)
		deleted = n
		return derr
	})
	if err != nil {
		return 0, err
	}
	return deleted, nil
}

func (uc *assignmentCommandsImpl) Complete(ctx context.Context, ids []uuid.UUID, confirmFn shared.ConfirmFunc) error {
	ids = uniqueIDs(ids)
	if len(ids) == 0 {
		return ErrNothingSelected
	}
	if err := confirm(confirmFn, fmt.Sprintf("%d заявок", len(ids))); err != nil {
		return err
	}

	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		found, derr := tx.Assignments().FindByIDsForUpdate(ctx, ids)
		if derr != nil {
			return derr
		}
		if len(found) != len(ids) {
			return ErrAssignmentNotFound
		}

		for _, a := range found {
			if derr = a.Complete(); derr != nil {
				return errs.Wrapf(derr, "assignment %s", a.ID())
			}
		}
		for _, a := range found {
			if derr = tx.Assignments().Update(ctx, a); derr != nil {
				return derr
			}
		}
		return nil
	})
	if err != nil {
		return err
	}

	uc.logger.Info("assignments completed", "count", len(ids))
	return nil
}

func uniqueIDs(ids []uuid.UUID) []uuid.UUID {
	seen := make(map[uuid.UUID]struct{}, len(ids))
	out := make([]uuid.UUID, 0, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}
