package commands

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"venue-desk/internal/domain/event"
	"venue-desk/internal/infra"
	"venue-desk/internal/pkg/errs"
	"venue-desk/internal/pkg/patch"
	"venue-desk/internal/usecase/shared"
)

var ErrEventNotFound = errs.New("event not found")

type CreateEventRequest struct {
	Title       string
	Scope       string
	TypeID      *uuid.UUID
	StartAt     time.Time
	Description string
}

// UpdateEventRequest is a partial update; nil fields keep their value.
type UpdateEventRequest struct {
	Title       *string
	Scope       *string
	TypeID      *uuid.UUID
	ClearType   bool
	StartAt     *time.Time
	Description *string
}

type EventCommands interface {
	Create(ctx context.Context, req CreateEventRequest) (uuid.UUID, error)
	Update(ctx context.Context, id uuid.UUID, req UpdateEventRequest) error
	// DeleteMany removes the events and, through them, their reservations.
	DeleteMany(ctx context.Context, ids []uuid.UUID, confirmFn shared.ConfirmFunc) (int64, error)
}

type eventCommandsImpl struct {
	uow    shared.UnitOfWork
	cache  shared.AvailabilityCache
	logger *slog.Logger
}

func NewEventCommands(uow shared.UnitOfWork, cache shared.AvailabilityCache, logger *slog.Logger) EventCommands {
	return &eventCommandsImpl{uow: uow, cache: cache, logger: logger}
}

func (uc *eventCommandsImpl) Create(ctx context.Context, req CreateEventRequest) (uuid.UUID, error) {
	scope, err := event.NewScope(req.Scope)
	if err != nil {
		return uuid.Nil, err
	}
	ev, err := event.NewEvent(event.Params{
		Title:       req.Title,
		Scope:       scope,
		TypeID:      req.TypeID,
		StartAt:     req.StartAt,
		Description: req.Description,
	})
	if err != nil {
		return uuid.Nil, err
	}

	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return mapRefErr(tx.Events().Create(ctx, ev))
	})
	if err != nil {
		return uuid.Nil, err
	}
	return ev.ID(), nil
}

func (uc *eventCommandsImpl) Update(ctx context.Context, id uuid.UUID, req UpdateEventRequest) error {
	return uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		ev, derr := tx.Events().FindByID(ctx, id)
		if derr != nil {
			if infra.IsKind(derr, infra.KindNotFound) {
				return ErrEventNotFound
			}
			return derr
		}

		scope := ev.Scope()
		if req.Scope != nil {
			if scope, derr = event.NewScope(*req.Scope); derr != nil {
				return derr
			}
		}

		derr = ev.Update(event.Params{
			Title:       patch.Coalesce(req.Title, ev.Title()),
			Scope:       scope,
			TypeID:      patch.Nullable(req.TypeID, req.ClearType, ev.TypeID()),
			StartAt:     patch.Coalesce(req.StartAt, ev.StartAt()),
			Description: patch.Coalesce(req.Description, ev.Description()),
		})
		if derr != nil {
			return derr
		}
		return mapRefErr(tx.Events().Update(ctx, ev))
	})
}

func (uc *eventCommandsImpl) DeleteMany(ctx context.Context, ids []uuid.UUID, confirmFn shared.ConfirmFunc) (int64, error) {
	if len(ids) == 0 {
		return 0, ErrNothingSelected
	}
	if err := confirm(confirmFn, fmt.Sprintf("%d мероприятий", len(ids))); err != nil {
		return 0, err
	}

	var deleted int64
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		n, derr := tx.Events().DeleteMany(ctx, ids)
		deleted = n
		return derr
	})
	if err != nil {
		return 0, err
	}

	// Reservations go with their events.
	invalidateAvailability(ctx, uc.cache, uc.logger)
	return deleted, nil
}
