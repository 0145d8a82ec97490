package commands

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"venue-desk/internal/domain/event"
	"venue-desk/internal/domain/reservation"
	"venue-desk/internal/infra"
	"venue-desk/internal/pkg/clock"
	"venue-desk/internal/pkg/errs"
	"venue-desk/internal/usecase/shared"
)

var (
	ErrPlaceNotFound       = errs.New("place not found")
	ErrReservationNotFound = errs.New("reservation not found")
)

type CreateReservationRequest struct {
	// Event created together with the reservation
	Title       string
	Scope       string
	TypeID      *uuid.UUID
	Description string

	PlaceID uuid.UUID
	// Empty reserves the whole place
	AreaIDs []uuid.UUID
	StartAt time.Time
	EndAt   time.Time
	Comment string
}

type CreateReservationResult struct {
	ReservationID uuid.UUID
	EventID       uuid.UUID
}

type ReservationCommands interface {
	Create(ctx context.Context, req CreateReservationRequest) (*CreateReservationResult, error)
	// Delete removes the reservation; its event stays.
	Delete(ctx context.Context, id uuid.UUID, confirmFn shared.ConfirmFunc) error
}

type reservationCommandsImpl struct {
	uow      shared.UnitOfWork
	resolver *reservation.Resolver
	cache    shared.AvailabilityCache
	clock    clock.Clock
	logger   *slog.Logger
}

func NewReservationCommands(
	uow shared.UnitOfWork,
	resolver *reservation.Resolver,
	cache shared.AvailabilityCache,
	clk clock.Clock,
	logger *slog.Logger,
) ReservationCommands {
	return &reservationCommandsImpl{
		uow:      uow,
		resolver: resolver,
		cache:    cache,
		clock:    clk,
		logger:   logger,
	}
}

func (uc *reservationCommandsImpl) Create(ctx context.Context, req CreateReservationRequest) (*CreateReservationResult, error) {
	slot, err := reservation.NewTimeSlot(req.StartAt, req.EndAt)
	if err != nil {
		return nil, err
	}
	if err = slot.ValidateNotPastAt(uc.clock.Now()); err != nil {
		return nil, err
	}
	comment, err := reservation.NewComment(req.Comment)
	if err != nil {
		return nil, err
	}
	scope, err := event.NewScope(req.Scope)
	if err != nil {
		return nil, err
	}
	ev, err := event.NewEvent(event.Params{
		Title:       req.Title,
		Scope:       scope,
		TypeID:      req.TypeID,
		StartAt:     slot.Start(),
		Description: req.Description,
	})
	if err != nil {
		return nil, err
	}

	var res *reservation.Reservation
	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		schedule, derr := tx.Places().ScheduleByID(ctx, req.PlaceID)
		if derr != nil {
			if infra.IsKind(derr, infra.KindNotFound) {
				return ErrPlaceNotFound
			}
			return derr
		}

		res, derr = reservation.NewReservation(ev.ID(), schedule.Place, req.AreaIDs, slot, comment)
		if derr != nil {
			return derr
		}
		if !uc.resolver.CanReserve(schedule, slot, res.AreaIDs()) {
			return reservation.ErrPlaceBusy
		}

		if derr = tx.Events().Create(ctx, ev); derr != nil {
			return mapRefErr(derr)
		}
		return mapRefErr(tx.Reservations().Create(ctx, res))
	})
	if err != nil {
		return nil, err
	}

	invalidateAvailability(ctx, uc.cache, uc.logger)
	uc.logger.Info("reservation created",
		"reservation_id", res.ID(),
		"event_id", ev.ID(),
		"place_id", res.PlaceID(),
		"areas", len(res.AreaIDs()))

	return &CreateReservationResult{ReservationID: res.ID(), EventID: ev.ID()}, nil
}

func (uc *reservationCommandsImpl) Delete(ctx context.Context, id uuid.UUID, confirmFn shared.ConfirmFunc) error {
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		snap, derr := tx.Reservations().FindByID(ctx, id)
		if derr != nil {
			if infra.IsKind(derr, infra.KindNotFound) {
				return ErrReservationNotFound
			}
			return derr
		}

		subject := fmt.Sprintf("%s, %s, %s", snap.EventTitle, snap.PlaceName, snap.StartAt.Format("02.01.2006 15:04"))
		if derr = confirm(confirmFn, subject); derr != nil {
			return derr
		}

		if derr = tx.Reservations().Delete(ctx, id); derr != nil {
			if infra.IsKind(derr, infra.KindNotFound) {
				return ErrReservationNotFound
			}
			return derr
		}
		return nil
	})
	if err != nil {
		return err
	}

	invalidateAvailability(ctx, uc.cache, uc.logger)
	return nil
}
