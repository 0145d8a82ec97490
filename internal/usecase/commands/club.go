package commands

import (
	"context"
	"time"

	"github.com/google/uuid"

	"venue-desk/internal/domain/club"
	"venue-desk/internal/infra"
	"venue-desk/internal/pkg/errs"
	"venue-desk/internal/pkg/patch"
	"venue-desk/internal/usecase/shared"
)

var ErrClubNotFound = errs.New("club not found")

type CreateClubRequest struct {
	Name            string
	TypeID          *uuid.UUID
	TeacherID       *uuid.UUID
	PlaceID         *uuid.UUID
	RRule           string
	FirstStartAt    time.Time
	DurationMinutes int
}

// UpdateClubRequest is a partial update; nil fields keep their value.
type UpdateClubRequest struct {
	Name            *string
	TypeID          *uuid.UUID
	ClearType       bool
	TeacherID       *uuid.UUID
	ClearTeacher    bool
	PlaceID         *uuid.UUID
	ClearPlace      bool
	RRule           *string
	FirstStartAt    *time.Time
	DurationMinutes *int
}

type ClubCommands interface {
	Create(ctx context.Context, req CreateClubRequest) (uuid.UUID, error)
	Update(ctx context.Context, id uuid.UUID, req UpdateClubRequest) error
	Delete(ctx context.Context, id uuid.UUID, confirmFn shared.ConfirmFunc) error
}

type clubCommandsImpl struct {
	uow shared.UnitOfWork
}

func NewClubCommands(uow shared.UnitOfWork) ClubCommands {
	return &clubCommandsImpl{uow: uow}
}

func (uc *clubCommandsImpl) Create(ctx context.Context, req CreateClubRequest) (uuid.UUID, error) {
	schedule, err := club.NewSchedule(req.RRule, req.FirstStartAt, minutes(req.DurationMinutes))
	if err != nil {
		return uuid.Nil, err
	}
	c, err := club.NewClub(club.Params{
		Name:      req.Name,
		TypeID:    req.TypeID,
		TeacherID: req.TeacherID,
		PlaceID:   req.PlaceID,
		Schedule:  schedule,
	})
	if err != nil {
		return uuid.Nil, err
	}

	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return mapRefErr(tx.Clubs().Create(ctx, c))
	})
	if err != nil {
		return uuid.Nil, err
	}
	return c.ID(), nil
}

func (uc *clubCommandsImpl) Update(ctx context.Context, id uuid.UUID, req UpdateClubRequest) error {
	return uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		c, derr := tx.Clubs().FindByID(ctx, id)
		if derr != nil {
			if infra.IsKind(derr, infra.KindNotFound) {
				return ErrClubNotFound
			}
			return derr
		}

		current := c.Schedule()
		duration := current.Duration()
		if req.DurationMinutes != nil {
			duration = minutes(*req.DurationMinutes)
		}
		schedule, derr := club.NewSchedule(
			patch.Coalesce(req.RRule, current.Rule()),
			patch.Coalesce(req.FirstStartAt, current.StartAt()),
			duration,
		)
		if derr != nil {
			return derr
		}

		derr = c.Update(club.Params{
			Name:      patch.Coalesce(req.Name, c.Name()),
			TypeID:    patch.Nullable(req.TypeID, req.ClearType, c.TypeID()),
			TeacherID: patch.Nullable(req.TeacherID, req.ClearTeacher, c.TeacherID()),
			PlaceID:   patch.Nullable(req.PlaceID, req.ClearPlace, c.PlaceID()),
			Schedule:  schedule,
		})
		if derr != nil {
			return derr
		}
		return mapRefErr(tx.Clubs().Update(ctx, c))
	})
}

func (uc *clubCommandsImpl) Delete(ctx context.Context, id uuid.UUID, confirmFn shared.ConfirmFunc) error {
	return uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		c, derr := tx.Clubs().FindByID(ctx, id)
		if derr != nil {
			if infra.IsKind(derr, infra.KindNotFound) {
				return ErrClubNotFound
			}
			return derr
		}
		if derr = confirm(confirmFn, c.Name()); derr != nil {
			return derr
		}
		return tx.Clubs().Delete(ctx, id)
	})
}

func minutes(n int) time.Duration {
	return time.Duration(n) * time.Minute
}
