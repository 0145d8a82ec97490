package commands

import (
	"context"
	"log/slog"

	"venue-desk/internal/infra"
	"venue-desk/internal/pkg/errs"
	"venue-desk/internal/usecase/shared"
)

var (
	// ErrReferenceNotFound marks a write that points at a missing event, type, teacher or place.
	ErrReferenceNotFound = errs.New("referenced record not found")
	ErrNothingSelected   = errs.New("no records selected")
)

// mapRefErr turns foreign key violations into ErrReferenceNotFound.
func mapRefErr(err error) error {
	if infra.IsKind(err, infra.KindForeignKeyViolated) {
		return errs.Mark(err, ErrReferenceNotFound)
	}
	return err
}

// confirm asks once; a nil ConfirmFunc counts as declined.
func confirm(fn shared.ConfirmFunc, subject string) error {
	if fn == nil || !fn(subject) {
		return shared.ErrNotConfirmed
	}
	return nil
}

func invalidateAvailability(ctx context.Context, cache shared.AvailabilityCache, logger *slog.Logger) {
	if err := cache.Invalidate(ctx); err != nil {
		logger.Warn("failed to invalidate availability cache", "error", err.Error())
	}
}
