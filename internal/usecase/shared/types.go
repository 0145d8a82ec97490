package shared

import (
	"context"
	"time"

	"github.com/google/uuid"

	"venue-desk/internal/pkg/errs"
)

// ErrNotConfirmed is returned when the operator declines a destructive action.
var ErrNotConfirmed = errs.New("operation was not confirmed")

// ConfirmFunc asks the operator to approve a destructive action on subject.
type ConfirmFunc func(subject string) bool

// Confirmed builds a ConfirmFunc from an up-front answer.
func Confirmed(answer bool) ConfirmFunc {
	return func(string) bool { return answer }
}

// Minimal snapshot for command read operations
type ReservationSnapshot struct {
	ID         uuid.UUID
	EventID    uuid.UUID
	EventTitle string
	PlaceID    uuid.UUID
	PlaceName  string
	StartAt    time.Time
	EndAt      time.Time
}

// CacheGeneration is the invalidation epoch a cache lookup observed.
type CacheGeneration int64

// NoCacheGeneration is returned when the epoch could not be read; Set ignores it.
const NoCacheGeneration CacheGeneration = -1

// AvailabilityCache stores availability search results until the next booking change.
// Set must be given the generation returned by the Get that missed, so a result
// computed across an Invalidate is written under the retired generation.
type AvailabilityCache interface {
	Get(ctx context.Context, key string, dst any) (CacheGeneration, bool, error)
	Set(ctx context.Context, gen CacheGeneration, key string, value any) error
	Invalidate(ctx context.Context) error
}
