package queries

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"venue-desk/internal/domain/reservation"
	"venue-desk/internal/infra"
	"venue-desk/internal/pkg/clock"
	"venue-desk/internal/pkg/errs"
	"venue-desk/internal/usecase/shared"
)

var ErrPlaceNotFound = errs.New("place not found")

// AvailabilityQueries backs the interval, results and area steps of the reservation wizard.
type AvailabilityQueries interface {
	FindPlaces(ctx context.Context, start, end time.Time) ([]AvailablePlace, error)
	FindAreas(ctx context.Context, placeID uuid.UUID, start, end time.Time) ([]AreaOption, error)
}

type availabilityQueriesImpl struct {
	store    ScheduleStore
	resolver *reservation.Resolver
	cache    shared.AvailabilityCache
	clock    clock.Clock
	logger   *slog.Logger
}

func NewAvailabilityQueries(
	store ScheduleStore,
	resolver *reservation.Resolver,
	cache shared.AvailabilityCache,
	clk clock.Clock,
	logger *slog.Logger,
) AvailabilityQueries {
	return &availabilityQueriesImpl{
		store:    store,
		resolver: resolver,
		cache:    cache,
		clock:    clk,
		logger:   logger,
	}
}

func (q *availabilityQueriesImpl) FindPlaces(ctx context.Context, start, end time.Time) ([]AvailablePlace, error) {
	slot, err := q.interval(start, end)
	if err != nil {
		return nil, err
	}

	key := q.key("places", uuid.Nil, slot)
	var cached []AvailablePlace
	gen, hit := q.lookup(ctx, key, &cached)
	if hit {
		return cached, nil
	}

	schedules, err := q.store.AllSchedules(ctx)
	if err != nil {
		return nil, err
	}

	places := q.resolver.FindAvailablePlaces(slot, schedules)
	out := make([]AvailablePlace, 0, len(places))
	for _, p := range places {
		out = append(out, AvailablePlace{ID: p.ID(), Name: p.Name(), HasAreas: p.HasAreas()})
	}

	q.remember(ctx, gen, key, out)
	return out, nil
}

func (q *availabilityQueriesImpl) FindAreas(ctx context.Context, placeID uuid.UUID, start, end time.Time) ([]AreaOption, error) {
	slot, err := q.interval(start, end)
	if err != nil {
		return nil, err
	}

	key := q.key("areas", placeID, slot)
	var cached []AreaOption
	gen, hit := q.lookup(ctx, key, &cached)
	if hit {
		return cached, nil
	}

	schedule, err := q.store.Schedule(ctx, placeID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrPlaceNotFound
		}
		return nil, err
	}

	areas := q.resolver.FindAvailableAreas(schedule, slot)
	out := make([]AreaOption, 0, len(areas))
	for _, a := range areas {
		out = append(out, AreaOption{ID: a.Area.ID(), Name: a.Area.Name(), Enabled: a.Enabled})
	}

	q.remember(ctx, gen, key, out)
	return out, nil
}

// interval applies the wizard's first step: start before end, not in the past.
func (q *availabilityQueriesImpl) interval(start, end time.Time) (reservation.TimeSlot, error) {
	slot, err := reservation.NewTimeSlot(start, end)
	if err != nil {
		return reservation.TimeSlot{}, err
	}
	if err := slot.ValidateNotPastAt(q.clock.Now()); err != nil {
		return reservation.TimeSlot{}, err
	}
	return slot, nil
}

func (q *availabilityQueriesImpl) key(kind string, placeID uuid.UUID, slot reservation.TimeSlot) string {
	return fmt.Sprintf("%s:%s:%s:%d:%d", kind, q.resolver.Policy(), placeID, slot.Start().UnixNano(), slot.End().UnixNano())
}

// Cache failures never fail a search. The returned generation is the one
// a miss must be remembered under.
func (q *availabilityQueriesImpl) lookup(ctx context.Context, key string, dst any) (shared.CacheGeneration, bool) {
	gen, hit, err := q.cache.Get(ctx, key, dst)
	if err != nil {
		q.logger.Warn("availability cache read failed", "key", key, "error", err.Error())
		return shared.NoCacheGeneration, false
	}
	return gen, hit
}

func (q *availabilityQueriesImpl) remember(ctx context.Context, gen shared.CacheGeneration, key string, value any) {
	if gen == shared.NoCacheGeneration {
		return
	}
	if err := q.cache.Set(ctx, gen, key, value); err != nil {
		q.logger.Warn("availability cache write failed", "key", key, "error", err.Error())
	}
}
