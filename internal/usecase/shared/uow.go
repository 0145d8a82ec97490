package shared

import (
	"context"

	"github.com/google/uuid"

	"venue-desk/internal/domain/assignment"
	"venue-desk/internal/domain/catalog"
	"venue-desk/internal/domain/club"
	"venue-desk/internal/domain/event"
	"venue-desk/internal/domain/reservation"
	"venue-desk/internal/infra/db"
)

type UnitOfWork interface {
	// Within: Full transaction for write operations with retry logic
	Within(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
	// WithinReadOnly: Read-only transaction for multi-table consistent reads
	WithinReadOnly(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
}

// Tx exposes repositories bound to one transaction.
type Tx interface {
	Places() PlaceRepository
	Reservations() ReservationRepository
	Events() EventRepository
	Assignments() AssignmentRepository
	Clubs() ClubRepository
	// Catalog returns the store for a named list; owner is the place for areas.
	Catalog(kind catalog.Kind, owner *uuid.UUID) (CatalogStore, error)
	DB() db.DBTX
}

type PlaceRepository interface {
	// ScheduleByID loads the place, its areas and all bookings, locking the place row.
	ScheduleByID(ctx context.Context, id uuid.UUID) (reservation.PlaceSchedule, error)
}

type ReservationRepository interface {
	Create(ctx context.Context, res *reservation.Reservation) error
	FindByID(ctx context.Context, id uuid.UUID) (*ReservationSnapshot, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type EventRepository interface {
	Create(ctx context.Context, ev *event.Event) error
	FindByID(ctx context.Context, id uuid.UUID) (*event.Event, error)
	Update(ctx context.Context, ev *event.Event) error
	// DeleteMany removes every listed event and reports how many existed.
	DeleteMany(ctx context.Context, ids []uuid.UUID) (int64, error)
}

type AssignmentRepository interface {
	Create(ctx context.Context, a *assignment.Assignment) error
	FindByID(ctx context.Context, id uuid.UUID) (*assignment.Assignment, error)
	// FindByIDsForUpdate returns the found assignments in id order, locking them.
	FindByIDsForUpdate(ctx context.Context, ids []uuid.UUID) ([]*assignment.Assignment, error)
	Update(ctx context.Context, a *assignment.Assignment) error
	DeleteMany(ctx context.Context, ids []uuid.UUID) (int64, error)
}

type ClubRepository interface {
	Create(ctx context.Context, c *club.Club) error
	FindByID(ctx context.Context, id uuid.UUID) (*club.Club, error)
	Update(ctx context.Context, c *club.Club) error
	Delete(ctx context.Context, id uuid.UUID) error
}

// CatalogStore is the backing store of a named list.
type CatalogStore interface {
	List(ctx context.Context) ([]catalog.Item, error)
	Insert(ctx context.Context, name string) (catalog.Item, error)
	Delete(ctx context.Context, id uuid.UUID) error
	Rename(ctx context.Context, id uuid.UUID, name string) error
}
