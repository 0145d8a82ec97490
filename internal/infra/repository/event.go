package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"

	"venue-desk/internal/domain/event"
	"venue-desk/internal/infra"
	"venue-desk/internal/infra/db"
	"venue-desk/internal/pkg/pgconv"
)

const (
	insertEventSQL = `
INSERT INTO events (id, title, scope, type_id, start_at, description)
VALUES ($1, $2, $3, $4, $5, $6)`

	selectEventSQL = `
SELECT id, title, scope, type_id, start_at, description, created_at
FROM events WHERE id = $1`

	updateEventSQL = `
UPDATE events
SET title = $2, scope = $3, type_id = $4, start_at = $5, description = $6
WHERE id = $1`

	deleteEventsSQL = `DELETE FROM events WHERE id = ANY($1::uuid[])`
)

type EventRepository struct {
	db db.DBTX
}

func NewEventRepository(db db.DBTX) *EventRepository {
	return &EventRepository{db: db}
}

func (r *EventRepository) Create(ctx context.Context, ev *event.Event) error {
	_, err := r.db.Exec(ctx, insertEventSQL,
		ev.ID(),
		ev.Title(),
		ev.Scope().String(),
		pgconv.UUIDPtrToPgtype(ev.TypeID()),
		ev.StartAt(),
		pgconv.OptionalText(ev.Description()),
	)
	if err != nil {
		return infra.WrapRepoErr("failed to create event", err)
	}
	return nil
}

func (r *EventRepository) FindByID(ctx context.Context, id uuid.UUID) (*event.Event, error) {
	var (
		eventID     uuid.UUID
		title       string
		scope       string
		typeID      pgtype.UUID
		startAt     time.Time
		description pgtype.Text
		createdAt   time.Time
	)
	err := r.db.QueryRow(ctx, selectEventSQL, id).Scan(&eventID, &title, &scope, &typeID, &startAt, &description, &createdAt)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("event not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find event", err)
	}
	return event.ReconstructEvent(
		eventID,
		title,
		event.Scope(scope),
		pgconv.UUIDPtrFromPgtype(typeID),
		startAt,
		pgconv.StringFromPgtype(description),
		createdAt,
	), nil
}

func (r *EventRepository) Update(ctx context.Context, ev *event.Event) error {
	tag, err := r.db.Exec(ctx, updateEventSQL,
		ev.ID(),
		ev.Title(),
		ev.Scope().String(),
		pgconv.UUIDPtrToPgtype(ev.TypeID()),
		ev.StartAt(),
		pgconv.OptionalText(ev.Description()),
	)
	if err != nil {
		return infra.WrapRepoErr("failed to update event", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("event not found", nil, infra.KindNotFound)
	}
	return nil
}

func (r *EventRepository) DeleteMany(ctx context.Context, ids []uuid.UUID) (int64, error) {
	tag, err := r.db.Exec(ctx, deleteEventsSQL, pgconv.UUIDStrings(ids))
	if err != nil {
		return 0, infra.WrapRepoErr("failed to delete events", err)
	}
	return tag.RowsAffected(), nil
}
