package readstore

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"

	"venue-desk/internal/infra"
	"venue-desk/internal/infra/db"
	"venue-desk/internal/pkg/pgconv"
	"venue-desk/internal/usecase/queries"
)

const eventSelect = `
SELECT ev.id, ev.title, ev.scope, ev.type_id, COALESCE(t.name, ''), ev.start_at,
       COALESCE(ev.description, ''), ev.created_at
FROM events ev
LEFT JOIN event_types t ON t.id = ev.type_id`

type EventReadStore struct {
	db db.DBTX
}

func NewEventReadStore(db db.DBTX) *EventReadStore {
	return &EventReadStore{db: db}
}

func (r *EventReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.EventView, error) {
	var w where
	w.add("ev.id = " + w.arg(id))

	rows, err := r.query(ctx, eventSelect+w.String(), w.args)
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, infra.WrapRepoErr("event not found", pgx.ErrNoRows, infra.KindNotFound)
	}
	return rows[0], nil
}

func (r *EventReadStore) List(ctx context.Context, f queries.EventFilters, page queries.Page) ([]*queries.EventView, error) {
	var w where
	w.eq("t.name", f.TypeName)
	w.eq("ev.scope", f.Scope)
	w.between("ev.start_at", f.Start)
	w.between("ev.created_at", f.Created)
	w.after("ev.created_at", "ev.id", page.After)

	sql := eventSelect + w.String() + `
ORDER BY ev.created_at DESC, ev.id DESC` + w.limit(page.Limit)
	return r.query(ctx, sql, w.args)
}

func (r *EventReadStore) query(ctx context.Context, sql string, args []any) ([]*queries.EventView, error) {
	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to query events", err)
	}
	defer rows.Close()

	var out []*queries.EventView
	for rows.Next() {
		var (
			v      queries.EventView
			typeID pgtype.UUID
		)
		if err := rows.Scan(&v.ID, &v.Title, &v.Scope, &typeID, &v.TypeName, &v.StartAt, &v.Description, &v.CreatedAt); err != nil {
			return nil, infra.WrapRepoErr("failed to scan event", err)
		}
		v.TypeID = pgconv.UUIDPtrFromPgtype(typeID)
		out = append(out, &v)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate events", err)
	}
	return out, nil
}
