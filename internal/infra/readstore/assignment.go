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

const assignmentSelect = `
SELECT a.id, COALESCE(a.description, ''),
       a.event_id, COALESCE(e.title, ''),
       a.type_id, COALESCE(t.name, ''),
       a.place_id, COALESCE(p.name, ''),
       a.deadline, a.state, a.created_at
FROM assignments a
LEFT JOIN events e ON e.id = a.event_id
LEFT JOIN assignment_types t ON t.id = a.type_id
LEFT JOIN places p ON p.id = a.place_id`

type AssignmentReadStore struct {
	db db.DBTX
}

func NewAssignmentReadStore(db db.DBTX) *AssignmentReadStore {
	return &AssignmentReadStore{db: db}
}

func (r *AssignmentReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.AssignmentView, error) {
	var w where
	w.add("a.id = " + w.arg(id))

	rows, err := r.query(ctx, assignmentSelect+w.String(), w.args)
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, infra.WrapRepoErr("assignment not found", pgx.ErrNoRows, infra.KindNotFound)
	}
	return rows[0], nil
}

func (r *AssignmentReadStore) List(ctx context.Context, f queries.AssignmentFilters, page queries.Page) ([]*queries.AssignmentView, error) {
	var w where
	w.eq("t.name", f.TypeName)
	w.eq("p.name", f.PlaceName)
	w.eq("a.state", f.State)
	w.between("a.deadline", f.Deadline)
	w.between("a.created_at", f.Created)
	w.after("a.created_at", "a.id", page.After)

	sql := assignmentSelect + w.String() + `
ORDER BY a.created_at DESC, a.id DESC` + w.limit(page.Limit)
	return r.query(ctx, sql, w.args)
}

func (r *AssignmentReadStore) query(ctx context.Context, sql string, args []any) ([]*queries.AssignmentView, error) {
	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to query assignments", err)
	}
	defer rows.Close()

	var out []*queries.AssignmentView
	for rows.Next() {
		var (
			v                        queries.AssignmentView
			eventID, typeID, placeID pgtype.UUID
		)
		err := rows.Scan(&v.ID, &v.Description,
			&eventID, &v.EventTitle,
			&typeID, &v.TypeName,
			&placeID, &v.PlaceName,
			&v.Deadline, &v.State, &v.CreatedAt)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan assignment", err)
		}
		v.EventID = pgconv.UUIDPtrFromPgtype(eventID)
		v.TypeID = pgconv.UUIDPtrFromPgtype(typeID)
		v.PlaceID = pgconv.UUIDPtrFromPgtype(placeID)
		out = append(out, &v)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate assignments", err)
	}
	return out, nil
}
