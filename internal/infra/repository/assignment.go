package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"

	"venue-desk/internal/domain/assignment"
	"venue-desk/internal/infra"
	"venue-desk/internal/infra/db"
	"venue-desk/internal/pkg/pgconv"
)

const (
	assignmentColumns = `id, description, event_id, type_id, place_id, deadline, state, created_at`

	insertAssignmentSQL = `
INSERT INTO assignments (id, description, event_id, type_id, place_id, deadline, state)
VALUES ($1, $2, $3, $4, $5, $6, $7)`

	selectAssignmentSQL = `SELECT ` + assignmentColumns + ` FROM assignments WHERE id = $1`

	lockAssignmentsSQL = `
SELECT ` + assignmentColumns + ` FROM assignments
WHERE id = ANY($1::uuid[])
ORDER BY id
FOR UPDATE`

	updateAssignmentSQL = `
UPDATE assignments
SET description = $2, event_id = $3, type_id = $4, place_id = $5, deadline = $6, state = $7
WHERE id = $1`

	deleteAssignmentsSQL = `DELETE FROM assignments WHERE id = ANY($1::uuid[])`
)

type AssignmentRepository struct {
	db db.DBTX
}

func NewAssignmentRepository(db db.DBTX) *AssignmentRepository {
	return &AssignmentRepository{db: db}
}

func (r *AssignmentRepository) Create(ctx context.Context, a *assignment.Assignment) error {
	_, err := r.db.Exec(ctx, insertAssignmentSQL, assignmentArgs(a)...)
	if err != nil {
		return infra.WrapRepoErr("failed to create assignment", err)
	}
	return nil
}

func (r *AssignmentRepository) FindByID(ctx context.Context, id uuid.UUID) (*assignment.Assignment, error) {
	a, err := scanAssignment(r.db.QueryRow(ctx, selectAssignmentSQL, id))
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("assignment not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find assignment", err)
	}
	return a, nil
}

func (r *AssignmentRepository) FindByIDsForUpdate(ctx context.Context, ids []uuid.UUID) ([]*assignment.Assignment, error) {
	rows, err := r.db.Query(ctx, lockAssignmentsSQL, pgconv.UUIDStrings(ids))
	if err != nil {
		return nil, infra.WrapRepoErr("failed to lock assignments", err)
	}
	defer rows.Close()

	var out []*assignment.Assignment
	for rows.Next() {
		a, err := scanAssignment(rows)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan assignment", err)
		}
		out = append(out, a)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate assignments", err)
	}
	return out, nil
}

func (r *AssignmentRepository) Update(ctx context.Context, a *assignment.Assignment) error {
	tag, err := r.db.Exec(ctx, updateAssignmentSQL, assignmentArgs(a)...)
	if err != nil {
		return infra.WrapRepoErr("failed to update assignment", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("assignment not found", nil, infra.KindNotFound)
	}
	return nil
}

func (r *AssignmentRepository) DeleteMany(ctx context.Context, ids []uuid.UUID) (int64, error) {
	tag, err := r.db.Exec(ctx, deleteAssignmentsSQL, pgconv.UUIDStrings(ids))
	if err != nil {
		return 0, infra.WrapRepoErr("failed to delete assignments", err)
	}
	return tag.RowsAffected(), nil
}

func assignmentArgs(a *assignment.Assignment) []any {
	return []any{
		a.ID(),
		pgconv.OptionalText(a.Description()),
		pgconv.UUIDPtrToPgtype(a.EventID()),
		pgconv.UUIDPtrToPgtype(a.TypeID()),
		pgconv.UUIDPtrToPgtype(a.PlaceID()),
		a.Deadline(),
		a.State().String(),
	}
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanAssignment(row rowScanner) (*assignment.Assignment, error) {
	var (
		id                       uuid.UUID
		description              pgtype.Text
		eventID, typeID, placeID pgtype.UUID
		deadline, createdAt      time.Time
		state                    string
	)
	if err := row.Scan(&id, &description, &eventID, &typeID, &placeID, &deadline, &state, &createdAt); err != nil {
		return nil, err
	}
	return assignment.ReconstructAssignment(
		id,
		pgconv.StringFromPgtype(description),
		pgconv.UUIDPtrFromPgtype(eventID),
		pgconv.UUIDPtrFromPgtype(typeID),
		pgconv.UUIDPtrFromPgtype(placeID),
		deadline,
		assignment.State(state),
		createdAt,
	), nil
}
