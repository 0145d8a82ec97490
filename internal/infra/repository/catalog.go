package repository

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"venue-desk/internal/domain/catalog"
	"venue-desk/internal/infra"
	"venue-desk/internal/infra/db"
)

// Table names are never taken from input; unknown kinds are rejected here.
var catalogTables = map[catalog.Kind]string{
	catalog.KindEventTypes:      "event_types",
	catalog.KindAssignmentTypes: "assignment_types",
	catalog.KindClubTypes:       "club_types",
	catalog.KindTeachers:        "teachers",
	catalog.KindPlaces:          "places",
	catalog.KindAreas:           "areas",
}

// CatalogRepository stores one named list. For areas every statement is
// restricted to the owning place.
type CatalogRepository struct {
	db    db.DBTX
	kind  catalog.Kind
	table string
	owner *uuid.UUID
}

func NewCatalogRepository(db db.DBTX, kind catalog.Kind, owner *uuid.UUID) (*CatalogRepository, error) {
	table, ok := catalogTables[kind]
	if !ok {
		return nil, catalog.ErrUnknownKind
	}
	if kind.Scoped() && owner == nil {
		return nil, fmt.Errorf("catalog %s requires an owner", kind)
	}
	if !kind.Scoped() {
		owner = nil
	}
	return &CatalogRepository{db: db, kind: kind, table: table, owner: owner}, nil
}

// List returns the items in insertion order. A scoped list whose owner does
// not exist reports NOT_FOUND.
func (r *CatalogRepository) List(ctx context.Context) ([]catalog.Item, error) {
	if r.owner != nil {
		var exists bool
		if err := r.db.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM places WHERE id = $1)`, *r.owner).Scan(&exists); err != nil {
			return nil, infra.WrapRepoErr("failed to check place", err)
		}
		if !exists {
			return nil, infra.WrapRepoErr("place not found", nil, infra.KindNotFound)
		}
	}

	query := `SELECT id, name FROM ` + r.table
	var args []any
	if r.owner != nil {
		query += ` WHERE place_id = $1`
		args = append(args, *r.owner)
	}
	query += ` ORDER BY created_at, id`

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list "+r.kind.String(), err)
	}
	defer rows.Close()

	var items []catalog.Item
	for rows.Next() {
		var it catalog.Item
		if err := rows.Scan(&it.ID, &it.Name); err != nil {
			return nil, infra.WrapRepoErr("failed to scan "+r.kind.String(), err)
		}
		items = append(items, it)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate "+r.kind.String(), err)
	}
	return items, nil
}

func (r *CatalogRepository) Insert(ctx context.Context, name string) (catalog.Item, error) {
	item := catalog.Item{ID: uuid.New(), Name: name}

	var err error
	if r.owner != nil {
		_, err = r.db.Exec(ctx, `INSERT INTO areas (id, place_id, name) VALUES ($1, $2, $3)`, item.ID, *r.owner, name)
	} else {
		_, err = r.db.Exec(ctx, `INSERT INTO `+r.table+` (id, name) VALUES ($1, $2)`, item.ID, name)
	}
	if err != nil {
		return catalog.Item{}, infra.WrapRepoErr("failed to insert into "+r.kind.String(), err)
	}
	return item, nil
}

func (r *CatalogRepository) Delete(ctx context.Context, id uuid.UUID) error {
	query := `DELETE FROM ` + r.table + ` WHERE id = $1`
	args := []any{id}
	if r.owner != nil {
		query += ` AND place_id = $2`
		args = append(args, *r.owner)
	}

	tag, err := r.db.Exec(ctx, query, args...)
	if err != nil {
		return infra.WrapRepoErr("failed to delete from "+r.kind.String(), err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr(r.kind.String()+" item not found", nil, infra.KindNotFound)
	}
	return nil
}

func (r *CatalogRepository) Rename(ctx context.Context, id uuid.UUID, name string) error {
	query := `UPDATE ` + r.table + ` SET name = $2 WHERE id = $1`
	args := []any{id, name}
	if r.owner != nil {
		query += ` AND place_id = $3`
		args = append(args, *r.owner)
	}

	tag, err := r.db.Exec(ctx, query, args...)
	if err != nil {
		return infra.WrapRepoErr("failed to rename "+r.kind.String()+" item", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr(r.kind.String()+" item not found", nil, infra.KindNotFound)
	}
	return nil
}
