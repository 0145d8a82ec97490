package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"

	"venue-desk/internal/domain/club"
	"venue-desk/internal/infra"
	"venue-desk/internal/infra/db"
	"venue-desk/internal/pkg/pgconv"
)

const (
	insertClubSQL = `
INSERT INTO clubs (id, name, type_id, teacher_id, place_id, rrule, first_start_at, duration_minutes)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`

	selectClubSQL = `
SELECT id, name, type_id, teacher_id, place_id, rrule, first_start_at, duration_minutes, created_at
FROM clubs WHERE id = $1`

	updateClubSQL = `
UPDATE clubs
SET name = $2, type_id = $3, teacher_id = $4, place_id = $5, rrule = $6, first_start_at = $7, duration_minutes = $8
WHERE id = $1`

	deleteClubSQL = `DELETE FROM clubs WHERE id = $1`
)

type ClubRepository struct {
	db db.DBTX
}

func NewClubRepository(db db.DBTX) *ClubRepository {
	return &ClubRepository{db: db}
}

func (r *ClubRepository) Create(ctx context.Context, c *club.Club) error {
	if _, err := r.db.Exec(ctx, insertClubSQL, clubArgs(c)...); err != nil {
		return infra.WrapRepoErr("failed to create club", err)
	}
	return nil
}

func (r *ClubRepository) FindByID(ctx context.Context, id uuid.UUID) (*club.Club, error) {
	var (
		clubID                     uuid.UUID
		name, rule                 string
		typeID, teacherID, placeID pgtype.UUID
		firstStart, createdAt      time.Time
		durationMinutes            int32
	)
	err := r.db.QueryRow(ctx, selectClubSQL, id).Scan(
		&clubID, &name, &typeID, &teacherID, &placeID, &rule, &firstStart, &durationMinutes, &createdAt,
	)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("club not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find club", err)
	}
	return club.ReconstructClub(
		clubID,
		name,
		pgconv.UUIDPtrFromPgtype(typeID),
		pgconv.UUIDPtrFromPgtype(teacherID),
		pgconv.UUIDPtrFromPgtype(placeID),
		club.ReconstructSchedule(rule, firstStart, time.Duration(durationMinutes)*time.Minute),
		createdAt,
	), nil
}

func (r *ClubRepository) Update(ctx context.Context, c *club.Club) error {
	tag, err := r.db.Exec(ctx, updateClubSQL, clubArgs(c)...)
	if err != nil {
		return infra.WrapRepoErr("failed to update club", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("club not found", nil, infra.KindNotFound)
	}
	return nil
}

func (r *ClubRepository) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := r.db.Exec(ctx, deleteClubSQL, id)
	if err != nil {
		return infra.WrapRepoErr("failed to delete club", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("club not found", nil, infra.KindNotFound)
	}
	return nil
}

func clubArgs(c *club.Club) []any {
	s := c.Schedule()
	return []any{
		c.ID(),
		c.Name(),
		pgconv.UUIDPtrToPgtype(c.TypeID()),
		pgconv.UUIDPtrToPgtype(c.TeacherID()),
		pgconv.UUIDPtrToPgtype(c.PlaceID()),
		s.Rule(),
		s.StartAt(),
		int32(s.Duration() / time.Minute),
	}
}
