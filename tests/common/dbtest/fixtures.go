//go:build unit || e2e

package dbtest

import (
	"context"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
)

// DBLike is satisfied by *pgxpool.Pool and pgx.Tx.
type DBLike interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

func CreateTestPlace(t *testing.T, db DBLike, name string) uuid.UUID {
	t.Helper()

	placeID := uuid.New()
	ctx := context.Background()

	tag, err := db.Exec(ctx, "INSERT INTO places (id, name) VALUES ($1, $2) ON CONFLICT (name) DO NOTHING", placeID, name)
	require.NoError(t, err)

	if tag.RowsAffected() == 0 {
		require.NoError(t, db.QueryRow(ctx, "SELECT id FROM places WHERE name = $1", name).Scan(&placeID))
	}

	return placeID
}

func CreateTestArea(t *testing.T, db DBLike, placeID uuid.UUID, name string) uuid.UUID {
	t.Helper()

	areaID := uuid.New()
	_, err := db.Exec(context.Background(), "INSERT INTO areas (id, place_id, name) VALUES ($1, $2, $3)", areaID, placeID, name)
	require.NoError(t, err)

	return areaID
}

// inserts the catalog entries every scenario relies on
func SeedReferenceData(pool *pgxpool.Pool) error {
	ctx := context.Background()

	_, err := pool.Exec(ctx, `
		INSERT INTO event_types (name) VALUES ('Concert'), ('Lecture')
		ON CONFLICT (name) DO NOTHING;
	`)
	return err
}

// ResetDB empties every public table except Atlas bookkeeping and reseeds
// reference data.
func ResetDB(pool *pgxpool.Pool) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	rows, err := pool.Query(ctx, `
		SELECT tablename FROM pg_tables
		WHERE schemaname = 'public' AND tablename NOT LIKE 'atlas_%'`)
	if err != nil {
		return fmt.Errorf("list tables: %w", err)
	}
	names, err := pgx.CollectRows(rows, pgx.RowTo[string])
	if err != nil {
		return fmt.Errorf("list tables: %w", err)
	}
	if len(names) > 0 {
		quoted := make([]string, len(names))
		for i, n := range names {
			quoted[i] = pgx.Identifier{"public", n}.Sanitize()
		}
		if _, err := pool.Exec(ctx, "TRUNCATE "+strings.Join(quoted, ", ")+" RESTART IDENTITY CASCADE"); err != nil {
			return fmt.Errorf("truncate: %w", err)
		}
	}

	return SeedReferenceData(pool)
}
