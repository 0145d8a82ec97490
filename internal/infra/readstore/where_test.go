//go:build unit

package readstore

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"venue-desk/internal/usecase/queries"
)

func TestWhere(t *testing.T) {
	from := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	to := from.Add(24 * time.Hour)
	id := uuid.New()

	t.Run("empty", func(t *testing.T) {
		var w where
		w.eq("p.name", "")
		w.between("r.start_at", queries.TimeRange{})
		w.after("r.created_at", "r.id", nil)

		assert.Equal(t, "", w.String())
		assert.Equal(t, "", w.limit(0))
		assert.Empty(t, w.args)
	})

	t.Run("numbers arguments in order", func(t *testing.T) {
		var w where
		w.eq("p.name", "Hall A")
		w.between("r.start_at", queries.TimeRange{From: &from, To: &to})
		w.after("r.created_at", "r.id", &queries.Keyset{CreatedAt: from, ID: id})
		limit := w.limit(21)

		assert.Equal(t, "\nWHERE p.name = $1\n  AND r.start_at > $2\n  AND r.start_at < $3\n  AND (r.created_at, r.id) < ($4, $5)", w.String())
		assert.Equal(t, "\nLIMIT $6", limit)
		assert.Equal(t, []any{"Hall A", from, to, from, id, int32(21)}, w.args)
	})

	t.Run("open upper bound", func(t *testing.T) {
		var w where
		w.between("e.created_at", queries.TimeRange{From: &from})

		assert.Equal(t, "\nWHERE e.created_at > $1", w.String())
	})
}
