//go:build unit

package pgconv

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/stretchr/testify/assert"

	"venue-desk/internal/pkg/errs"
)

func TestOptionalText(t *testing.T) {
	assert.False(t, OptionalText("").Valid)
	assert.Equal(t, pgtype.Text{String: "x", Valid: true}, OptionalText("x"))
	assert.Equal(t, "", StringFromPgtype(pgtype.Text{}))
}

func TestUUIDRoundTrip(t *testing.T) {
	id := uuid.New()
	got := UUIDPtrFromPgtype(UUIDPtrToPgtype(&id))
	if assert.NotNil(t, got) {
		assert.Equal(t, id, *got)
	}
	assert.Nil(t, UUIDPtrFromPgtype(UUIDPtrToPgtype(nil)))
	assert.Equal(t, []string{id.String()}, UUIDStrings([]uuid.UUID{id}))
}

func TestTimePtr(t *testing.T) {
	now := time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)
	assert.Equal(t, &now, TimePtrFromPgtype(TimePtrToPgtype(&now)))
	assert.Nil(t, TimePtrFromPgtype(TimePtrToPgtype(nil)))
}

func TestIsNoRows(t *testing.T) {
	assert.True(t, IsNoRows(pgx.ErrNoRows))
	assert.True(t, IsNoRows(errs.Wrap(pgx.ErrNoRows, "select")))
	assert.False(t, IsNoRows(errs.New("other")))
}
