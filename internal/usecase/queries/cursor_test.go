//go:build unit

package queries

import (
	"encoding/base64"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"venue-desk/internal/pkg/errs"
)

func TestCursorRoundTrip(t *testing.T) {
	createdAt := time.Date(2024, 3, 1, 10, 30, 15, 123456000, time.UTC)
	id := uuid.New()

	gotTime, gotID, err := DecodeAfterCursor(EncodeAfterCursor(createdAt, id))
	require.NoError(t, err)
	assert.True(t, createdAt.Equal(gotTime))
	assert.Equal(t, id, gotID)
}

func TestDecodeAfterCursor_Invalid(t *testing.T) {
	tests := []struct {
		name   string
		cursor string
	}{
		{"empty", ""},
		{"not base64", "%%%"},
		{"wrong version", base64.URLEncoding.EncodeToString([]byte("v0:1-" + uuid.NewString()))},
		{"missing id", base64.URLEncoding.EncodeToString([]byte("v1:123"))},
		{"bad timestamp", base64.URLEncoding.EncodeToString([]byte("v1:abc-" + uuid.NewString()))},
		{"bad uuid", base64.URLEncoding.EncodeToString([]byte("v1:123-nope"))},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := DecodeAfterCursor(tt.cursor)
			assert.Error(t, err)
		})
	}
}

func TestValidateLimit(t *testing.T) {
	assert.Equal(t, DefaultListLimit, ValidateLimit(0))
	assert.Equal(t, DefaultListLimit, ValidateLimit(-5))
	assert.Equal(t, 10, ValidateLimit(10))
	assert.Equal(t, MaxListLimit, ValidateLimit(MaxListLimit+1))
}

func TestPageFor(t *testing.T) {
	page, err := pageFor(nil, 10)
	require.NoError(t, err)
	assert.Nil(t, page.After)
	assert.Equal(t, int32(11), page.Limit)

	id := uuid.New()
	at := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	page, err = pageFor(&Cursor{After: EncodeAfterCursor(at, id)}, 5)
	require.NoError(t, err)
	require.NotNil(t, page.After)
	assert.Equal(t, id, page.After.ID)

	_, err = pageFor(&Cursor{After: "garbage"}, 5)
	assert.True(t, errs.Is(err, ErrInvalidCursor))
}

func TestTrimPage(t *testing.T) {
	at := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	rows := []Keyset{
		{CreatedAt: at.Add(3 * time.Minute), ID: uuid.New()},
		{CreatedAt: at.Add(2 * time.Minute), ID: uuid.New()},
		{CreatedAt: at.Add(time.Minute), ID: uuid.New()},
	}
	key := func(k Keyset) Keyset { return k }

	got, next := trimPage(rows, 3, key)
	assert.Len(t, got, 3)
	assert.Nil(t, next)

	got, next = trimPage(rows, 2, key)
	assert.Len(t, got, 2)
	require.NotNil(t, next)
	_, id, err := DecodeAfterCursor(next.After)
	require.NoError(t, err)
	assert.Equal(t, rows[1].ID, id)
}
