package queries

import (
	"encoding/base64"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"

	"venue-desk/internal/pkg/errs"
)

const (
	DefaultListLimit = 50
	MaxListLimit     = 200
	CursorVersionV1  = "v1"
)

var ErrInvalidCursor = errs.New("invalid cursor")

// Keyset is the position of a row in (created_at DESC, id DESC) order.
type Keyset struct {
	CreatedAt time.Time
	ID        uuid.UUID
}

// Page selects rows strictly after After. Limit 0 reads every row.
type Page struct {
	After *Keyset
	Limit int32
}

type Cursor struct {
	After string `json:"after,omitempty"`
}

// Uses microsecond precision to align with PostgreSQL timestamp precision
func EncodeAfterCursor(t time.Time, id uuid.UUID) string {
	cursorData := fmt.Sprintf("%s:%d-%s", CursorVersionV1, t.UnixMicro(), id.String())
	return base64.URLEncoding.EncodeToString([]byte(cursorData))
}

func DecodeAfterCursor(cursor string) (time.Time, uuid.UUID, error) {
	if cursor == "" {
		return time.Time{}, uuid.Nil, fmt.Errorf("cursor cannot be empty")
	}

	decoded, err := base64.URLEncoding.DecodeString(cursor)
	if err != nil {
		return time.Time{}, uuid.Nil, fmt.Errorf("invalid cursor encoding: %w", err)
	}
	payload, ok := strings.CutPrefix(string(decoded), CursorVersionV1+":")
	if !ok {
		return time.Time{}, uuid.Nil, fmt.Errorf("unsupported cursor version")
	}

	parts := strings.SplitN(payload, "-", 2)
	if len(parts) != 2 {
		return time.Time{}, uuid.Nil, fmt.Errorf("invalid cursor format: expected '<micros>-<uuid>'")
	}

	timestamp, err := strconv.ParseInt(parts[0], 10, 64)
	if err != nil {
		return time.Time{}, uuid.Nil, fmt.Errorf("invalid timestamp: %w", err)
	}

	id, err := uuid.Parse(parts[1])
	if err != nil {
		return time.Time{}, uuid.Nil, fmt.Errorf("invalid UUID: %w", err)
	}

	return time.UnixMicro(timestamp), id, nil
}

func ValidateLimit(limit int) int {
	if limit <= 0 {
		return DefaultListLimit
	}
	if limit > MaxListLimit {
		return MaxListLimit
	}
	return limit
}

// pageFor fetches one extra row so the caller can tell whether a next page exists.
func pageFor(cursor *Cursor, limit int) (Page, error) {
	page := Page{Limit: int32(limit + 1)} // #nosec G115 -- limit is capped by ValidateLimit
	if cursor == nil || cursor.After == "" {
		return page, nil
	}
	createdAt, id, err := DecodeAfterCursor(cursor.After)
	if err != nil {
		return Page{}, errs.Mark(err, ErrInvalidCursor)
	}
	page.After = &Keyset{CreatedAt: createdAt, ID: id}
	return page, nil
}

// trimPage cuts rows to limit and builds the cursor for the next page.
func trimPage[T any](rows []T, limit int, key func(T) Keyset) ([]T, *Cursor) {
	if len(rows) <= limit {
		return rows, nil
	}
	last := key(rows[limit-1])
	return rows[:limit], &Cursor{After: EncodeAfterCursor(last.CreatedAt, last.ID)}
}
