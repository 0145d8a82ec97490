package catalog

import (
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/google/uuid"
)

var (
	ErrEmptyName     = errors.New("name cannot be empty")
	ErrNameTooLong   = errors.New("name is too long (max 128 characters)")
	ErrDuplicateName = errors.New("name is already in use")
	ErrUnknownKind   = errors.New("unknown catalog kind")
)

const MaxNameLength = 128

// Kind identifies a uniquely named lookup list.
type Kind string

const (
	KindEventTypes      Kind = "event-types"
	KindAssignmentTypes Kind = "assignment-types"
	KindClubTypes       Kind = "club-types"
	KindTeachers        Kind = "teachers"
	KindPlaces          Kind = "places"
	// KindAreas is scoped to a single place.
	KindAreas Kind = "areas"
)

func (k Kind) String() string {
	return string(k)
}

func (k Kind) IsValid() bool {
	switch k {
	case KindEventTypes, KindAssignmentTypes, KindClubTypes, KindTeachers, KindPlaces, KindAreas:
		return true
	default:
		return false
	}
}

// Scoped reports whether the kind needs an owner id.
func (k Kind) Scoped() bool {
	return k == KindAreas
}

func ParseKind(s string) (Kind, error) {
	k := Kind(strings.ToLower(strings.TrimSpace(s)))
	if !k.IsValid() {
		return "", ErrUnknownKind
	}
	return k, nil
}

type Item struct {
	ID   uuid.UUID
	Name string
}

// NormalizeName trims the name and checks it against the catalog limits.
func NormalizeName(name string) (string, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return "", ErrEmptyName
	}
	if utf8.RuneCountInString(name) > MaxNameLength {
		return "", ErrNameTooLong
	}
	return name, nil
}

func PlaceholderName(n int) string {
	return fmt.Sprintf("Object (%d)", n)
}
