package event

import (
	"errors"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"
)

var (
	ErrEmptyTitle         = errors.New("event title cannot be empty")
	ErrTitleTooLong       = errors.New("event title is too long (max 256 characters)")
	ErrDescriptionTooLong = errors.New("event description is too long (max 1028 characters)")
	ErrMissingStartTime   = errors.New("event start time is required")
)

const (
	MaxTitleLength       = 256
	MaxDescriptionLength = 1028
)

type Event struct {
	id          uuid.UUID
	title       string
	scope       Scope
	typeID      *uuid.UUID
	startAt     time.Time
	description string
	createdAt   time.Time
}

type Params struct {
	Title       string
	Scope       Scope
	TypeID      *uuid.UUID
	StartAt     time.Time
	Description string
}

func NewEvent(p Params) (*Event, error) {
	e := &Event{id: uuid.New()}
	if err := e.apply(p); err != nil {
		return nil, err
	}
	return e, nil
}

func ReconstructEvent(
	id uuid.UUID,
	title string,
	scope Scope,
	typeID *uuid.UUID,
	startAt time.Time,
	description string,
	createdAt time.Time,
) *Event {
	return &Event{
		id:          id,
		title:       title,
		scope:       scope,
		typeID:      typeID,
		startAt:     startAt,
		description: description,
		createdAt:   createdAt,
	}
}

// Update replaces every editable field, validating like NewEvent.
func (e *Event) Update(p Params) error {
	next := *e
	if err := next.apply(p); err != nil {
		return err
	}
	*e = next
	return nil
}

func (e *Event) apply(p Params) error {
	title := strings.TrimSpace(p.Title)
	if title == "" {
		return ErrEmptyTitle
	}
	if utf8.RuneCountInString(title) > MaxTitleLength {
		return ErrTitleTooLong
	}
	if utf8.RuneCountInString(p.Description) > MaxDescriptionLength {
		return ErrDescriptionTooLong
	}
	if !p.Scope.IsValid() {
		return ErrInvalidScope
	}
	if p.StartAt.IsZero() {
		return ErrMissingStartTime
	}

	e.title = title
	e.scope = p.Scope
	e.typeID = p.TypeID
	e.startAt = p.StartAt
	e.description = p.Description
	return nil
}

func (e *Event) ID() uuid.UUID        { return e.id }
func (e *Event) Title() string        { return e.title }
func (e *Event) Scope() Scope         { return e.scope }
func (e *Event) TypeID() *uuid.UUID   { return e.typeID }
func (e *Event) StartAt() time.Time   { return e.startAt }
func (e *Event) Description() string  { return e.description }
func (e *Event) CreatedAt() time.Time { return e.createdAt }
