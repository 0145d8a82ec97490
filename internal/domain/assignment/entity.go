package assignment

import (
	"errors"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"
)

var (
	ErrDescriptionTooLong = errors.New("assignment description is too long (max 1028 characters)")
	ErrMissingDeadline    = errors.New("assignment deadline is required")
	ErrCompletedReadOnly  = errors.New("completed assignment cannot be edited")
)

const MaxDescriptionLength = 1028

// Assignment is a trackable work item.
type Assignment struct {
	id          uuid.UUID
	description string
	eventID     *uuid.UUID
	typeID      *uuid.UUID
	placeID     *uuid.UUID
	deadline    time.Time
	state       State
	createdAt   time.Time
}

type Params struct {
	Description string
	EventID     *uuid.UUID
	TypeID      *uuid.UUID
	PlaceID     *uuid.UUID
	Deadline    time.Time
}

// NewAssignment creates a draft unless an initial state is given.
// A new assignment cannot start completed.
func NewAssignment(p Params, initial State) (*Assignment, error) {
	if initial == "" {
		initial = StateDraft
	}
	if !initial.IsValid() {
		return nil, ErrInvalidState
	}
	if initial == StateCompleted {
		return nil, ErrInvalidTransition
	}

	a := &Assignment{id: uuid.New(), state: initial}
	if err := a.apply(p); err != nil {
		return nil, err
	}
	return a, nil
}

func ReconstructAssignment(
	id uuid.UUID,
	description string,
	eventID, typeID, placeID *uuid.UUID,
	deadline time.Time,
	state State,
	createdAt time.Time,
) *Assignment {
	return &Assignment{
		id:          id,
		description: description,
		eventID:     eventID,
		typeID:      typeID,
		placeID:     placeID,
		deadline:    deadline,
		state:       state,
		createdAt:   createdAt,
	}
}

func (a *Assignment) Update(p Params) error {
	if a.state == StateCompleted {
		return ErrCompletedReadOnly
	}
	next := *a
	if err := next.apply(p); err != nil {
		return err
	}
	*a = next
	return nil
}

// TransitionTo moves the assignment to next; the current state is a no-op.
func (a *Assignment) TransitionTo(next State) error {
	if !next.IsValid() {
		return ErrInvalidState
	}
	if next == a.state {
		return nil
	}
	if !a.state.CanTransitionTo(next) {
		return ErrInvalidTransition
	}
	a.state = next
	return nil
}

// Complete only succeeds for active assignments.
func (a *Assignment) Complete() error {
	if a.state != StateActive {
		return ErrInvalidTransition
	}
	a.state = StateCompleted
	return nil
}

func (a *Assignment) IsOnDesktop() bool {
	return a.state == StateActive
}

func (a *Assignment) apply(p Params) error {
	if utf8.RuneCountInString(p.Description) > MaxDescriptionLength {
		return ErrDescriptionTooLong
	}
	if p.Deadline.IsZero() {
		return ErrMissingDeadline
	}
	a.description = p.Description
	a.eventID = p.EventID
	a.typeID = p.TypeID
	a.placeID = p.PlaceID
	a.deadline = p.Deadline
	return nil
}

func (a *Assignment) ID() uuid.UUID        { return a.id }
func (a *Assignment) Description() string  { return a.description }
func (a *Assignment) EventID() *uuid.UUID  { return a.eventID }
func (a *Assignment) TypeID() *uuid.UUID   { return a.typeID }
func (a *Assignment) PlaceID() *uuid.UUID  { return a.placeID }
func (a *Assignment) Deadline() time.Time  { return a.deadline }
func (a *Assignment) State() State         { return a.state }
func (a *Assignment) CreatedAt() time.Time { return a.createdAt }
