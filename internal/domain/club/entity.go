package club

import (
	"time"

	"github.com/google/uuid"

	"venue-desk/internal/domain/catalog"
)

// Club is a recurring class held by an optional teacher at an optional place.
type Club struct {
	id        uuid.UUID
	name      string
	typeID    *uuid.UUID
	teacherID *uuid.UUID
	placeID   *uuid.UUID
	schedule  Schedule
	createdAt time.Time
}

type Params struct {
	Name      string
	TypeID    *uuid.UUID
	TeacherID *uuid.UUID
	PlaceID   *uuid.UUID
	Schedule  Schedule
}

func NewClub(p Params) (*Club, error) {
	c := &Club{id: uuid.New()}
	if err := c.apply(p); err != nil {
		return nil, err
	}
	return c, nil
}

func ReconstructClub(
	id uuid.UUID,
	name string,
	typeID, teacherID, placeID *uuid.UUID,
	schedule Schedule,
	createdAt time.Time,
) *Club {
	return &Club{
		id:        id,
		name:      name,
		typeID:    typeID,
		teacherID: teacherID,
		placeID:   placeID,
		schedule:  schedule,
		createdAt: createdAt,
	}
}

func (c *Club) Update(p Params) error {
	next := *c
	if err := next.apply(p); err != nil {
		return err
	}
	*c = next
	return nil
}

func (c *Club) apply(p Params) error {
	name, err := catalog.NormalizeName(p.Name)
	if err != nil {
		return err
	}
	if p.Schedule.rule == "" {
		return ErrInvalidRule
	}
	c.name = name
	c.typeID = p.TypeID
	c.teacherID = p.TeacherID
	c.placeID = p.PlaceID
	c.schedule = p.Schedule
	return nil
}

func (c *Club) ID() uuid.UUID         { return c.id }
func (c *Club) Name() string          { return c.name }
func (c *Club) TypeID() *uuid.UUID    { return c.typeID }
func (c *Club) TeacherID() *uuid.UUID { return c.teacherID }
func (c *Club) PlaceID() *uuid.UUID   { return c.placeID }
func (c *Club) Schedule() Schedule    { return c.schedule }
func (c *Club) CreatedAt() time.Time  { return c.createdAt }
