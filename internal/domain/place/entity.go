package place

import (
	"errors"
	"time"

	"github.com/google/uuid"

	"venue-desk/internal/domain/catalog"
)

var (
	ErrAreaOutsidePlace = errors.New("area does not belong to the place")
	ErrDuplicateArea    = errors.New("area name is already used in this place")
)

// Place is a top-level reservable venue unit. It exclusively owns its areas.
type Place struct {
	id        uuid.UUID
	name      string
	areas     []Area
	createdAt time.Time
}

// Area is a reservable sub-unit of exactly one place.
type Area struct {
	id      uuid.UUID
	placeID uuid.UUID
	name    string
}

func NewPlace(name string) (*Place, error) {
	name, err := catalog.NormalizeName(name)
	if err != nil {
		return nil, err
	}
	return &Place{
		id:   uuid.New(),
		name: name,
	}, nil
}

func ReconstructPlace(id uuid.UUID, name string, areas []Area, createdAt time.Time) *Place {
	return &Place{
		id:        id,
		name:      name,
		areas:     areas,
		createdAt: createdAt,
	}
}

func ReconstructArea(id, placeID uuid.UUID, name string) Area {
	return Area{id: id, placeID: placeID, name: name}
}

// AddArea appends a new area, enforcing name uniqueness within the place.
func (p *Place) AddArea(name string) (Area, error) {
	name, err := catalog.NormalizeName(name)
	if err != nil {
		return Area{}, err
	}
	for _, a := range p.areas {
		if a.name == name {
			return Area{}, ErrDuplicateArea
		}
	}
	a := Area{id: uuid.New(), placeID: p.id, name: name}
	p.areas = append(p.areas, a)
	return a, nil
}

func (p *Place) HasAreas() bool {
	return len(p.areas) > 0
}

func (p *Place) Area(id uuid.UUID) (Area, bool) {
	for _, a := range p.areas {
		if a.id == id {
			return a, true
		}
	}
	return Area{}, false
}

// ContainsAreas checks that every id names one of the place's areas.
func (p *Place) ContainsAreas(ids []uuid.UUID) error {
	for _, id := range ids {
		if _, ok := p.Area(id); !ok {
			return ErrAreaOutsidePlace
		}
	}
	return nil
}

func (p *Place) ID() uuid.UUID        { return p.id }
func (p *Place) Name() string         { return p.name }
func (p *Place) CreatedAt() time.Time { return p.createdAt }

// Areas returns a copy of the place's areas in display order.
func (p *Place) Areas() []Area {
	out := make([]Area, len(p.areas))
	copy(out, p.areas)
	return out
}

func (a Area) ID() uuid.UUID      { return a.id }
func (a Area) PlaceID() uuid.UUID { return a.placeID }
func (a Area) Name() string       { return a.name }
