//go:build unit

package place_test

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"venue-desk/internal/domain/catalog"
	"venue-desk/internal/domain/place"
)

func TestNewPlace(t *testing.T) {
	p, err := place.NewPlace("  Hall A ")
	require.NoError(t, err)
	assert.Equal(t, "Hall A", p.Name())
	assert.NotEqual(t, uuid.Nil, p.ID())
	assert.False(t, p.HasAreas())

	_, err = place.NewPlace("")
	assert.ErrorIs(t, err, catalog.ErrEmptyName)
}

func TestPlace_AddArea(t *testing.T) {
	p, err := place.NewPlace("Hall A")
	require.NoError(t, err)

	left, err := p.AddArea("Left")
	require.NoError(t, err)
	assert.Equal(t, p.ID(), left.PlaceID())

	_, err = p.AddArea("Left")
	assert.ErrorIs(t, err, place.ErrDuplicateArea)

	_, err = p.AddArea("Right")
	require.NoError(t, err)
	assert.Len(t, p.Areas(), 2)
	assert.True(t, p.HasAreas())
}

func TestPlace_ContainsAreas(t *testing.T) {
	p, err := place.NewPlace("Hall A")
	require.NoError(t, err)
	left, err := p.AddArea("Left")
	require.NoError(t, err)

	assert.NoError(t, p.ContainsAreas(nil))
	assert.NoError(t, p.ContainsAreas([]uuid.UUID{left.ID()}))
	assert.ErrorIs(t, p.ContainsAreas([]uuid.UUID{left.ID(), uuid.New()}), place.ErrAreaOutsidePlace)
}
