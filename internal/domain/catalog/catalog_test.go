//go:build unit

package catalog

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeName(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
		errIs error
	}{
		{name: "trimmed", input: "  Hall A ", want: "Hall A"},
		{name: "cyrillic within limit", input: strings.Repeat("я", MaxNameLength), want: strings.Repeat("я", MaxNameLength)},
		{name: "empty", input: "   ", errIs: ErrEmptyName},
		{name: "too long", input: strings.Repeat("a", MaxNameLength+1), errIs: ErrNameTooLong},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := NormalizeName(tt.input)
			if tt.errIs != nil {
				assert.ErrorIs(t, err, tt.errIs)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseKind(t *testing.T) {
	k, err := ParseKind("Teachers")
	require.NoError(t, err)
	assert.Equal(t, KindTeachers, k)
	assert.False(t, k.Scoped())
	assert.True(t, KindAreas.Scoped())

	_, err = ParseKind("users")
	assert.ErrorIs(t, err, ErrUnknownKind)
}

func TestPlaceholderName(t *testing.T) {
	assert.Equal(t, "Object (0)", PlaceholderName(0))
	assert.Equal(t, "Object (12)", PlaceholderName(12))
}
