//go:build unit

package patch

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCoalesce(t *testing.T) {
	v := "new"
	assert.Equal(t, "new", Coalesce(&v, "old"))
	assert.Equal(t, "old", Coalesce[string](nil, "old"))
}

func TestNullable(t *testing.T) {
	cur, next := 1, 2
	assert.Equal(t, &next, Nullable(&next, false, &cur))
	assert.Equal(t, &cur, Nullable[int](nil, false, &cur))
	assert.Nil(t, Nullable(&next, true, &cur))
}
