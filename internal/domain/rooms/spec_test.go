package rooms_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dungeonworks/roomforge/internal/domain/rooms"
)

func TestSpecification_EqualValuesAreInterchangeableMapKeys(t *testing.T) {
	first := rooms.Specification{Theme: rooms.ThemeCrypt, Width: 4, Length: 6}
	second := rooms.Specification{Length: 6, Width: 4, Theme: rooms.ThemeCrypt}

	assert.Equal(t, first, second)

	index := map[rooms.Specification][]string{}
	index[first] = append(index[first], "a")
	index[second] = append(index[second], "b")

	assert.Len(t, index, 1)
	assert.Equal(t, []string{"a", "b"}, index[first])
}

func TestSpecification_DistinctValuesAreDistinctKeys(t *testing.T) {
	index := map[rooms.Specification]string{
		{Theme: rooms.ThemeCrypt, Width: 4, Length: 6}: "crypt",
		{Theme: rooms.ThemeHall, Width: 4, Length: 6}:  "hall",
		{Theme: rooms.ThemeCrypt, Width: 6, Length: 4}: "crypt rotated",
	}

	assert.Len(t, index, 3)
}
