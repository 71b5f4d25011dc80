package rooms_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dungeonworks/roomforge/internal/domain/rooms"
)

func newPlacedRoom(t *testing.T, id string) *rooms.PlacedRoom {
	t.Helper()

	boundary, err := rooms.NewBoundary(4, 4)
	require.NoError(t, err)

	return &rooms.PlacedRoom{
		ID:       id,
		Locator:  "templates/crypt_small",
		Spec:     rooms.Specification{Theme: rooms.ThemeCrypt, Width: 4, Length: 4},
		Boundary: boundary,
	}
}

func TestDungeon_AddRoomAndLookup(t *testing.T) {
	dungeon := &rooms.Dungeon{ID: "dungeon-1"}

	dungeon.AddRoom(newPlacedRoom(t, "room-1"))
	dungeon.AddRoom(newPlacedRoom(t, "room-2"))

	room, ok := dungeon.Room("room-2")
	require.True(t, ok)
	assert.Equal(t, "room-2", room.ID)

	_, ok = dungeon.Room("room-9")
	assert.False(t, ok)
}

func TestDungeon_CloneIsIndependent(t *testing.T) {
	dungeon := &rooms.Dungeon{ID: "dungeon-1"}
	dungeon.AddRoom(newPlacedRoom(t, "room-1"))

	clone := dungeon.Clone()
	cloneRoom, ok := clone.Room("room-1")
	require.True(t, ok)

	loc := rooms.WallLocation{Direction: rooms.DirectionNorth, SegmentIndex: 0}
	require.NoError(t, cloneRoom.Boundary.AddDoor(loc))

	originalRoom, ok := dungeon.Room("room-1")
	require.True(t, ok)
	hasDoor, err := originalRoom.Boundary.HasDoorAt(loc)
	require.NoError(t, err)
	assert.False(t, hasDoor, "mutating a cloned room must not affect the original")

	clone.AddRoom(newPlacedRoom(t, "room-2"))
	assert.Len(t, dungeon.Rooms, 1)
}
