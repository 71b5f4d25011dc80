package dungeons_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dungeonworks/roomforge/internal/domain/rooms"
	apperrors "github.com/dungeonworks/roomforge/internal/errors"
	"github.com/dungeonworks/roomforge/internal/repositories/dungeons"
	"github.com/dungeonworks/roomforge/internal/testutils"
)

func TestInMemoryRepository_CreateAndGet(t *testing.T) {
	repo := dungeons.NewInMemoryRepository()
	ctx := context.Background()

	dungeon := testutils.CreateTestDungeon("dungeon-1")
	require.NoError(t, repo.Create(ctx, dungeon))

	got, err := repo.Get(ctx, "dungeon-1")
	require.NoError(t, err)
	assert.Equal(t, dungeon, got)
}

func TestInMemoryRepository_CreateValidation(t *testing.T) {
	repo := dungeons.NewInMemoryRepository()
	ctx := context.Background()

	err := repo.Create(ctx, nil)
	require.Error(t, err)
	assert.True(t, apperrors.IsInvalidArgument(err))

	err = repo.Create(ctx, &rooms.Dungeon{})
	require.Error(t, err)
	assert.True(t, apperrors.IsInvalidArgument(err))

	require.NoError(t, repo.Create(ctx, testutils.CreateTestDungeon("dungeon-1")))
	err = repo.Create(ctx, testutils.CreateTestDungeon("dungeon-1"))
	require.Error(t, err)
	assert.True(t, apperrors.IsAlreadyExists(err))
}

func TestInMemoryRepository_GetReturnsIndependentCopy(t *testing.T) {
	repo := dungeons.NewInMemoryRepository()
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, testutils.CreateTestDungeon("dungeon-1")))

	first, err := repo.Get(ctx, "dungeon-1")
	require.NoError(t, err)

	loc := rooms.WallLocation{Direction: rooms.DirectionNorth, SegmentIndex: 0}
	room, ok := first.Room("room-1")
	require.True(t, ok)
	require.NoError(t, room.Boundary.AddDoor(loc))

	second, err := repo.Get(ctx, "dungeon-1")
	require.NoError(t, err)
	room, ok = second.Room("room-1")
	require.True(t, ok)
	hasDoor, err := room.Boundary.HasDoorAt(loc)
	require.NoError(t, err)
	assert.False(t, hasDoor, "stored dungeon must not be reachable through returned copies")
}

func TestInMemoryRepository_Update(t *testing.T) {
	repo := dungeons.NewInMemoryRepository()
	ctx := context.Background()

	err := repo.Update(ctx, testutils.CreateTestDungeon("dungeon-1"))
	require.Error(t, err)
	assert.True(t, apperrors.IsNotFound(err))

	dungeon := testutils.CreateTestDungeon("dungeon-1")
	require.NoError(t, repo.Create(ctx, dungeon))

	room, ok := dungeon.Room("room-1")
	require.True(t, ok)
	require.NoError(t, room.Boundary.AddDoor(rooms.WallLocation{Direction: rooms.DirectionEast, SegmentIndex: 1}))
	require.NoError(t, repo.Update(ctx, dungeon))

	got, err := repo.Get(ctx, "dungeon-1")
	require.NoError(t, err)
	room, ok = got.Room("room-1")
	require.True(t, ok)
	hasDoor, err := room.Boundary.HasDoorAt(rooms.WallLocation{Direction: rooms.DirectionEast, SegmentIndex: 1})
	require.NoError(t, err)
	assert.True(t, hasDoor)
}

func TestInMemoryRepository_Delete(t *testing.T) {
	repo := dungeons.NewInMemoryRepository()
	ctx := context.Background()

	err := repo.Delete(ctx, "dungeon-1")
	require.Error(t, err)
	assert.True(t, apperrors.IsNotFound(err))

	require.NoError(t, repo.Create(ctx, testutils.CreateTestDungeon("dungeon-1")))
	require.NoError(t, repo.Delete(ctx, "dungeon-1"))

	_, err = repo.Get(ctx, "dungeon-1")
	require.Error(t, err)
	assert.True(t, apperrors.IsNotFound(err))
}

func TestInMemoryRepository_ListAll(t *testing.T) {
	repo := dungeons.NewInMemoryRepository()
	ctx := context.Background()

	all, err := repo.ListAll(ctx)
	require.NoError(t, err)
	assert.Empty(t, all)

	require.NoError(t, repo.Create(ctx, testutils.CreateTestDungeon("dungeon-1")))
	require.NoError(t, repo.Create(ctx, testutils.CreateTestDungeon("dungeon-2")))

	all, err = repo.ListAll(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 2)
}
