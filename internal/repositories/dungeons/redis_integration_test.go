package dungeons_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dungeonworks/roomforge/internal/domain/rooms"
	"github.com/dungeonworks/roomforge/internal/repositories/dungeons"
	"github.com/dungeonworks/roomforge/internal/testutils"
)

// Exercises the Redis repository against a live instance; skips when no
// Redis is reachable on the test address.
func TestRedisRepository_Integration(t *testing.T) {
	client := testutils.CreateTestRedisClientOrSkip(t)
	repo := dungeons.NewRedisRepository(&dungeons.RedisRepoConfig{Client: client})
	ctx := context.Background()

	dungeon := testutils.CreateTestDungeon("dungeon-integration")
	require.NoError(t, repo.Create(ctx, dungeon))

	got, err := repo.Get(ctx, "dungeon-integration")
	require.NoError(t, err)
	assert.Equal(t, dungeon, got)

	// Door state survives the round trip through Redis
	room, ok := got.Room("room-1")
	require.True(t, ok)
	loc := rooms.WallLocation{Direction: rooms.DirectionWest, SegmentIndex: 2}
	require.NoError(t, room.Boundary.AddDoor(loc))
	require.NoError(t, repo.Update(ctx, got))

	reloaded, err := repo.Get(ctx, "dungeon-integration")
	require.NoError(t, err)
	room, ok = reloaded.Room("room-1")
	require.True(t, ok)
	hasDoor, err := room.Boundary.HasDoorAt(loc)
	require.NoError(t, err)
	assert.True(t, hasDoor)

	all, err := repo.ListAll(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 1)

	require.NoError(t, repo.Delete(ctx, "dungeon-integration"))

	all, err = repo.ListAll(ctx)
	require.NoError(t, err)
	assert.Empty(t, all)
}
