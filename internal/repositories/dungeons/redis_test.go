package dungeons

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/go-redis/redismock/v9"
	"github.com/stretchr/testify/suite"

	"github.com/dungeonworks/roomforge/internal/domain/rooms"
	apperrors "github.com/dungeonworks/roomforge/internal/errors"
	"github.com/dungeonworks/roomforge/internal/testutils"
)

type RedisRepoTestSuite struct {
	suite.Suite
	mock redismock.ClientMock
	repo Repository
}

func (s *RedisRepoTestSuite) SetupTest() {
	client, mock := redismock.NewClientMock()
	s.mock = mock
	s.repo = NewRedisRepository(&RedisRepoConfig{Client: client})
}

func (s *RedisRepoTestSuite) TearDownTest() {
	s.NoError(s.mock.ExpectationsWereMet())
}

func TestRedisRepoTestSuite(t *testing.T) {
	suite.Run(t, new(RedisRepoTestSuite))
}

func (s *RedisRepoTestSuite) marshaled(dungeon *rooms.Dungeon) []byte {
	data, err := json.Marshal(dungeon)
	s.Require().NoError(err)
	return data
}

func (s *RedisRepoTestSuite) TestCreate() {
	ctx := context.Background()
	dungeon := testutils.CreateTestDungeon("dungeon-1")
	data := s.marshaled(dungeon)

	s.mock.ExpectSetNX("dungeon:dungeon-1", string(data), 0).SetVal(true)
	s.mock.ExpectSAdd("dungeons:all", "dungeon-1").SetVal(1)

	s.NoError(s.repo.Create(ctx, dungeon))
}

func (s *RedisRepoTestSuite) TestCreate_AlreadyExists() {
	ctx := context.Background()
	dungeon := testutils.CreateTestDungeon("dungeon-1")
	data := s.marshaled(dungeon)

	s.mock.ExpectSetNX("dungeon:dungeon-1", string(data), 0).SetVal(false)

	err := s.repo.Create(ctx, dungeon)
	s.Error(err)
	s.True(apperrors.IsAlreadyExists(err))
}

func (s *RedisRepoTestSuite) TestCreate_DependencyError() {
	ctx := context.Background()
	dungeon := testutils.CreateTestDungeon("dungeon-1")
	data := s.marshaled(dungeon)

	s.mock.ExpectSetNX("dungeon:dungeon-1", string(data), 0).SetErr(errors.New("redis error"))

	s.Error(s.repo.Create(ctx, dungeon))
}

func (s *RedisRepoTestSuite) TestGet() {
	ctx := context.Background()
	dungeon := testutils.CreateTestDungeon("dungeon-1")

	s.mock.ExpectGet("dungeon:dungeon-1").SetVal(string(s.marshaled(dungeon)))

	got, err := s.repo.Get(ctx, "dungeon-1")
	s.Require().NoError(err)
	s.Equal(dungeon, got)
}

func (s *RedisRepoTestSuite) TestGet_NotFound() {
	ctx := context.Background()

	s.mock.ExpectGet("dungeon:missing").RedisNil()

	_, err := s.repo.Get(ctx, "missing")
	s.Error(err)
	s.True(apperrors.IsNotFound(err))
}

func (s *RedisRepoTestSuite) TestUpdate() {
	ctx := context.Background()
	dungeon := testutils.CreateTestDungeon("dungeon-1")
	data := s.marshaled(dungeon)

	s.mock.ExpectSet("dungeon:dungeon-1", string(data), 0).SetVal("OK")

	s.NoError(s.repo.Update(ctx, dungeon))
}

func (s *RedisRepoTestSuite) TestDelete() {
	ctx := context.Background()

	s.mock.ExpectDel("dungeon:dungeon-1").SetVal(1)
	s.mock.ExpectSRem("dungeons:all", "dungeon-1").SetVal(1)

	s.NoError(s.repo.Delete(ctx, "dungeon-1"))
}

func (s *RedisRepoTestSuite) TestListAll() {
	ctx := context.Background()
	dungeon := testutils.CreateTestDungeon("dungeon-1")

	s.mock.ExpectSMembers("dungeons:all").SetVal([]string{"dungeon-1"})
	s.mock.ExpectGet("dungeon:dungeon-1").SetVal(string(s.marshaled(dungeon)))

	all, err := s.repo.ListAll(ctx)
	s.Require().NoError(err)
	s.Require().Len(all, 1)
	s.Equal(dungeon, all[0])
}
