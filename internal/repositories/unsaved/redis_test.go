package unsaved

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/go-redis/redismock/v9"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
)

type RedisRepositoryTestSuite struct {
	suite.Suite
	mr     *miniredis.Miniredis
	client *redis.Client
	repo   Repository
	ctx    context.Context
}

func (s *RedisRepositoryTestSuite) SetupTest() {
	mr, err := miniredis.Run()
	s.Require().NoError(err)
	s.mr = mr

	s.client = redis.NewClient(&redis.Options{
		Addr: s.mr.Addr(),
	})

	repo, err := NewRedis(&Config{
		RedisClient: s.client,
	})
	s.Require().NoError(err)
	s.repo = repo
	s.ctx = context.Background()
}

func (s *RedisRepositoryTestSuite) TearDownTest() {
	s.client.Close()
	s.mr.Close()
}

func TestRedisRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(RedisRepositoryTestSuite))
}

func (s *RedisRepositoryTestSuite) push(ids ...string) {
	for _, id := range ids {
		s.Require().NoError(s.repo.Push(s.ctx, &PushInput{EventID: "42", Identifier: id}))
	}
}

func (s *RedisRepositoryTestSuite) list() []string {
	out, err := s.repo.List(s.ctx, &ListInput{EventID: "42"})
	s.Require().NoError(err)
	return out.Identifiers
}

func (s *RedisRepositoryTestSuite) TestPushKeepsOrder() {
	s.push("a", "b", "c")

	s.Equal([]string{"a", "b", "c"}, s.list())

	count, err := s.repo.Count(s.ctx, &CountInput{EventID: "42"})
	s.Require().NoError(err)
	s.Equal(3, count.Count)
}

func (s *RedisRepositoryTestSuite) TestPushValidatesInput() {
	s.ErrorIs(s.repo.Push(s.ctx, &PushInput{Identifier: "a"}), ErrEmptyEventID)
	s.ErrorIs(s.repo.Push(s.ctx, &PushInput{EventID: "42"}), ErrEmptyIdentifier)
}

func (s *RedisRepositoryTestSuite) TestLedgersAreScopedByEvent() {
	s.push("a")
	s.Require().NoError(s.repo.Push(s.ctx, &PushInput{EventID: "43", Identifier: "b"}))

	s.Equal([]string{"a"}, s.list())
}

func (s *RedisRepositoryTestSuite) TestConcurrentPushesAreNotLost() {
	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			s.NoError(s.repo.Push(s.ctx, &PushInput{EventID: "42", Identifier: fmt.Sprintf("id-%d", i)}))
		}(i)
	}
	wg.Wait()

	s.Len(s.list(), 50)
}

func (s *RedisRepositoryTestSuite) TestReplayCommitKeepsFailuresAheadOfNewEntries() {
	s.push("a", "b", "c", "d")

	replay, err := s.repo.BeginReplay(s.ctx, &BeginReplayInput{EventID: "42"})
	s.Require().NoError(err)
	s.Equal([]string{"a", "b", "c", "d"}, replay.Identifiers)

	// pushed while the replay runs
	s.push("e")
	s.Equal([]string{"a", "b", "c", "d", "e"}, s.list())

	s.Require().NoError(s.repo.CommitReplay(s.ctx, &CommitReplayInput{
		EventID:   "42",
		Remaining: []string{"b", "d"},
	}))

	s.Equal([]string{"b", "d", "e"}, s.list())
	s.False(s.mr.Exists(replayKey("42")))
}

func (s *RedisRepositoryTestSuite) TestReplayCommitWithNothingRemaining() {
	s.push("a")

	_, err := s.repo.BeginReplay(s.ctx, &BeginReplayInput{EventID: "42"})
	s.Require().NoError(err)
	s.Require().NoError(s.repo.CommitReplay(s.ctx, &CommitReplayInput{EventID: "42"}))

	s.Empty(s.list())
}

func (s *RedisRepositoryTestSuite) TestInterruptedReplayIsPickedUpAgain() {
	s.push("a", "b")
	_, err := s.repo.BeginReplay(s.ctx, &BeginReplayInput{EventID: "42"})
	s.Require().NoError(err)

	// the process stops here without committing, then more scans arrive
	s.push("c")

	replay, err := s.repo.BeginReplay(s.ctx, &BeginReplayInput{EventID: "42"})
	s.Require().NoError(err)
	s.Equal([]string{"a", "b", "c"}, replay.Identifiers)
}

func (s *RedisRepositoryTestSuite) TestBeginReplayOnEmptyLedger() {
	replay, err := s.repo.BeginReplay(s.ctx, &BeginReplayInput{EventID: "42"})
	s.Require().NoError(err)
	s.Empty(replay.Identifiers)
}

func (s *RedisRepositoryTestSuite) TestDrainEmptiesEverything() {
	s.push("a", "b")
	_, err := s.repo.BeginReplay(s.ctx, &BeginReplayInput{EventID: "42"})
	s.Require().NoError(err)
	s.push("c")

	drained, err := s.repo.Drain(s.ctx, &DrainInput{EventID: "42"})
	s.Require().NoError(err)
	s.Equal([]string{"a", "b", "c"}, drained.Identifiers)
	s.Empty(s.list())
}

func (s *RedisRepositoryTestSuite) TestRestorePrepends() {
	s.push("c")

	s.Require().NoError(s.repo.Restore(s.ctx, &RestoreInput{EventID: "42", Identifiers: []string{"a", "b"}}))

	s.Equal([]string{"a", "b", "c"}, s.list())
}

func (s *RedisRepositoryTestSuite) TestClear() {
	s.push("a", "b")

	s.Require().NoError(s.repo.Clear(s.ctx, &ClearInput{EventID: "42"}))

	s.Empty(s.list())
}

func TestNewRedisValidatesConfig(t *testing.T) {
	_, err := NewRedis(nil)
	assert.Error(t, err)

	_, err = NewRedis(&Config{})
	assert.Error(t, err)
}

func newMockRepository(t *testing.T) (*redisRepository, redismock.ClientMock) {
	db, mock := redismock.NewClientMock()
	mock.ExpectPing().SetVal("PONG")

	repo, err := NewRedis(&Config{RedisClient: db})
	if err != nil {
		t.Fatalf("NewRedis: %v", err)
	}

	return repo, mock
}

func TestPushReportsRedisErrors(t *testing.T) {
	repo, mock := newMockRepository(t)
	defer mock.ClearExpect()

	mock.ExpectRPush("unsaved:42", "a").SetErr(errors.New("connection refused"))

	err := repo.Push(context.Background(), &PushInput{EventID: "42", Identifier: "a"})

	assert.ErrorContains(t, err, "connection refused")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestBeginReplayReportsScriptErrors(t *testing.T) {
	repo, mock := newMockRepository(t)
	defer mock.ClearExpect()

	mock.ExpectEval(beginReplayScript, []string{"unsaved:42", "unsaved_replay:42"}).SetErr(errors.New("NOSCRIPT"))

	_, err := repo.BeginReplay(context.Background(), &BeginReplayInput{EventID: "42"})

	assert.ErrorContains(t, err, "failed to begin replay")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDrainRejectsUnexpectedScriptResult(t *testing.T) {
	repo, mock := newMockRepository(t)
	defer mock.ClearExpect()

	mock.ExpectEval(drainScript, []string{"unsaved:42", "unsaved_replay:42"}).SetVal(int64(3))

	_, err := repo.Drain(context.Background(), &DrainInput{EventID: "42"})

	assert.ErrorContains(t, err, "unexpected script result")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestNewRedisFailsWithoutRedis(t *testing.T) {
	db, mock := redismock.NewClientMock()
	mock.ExpectPing().SetErr(errors.New("dial tcp: refused"))

	_, err := NewRedis(&Config{RedisClient: db})

	assert.ErrorContains(t, err, "failed to connect to Redis")
}
