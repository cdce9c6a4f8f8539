package unsaved

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/suite"
)

type FallbackRepositoryTestSuite struct {
	suite.Suite
	mr     *miniredis.Miniredis
	client *redis.Client
	repo   Repository
	ctx    context.Context
}

func (s *FallbackRepositoryTestSuite) SetupTest() {
	mr, err := miniredis.Run()
	s.Require().NoError(err)
	s.mr = mr

	s.client = redis.NewClient(&redis.Options{
		Addr: s.mr.Addr(),
	})

	redisRepo, err := NewRedis(&Config{
		RedisClient: s.client,
	})
	s.Require().NoError(err)

	repo, err := NewFallback(redisRepo)
	s.Require().NoError(err)
	s.repo = repo
	s.ctx = context.Background()
}

func (s *FallbackRepositoryTestSuite) TearDownTest() {
	s.client.Close()
	s.mr.Close()
}

func TestFallbackRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(FallbackRepositoryTestSuite))
}

func (s *FallbackRepositoryTestSuite) push(id string) error {
	return s.repo.Push(s.ctx, &PushInput{EventID: "42", Identifier: id})
}

func (s *FallbackRepositoryTestSuite) list() []string {
	out, err := s.repo.List(s.ctx, &ListInput{EventID: "42"})
	s.Require().NoError(err)
	return out.Identifiers
}

func (s *FallbackRepositoryTestSuite) TestPushPassesThrough() {
	s.Require().NoError(s.push("A"))

	live, err := s.mr.List(ledgerKey("42"))
	s.Require().NoError(err)
	s.Equal([]string{"A"}, live)
}

func (s *FallbackRepositoryTestSuite) TestPushHoldsWhenLedgerFails() {
	s.mr.SetError("connection refused")

	err := s.push("314159")

	s.ErrorIs(err, ErrHeld)
	s.Contains(err.Error(), "connection refused")

	s.mr.SetError("")
	s.Equal([]string{"314159"}, s.list())

	count, err := s.repo.Count(s.ctx, &CountInput{EventID: "42"})
	s.Require().NoError(err)
	s.Equal(1, count.Count)
}

func (s *FallbackRepositoryTestSuite) TestNextPushFlushesHeldInOrder() {
	s.Require().NoError(s.push("A"))
	s.mr.SetError("connection refused")
	s.ErrorIs(s.push("B"), ErrHeld)
	s.ErrorIs(s.push("C"), ErrHeld)
	s.mr.SetError("")

	s.Require().NoError(s.push("D"))

	live, err := s.mr.List(ledgerKey("42"))
	s.Require().NoError(err)
	s.Equal([]string{"A", "B", "C", "D"}, live)
	s.Equal([]string{"A", "B", "C", "D"}, s.list())
}

func (s *FallbackRepositoryTestSuite) TestDrainIncludesHeld() {
	s.mr.SetError("connection refused")
	s.ErrorIs(s.push("314159"), ErrHeld)
	s.mr.SetError("")

	out, err := s.repo.Drain(s.ctx, &DrainInput{EventID: "42"})

	s.Require().NoError(err)
	s.Equal([]string{"314159"}, out.Identifiers)
	s.Empty(s.list())
}

func (s *FallbackRepositoryTestSuite) TestDrainFailureKeepsHeld() {
	s.mr.SetError("connection refused")
	s.ErrorIs(s.push("314159"), ErrHeld)

	_, err := s.repo.Drain(s.ctx, &DrainInput{EventID: "42"})
	s.Error(err)

	s.mr.SetError("")
	s.Equal([]string{"314159"}, s.list())
}

func (s *FallbackRepositoryTestSuite) TestRestoreHoldsWhenLedgerFails() {
	s.mr.SetError("connection refused")

	err := s.repo.Restore(s.ctx, &RestoreInput{EventID: "42", Identifiers: []string{"A", "B"}})

	s.ErrorIs(err, ErrHeld)
	s.mr.SetError("")
	s.Equal([]string{"A", "B"}, s.list())
}

func (s *FallbackRepositoryTestSuite) TestReplayCarriesHeld() {
	s.Require().NoError(s.push("A"))
	s.mr.SetError("connection refused")
	s.ErrorIs(s.push("B"), ErrHeld)
	s.mr.SetError("")

	out, err := s.repo.BeginReplay(s.ctx, &BeginReplayInput{EventID: "42"})
	s.Require().NoError(err)
	s.Equal([]string{"A", "B"}, out.Identifiers)

	s.Require().NoError(s.repo.CommitReplay(s.ctx, &CommitReplayInput{EventID: "42", Remaining: []string{"B"}}))
	s.Equal([]string{"B"}, s.list())
}

func (s *FallbackRepositoryTestSuite) TestClearDropsHeld() {
	s.mr.SetError("connection refused")
	s.ErrorIs(s.push("A"), ErrHeld)
	s.mr.SetError("")

	s.Require().NoError(s.repo.Clear(s.ctx, &ClearInput{EventID: "42"}))

	s.Empty(s.list())
}

func TestNewFallbackRejectsNil(t *testing.T) {
	if _, err := NewFallback(nil); err == nil {
		t.Error("expected error for nil repository")
	}
}
