package ledger_test

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/go-redis/redismock/v9"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	dnderr "github.com/Garblesnarff/infinite-realms-production-sub010/internal/errors"
	"github.com/Garblesnarff/infinite-realms-production-sub010/internal/repositories/ledger"
	mockledger "github.com/Garblesnarff/infinite-realms-production-sub010/internal/repositories/ledger/mock"
)

type RedisRepoTestSuite struct {
	suite.Suite
	mock         redismock.ClientMock
	repo         ledger.Repository
	mockCtrl     *gomock.Controller
	timeProvider *mockledger.MockTimeProvider
	now          time.Time
}

func (s *RedisRepoTestSuite) SetupTest() {
	client, mock := redismock.NewClientMock()
	s.mock = mock
	s.mockCtrl = gomock.NewController(s.T())
	s.timeProvider = mockledger.NewMockTimeProvider(s.mockCtrl)
	s.now = time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	repo, err := ledger.NewRedisRepository(&ledger.RedisConfig{
		Client:       client,
		TTL:          time.Hour,
		TimeProvider: s.timeProvider,
	})
	s.Require().NoError(err)
	s.repo = repo
}

func (s *RedisRepoTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
	s.NoError(s.mock.ExpectationsWereMet())
}

func TestRedisRepoTestSuite(t *testing.T) {
	suite.Run(t, new(RedisRepoTestSuite))
}

func (s *RedisRepoTestSuite) claimJSON() string {
	data, err := json.Marshal(&ledger.Claim{ActionID: "act-1", ParticipantID: "goblin-1", ClaimedAt: s.now})
	s.Require().NoError(err)
	return string(data)
}

func (s *RedisRepoTestSuite) TestClaim() {
	ctx := context.Background()
	s.timeProvider.EXPECT().Now().Return(s.now).Times(3)

	// Happy path
	s.mock.ExpectSetNX("ledger:act-1:goblin-1", s.claimJSON(), time.Hour).SetVal(true)
	claimed, err := s.repo.Claim(ctx, "act-1", "goblin-1")
	s.NoError(err)
	s.True(claimed)

	// Already claimed
	s.mock.ExpectSetNX("ledger:act-1:goblin-1", s.claimJSON(), time.Hour).SetVal(false)
	claimed, err = s.repo.Claim(ctx, "act-1", "goblin-1")
	s.NoError(err)
	s.False(claimed)

	// Dependency error
	s.mock.ExpectSetNX("ledger:act-1:goblin-1", s.claimJSON(), time.Hour).SetErr(errors.New("redis error"))
	_, err = s.repo.Claim(ctx, "act-1", "goblin-1")
	s.Error(err)

	// Input validation
	_, err = s.repo.Claim(ctx, "", "goblin-1")
	s.True(dnderr.IsInvalidArgument(err))
	_, err = s.repo.Claim(ctx, "act-1", "")
	s.True(dnderr.IsInvalidArgument(err))
}

func (s *RedisRepoTestSuite) TestGet() {
	ctx := context.Background()

	s.mock.ExpectGet("ledger:act-1:goblin-1").SetVal(s.claimJSON())
	claim, err := s.repo.Get(ctx, "act-1", "goblin-1")
	s.Require().NoError(err)
	s.Equal("act-1", claim.ActionID)
	s.Equal("goblin-1", claim.ParticipantID)
	s.True(s.now.Equal(claim.ClaimedAt))

	s.mock.ExpectGet("ledger:act-2:goblin-1").RedisNil()
	_, err = s.repo.Get(ctx, "act-2", "goblin-1")
	s.True(dnderr.IsNotFound(err))

	s.mock.ExpectGet("ledger:act-3:goblin-1").SetVal("not json")
	_, err = s.repo.Get(ctx, "act-3", "goblin-1")
	s.Error(err)
}

func (s *RedisRepoTestSuite) TestRelease() {
	ctx := context.Background()

	s.mock.ExpectDel("ledger:act-1:goblin-1").SetVal(1)
	s.NoError(s.repo.Release(ctx, "act-1", "goblin-1"))

	s.mock.ExpectDel("ledger:act-1:goblin-1").SetErr(errors.New("redis error"))
	s.Error(s.repo.Release(ctx, "act-1", "goblin-1"))
}

func TestNewRedisRepository_Validation(t *testing.T) {
	_, err := ledger.NewRedisRepository(nil)
	if !dnderr.IsInvalidArgument(err) {
		t.Fatalf("expected invalid argument, got %v", err)
	}
	_, err = ledger.NewRedis(nil)
	if !dnderr.IsInvalidArgument(err) {
		t.Fatalf("expected invalid argument, got %v", err)
	}
	client, _ := redismock.NewClientMock()
	_, err = ledger.NewRedisRepository(&ledger.RedisConfig{Client: client, TTL: -time.Second})
	if !dnderr.IsInvalidArgument(err) {
		t.Fatalf("expected invalid argument, got %v", err)
	}
}
