package session_test

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/questline/internal/entities"
	"github.com/KirkDiggler/questline/internal/errors"
	"github.com/KirkDiggler/questline/internal/pkg/clock"
	"github.com/KirkDiggler/questline/internal/repositories/session"
	"github.com/KirkDiggler/questline/internal/testutils"
	"github.com/KirkDiggler/questline/internal/testutils/builders"
)

const testSessionKey = "questline:session:sess-test-123"

type RedisSessionTestSuite struct {
	suite.Suite
	mr    *miniredis.Miniredis
	clock *clock.Manual
	repo  session.Repository
	ctx   context.Context
}

func TestRedisSessionSuite(t *testing.T) {
	suite.Run(t, new(RedisSessionTestSuite))
}

func (s *RedisSessionTestSuite) SetupTest() {
	client, mr := testutils.CreateTestRedisClient(s.T())
	s.mr = mr
	s.clock = clock.NewManual(time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC))
	s.ctx = context.Background()

	repo, err := session.NewRedis(&session.RedisConfig{
		Client: client,
		Clock:  s.clock,
		TTL:    time.Hour,
	})
	s.Require().NoError(err)
	s.repo = repo
}

func (s *RedisSessionTestSuite) TestNewRedis() {
	testCases := []struct {
		name   string
		config *session.RedisConfig
		errMsg string
	}{
		{name: "nil config", config: nil, errMsg: "config is required"},
		{name: "missing client", config: &session.RedisConfig{Clock: s.clock}, errMsg: "Client"},
		{name: "missing clock", config: &session.RedisConfig{}, errMsg: "Clock"},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			repo, err := session.NewRedis(tc.config)
			s.Error(err)
			s.Nil(repo)
			s.True(errors.IsInvalidArgument(err))
			s.Contains(err.Error(), tc.errMsg)
		})
	}
}

func (s *RedisSessionTestSuite) TestSaveAndGet() {
	saved := builders.NewSessionBuilder().
		WithStats(entities.TierSSS, entities.TierA, entities.TierB).
		WithCompleted(1, 2, 10).
		WithPoints(140).
		WithCrew("Gu Hajun", entities.TierC, entities.TierC, entities.TierD).
		WithChoice(199, "jaeha").
		WithBreakthrough(entities.BreakthroughAwakened).
		Build()
	saved.Character.Stats.SetProgress(entities.StatStrength, 1)

	out, err := s.repo.Save(s.ctx, &session.SaveInput{Session: saved})
	s.Require().NoError(err)
	s.Equal(s.clock.Now().Add(time.Hour), out.ExpiresAt)
	s.True(s.mr.Exists(testSessionKey))
	s.Equal(time.Hour, s.mr.TTL(testSessionKey))

	got, err := s.repo.Get(s.ctx, &session.GetInput{SessionID: saved.ID})
	s.Require().NoError(err)
	s.Equal(saved.Character.Stats, got.Session.Character.Stats)
	s.True(got.Session.IsQuestCompleted(10))
	s.Equal(3, got.Session.CompletedCount)
	s.Equal(140, got.Session.Points)
	s.Equal("jaeha", got.Session.Choices[199])
	s.True(got.Session.BreakthroughApplied[entities.BreakthroughAwakened])
	s.Require().Len(got.Session.Crew, 1)
	s.Equal("Gu Hajun", got.Session.Crew[0].Name)
}

func (s *RedisSessionTestSuite) TestSaveRefreshesTTL() {
	saved := builders.NewSessionBuilder().Build()

	_, err := s.repo.Save(s.ctx, &session.SaveInput{Session: saved})
	s.Require().NoError(err)
	s.mr.FastForward(50 * time.Minute)

	_, err = s.repo.Save(s.ctx, &session.SaveInput{Session: saved})
	s.Require().NoError(err)
	s.mr.FastForward(50 * time.Minute)

	_, err = s.repo.Get(s.ctx, &session.GetInput{SessionID: saved.ID})
	s.NoError(err)

	s.mr.FastForward(time.Hour)
	_, err = s.repo.Get(s.ctx, &session.GetInput{SessionID: saved.ID})
	s.True(errors.IsNotFound(err))
}

func (s *RedisSessionTestSuite) TestInvalidInput() {
	_, err := s.repo.Save(s.ctx, nil)
	s.True(errors.IsInvalidArgument(err))

	_, err = s.repo.Save(s.ctx, &session.SaveInput{Session: builders.NewSessionBuilder().WithID("").Build()})
	s.True(errors.IsInvalidArgument(err))

	_, err = s.repo.Get(s.ctx, &session.GetInput{})
	s.True(errors.IsInvalidArgument(err))

	_, err = s.repo.Delete(s.ctx, nil)
	s.True(errors.IsInvalidArgument(err))
}

func (s *RedisSessionTestSuite) TestDelete() {
	saved := builders.NewSessionBuilder().Build()
	_, err := s.repo.Save(s.ctx, &session.SaveInput{Session: saved})
	s.Require().NoError(err)

	_, err = s.repo.Delete(s.ctx, &session.DeleteInput{SessionID: saved.ID})
	s.NoError(err)
	s.False(s.mr.Exists(testSessionKey))

	_, err = s.repo.Delete(s.ctx, &session.DeleteInput{SessionID: saved.ID})
	s.True(errors.IsNotFound(err))
}

func TestRedisGetCorruptSnapshot(t *testing.T) {
	client, _ := testutils.CreateTestRedisClientWithContext(t, func(mr *miniredis.Miniredis) {
		_ = mr.Set(testSessionKey, "{not json")
		_ = mr.Set("questline:session:empty", `{"id":"empty"}`)
	})

	repo, err := session.NewRedis(&session.RedisConfig{Client: client, Clock: clock.New()})
	if err != nil {
		t.Fatal(err)
	}

	_, err = repo.Get(context.Background(), &session.GetInput{SessionID: "sess-test-123"})
	if err == nil {
		t.Fatal("expected an error for a corrupt snapshot")
	}

	_, err = repo.Get(context.Background(), &session.GetInput{SessionID: "empty"})
	if !errors.IsInternal(err) {
		t.Fatalf("expected internal error for a snapshot without character, got %v", err)
	}
}
