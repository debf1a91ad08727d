//go:build integration

package inflight_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"sunsetguide/internal/submission/inflight"
	"sunsetguide/pkg/platform/sentinel"
	"sunsetguide/pkg/testutil/containers"
)

type RedisLockSuite struct {
	suite.Suite
	redis *containers.RedisContainer
	lock  *inflight.Redis
}

func TestRedisLockSuite(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}
	suite.Run(t, new(RedisLockSuite))
}

func (s *RedisLockSuite) SetupSuite() {
	s.redis = containers.GetManager().GetRedis(s.T())
	s.lock = inflight.NewRedis(s.redis.Client)
}

func (s *RedisLockSuite) SetupTest() {
	s.Require().NoError(s.redis.FlushAll(context.Background()))
}

func (s *RedisLockSuite) TestAcquireRelease() {
	ctx := context.Background()
	s.Require().NoError(s.lock.Acquire(ctx, "form-1", time.Minute))
	s.ErrorIs(s.lock.Acquire(ctx, "form-1", time.Minute), sentinel.ErrConflict)

	s.Require().NoError(s.lock.Release(ctx, "form-1"))
	s.NoError(s.lock.Acquire(ctx, "form-1", time.Minute))
}

func (s *RedisLockSuite) TestLockCarriesTTL() {
	ctx := context.Background()
	s.Require().NoError(s.lock.Acquire(ctx, "form-2", 30*time.Second))

	ttl, err := s.redis.Client.TTL(ctx, "sunsetguide:inflight:form-2").Result()
	s.Require().NoError(err)
	s.Greater(ttl, time.Duration(0))
	s.LessOrEqual(ttl, 30*time.Second)
}
