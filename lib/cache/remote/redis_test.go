package remote

import (
	"context"
	"strconv"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/suite"
	"gitlab.mdcatapult.io/informatics/software-engineering/grammar-analyzer/lib/cache"
)

type redisSuite struct {
	suite.Suite
	server *miniredis.Miniredis
	client cache.Client
}

func TestRedisSuite(t *testing.T) {
	suite.Run(t, new(redisSuite))
}

func (s *redisSuite) SetupTest() {
	s.server = miniredis.RunT(s.T())
	port, err := strconv.Atoi(s.server.Port())
	s.Require().NoError(err)

	s.client = NewRedisClient(RedisConfig{
		Host: s.server.Host(),
		Port: port,
		TTL:  time.Hour,
	})
}

func (s *redisSuite) TestGetMiss() {
	value, ok, err := s.client.Get(context.Background(), "grammar:missing")
	s.Require().NoError(err)
	s.False(ok)
	s.Nil(value)
}

func (s *redisSuite) TestSetThenGet() {
	ctx := context.Background()
	s.Require().NoError(s.client.Set(ctx, "grammar:abc", []byte(`[{"offset":1}]`)))

	value, ok, err := s.client.Get(ctx, "grammar:abc")
	s.Require().NoError(err)
	s.True(ok)
	s.Equal(`[{"offset":1}]`, string(value))
}

func (s *redisSuite) TestSetAppliesTTL() {
	s.Require().NoError(s.client.Set(context.Background(), "grammar:abc", []byte("x")))
	s.Equal(time.Hour, s.server.TTL("grammar:abc"))

	s.server.FastForward(time.Hour + time.Second)
	_, ok, err := s.client.Get(context.Background(), "grammar:abc")
	s.Require().NoError(err)
	s.False(ok)
}

func (s *redisSuite) TestReady() {
	s.True(s.client.Ready())

	s.server.Close()
	s.False(s.client.Ready())
}

func (s *redisSuite) TestGetError() {
	s.server.Close()

	_, ok, err := s.client.Get(context.Background(), "grammar:abc")
	s.Error(err)
	s.False(ok)
}
