package remote

import (
	"context"
	"fmt"
	"time"

	"github.com/go-redis/redis"
	"gitlab.mdcatapult.io/informatics/software-engineering/grammar-analyzer/lib/cache"
)

type RedisConfig struct {
	Host string
	Port int
	TTL  time.Duration `mapstructure:"ttl"`
}

func NewRedisClient(conf RedisConfig) cache.Client {
	return &redisClient{
		Client: redis.NewClient(&redis.Options{
			Addr: fmt.Sprintf("%s:%d", conf.Host, conf.Port)}),
		ttl: conf.TTL,
	}
}

type redisClient struct {
	*redis.Client
	ttl time.Duration
}

func (r *redisClient) Get(ctx context.Context, key string) ([]byte, bool, error) {
	b, err := r.WithContext(ctx).Get(key).Bytes()
	if err == redis.Nil {
		return nil, false, nil
	} else if err != nil {
		return nil, false, err
	}
	return b, true, nil
}

func (r *redisClient) Set(ctx context.Context, key string, value []byte) error {
	return r.WithContext(ctx).Set(key, value, r.ttl).Err()
}

func (r *redisClient) Ready() bool {
	return r.Ping().Err() == nil
}
