package connection

import (
	"context"
	"errors"

	"github.com/redis/go-redis/v9"

	"github.com/doitintl/hello/cmp-data-api/common"
	"github.com/doitintl/hello/cmp-data-api/logger"
)

var ErrRedisInitialization = errors.New("redis initialization error")

type RedisClient struct {
	rc *redis.Client
}

// NewRedis initializes the client for the api credentials cache. The cache is
// verified with a ping so that a misconfigured address fails at startup and
// not on the first authorized request.
func NewRedis(ctx context.Context, log *logger.Logging) (*RedisClient, error) {
	logger := log.Logger(ctx)

	rc := redis.NewClient(&redis.Options{
		Addr:     common.RedisAddr,
		Password: common.RedisPassword,
	})

	if err := rc.Ping(ctx).Err(); err != nil {
		logger.Errorf("%s: %s", ErrRedisInitialization, err)
		return nil, ErrRedisInitialization
	}

	return &RedisClient{
		rc,
	}, nil
}
