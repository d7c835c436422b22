package dal

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/redis/go-redis/v9"

	dataset "github.com/doitintl/hello/cmp-data-api/dataset/domain"
	"github.com/doitintl/hello/cmp-data-api/framework/connection"
)

const credentialsKeyPrefix = "api-"

// ErrCacheMiss means the dataset name has no entry in the credentials cache.
// It is distinct from a cache infrastructure failure, which is propagated
// as-is and must never be read as a permission denial.
var ErrCacheMiss = errors.New("api credentials not cached")

// CredentialsRedis is the read-only fast path over the denormalized
// access-control mirror of the registry. Entries are written by the
// provisioning flow only; this DAL never mutates the cache.
type CredentialsRedis struct {
	redisClientFun connection.RedisFromContextFun
}

func NewCredentialsRedisWithClient(fun connection.RedisFromContextFun) *CredentialsRedis {
	return &CredentialsRedis{
		redisClientFun: fun,
	}
}

// Get returns the cached credential entry of a dataset. The cache value is
// colon-delimited: "<public>:<apiKey>:<apiSecretKey>".
func (d *CredentialsRedis) Get(ctx context.Context, name string) (*dataset.CredentialCacheEntry, error) {
	if name == "" {
		return nil, dataset.ErrInvalidDatasetName
	}

	key := credentialsKeyPrefix + dataset.NormalizeName(name)

	value, err := d.redisClientFun(ctx).Get(ctx, key).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, ErrCacheMiss
		}

		return nil, fmt.Errorf("credentials cache lookup for %s: %w", name, err)
	}

	return parseCacheEntry(name, value)
}

func parseCacheEntry(name, value string) (*dataset.CredentialCacheEntry, error) {
	parts := strings.SplitN(value, ":", 3)
	if len(parts) != 3 {
		return nil, dataset.ErrMalformedCacheEntry(name)
	}

	public, err := strconv.ParseBool(parts[0])
	if err != nil {
		return nil, dataset.ErrMalformedCacheEntry(name)
	}

	return &dataset.CredentialCacheEntry{
		Public:       public,
		APIKey:       parts[1],
		APISecretKey: parts[2],
	}, nil
}
