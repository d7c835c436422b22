package connection

import (
	"context"

	"cloud.google.com/go/firestore"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"

	"github.com/doitintl/hello/cmp-data-api/logger"
)

const (
	// CtxFirestoreKey is how firestore connections are stored/retrieved.
	CtxFirestoreKey = "app-firestore"

	// CtxRedisKey is how redis connections are stored/retrieved.
	CtxRedisKey = "app-redis"
)

type Connection struct {
	*FirestoreClient
	*RedisClient
}

// NewConnection initializes the store and cache connections necessary for api support.
func NewConnection(ctx context.Context, log *logger.Logging) (*Connection, error) {
	fs, err := NewFirestore(ctx, log)
	if err != nil {
		return nil, err
	}

	rc, err := NewRedis(ctx, log)
	if err != nil {
		return nil, err
	}

	return &Connection{
		fs,
		rc,
	}, nil
}

// Firestore returns a firestore connection that was stored in context.
// it returns by default a firestore connection, if there was not one on context.
func (c *Connection) Firestore(ctx context.Context) *firestore.Client {
	if fs, ok := ctx.Value(CtxFirestoreKey).(*firestore.Client); ok {
		return fs
	}

	return c.fs
}

// Redis returns a redis connection that was stored in context.
// it returns by default a redis connection, if there was not one on context.
func (c *Connection) Redis(ctx context.Context) *redis.Client {
	if rc, ok := ctx.Value(CtxRedisKey).(*redis.Client); ok {
		return rc
	}

	return c.rc
}

// WithContext stores the store and cache connections under gin context.
func (c *Connection) WithContext(ctx *gin.Context) {
	ctx.Set(CtxFirestoreKey, c.fs)
	ctx.Set(CtxRedisKey, c.rc)
}

type FirestoreFromContextFun = func(ctx context.Context) *firestore.Client
type RedisFromContextFun = func(ctx context.Context) *redis.Client
