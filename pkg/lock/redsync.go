package lock

import (
	"context"
	"time"

	"github.com/cloudwego/hertz/pkg/common/hlog"
	"github.com/go-redsync/redsync/v4"
	goredis "github.com/go-redsync/redsync/v4/redis/goredis/v9"
	"github.com/pkg/errors"
	"github.com/redis/go-redis/v9"
)

const keyPrefix = "vidtube:lock:"

// RedisLocker serializes callers across every API replica sharing one Redis.
type RedisLocker struct {
	rs     *redsync.Redsync
	expiry time.Duration
}

func NewRedisLocker(client *redis.Client, expiry time.Duration) *RedisLocker {
	return &RedisLocker{
		rs:     redsync.New(goredis.NewPool(client)),
		expiry: expiry,
	}
}

func (l *RedisLocker) Lock(ctx context.Context, key string) (func(), error) {
	m := l.rs.NewMutex(keyPrefix+key,
		redsync.WithExpiry(l.expiry),
		redsync.WithTries(64),
		redsync.WithRetryDelay(25*time.Millisecond),
	)
	if err := m.LockContext(ctx); err != nil {
		return nil, errors.Wrapf(err, "acquire lock %s", key)
	}
	return func() {
		// The request context may already be done; unlocking must still happen.
		if _, err := m.UnlockContext(context.Background()); err != nil {
			hlog.Warnf("release lock %s: %v", key, err)
		}
	}, nil
}
