package lock

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/hardika-spec-610/linkedIn-BE/src/lib"
	"github.com/pkg/errors"
	"github.com/redis/go-redis/v9"
)

// releaseScript deletes the key only when it still holds our token, so a lock
// that expired and was taken by another instance is left alone.
var releaseScript = redis.NewScript(`
	if redis.call("GET", KEYS[1]) == ARGV[1] then
		return redis.call("DEL", KEYS[1])
	end
	return 0
`)

// RedisLocker shares pair locks between API instances. The TTL bounds how long
// a crashed holder can block a pair.
type RedisLocker struct {
	client *redis.Client
	ttl    time.Duration
	retry  time.Duration
	prefix string
}

func NewRedisLocker(client *redis.Client, ttl time.Duration) *RedisLocker {
	return &RedisLocker{
		client: client,
		ttl:    ttl,
		retry:  25 * time.Millisecond,
		prefix: "lock:",
	}
}

func (l *RedisLocker) Acquire(ctx context.Context, key string) (func(), error) {
	redisKey := l.prefix + key
	token := uuid.NewString()

	// never wait longer than a holder may keep the lock
	ctx, cancel := context.WithTimeout(ctx, l.ttl)
	defer cancel()

	ticker := time.NewTicker(l.retry)
	defer ticker.Stop()

	for {
		ok, err := l.client.SetNX(ctx, redisKey, token, l.ttl).Result()
		if err != nil {
			return nil, errors.Wrapf(err, "acquire lock %s", key)
		}
		if ok {
			return func() {
				// the request context may already be cancelled
				releaseCtx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
				defer cancel()
				if err := releaseScript.Run(releaseCtx, l.client, []string{redisKey}, token).Err(); err != nil {
					lib.Log.Warn().Err(err).Str("key", key).Msg("release redis lock")
				}
			}, nil
		}

		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-ticker.C:
		}
	}
}
