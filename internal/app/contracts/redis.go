package contracts

import (
	"context"
	"time"
)

type RedisRepository interface {
	Delete(ctx context.Context, keys ...string) error
	Set(ctx context.Context, key string, value interface{}, exp time.Duration) error
	Get(ctx context.Context, key string) (string, error)
	AddToSet(ctx context.Context, key string, values ...interface{}) error
	GetSetMembers(ctx context.Context, key string) ([]string, error)
}

// TaggedCache caches query payloads under entity tags. A query registers the
// tags it reads when it stores a payload; a mutation invalidates the tags it
// writes, which drops exactly the keys registered under them.
type TaggedCache interface {
	GetJSON(ctx context.Context, key string, dest interface{}) (bool, error)
	SetJSON(ctx context.Context, key string, value interface{}, exp time.Duration, tags ...string) error
	InvalidateTags(ctx context.Context, tags ...string) error
}
