package cache

import (
	"context"
	"fmt"
	"mortuary-service/internal/app/contracts"
	"mortuary-service/internal/pkg/exceptions"
	"time"

	"github.com/goccy/go-json"
)

const (
	cacheKeyPrefix = "mortuary:cache:%s"
	tagSetPrefix   = "mortuary:tag:%s"
)

type taggedCache struct {
	RedisRepository contracts.RedisRepository
}

// NewTaggedCache wraps the redis repository with tag bookkeeping. Every cached
// payload registers itself under the tags it was built from, so a mutation
// invalidates exactly the entries that read the data it changed instead of
// guessing by key prefix.
func NewTaggedCache(redisRepository contracts.RedisRepository) contracts.TaggedCache {
	return &taggedCache{RedisRepository: redisRepository}
}

func (c *taggedCache) GetJSON(ctx context.Context, key string, dest interface{}) (bool, error) {
	data, err := c.RedisRepository.Get(ctx, fmt.Sprintf(cacheKeyPrefix, key))
	if err != nil {
		return false, err
	}
	if data == "" {
		return false, nil
	}
	if err := json.Unmarshal([]byte(data), dest); err != nil {
		return false, exceptions.ErrCannotParseJSON(err)
	}
	return true, nil
}

func (c *taggedCache) SetJSON(ctx context.Context, key string, value interface{}, exp time.Duration, tags ...string) error {
	cacheKey := fmt.Sprintf(cacheKeyPrefix, key)
	if err := c.RedisRepository.Set(ctx, cacheKey, value, exp); err != nil {
		return err
	}
	for _, tag := range tags {
		if err := c.RedisRepository.AddToSet(ctx, fmt.Sprintf(tagSetPrefix, tag), cacheKey); err != nil {
			return err
		}
	}
	return nil
}

func (c *taggedCache) InvalidateTags(ctx context.Context, tags ...string) error {
	for _, tag := range tags {
		tagKey := fmt.Sprintf(tagSetPrefix, tag)
		members, err := c.RedisRepository.GetSetMembers(ctx, tagKey)
		if err != nil {
			return err
		}
		if err := c.RedisRepository.Delete(ctx, append(members, tagKey)...); err != nil {
			return err
		}
	}
	return nil
}
