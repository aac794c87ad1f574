package cache

import (
	"context"
	"testing"
	"time"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
)

type memoryRedis struct {
	values map[string]string
	sets   map[string]map[string]bool
}

func newMemoryRedis() *memoryRedis {
	return &memoryRedis{
		values: map[string]string{},
		sets:   map[string]map[string]bool{},
	}
}

func (r *memoryRedis) Delete(ctx context.Context, keys ...string) error {
	for _, key := range keys {
		delete(r.values, key)
		delete(r.sets, key)
	}
	return nil
}

func (r *memoryRedis) Set(ctx context.Context, key string, value interface{}, exp time.Duration) error {
	data, err := json.Marshal(value)
	if err != nil {
		return err
	}
	r.values[key] = string(data)
	return nil
}

func (r *memoryRedis) Get(ctx context.Context, key string) (string, error) {
	return r.values[key], nil
}

func (r *memoryRedis) AddToSet(ctx context.Context, key string, values ...interface{}) error {
	if r.sets[key] == nil {
		r.sets[key] = map[string]bool{}
	}
	for _, value := range values {
		r.sets[key][value.(string)] = true
	}
	return nil
}

func (r *memoryRedis) GetSetMembers(ctx context.Context, key string) ([]string, error) {
	members := []string{}
	for member := range r.sets[key] {
		members = append(members, member)
	}
	return members, nil
}

type cachedPayload struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}

func TestTaggedCache(t *testing.T) {
	ctx := context.Background()

	t.Run("Round Trip", func(t *testing.T) {
		redis := newMemoryRedis()
		cache := NewTaggedCache(redis)

		err := cache.SetJSON(ctx, "beds:layout:1:10:", cachedPayload{Name: "ward", Count: 12}, time.Minute, "beds")
		assert.NoError(t, err)

		var got cachedPayload
		hit, err := cache.GetJSON(ctx, "beds:layout:1:10:", &got)
		assert.NoError(t, err)
		assert.True(t, hit)
		assert.Equal(t, "ward", got.Name)
		assert.Equal(t, 12, got.Count)
	})

	t.Run("Miss", func(t *testing.T) {
		cache := NewTaggedCache(newMemoryRedis())

		var got cachedPayload
		hit, err := cache.GetJSON(ctx, "never-set", &got)
		assert.NoError(t, err)
		assert.False(t, hit, "an absent key is a miss, not an error")
	})

	t.Run("Tag Invalidation Drops Registered Keys", func(t *testing.T) {
		redis := newMemoryRedis()
		cache := NewTaggedCache(redis)

		assert.NoError(t, cache.SetJSON(ctx, "beds:layout:1:10:", cachedPayload{Name: "beds"}, time.Minute, "beds", "visits"))
		assert.NoError(t, cache.SetJSON(ctx, "queue:entries:1:10:", cachedPayload{Name: "queue"}, time.Minute, "queue"))

		assert.NoError(t, cache.InvalidateTags(ctx, "beds"))

		var got cachedPayload
		hit, err := cache.GetJSON(ctx, "beds:layout:1:10:", &got)
		assert.NoError(t, err)
		assert.False(t, hit, "entries registered under the invalidated tag should be gone")

		hit, err = cache.GetJSON(ctx, "queue:entries:1:10:", &got)
		assert.NoError(t, err)
		assert.True(t, hit, "entries under other tags survive")
	})

	t.Run("Invalidating An Empty Tag Is A NoOp", func(t *testing.T) {
		cache := NewTaggedCache(newMemoryRedis())
		assert.NoError(t, cache.InvalidateTags(ctx, "reports"))
	})
}
