package queueview

import (
	"context"
	"mortuary-service/internal/app/config"
	"mortuary-service/internal/pkg/constvars"
	"mortuary-service/internal/pkg/dto/requests"
	"mortuary-service/internal/pkg/emr_dto"
	"testing"
	"time"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

type fakeQueueClient struct {
	entries   []emr_dto.QueueEntry
	listCalls int
	closed    []string
	endedAt   []string
}

func (c *fakeQueueClient) ListActiveEntries(ctx context.Context, locationUUID string) ([]emr_dto.QueueEntry, error) {
	c.listCalls++
	return c.entries, nil
}

func (c *fakeQueueClient) CreateEntry(ctx context.Context, request *emr_dto.CreateQueueEntryRequest) (*emr_dto.QueueEntry, error) {
	return &emr_dto.QueueEntry{UUID: "entry-new"}, nil
}

func (c *fakeQueueClient) CloseEntry(ctx context.Context, entryUUID, endedAt string) (*emr_dto.QueueEntry, error) {
	c.closed = append(c.closed, entryUUID)
	c.endedAt = append(c.endedAt, endedAt)
	return &emr_dto.QueueEntry{UUID: entryUUID, EndedAt: endedAt}, nil
}

type fakeCache struct {
	values      map[string]string
	invalidated []string
}

func (c *fakeCache) GetJSON(ctx context.Context, key string, dest interface{}) (bool, error) {
	data, ok := c.values[key]
	if !ok {
		return false, nil
	}
	return true, json.Unmarshal([]byte(data), dest)
}

func (c *fakeCache) SetJSON(ctx context.Context, key string, value interface{}, exp time.Duration, tags ...string) error {
	if c.values == nil {
		c.values = map[string]string{}
	}
	data, err := json.Marshal(value)
	if err != nil {
		return err
	}
	c.values[key] = string(data)
	return nil
}

func (c *fakeCache) InvalidateTags(ctx context.Context, tags ...string) error {
	c.invalidated = append(c.invalidated, tags...)
	return nil
}

func newQueueFixture(entries []emr_dto.QueueEntry) (*queueUsecase, *fakeQueueClient, *fakeCache) {
	client := &fakeQueueClient{entries: entries}
	cache := &fakeCache{}
	usecase := &queueUsecase{
		QueueEmrClient: client,
		Cache:          cache,
		InternalConfig: &config.InternalConfig{
			Mortuary: config.Mortuary{LocationUUID: "ward-1", CacheTTLSeconds: 60},
		},
		Log: zap.NewNop(),
	}
	return usecase, client, cache
}

func TestListQueueEntries(t *testing.T) {
	entries := []emr_dto.QueueEntry{
		{UUID: "entry-1", Patient: emr_dto.ResourceRef{UUID: "patient-1", Display: "John Otieno"}, StartedAt: "2026-08-27"},
		{UUID: "entry-2", Patient: emr_dto.ResourceRef{UUID: "patient-2", Display: "Mary Wanjiku"}, StartedAt: "2026-08-28"},
	}

	t.Run("Lists And Caches", func(t *testing.T) {
		usecase, client, _ := newQueueFixture(entries)
		pagination := &requests.Pagination{Page: 1, PageSize: 10}

		patients, total, err := usecase.ListQueueEntries(context.Background(), pagination)
		assert.NoError(t, err)
		assert.Equal(t, 2, total)
		assert.Len(t, patients, 2)
		assert.Equal(t, constvars.StageAwaiting, patients[0].Stage)
		assert.Equal(t, 1, client.listCalls)

		// Second identical read is served from the cache.
		_, _, err = usecase.ListQueueEntries(context.Background(), pagination)
		assert.NoError(t, err)
		assert.Equal(t, 1, client.listCalls, "the second page load should hit the cache")
	})

	t.Run("Search Filters", func(t *testing.T) {
		usecase, _, _ := newQueueFixture(entries)
		patients, total, err := usecase.ListQueueEntries(context.Background(), &requests.Pagination{Page: 1, PageSize: 10, Search: "wanjiku"})
		assert.NoError(t, err)
		assert.Equal(t, 1, total)
		assert.Equal(t, "patient-2", patients[0].PatientUUID)
	})

	t.Run("Pages Past The End Are Empty", func(t *testing.T) {
		usecase, _, _ := newQueueFixture(entries)
		patients, total, err := usecase.ListQueueEntries(context.Background(), &requests.Pagination{Page: 5, PageSize: 10})
		assert.NoError(t, err)
		assert.Equal(t, 2, total)
		assert.Len(t, patients, 0)
	})
}

func TestReleaseQueueEntry(t *testing.T) {
	t.Run("Explicit End Time", func(t *testing.T) {
		usecase, client, cache := newQueueFixture(nil)

		err := usecase.ReleaseQueueEntry(context.Background(), "entry-1", &requests.ReleaseQueueEntryRequest{
			EndedAt: "2026-08-29T10:00:00.000+0300",
		})
		assert.NoError(t, err)
		assert.Equal(t, []string{"entry-1"}, client.closed)
		assert.Equal(t, []string{"2026-08-29T10:00:00.000+0300"}, client.endedAt)
		assert.Contains(t, cache.invalidated, constvars.CacheTagQueue, "releasing an entry must drop the queue views")
	})

	t.Run("Defaults End Time To Now", func(t *testing.T) {
		usecase, client, _ := newQueueFixture(nil)

		err := usecase.ReleaseQueueEntry(context.Background(), "entry-2", &requests.ReleaseQueueEntryRequest{})
		assert.NoError(t, err)
		assert.NotEmpty(t, client.endedAt[0], "a blank end time is filled in")
	})
}
