package cache

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type payload struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}

func newRedisStore(t *testing.T) (*RedisStore, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return NewRedisStore(client, "test:"), mr
}

func stores(t *testing.T) map[string]Store {
	rs, _ := newRedisStore(t)
	return map[string]Store{
		"redis":  rs,
		"memory": NewMemoryStore(),
	}
}

func TestStore_SetGet(t *testing.T) {
	ctx := context.Background()
	for name, s := range stores(t) {
		t.Run(name, func(t *testing.T) {
			var out payload
			hit, err := s.Get(ctx, "missing", &out)
			require.NoError(t, err)
			assert.False(t, hit)

			require.NoError(t, s.Set(ctx, "k1", payload{Name: "a", Count: 2}, time.Minute, "user.1"))

			hit, err = s.Get(ctx, "k1", &out)
			require.NoError(t, err)
			assert.True(t, hit)
			assert.Equal(t, payload{Name: "a", Count: 2}, out)
		})
	}
}

func TestStore_InvalidateTags(t *testing.T) {
	ctx := context.Background()
	for name, s := range stores(t) {
		t.Run(name, func(t *testing.T) {
			require.NoError(t, s.Set(ctx, "a", 1, time.Minute, "user.1"))
			require.NoError(t, s.Set(ctx, "b", 2, time.Minute, "user.1", "profile.1"))
			require.NoError(t, s.Set(ctx, "c", 3, time.Minute, "user.2"))

			require.NoError(t, s.InvalidateTags(ctx, "user.1"))

			var v int
			hit, err := s.Get(ctx, "a", &v)
			require.NoError(t, err)
			assert.False(t, hit)

			hit, err = s.Get(ctx, "b", &v)
			require.NoError(t, err)
			assert.False(t, hit)

			hit, err = s.Get(ctx, "c", &v)
			require.NoError(t, err)
			assert.True(t, hit)
			assert.Equal(t, 3, v)

			// unknown tags are a no-op
			require.NoError(t, s.InvalidateTags(ctx, "nothing"))
		})
	}
}

func TestRedisStore_ExpiresEntries(t *testing.T) {
	ctx := context.Background()
	s, mr := newRedisStore(t)

	require.NoError(t, s.Set(ctx, "k", "v", time.Second, "tag"))
	assert.True(t, mr.Exists("test:k"))
	assert.True(t, mr.Exists("test:tag:tag"))

	mr.FastForward(2 * time.Second)

	var out string
	hit, err := s.Get(ctx, "k", &out)
	require.NoError(t, err)
	assert.False(t, hit)
}

func TestRedisStore_InvalidateRemovesTagSet(t *testing.T) {
	ctx := context.Background()
	s, mr := newRedisStore(t)

	require.NoError(t, s.Set(ctx, "k", "v", time.Minute, "tag"))
	require.NoError(t, s.InvalidateTags(ctx, "tag"))

	assert.False(t, mr.Exists("test:k"))
	assert.False(t, mr.Exists("test:tag:tag"))
}

func TestRedisStore_GetDecodeError(t *testing.T) {
	ctx := context.Background()
	s, mr := newRedisStore(t)
	require.NoError(t, mr.Set("test:bad", "not-json"))

	var out payload
	_, err := s.Get(ctx, "bad", &out)
	assert.Error(t, err)
}

func TestMemoryStore_Expiry(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore()
	now := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	s.now = func() time.Time { return now }

	require.NoError(t, s.Set(ctx, "k", "v", time.Minute, "tag"))
	now = now.Add(2 * time.Minute)

	var out string
	hit, err := s.Get(ctx, "k", &out)
	require.NoError(t, err)
	assert.False(t, hit)

	require.NoError(t, s.Set(ctx, "old", "v", time.Second, "t2"))
	now = now.Add(time.Minute)
	s.sweep()
	assert.Empty(t, s.entries)
	assert.Empty(t, s.tags)
}

func TestInstrument_CountsResults(t *testing.T) {
	ctx := context.Background()
	reg := prometheus.NewRegistry()
	s, err := Instrument(NewMemoryStore(), reg)
	require.NoError(t, err)

	var out int
	_, _ = s.Get(ctx, "k", &out)
	require.NoError(t, s.Set(ctx, "k", 1, time.Minute))
	_, _ = s.Get(ctx, "k", &out)
	_, _ = s.Get(ctx, "k", &out)

	assert.Equal(t, 1.0, testutil.ToFloat64(s.operations.WithLabelValues("get", "miss")))
	assert.Equal(t, 2.0, testutil.ToFloat64(s.operations.WithLabelValues("get", "hit")))
	assert.Equal(t, 1.0, testutil.ToFloat64(s.operations.WithLabelValues("set", "ok")))

	_, err = Instrument(NewMemoryStore(), reg)
	assert.Error(t, err, "duplicate registration")
}
