package cache

import (
	"context"
	"io"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRedis(t *testing.T) (*Redis, *miniredis.Miniredis) {
	t.Helper()

	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	logger := logrus.New()
	logger.SetOutput(io.Discard)

	return NewRedisFromClient(client, logger), mr
}

func TestRedis_SetGet(t *testing.T) {
	ctx := context.Background()

	type payload struct {
		Name  string `json:"name"`
		Count int    `json:"count"`
	}

	t.Run("round-trips a struct", func(t *testing.T) {
		r, _ := newTestRedis(t)

		err := r.Set(ctx, "roster:u12", &payload{Name: "tuesday group", Count: 14}, time.Minute)
		require.NoError(t, err)

		var got payload
		found, err := r.Get(ctx, "roster:u12", &got)
		require.NoError(t, err)
		assert.True(t, found)
		assert.Equal(t, payload{Name: "tuesday group", Count: 14}, got)
	})

	t.Run("missing key reports not found", func(t *testing.T) {
		r, _ := newTestRedis(t)

		var got payload
		found, err := r.Get(ctx, "missing", &got)
		require.NoError(t, err)
		assert.False(t, found)
	})

	t.Run("keys expire after the TTL", func(t *testing.T) {
		r, mr := newTestRedis(t)

		require.NoError(t, r.Set(ctx, "short-lived", &payload{Name: "x"}, time.Second))
		mr.FastForward(2 * time.Second)

		var got payload
		found, err := r.Get(ctx, "short-lived", &got)
		require.NoError(t, err)
		assert.False(t, found)
	})

	t.Run("returns error on corrupt payload", func(t *testing.T) {
		r, mr := newTestRedis(t)

		require.NoError(t, mr.Set("corrupt", "not json"))

		var got payload
		_, err := r.Get(ctx, "corrupt", &got)
		assert.Error(t, err)
	})
}

func TestRedis_Delete(t *testing.T) {
	ctx := context.Background()
	r, _ := newTestRedis(t)

	require.NoError(t, r.Set(ctx, "doomed", "value", time.Minute))
	require.NoError(t, r.Delete(ctx, "doomed"))

	var got string
	found, err := r.Get(ctx, "doomed", &got)
	require.NoError(t, err)
	assert.False(t, found)
}

func TestUserCacheKey(t *testing.T) {
	tests := []struct {
		name     string
		userID   string
		expected string
	}{
		{"simple id", "123", "user:123"},
		{"objectid format", "507f1f77bcf86cd799439011", "user:507f1f77bcf86cd799439011"},
		{"empty string", "", "user:"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, UserCacheKey(tt.userID))
		})
	}
}

func TestOrgStatsCacheKey(t *testing.T) {
	tests := []struct {
		name     string
		orgID    string
		expected string
	}{
		{"simple id", "456", "org_stats:456"},
		{"objectid format", "64f1f77bcf86cd7994390abc", "org_stats:64f1f77bcf86cd7994390abc"},
		{"empty string", "", "org_stats:"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, OrgStatsCacheKey(tt.orgID))
		})
	}
}
