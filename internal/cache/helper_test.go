package cache

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupMiniredis(t *testing.T) *miniredis.Miniredis {
	t.Helper()
	mr := miniredis.RunT(t)
	InitRedis(mr.Addr())
	require.NotNil(t, GetClient(), "miniredis should be reachable")
	t.Cleanup(func() { client = nil })
	return mr
}

func TestGetSetJSON(t *testing.T) {
	setupMiniredis(t)
	ctx := context.Background()

	type payload struct {
		Name string `json:"name"`
	}

	found, err := GetJSON(ctx, "missing", &payload{})
	require.NoError(t, err)
	assert.False(t, found)

	require.NoError(t, SetJSON(ctx, "p", payload{Name: "alice"}, time.Minute))

	var got payload
	found, err = GetJSON(ctx, "p", &got)
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, "alice", got.Name)
}

func TestSetJSONHonorsTTL(t *testing.T) {
	mr := setupMiniredis(t)
	ctx := context.Background()

	require.NoError(t, SetJSON(ctx, "k", "v", time.Minute))
	mr.FastForward(2 * time.Minute)

	found, err := GetJSON(ctx, "k", new(string))
	require.NoError(t, err)
	assert.False(t, found)
}

func TestAside(t *testing.T) {
	setupMiniredis(t)
	ctx := context.Background()

	calls := 0
	fetch := func(dest *string) func() error {
		return func() error {
			calls++
			*dest = "fetched"
			return nil
		}
	}

	var v string
	require.NoError(t, Aside(ctx, "a", &v, time.Minute, fetch(&v)))
	assert.Equal(t, "fetched", v)
	assert.Equal(t, 1, calls)

	// Second read is served from the cache.
	var v2 string
	require.NoError(t, Aside(ctx, "a", &v2, time.Minute, fetch(&v2)))
	assert.Equal(t, "fetched", v2)
	assert.Equal(t, 1, calls)
}

func TestAsidePropagatesFetchError(t *testing.T) {
	setupMiniredis(t)

	wantErr := errors.New("upstream down")
	var v string
	err := Aside(context.Background(), "b", &v, time.Minute, func() error {
		return wantErr
	})
	assert.ErrorIs(t, err, wantErr)
}

func TestHelpersNoopWithoutClient(t *testing.T) {
	client = nil
	ctx := context.Background()

	found, err := GetJSON(ctx, "x", new(string))
	require.NoError(t, err)
	assert.False(t, found)

	assert.NoError(t, SetJSON(ctx, "x", "v", time.Minute))

	// Aside degrades to calling fetch every time.
	var v string
	require.NoError(t, Aside(ctx, "x", &v, time.Minute, func() error {
		v = "direct"
		return nil
	}))
	assert.Equal(t, "direct", v)
}

func TestInvalidateUser(t *testing.T) {
	mr := setupMiniredis(t)
	ctx := context.Background()

	require.NoError(t, SetJSON(ctx, UserKey(3), "cached", time.Minute))
	InvalidateUser(ctx, 3)
	assert.False(t, mr.Exists(UserKey(3)))
}
