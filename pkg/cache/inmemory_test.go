package cache

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetFromCache(t *testing.T) {
	c := NewCache(time.Minute, time.Minute)
	c.Set("n", 42, time.Minute)
	c.Set("s", "dark", time.Minute)

	n, ok := GetFromCache[int](c, "n")
	assert.True(t, ok)
	assert.Equal(t, 42, n)

	_, ok = GetFromCache[int](c, "s")
	assert.False(t, ok, "wrong type must miss")

	_, ok = GetFromCache[string](c, "missing")
	assert.False(t, ok)
}

func TestAddKeepsFirstValue(t *testing.T) {
	c := NewCache(time.Minute, time.Minute)
	require.NoError(t, c.Add("k", "first", time.Minute))
	assert.Error(t, c.Add("k", "second", time.Minute))

	v, _ := GetFromCache[string](c, "k")
	assert.Equal(t, "first", v)
}

func TestTouchAndEviction(t *testing.T) {
	c := NewCache(time.Minute, time.Minute)

	evicted := make(chan string, 1)
	c.OnEvicted(func(key string, _ interface{}) { evicted <- key })

	assert.False(t, c.Touch("absent", time.Minute))

	c.Set("k", 1, time.Minute)
	assert.True(t, c.Touch("k", time.Hour))
	assert.Equal(t, 1, c.Count())

	c.Delete("k")
	select {
	case key := <-evicted:
		assert.Equal(t, "k", key)
	case <-time.After(time.Second):
		t.Fatal("eviction callback not called")
	}
	assert.Equal(t, 0, c.Count())
}
