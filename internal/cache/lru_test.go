package cache

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLRU_SetAndGet(t *testing.T) {
	c := NewLRU[string](4, time.Minute)

	c.Set("7", "Groceries")

	value, ok := c.Get("7")
	assert.True(t, ok)
	assert.Equal(t, "Groceries", value)
}

func TestLRU_MissingKey(t *testing.T) {
	c := NewLRU[string](4, time.Minute)

	value, ok := c.Get("absent")
	assert.False(t, ok)
	assert.Empty(t, value)
}

func TestLRU_UpdateExistingKey(t *testing.T) {
	c := NewLRU[string](4, time.Minute)

	c.Set("7", "Groceries")
	c.Set("7", "Dining Out")

	value, ok := c.Get("7")
	assert.True(t, ok)
	assert.Equal(t, "Dining Out", value)
	assert.Equal(t, 1, c.Size())
}

func TestLRU_EvictsLeastRecentlyUsed(t *testing.T) {
	c := NewLRU[string](2, time.Minute)

	c.Set("1", "Groceries")
	c.Set("2", "Rent")

	// touch "1" so "2" becomes the eviction candidate
	_, _ = c.Get("1")

	c.Set("3", "Utilities")

	_, ok := c.Get("2")
	assert.False(t, ok)

	_, ok = c.Get("1")
	assert.True(t, ok)
	_, ok = c.Get("3")
	assert.True(t, ok)
	assert.Equal(t, 2, c.Size())
}

func TestLRU_ExpiredEntryIsEvictedOnAccess(t *testing.T) {
	c := NewLRU[string](4, 10*time.Millisecond)

	c.Set("7", "Groceries")
	time.Sleep(20 * time.Millisecond)

	_, ok := c.Get("7")
	assert.False(t, ok)
	assert.Equal(t, 0, c.Size())
}

func TestLRU_Delete(t *testing.T) {
	c := NewLRU[string](4, time.Minute)

	c.Set("7", "Groceries")
	c.Delete("7")
	c.Delete("absent")

	_, ok := c.Get("7")
	assert.False(t, ok)
	assert.Equal(t, 0, c.Size())
}
