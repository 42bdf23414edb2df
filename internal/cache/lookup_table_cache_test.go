package cache

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLookupTableCache(t *testing.T) {
	t.Run("命中与过期", func(t *testing.T) {
		now := time.Unix(1_700_000_000, 0)
		c := NewLookupTableCache(10, time.Minute)
		c.now = func() time.Time { return now }

		c.Set("alt", []byte{1, 2})
		data, ok := c.Get("alt")
		assert.True(t, ok)
		assert.Equal(t, []byte{1, 2}, data)

		now = now.Add(time.Minute)
		_, ok = c.Get("alt")
		assert.False(t, ok)

		_, ok = c.Get("missing")
		assert.False(t, ok)
	})

	t.Run("容量满时淘汰最早过期的条目", func(t *testing.T) {
		now := time.Unix(1_700_000_000, 0)
		c := NewLookupTableCache(4, time.Hour)
		c.now = func() time.Time { return now }

		for i := 0; i < 4; i++ {
			c.Set(fmt.Sprintf("k%d", i), []byte{byte(i)})
			now = now.Add(time.Second)
		}
		c.Set("k4", []byte{4})

		assert.Equal(t, 4, c.Len())
		_, ok := c.Get("k0")
		assert.False(t, ok)
		_, ok = c.Get("k4")
		assert.True(t, ok)
	})

	t.Run("覆盖已有键不触发淘汰", func(t *testing.T) {
		c := NewLookupTableCache(2, time.Hour)
		c.Set("a", []byte{1})
		c.Set("b", []byte{2})
		c.Set("a", []byte{3})
		assert.Equal(t, 2, c.Len())
		data, _ := c.Get("a")
		assert.Equal(t, []byte{3}, data)
	})
}
