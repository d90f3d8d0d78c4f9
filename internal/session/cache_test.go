package session_test

import (
	"errors"
	"sync"
	"sync/atomic"
	"testing"

	"go-storefront-api/internal/session"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCache_GetOrCreate(t *testing.T) {
	c, err := session.NewCache[*int](4)
	require.NoError(t, err)

	t.Run("creates_once", func(t *testing.T) {
		var calls int32
		create := func() (*int, error) {
			atomic.AddInt32(&calls, 1)
			v := 7
			return &v, nil
		}

		var wg sync.WaitGroup
		results := make([]*int, 8)
		for i := range results {
			wg.Add(1)
			go func(i int) {
				defer wg.Done()
				results[i], _ = c.GetOrCreate("s1", create)
			}(i)
		}
		wg.Wait()

		assert.Equal(t, int32(1), atomic.LoadInt32(&calls))
		for _, r := range results {
			assert.Same(t, results[0], r)
		}
	})

	t.Run("create_error_not_cached", func(t *testing.T) {
		_, err := c.GetOrCreate("s2", func() (*int, error) { return nil, errors.New("boom") })
		assert.Error(t, err)

		_, ok := c.Get("s2")
		assert.False(t, ok)
	})
}

func TestCache_Eviction(t *testing.T) {
	c, err := session.NewCache[string](2)
	require.NoError(t, err)

	c.Add("a", "A")
	c.Add("b", "B")
	c.Add("c", "C")

	_, ok := c.Get("a")
	assert.False(t, ok)
	assert.Equal(t, 2, c.Len())

	c.Remove("b")
	_, ok = c.Get("b")
	assert.False(t, ok)
}
