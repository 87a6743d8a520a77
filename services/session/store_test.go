package session

import (
	"sync"
	"testing"

	"barberflow/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetOrCreateReturnsSameInstance(t *testing.T) {
	store := NewStore()

	first := store.GetOrCreate("905551112233", 1)
	second := store.GetOrCreate("905551112233", 1)

	assert.Same(t, first, second)
	assert.Equal(t, models.StateInitial, first.State)
	assert.NotEmpty(t, first.SessionID)
	assert.Equal(t, 1, store.Len())
}

func TestGetOrCreateKeysByPhoneAndTenant(t *testing.T) {
	store := NewStore()

	a := store.GetOrCreate("905551112233", 1)
	b := store.GetOrCreate("905551112233", 2)
	c := store.GetOrCreate("905559998877", 1)

	assert.NotSame(t, a, b)
	assert.NotSame(t, a, c)
	assert.NotEqual(t, a.SessionID, b.SessionID)
	assert.Equal(t, 3, store.Len())
}

func TestGetOrCreateConcurrentFirstTouch(t *testing.T) {
	store := NewStore()

	const goroutines = 50
	results := make([]*models.BotSession, goroutines)

	var wg sync.WaitGroup
	wg.Add(goroutines)
	for i := 0; i < goroutines; i++ {
		go func(i int) {
			defer wg.Done()
			results[i] = store.GetOrCreate("905551112233", 7)
		}(i)
	}
	wg.Wait()

	require.Equal(t, 1, store.Len())
	for i := 1; i < goroutines; i++ {
		assert.Same(t, results[0], results[i])
	}
}
