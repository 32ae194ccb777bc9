package services

import (
	"sync"
	"sync/atomic"
	"task_management_ms/domain"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCeremonyStoreConsumeReturnsStateExactlyOnce(t *testing.T) {
	store := NewCeremonyStore[string](time.Minute)

	id, err := store.Begin("challenge-state")
	require.NoError(t, err)
	require.NotEmpty(t, id)

	state, err := store.Consume(id)
	require.NoError(t, err)
	assert.Equal(t, "challenge-state", state)

	_, err = store.Consume(id)
	assert.ErrorIs(t, err, domain.ErrCeremonyNotFound)
}

func TestCeremonyStoreUnknownID(t *testing.T) {
	store := NewCeremonyStore[string](time.Minute)

	_, err := store.Consume("b2c5e9a0-0000-0000-0000-000000000000")
	assert.ErrorIs(t, err, domain.ErrCeremonyNotFound)
}

func TestCeremonyStoreIDsAreUnique(t *testing.T) {
	store := NewCeremonyStore[int](time.Minute)

	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		id, err := store.Begin(i)
		require.NoError(t, err)
		require.False(t, seen[id])
		seen[id] = true
	}
	assert.Equal(t, 100, store.Len())
}

func TestCeremonyStoreExpiry(t *testing.T) {
	store := NewCeremonyStore[string](50 * time.Millisecond)

	id, err := store.Begin("short-lived")
	require.NoError(t, err)

	assert.Eventually(t, func() bool {
		_, err := store.Consume(id)
		return err != nil
	}, time.Second, 10*time.Millisecond)

	assert.Equal(t, 0, store.Len())
}

func TestCeremonyStoreExpiryAfterConsumeIsNoop(t *testing.T) {
	store := NewCeremonyStore[string](50 * time.Millisecond)

	id, err := store.Begin("consumed-before-expiry")
	require.NoError(t, err)

	_, err = store.Consume(id)
	require.NoError(t, err)

	// A later ceremony must survive the earlier entry's timer firing.
	other, err := store.Begin("still-here")
	require.NoError(t, err)

	time.Sleep(80 * time.Millisecond)

	_, err = store.Consume(id)
	assert.ErrorIs(t, err, domain.ErrCeremonyNotFound)

	state, err := store.Consume(other)
	if err == nil {
		assert.Equal(t, "still-here", state)
	}
}

func TestCeremonyStoreConcurrentConsumeWinsOnce(t *testing.T) {
	store := NewCeremonyStore[string](time.Minute)

	id, err := store.Begin("contested")
	require.NoError(t, err)

	var wins int32
	var wg sync.WaitGroup
	for i := 0; i < 32; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if _, err := store.Consume(id); err == nil {
				atomic.AddInt32(&wins, 1)
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, int32(1), wins)
}

func TestCeremonyStoreIndependentInstances(t *testing.T) {
	registrations := NewCeremonyStore[string](time.Minute)
	signins := NewCeremonyStore[int](time.Minute)

	regID, err := registrations.Begin("registration")
	require.NoError(t, err)

	_, err = signins.Consume(regID)
	assert.ErrorIs(t, err, domain.ErrCeremonyNotFound)

	state, err := registrations.Consume(regID)
	require.NoError(t, err)
	assert.Equal(t, "registration", state)
}
